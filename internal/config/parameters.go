// Package config holds the process parameters and the per-invocation settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/creasty/defaults"
	"go.yaml.in/yaml/v3"
)

const (
	// ModeLambda runs the bridge as an AWS Lambda handler.
	ModeLambda = "lambda"
	// ModeService runs the bridge as a standalone HTTP server.
	ModeService = "service"
)

const (
	// PayloadAPIGatewayV1 is the API Gateway REST proxy payload format.
	PayloadAPIGatewayV1 = "api-gateway-v1"
	// PayloadAPIGatewayV2 is the API Gateway HTTP API payload format.
	PayloadAPIGatewayV2 = "api-gateway-v2"
	// PayloadLambdaURL is the Lambda function URL payload format.
	PayloadLambdaURL = "lambda-url"
)

var (
	// Global holds the mode and logging parameters.
	Global global
	// Service holds the HTTP listener parameters used in service mode.
	Service service
	// Lambda holds the parameters used in lambda mode.
	Lambda lambda
)

type global struct {
	Mode    string `yaml:"mode,omitempty" default:"lambda"`
	Logging struct {
		// Verbosity lowers the log level by one slog step per increment, starting at warn.
		Verbosity   int  `yaml:"verbosity,omitempty"`
		CallerTrace bool `yaml:"callerTrace,omitempty"`
	} `yaml:"logging,omitempty"`
}

type service struct {
	Path    string        `yaml:"path,omitempty" default:"/"`
	Addr    string        `yaml:"addr,omitempty"`
	Port    string        `yaml:"port,omitempty" default:"8080"`
	Timeout time.Duration `yaml:"timeout,omitempty" default:"5s"`
}

type lambda struct {
	PayloadType string `yaml:"payloadType,omitempty" default:"api-gateway-v1"`
}

// SetDefaults fills every zero-valued parameter from its default tag.
func SetDefaults() error {
	return errors.Join(
		defaults.Set(&Global),
		defaults.Set(&Service),
		defaults.Set(&Lambda),
	)
}

// Validate rejects unknown runtime modes and Lambda payload types.
func Validate() error {
	var errs []error
	switch Global.Mode {
	case ModeLambda, ModeService:
	default:
		errs = append(errs, fmt.Errorf("invalid mode: %s", Global.Mode))
	}
	switch Lambda.PayloadType {
	case PayloadAPIGatewayV1, PayloadAPIGatewayV2, PayloadLambdaURL:
	default:
		errs = append(errs, fmt.Errorf("invalid lambda payload type: %s", Lambda.PayloadType))
	}
	return errors.Join(errs...)
}

// file mirrors the layout of config.yaml.
type file struct {
	Global  global  `yaml:"global,omitempty"`
	Service service `yaml:"service,omitempty"`
	Lambda  lambda  `yaml:"lambda,omitempty"`
}

// LoadFromFile replaces the parameters with the content of the YAML file at path.
// An empty path or a file that does not exist leaves them untouched.
func LoadFromFile(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("failed to stat configuration file %s: %w", path, err)
	case !info.Mode().IsRegular():
		return fmt.Errorf("configuration file %s is not a regular file", path)
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", path, err)
	}
	var f file
	if err := yaml.Unmarshal(content, &f); err != nil {
		return fmt.Errorf("failed to unmarshal configuration file %s: %w", path, err)
	}
	Global, Service, Lambda = f.Global, f.Service, f.Lambda
	return nil
}
