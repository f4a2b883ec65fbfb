// Package aws provides a Controller resolving secrets from AWS SSM Parameter Store.
package aws

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/smithy-go/logging"
	"github.com/isometry/gh-jira-bridge/internal/helpers"
	"github.com/pkg/errors"
)

// Controller wraps an SSM client.
type Controller struct {
	ctx    context.Context
	logger *slog.Logger

	config    *aws.Config
	ssmClient *ssm.Client
}

// Option defines a function type used to configure an instance of the Controller struct.
type Option func(*Controller)

// NewController initializes a Controller, loading the default AWS configuration unless WithConfig is given.
func NewController(opts ...Option) (*Controller, error) {
	_inst := &Controller{}
	for _, opt := range opts {
		opt(_inst)
	}
	if _inst.logger == nil {
		_inst.logger = helpers.NewNoopLogger()
	}
	_inst.logger = _inst.logger.With("controller", "aws")
	if _inst.ctx == nil {
		_inst.ctx = context.Background()
	}
	if _inst.config == nil {
		_inst.logger.Debug("loading default AWS configuration...")
		cfg, err := config.LoadDefaultConfig(_inst.ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load AWS configuration")
		}
		_inst.config = &cfg
	}
	_inst.config.Logger = newAWSLogger(_inst.logger)

	_inst.ssmClient = ssm.NewFromConfig(*_inst.config)
	return _inst, nil
}

// GetSecret reads the SSM parameter named key, decrypting SecureString values when encrypted is set.
func (a *Controller) GetSecret(ctx context.Context, key string, encrypted bool) (*string, error) {
	if ctx == nil {
		ctx = a.ctx
	}
	a.logger.DebugContext(ctx, "fetching SSM parameter...", slog.String("key", key))
	out, err := a.ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(key),
		WithDecryption: aws.Bool(encrypted),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get SSM parameter %s", key)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return nil, errors.Errorf("SSM parameter %s has no value", key)
	}
	return out.Parameter.Value, nil
}

// sdkLogger forwards AWS SDK log output to slog. Warnings stay warnings; everything else is debug.
type sdkLogger struct {
	logger *slog.Logger
}

func newAWSLogger(logger *slog.Logger) logging.Logger {
	return &sdkLogger{logger: logger.With("source", "aws-sdk")}
}

func (l *sdkLogger) Logf(classification logging.Classification, format string, args ...any) {
	level := slog.LevelDebug
	if classification == logging.Warn {
		level = slog.LevelWarn
	}
	l.logger.Log(context.Background(), level, fmt.Sprintf(format, args...), slog.String("classification", string(classification)))
}
