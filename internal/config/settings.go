package config

import (
	"context"
	"log/slog"

	"github.com/isometry/gh-jira-bridge/internal/helpers"
	"github.com/spf13/viper"
)

// Environment variables read on every invocation.
const (
	EnvGitHubSecret    = "github_secret"
	EnvJiraAPIEndpoint = "jira_api_endpoint"
	EnvJiraUsername    = "jira_username"
	EnvJiraPassword    = "jira_password"
	EnvProjectKey      = "project_key"

	// EnvGitHubSecretSSMParameter names an SSM parameter holding the webhook secret.
	// It is consulted only when EnvGitHubSecret is unset.
	EnvGitHubSecretSSMParameter = "github_secret_ssm_parameter"
	// EnvJiraPasswordSSMParameter names an SSM parameter holding the Jira password or API token.
	// It is consulted only when EnvJiraPassword is unset.
	EnvJiraPasswordSSMParameter = "jira_password_ssm_parameter"
)

const (
	keyGitHubSecret    = "github.secret"
	keyGitHubSecretSSM = "github.secret_ssm_parameter"
	keyJiraEndpoint    = "jira.endpoint"
	keyJiraUsername    = "jira.username"
	keyJiraPassword    = "jira.password"
	keyJiraPasswordSSM = "jira.password_ssm_parameter"
	keyJiraProjectKey  = "jira.project_key"
)

// SecretResolver fetches secret values from an external parameter store.
type SecretResolver interface {
	GetSecret(ctx context.Context, key string, encrypted bool) (*string, error)
}

// GitHub holds the settings used to verify webhook signatures.
type GitHub struct {
	// Secret is nil when no secret is configured. An empty secret is valid.
	Secret *string
}

// Jira holds the settings used to create tickets.
type Jira struct {
	Endpoint   string
	Username   string
	Password   string
	ProjectKey string
}

// Settings is the configuration of a single invocation.
type Settings struct {
	GitHub GitHub
	Jira   Jira
}

// LoadSettings reads the invocation settings from the process environment.
// resolver may be nil, in which case SSM parameter indirection is disabled.
func LoadSettings(ctx context.Context, resolver SecretResolver, logger *slog.Logger) Settings {
	if logger == nil {
		logger = helpers.NewNoopLogger()
	}
	logger = logger.With("component", "settings")

	v := viper.New()
	v.AllowEmptyEnv(true)
	_ = v.BindEnv(keyGitHubSecret, EnvGitHubSecret)
	_ = v.BindEnv(keyGitHubSecretSSM, EnvGitHubSecretSSMParameter)
	_ = v.BindEnv(keyJiraEndpoint, EnvJiraAPIEndpoint)
	_ = v.BindEnv(keyJiraUsername, EnvJiraUsername)
	_ = v.BindEnv(keyJiraPassword, EnvJiraPassword)
	_ = v.BindEnv(keyJiraPasswordSSM, EnvJiraPasswordSSMParameter)
	_ = v.BindEnv(keyJiraProjectKey, EnvProjectKey)

	s := Settings{
		GitHub: GitHub{
			Secret: lookup(ctx, v, resolver, logger, keyGitHubSecret, keyGitHubSecretSSM),
		},
		Jira: Jira{
			Endpoint:   v.GetString(keyJiraEndpoint),
			Username:   v.GetString(keyJiraUsername),
			Password:   helpers.String(lookup(ctx, v, resolver, logger, keyJiraPassword, keyJiraPasswordSSM)),
			ProjectKey: v.GetString(keyJiraProjectKey),
		},
	}
	logger.DebugContext(ctx, "loaded settings",
		slog.Bool("githubSecret", s.GitHub.Secret != nil),
		slog.String("jiraEndpoint", s.Jira.Endpoint),
		slog.String("jiraUsername", s.Jira.Username),
		slog.String("projectKey", s.Jira.ProjectKey))
	return s
}

// lookup returns the value bound to key, falling back to the SSM parameter named by ssmKey.
func lookup(ctx context.Context, v *viper.Viper, resolver SecretResolver, logger *slog.Logger, key, ssmKey string) *string {
	if v.IsSet(key) {
		return helpers.Ptr(v.GetString(key))
	}
	parameter := v.GetString(ssmKey)
	if parameter == "" || resolver == nil {
		return nil
	}
	value, err := resolver.GetSecret(ctx, parameter, true)
	if err != nil {
		logger.WarnContext(ctx, "failed to resolve SSM parameter", slog.String("key", key), slog.String("parameter", parameter), slog.Any("error", err))
		return nil
	}
	return value
}
