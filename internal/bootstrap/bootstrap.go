// Package bootstrap wires configuration, the AWS SDK, and the
// request-scoped client providers shared by every entry point binary.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/mfaraji/manager-assistant/internal/agent"
	"github.com/mfaraji/manager-assistant/internal/config"
	"github.com/mfaraji/manager-assistant/internal/handler"
	"github.com/mfaraji/manager-assistant/internal/jira"
	"github.com/mfaraji/manager-assistant/internal/secrets"
)

// App holds what a binary loads once at cold start: the application
// configuration and the resolved AWS SDK configuration.
type App struct {
	Config *config.Config

	awsConfig aws.Config
}

// New loads configuration and the AWS SDK once at process start.
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	awsConfig, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %v", err)
	}

	return &App{
		Config:    cfg,
		awsConfig: awsConfig,
	}, nil
}

// TrackerProvider builds a fresh Jira client for each invocation from the
// credentials in Secrets Manager. Nothing is cached between invocations.
func (a *App) TrackerProvider() handler.TrackerProvider {
	return func(ctx context.Context) (handler.Tracker, error) {
		store := secrets.NewStore(secretsmanager.NewFromConfig(a.awsConfig), a.Config.Jira.SecretName)
		creds, err := store.JiraCredentials(ctx)
		if err != nil {
			return nil, err
		}
		return jira.NewClient(creds.BaseURL, creds.APIUser, creds.APIToken)
	}
}

// AnalyzerProvider builds a fresh Bedrock agent client for each invocation.
func (a *App) AnalyzerProvider() handler.AnalyzerProvider {
	return func(ctx context.Context) (handler.Analyzer, error) {
		api := bedrockagentruntime.NewFromConfig(a.awsConfig)
		return agent.NewClient(api, a.Config.Agent.ID, a.Config.Agent.AliasID), nil
	}
}
