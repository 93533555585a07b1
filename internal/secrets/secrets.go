// Package secrets retrieves the Jira credentials stored in AWS Secrets Manager.
package secrets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"github.com/mfaraji/manager-assistant/internal/logging"
)

// JiraCredentials mirrors the JSON document stored under the configured
// secret name.
type JiraCredentials struct {
	BaseURL  string `json:"jira_base_url"`
	APIUser  string `json:"jira_api_user"`
	APIToken string `json:"jira_api_token"`
}

// API is the slice of the Secrets Manager client the store needs.
type API interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Store reads named secrets from AWS Secrets Manager.
type Store struct {
	api        API
	secretName string
}

// NewStore creates a store reading the named secret.
func NewStore(api API, secretName string) *Store {
	return &Store{
		api:        api,
		secretName: secretName,
	}
}

// JiraCredentials retrieves and decodes the Jira credential document.
func (s *Store) JiraCredentials(ctx context.Context) (*JiraCredentials, error) {
	logging.Debug("retrieving jira credentials", "secret_name", s.secretName)

	out, err := s.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve secret %s: %v", s.secretName, err)
	}
	if out.SecretString == nil {
		return nil, fmt.Errorf("secret %s has no string value", s.secretName)
	}

	var creds JiraCredentials
	if err := json.Unmarshal([]byte(*out.SecretString), &creds); err != nil {
		return nil, fmt.Errorf("failed to decode secret %s: %v", s.secretName, err)
	}
	if creds.BaseURL == "" || creds.APIUser == "" || creds.APIToken == "" {
		return nil, fmt.Errorf("secret %s is missing one of jira_base_url, jira_api_user, jira_api_token", s.secretName)
	}

	logging.Debug("jira credentials retrieved",
		"base_url", creds.BaseURL,
		"api_user", logging.MaskSensitive(creds.APIUser),
		"api_token", logging.MaskSensitive(creds.APIToken))

	return &creds, nil
}
