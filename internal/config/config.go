// Package config provides centralized configuration management for the application.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Default values applied when the corresponding environment variable is unset.
const (
	// DefaultAgentAliasID is Bedrock's fixed test-alias sentinel.
	DefaultAgentAliasID = "TSTALIASID"
	// DefaultSecretName is the Secrets Manager entry holding the Jira credentials.
	DefaultSecretName = "jiraCredentials"
	// DefaultJQL selects the open tickets a triage run looks at.
	DefaultJQL = "statusCategory != Done ORDER BY created DESC"
	// DefaultMaxResults caps how many tickets one search-driven analysis handles.
	DefaultMaxResults = 25
	// DefaultAnalysisDelay is the courtesy pause between agent calls in a batch.
	DefaultAnalysisDelay = time.Second
	// DefaultRegion matches the region the Jira secret lives in.
	DefaultRegion = "us-east-1"
)

// Config holds all configuration parameters for the application.
type Config struct {
	Agent    AgentConfig
	Jira     JiraConfig
	Analysis AnalysisConfig
	Region   string
}

// AgentConfig holds Bedrock agent specific configuration.
type AgentConfig struct {
	ID      string
	AliasID string
}

// JiraConfig holds JIRA specific configuration.
type JiraConfig struct {
	SecretName string
}

// AnalysisConfig holds the knobs for the batch analysis loop.
type AnalysisConfig struct {
	DefaultJQL string
	MaxResults int
	Delay      time.Duration
}

// Load initializes and loads configuration from environment variables.
func Load() (*Config, error) {
	// Initialize Viper for environment variables
	v := viper.New()
	v.AutomaticEnv()

	// Map specific environment variables
	v.BindEnv("agent.id", "AGENT_ID")
	v.BindEnv("agent.alias_id", "AGENT_ALIAS_ID")
	v.BindEnv("jira.secret_name", "JIRA_SECRET_NAME")
	v.BindEnv("analysis.jql", "DEFAULT_JQL")
	v.BindEnv("analysis.max_results", "SEARCH_MAX_RESULTS")
	v.BindEnv("analysis.delay", "ANALYSIS_DELAY")
	v.BindEnv("region", "AWS_REGION")

	v.SetDefault("agent.alias_id", DefaultAgentAliasID)
	v.SetDefault("jira.secret_name", DefaultSecretName)
	v.SetDefault("analysis.jql", DefaultJQL)
	v.SetDefault("region", DefaultRegion)

	maxResults := DefaultMaxResults
	if raw := v.GetString("analysis.max_results"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("invalid SEARCH_MAX_RESULTS value: %q", raw)
		}
		maxResults = parsed
	}

	delay := DefaultAnalysisDelay
	if raw := v.GetString("analysis.delay"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed < 0 {
			return nil, fmt.Errorf("invalid ANALYSIS_DELAY value: %q", raw)
		}
		delay = parsed
	}

	// Create config structure
	config := &Config{
		Agent: AgentConfig{
			ID:      v.GetString("agent.id"),
			AliasID: v.GetString("agent.alias_id"),
		},
		Jira: JiraConfig{
			SecretName: v.GetString("jira.secret_name"),
		},
		Analysis: AnalysisConfig{
			DefaultJQL: v.GetString("analysis.jql"),
			MaxResults: maxResults,
			Delay:      delay,
		},
		Region: v.GetString("region"),
	}

	return config, nil
}

// ValidateAgentConfig ensures the Bedrock agent identifiers are present.
// The alias has a default, so only the agent id can be missing.
func ValidateAgentConfig(config *Config) error {
	if config.Agent.ID == "" {
		return fmt.Errorf("AGENT_ID environment variable not set")
	}
	return nil
}
