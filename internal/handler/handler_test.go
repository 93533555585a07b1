package handler

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mfaraji/manager-assistant/internal/config"
	"github.com/mfaraji/manager-assistant/pkg/models"
)

// MockTracker implements Tracker for testing
type MockTracker struct {
	GetTicketFunc     func(ctx context.Context, key string) (models.TicketRecord, error)
	SearchTicketsFunc func(ctx context.Context, jql string, maxResults int) ([]models.TicketRecord, error)
	AddCommentFunc    func(ctx context.Context, key, body string) (string, error)
	GetLabelsFunc     func(ctx context.Context, key string) ([]string, error)
	SetLabelsFunc     func(ctx context.Context, key string, labels []string) error
}

func (m *MockTracker) GetTicket(ctx context.Context, key string) (models.TicketRecord, error) {
	if m.GetTicketFunc != nil {
		return m.GetTicketFunc(ctx, key)
	}
	return models.TicketRecord{}, errors.New("GetTicket not implemented")
}

func (m *MockTracker) SearchTickets(ctx context.Context, jql string, maxResults int) ([]models.TicketRecord, error) {
	if m.SearchTicketsFunc != nil {
		return m.SearchTicketsFunc(ctx, jql, maxResults)
	}
	return nil, errors.New("SearchTickets not implemented")
}

func (m *MockTracker) AddComment(ctx context.Context, key, body string) (string, error) {
	if m.AddCommentFunc != nil {
		return m.AddCommentFunc(ctx, key, body)
	}
	return "", errors.New("AddComment not implemented")
}

func (m *MockTracker) GetLabels(ctx context.Context, key string) ([]string, error) {
	if m.GetLabelsFunc != nil {
		return m.GetLabelsFunc(ctx, key)
	}
	return nil, errors.New("GetLabels not implemented")
}

func (m *MockTracker) SetLabels(ctx context.Context, key string, labels []string) error {
	if m.SetLabelsFunc != nil {
		return m.SetLabelsFunc(ctx, key, labels)
	}
	return errors.New("SetLabels not implemented")
}

// MockAnalyzer implements Analyzer for testing
type MockAnalyzer struct {
	AnalyzeFunc func(ctx context.Context, ticket models.TicketRecord) (string, error)
}

func (m *MockAnalyzer) Analyze(ctx context.Context, ticket models.TicketRecord) (string, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, ticket)
	}
	return "", errors.New("Analyze not implemented")
}

// trackerProviderFor hands out the same mock for every invocation and counts
// how often the provider itself ran.
func trackerProviderFor(tracker Tracker, calls *int) TrackerProvider {
	return func(ctx context.Context) (Tracker, error) {
		if calls != nil {
			*calls++
		}
		return tracker, nil
	}
}

func failingTrackerProvider(err error) TrackerProvider {
	return func(ctx context.Context) (Tracker, error) {
		return nil, err
	}
}

func analyzerProviderFor(analyzer Analyzer, calls *int) AnalyzerProvider {
	return func(ctx context.Context) (Analyzer, error) {
		if calls != nil {
			*calls++
		}
		return analyzer, nil
	}
}

// testConfig returns a config with a valid agent id and no inter-ticket
// delay so batch tests run instantly.
func testConfig() *config.Config {
	return &config.Config{
		Agent: config.AgentConfig{
			ID:      "AGENT123456",
			AliasID: config.DefaultAgentAliasID,
		},
		Jira: config.JiraConfig{
			SecretName: config.DefaultSecretName,
		},
		Analysis: config.AnalysisConfig{
			DefaultJQL: config.DefaultJQL,
			MaxResults: config.DefaultMaxResults,
			Delay:      0,
		},
		Region: config.DefaultRegion,
	}
}

// decodeJSON unpacks a response body for assertions on individual fields.
func decodeJSON(t *testing.T, body string) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return out
}
