// Package jira wraps the tracker operations the entry points rely on: issue
// lookup, JQL search, comment append, and label updates.
package jira

import (
	"context"
	"fmt"

	jira "github.com/andygrunwald/go-jira"

	"github.com/mfaraji/manager-assistant/internal/logging"
	"github.com/mfaraji/manager-assistant/internal/ticket"
	"github.com/mfaraji/manager-assistant/pkg/models"
)

// Client handles interactions with the JIRA API.
type Client struct {
	client *jira.Client
}

// NewClient creates an authenticated JIRA client.
func NewClient(baseURL, username, token string) (*Client, error) {
	if baseURL == "" || username == "" || token == "" {
		return nil, fmt.Errorf("jira base URL, username, and token are all required")
	}

	// Create JIRA authentication transport
	tp := jira.BasicAuthTransport{
		Username: username,
		Password: token,
	}

	client, err := jira.NewClient(tp.Client(), baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create JIRA client: %v", err)
	}

	logging.Debug("jira client created",
		"base_url", baseURL,
		"username", logging.MaskSensitive(username))

	return &Client{
		client: client,
	}, nil
}

// GetTicket fetches a single issue and normalizes it into the canonical
// record.
func (c *Client) GetTicket(ctx context.Context, key string) (models.TicketRecord, error) {
	issue, _, err := c.client.Issue.GetWithContext(ctx, key, nil)
	if err != nil {
		return models.TicketRecord{}, fmt.Errorf("failed to get issue %s: %v", key, err)
	}

	return ticket.FromIssue(issue), nil
}

// SearchTickets runs a JQL query and normalizes every match, preserving the
// tracker's result order.
func (c *Client) SearchTickets(ctx context.Context, jql string, maxResults int) ([]models.TicketRecord, error) {
	options := &jira.SearchOptions{
		MaxResults: maxResults,
		Fields:     []string{"summary", "description", "status", "comment"},
	}

	issues, _, err := c.client.Issue.SearchWithContext(ctx, jql, options)
	if err != nil {
		return nil, fmt.Errorf("failed to search issues: %v", err)
	}

	logging.Debug("jql search complete", "jql", jql, "matches", len(issues))
	return ticket.FromIssues(issues), nil
}

// AddComment appends a comment to the issue and returns the new comment's id.
func (c *Client) AddComment(ctx context.Context, key, body string) (string, error) {
	comment := &jira.Comment{
		Body: body,
	}

	created, _, err := c.client.Issue.AddCommentWithContext(ctx, key, comment)
	if err != nil {
		return "", fmt.Errorf("failed to add comment to %s: %v", key, err)
	}

	return created.ID, nil
}

// GetLabels returns the issue's current labels in tracker order.
func (c *Client) GetLabels(ctx context.Context, key string) ([]string, error) {
	options := &jira.GetQueryOptions{
		Fields: "labels",
	}

	issue, _, err := c.client.Issue.GetWithContext(ctx, key, options)
	if err != nil {
		return nil, fmt.Errorf("failed to get labels for %s: %v", key, err)
	}
	if issue.Fields == nil {
		return []string{}, nil
	}

	return issue.Fields.Labels, nil
}

// SetLabels writes the full label set back to the issue in one update call.
func (c *Client) SetLabels(ctx context.Context, key string, labels []string) error {
	update := map[string]interface{}{
		"fields": map[string]interface{}{
			"labels": labels,
		},
	}

	_, err := c.client.Issue.UpdateIssueWithContext(ctx, key, update)
	if err != nil {
		return fmt.Errorf("failed to update labels on %s: %v", key, err)
	}

	return nil
}
