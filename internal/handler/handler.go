// Package handler implements the three Lambda entry points: fetch-tickets,
// analyze-tickets, and update-jira. Each handler is stateless; the tracker
// and agent clients are built per invocation through provider functions and
// discarded with the response.
package handler

import (
	"context"

	"github.com/mfaraji/manager-assistant/pkg/models"
)

// Tracker is the slice of the Jira client the entry points use.
type Tracker interface {
	GetTicket(ctx context.Context, key string) (models.TicketRecord, error)
	SearchTickets(ctx context.Context, jql string, maxResults int) ([]models.TicketRecord, error)
	AddComment(ctx context.Context, key, body string) (string, error)
	GetLabels(ctx context.Context, key string) ([]string, error)
	SetLabels(ctx context.Context, key string, labels []string) error
}

// TrackerProvider builds the request-scoped tracker client. Construction
// involves a secret fetch, so it only runs once the request is validated.
type TrackerProvider func(ctx context.Context) (Tracker, error)

// Analyzer produces the analysis text for one ticket.
type Analyzer interface {
	Analyze(ctx context.Context, ticket models.TicketRecord) (string, error)
}

// AnalyzerProvider builds the request-scoped agent client.
type AnalyzerProvider func(ctx context.Context) (Analyzer, error)
