package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mfaraji/manager-assistant/internal/config"
	"github.com/mfaraji/manager-assistant/internal/logging"
	"github.com/mfaraji/manager-assistant/pkg/models"
)

// Analyze handles the analyze-tickets entry point: collect the tickets to
// review, run each through the agent, and return the per-ticket analyses.
type Analyze struct {
	Config  *config.Config
	Tracker TrackerProvider
	Agent   AnalyzerProvider
}

// NewAnalyze creates the analyze handler.
func NewAnalyze(cfg *config.Config, tracker TrackerProvider, agent AnalyzerProvider) *Analyze {
	return &Analyze{
		Config:  cfg,
		Tracker: tracker,
		Agent:   agent,
	}
}

type analyzeResponse struct {
	Analyses []models.AnalysisResult `json:"analyses"`
	Count    int                     `json:"count"`
	JQLQuery string                  `json:"jql_query,omitempty"`
	Message  string                  `json:"message,omitempty"`
}

// Handle processes one analyze invocation. Explicit ticket keys are fetched
// individually; otherwise a JQL search (from the event or the configured
// default) selects the batch.
func (h *Analyze) Handle(ctx context.Context, event AnalyzeEvent) (response events.APIGatewayProxyResponse, _ error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("analyze handler panicked", "panic", r)
			response = serverErrorWithTrace(fmt.Errorf("%v", r), string(debug.Stack()))
		}
	}()

	// Config comes first so a missing agent id fails before any client is
	// built.
	if err := config.ValidateAgentConfig(h.Config); err != nil {
		logging.Error("agent configuration invalid", "error", err)
		return serverError(err), nil
	}

	tracker, err := h.Tracker(ctx)
	if err != nil {
		logging.Error("failed to create tracker client", "error", err)
		return serverErrorWithTrace(err, errTrace(err)), nil
	}

	tickets, usedJQL, err := h.collectTickets(ctx, tracker, event)
	if err != nil {
		return serverErrorWithTrace(err, errTrace(err)), nil
	}
	if len(tickets) == 0 {
		logging.Info("no tickets matched", "jql", usedJQL)
		return respond(http.StatusOK, analyzeResponse{
			Analyses: []models.AnalysisResult{},
			Count:    0,
			JQLQuery: usedJQL,
			Message:  "no tickets matched the query",
		}), nil
	}

	analyzer, err := h.Agent(ctx)
	if err != nil {
		logging.Error("failed to create agent client", "error", err)
		return serverErrorWithTrace(err, errTrace(err)), nil
	}

	logging.Info("analyzing tickets", "count", len(tickets))

	analyses := make([]models.AnalysisResult, 0, len(tickets))
	for i, ticket := range tickets {
		// Courtesy pause between agent calls, not before the first.
		if i > 0 && h.Config.Analysis.Delay > 0 {
			time.Sleep(h.Config.Analysis.Delay)
		}

		text, err := analyzer.Analyze(ctx, ticket)
		if err != nil {
			// One failed analysis degrades to an in-band result so the
			// rest of the batch still runs.
			logging.Warn("ticket analysis failed", "ticket_key", ticket.Key, "error", err)
			analyses = append(analyses, models.AnalysisResult{
				TicketKey: ticket.Key,
				Analysis:  err.Error(),
				Trace:     errTrace(err),
			})
			continue
		}

		analyses = append(analyses, models.AnalysisResult{
			TicketKey: ticket.Key,
			Analysis:  text,
		})
	}

	return respond(http.StatusOK, analyzeResponse{
		Analyses: analyses,
		Count:    len(analyses),
		JQLQuery: usedJQL,
	}), nil
}

// collectTickets resolves the batch to analyze. The returned query string is
// empty when explicit keys were used.
func (h *Analyze) collectTickets(ctx context.Context, tracker Tracker, event AnalyzeEvent) ([]models.TicketRecord, string, error) {
	if len(event.TicketKeys) > 0 {
		tickets := make([]models.TicketRecord, 0, len(event.TicketKeys))
		for _, key := range event.TicketKeys {
			record, err := tracker.GetTicket(ctx, key)
			if err != nil {
				logging.Error("failed to fetch ticket", "ticket_key", key, "error", err)
				return nil, "", err
			}
			tickets = append(tickets, record)
		}
		return tickets, "", nil
	}

	jql := event.JQLQuery
	if jql == "" {
		jql = h.Config.Analysis.DefaultJQL
	}

	tickets, err := tracker.SearchTickets(ctx, jql, h.Config.Analysis.MaxResults)
	if err != nil {
		logging.Error("jql search failed", "jql", jql, "error", err)
		return nil, "", err
	}
	return tickets, jql, nil
}
