package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mfaraji/manager-assistant/internal/logging"
	"github.com/mfaraji/manager-assistant/pkg/models"
)

// Fetch handles the fetch-tickets entry point: look up every requested
// ticket and return the normalized records.
type Fetch struct {
	Tracker TrackerProvider
}

// NewFetch creates the fetch handler.
func NewFetch(tracker TrackerProvider) *Fetch {
	return &Fetch{Tracker: tracker}
}

type fetchResponse struct {
	Tickets []models.TicketRecord `json:"tickets"`
}

// Handle processes one fetch invocation.
func (h *Fetch) Handle(ctx context.Context, event FetchEvent) (response events.APIGatewayProxyResponse, _ error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("fetch handler panicked", "panic", r)
			response = serverError(fmt.Errorf("%v", r))
		}
	}()

	ids, err := event.ticketIDs()
	if err != nil {
		logging.Error("failed to read fetch event", "error", err)
		return serverError(err), nil
	}
	if len(ids) == 0 {
		return badRequest("No ticket IDs provided", ""), nil
	}

	tracker, err := h.Tracker(ctx)
	if err != nil {
		logging.Error("failed to create tracker client", "error", err)
		return serverError(err), nil
	}

	logging.Info("fetching tickets", "count", len(ids))

	tickets := make([]models.TicketRecord, 0, len(ids))
	for _, id := range ids {
		record, err := tracker.GetTicket(ctx, id)
		if err != nil {
			logging.Error("failed to fetch ticket", "ticket_key", id, "error", err)
			return serverError(err), nil
		}
		tickets = append(tickets, record)
	}

	return respond(http.StatusOK, fetchResponse{Tickets: tickets}), nil
}
