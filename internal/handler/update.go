package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"github.com/mfaraji/manager-assistant/internal/jira"
	"github.com/mfaraji/manager-assistant/internal/logging"
	"github.com/mfaraji/manager-assistant/pkg/models"
)

// Update handles the update-jira entry point: dispatch one mutation
// (comment append or label merge) against the tracker.
type Update struct {
	Tracker TrackerProvider
}

// NewUpdate creates the update handler.
func NewUpdate(tracker TrackerProvider) *Update {
	return &Update{Tracker: tracker}
}

// Handle processes one update invocation. Action names are
// case-insensitive.
func (h *Update) Handle(ctx context.Context, event UpdateEvent) (response events.APIGatewayProxyResponse, _ error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("update handler panicked", "panic", r)
			response = serverErrorWithTrace(fmt.Errorf("%v", r), string(debug.Stack()))
		}
	}()

	action := strings.ToLower(strings.TrimSpace(event.Action))
	if action == "" {
		return badRequest("No action provided", "the event requires an action field"), nil
	}
	if action != "comment" && action != "addlabel" {
		return badRequest(
			fmt.Sprintf("unsupported action: %s", event.Action),
			"supported actions are comment and addLabel",
		), nil
	}

	var data UpdateData
	if len(event.Data) > 0 {
		if err := json.Unmarshal(event.Data, &data); err != nil {
			return badRequest("Invalid data payload", err.Error()), nil
		}
	}

	switch action {
	case "comment":
		return h.comment(ctx, data), nil
	default:
		return h.addLabel(ctx, data), nil
	}
}

// comment appends a comment to the ticket.
func (h *Update) comment(ctx context.Context, data UpdateData) events.APIGatewayProxyResponse {
	if data.TicketKey == "" || data.Comment == "" {
		return badRequest("Missing required fields", "comment requires ticket_key and comment")
	}

	tracker, err := h.Tracker(ctx)
	if err != nil {
		logging.Error("failed to create tracker client", "error", err)
		return serverErrorWithTrace(err, errTrace(err))
	}

	commentID, err := tracker.AddComment(ctx, data.TicketKey, data.Comment)
	if err != nil {
		logging.Error("failed to add comment", "ticket_key", data.TicketKey, "error", err)
		return respond(http.StatusInternalServerError, models.UpdateFailure{
			Success:   false,
			TicketKey: data.TicketKey,
			Error:     err.Error(),
			Message:   "failed to add comment",
			Trace:     errTrace(err),
		})
	}

	logging.Info("comment added", "ticket_key", data.TicketKey, "comment_id", commentID)

	return respond(http.StatusOK, models.CommentResult{
		Success:   true,
		TicketKey: data.TicketKey,
		CommentID: commentID,
		Message:   fmt.Sprintf("comment added to %s", data.TicketKey),
	})
}

// addLabel merges the requested labels into the ticket's current set and
// writes the result back in one update.
func (h *Update) addLabel(ctx context.Context, data UpdateData) events.APIGatewayProxyResponse {
	if data.TicketKey == "" || len(data.Labels) == 0 {
		return badRequest("Missing required fields", "addLabel requires ticket_key and labels")
	}

	tracker, err := h.Tracker(ctx)
	if err != nil {
		logging.Error("failed to create tracker client", "error", err)
		return serverErrorWithTrace(err, errTrace(err))
	}

	current, err := tracker.GetLabels(ctx, data.TicketKey)
	if err != nil {
		logging.Error("failed to get labels", "ticket_key", data.TicketKey, "error", err)
		return respond(http.StatusInternalServerError, models.UpdateFailure{
			Success:   false,
			TicketKey: data.TicketKey,
			Error:     err.Error(),
			Message:   "failed to fetch current labels",
			Trace:     errTrace(err),
		})
	}

	all, added := jira.MergeLabels(current, data.Labels)
	if len(added) > 0 {
		if err := tracker.SetLabels(ctx, data.TicketKey, all); err != nil {
			logging.Error("failed to set labels", "ticket_key", data.TicketKey, "error", err)
			return respond(http.StatusInternalServerError, models.UpdateFailure{
				Success:   false,
				TicketKey: data.TicketKey,
				Error:     err.Error(),
				Message:   "failed to update labels",
				Trace:     errTrace(err),
			})
		}
	}

	message := fmt.Sprintf("added %d labels to %s", len(added), data.TicketKey)
	if len(added) == 0 {
		message = fmt.Sprintf("%s already has all requested labels", data.TicketKey)
	}
	logging.Info("labels merged", "ticket_key", data.TicketKey, "added", len(added))

	return respond(http.StatusOK, models.LabelResult{
		Success:     true,
		TicketKey:   data.TicketKey,
		AddedLabels: added,
		AllLabels:   all,
		Message:     message,
	})
}
