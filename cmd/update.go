package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mfaraji/manager-assistant/internal/bootstrap"
	"github.com/mfaraji/manager-assistant/internal/handler"
	"github.com/mfaraji/manager-assistant/internal/logging"
)

var (
	updateTicket  string
	updateComment string
	updateLabels  []string
)

// updateCmd runs the update-jira entry point locally.
var updateCmd = &cobra.Command{
	Use:   "update ACTION",
	Short: "Apply one mutation to a Jira ticket",
	Long: `Apply a single mutation to a ticket: append a comment or merge labels
into the ticket's existing set.

Supported actions are comment and addLabel (case-insensitive).

Example:
  assistant update comment --ticket PROJ-1 --comment "Triage notes attached"
  assistant update addLabel --ticket PROJ-1 --label triaged --label reviewed`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap.New(cmd.Context())
		if err != nil {
			return err
		}

		data, err := json.Marshal(handler.UpdateData{
			TicketKey: updateTicket,
			Comment:   updateComment,
			Labels:    handler.StringList(updateLabels),
		})
		if err != nil {
			return fmt.Errorf("failed to encode update data: %v", err)
		}

		logging.Info("applying update", "action", args[0], "ticket_key", updateTicket)

		h := handler.NewUpdate(app.TrackerProvider())
		response, err := h.Handle(cmd.Context(), handler.UpdateEvent{
			Action: args[0],
			Data:   data,
		})
		if err != nil {
			return err
		}

		fmt.Println(response.Body)
		if response.StatusCode != http.StatusOK {
			return fmt.Errorf("update failed with status %d", response.StatusCode)
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateTicket, "ticket", "t", "", "Ticket key to update")
	updateCmd.Flags().StringVarP(&updateComment, "comment", "c", "", "Comment text for the comment action")
	updateCmd.Flags().StringArrayVarP(&updateLabels, "label", "l", nil, "Label to add (repeatable)")
}
