package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mfaraji/manager-assistant/internal/bootstrap"
	"github.com/mfaraji/manager-assistant/internal/handler"
	"github.com/mfaraji/manager-assistant/internal/logging"
)

// fetchCmd runs the fetch-tickets entry point locally.
var fetchCmd = &cobra.Command{
	Use:   "fetch TICKET-KEY [TICKET-KEY...]",
	Short: "Fetch tickets from Jira",
	Long: `Fetch the given tickets from Jira and print their normalized records as
JSON, exactly as the fetch-tickets function returns them.

Example:
  assistant fetch PROJ-1 PROJ-2`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap.New(cmd.Context())
		if err != nil {
			return err
		}

		logging.Info("fetching tickets", "count", len(args))

		h := handler.NewFetch(app.TrackerProvider())
		response, err := h.Handle(cmd.Context(), handler.FetchEvent{TicketIDs: args})
		if err != nil {
			return err
		}

		fmt.Println(response.Body)
		if response.StatusCode != http.StatusOK {
			return fmt.Errorf("fetch failed with status %d", response.StatusCode)
		}
		return nil
	},
}
