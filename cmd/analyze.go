package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/mfaraji/manager-assistant/internal/bootstrap"
	"github.com/mfaraji/manager-assistant/internal/handler"
	"github.com/mfaraji/manager-assistant/internal/logging"
)

var (
	analyzeKeys []string
	analyzeJQL  string
)

// analyzeCmd runs the analyze-tickets entry point locally.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze tickets with the Bedrock agent",
	Long: `Send tickets to the Bedrock agent for review and print the per-ticket
analyses as JSON.

Tickets are selected by explicit keys when --key is given; otherwise a JQL
search runs, using --jql or the configured default query.

Example:
  assistant analyze --key PROJ-1 --key PROJ-2
  assistant analyze --jql "project = OPS AND statusCategory != Done"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap.New(cmd.Context())
		if err != nil {
			return err
		}

		logging.Info("starting analysis",
			"keys", len(analyzeKeys),
			"jql", analyzeJQL != "")

		h := handler.NewAnalyze(app.Config, app.TrackerProvider(), app.AnalyzerProvider())
		response, err := h.Handle(cmd.Context(), handler.AnalyzeEvent{
			TicketKeys: analyzeKeys,
			JQLQuery:   analyzeJQL,
		})
		if err != nil {
			return err
		}

		fmt.Println(response.Body)
		if response.StatusCode != http.StatusOK {
			return fmt.Errorf("analysis failed with status %d", response.StatusCode)
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringArrayVarP(&analyzeKeys, "key", "k", nil, "Ticket key to analyze (repeatable)")
	analyzeCmd.Flags().StringVarP(&analyzeJQL, "jql", "q", "", "JQL query selecting tickets when no keys are given")
}
