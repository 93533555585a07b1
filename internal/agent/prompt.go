package agent

import (
	"encoding/json"
	"fmt"

	"github.com/mfaraji/manager-assistant/pkg/models"
)

// promptTemplate carries the review questions the triage agent is tuned for.
const promptTemplate = `Analyze the following Jira ticket and provide feedback:

Key: %s
Summary: %s
Description: %s
Status: %s

Comments:
%s

Please provide:
1. Clarity assessment
2. Missing information
3. Suggested improvements
4. Action items`

// buildPrompt renders one ticket into the agent's input text. Comments are
// embedded as indented JSON so the agent sees author, body, and timestamp
// for each one.
func buildPrompt(ticket models.TicketRecord) string {
	commentsJSON, err := json.MarshalIndent(ticket.Comments, "", "  ")
	if err != nil {
		commentsJSON = []byte("[]")
	}

	return fmt.Sprintf(promptTemplate,
		ticket.Key,
		ticket.Summary,
		orEmpty(ticket.Description),
		orEmpty(ticket.Status),
		commentsJSON,
	)
}

func orEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
