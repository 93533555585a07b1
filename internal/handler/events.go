package handler

import (
	"encoding/json"
	"fmt"
)

// FetchEvent is the input for the fetch-tickets entry point. Ticket ids
// arrive either as a top-level field or JSON-encoded inside a Payload
// envelope, the shape produced when another function's output is chained
// into this one. The top-level field wins when both are present.
type FetchEvent struct {
	TicketIDs []string `json:"ticketIds"`
	Payload   string   `json:"Payload"`
}

// payloadBody is the decoded form of FetchEvent.Payload.
type payloadBody struct {
	TicketIDs []string `json:"ticketIds"`
}

// ticketIDs resolves the requested ids from whichever envelope carried them.
func (e FetchEvent) ticketIDs() ([]string, error) {
	if len(e.TicketIDs) > 0 {
		return e.TicketIDs, nil
	}
	if e.Payload == "" {
		return nil, nil
	}

	var payload payloadBody
	if err := json.Unmarshal([]byte(e.Payload), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode Payload envelope: %v", err)
	}
	return payload.TicketIDs, nil
}

// AnalyzeEvent is the input for the analyze-tickets entry point. Explicit
// ticket keys win over a JQL query; with neither set the configured default
// query runs.
type AnalyzeEvent struct {
	TicketKeys []string `json:"ticket_keys"`
	JQLQuery   string   `json:"jql_query"`
}

// UpdateEvent is the input for the update-jira entry point. Data stays raw
// until the action is validated so a malformed payload reports as a client
// error rather than an invocation failure.
type UpdateEvent struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

// UpdateData carries the mutation arguments for both actions.
type UpdateData struct {
	TicketKey string     `json:"ticket_key"`
	Comment   string     `json:"comment"`
	Labels    StringList `json:"labels"`
}

// StringList accepts either a single JSON string or an array of strings.
type StringList []string

// UnmarshalJSON implements the dual shape.
func (l *StringList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		*l = StringList{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("labels must be a string or a list of strings")
	}
	*l = StringList(many)
	return nil
}
