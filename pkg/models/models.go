// Package models defines data structures shared across the application.
package models

// TicketRecord is the canonical representation of a Jira issue used by every
// entry point. Both normalizer variants (SDK object and raw mapping) produce
// this exact shape.
type TicketRecord struct {
	// Key is the full Jira issue identifier (e.g., "PROJ-123")
	Key string `json:"key"`

	// Summary is the issue's title field
	Summary string `json:"summary"`

	// Description is the full body text of the issue, null when absent
	Description *string `json:"description"`

	// Status is the issue's status name (e.g., "In Progress"), null when absent
	Status *string `json:"status"`

	// Comments holds the issue's comments in the order the tracker returned them
	Comments []CommentRecord `json:"comments"`
}

// CommentRecord is one comment on a ticket.
type CommentRecord struct {
	// Author is the commenter's display name, null when absent
	Author *string `json:"author"`

	// Body is the comment text, null when absent
	Body *string `json:"body"`

	// Created is the tracker's timestamp string, passed through unparsed
	Created string `json:"created"`
}

// AnalysisResult holds the agent's feedback for a single ticket.
type AnalysisResult struct {
	// TicketKey is the analyzed issue's identifier
	TicketKey string `json:"ticket_key"`

	// Analysis is the assembled agent output, or the error message when the
	// per-ticket analysis failed
	Analysis string `json:"analysis"`

	// Trace carries diagnostic detail, set only on per-ticket failure
	Trace string `json:"trace,omitempty"`
}

// CommentResult reports a successful comment append.
type CommentResult struct {
	Success   bool   `json:"success"`
	TicketKey string `json:"ticket_key"`
	CommentID string `json:"comment_id"`
	Message   string `json:"message"`
}

// LabelResult reports a successful label merge. AddedLabels is empty (never
// null) when every requested label was already present.
type LabelResult struct {
	Success     bool     `json:"success"`
	TicketKey   string   `json:"ticket_key"`
	AddedLabels []string `json:"added_labels"`
	AllLabels   []string `json:"all_labels"`
	Message     string   `json:"message"`
}

// UpdateFailure reports a failed mutation against the tracker.
type UpdateFailure struct {
	Success   bool   `json:"success"`
	TicketKey string `json:"ticket_key"`
	Error     string `json:"error"`
	Message   string `json:"message"`

	// Trace carries diagnostic detail about the underlying failure
	Trace string `json:"trace,omitempty"`
}
