// Package ticket converts the issue shapes returned by the tracker into the
// canonical record every entry point shares. Two source shapes exist: the
// decoded go-jira issue object and the raw JSON mapping a REST response
// yields. Both normalize to the same record so either ingestion path can feed
// the same downstream logic.
package ticket

import (
	jira "github.com/andygrunwald/go-jira"

	"github.com/mfaraji/manager-assistant/pkg/models"
)

// optional maps the decoded zero value back to null. The tracker omits absent
// fields entirely, so an empty string here means the field was not set.
func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// FromIssue normalizes a decoded go-jira issue.
//
// Only the key is required; every other field degrades to null or empty
// rather than failing.
func FromIssue(issue *jira.Issue) models.TicketRecord {
	record := models.TicketRecord{
		Comments: []models.CommentRecord{},
	}
	if issue == nil {
		return record
	}
	record.Key = issue.Key

	if issue.Fields == nil {
		return record
	}
	record.Summary = issue.Fields.Summary
	record.Description = optional(issue.Fields.Description)
	if issue.Fields.Status != nil {
		record.Status = optional(issue.Fields.Status.Name)
	}

	if issue.Fields.Comments == nil {
		return record
	}
	for _, comment := range issue.Fields.Comments.Comments {
		if comment == nil {
			continue
		}
		record.Comments = append(record.Comments, models.CommentRecord{
			Author:  optional(comment.Author.DisplayName),
			Body:    optional(comment.Body),
			Created: comment.Created,
		})
	}
	return record
}

// FromIssues normalizes a list of decoded issues, preserving order.
func FromIssues(issues []jira.Issue) []models.TicketRecord {
	records := make([]models.TicketRecord, 0, len(issues))
	for i := range issues {
		records = append(records, FromIssue(&issues[i]))
	}
	return records
}

// FromMap normalizes a raw issue mapping as returned by the tracker's REST
// API before any SDK decoding. Missing nested levels resolve to null, never
// an error.
func FromMap(raw map[string]any) models.TicketRecord {
	record := models.TicketRecord{
		Comments: []models.CommentRecord{},
	}
	if raw == nil {
		return record
	}
	if key, ok := raw["key"].(string); ok {
		record.Key = key
	}

	fields, ok := raw["fields"].(map[string]any)
	if !ok {
		return record
	}
	if summary, ok := fields["summary"].(string); ok {
		record.Summary = summary
	}
	if description, ok := fields["description"].(string); ok {
		record.Description = optional(description)
	}
	if status, ok := fields["status"].(map[string]any); ok {
		if name, ok := status["name"].(string); ok {
			record.Status = optional(name)
		}
	}

	comment, ok := fields["comment"].(map[string]any)
	if !ok {
		return record
	}
	entries, ok := comment["comments"].([]any)
	if !ok {
		return record
	}
	for _, entry := range entries {
		item, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		commentRecord := models.CommentRecord{}
		if author, ok := item["author"].(map[string]any); ok {
			if name, ok := author["displayName"].(string); ok {
				commentRecord.Author = optional(name)
			}
		}
		if body, ok := item["body"].(string); ok {
			commentRecord.Body = optional(body)
		}
		if created, ok := item["created"].(string); ok {
			commentRecord.Created = created
		}
		record.Comments = append(record.Comments, commentRecord)
	}
	return record
}

// FromMaps normalizes a list of raw issue mappings, preserving order.
func FromMaps(raws []map[string]any) []models.TicketRecord {
	records := make([]models.TicketRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, FromMap(raw))
	}
	return records
}
