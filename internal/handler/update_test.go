package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// updateEvent decodes a raw JSON invocation payload, exercising the same
// envelope path the Lambda runtime uses.
func updateEvent(t *testing.T, raw string) UpdateEvent {
	t.Helper()
	var event UpdateEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &event))
	return event
}

func TestUpdateComment(t *testing.T) {
	var gotKey, gotBody string
	tracker := &MockTracker{
		AddCommentFunc: func(ctx context.Context, key, body string) (string, error) {
			gotKey = key
			gotBody = body
			return "10500", nil
		},
	}

	h := NewUpdate(trackerProviderFor(tracker, nil))
	resp, err := h.Handle(context.Background(), updateEvent(t, `{
		"action": "comment",
		"data": {"ticket_key": "PROJ-1", "comment": "Agent feedback here"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "PROJ-1", gotKey)
	assert.Equal(t, "Agent feedback here", gotBody)

	body := decodeJSON(t, resp.Body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "PROJ-1", body["ticket_key"])
	assert.Equal(t, "10500", body["comment_id"])
}

func TestUpdateActionCaseInsensitive(t *testing.T) {
	for _, action := range []string{"comment", "Comment", "COMMENT", " comment "} {
		t.Run(action, func(t *testing.T) {
			tracker := &MockTracker{
				AddCommentFunc: func(ctx context.Context, key, body string) (string, error) {
					return "1", nil
				},
			}

			h := NewUpdate(trackerProviderFor(tracker, nil))
			resp, err := h.Handle(context.Background(), UpdateEvent{
				Action: action,
				Data:   json.RawMessage(`{"ticket_key": "PROJ-1", "comment": "hi"}`),
			})
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestUpdateCommentMissingFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "missing ticket key",
			raw:  `{"action": "comment", "data": {"comment": "text"}}`,
		},
		{
			name: "missing comment",
			raw:  `{"action": "comment", "data": {"ticket_key": "PROJ-1"}}`,
		},
		{
			name: "no data at all",
			raw:  `{"action": "comment"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providerCalls := 0
			h := NewUpdate(trackerProviderFor(&MockTracker{}, &providerCalls))

			resp, err := h.Handle(context.Background(), updateEvent(t, tt.raw))
			require.NoError(t, err)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			body := decodeJSON(t, resp.Body)
			assert.Equal(t, "Missing required fields", body["error"])
			assert.Zero(t, providerCalls, "validation failures must not reach the tracker")
		})
	}
}

func TestUpdateCommentTrackerFailure(t *testing.T) {
	tracker := &MockTracker{
		AddCommentFunc: func(ctx context.Context, key, body string) (string, error) {
			return "", errors.New("403 forbidden")
		},
	}

	h := NewUpdate(trackerProviderFor(tracker, nil))
	resp, err := h.Handle(context.Background(), updateEvent(t, `{
		"action": "comment",
		"data": {"ticket_key": "PROJ-1", "comment": "text"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeJSON(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "PROJ-1", body["ticket_key"])
	assert.Contains(t, body["error"], "403 forbidden")
	assert.NotEmpty(t, body["trace"])
}

func TestUpdateAddLabelMerge(t *testing.T) {
	var written []string
	tracker := &MockTracker{
		GetLabelsFunc: func(ctx context.Context, key string) ([]string, error) {
			return []string{"bug"}, nil
		},
		SetLabelsFunc: func(ctx context.Context, key string, labels []string) error {
			written = labels
			return nil
		},
	}

	h := NewUpdate(trackerProviderFor(tracker, nil))
	resp, err := h.Handle(context.Background(), updateEvent(t, `{
		"action": "addLabel",
		"data": {"ticket_key": "PROJ-1", "labels": ["bug", "urgent"]}
	}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"bug", "urgent"}, written)

	body := decodeJSON(t, resp.Body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{"urgent"}, body["added_labels"])
	assert.Equal(t, []any{"bug", "urgent"}, body["all_labels"])
}

func TestUpdateAddLabelNoOp(t *testing.T) {
	setCalls := 0
	tracker := &MockTracker{
		GetLabelsFunc: func(ctx context.Context, key string) ([]string, error) {
			return []string{"bug"}, nil
		},
		SetLabelsFunc: func(ctx context.Context, key string, labels []string) error {
			setCalls++
			return nil
		},
	}

	h := NewUpdate(trackerProviderFor(tracker, nil))
	resp, err := h.Handle(context.Background(), updateEvent(t, `{
		"action": "addLabel",
		"data": {"ticket_key": "PROJ-1", "labels": ["bug"]}
	}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Zero(t, setCalls, "a no-op merge should skip the write-back")

	// added_labels serializes as [], never null.
	assert.Contains(t, resp.Body, `"added_labels":[]`)
	body := decodeJSON(t, resp.Body)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{"bug"}, body["all_labels"])
}

func TestUpdateAddLabelSingleString(t *testing.T) {
	var written []string
	tracker := &MockTracker{
		GetLabelsFunc: func(ctx context.Context, key string) ([]string, error) {
			return nil, nil
		},
		SetLabelsFunc: func(ctx context.Context, key string, labels []string) error {
			written = labels
			return nil
		},
	}

	h := NewUpdate(trackerProviderFor(tracker, nil))
	resp, err := h.Handle(context.Background(), updateEvent(t, `{
		"action": "addLabel",
		"data": {"ticket_key": "PROJ-1", "labels": "urgent"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"urgent"}, written)
}

func TestUpdateAddLabelMissingFields(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "missing labels",
			raw:  `{"action": "addLabel", "data": {"ticket_key": "PROJ-1"}}`,
		},
		{
			name: "empty labels list",
			raw:  `{"action": "addLabel", "data": {"ticket_key": "PROJ-1", "labels": []}}`,
		},
		{
			name: "missing ticket key",
			raw:  `{"action": "addLabel", "data": {"labels": ["bug"]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providerCalls := 0
			h := NewUpdate(trackerProviderFor(&MockTracker{}, &providerCalls))

			resp, err := h.Handle(context.Background(), updateEvent(t, tt.raw))
			require.NoError(t, err)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Zero(t, providerCalls)
		})
	}
}

func TestUpdateInvalidLabelsShape(t *testing.T) {
	h := NewUpdate(trackerProviderFor(&MockTracker{}, nil))

	resp, err := h.Handle(context.Background(), updateEvent(t, `{
		"action": "addLabel",
		"data": {"ticket_key": "PROJ-1", "labels": {"oops": true}}
	}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp.Body)
	assert.Equal(t, "Invalid data payload", body["error"])
	assert.Contains(t, body["message"], "labels must be a string or a list of strings")
}

func TestUpdateMissingAction(t *testing.T) {
	h := NewUpdate(trackerProviderFor(&MockTracker{}, nil))

	resp, err := h.Handle(context.Background(), updateEvent(t, `{"data": {"ticket_key": "PROJ-1"}}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp.Body)
	assert.Equal(t, "No action provided", body["error"])
}

func TestUpdateUnsupportedAction(t *testing.T) {
	providerCalls := 0
	h := NewUpdate(trackerProviderFor(&MockTracker{}, &providerCalls))

	resp, err := h.Handle(context.Background(), updateEvent(t, `{
		"action": "archive",
		"data": {"ticket_key": "PROJ-1"}
	}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeJSON(t, resp.Body)
	assert.Equal(t, "unsupported action: archive", body["error"])
	assert.Zero(t, providerCalls)
}

func TestUpdateGetLabelsFailure(t *testing.T) {
	tracker := &MockTracker{
		GetLabelsFunc: func(ctx context.Context, key string) ([]string, error) {
			return nil, errors.New("issue does not exist")
		},
	}

	h := NewUpdate(trackerProviderFor(tracker, nil))
	resp, err := h.Handle(context.Background(), updateEvent(t, `{
		"action": "addLabel",
		"data": {"ticket_key": "PROJ-404", "labels": ["bug"]}
	}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeJSON(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "failed to fetch current labels", body["message"])
}

func TestUpdateSetLabelsFailure(t *testing.T) {
	tracker := &MockTracker{
		GetLabelsFunc: func(ctx context.Context, key string) ([]string, error) {
			return []string{}, nil
		},
		SetLabelsFunc: func(ctx context.Context, key string, labels []string) error {
			return errors.New("field locked")
		},
	}

	h := NewUpdate(trackerProviderFor(tracker, nil))
	resp, err := h.Handle(context.Background(), updateEvent(t, `{
		"action": "addLabel",
		"data": {"ticket_key": "PROJ-1", "labels": ["bug"]}
	}`))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeJSON(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "failed to update labels", body["message"])
	assert.Contains(t, body["error"], "field locked")
}
