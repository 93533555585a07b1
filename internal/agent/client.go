// Package agent invokes the Bedrock agent that reviews tickets and
// assembles its streamed response into a single analysis string.
package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/google/uuid"

	"github.com/mfaraji/manager-assistant/internal/logging"
	"github.com/mfaraji/manager-assistant/pkg/models"
)

// NoAnalysis is returned when the agent's stream yields no text at all, so
// callers can tell "no output" apart from an empty completion.
const NoAnalysis = "No analysis provided"

// API is the slice of the Bedrock agent runtime client the package needs.
type API interface {
	InvokeAgent(ctx context.Context, params *bedrockagentruntime.InvokeAgentInput, optFns ...func(*bedrockagentruntime.Options)) (*bedrockagentruntime.InvokeAgentOutput, error)
}

// Client drives one Bedrock agent identified by its agent and alias ids.
type Client struct {
	api     API
	agentID string
	aliasID string
}

// NewClient creates a client for the given agent.
func NewClient(api API, agentID, aliasID string) *Client {
	return &Client{
		api:     api,
		agentID: agentID,
		aliasID: aliasID,
	}
}

// Analyze sends one ticket to the agent and returns the assembled analysis
// text. Every call runs in a fresh session so tickets never share agent
// memory.
func (c *Client) Analyze(ctx context.Context, ticket models.TicketRecord) (string, error) {
	prompt := buildPrompt(ticket)
	sessionID := uuid.NewString()

	logging.Debug("invoking agent",
		"ticket_key", ticket.Key,
		"agent_id", c.agentID,
		"session_id", sessionID)

	out, err := c.api.InvokeAgent(ctx, &bedrockagentruntime.InvokeAgentInput{
		AgentId:      aws.String(c.agentID),
		AgentAliasId: aws.String(c.aliasID),
		SessionId:    aws.String(sessionID),
		InputText:    aws.String(prompt),
	})
	if err != nil {
		return "", fmt.Errorf("failed to invoke agent for %s: %v", ticket.Key, err)
	}

	stream := out.GetStream()
	if stream == nil {
		return "", fmt.Errorf("agent returned no event stream for %s", ticket.Key)
	}
	defer stream.Close()

	return assembleCompletion(stream)
}

// assembleCompletion drains the event stream and concatenates the payload
// bytes of every chunk event. The bytes are UTF-8 text, so appending them in
// arrival order reconstructs the completion. Non-chunk events (traces,
// return-control payloads) carry no completion text and are skipped.
func assembleCompletion(stream *bedrockagentruntime.InvokeAgentEventStream) (string, error) {
	var completion strings.Builder
	contributed := false

	for event := range stream.Events() {
		chunk, ok := event.(*types.ResponseStreamMemberChunk)
		if !ok {
			continue
		}
		if len(chunk.Value.Bytes) == 0 {
			continue
		}
		completion.Write(chunk.Value.Bytes)
		contributed = true
	}

	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("agent stream failed: %v", err)
	}
	if !contributed {
		return NoAnalysis, nil
	}
	return completion.String(), nil
}
