package service

import (
	"context"
	"encoding/json"

	"pedido/internal/domain/entity"
)

// CompletionRole identifies the author of a completion turn.
type CompletionRole string

const (
	CompletionRoleUser       CompletionRole = "user"
	CompletionRoleAssistant  CompletionRole = "assistant"
	CompletionRoleToolResult CompletionRole = "tool"
)

// CompletionMessage is one turn of the context sent to the engine.
// Assistant turns may carry ToolCalls; tool-result turns carry ToolCallID and ToolName.
type CompletionMessage struct {
	Role       CompletionRole
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	ToolName   string
}

// ToolDefinition describes a function the engine may request. Parameters is a JSON Schema object.
type ToolDefinition struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ToolCall is a function invocation requested by the engine.
type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// CompletionRequest is a single engine call. An empty Tools slice disables tool calling.
type CompletionRequest struct {
	Credentials entity.CompletionCredentials
	System      string
	Messages    []CompletionMessage
	Tools       []ToolDefinition
}

// CompletionResponse holds either final text or tool calls to execute before a follow-up call.
type CompletionResponse struct {
	Text      string
	ToolCalls []ToolCall
}

// CompletionEngine is the LLM collaborator. Timeouts are enforced by the caller.
type CompletionEngine interface {
	Complete(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)
}
