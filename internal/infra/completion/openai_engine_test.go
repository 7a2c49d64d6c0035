package completion

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"pedido/internal/domain/entity"
	"pedido/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeModel struct {
	messages []llms.MessageContent
	options  llms.CallOptions
	resp     *llms.ContentResponse
	err      error
}

func (m *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	for _, opt := range options {
		opt(&m.options)
	}

	return m.resp, m.err
}

func (m *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return "", nil
}

func createTestEngine(t *testing.T, model *fakeModel) (*openAIEngine, *entity.CompletionCredentials) {
	t.Helper()

	var used entity.CompletionCredentials
	factory := func(creds entity.CompletionCredentials) (llms.Model, error) {
		used = creds

		return model, nil
	}

	return newEngine(factory, "gpt-4o-mini", slog.New(slog.NewTextHandler(io.Discard, nil))), &used
}

func TestComplete_MissingCredentials(t *testing.T) {
	engine, _ := createTestEngine(t, &fakeModel{})

	_, err := engine.Complete(context.Background(), &service.CompletionRequest{})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}

func TestComplete_DefaultModelAndText(t *testing.T) {
	model := &fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: "Olá!"}}}}
	engine, used := createTestEngine(t, model)

	resp, err := engine.Complete(context.Background(), &service.CompletionRequest{
		Credentials: entity.CompletionCredentials{APIKey: "sk-test"},
		System:      "Você é o atendente.",
		Messages:    []service.CompletionMessage{{Role: service.CompletionRoleUser, Content: "oi"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Olá!", resp.Text)
	assert.Empty(t, resp.ToolCalls)
	assert.Equal(t, "gpt-4o-mini", used.Model)
	assert.Empty(t, model.options.Tools, "no tools requested means no tools sent")

	require.Len(t, model.messages, 2)
	assert.Equal(t, llms.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, llms.ChatMessageTypeHuman, model.messages[1].Role)
}

func TestComplete_ToolCallsRoundTrip(t *testing.T) {
	model := &fakeModel{resp: &llms.ContentResponse{Choices: []*llms.ContentChoice{{
		ToolCalls: []llms.ToolCall{
			{ID: "call_1", Type: "function", FunctionCall: &llms.FunctionCall{Name: "get_menu"}},
			{ID: "call_2", Type: "function", FunctionCall: &llms.FunctionCall{Name: "check_order_status", Arguments: `{"orderId":"12"}`}},
		},
	}}}}
	engine, _ := createTestEngine(t, model)

	resp, err := engine.Complete(context.Background(), &service.CompletionRequest{
		Credentials: entity.CompletionCredentials{APIKey: "sk-test", Model: "gpt-4o"},
		Messages: []service.CompletionMessage{
			{Role: service.CompletionRoleUser, Content: "cadê meu pedido?"},
			{Role: service.CompletionRoleAssistant, ToolCalls: []service.ToolCall{{ID: "old", Name: "get_menu", Arguments: json.RawMessage(`{}`)}}},
			{Role: service.CompletionRoleToolResult, ToolCallID: "old", ToolName: "get_menu", Content: `{"categories":[]}`},
		},
		Tools: []service.ToolDefinition{{Name: "get_menu", Description: "menu", Parameters: map[string]any{"type": "object"}}},
	})
	require.NoError(t, err)

	require.Len(t, resp.ToolCalls, 2)
	assert.Equal(t, "get_menu", resp.ToolCalls[0].Name)
	assert.JSONEq(t, `{}`, string(resp.ToolCalls[0].Arguments))
	assert.JSONEq(t, `{"orderId":"12"}`, string(resp.ToolCalls[1].Arguments))

	require.Len(t, model.options.Tools, 1)
	assert.Equal(t, "get_menu", model.options.Tools[0].Function.Name)
	assert.Equal(t, "auto", model.options.ToolChoice)

	require.Len(t, model.messages, 3)
	assistant := model.messages[1]
	assert.Equal(t, llms.ChatMessageTypeAI, assistant.Role)
	require.Len(t, assistant.Parts, 1)
	call, ok := assistant.Parts[0].(llms.ToolCall)
	require.True(t, ok)
	assert.Equal(t, "old", call.ID)

	tool := model.messages[2]
	assert.Equal(t, llms.ChatMessageTypeTool, tool.Role)
	result, ok := tool.Parts[0].(llms.ToolCallResponse)
	require.True(t, ok)
	assert.Equal(t, "old", result.ToolCallID)
	assert.Equal(t, "get_menu", result.Name)
}

func TestComplete_NoChoices(t *testing.T) {
	engine, _ := createTestEngine(t, &fakeModel{resp: &llms.ContentResponse{}})

	_, err := engine.Complete(context.Background(), &service.CompletionRequest{
		Credentials: entity.CompletionCredentials{APIKey: "sk-test"},
	})
	assert.Error(t, err)
}
