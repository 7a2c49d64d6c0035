// Package completion adapts an OpenAI-compatible chat API to the domain CompletionEngine.
package completion

import (
	"context"
	"encoding/json"
	"log/slog"

	"pedido/config"
	"pedido/internal/domain/entity"
	"pedido/internal/domain/service"
	"pedido/internal/errors"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/fx"
)

// ErrMissingCredentials is returned when the settings row carries no API key
var ErrMissingCredentials = errors.New("completion engine credentials are missing")

// modelFactory builds a chat model bound to one set of credentials.
type modelFactory func(creds entity.CompletionCredentials) (llms.Model, error)

type openAIEngine struct {
	newModel     modelFactory
	defaultModel string
	logger       *slog.Logger
}

// Params defines the dependencies of the engine
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewOpenAIEngine creates a CompletionEngine. Credentials are read per call so a
// settings change takes effect on the next message.
func NewOpenAIEngine(params Params) service.CompletionEngine {
	factory := openAIModelFactory(params.Config.Completion.BaseURL)

	return newEngine(factory, params.Config.Conversation.DefaultModel, params.Logger)
}

func newEngine(factory modelFactory, defaultModel string, logger *slog.Logger) *openAIEngine {
	return &openAIEngine{
		newModel:     factory,
		defaultModel: defaultModel,
		logger:       logger,
	}
}

func openAIModelFactory(baseURL string) modelFactory {
	return func(creds entity.CompletionCredentials) (llms.Model, error) {
		opts := []openai.Option{
			openai.WithToken(creds.APIKey),
			openai.WithModel(creds.Model),
		}
		if baseURL != "" {
			opts = append(opts, openai.WithBaseURL(baseURL))
		}

		return openai.New(opts...)
	}
}

// Complete sends one request. Only the first choice is used.
func (e *openAIEngine) Complete(ctx context.Context, req *service.CompletionRequest) (*service.CompletionResponse, error) {
	creds := req.Credentials
	if creds.APIKey == "" {
		return nil, ErrMissingCredentials
	}
	if creds.Model == "" {
		creds.Model = e.defaultModel
	}

	model, err := e.newModel(creds)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create completion client")
	}

	var opts []llms.CallOption
	if len(req.Tools) > 0 {
		opts = append(opts, llms.WithTools(toLLMTools(req.Tools)), llms.WithToolChoice("auto"))
	}

	resp, err := model.GenerateContent(ctx, toLLMMessages(req), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "completion request failed")
	}
	if resp == nil || len(resp.Choices) == 0 {
		return nil, errors.New("completion returned no choices")
	}

	choice := resp.Choices[0]
	out := &service.CompletionResponse{Text: choice.Content}
	for _, call := range choice.ToolCalls {
		if call.FunctionCall == nil {
			continue
		}
		args := json.RawMessage(call.FunctionCall.Arguments)
		if len(args) == 0 {
			args = json.RawMessage("{}")
		}
		out.ToolCalls = append(out.ToolCalls, service.ToolCall{
			ID:        call.ID,
			Name:      call.FunctionCall.Name,
			Arguments: args,
		})
	}

	e.logger.DebugContext(ctx, "Completion finished",
		slog.String("model", creds.Model),
		slog.Int("tool_calls", len(out.ToolCalls)),
		slog.String("stop_reason", choice.StopReason),
	)

	return out, nil
}

func toLLMTools(defs []service.ToolDefinition) []llms.Tool {
	tools := make([]llms.Tool, 0, len(defs))
	for _, def := range defs {
		tools = append(tools, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.Parameters,
			},
		})
	}

	return tools
}

func toLLMMessages(req *service.CompletionRequest) []llms.MessageContent {
	messages := make([]llms.MessageContent, 0, len(req.Messages)+1)
	if req.System != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}

	for _, msg := range req.Messages {
		switch msg.Role {
		case service.CompletionRoleUser:
			messages = append(messages, llms.TextParts(llms.ChatMessageTypeHuman, msg.Content))
		case service.CompletionRoleAssistant:
			parts := make([]llms.ContentPart, 0, len(msg.ToolCalls)+1)
			if msg.Content != "" {
				parts = append(parts, llms.TextContent{Text: msg.Content})
			}
			for _, call := range msg.ToolCalls {
				parts = append(parts, llms.ToolCall{
					ID:   call.ID,
					Type: "function",
					FunctionCall: &llms.FunctionCall{
						Name:      call.Name,
						Arguments: string(call.Arguments),
					},
				})
			}
			messages = append(messages, llms.MessageContent{Role: llms.ChatMessageTypeAI, Parts: parts})
		case service.CompletionRoleToolResult:
			messages = append(messages, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{llms.ToolCallResponse{
					ToolCallID: msg.ToolCallID,
					Name:       msg.ToolName,
					Content:    msg.Content,
				}},
			})
		}
	}

	return messages
}
