package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	"pedido/internal/domain/repository"
	"pedido/internal/domain/service"
	mockRepo "pedido/internal/mocks/repository"
	mockService "pedido/internal/mocks/service"
	mockUsecase "pedido/internal/mocks/usecase"
	"pedido/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// conversationServiceFixtures holds all test dependencies for conversation service tests.
type conversationServiceFixtures struct {
	service      usecase.ConversationUsecase
	settingsRepo *mockRepo.MockSettingsRepository
	chatRepo     *mockRepo.MockChatMessageRepository
	productRepo  *mockRepo.MockProductRepository
	engine       *mockService.MockCompletionEngine
	transcriber  *mockService.MockTranscriber
	gateway      *mockService.MockMessagingGateway
	customers    *mockUsecase.MockCustomerUsecase
	checkout     *mockUsecase.MockCheckoutUsecase
	menu         *mockUsecase.MockMenuUsecase

	// requests records a snapshot of every engine call
	requests []service.CompletionRequest
}

func createTestConversationService(t *testing.T) *conversationServiceFixtures {
	fx := &conversationServiceFixtures{
		settingsRepo: mockRepo.NewMockSettingsRepository(t),
		chatRepo:     mockRepo.NewMockChatMessageRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		engine:       mockService.NewMockCompletionEngine(t),
		transcriber:  mockService.NewMockTranscriber(t),
		gateway:      mockService.NewMockMessagingGateway(t),
		customers:    mockUsecase.NewMockCustomerUsecase(t),
		checkout:     mockUsecase.NewMockCheckoutUsecase(t),
		menu:         mockUsecase.NewMockMenuUsecase(t),
	}

	svc := NewConversationService(ConversationServiceParams{
		SettingsRepo: fx.settingsRepo,
		ChatRepo:     fx.chatRepo,
		ProductRepo:  fx.productRepo,
		Engine:       fx.engine,
		Transcriber:  fx.transcriber,
		Gateway:      fx.gateway,
		Customers:    fx.customers,
		Checkout:     fx.checkout,
		Menu:         fx.menu,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	svc.(*conversationService).now = func() time.Time {
		return time.Date(2026, 10, 13, 22, 0, 0, 0, time.UTC)
	}
	fx.service = svc

	return fx
}

func activeSettings() *entity.Settings {
	settings := gatewaySettings()
	settings.CompletionAPIKey = "sk-test"
	settings.SystemPrompt = "Você atende a Pizzaria Bella."

	return settings
}

// expectEngine queues engine responses in call order and snapshots each request.
func (fx *conversationServiceFixtures) expectEngine(responses ...*service.CompletionResponse) {
	for _, resp := range responses {
		fx.engine.EXPECT().
			Complete(mock.Anything, mock.AnythingOfType("*service.CompletionRequest")).
			Run(func(_ context.Context, req *service.CompletionRequest) {
				fx.requests = append(fx.requests, *req)
			}).
			Return(resp, nil).
			Once()
	}
}

func (fx *conversationServiceFixtures) expectHistory(identity string, messages ...*entity.ChatMessage) {
	fx.chatRepo.EXPECT().FindRecentMessages(mock.Anything, identity, 10).Return(messages, nil)
}

func toolNames(tools []service.ToolDefinition) []string {
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		names = append(names, tool.Name)
	}

	return names
}

func TestConversationService_InactiveIsSilent(t *testing.T) {
	for name, settings := range map[string]*entity.Settings{
		"inactive":       {Active: false, CompletionAPIKey: "sk"},
		"no engine key":  {Active: true},
		"no settings row": nil,
	} {
		t.Run(name, func(t *testing.T) {
			fx := createTestConversationService(t)
			ctx := context.Background()

			if settings == nil {
				fx.settingsRepo.EXPECT().GetSettings(ctx).Return(nil, repository.ErrSettingsNotFound)
			} else {
				fx.settingsRepo.EXPECT().GetSettings(ctx).Return(settings, nil)
			}

			reply, err := fx.service.HandleMessage(ctx, &usecase.InboundMessage{
				Channel:   entity.ChannelWhatsApp,
				RemoteJID: "5511987654321@s.whatsapp.net",
				Text:      "oi",
			})
			require.NoError(t, err)
			assert.True(t, reply.Skipped)
			assert.Empty(t, reply.Reply)
		})
	}
}

func TestConversationService_WhatsAppPlainReply(t *testing.T) {
	fx := createTestConversationService(t)
	ctx := context.Background()
	settings := activeSettings()
	var stored []*entity.ChatMessage

	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(settings, nil)
	fx.chatRepo.EXPECT().
		AppendMessage(ctx, mock.AnythingOfType("*entity.ChatMessage")).
		Run(func(_ context.Context, m *entity.ChatMessage) { stored = append(stored, m) }).
		Return(nil)
	fx.expectHistory("5511987654321",
		&entity.ChatMessage{Role: entity.ChatRoleUser, Content: "tem calabresa?"},
		&entity.ChatMessage{Role: entity.ChatRoleAssistant, Content: "Olá! Em que posso ajudar?"},
		&entity.ChatMessage{Role: entity.ChatRoleUser, Content: "oi"},
	)
	fx.expectEngine(&service.CompletionResponse{Text: "Temos sim! A calabresa custa R$ 45,90."})
	fx.gateway.EXPECT().
		SendText(ctx, settings.Gateway(), "5511987654321", "Temos sim! A calabresa custa R$ 45,90.").
		Return(nil)

	reply, err := fx.service.HandleMessage(ctx, &usecase.InboundMessage{
		Channel:   entity.ChannelWhatsApp,
		RemoteJID: "5511987654321@s.whatsapp.net",
		Text:      "tem calabresa?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Temos sim! A calabresa custa R$ 45,90.", reply.Reply)
	assert.Equal(t, "5511987654321", reply.Identity)

	require.Len(t, stored, 2)
	assert.Equal(t, entity.ChatRoleUser, stored[0].Role)
	assert.Equal(t, "tem calabresa?", stored[0].Content)
	assert.Equal(t, entity.ChatRoleAssistant, stored[1].Role)

	require.Len(t, fx.requests, 1)
	req := fx.requests[0]
	assert.Equal(t, "sk-test", req.Credentials.APIKey)
	assert.Equal(t, "gpt-4o-mini", req.Credentials.Model, "falls back to the configured model")
	assert.Contains(t, req.System, "Pizzaria Bella")
	assert.Contains(t, req.System, "5511987654321")
	require.Len(t, req.Messages, 3)
	assert.Equal(t, "oi", req.Messages[0].Content, "history is chronological")
	assert.Equal(t, service.CompletionRoleAssistant, req.Messages[1].Role)
	assert.Equal(t, "tem calabresa?", req.Messages[2].Content)
	assert.NotContains(t, toolNames(req.Tools), toolAddToCart)
}

func TestConversationService_ToolRoundForcesSenderPhoneOnWhatsApp(t *testing.T) {
	fx := createTestConversationService(t)
	ctx := context.Background()
	customerID := uuid.New()

	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(activeSettings(), nil)
	fx.chatRepo.EXPECT().AppendMessage(ctx, mock.Anything).Return(nil)
	fx.expectHistory("5511987654321",
		&entity.ChatMessage{Role: entity.ChatRoleUser, Content: "meu nome é Maria, cep 01310-100"},
	)
	fx.expectEngine(
		&service.CompletionResponse{ToolCalls: []service.ToolCall{{
			ID:        "call_1",
			Name:      toolRegisterCustomer,
			Arguments: json.RawMessage(`{"phone":"5521900000000","name":"Maria","cep":"01310-100"}`),
		}}},
		&service.CompletionResponse{Text: "Pronto, Maria! Cadastro feito."},
	)
	fx.customers.EXPECT().
		RegisterCustomer(ctx, &usecase.RegisterCustomerInput{Phone: "5511987654321", Name: "Maria", CEP: "01310-100"}).
		Return(&usecase.RegisterCustomerOutput{ID: customerID}, nil)
	fx.gateway.EXPECT().SendText(ctx, mock.Anything, "5511987654321", "Pronto, Maria! Cadastro feito.").Return(nil)

	reply, err := fx.service.HandleMessage(ctx, &usecase.InboundMessage{
		Channel:   entity.ChannelWhatsApp,
		RemoteJID: "5511987654321:3@s.whatsapp.net",
		Text:      "meu nome é Maria, cep 01310-100",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pronto, Maria! Cadastro feito.", reply.Reply)

	require.Len(t, fx.requests, 2)
	assert.NotEmpty(t, fx.requests[0].Tools)
	assert.Empty(t, fx.requests[1].Tools, "the final round never offers tools")

	final := fx.requests[1].Messages
	require.Len(t, final, 3)
	assert.Equal(t, service.CompletionRoleUser, final[0].Role)
	assert.Equal(t, "meu nome é Maria, cep 01310-100", final[0].Content)
	toolTurn := final[len(final)-1]
	assert.Equal(t, service.CompletionRoleToolResult, toolTurn.Role)
	assert.Equal(t, "call_1", toolTurn.ToolCallID)
	assert.Contains(t, toolTurn.Content, customerID.String())
	assert.Equal(t, service.CompletionRoleAssistant, final[len(final)-2].Role)
	assert.Len(t, final[len(final)-2].ToolCalls, 1)
}

func TestConversationService_AtMostTwoEngineCalls(t *testing.T) {
	fx := createTestConversationService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(activeSettings(), nil)
	fx.chatRepo.EXPECT().AppendMessage(ctx, mock.Anything).Return(nil)
	fx.expectHistory("web:abc")
	menuCall := service.ToolCall{ID: "call_m", Name: toolGetMenu}
	fx.expectEngine(
		&service.CompletionResponse{ToolCalls: []service.ToolCall{menuCall}},
		&service.CompletionResponse{Text: "Aqui está o cardápio.", ToolCalls: []service.ToolCall{menuCall}},
	)
	fx.menu.EXPECT().GetMenu(ctx).Return(&usecase.Menu{Categories: []usecase.MenuCategory{
		{Name: "Pizzas", Products: []*entity.Product{calabresa()}},
	}}, nil).Once()

	reply, err := fx.service.HandleMessage(ctx, &usecase.InboundMessage{Channel: entity.ChannelWeb, SessionID: "abc", Text: "cardápio"})
	require.NoError(t, err)
	assert.Equal(t, "Aqui está o cardápio.", reply.Reply)
	assert.Len(t, fx.requests, 2)
	assert.Contains(t, fx.requests[1].Messages[len(fx.requests[1].Messages)-1].Content, "Pizza Calabresa")
}

func TestConversationService_WebUsesEnginePhoneAndFillsCart(t *testing.T) {
	fx := createTestConversationService(t)
	ctx := context.Background()
	product := calabresa()

	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(activeSettings(), nil)
	fx.chatRepo.EXPECT().AppendMessage(ctx, mock.Anything).Return(nil)
	fx.expectHistory("web:sess-1")
	fx.expectEngine(
		&service.CompletionResponse{ToolCalls: []service.ToolCall{
			{ID: "c1", Name: toolRegisterCustomer, Arguments: json.RawMessage(`{"phone":"11987654321","name":"Maria"}`)},
			{ID: "c2", Name: toolAddToCart, Arguments: json.RawMessage(`{"items":[{"product":"calabresa","quantity":2,"modifiers":["borda recheada"]}]}`)},
		}},
		&service.CompletionResponse{Text: "Coloquei 2 calabresas no seu carrinho."},
	)
	fx.customers.EXPECT().
		RegisterCustomer(ctx, &usecase.RegisterCustomerInput{Phone: "11987654321", Name: "Maria"}).
		Return(&usecase.RegisterCustomerOutput{ID: uuid.New()}, nil)
	fx.productRepo.EXPECT().FindFirstAvailableByName(ctx, "calabresa").Return(product, nil)

	reply, err := fx.service.HandleMessage(ctx, &usecase.InboundMessage{Channel: entity.ChannelWeb, SessionID: "sess-1", Text: "quero 2 calabresas"})
	require.NoError(t, err)
	assert.Equal(t, "Coloquei 2 calabresas no seu carrinho.", reply.Reply)
	require.Len(t, reply.Cart, 1)
	assert.Equal(t, product.ID, reply.Cart[0].ProductID)
	assert.Equal(t, 2, reply.Cart[0].Quantity)
	assert.Equal(t, []string{"borda recheada"}, reply.Cart[0].Modifiers)
	assert.Contains(t, toolNames(fx.requests[0].Tools), toolAddToCart)
	fx.gateway.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConversationService_ToolErrorsReachTheEngine(t *testing.T) {
	fx := createTestConversationService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(activeSettings(), nil)
	fx.chatRepo.EXPECT().AppendMessage(ctx, mock.Anything).Return(nil)
	fx.expectHistory("5511987654321")
	fx.expectEngine(
		&service.CompletionResponse{ToolCalls: []service.ToolCall{{
			ID:        "c1",
			Name:      toolCreateOrder,
			Arguments: json.RawMessage(`{"items":[{"product":"calabresa","quantity":1}],"payment_method":"pix","delivery_type":"delivery","cep":"08000-000"}`),
		}}},
		&service.CompletionResponse{Text: "Ainda não entregamos no seu CEP, mas você pode retirar no balcão."},
	)
	fx.checkout.EXPECT().
		CreateOrder(ctx, mock.MatchedBy(func(in *usecase.CreateOrderInput) bool {
			return in.CustomerPhone == "5511987654321" && in.DeliveryType == entity.DeliveryTypeDelivery
		})).
		Return(nil, domainerrors.ErrOutsideDeliveryArea)
	fx.gateway.EXPECT().SendText(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.HandleMessage(ctx, &usecase.InboundMessage{Channel: entity.ChannelWhatsApp, RemoteJID: "5511987654321@s.whatsapp.net", Text: "fecha o pedido"})
	require.NoError(t, err)

	msgs := fx.requests[1].Messages
	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(msgs[len(msgs)-1].Content), &result))
	assert.Equal(t, "OUTSIDE_DELIVERY_AREA", result["error"])
	assert.Contains(t, result["message"], "retirar o pedido no balcão")
}

func TestConversationService_EngineTimeout(t *testing.T) {
	fx := createTestConversationService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(activeSettings(), nil)
	fx.chatRepo.EXPECT().AppendMessage(ctx, mock.Anything).Return(nil).Once()
	fx.expectHistory("5511987654321")
	fx.engine.EXPECT().
		Complete(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *service.CompletionRequest) (*service.CompletionResponse, error) {
			<-ctx.Done()

			return nil, ctx.Err()
		})
	fx.gateway.EXPECT().SendText(ctx, mock.Anything, "5511987654321", replySlowEngine).Return(nil)

	reply, err := fx.service.HandleMessage(ctx, &usecase.InboundMessage{Channel: entity.ChannelWhatsApp, RemoteJID: "5511987654321@s.whatsapp.net", Text: "oi"})
	require.NoError(t, err)
	assert.Equal(t, replySlowEngine, reply.Reply)
}

func TestConversationService_FailureApologies(t *testing.T) {
	t.Run("engine failure", func(t *testing.T) {
		fx := createTestConversationService(t)
		ctx := context.Background()

		fx.settingsRepo.EXPECT().GetSettings(ctx).Return(activeSettings(), nil)
		fx.chatRepo.EXPECT().AppendMessage(ctx, mock.Anything).Return(nil)
		fx.expectHistory("web:s")
		fx.engine.EXPECT().Complete(mock.Anything, mock.Anything).Return(nil, errors.New("401 invalid api key sk-test"))

		reply, err := fx.service.HandleMessage(ctx, &usecase.InboundMessage{Channel: entity.ChannelWeb, SessionID: "s", Text: "oi"})
		require.NoError(t, err)
		assert.Equal(t, replyEngineFailure, reply.Reply)
		assert.NotContains(t, reply.Reply, "sk-test")
	})

	t.Run("database failure", func(t *testing.T) {
		fx := createTestConversationService(t)
		ctx := context.Background()

		fx.settingsRepo.EXPECT().GetSettings(ctx).Return(activeSettings(), nil)
		fx.chatRepo.EXPECT().AppendMessage(ctx, mock.Anything).Return(errors.New("too many connections"))

		reply, err := fx.service.HandleMessage(ctx, &usecase.InboundMessage{Channel: entity.ChannelWeb, SessionID: "s", Text: "oi"})
		require.NoError(t, err)
		assert.Equal(t, replyStoreFailure, reply.Reply)
		fx.engine.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	})
}

func TestConversationService_Audio(t *testing.T) {
	t.Run("transcribed audio is the message", func(t *testing.T) {
		fx := createTestConversationService(t)
		ctx := context.Background()
		audio := &service.AudioPayload{Data: []byte("ogg"), MimeType: "audio/ogg"}
		var userText string

		fx.settingsRepo.EXPECT().GetSettings(ctx).Return(activeSettings(), nil)
		fx.transcriber.EXPECT().
			Transcribe(ctx, entity.CompletionCredentials{APIKey: "sk-test", Model: "whisper-1"}, audio).
			Return("quero uma pizza", nil)
		fx.chatRepo.EXPECT().
			AppendMessage(ctx, mock.Anything).
			Run(func(_ context.Context, m *entity.ChatMessage) {
				if m.Role == entity.ChatRoleUser {
					userText = m.Content
				}
			}).
			Return(nil)
		fx.expectHistory("5511987654321")
		fx.expectEngine(&service.CompletionResponse{Text: "Qual sabor?"})
		fx.gateway.EXPECT().SendText(ctx, mock.Anything, "5511987654321", "Qual sabor?").Return(nil)

		_, err := fx.service.HandleMessage(ctx, &usecase.InboundMessage{Channel: entity.ChannelWhatsApp, RemoteJID: "5511987654321@s.whatsapp.net", Audio: audio})
		require.NoError(t, err)
		assert.Equal(t, "quero uma pizza", userText)
	})

	t.Run("failed transcription replies with apology and stops", func(t *testing.T) {
		fx := createTestConversationService(t)
		ctx := context.Background()
		audio := &service.AudioPayload{Data: []byte("ogg")}

		fx.settingsRepo.EXPECT().GetSettings(ctx).Return(activeSettings(), nil)
		fx.transcriber.EXPECT().Transcribe(ctx, mock.Anything, audio).Return("", errors.New("unsupported format"))
		fx.gateway.EXPECT().SendText(ctx, mock.Anything, "5511987654321", replyAudioUnreadable).Return(nil)

		reply, err := fx.service.HandleMessage(ctx, &usecase.InboundMessage{Channel: entity.ChannelWhatsApp, RemoteJID: "5511987654321@s.whatsapp.net", Audio: audio})
		require.NoError(t, err)
		assert.Equal(t, replyAudioUnreadable, reply.Reply)
		fx.chatRepo.AssertNotCalled(t, "AppendMessage", mock.Anything, mock.Anything)
		fx.engine.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	})

	t.Run("no text and no audio", func(t *testing.T) {
		fx := createTestConversationService(t)
		ctx := context.Background()

		fx.settingsRepo.EXPECT().GetSettings(ctx).Return(activeSettings(), nil)

		reply, err := fx.service.HandleMessage(ctx, &usecase.InboundMessage{Channel: entity.ChannelWeb, SessionID: "s"})
		require.NoError(t, err)
		assert.Equal(t, replyAudioUnreadable, reply.Reply)
	})
}

func TestConversationService_GatewayFailureIsReturned(t *testing.T) {
	fx := createTestConversationService(t)
	ctx := context.Background()

	fx.settingsRepo.EXPECT().GetSettings(ctx).Return(activeSettings(), nil)
	fx.chatRepo.EXPECT().AppendMessage(ctx, mock.Anything).Return(nil)
	fx.expectHistory("5511987654321")
	fx.expectEngine(&service.CompletionResponse{Text: "Olá!"})
	fx.gateway.EXPECT().SendText(ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("instance offline"))

	reply, err := fx.service.HandleMessage(ctx, &usecase.InboundMessage{Channel: entity.ChannelWhatsApp, RemoteJID: "5511987654321@s.whatsapp.net", Text: "oi"})
	require.Error(t, err)
	assert.Equal(t, "Olá!", reply.Reply)
}

func TestParseToolCall(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		call  service.ToolCall
		check func(t *testing.T, got toolCall)
	}{
		{
			name: "menu without arguments",
			call: service.ToolCall{ID: "1", Name: toolGetMenu},
			check: func(t *testing.T, got toolCall) {
				assert.Equal(t, getMenuCall{id: "1"}, got)
			},
		},
		{
			name: "order accepts string change",
			call: service.ToolCall{ID: "2", Name: toolCreateOrder, Arguments: json.RawMessage(`{"items":[{"product":"calabresa","quantity":1}],"payment_method":"dinheiro","change_for":"100,00","delivery_type":"pickup"}`)},
			check: func(t *testing.T, got toolCall) {
				order, ok := got.(createOrderCall)
				require.True(t, ok)
				require.NotNil(t, order.input.ChangeFor)
				assert.Equal(t, 100.0, *order.input.ChangeFor)
				assert.Equal(t, entity.DeliveryTypePickup, order.input.DeliveryType)
			},
		},
		{
			name: "order status accepts a number",
			call: service.ToolCall{ID: "3", Name: toolCheckOrderStatus, Arguments: json.RawMessage(`{"order":42}`)},
			check: func(t *testing.T, got toolCall) {
				assert.Equal(t, checkOrderStatusCall{id: "3", ref: "42"}, got)
			},
		},
		{
			name: "malformed arguments",
			call: service.ToolCall{ID: "4", Name: toolRegisterCustomer, Arguments: json.RawMessage(`{"name":`)},
			check: func(t *testing.T, got toolCall) {
				unknown, ok := got.(unknownToolCall)
				require.True(t, ok)
				assert.Equal(t, "4", unknown.callID())
				assert.Contains(t, unknown.reason, "argumentos inválidos")
			},
		},
		{
			name: "unknown tool",
			call: service.ToolCall{ID: "5", Name: "delete_everything"},
			check: func(t *testing.T, got toolCall) {
				assert.Equal(t, unknownToolCall{id: "5", name: "delete_everything", reason: "ferramenta desconhecida"}, got)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, parseToolCall(tt.call))
		})
	}
}

func TestToolDefinitions_CartOnlyOnWeb(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{toolGetMenu, toolRegisterCustomer, toolCreateOrder, toolCheckOrderStatus},
		toolNames(toolDefinitions(entity.ChannelWhatsApp)),
	)
	assert.Equal(t,
		[]string{toolGetMenu, toolRegisterCustomer, toolCreateOrder, toolAddToCart, toolCheckOrderStatus},
		toolNames(toolDefinitions(entity.ChannelWeb)),
	)
}
