package handler

import (
	"net/http"
	"testing"

	"pedido/internal/domain/entity"
	domainerrors "pedido/internal/domain/errors"
	mockUsecase "pedido/internal/mocks/usecase"
	"pedido/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestChat(t *testing.T) (*echo.Echo, *mockUsecase.MockConversationUsecase) {
	conversation := mockUsecase.NewMockConversationUsecase(t)
	h := NewChatHandler(ChatHandlerParams{Conversation: conversation})

	e := newTestEcho()
	e.POST("/api/chat", h.SendMessage)

	return e, conversation
}

func TestChatHandler_SendMessage(t *testing.T) {
	e, conversation := newTestChat(t)
	productID := uuid.New()

	conversation.EXPECT().
		HandleMessage(mock.Anything, &usecase.InboundMessage{
			Channel:   entity.ChannelWeb,
			SessionID: "sess-1",
			Phone:     "11987654321",
			Text:      "2 calabresas",
		}).
		Return(&usecase.ConversationReply{
			Identity: "5511987654321",
			Reply:    "Adicionei ao carrinho!",
			Cart:     []usecase.CartLine{{ProductID: productID, Name: "Pizza Calabresa", Price: 45.9, Quantity: 2}},
		}, nil)

	rec := doJSON(e, http.MethodPost, "/api/chat", `{"sessionId":"sess-1","phone":"11987654321","message":"2 calabresas"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var reply usecase.ConversationReply
	env := decodeEnvelope(t, rec, &reply)
	assert.True(t, env.Success)
	assert.Equal(t, "Adicionei ao carrinho!", reply.Reply)
	require.Len(t, reply.Cart, 1)
	assert.Equal(t, productID, reply.Cart[0].ProductID)
	assert.NotContains(t, rec.Body.String(), "5511987654321", "identity stays server side")
}

func TestChatHandler_Validation(t *testing.T) {
	e, conversation := newTestChat(t)

	rec := doJSON(e, http.MethodPost, "/api/chat", `{"message":"oi"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	env := decodeEnvelope(t, rec, nil)
	assert.False(t, env.Success)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, []any{"sessionId"}, env.Error.Details)
	conversation.AssertNotCalled(t, "HandleMessage", mock.Anything, mock.Anything)
}

func TestChatHandler_DomainError(t *testing.T) {
	e, conversation := newTestChat(t)

	conversation.EXPECT().
		HandleMessage(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("session id or phone required"))

	rec := doJSON(e, http.MethodPost, "/api/chat", `{"sessionId":" ","message":"oi"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec, nil)
	assert.Equal(t, "session id or phone required", env.Error.Details)
}
