package handler

import (
	"net/http"

	"pedido/internal/delivery/api/response"
	"pedido/internal/domain/entity"
	"pedido/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ChatRequest is a message typed in the storefront chat widget
type ChatRequest struct {
	SessionID string `json:"sessionId" validate:"required,max=128"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	Message   string `json:"message" validate:"required,max=4000"`
}

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	Conversation usecase.ConversationUsecase
}

// ChatHandler serves the web chat channel
type ChatHandler struct {
	conversation usecase.ConversationUsecase
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{conversation: params.Conversation}
}

// SendMessage answers synchronously; the reply and any cart additions are in the body.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	reply, err := h.conversation.HandleMessage(c.Request().Context(), &usecase.InboundMessage{
		Channel:   entity.ChannelWeb,
		SessionID: req.SessionID,
		Phone:     req.Phone,
		Text:      req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reply, "")
}
