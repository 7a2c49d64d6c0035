package handler

import (
	"net/http"

	"pedido/internal/delivery/api/response"
	"pedido/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SubscribeRequest registers a browser for new-order push alerts
type SubscribeRequest struct {
	Token string `json:"token" validate:"required"`
}

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	Notifications usecase.NotificationUsecase
}

// SubscriptionHandler manages push subscriptions
type SubscriptionHandler struct {
	notifications usecase.NotificationUsecase
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{notifications: params.Notifications}
}

// Subscribe stores the push token
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.notifications.Subscribe(c.Request().Context(), req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, nil, "Subscribed")
}
