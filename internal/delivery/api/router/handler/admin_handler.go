package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pedido/internal/delivery/api/middleware"
	"pedido/internal/delivery/api/response"
	deliverycontext "pedido/internal/delivery/context"
	"pedido/internal/domain/entity"
	"pedido/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LoginRequest is the back-office credential pair
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateStatusRequest moves an order through its lifecycle
type UpdateStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// ReplaceItemsRequest is the full new item list of an order
type ReplaceItemsRequest struct {
	Items []usecase.OrderLineInput `json:"items" validate:"required,min=1,dive"`
}

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	Admin    usecase.AdminUsecase
	Orders   usecase.OrderUsecase
	Settings usecase.SettingsUsecase
	Logger   *slog.Logger
}

// AdminHandler serves the back-office endpoints
type AdminHandler struct {
	admin    usecase.AdminUsecase
	orders   usecase.OrderUsecase
	settings usecase.SettingsUsecase
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		admin:    params.Admin,
		orders:   params.Orders,
		settings: params.Settings,
		logger:   params.Logger,
	}
}

// Login issues an access token
func (h *AdminHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.admin.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// UpdateOrderStatus changes the status and triggers the customer notification
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.orders.UpdateOrderStatus(c.Request().Context(), c.Param("ref"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.audit(c, "Order status changed", slog.Int64("order_number", order.OrderNumber), slog.String("status", string(order.Status)))

	return response.Success(c, http.StatusOK, order, "")
}

// ReplaceOrderItems swaps the item list of an order
func (h *AdminHandler) ReplaceOrderItems(c echo.Context) error {
	var req ReplaceItemsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid items input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	out, err := h.orders.ReplaceOrderItems(c.Request().Context(), c.Param("ref"), req.Items)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.audit(c, "Order items replaced", slog.Int64("order_number", out.Order.OrderNumber), slog.Int("items", len(out.Order.Items)))

	return response.Success(c, http.StatusOK, out, "")
}

// settingsView hides all but the last characters of stored secrets
type settingsView struct {
	CompletionAPIKey string              `json:"completion_api_key"`
	CompletionModel  string              `json:"completion_model"`
	SystemPrompt     string              `json:"system_prompt"`
	GatewayURL       string              `json:"gateway_url"`
	GatewayAPIKey    string              `json:"gateway_api_key"`
	GatewayInstance  string              `json:"gateway_instance"`
	AdminPhone       string              `json:"admin_phone"`
	Active           bool                `json:"active"`
	OpeningHours     entity.OpeningHours `json:"opening_hours"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func newSettingsView(s *entity.Settings) settingsView {
	return settingsView{
		CompletionAPIKey: maskSecret(s.CompletionAPIKey),
		CompletionModel:  s.CompletionModel,
		SystemPrompt:     s.SystemPrompt,
		GatewayURL:       s.GatewayURL,
		GatewayAPIKey:    maskSecret(s.GatewayAPIKey),
		GatewayInstance:  s.GatewayInstance,
		AdminPhone:       s.AdminPhone,
		Active:           s.Active,
		OpeningHours:     s.OpeningHours,
		UpdatedAt:        s.UpdatedAt,
	}
}

func maskSecret(secret string) string {
	const visible = 4
	if len(secret) <= visible {
		return strings.Repeat("*", len(secret))
	}

	return strings.Repeat("*", len(secret)-visible) + secret[len(secret)-visible:]
}

// GetSettings returns the integration settings
func (h *AdminHandler) GetSettings(c echo.Context) error {
	settings, err := h.settings.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSettingsView(settings), "")
}

// UpdateSettings applies a partial settings update
func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var req usecase.UpdateSettingsInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	settings, err := h.settings.UpdateSettings(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.audit(c, "Settings changed", slog.Bool("active", settings.Active))

	return response.Success(c, http.StatusOK, newSettingsView(settings), "Settings updated")
}

func (h *AdminHandler) audit(c echo.Context, msg string, attrs ...any) {
	subject, _ := middleware.GetSubject(c)
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		With(slog.String("admin", subject)).
		Info(msg, attrs...)
}
