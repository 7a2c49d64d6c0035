package handler

import (
	"net/http"
	"time"

	"pedido/internal/delivery/api/response"
	"pedido/internal/domain/entity"
	"pedido/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StorefrontHandlerParams holds dependencies for StorefrontHandler, injected by Fx.
type StorefrontHandlerParams struct {
	fx.In

	Menu     usecase.MenuUsecase
	Checkout usecase.CheckoutUsecase
	Orders   usecase.OrderUsecase
}

// StorefrontHandler serves the public read endpoints of the web storefront
type StorefrontHandler struct {
	menu     usecase.MenuUsecase
	checkout usecase.CheckoutUsecase
	orders   usecase.OrderUsecase
}

// NewStorefrontHandler is the constructor for StorefrontHandler
func NewStorefrontHandler(params StorefrontHandlerParams) *StorefrontHandler {
	return &StorefrontHandler{
		menu:     params.Menu,
		checkout: params.Checkout,
		orders:   params.Orders,
	}
}

// GetMenu returns available products grouped by category
func (h *StorefrontHandler) GetMenu(c echo.Context) error {
	menu, err := h.menu.GetMenu(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, menu, "")
}

// GetDeliveryFee quotes delivery for ?cep=
func (h *StorefrontHandler) GetDeliveryFee(c echo.Context) error {
	cep := c.QueryParam("cep")
	if cep == "" {
		return response.BadRequest(c, "MISSING_CEP", "Informe o CEP")
	}

	quote, err := h.checkout.CalculateDeliveryFee(c.Request().Context(), cep)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "")
}

// trackedOrder is what the public tracking page may show. Contact data is left out.
type trackedOrder struct {
	ID           uuid.UUID           `json:"id"`
	OrderNumber  int64               `json:"order_number"`
	Status       entity.OrderStatus  `json:"status"`
	StatusLabel  string              `json:"status_label"`
	DeliveryType entity.DeliveryType `json:"delivery_type"`
	Subtotal     float64             `json:"subtotal"`
	DeliveryFee  float64             `json:"delivery_fee"`
	Total        float64             `json:"total"`
	Items        []*entity.OrderItem `json:"items"`
	CreatedAt    time.Time           `json:"created_at"`
}

// GetOrder looks up an order for the tracking page
func (h *StorefrontHandler) GetOrder(c echo.Context) error {
	order, err := h.checkout.FindOrder(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, trackedOrder{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		Status:       order.Status,
		StatusLabel:  order.Status.Label(),
		DeliveryType: order.DeliveryType,
		Subtotal:     order.Subtotal,
		DeliveryFee:  order.DeliveryFee,
		Total:        order.Total,
		Items:        order.Items,
		CreatedAt:    order.CreatedAt,
	}, "")
}

// GetOrderQRCode renders the tracking link as a PNG
func (h *StorefrontHandler) GetOrderQRCode(c echo.Context) error {
	png, err := h.orders.GetTrackingQR(c.Request().Context(), c.Param("ref"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
