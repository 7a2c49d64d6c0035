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

type storefrontFixtures struct {
	e        *echo.Echo
	menu     *mockUsecase.MockMenuUsecase
	checkout *mockUsecase.MockCheckoutUsecase
	orders   *mockUsecase.MockOrderUsecase
}

func createTestStorefront(t *testing.T) storefrontFixtures {
	fx := storefrontFixtures{
		e:        newTestEcho(),
		menu:     mockUsecase.NewMockMenuUsecase(t),
		checkout: mockUsecase.NewMockCheckoutUsecase(t),
		orders:   mockUsecase.NewMockOrderUsecase(t),
	}
	h := NewStorefrontHandler(StorefrontHandlerParams{Menu: fx.menu, Checkout: fx.checkout, Orders: fx.orders})
	fx.e.GET("/api/menu", h.GetMenu)
	fx.e.GET("/api/delivery-fee", h.GetDeliveryFee)
	fx.e.GET("/api/orders/:ref", h.GetOrder)
	fx.e.GET("/api/orders/:ref/qrcode", h.GetOrderQRCode)

	return fx
}

func TestStorefrontHandler_GetMenu(t *testing.T) {
	fx := createTestStorefront(t)

	fx.menu.EXPECT().GetMenu(mock.Anything).Return(&usecase.Menu{Categories: []usecase.MenuCategory{
		{Name: "Pizzas", Products: []*entity.Product{{ID: uuid.New(), Name: "Pizza Calabresa", Price: 45.9}}},
	}}, nil)

	rec := doJSON(fx.e, http.MethodGet, "/api/menu", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var menu usecase.Menu
	decodeEnvelope(t, rec, &menu)
	require.Len(t, menu.Categories, 1)
	assert.Equal(t, "Pizzas", menu.Categories[0].Name)
}

func TestStorefrontHandler_GetDeliveryFee(t *testing.T) {
	fx := createTestStorefront(t)

	fx.checkout.EXPECT().CalculateDeliveryFee(mock.Anything, "01310-100").Return(&usecase.DeliveryFeeQuote{Fee: 8, ZoneName: "Centro"}, nil)
	fx.checkout.EXPECT().CalculateDeliveryFee(mock.Anything, "99999-999").Return(nil, domainerrors.ErrOutsideDeliveryArea)

	rec := doJSON(fx.e, http.MethodGet, "/api/delivery-fee?cep=01310-100", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var quote usecase.DeliveryFeeQuote
	decodeEnvelope(t, rec, &quote)
	assert.Equal(t, 8.0, quote.Fee)

	rec = doJSON(fx.e, http.MethodGet, "/api/delivery-fee?cep=99999-999", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "OUTSIDE_DELIVERY_AREA", decodeEnvelope(t, rec, nil).Error.Code)

	rec = doJSON(fx.e, http.MethodGet, "/api/delivery-fee", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStorefrontHandler_GetOrderHidesContactData(t *testing.T) {
	fx := createTestStorefront(t)
	order := &entity.Order{
		ID:              uuid.New(),
		OrderNumber:     42,
		CustomerName:    "Maria",
		CustomerPhone:   "5511987654321",
		CustomerAddress: "Rua Augusta, 100",
		Total:           53.9,
		Status:          entity.OrderStatusPreparing,
		DeliveryType:    entity.DeliveryTypeDelivery,
	}

	fx.checkout.EXPECT().FindOrder(mock.Anything, "42").Return(order, nil)

	rec := doJSON(fx.e, http.MethodGet, "/api/orders/42", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got trackedOrder
	decodeEnvelope(t, rec, &got)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, "Em preparo", got.StatusLabel)
	assert.NotContains(t, rec.Body.String(), "5511987654321")
	assert.NotContains(t, rec.Body.String(), "Rua Augusta")
}

func TestStorefrontHandler_GetOrderQRCode(t *testing.T) {
	fx := createTestStorefront(t)
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.orders.EXPECT().GetTrackingQR(mock.Anything, "42").Return(png, nil)
	fx.orders.EXPECT().GetTrackingQR(mock.Anything, "404").Return(nil, domainerrors.ErrOrderNotFound)

	rec := doJSON(fx.e, http.MethodGet, "/api/orders/42/qrcode", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())

	rec = doJSON(fx.e, http.MethodGet, "/api/orders/404/qrcode", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
