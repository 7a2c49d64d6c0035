package messaging

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pedido/config"
	"pedido/internal/domain/entity"
	"pedido/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestGateway(t *testing.T) service.MessagingGateway {
	t.Helper()

	return NewEvolutionGateway(Params{
		Config: &config.Config{Gateway: &config.GatewayConfig{Timeout: time.Second}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

type capturedRequest struct {
	path   string
	apikey string
	body   map[string]any
}

func newCaptureServer(t *testing.T, status int, captured *capturedRequest) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.apikey = r.Header.Get("apikey")
		_ = json.NewDecoder(r.Body).Decode(&captured.body)
		w.WriteHeader(status)
	}))
}

func TestEvolutionGateway_SendText(t *testing.T) {
	var captured capturedRequest
	server := newCaptureServer(t, http.StatusCreated, &captured)
	defer server.Close()

	creds := entity.GatewayCredentials{BaseURL: server.URL + "/", APIKey: "evo-key", Instance: "loja"}
	err := createTestGateway(t).SendText(context.Background(), creds, "5511987654321", "Seu pedido saiu!")
	require.NoError(t, err)

	assert.Equal(t, "/message/sendText/loja", captured.path)
	assert.Equal(t, "evo-key", captured.apikey)
	assert.Equal(t, "5511987654321", captured.body["number"])
	assert.Equal(t, "Seu pedido saiu!", captured.body["text"])
}

func TestEvolutionGateway_SendMedia(t *testing.T) {
	var captured capturedRequest
	server := newCaptureServer(t, http.StatusOK, &captured)
	defer server.Close()

	creds := entity.GatewayCredentials{BaseURL: server.URL, APIKey: "evo-key", Instance: "loja"}
	err := createTestGateway(t).SendMedia(context.Background(), creds, "5511987654321", "Cardápio", "https://cdn/menu.png")
	require.NoError(t, err)

	assert.Equal(t, "/message/sendMedia/loja", captured.path)
	assert.Equal(t, "image", captured.body["mediatype"])
	assert.Equal(t, "https://cdn/menu.png", captured.body["media"])
	assert.Equal(t, "Cardápio", captured.body["caption"])
}

func TestEvolutionGateway_Errors(t *testing.T) {
	var captured capturedRequest
	server := newCaptureServer(t, http.StatusBadGateway, &captured)
	defer server.Close()

	gw := createTestGateway(t)

	err := gw.SendText(context.Background(), entity.GatewayCredentials{}, "5511", "x")
	assert.ErrorIs(t, err, ErrGatewayNotConfigured)

	err = gw.SendText(context.Background(), entity.GatewayCredentials{BaseURL: server.URL, Instance: "loja"}, "5511", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=502")
}
