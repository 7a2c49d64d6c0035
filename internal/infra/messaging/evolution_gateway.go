// Package messaging sends WhatsApp messages through an Evolution API instance.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"pedido/config"
	"pedido/internal/domain/entity"
	"pedido/internal/domain/service"
	"pedido/internal/errors"

	"go.uber.org/fx"
)

// ErrGatewayNotConfigured is returned when the settings row has no gateway instance
var ErrGatewayNotConfigured = errors.New("messaging gateway is not configured")

type evolutionGateway struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// Params defines the dependencies of the gateway
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewEvolutionGateway creates a MessagingGateway
func NewEvolutionGateway(params Params) service.MessagingGateway {
	return &evolutionGateway{
		httpClient: &http.Client{Timeout: params.Config.Gateway.Timeout},
		logger:     params.Logger,
	}
}

type sendTextRequest struct {
	Number string `json:"number"`
	Text   string `json:"text"`
}

type sendMediaRequest struct {
	Number    string `json:"number"`
	MediaType string `json:"mediatype"`
	Media     string `json:"media"`
	Caption   string `json:"caption,omitempty"`
}

// SendText posts a plain text message
func (g *evolutionGateway) SendText(ctx context.Context, creds entity.GatewayCredentials, destination, body string) error {
	return g.post(ctx, creds, "sendText", &sendTextRequest{
		Number: destination,
		Text:   body,
	})
}

// SendMedia posts an image message with an optional caption
func (g *evolutionGateway) SendMedia(ctx context.Context, creds entity.GatewayCredentials, destination, caption, mediaURL string) error {
	return g.post(ctx, creds, "sendMedia", &sendMediaRequest{
		Number:    destination,
		MediaType: "image",
		Media:     mediaURL,
		Caption:   caption,
	})
}

func (g *evolutionGateway) post(ctx context.Context, creds entity.GatewayCredentials, action string, payload any) error {
	if creds.BaseURL == "" || creds.Instance == "" {
		return ErrGatewayNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.WithStack(err)
	}

	endpoint := strings.TrimRight(creds.BaseURL, "/") + "/message/" + action + "/" + url.PathEscape(creds.Instance)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", creds.APIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "gateway %s request failed", action)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return errors.Errorf("gateway %s error: status=%d body=%s", action, resp.StatusCode, string(raw))
	}

	g.logger.DebugContext(ctx, "Gateway message sent", slog.String("action", action), slog.String("instance", creds.Instance))

	return nil
}
