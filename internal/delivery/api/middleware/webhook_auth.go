package middleware

import (
	"crypto/subtle"

	"pedido/config"
	"pedido/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HeaderWebhookAPIKey is the header the gateway sends with every webhook call
const HeaderWebhookAPIKey = "apikey"

// WebhookAuth checks the shared webhook token. An empty token disables the check.
func WebhookAuth(cfg *config.Config) echo.MiddlewareFunc {
	var token string
	if cfg.Webhook != nil {
		token = cfg.Webhook.Token
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if token == "" {
			return next
		}

		return func(c echo.Context) error {
			got := c.Request().Header.Get(HeaderWebhookAPIKey)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				return response.Unauthorized(c, "INVALID_WEBHOOK_TOKEN", "Invalid webhook token")
			}

			return next(c)
		}
	}
}
