package impl

import (
	"io"
	"log/slog"
	"time"

	"pedido/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Admin: &config.AdminConfig{
			Username: "admin",
			TokenTTL: time.Hour,
		},
		Conversation: &config.ConversationConfig{
			CompletionTimeout:  200 * time.Millisecond,
			HistoryLimit:       10,
			DefaultModel:       "gpt-4o-mini",
			TranscriptionModel: "whisper-1",
		},
		Phone: &config.PhoneConfig{CountryCode: "55", AreaCode: "11"},
		Storefront: &config.StorefrontConfig{
			BaseURL:            "https://loja.example.com",
			TrackingPathPrefix: "/pedido/",
			PushIcon:           "https://loja.example.com/icon.png",
			AdminOrdersURL:     "https://loja.example.com/admin/pedidos",
		},
	}
}
