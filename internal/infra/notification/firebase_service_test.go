package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"pedido/config"
	"pedido/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMulticast(t *testing.T) {
	msg := &service.PushMessage{
		Title: "Novo pedido #7",
		Body:  "Maria - R$ 45,90",
		Icon:  "/icon.png",
		URL:   "https://loja.example/admin/pedidos",
		Data:  map[string]string{"order_id": "abc"},
	}

	multicast := buildMulticast([]string{"t1", "t2"}, msg)

	assert.Equal(t, []string{"t1", "t2"}, multicast.Tokens)
	assert.Equal(t, "Novo pedido #7", multicast.Notification.Title)
	require.NotNil(t, multicast.Webpush)
	assert.Equal(t, "/icon.png", multicast.Webpush.Notification.Icon)
	require.NotNil(t, multicast.Webpush.FCMOptions)
	assert.Equal(t, "https://loja.example/admin/pedidos", multicast.Webpush.FCMOptions.Link)
	assert.Equal(t, "abc", multicast.Data["order_id"])
}

func TestBuildMulticast_NoLink(t *testing.T) {
	multicast := buildMulticast([]string{"t1"}, &service.PushMessage{Title: "x"})

	assert.Nil(t, multicast.Webpush.FCMOptions)
}

func TestNewPushService_DisabledWithoutCredentials(t *testing.T) {
	svc, err := NewPushService(Params{
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	success, failure, invalid, err := svc.SendBatchNotification(context.Background(), []string{"t1"}, &service.PushMessage{Title: "x"})
	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
}
