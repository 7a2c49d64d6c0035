package handler

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"pedido/internal/delivery/api/response"
	deliverycontext "pedido/internal/delivery/context"
	"pedido/internal/domain/entity"
	"pedido/internal/domain/service"
	"pedido/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const eventMessagesUpsert = "messages.upsert"

// evolutionWebhook is the subset of the gateway's webhook body the assistant reads.
type evolutionWebhook struct {
	Event    string           `json:"event"`
	Instance string           `json:"instance"`
	Data     evolutionMessage `json:"data"`
}

type evolutionMessage struct {
	Key struct {
		RemoteJID string `json:"remoteJid"`
		FromMe    bool   `json:"fromMe"`
		ID        string `json:"id"`
	} `json:"key"`
	PushName    string `json:"pushName"`
	MessageType string `json:"messageType"`
	Message     struct {
		Conversation        string `json:"conversation"`
		ExtendedTextMessage *struct {
			Text string `json:"text"`
		} `json:"extendedTextMessage"`
		AudioMessage *struct {
			Mimetype string `json:"mimetype"`
		} `json:"audioMessage"`
		Base64 string `json:"base64"`
	} `json:"message"`
}

const (
	// The gateway redelivers a message it did not see acknowledged in time.
	seenMessageTTL  = 10 * time.Minute
	maxSeenMessages = 4096
)

// WebhookHandlerParams holds dependencies for WebhookHandler, injected by Fx.
type WebhookHandlerParams struct {
	fx.In

	Lc           fx.Lifecycle `optional:"true"`
	Conversation usecase.ConversationUsecase
	Logger       *slog.Logger
}

// WebhookHandler accepts gateway webhooks and processes them after answering.
type WebhookHandler struct {
	conversation usecase.ConversationUsecase
	logger       *slog.Logger
	dispatch     func(fn func())
	now          func() time.Time

	mu       sync.Mutex
	stopping bool
	seen     map[string]time.Time
	inflight sync.WaitGroup
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(params WebhookHandlerParams) *WebhookHandler {
	h := &WebhookHandler{
		conversation: params.Conversation,
		logger:       params.Logger,
		dispatch:     func(fn func()) { go fn() },
		now:          time.Now,
		seen:         make(map[string]time.Time),
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: h.Drain,
		})
	}

	return h
}

// HandleWhatsApp acknowledges every well-formed webhook. The conversation runs detached
// so the gateway never waits on the completion engine.
func (h *WebhookHandler) HandleWhatsApp(c echo.Context) error {
	var payload evolutionWebhook
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid webhook payload")
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)

	msg, reason := inboundFromWebhook(&payload)
	if msg == nil {
		logger.Debug("Webhook ignored",
			slog.String("event", payload.Event),
			slog.String("reason", reason),
		)

		return response.Success(c, http.StatusOK, map[string]string{"status": "ignored", "reason": reason}, "")
	}

	switch h.admit(payload.Data.Key.ID) {
	case admitStopping:
		// Unacknowledged, so the gateway redelivers it to an instance that is up.
		return response.Error(c, http.StatusServiceUnavailable, "SHUTTING_DOWN", "Webhook receiver is shutting down", nil)
	case admitDuplicate:
		logger.Debug("Webhook ignored",
			slog.String("event", payload.Event),
			slog.String("message_id", payload.Data.Key.ID),
			slog.String("reason", "duplicate message"),
		)

		return response.Success(c, http.StatusOK, map[string]string{"status": "ignored", "reason": "duplicate message"}, "")
	}

	ctx := deliverycontext.Detach(c.Request().Context())
	h.dispatch(func() {
		defer h.inflight.Done()
		h.process(ctx, msg)
	})

	return response.Success(c, http.StatusOK, map[string]string{"status": "accepted"}, "")
}

// Drain stops accepting messages and waits for the ones already accepted, or for ctx.
func (h *WebhookHandler) Drain(ctx context.Context) error {
	h.mu.Lock()
	h.stopping = true
	h.mu.Unlock()

	done := make(chan struct{})
	go func() {
		h.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		h.logger.Warn("Webhook drain interrupted", slog.Any("error", ctx.Err()))
		return ctx.Err()
	}
}

type admission int

const (
	admitAccepted admission = iota
	admitDuplicate
	admitStopping
)

// admit registers an accepted message with the in-flight group while holding mu,
// so Drain never waits on a group that can still grow.
func (h *WebhookHandler) admit(messageID string) admission {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopping {
		return admitStopping
	}

	if messageID != "" {
		now := h.now()
		if at, ok := h.seen[messageID]; ok && now.Sub(at) < seenMessageTTL {
			return admitDuplicate
		}
		if len(h.seen) >= maxSeenMessages {
			h.evictSeen(now)
		}
		h.seen[messageID] = now
	}

	h.inflight.Add(1)

	return admitAccepted
}

// evictSeen drops expired ids, and the oldest one when none has expired yet.
func (h *WebhookHandler) evictSeen(now time.Time) {
	var oldestID string
	var oldestAt time.Time
	for id, at := range h.seen {
		if now.Sub(at) >= seenMessageTTL {
			delete(h.seen, id)
			continue
		}
		if oldestID == "" || at.Before(oldestAt) {
			oldestID, oldestAt = id, at
		}
	}
	if len(h.seen) >= maxSeenMessages {
		delete(h.seen, oldestID)
	}
}

func (h *WebhookHandler) process(ctx context.Context, msg *usecase.InboundMessage) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Webhook processing panicked", slog.Any("panic", r))
		}
	}()

	if _, err := h.conversation.HandleMessage(ctx, msg); err != nil {
		logger.Error("Failed to handle WhatsApp message", slog.Any("error", err))
	}
}

// inboundFromWebhook returns nil and a reason for anything that is not a customer message.
func inboundFromWebhook(payload *evolutionWebhook) (*usecase.InboundMessage, string) {
	event := strings.ReplaceAll(strings.ToLower(payload.Event), "_", ".")
	if event != eventMessagesUpsert {
		return nil, "unsupported event"
	}

	data := &payload.Data
	if data.Key.FromMe {
		return nil, "own message"
	}
	jid := data.Key.RemoteJID
	if jid == "" || strings.HasSuffix(jid, "@g.us") || strings.HasPrefix(jid, "status@") {
		return nil, "not a direct chat"
	}

	msg := &usecase.InboundMessage{
		Channel:   entity.ChannelWhatsApp,
		RemoteJID: jid,
		Text:      data.Message.Conversation,
	}
	if msg.Text == "" && data.Message.ExtendedTextMessage != nil {
		msg.Text = data.Message.ExtendedTextMessage.Text
	}
	if msg.Text == "" && data.Message.AudioMessage != nil {
		audio := &service.AudioPayload{MimeType: data.Message.AudioMessage.Mimetype, FileName: "audio.ogg"}
		if decoded, err := base64.StdEncoding.DecodeString(data.Message.Base64); err == nil {
			audio.Data = decoded
		}
		msg.Audio = audio
	}
	if strings.TrimSpace(msg.Text) == "" && msg.Audio == nil {
		return nil, "no text or audio"
	}

	return msg, ""
}
