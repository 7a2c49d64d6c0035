package service

import (
	"context"
)

// PushMessage is the content of a browser push notification.
type PushMessage struct {
	Title string
	Body  string
	Icon  string
	URL   string
	Data  map[string]string
}

// PushService defines the interface for push notification delivery
type PushService interface {
	// SendBatchNotification sends a push notification to multiple tokens (max 500 per call)
	// Returns success count, failure count, list of tokens reported permanently invalid, and error
	SendBatchNotification(ctx context.Context, tokens []string, msg *PushMessage) (successCount, failureCount int, invalidTokens []string, err error)
}
