package service

import (
	"context"

	"pedido/internal/domain/entity"
)

// AudioPayload is a voice message as received from the transport.
type AudioPayload struct {
	Data     []byte
	MimeType string
	FileName string
}

// Transcriber converts speech to text.
type Transcriber interface {
	Transcribe(ctx context.Context, creds entity.CompletionCredentials, audio *AudioPayload) (string, error)
}
