// Package transcription turns WhatsApp voice notes into text through an
// OpenAI-compatible /audio/transcriptions endpoint.
package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"pedido/config"
	"pedido/internal/domain/entity"
	"pedido/internal/domain/service"
	"pedido/internal/errors"

	"go.uber.org/fx"
)

const (
	defaultBaseURL  = "https://api.openai.com/v1"
	defaultFileName = "audio.ogg"
	requestTimeout  = 30 * time.Second
)

// ErrEmptyAudio is returned when there is nothing to transcribe
var ErrEmptyAudio = errors.New("audio payload is empty")

type whisperTranscriber struct {
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params defines the dependencies of the transcriber
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewWhisperTranscriber creates a Transcriber
func NewWhisperTranscriber(params Params) service.Transcriber {
	baseURL := params.Config.Transcription.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &whisperTranscriber{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      params.Config.Conversation.TranscriptionModel,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     params.Logger,
	}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads the audio as multipart form data and returns the transcript
func (t *whisperTranscriber) Transcribe(ctx context.Context, creds entity.CompletionCredentials, audio *service.AudioPayload) (string, error) {
	if audio == nil || len(audio.Data) == 0 {
		return "", ErrEmptyAudio
	}

	body, contentType, err := t.buildForm(audio)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/audio/transcriptions", body)
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Authorization", "Bearer "+creds.APIKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "transcription request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return "", errors.Errorf("transcription api error: status=%d body=%s", resp.StatusCode, string(raw))
	}

	var out transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errors.Wrap(err, "failed to decode transcription response")
	}

	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", errors.New("transcription returned empty text")
	}

	t.logger.DebugContext(ctx, "Audio transcribed", slog.Int("audio_bytes", len(audio.Data)), slog.Int("text_length", len(text)))

	return text, nil
}

func (t *whisperTranscriber) buildForm(audio *service.AudioPayload) (io.Reader, string, error) {
	fileName := audio.FileName
	if fileName == "" {
		fileName = defaultFileName
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	if err := writer.WriteField("model", t.model); err != nil {
		return nil, "", errors.WithStack(err)
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, fileName))
	if audio.MimeType != "" {
		header.Set("Content-Type", audio.MimeType)
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", errors.WithStack(err)
	}
	if _, err := part.Write(audio.Data); err != nil {
		return nil, "", errors.WithStack(err)
	}

	if err := writer.Close(); err != nil {
		return nil, "", errors.WithStack(err)
	}

	return &buf, writer.FormDataContentType(), nil
}
