package qrcode

import (
	"testing"

	"pedido/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(size int, level string) *qrcodeService {
	svc, _ := NewQRCodeService(&config.Config{
		QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level},
	}).(*qrcodeService)

	return svc
}

func TestRecoveryLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "Q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newTestService(256, tt.level).errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_DefaultSize(t *testing.T) {
	assert.Equal(t, defaultSize, newTestService(0, "M").size)
}

func TestQRCodeService_GenerateURLQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qrBytes, err := newTestService(tt.size, "M").GenerateURLQR("https://loja.example/pedido/3f2a")
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_GenerateURLQR_InvalidURL(t *testing.T) {
	svc := newTestService(256, "M")

	for _, raw := range []string{"", "/pedido/1", "not a url"} {
		_, err := svc.GenerateURLQR(raw)
		assert.Error(t, err, raw)
	}
}
