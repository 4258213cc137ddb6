package qrcode

import (
	"bytes"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestQRCodeService_GenerateURLQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	png, err := service.GenerateURLQR("/api/journeys/public/some-token")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
}

func TestNewQRCodeService_Defaults(t *testing.T) {
	service := NewQRCodeService(0, "bogus").(*qrcodeService)

	assert.Equal(t, 256, service.size)
	assert.Equal(t, qrcode.Medium, service.errorCorrectionLevel)
}
