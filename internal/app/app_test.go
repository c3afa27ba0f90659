package app_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aesguard/internal/app"
	"aesguard/internal/domain"
	"aesguard/internal/logging"
)

func TestNew_WiresLoggerIntoService(t *testing.T) {
	var buf bytes.Buffer
	a := app.New(app.Config{LogLevel: slog.LevelDebug, LogFormat: logging.FormatJSON, LogOutput: &buf})

	kcv, err := a.Primitive.CheckValue(make(domain.CipherKey, 16))
	require.NoError(t, err)
	assert.Equal(t, "66e94b", kcv)
	assert.Contains(t, buf.String(), `"component":"aesguard"`)
	assert.Contains(t, buf.String(), `"kcv":"66e94b"`)
}

func TestDefaultConfig(t *testing.T) {
	cfg := app.DefaultConfig()
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, logging.FormatText, cfg.LogFormat)
	assert.NotNil(t, cfg.LogOutput)
}
