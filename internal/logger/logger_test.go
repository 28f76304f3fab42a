package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoicedesk/internal/config"
	"invoicedesk/internal/logger"
)

func TestSetupWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, logger.SetupWriter(config.LogConfig{Level: "info", Format: "json"}, &buf))

	l := logger.WithComponent("billing")
	l.Info().Str("invoice_number", "INV-05-25-1").Msg("created")
	l.Debug().Msg("dropped below level")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "billing", entry["component"])
	assert.Equal(t, "INV-05-25-1", entry["invoice_number"])
	assert.Equal(t, "created", entry["message"])
}

func TestSetupWriter_Console(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, logger.SetupWriter(config.LogConfig{Level: "debug", Format: "console"}, &buf))

	l := logger.WithRequestID("req-1")
	l.Debug().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "req-1")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestSetupWriter_InvalidLevel(t *testing.T) {
	assert.Error(t, logger.SetupWriter(config.LogConfig{Level: "loud"}, &bytes.Buffer{}))
}
