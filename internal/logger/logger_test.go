package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSanitizeKVsRedactsCredentials(t *testing.T) {
	got := sanitizeKVs([]interface{}{"postgres_uri", "postgres://u:p@h/db", "file", "a.json", "dangling"})
	assert.Equal(t, []interface{}{"postgres_uri", "[REDACTED]", "file", "a.json", "dangling"}, got)
}

func TestSanitizeKVsEmpty(t *testing.T) {
	assert.Empty(t, sanitizeKVs(nil))
}

func TestLoggerRedactsConnectionTarget(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	log := (&Logger{SugaredLogger: zap.New(core).Sugar()}).With("DSN", "host=db password=secret")

	log.Info("connecting to PostgreSQL", "postgres_uri", "postgres://loader:secret@db:5432/corpus")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "[REDACTED]", fields["postgres_uri"])
	assert.Equal(t, "[REDACTED]", fields["DSN"])
}
