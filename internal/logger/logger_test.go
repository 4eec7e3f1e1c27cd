package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("notes-service", &buf)

	l.Info("note created", "note_id", "abc")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "note created", entry["msg"])
	assert.Equal(t, "notes-service", entry["service"])
	assert.Equal(t, "abc", entry["note_id"])
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	var buf bytes.Buffer
	l := NewWithWriter("test", &buf)

	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestTextFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "text")

	var buf bytes.Buffer
	NewWithWriter("test", &buf).Error("boom", "code", 500)

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "code=500")
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("test", &buf).With("request_id", "r-1")

	l.Info("hello")
	assert.Contains(t, buf.String(), `"request_id":"r-1"`)
}

func TestSetStdLog(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("std", &buf)

	l.SetStdLog()
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(log.LstdFlags)
	})

	log.Println("from std log")
	assert.Contains(t, buf.String(), "from std log")
}

func TestErrorContext(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter("test", &buf).ErrorContext(context.Background(), "store failed", "op", "get note")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "get note", entry["op"])
}
