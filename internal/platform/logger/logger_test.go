package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONOutputCarriesBaseFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Info, Format: FormatJSON, App: "pawfam-api", Output: &buf})

	l.With(map[string]any{"request_id": "r-1"}).Info("booking cancelled", map[string]any{"booking_id": "b-1"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "pawfam-api", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "b-1", entry["booking_id"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "booking cancelled", entry["msg"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: Warn, Output: &buf})

	l.Info("skip", nil)
	l.Warn("keep", nil)

	out := buf.String()
	assert.NotContains(t, out, "msg=skip")
	assert.Contains(t, out, "msg=keep")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel("nonsense"))
}

func TestFromContextFallsBackToNop(t *testing.T) {
	assert.NotPanics(t, func() {
		FromContext(context.Background()).Error("ignored", nil)
	})

	var buf bytes.Buffer
	ctx := WithContext(context.Background(), New(Options{Output: &buf}))
	FromContext(ctx).Info("hello", nil)
	assert.Contains(t, buf.String(), "msg=hello")
}
