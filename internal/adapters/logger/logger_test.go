package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/varcss/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Pretty(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Info("Imported 3 variables into 1 collection(s)")
	l.Warn("skipped value")
	l.Error(errors.New("boom"))
	l.Error(nil)

	assert.Equal(t, "Imported 3 variables into 1 collection(s)\n! skipped value\n✗ Error: boom\n", buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	l.Error(zerr.Wrap(errors.New("permission denied"), "failed to write host document"))

	assert.Equal(t, "✗ Error: failed to write host document\n\n  Caused by:\n    → permission denied\n", buf.String())
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetJSON(true)

	l.Warn("skipped value")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "WARN", rec["level"])
	assert.Equal(t, "skipped value", rec["msg"])

	buf.Reset()
	l.Error(errors.New("boom"))
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "boom", rec["error"])
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{"single entry", []logger.ErrorEntry{{Message: "single error"}}, "Error: single error"},
		{
			"two entries with caused by",
			[]logger.ErrorEntry{{Message: "outer error"}, {Message: "inner error"}},
			"Error: outer error\n\n  Caused by:\n    → inner error",
		},
		{
			"metadata on main error",
			[]logger.ErrorEntry{{Message: "main error", Metadata: map[string]any{"path": "variables.json"}}},
			"Error: main error\n       path: variables.json",
		},
		{
			"metadata on cause sorted",
			[]logger.ErrorEntry{
				{Message: "main"},
				{Message: "cause", Metadata: map[string]any{"variable": "gap", "mode_id": "m1"}},
			},
			"Error: main\n\n  Caused by:\n    → cause\n      mode_id: m1\n      variable: gap",
		},
		{
			"multiline message",
			[]logger.ErrorEntry{{Message: "line1\nline2"}},
			"Error: line1\n       line2",
		},
		{"empty entries", []logger.ErrorEntry{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}

func TestCollectErrorEntries(t *testing.T) {
	err := zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer")

	entries := logger.CollectErrorEntries(err)

	require.Len(t, entries, 3)
	assert.Equal(t, "outer layer", entries[0].Message)
	assert.Equal(t, "middle layer", entries[1].Message)
	assert.Equal(t, "root cause", entries[2].Message)
	assert.Nil(t, entries[2].Metadata)

	assert.Empty(t, logger.CollectErrorEntries(nil))
}
