package zapsink

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xclock/adapter/frozen"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/plog"
)

func newTestZap(buf *bytes.Buffer, level zapcore.Level) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:     "", // the sink writes its own "ts"
		LevelKey:    "level",
		MessageKey:  "message",
		LineEnding:  zapcore.DefaultLineEnding,
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(buf), level)
	return zap.New(core)
}

func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, ln := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if ln == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(ln), &m), ln)
		out = append(out, m)
	}
	return out
}

func TestSink_JSON(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 5, time.UTC)
	old := xclock.Default()
	xclock.SetDefault(frozen.New(at))
	t.Cleanup(func() { xclock.SetDefault(old) })

	var buf bytes.Buffer
	s := NewWithTimestampKey(newTestZap(&buf, zapcore.DebugLevel), "time")
	l, err := plog.NewBuilder().WithName("http").WithPattern("%p %m%n").AddSink(s).Build()
	require.NoError(t, err)

	l.Warnf("slow request: %dms", 1200)
	require.NoError(t, s.Sync())

	lines := decode(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "warn", lines[0]["level"])
	assert.Equal(t, "WARN slow request: 1200ms", lines[0]["message"])
	assert.Equal(t, "http", lines[0]["logger"])
	assert.Equal(t, at.Format(time.RFC3339Nano), lines[0]["time"])
}

func TestSink_FatalDoesNotExit(t *testing.T) {
	var buf bytes.Buffer
	s := New(newTestZap(&buf, zapcore.DebugLevel))
	l, err := plog.NewBuilder().WithName("app").WithPattern("%m").AddSink(s).Build()
	require.NoError(t, err)

	l.Fatalf("fatal but alive")
	lines := decode(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
}

func TestSink_ZapLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	s := New(newTestZap(&buf, zapcore.ErrorLevel))
	l, err := plog.NewBuilder().WithName("app").WithPattern("%m").AddSink(s).Build()
	require.NoError(t, err)

	l.Infof("filtered")
	l.Errorf("kept")
	lines := decode(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["message"])
	// filtered entries still count as handled
	assert.Equal(t, uint64(2), s.Stats().Written)
}

func TestNew_NilLogger(t *testing.T) {
	s := New(nil)
	l := plog.NewLogger("app")
	l.Attach(s)
	assert.NoError(t, l.Info(plog.NewEvent(l, plog.LevelInfo, plog.Location{})))
	assert.Equal(t, "zap", s.Name())
}
