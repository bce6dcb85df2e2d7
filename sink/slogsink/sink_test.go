package slogsink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xclock"
	"github.com/trickstertwo/xclock/adapter/frozen"

	"github.com/trickstertwo/plog"
)

func TestSink_JSONHandler(t *testing.T) {
	at := time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC)
	old := xclock.Default()
	xclock.SetDefault(frozen.New(at))
	t.Cleanup(func() { xclock.SetDefault(old) })

	var buf bytes.Buffer
	h := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	s := New(h)
	l, err := plog.NewBuilder().WithName("jobs").WithPattern("%m%n").AddSink(s).Build()
	require.NoError(t, err)

	l.Errorf("job %s failed", "sync")

	var m map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &m), buf.String())
	assert.Equal(t, "ERROR", m["level"])
	assert.Equal(t, "job sync failed", m["msg"])
	assert.Equal(t, "jobs", m["logger"])

	ts, err := time.Parse(time.RFC3339Nano, m["time"].(string))
	require.NoError(t, err)
	assert.True(t, ts.Equal(at))
}

func TestSink_HandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	h := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	s := New(h)
	l, err := plog.NewBuilder().WithName("app").WithPattern("%m").AddSink(s).Build()
	require.NoError(t, err)

	l.Debugf("no")
	l.Infof("no")
	l.Warnf("yes")
	assert.Contains(t, buf.String(), "msg=yes")
	assert.NotContains(t, buf.String(), "msg=no")
}

type failingHandler struct{ err error }

func (failingHandler) Enabled(context.Context, slog.Level) bool { return true }
func (h failingHandler) Handle(context.Context, slog.Record) error { return h.err }
func (h failingHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h failingHandler) WithGroup(string) slog.Handler           { return h }

func TestSink_HandlerErrorReachesObservers(t *testing.T) {
	cause := errors.New("handler down")
	s := New(failingHandler{err: cause})

	var seen []*plog.SinkError
	l, err := plog.NewBuilder().
		WithName("app").
		AddSink(s).
		AddObserver(plog.ObserverFunc(func(e *plog.SinkError) { seen = append(seen, e) })).
		Build()
	require.NoError(t, err)

	err = l.Info(plog.NewEvent(l, plog.LevelInfo, plog.Location{}))
	require.ErrorIs(t, err, cause)
	require.Len(t, seen, 1)
	assert.Equal(t, "slog", seen[0].Sink)
	assert.Equal(t, uint64(1), s.Stats().Failed)
}
