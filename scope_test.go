package plog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_SubmitsOnceOnClose(t *testing.T) {
	l := newLogger(Config{Name: "app", Pattern: "%m"})
	s := newRecordingSink("rec")
	l.Attach(s)

	sc := l.At(LevelInfo)
	require.True(t, sc.Enabled())
	_, _ = sc.WriteString("a")
	_, _ = fmt.Fprintf(sc, "b%d", 1)
	sc.Print("c")
	sc.Printf("%s", "d")
	assert.Empty(t, s.Lines())

	require.NoError(t, sc.Close())
	require.NoError(t, sc.Close())
	assert.Equal(t, []string{"ab1cd"}, s.Lines())
	assert.False(t, sc.Enabled())

	// writes after close are dropped
	_, _ = sc.WriteString("late")
	assert.Equal(t, "ab1cd", sc.Event().Content())
}

func TestScope_CopiesShareState(t *testing.T) {
	l := newLogger(Config{Name: "app", Pattern: "%m"})
	s := newRecordingSink("rec")
	l.Attach(s)

	a := l.At(LevelWarn)
	b := a
	_, _ = a.WriteString("x")
	_, _ = b.WriteString("y")
	require.NoError(t, b.Close())
	require.NoError(t, a.Close())
	assert.Equal(t, []string{"xy"}, s.Lines())
}

func TestScope_ZeroWritesStillDispatches(t *testing.T) {
	l := newLogger(Config{Name: "app", Pattern: "[%m]"})
	s := newRecordingSink("rec")
	l.Attach(s)

	require.NoError(t, l.At(LevelInfo).Close())
	assert.Equal(t, []string{"[]"}, s.Lines())
}

func TestScope_DisabledBelowFloor(t *testing.T) {
	l := newLogger(Config{Name: "app", Level: LevelError, Pattern: "%m"})
	s := newRecordingSink("rec")
	l.Attach(s)

	sc := l.At(LevelInfo)
	assert.False(t, sc.Enabled())
	assert.Nil(t, sc.Event())
	n, err := sc.WriteString("ignored")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	require.NoError(t, sc.Close())
	assert.Empty(t, s.Lines())

	var zero Scope
	assert.False(t, zero.Enabled())
	require.NoError(t, zero.Close())

	assert.False(t, Begin(nil, LevelFatal, Location{}).Enabled())
}

func TestScope_CapturesCallerLocation(t *testing.T) {
	l := newLogger(Config{Name: "app", Pattern: "%m"})
	sc, want := l.At(LevelInfo), Caller(0)
	defer sc.Close()

	assert.Equal(t, want, sc.Event().Location())
	assert.Contains(t, sc.Event().File(), "scope_test.go")
}

func TestScope_Printf(t *testing.T) {
	l := newLogger(Config{Name: "app", Level: LevelInfo, Pattern: "%p %m|%f"})
	s := newRecordingSink("rec")
	l.Attach(s)

	l.Debugf("hidden %d", 1)
	l.Infof("shown %d", 2)
	l.Warnf("w")
	l.Errorf("e")
	l.Fatalf("f")

	lines := s.Lines()
	require.Len(t, lines, 4)
	assert.Regexp(t, `^INFO shown 2\|.*scope_test\.go$`, lines[0])
	assert.Regexp(t, `^WARN w\|`, lines[1])
	assert.Regexp(t, `^ERROR e\|`, lines[2])
	assert.Regexp(t, `^FATAL f\|`, lines[3])
}

func TestScope_EventCarriesLoggerAndLevel(t *testing.T) {
	fixedIDs(t, 5, 6)
	l := NewLogger("app")
	sc := Begin(l, LevelWarn, Location{File: "x.go", Line: 3})
	defer sc.Close()

	ev := sc.Event()
	assert.Same(t, l, ev.Logger())
	assert.Equal(t, LevelWarn, ev.Level())
	assert.Equal(t, Location{File: "x.go", Line: 3}, ev.Location())
	assert.Equal(t, uint64(5), ev.ThreadID())
	assert.Equal(t, uint64(6), ev.TaskID())
	assert.GreaterOrEqual(t, ev.Elapsed(), time.Duration(0))
}
