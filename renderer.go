package plog

import (
	"github.com/lestrrat-go/strftime"
)

// DefaultTimeFormat is the strftime layout used by %d without a parameter.
const DefaultTimeFormat = "%Y-%m-%d %H:%M:%S"

// Renderer appends one piece of a log line. Renderers are bound once per
// template and replayed for every event, so they must not mutate shared
// state.
type Renderer interface {
	AppendTo(dst []byte, l *Logger, level Level, ev *Event) []byte
}

// fieldTable maps each field code to the constructor of its renderer. The
// constructor receives the brace parameter, if one was written.
var fieldTable = map[string]func(arg string, hasArg bool) Renderer{
	"m": func(string, bool) Renderer { return messageRenderer{} },
	"p": func(string, bool) Renderer { return levelRenderer{} },
	"r": func(string, bool) Renderer { return elapsedRenderer{} },
	"c": func(string, bool) Renderer { return nameRenderer{} },
	"t": func(string, bool) Renderer { return threadIDRenderer{} },
	"F": func(string, bool) Renderer { return taskIDRenderer{} },
	"d": newTimeRenderer,
	"f": func(string, bool) Renderer { return fileRenderer{} },
	"l": func(string, bool) Renderer { return lineRenderer{} },
	"n": func(string, bool) Renderer { return literalRenderer("\n") },
	"T": func(string, bool) Renderer { return literalRenderer("\t") },
}

// Bind turns directives into renderers, one per directive. Field codes
// missing from the table bind to their error marker text.
func Bind(directives []Directive) []Renderer {
	out := make([]Renderer, 0, len(directives))
	for _, d := range directives {
		if d.Kind != DirectiveField {
			out = append(out, literalRenderer(d.Text))
			continue
		}
		ctor, ok := fieldTable[d.Code]
		if !ok {
			out = append(out, literalRenderer(unknownFieldText(d.Code)))
			continue
		}
		out = append(out, ctor(d.Arg, d.HasArg))
	}
	return out
}

type literalRenderer string

func (r literalRenderer) AppendTo(dst []byte, _ *Logger, _ Level, _ *Event) []byte {
	return append(dst, r...)
}

type messageRenderer struct{}

func (messageRenderer) AppendTo(dst []byte, _ *Logger, _ Level, ev *Event) []byte {
	return ev.appendContent(dst)
}

// levelRenderer prints the level the event is dispatched at, which is not
// necessarily the level it was created with.
type levelRenderer struct{}

func (levelRenderer) AppendTo(dst []byte, _ *Logger, level Level, _ *Event) []byte {
	return append(dst, level.String()...)
}

// elapsedRenderer prints whole milliseconds since process start.
type elapsedRenderer struct{}

func (elapsedRenderer) AppendTo(dst []byte, _ *Logger, _ Level, ev *Event) []byte {
	return appendInt64(dst, ev.Elapsed().Milliseconds())
}

type nameRenderer struct{}

func (nameRenderer) AppendTo(dst []byte, l *Logger, _ Level, ev *Event) []byte {
	if l == nil {
		l = ev.Logger()
	}
	if l == nil {
		return dst
	}
	return append(dst, l.Name()...)
}

type threadIDRenderer struct{}

func (threadIDRenderer) AppendTo(dst []byte, _ *Logger, _ Level, ev *Event) []byte {
	return appendUint64(dst, ev.ThreadID())
}

type taskIDRenderer struct{}

func (taskIDRenderer) AppendTo(dst []byte, _ *Logger, _ Level, ev *Event) []byte {
	return appendUint64(dst, ev.TaskID())
}

type fileRenderer struct{}

func (fileRenderer) AppendTo(dst []byte, _ *Logger, _ Level, ev *Event) []byte {
	return append(dst, ev.File()...)
}

type lineRenderer struct{}

func (lineRenderer) AppendTo(dst []byte, _ *Logger, _ Level, ev *Event) []byte {
	return appendInt64(dst, int64(ev.Line()))
}

// timeRenderer formats the event time with a compiled strftime layout.
type timeRenderer struct {
	f *strftime.Strftime
}

// newTimeRenderer compiles the %d parameter. A missing or empty parameter
// selects DefaultTimeFormat; a layout strftime rejects renders as marker text.
func newTimeRenderer(arg string, _ bool) Renderer {
	if arg == "" {
		arg = DefaultTimeFormat
	}
	f, err := strftime.New(arg)
	if err != nil {
		return literalRenderer(unknownFieldText("d{" + arg + "}"))
	}
	return timeRenderer{f: f}
}

func (r timeRenderer) AppendTo(dst []byte, _ *Logger, _ Level, ev *Event) []byte {
	return append(dst, r.f.FormatString(ev.Time())...)
}
