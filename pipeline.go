package plog

import "sync"

// Pipeline is a compiled template: the renderers bound from it, in order.
// A Pipeline is immutable and may be shared by any number of loggers and
// sinks.
type Pipeline struct {
	template  string
	renderers []Renderer
}

// NewPipeline compiles and binds template. It never fails; see Compile.
func NewPipeline(template string) *Pipeline {
	return &Pipeline{template: template, renderers: Bind(Compile(template))}
}

// Template returns the source template.
func (p *Pipeline) Template() string { return p.template }

// AppendTo runs every renderer in order, appending to dst.
func (p *Pipeline) AppendTo(dst []byte, l *Logger, level Level, ev *Event) []byte {
	for _, r := range p.renderers {
		dst = r.AppendTo(dst, l, level, ev)
	}
	return dst
}

// Render returns the text of ev as produced by the pipeline.
func (p *Pipeline) Render(l *Logger, level Level, ev *Event) string {
	buf := getBuf()
	defer putBuf(buf)
	buf.b = p.AppendTo(buf.b, l, level, ev)
	return string(buf.b)
}

// defaultPipeline is shared by every logger created without a template.
var defaultPipeline = sync.OnceValue(func() *Pipeline { return NewPipeline(DefaultPattern) })
