package config

import (
	"io"
	"strings"

	"go.uber.org/multierr"

	"github.com/trickstertwo/plog"
	"github.com/trickstertwo/plog/sink/rolling"
)

// Apply configures r. The root entry, if any, reconfigures r.Root() in
// place; an entry with no sinks keeps the root's current ones, and those
// that rendered with the root's old pattern switch to the new one. Without
// a root entry the defaults still apply to the root. Every other
// entry is built and registered, replacing a logger of the same name.
//
// All sinks are opened before r is touched, so on error r is unchanged.
// The returned Closer closes the file-backed sinks that were opened.
func (c *Config) Apply(r *plog.Registry) (io.Closer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	type planned struct {
		lc    LoggerConfig
		level plog.Level
		sinks []plog.Sink
	}
	var (
		plans   []planned
		closers closerList
		root    *planned
	)
	for _, lc := range c.Loggers {
		p := planned{lc: lc, level: c.level(lc.Level)}
		if lc.Pattern == "" {
			p.lc.Pattern = c.Defaults.Pattern
		}
		for _, sc := range lc.Sinks {
			s, err := sc.build()
			if err != nil {
				_ = closers.Close()
				return nil, err
			}
			if cl, ok := s.(io.Closer); ok {
				closers = append(closers, cl)
			}
			p.sinks = append(p.sinks, s)
		}
		plans = append(plans, p)
	}

	for i := range plans {
		if plans[i].lc.Name == plog.RootName {
			root = &plans[i]
			continue
		}
		p := plans[i]
		b := plog.NewBuilder().WithName(p.lc.Name).WithLevel(p.level).WithPattern(p.lc.Pattern)
		for _, s := range p.sinks {
			b.AddSink(s)
		}
		l, err := b.Build()
		if err != nil {
			_ = closers.Close()
			return nil, err
		}
		if err := r.Register(l); err != nil {
			_ = closers.Close()
			return nil, err
		}
	}

	rl := r.Root()
	if root == nil {
		rl.SetLevel(c.level(""))
		rebindPattern(rl, c.Defaults.Pattern)
		return closers, nil
	}
	rl.SetLevel(root.level)
	if len(root.sinks) == 0 {
		rebindPattern(rl, root.lc.Pattern)
		return closers, nil
	}
	rl.SetPattern(root.lc.Pattern)
	rl.ClearSinks()
	for _, s := range root.sinks {
		rl.Attach(s)
	}
	return closers, nil
}

// rebindPattern sets the pattern of l and moves the kept sinks that were
// rendering with l's previous pipeline onto the new one. Sinks with a
// pipeline of their own are left alone.
func rebindPattern(l *plog.Logger, pattern string) {
	old := l.Pipeline()
	l.SetPattern(pattern)
	next := l.Pipeline()
	for _, s := range l.Sinks() {
		if s.Pipeline() == old {
			s.SetPipeline(next)
		}
	}
}

func (c *Config) level(s string) plog.Level {
	if s == "" {
		s = c.Defaults.Level
	}
	// validated
	l, _ := plog.ParseLevel(s)
	return l
}

func (sc SinkConfig) build() (plog.Sink, error) {
	var (
		s   plog.Sink
		err error
	)
	switch strings.ToLower(sc.Type) {
	case SinkConsole:
		s = plog.NewConsoleSink()
	case SinkFile:
		s, err = plog.NewFileSink(sc.Path)
	case SinkRolling:
		s, err = rolling.New(rolling.Options{
			Path:       sc.Path,
			MaxSizeMB:  sc.MaxSizeMB,
			MaxBackups: sc.MaxBackups,
			MaxAgeDays: sc.MaxAgeDays,
			Compress:   sc.Compress,
		})
	default:
		return nil, NewInvalidFieldError("type", "unknown sink type "+sc.Type, sinkTypes)
	}
	if err != nil {
		return nil, err
	}
	if sc.Level != "" {
		l, _ := plog.ParseLevel(sc.Level)
		s.SetLevel(l)
	}
	if sc.Pattern != "" {
		s.SetPipeline(plog.NewPipeline(sc.Pattern))
	}
	return s, nil
}

type closerList []io.Closer

func (cs closerList) Close() error {
	var errs error
	for _, c := range cs {
		errs = multierr.Append(errs, c.Close())
	}
	return errs
}
