package plog

// Config for constructing a Logger (Factory data structure).
type Config struct {
	Name      string
	Level     Level
	Pattern   string // default DefaultPattern
	Sinks     []Sink // attached in order, after Pattern is applied
	Observers []Observer
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{cfg: Config{Level: LevelDebug}}
}

func (b *Builder) WithName(name string) *Builder {
	b.cfg.Name = name
	return b
}

func (b *Builder) WithLevel(l Level) *Builder {
	b.cfg.Level = l
	return b
}

func (b *Builder) WithPattern(template string) *Builder {
	b.cfg.Pattern = template
	return b
}

func (b *Builder) AddSink(s Sink) *Builder {
	b.cfg.Sinks = append(b.cfg.Sinks, s)
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Logger (Factory + Builder).
func (b *Builder) Build() (*Logger, error) {
	if b.cfg.Name == "" {
		return nil, ErrNoName
	}
	return newLogger(b.cfg), nil
}
