package config

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"

	"github.com/trickstertwo/plog"
)

var levelNames = []string{"unknown", "debug", "info", "warn", "error", "fatal"}

// Validate reports every problem in c, combined with multierr. Each
// problem is a *ConfigError.
func (c *Config) Validate() error {
	var errs error
	if _, err := plog.ParseLevel(c.Defaults.Level); err != nil {
		errs = multierr.Append(errs, NewInvalidFieldError("defaults.level", err.Error(), levelNames))
	}

	seen := make(map[string]int, len(c.Loggers))
	for i, lc := range c.Loggers {
		field := fmt.Sprintf("loggers[%d]", i)
		if lc.Name == "" {
			errs = multierr.Append(errs, NewMissingFieldError(field+".name"))
		} else if prev, dup := seen[lc.Name]; dup {
			errs = multierr.Append(errs, NewInvalidFieldError(field+".name",
				fmt.Sprintf("duplicate of loggers[%d]", prev), nil))
		} else {
			seen[lc.Name] = i
		}
		if lc.Level != "" {
			if _, err := plog.ParseLevel(lc.Level); err != nil {
				errs = multierr.Append(errs, NewInvalidFieldError(field+".level", err.Error(), levelNames))
			}
		}
		for j, sc := range lc.Sinks {
			errs = multierr.Append(errs, sc.validate(fmt.Sprintf("%s.sinks[%d]", field, j)))
		}
	}
	return errs
}

func (sc SinkConfig) validate(field string) error {
	var errs error
	typ := strings.ToLower(sc.Type)
	switch {
	case typ == "":
		errs = multierr.Append(errs, NewMissingFieldError(field+".type"))
	case !slices.Contains(sinkTypes, typ):
		errs = multierr.Append(errs, NewInvalidFieldError(field+".type",
			fmt.Sprintf("unknown sink type %q", sc.Type), sinkTypes))
	case typ != SinkConsole && sc.Path == "":
		errs = multierr.Append(errs, NewMissingFieldError(field+".path"))
	}
	if sc.Level != "" {
		if _, err := plog.ParseLevel(sc.Level); err != nil {
			errs = multierr.Append(errs, NewInvalidFieldError(field+".level", err.Error(), levelNames))
		}
	}
	if sc.MaxSizeMB < 0 || sc.MaxBackups < 0 || sc.MaxAgeDays < 0 {
		errs = multierr.Append(errs, NewInvalidFieldError(field, "rotation limits must not be negative", nil))
	}
	return errs
}
