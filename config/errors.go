package config

import (
	"fmt"
	"strings"
)

// ConfigError describes one invalid or missing setting.
//
//nolint:revive // ConfigError reads better than config.Error at call sites
type ConfigError struct {
	Category string // "missing" or "invalid"
	Field    string // path of the setting, e.g. "loggers[1].sinks[0].path"
	Message  string
	Action   string
}

func (e *ConfigError) Error() string {
	var parts []string
	if e.Category != "" {
		parts = append(parts, "config_"+e.Category+":")
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Action != "" {
		parts = append(parts, e.Action)
	}
	return strings.Join(parts, " ")
}

// NewMissingFieldError reports a required setting that is absent.
func NewMissingFieldError(field string) *ConfigError {
	return &ConfigError{Category: "missing", Field: field, Message: "required"}
}

// NewInvalidFieldError reports a setting with an unusable value.
func NewInvalidFieldError(field, message string, validOptions []string) *ConfigError {
	err := &ConfigError{Category: "invalid", Field: field, Message: message}
	if len(validOptions) > 0 {
		err.Action = fmt.Sprintf("must be one of: %s", strings.Join(validOptions, ", "))
	}
	return err
}
