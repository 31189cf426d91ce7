// Package config loads configuration for the docsv CLI and web front end.
package config

import (
	"fmt"

	"github.com/tsawler/docsv/export"
)

// Operator configures one export consumer.
type Operator struct {
	Key      string `mapstructure:"key"`
	Basename string `mapstructure:"basename"`
}

// Server configures the web front end.
type Server struct {
	Addr        string `mapstructure:"addr"`
	MaxUploadMB int    `mapstructure:"max_upload_mb"`
}

// Config is the application configuration.
type Config struct {
	Operators []Operator `mapstructure:"operators"`
	Server    Server     `mapstructure:"server"`
}

// Default returns the built-in configuration: the historical two-operator
// registry and local server settings.
func Default() *Config {
	return &Config{
		Operators: []Operator{
			{Key: "A", Basename: "operator_a_table"},
			{Key: "B", Basename: "operator_b_table"},
		},
		Server: Server{
			Addr:        ":8080",
			MaxUploadMB: 16,
		},
	}
}

// ExportOperators converts the configured registry into the export package's
// operator type, preserving registration order.
func (c *Config) ExportOperators() []export.Operator {
	operators := make([]export.Operator, len(c.Operators))
	for i, op := range c.Operators {
		operators[i] = export.Operator{Key: op.Key, Basename: op.Basename}
	}
	return operators
}

// Validate checks the configuration for the mistakes a hand-edited config
// file tends to contain.
func (c *Config) Validate() error {
	if len(c.Operators) == 0 {
		return fmt.Errorf("config: at least one operator must be configured")
	}

	seen := make(map[string]bool)
	for i, op := range c.Operators {
		if op.Key == "" {
			return fmt.Errorf("config: operator %d has an empty key", i)
		}
		if op.Basename == "" {
			return fmt.Errorf("config: operator %q has an empty basename", op.Key)
		}
		if seen[op.Key] {
			return fmt.Errorf("config: duplicate operator key %q", op.Key)
		}
		seen[op.Key] = true
	}

	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("config: server.max_upload_mb must be positive")
	}
	return nil
}
