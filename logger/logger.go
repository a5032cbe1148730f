/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package logger builds zerolog loggers for the conversion registry from a
// small, file-loadable configuration.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	// FormatJSON writes one JSON object per event.
	FormatJSON = "json"
	// FormatConsole writes human-readable lines via zerolog.ConsoleWriter.
	FormatConsole = "console"
	// FormatPretty is an alias of FormatConsole.
	FormatPretty = "pretty"
)

// Standard field keys used by conv packages.
const (
	FieldComponent = "component"
	FieldFrom      = "from"
	FieldTo        = "to"
	FieldKey       = "key"
	FieldFamily    = "family"
	FieldEntries   = "entries"
)

// Config contains logging configuration.
type Config struct {
	Level     string `mapstructure:"level" validate:"oneof=trace debug info warn error fatal disabled"`
	Format    string `mapstructure:"format" validate:"oneof=json console pretty"`
	Output    string `mapstructure:"output" validate:"oneof=stdout stderr"`
	NoColor   bool   `mapstructure:"no_color"`
	Timestamp bool   `mapstructure:"timestamp"`
}

// ApplyDefaults fills empty fields.
func (c *Config) ApplyDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = FormatJSON
	}
	if c.Output == "" {
		c.Output = "stderr"
	}
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validate checks c against its struct tags.
func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// New creates a zerolog.Logger from cfg. Unknown levels fall back to info.
func New(cfg Config) zerolog.Logger {
	cfg.ApplyDefaults()
	return NewWithWriter(cfg, outputWriter(cfg.Output))
}

// NewWithWriter is like New but writes to w instead of cfg.Output.
func NewWithWriter(cfg Config, w io.Writer) zerolog.Logger {
	cfg.ApplyDefaults()

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	switch strings.ToLower(cfg.Format) {
	case FormatConsole, FormatPretty:
		zl = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: "15:04:05",
			NoColor:    cfg.NoColor,
		})
	default:
		zl = zerolog.New(w)
	}

	zl = zl.Level(level)
	if cfg.Timestamp {
		zl = zl.With().Timestamp().Logger()
	}
	return zl
}

// Component returns l tagged with a component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str(FieldComponent, name).Logger()
}

func outputWriter(output string) *os.File {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout
	default:
		return os.Stderr
	}
}
