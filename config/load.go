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

package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"dirpx.dev/conv/apis"
	"dirpx.dev/conv/logger"
)

// DefaultEnvPrefix prefixes environment overrides: CONV_REGISTRY_TOKEN_SOURCE.
const DefaultEnvPrefix = "CONV"

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("conv(config): invalid configuration")

// File is the on-disk / environment configuration layout.
type File struct {
	Registry apis.Config   `mapstructure:"registry"`
	Logging  logger.Config `mapstructure:"logging"`
}

// LoaderConfig holds loader inputs.
type LoaderConfig struct {
	// ConfigFile is an explicit config file path (optional).
	ConfigFile string
	// EnvPrefix overrides DefaultEnvPrefix.
	EnvPrefix string
	// Viper lets callers supply a preconfigured instance.
	Viper *viper.Viper
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvPrefix = prefix }
}

// WithViper uses v instead of a fresh viper instance.
func WithViper(v *viper.Viper) LoaderOption {
	return func(lc *LoaderConfig) { lc.Viper = v }
}

// Load reads configuration from defaults, an optional file and the
// environment (in increasing priority) and validates the result.
func Load(opts ...LoaderOption) (File, error) {
	lc := LoaderConfig{EnvPrefix: DefaultEnvPrefix}
	for _, opt := range opts {
		opt(&lc)
	}

	v := lc.Viper
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	v.SetEnvPrefix(lc.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if lc.ConfigFile != "" {
		v.SetConfigFile(lc.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return File{}, fmt.Errorf("conv(config): read %s: %w", lc.ConfigFile, err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return File{}, fmt.Errorf("conv(config): decode: %w", err)
	}
	if err := Validate(f); err != nil {
		return File{}, err
	}
	return f, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("registry.token_source", def.TokenSource)
	v.SetDefault("registry.family", def.Family)
	v.SetDefault("registry.strict_family", def.StrictFamily)
	v.SetDefault("registry.seal_on_convert", def.SealOnConvert)

	var lg logger.Config
	lg.ApplyDefaults()
	v.SetDefault("logging.level", lg.Level)
	v.SetDefault("logging.format", lg.Format)
	v.SetDefault("logging.output", lg.Output)
	v.SetDefault("logging.no_color", false)
	v.SetDefault("logging.timestamp", true)
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks f against its struct tags. Failures wrap ErrInvalidConfig
// and name every offending field.
func Validate(f File) error {
	err := getValidator().Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (%s)", fe.Namespace(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}
