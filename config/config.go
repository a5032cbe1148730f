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
	"dirpx.dev/conv/apis"
)

const (
	// TokenSourceIntern selects process-local sequential type tokens.
	TokenSourceIntern = "intern"
	// TokenSourceHash selects tokens hashed from canonical type names.
	TokenSourceHash = "hash"
)

const (
	// DefaultTokenSource represents the default for TokenSource.
	DefaultTokenSource = TokenSourceIntern
	// DefaultStrictFamily represents the default for StrictFamily.
	// When true, both sides of a registration must share the registry's shape family.
	DefaultStrictFamily = true
	// DefaultSealOnConvert represents the default for SealOnConvert.
	// When true, the first Convert closes the registry for registrations.
	DefaultSealOnConvert = true
	// DefaultMaxUnwrap bounds pointer unwrapping when resolving shape families.
	DefaultMaxUnwrap = 8
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure TokenSource is valid.
	if cfg.TokenSource != TokenSourceIntern && cfg.TokenSource != TokenSourceHash {
		cfg.TokenSource = DefaultTokenSource
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		TokenSource:   DefaultTokenSource,
		StrictFamily:  DefaultStrictFamily,
		SealOnConvert: DefaultSealOnConvert,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithTokenSource sets the TokenSource option.
// Unknown names reset to the default.
func WithTokenSource(name string) Option {
	return func(c *apis.Config) {
		switch name {
		case TokenSourceIntern, TokenSourceHash:
			c.TokenSource = name
		default:
			c.TokenSource = DefaultTokenSource
		}
	}
}

// WithFamily pins the registry to a shape family.
func WithFamily(family string) Option {
	return func(c *apis.Config) {
		c.Family = family
	}
}

// WithStrictFamily sets the StrictFamily option.
func WithStrictFamily(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictFamily = strict
	}
}

// WithSealOnConvert sets the SealOnConvert option.
func WithSealOnConvert(seal bool) Option {
	return func(c *apis.Config) {
		c.SealOnConvert = seal
	}
}
