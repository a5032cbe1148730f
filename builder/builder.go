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
package builder

import (
	"github.com/rs/zerolog"

	"dirpx.dev/conv/apis"
	"dirpx.dev/conv/config"
	"dirpx.dev/conv/logger"
	"dirpx.dev/conv/registry"
	"dirpx.dev/conv/resolver"
	"dirpx.dev/conv/token"
)

// Option configures the default builder.
type Option func(*builder)

// WithLogger sets the logger handed to every registry the builder creates.
func WithLogger(l zerolog.Logger) Option {
	return func(b *builder) {
		b.log = l
	}
}

// WithResolver overrides the family resolver handed to built registries.
// Nil is ignored.
func WithResolver(res apis.Resolver) Option {
	return func(b *builder) {
		if res != nil {
			b.res = res
		}
	}
}

// New creates and returns a new instance of an apis.Builder.
func New(opts ...Option) apis.Builder {
	b := &builder{
		log: zerolog.Nop(),
		res: resolver.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// builder builds *registry.Registry values.
type builder struct {
	log zerolog.Logger
	res apis.Resolver
}

// Ensure builder implements apis.Builder.
var _ apis.Builder = (*builder)(nil)

// BuildRegistry builds a new registry for cfg. If prev is provided, its
// entries are re-keyed under the new token source and copied over, and
// the new registry is sealed if prev was.
func (b *builder) BuildRegistry(cfg apis.Config, prev apis.Registry) apis.Registry {
	log := logger.Component(b.log, "registry")
	nreg := registry.New(
		registry.WithConfig(cfg),
		registry.WithTokens(Tokens(cfg.TokenSource)),
		registry.WithResolver(b.res),
		registry.WithLogger(log),
	)
	if prev == nil {
		return nreg
	}

	dropped := 0
	for _, e := range prev.Entries() {
		if _, err := nreg.Add(e); err != nil {
			dropped++
		}
	}
	if dropped > 0 {
		log.Warn().
			Int(logger.FieldEntries, dropped).
			Msg("entries dropped during rebuild")
	}
	if prev.Sealed() {
		nreg.Seal()
	}
	return nreg
}

// Tokens returns the token source named by name, falling back to the
// process-wide interner for unknown names.
func Tokens(name string) apis.TokenSource {
	switch name {
	case config.TokenSourceHash:
		return token.NewHasher()
	default:
		return token.Shared()
	}
}
