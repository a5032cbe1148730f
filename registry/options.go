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

package registry

import (
	"github.com/rs/zerolog"

	"dirpx.dev/conv/apis"
)

// Option configures a Registry during New.
type Option func(*Registry)

// WithConfig sets the registry configuration.
func WithConfig(cfg apis.Config) Option {
	return func(r *Registry) {
		r.cfg = cfg
	}
}

// WithTokens sets the per-type token source. Nil is ignored.
func WithTokens(src apis.TokenSource) Option {
	return func(r *Registry) {
		if src != nil {
			r.tokens = src
		}
	}
}

// WithResolver sets the shape family resolver. Nil is ignored.
func WithResolver(res apis.Resolver) Option {
	return func(r *Registry) {
		if res != nil {
			r.res = res
		}
	}
}

// WithLogger sets the logger. Registrations and sealing are logged at
// debug level, rejected operations at warn level.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = l
	}
}
