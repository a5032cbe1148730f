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
package conv

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/conv/apis"
	"dirpx.dev/conv/builder"
	"dirpx.dev/conv/config"
	"dirpx.dev/conv/logger"
	"dirpx.dev/conv/registry"
)

// init publishes the default snapshot.
func init() {
	s := &state{cfg: config.DefaultConfig(), bld: builder.New()}
	s.reg = s.bld.BuildRegistry(s.cfg, nil)
	st.Store(s)
}

// ErrNilRegistry is the panic value when a builder returns a nil registry.
var ErrNilRegistry = errors.New("conv: builder returned nil registry")

// Register adds fn to the global registry as the conversion from From to To.
// See registry.Register for the failure modes.
func Register[From, To apis.Shape](fn func(From) To) error {
	return registry.Register(st.Load().reg, fn)
}

// MustRegister is like Register but panics on error. It is meant for
// package init blocks.
func MustRegister[From, To apis.Shape](fn func(From) To) {
	registry.MustRegister(st.Load().reg, fn)
}

// Convert converts from using the global registry. With the default
// configuration the first call seals the registry.
func Convert[From, To apis.Shape](from From) (To, error) {
	return registry.Convert[From, To](st.Load().reg, from)
}

// MustConvert is like Convert but panics on error.
func MustConvert[From, To apis.Shape](from From) To {
	return registry.MustConvert[From, To](st.Load().reg, from)
}

// Bind resolves the conversion from From to To in the global registry once.
func Bind[From, To apis.Shape]() (func(From) (To, error), error) {
	return registry.Bind[From, To](st.Load().reg)
}

// Has reports whether the global registry holds a conversion from From to To.
func Has[From, To apis.Shape]() bool {
	return registry.Has[From, To](st.Load().reg)
}

// Seal closes the global registry for registration.
func Seal() {
	st.Load().reg.Seal()
}

// Setup loads configuration with config.Load and installs it: the logging
// section configures the logger handed to the default builder, and the
// registry section becomes the global configuration. A pinned registry is
// kept.
func Setup(opts ...config.LoaderOption) error {
	f, err := config.Load(opts...)
	if err != nil {
		return err
	}
	bld := builder.New(builder.WithLogger(logger.New(f.Logging)))

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	next.cfg = f.Registry
	next.bld = bld
	if !old.preg {
		next.reg = mustBuild(bld, next.cfg, old.reg)
	}
	st.Store(next)
	return nil
}

// SetAll explicitly sets all global state components.
//
// Nil cfg or bld leave the corresponding component unchanged. A nil reg
// rebuilds the registry from the previous one and unpins it; a non-nil reg
// is installed and pinned.
func SetAll(cfg *apis.Config, reg apis.Registry, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	if cfg != nil {
		next.cfg = *cfg
	}
	if bld != nil {
		next.bld = bld
	}
	if reg != nil {
		next.reg = reg
		next.preg = true
	} else {
		next.reg = mustBuild(next.bld, next.cfg, old.reg)
		next.preg = false
	}
	st.Store(next)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg and rebuilds the global
// registry, migrating its entries, unless the registry is pinned.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	next.cfg = cfg
	if !old.preg {
		next.reg = mustBuild(old.bld, cfg, old.reg)
	}
	st.Store(next)
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs reg as the global registry and pins it. Nil is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := st.Load().clone()
	next.reg = reg
	next.preg = true
	st.Store(next)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder to b and rebuilds the registry with it
// unless the registry is pinned. Nil is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := old.clone()
	next.bld = b
	if !old.preg {
		next.reg = mustBuild(b, old.cfg, old.reg)
	}
	st.Store(next)
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops configuration and builder changes from rebuilding the
// global registry.
func PinRegistry() {
	setPinned(true)
}

// UnpinRegistry lets the next configuration or builder change rebuild the
// global registry.
func UnpinRegistry() {
	setPinned(false)
}

func setPinned(pinned bool) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := st.Load().clone()
	next.preg = pinned
	st.Store(next)
}

// mustBuild builds a registry with b and panics with ErrNilRegistry if the
// builder returns nil.
func mustBuild(b apis.Builder, cfg apis.Config, prev apis.Registry) apis.Registry {
	reg := b.BuildRegistry(cfg, prev)
	if reg == nil {
		panic(ErrNilRegistry)
	}
	return reg
}

// buildMu serializes writers so we never publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global snapshot. A published state is never mutated;
// writers clone it, modify the clone and swap it in.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the global registry.
	reg apis.Registry
	// bld builds reg on configuration or builder changes.
	bld apis.Builder
	// preg indicates whether reg is pinned.
	preg bool
}

func (s *state) clone() *state {
	c := *s
	return &c
}
