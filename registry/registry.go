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
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"dirpx.dev/conv/apis"
	"dirpx.dev/conv/config"
	"dirpx.dev/conv/identity"
	"dirpx.dev/conv/logger"
	"dirpx.dev/conv/resolver"
	"dirpx.dev/conv/token"
)

// New constructs an empty, open Registry. Without options it uses
// config.DefaultConfig, the process-wide token interner and the default
// family resolver, and logs nothing.
func New(opts ...Option) *Registry {
	r := &Registry{
		cfg:    config.DefaultConfig(),
		tokens: token.Shared(),
		res:    resolver.Default(),
		log:    zerolog.Nop(),
		table:  make(map[apis.Key]apis.Entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.cfg.StrictFamily {
		r.family = r.cfg.Family
	}
	return r
}

// Registry is the map-backed apis.Registry.
//
// It has two phases. While open, Add inserts entries; it is not safe to
// call Add concurrently with anything else. Once sealed (explicitly, or by
// the first Dispatch when SealOnConvert is set) the table is never mutated
// again and every method is safe for concurrent use.
type Registry struct {
	// cfg is the configuration used for keys and lifecycle.
	cfg apis.Config
	// tokens supplies per-type identity.
	tokens apis.TokenSource
	// res resolves shape families for StrictFamily checks.
	res apis.Resolver
	// log receives registry events.
	log zerolog.Logger
	// table maps keys to entries. Written only while open.
	table map[apis.Key]apis.Entry
	// family is the bound shape family, "" while unbound.
	family string
	// sealed flips once from false to true.
	sealed atomic.Bool
	// fps memoizes fingerprints by shape type. Filled from the read path.
	fps sync.Map // map[reflect.Type]apis.Fingerprint
}

// Ensure Registry implements apis.Registry.
var _ apis.Registry = (*Registry)(nil)

// Add inserts e under the key derived from e.From and e.To.
func (r *Registry) Add(e apis.Entry) (apis.Key, error) {
	fail := func(k apis.Key, err error) (apis.Key, error) {
		r.log.Warn().
			Str(logger.FieldFrom, typeString(e.From)).
			Str(logger.FieldTo, typeString(e.To)).
			Err(err).
			Msg("conversion rejected")
		return apis.Key{}, &Error{Op: OpRegister, From: e.From, To: e.To, Key: k, Err: err}
	}

	if e.Convert == nil {
		return fail(apis.Key{}, ErrNilConverter)
	}
	if r.sealed.Load() {
		return fail(apis.Key{}, ErrSealed)
	}

	key, err := r.KeyOf(e.From, e.To)
	if err != nil {
		return fail(apis.Key{}, err)
	}

	family := r.family
	if r.cfg.StrictFamily {
		if family, err = r.checkFamily(e.From, e.To); err != nil {
			return fail(key, err)
		}
	}

	// Must be checked before insertion: never overwrite.
	if _, exists := r.table[key]; exists {
		return fail(key, ErrDuplicateRegistration)
	}

	e.Key = key
	r.table[key] = e
	if r.family == "" && family != "" {
		r.family = family
		r.log.Debug().Str(logger.FieldFamily, family).Msg("registry family bound")
	}

	r.log.Debug().
		Str(logger.FieldFrom, typeString(e.From)).
		Str(logger.FieldTo, typeString(e.To)).
		Stringer(logger.FieldKey, key).
		Msg("conversion registered")
	return key, nil
}

// checkFamily returns the family shared by from and to, which must also be
// the registry's family once one is bound.
func (r *Registry) checkFamily(from, to reflect.Type) (string, error) {
	ff := r.res.ResolveFamily(from)
	tf := r.res.ResolveFamily(to)
	if ff == "" || ff != tf {
		return "", ErrFamilyMismatch
	}
	if r.family != "" && ff != r.family {
		return "", ErrFamilyMismatch
	}
	return ff, nil
}

// Dispatch returns the entry registered for (from, to). With SealOnConvert
// the first call seals the registry.
func (r *Registry) Dispatch(from, to reflect.Type) (apis.Entry, error) {
	if r.cfg.SealOnConvert {
		r.seal("first convert")
	}

	key, err := r.KeyOf(from, to)
	if err != nil {
		return apis.Entry{}, &Error{Op: OpConvert, From: from, To: to, Err: err}
	}
	// A fingerprint clash stores another pair under this key.
	e, ok := r.table[key]
	if !ok || e.From != from || e.To != to {
		r.log.Warn().
			Str(logger.FieldFrom, typeString(from)).
			Str(logger.FieldTo, typeString(to)).
			Stringer(logger.FieldKey, key).
			Msg("conversion missing")
		return apis.Entry{}, &Error{Op: OpConvert, From: from, To: to, Key: key, Err: ErrMissingConversion}
	}
	return e, nil
}

// KeyOf derives the key for (from, to). Both must implement apis.Shape.
func (r *Registry) KeyOf(from, to reflect.Type) (apis.Key, error) {
	ff, err := r.fingerprint(from)
	if err != nil {
		return apis.Key{}, err
	}
	tf, err := r.fingerprint(to)
	if err != nil {
		return apis.Key{}, err
	}
	return apis.Key{From: ff, To: tf}, nil
}

// fingerprint returns the memoized fingerprint of shape type t.
func (r *Registry) fingerprint(t reflect.Type) (apis.Fingerprint, error) {
	if t != nil {
		if v, ok := r.fps.Load(t); ok {
			return v.(apis.Fingerprint), nil
		}
	}
	params, err := identity.ParamsOf(t)
	if err != nil {
		return 0, err
	}
	fp := identity.Fingerprint(params, r.tokens)
	r.fps.Store(t, fp)
	return fp, nil
}

// Lookup returns the entry stored under k, if any.
func (r *Registry) Lookup(k apis.Key) (apis.Entry, bool) {
	e, ok := r.table[k]
	return e, ok
}

// Seal closes the registry for further registrations. Sealing twice is a no-op.
func (r *Registry) Seal() {
	r.seal("explicit")
}

func (r *Registry) seal(reason string) {
	if r.sealed.CompareAndSwap(false, true) {
		r.log.Debug().
			Int(logger.FieldEntries, len(r.table)).
			Str("reason", reason).
			Msg("registry sealed")
	}
}

// Sealed reports whether the registry is sealed.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// Family returns the bound shape family, or "" if none is bound. Without
// StrictFamily no family is ever bound.
func (r *Registry) Family() string {
	return r.family
}

// Config returns the registry configuration.
func (r *Registry) Config() apis.Config {
	return r.cfg
}

// Entries returns a snapshot ordered by Key.
func (r *Registry) Entries() []apis.Entry {
	entries := lo.Values(r.table)
	slices.SortFunc(entries, func(a, b apis.Entry) int {
		return a.Key.Compare(b.Key)
	})
	return entries
}

// Count returns the number of registered entries.
func (r *Registry) Count() int {
	return len(r.table)
}

func typeString(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
