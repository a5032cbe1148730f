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

package apis

// Config carries read-only knobs that influence how a conversion registry
// derives keys and guards its lifecycle.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// TokenSource selects the per-type identity scheme used for fingerprints.
	// "intern" assigns process-local sequential tokens; "hash" derives tokens
	// from canonical type names.
	TokenSource string `mapstructure:"token_source" validate:"oneof=intern hash"`

	// Family pins the registry to one shape family (e.g. "example.com/geo.Pair").
	// When empty, the first registration binds it. Ignored unless
	// StrictFamily is set.
	Family string `mapstructure:"family"`

	// StrictFamily requires both sides of every registration to resolve to
	// the registry's shape family.
	StrictFamily bool `mapstructure:"strict_family"`

	// SealOnConvert seals the registry on its first dispatch, after which
	// Register fails with a sealed error.
	SealOnConvert bool `mapstructure:"seal_on_convert"`
}
