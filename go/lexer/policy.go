// Copyright 2025 Supabase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lexer

import (
	"errors"
	"fmt"
	"sort"
)

// ErrActiveCustomKeyword is returned by SymbolSet.Validate when a custom
// keyword is spelled like an active keyword or operator that is not disabled.
var ErrActiveCustomKeyword = errors.New("custom keyword is an active keyword or symbol")

// SymbolPolicy is the host configuration consulted by exact text while
// tokenizing.
type SymbolPolicy interface {
	// IsCustomKeyword reports whether text is registered as a custom keyword.
	IsCustomKeyword(text string) bool
	// IsDisabledSymbol reports whether the standard keyword or symbol text
	// has been disabled.
	IsDisabledSymbol(text string) bool
}

// SymbolSet is a SymbolPolicy backed by two string sets. The zero value and
// a nil *SymbolSet register nothing.
type SymbolSet struct {
	custom   map[string]struct{}
	disabled map[string]struct{}
}

var _ SymbolPolicy = (*SymbolSet)(nil)

// NewSymbolSet creates a policy with the given custom keywords and disabled
// symbols.
func NewSymbolSet(custom, disabled []string) *SymbolSet {
	s := &SymbolSet{}
	for _, name := range custom {
		s.AddCustomKeyword(name)
	}
	for _, name := range disabled {
		s.DisableSymbol(name)
	}
	return s
}

// AddCustomKeyword registers name as a custom keyword.
func (s *SymbolSet) AddCustomKeyword(name string) {
	if s.custom == nil {
		s.custom = make(map[string]struct{})
	}
	s.custom[name] = struct{}{}
}

// DisableSymbol disables the standard keyword or symbol name.
func (s *SymbolSet) DisableSymbol(name string) {
	if s.disabled == nil {
		s.disabled = make(map[string]struct{})
	}
	s.disabled[name] = struct{}{}
}

// IsCustomKeyword implements SymbolPolicy.
func (s *SymbolSet) IsCustomKeyword(text string) bool {
	if s == nil {
		return false
	}
	_, ok := s.custom[text]
	return ok
}

// IsDisabledSymbol implements SymbolPolicy.
func (s *SymbolSet) IsDisabledSymbol(text string) bool {
	if s == nil {
		return false
	}
	_, ok := s.disabled[text]
	return ok
}

// CustomKeywords returns the registered custom keywords, sorted.
func (s *SymbolSet) CustomKeywords() []string {
	if s == nil {
		return nil
	}
	return sortedKeys(s.custom)
}

// DisabledSymbols returns the disabled symbols, sorted.
func (s *SymbolSet) DisabledSymbols() []string {
	if s == nil {
		return nil
	}
	return sortedKeys(s.disabled)
}

// Validate checks that every custom keyword spelled like an active keyword or
// operator also disables it. A TokenIterator panics on such a token
// otherwise.
func (s *SymbolSet) Validate() error {
	var errs []error
	for _, name := range s.CustomKeywords() {
		tok, ok := LookupFromSyntax(name)
		if !ok || tok.Kind == Reserved || s.IsDisabledSymbol(name) {
			continue
		}
		errs = append(errs, fmt.Errorf("%w: %q must also be disabled", ErrActiveCustomKeyword, name))
	}
	return errors.Join(errs...)
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
