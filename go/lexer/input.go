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

import "unicode/utf8"

// InputStream is a character source with one character of lookahead and a
// single pushback slot.
type InputStream interface {
	// Unget pushes ch back so that the next Next or Peek returns it.
	// Only one character may be pending at a time.
	Unget(ch rune)
	// Next consumes and returns the next character.
	Next() (rune, bool)
	// Peek returns the next character without consuming it.
	Peek() (rune, bool)
}

// MultiInputStream joins several text segments into one logical stream.
// Exhausting a segment silently moves on to the next one.
type MultiInputStream struct {
	inputs []string
	index  int // current segment
	offset int // byte offset into the current segment

	buf    rune
	hasBuf bool
}

var _ InputStream = (*MultiInputStream)(nil)

// NewMultiInputStream creates a stream over inputs, read in order.
func NewMultiInputStream(inputs ...string) *MultiInputStream {
	return &MultiInputStream{inputs: inputs}
}

// Unget implements InputStream.
func (s *MultiInputStream) Unget(ch rune) {
	s.buf = ch
	s.hasBuf = true
}

// Next implements InputStream.
func (s *MultiInputStream) Next() (rune, bool) {
	if s.hasBuf {
		s.hasBuf = false
		return s.buf, true
	}
	ch, size, ok := s.current()
	if !ok {
		return 0, false
	}
	s.offset += size
	return ch, true
}

// Peek implements InputStream.
func (s *MultiInputStream) Peek() (rune, bool) {
	if s.hasBuf {
		return s.buf, true
	}
	ch, _, ok := s.current()
	return ch, ok
}

// current decodes the character at the read cursor, skipping past any
// exhausted segments.
func (s *MultiInputStream) current() (rune, int, bool) {
	for s.index < len(s.inputs) {
		in := s.inputs[s.index]
		if s.offset < len(in) {
			if b := in[s.offset]; b < utf8.RuneSelf {
				return rune(b), 1, true
			}
			ch, size := utf8.DecodeRuneInString(in[s.offset:])
			return ch, size, true
		}
		s.index++
		s.offset = 0
	}
	return 0, 0, false
}
