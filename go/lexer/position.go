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
	"fmt"
	"math"
)

// Position is a line number plus a character position within that line.
//
// Both coordinates have 16-bit resolution: scripts may have at most 65,535
// lines of at most 65,535 characters each. Moving past either maximum is not
// an error; the coordinate simply stops counting.
//
// The zero value is the "no position" sentinel. A column of zero with a
// non-zero line means the beginning of that line.
type Position struct {
	line   uint16 // 0 = none
	column uint16 // 0 = beginning of line
}

// NewPosition creates a Position. It panics if line is zero.
func NewPosition(line, column uint16) Position {
	if line == 0 {
		panic("lexer: line cannot be zero")
	}
	return Position{line: line, column: column}
}

// NonePosition returns the sentinel representing no position.
func NonePosition() Position {
	return Position{}
}

// StartPosition returns the position before the first character of a script.
func StartPosition() Position {
	return Position{line: 1}
}

// Line returns the 1-based line number, or false if there is no position.
func (p Position) Line() (int, bool) {
	if p.IsNone() {
		return 0, false
	}
	return int(p.line), true
}

// Column returns the 1-based character position, or false if p is none or at
// the beginning of a line.
func (p Position) Column() (int, bool) {
	if p.IsNone() || p.column == 0 {
		return 0, false
	}
	return int(p.column), true
}

// Advance moves forward by one character position.
func (p *Position) Advance() {
	if p.IsNone() {
		panic("lexer: cannot advance the none position")
	}
	if p.column < math.MaxUint16 {
		p.column++
	}
}

// Rewind moves back by one character position. It cannot rewind to a previous
// line, so it panics at the beginning of a line.
func (p *Position) Rewind() {
	if p.IsNone() {
		panic("lexer: cannot rewind the none position")
	}
	if p.column == 0 {
		panic("lexer: cannot rewind at position 0")
	}
	p.column--
}

// NewLine moves to the beginning of the next line.
func (p *Position) NewLine() {
	if p.IsNone() {
		panic("lexer: cannot advance the none position")
	}
	if p.line < math.MaxUint16 {
		p.line++
		p.column = 0
	}
}

// IsBeginningOfLine reports whether p is at the beginning of a line.
func (p Position) IsBeginningOfLine() bool {
	return p.column == 0 && !p.IsNone()
}

// IsNone reports whether p is the no-position sentinel.
func (p Position) IsNone() bool {
	return p == Position{}
}

// Add splices rhs, a position inside a secondary segment, onto p, the
// position where that segment starts. Line 1 of the segment maps to p's line;
// the first line's columns are offset by p's column.
func (p Position) Add(rhs Position) Position {
	if rhs.IsNone() {
		return p
	}
	if p.IsNone() {
		return rhs
	}
	out := Position{line: saturate(int(p.line) + int(rhs.line) - 1)}
	if rhs.IsBeginningOfLine() {
		out.column = p.column
	} else {
		out.column = saturate(int(p.column) + int(rhs.column) - 1)
	}
	return out
}

// String implements fmt.Stringer.
func (p Position) String() string {
	if p.IsNone() {
		return "none"
	}
	return fmt.Sprintf("line %d, position %d", p.line, p.column)
}

// GoString renders p as "line:column", which keeps test failure output short.
func (p Position) GoString() string {
	return fmt.Sprintf("%d:%d", p.line, p.column)
}

func saturate(v int) uint16 {
	switch {
	case v < 0:
		return 0
	case v > math.MaxUint16:
		return math.MaxUint16
	default:
		return uint16(v)
	}
}
