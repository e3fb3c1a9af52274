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

/*
 * Script Lexer - Numeric Literals
 *
 * Integers are tried first, then floating point, then fixed-point decimal.
 * Radix literals (0x, 0o, 0b) are always integers. Separators are stripped
 * before parsing; the raw text is kept for error reporting.
 */

package lexer

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// scanNumber scans a numeric literal whose first digit has been consumed.
// A pending unary minus is folded into the literal when negated is set.
func scanNumber(stream InputStream, state *TokenizeState, pos *Position, first rune, negated bool) Token {
	var raw strings.Builder
	raw.WriteRune(first)
	length := 1
	radix := 10
	valid := isDigit

scan:
	for {
		next, ok := stream.Peek()
		if !ok {
			break
		}
		switch {
		case valid(next) || next == NumericSeparator:
			raw.WriteRune(next)
			length++
			eatNext(stream, pos)

		case next == '.':
			stream.Next()
			after, _ := stream.Peek()
			switch {
			case isDigit(after):
				raw.WriteRune('.')
				pos.Advance()
			case after == NumericSeparator || after == '.':
				// "1._" and "1.." are not floats
				stream.Unget(next)
				break scan
			case !isIDFirstAlphabetic(after, state.UnicodeIdentifiers):
				// "1." followed by a symbol is "1.0"
				raw.WriteString(".0")
				pos.Advance()
			default:
				// property access such as "1.abs"
				stream.Unget(next)
				break scan
			}

		case next == 'e' || next == 'E':
			stream.Next()
			after, _ := stream.Peek()
			switch {
			case isDigit(after):
				raw.WriteRune(next)
				pos.Advance()
			case after == '+' || after == '-':
				raw.WriteRune(next)
				pos.Advance()
				sign, _ := stream.Next()
				raw.WriteRune(sign)
				pos.Advance()
			default:
				stream.Unget(next)
				break scan
			}

		case first == '0' && length <= 1 && strings.ContainsRune("xXoObB", next):
			raw.WriteRune(next)
			length++
			eatNext(stream, pos)
			switch next {
			case 'x', 'X':
				radix, valid = 16, isHexDigit
			case 'o', 'O':
				radix = 8
			default:
				radix = 2
			}

		default:
			break scan
		}
	}

	text := raw.String()
	if negated {
		text = "-" + text
	}
	if radix != 10 {
		return parseRadixLiteral(text, radix, negated)
	}
	return parseDecimalLiteral(text)
}

func stripSeparators(s string) string {
	return strings.ReplaceAll(s, string(NumericSeparator), "")
}

// parseRadixLiteral parses a 0x, 0o or 0b literal. text carries the prefix
// and, when negated, a leading minus sign.
func parseRadixLiteral(text string, radix int, negated bool) Token {
	digits := text
	sign := ""
	if negated {
		digits, sign = digits[1:], "-"
	}
	digits = stripSeparators(digits[2:])
	v, err := strconv.ParseInt(sign+digits, radix, 64)
	if err != nil || digits == "" {
		return NewErrorToken(errMalformedNumber(text))
	}
	return NewIntegerToken(v)
}

// parseDecimalLiteral parses a base-10 literal as an integer, a float or a
// fixed-point decimal, in that order.
func parseDecimalLiteral(text string) Token {
	out := stripSeparators(text)
	if v, err := strconv.ParseInt(out, 10, 64); err == nil {
		return NewIntegerToken(v)
	}
	// ParseFloat reports values beyond float64 range as ErrRange; those fall
	// through to decimal, which accepts plain and scientific notation.
	if f, err := strconv.ParseFloat(out, 64); err == nil {
		return NewFloatToken(f)
	}
	if d, err := decimal.NewFromString(out); err == nil {
		return NewDecimalToken(d)
	}
	return NewErrorToken(errMalformedNumber(text))
}
