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
 * Script Lexer - String and Character Literals
 *
 * Literals are scanned after the opening quote has been consumed. Escapes are
 * decoded in place; the literal may not contain a raw newline.
 */

package lexer

import (
	"strings"
	"unicode/utf8"
)

// ScanStringLiteral scans the body of a literal enclosed by quote, consuming
// the closing quote. On failure it returns the error together with the
// position it should be reported at.
func ScanStringLiteral(stream InputStream, state *TokenizeState, pos *Position, quote rune) (string, Position, *LexError) {
	var result strings.Builder
	start := *pos
	escaped := false

	for {
		ch, ok := stream.Next()
		if !ok {
			return "", start, errUnterminatedString()
		}
		if ch == '\n' {
			// The newline belongs to the surrounding code so that its line
			// break is still counted.
			stream.Unget(ch)
			return "", start, errUnterminatedString()
		}
		pos.Advance()

		if state.MaxStringSize > 0 && result.Len() > state.MaxStringSize {
			return "", *pos, errStringTooLong(state.MaxStringSize)
		}

		if !escaped {
			switch ch {
			case '\\':
				escaped = true
			case quote:
				return result.String(), start, nil
			default:
				result.WriteRune(ch)
			}
			continue
		}

		escaped = false
		switch ch {
		case '\\':
			result.WriteRune('\\')
		case 't':
			result.WriteRune('\t')
		case 'n':
			result.WriteRune('\n')
		case 'r':
			result.WriteRune('\r')
		case 'x', 'u', 'U':
			decoded, err := scanHexEscape(stream, pos, ch)
			if err != nil {
				return "", *pos, err
			}
			result.WriteRune(decoded)
		case quote:
			result.WriteRune(quote)
		default:
			return "", *pos, errMalformedEscape(`\` + string(ch))
		}
	}
}

// scanHexEscape decodes the fixed-width hex digits of a \x, \u or \U escape.
func scanHexEscape(stream InputStream, pos *Position, kind rune) (rune, *LexError) {
	width := 2
	switch kind {
	case 'u':
		width = 4
	case 'U':
		width = 8
	}

	seq := []rune{'\\', kind}
	var value uint32
	for range width {
		ch, ok := stream.Next()
		if !ok {
			return 0, errMalformedEscape(string(seq))
		}
		if ch == '\n' {
			stream.Unget(ch)
			return 0, errMalformedEscape(string(seq))
		}
		seq = append(seq, ch)
		pos.Advance()
		if !isHexDigit(ch) {
			return 0, errMalformedEscape(string(seq))
		}
		value = value*16 + hexValue(ch)
	}

	if value > utf8.MaxRune || !utf8.ValidRune(rune(value)) {
		return 0, errMalformedEscape(string(seq))
	}
	return rune(value), nil
}

func hexValue(ch rune) uint32 {
	switch {
	case isDigit(ch):
		return uint32(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return uint32(ch-'a') + 10
	default:
		return uint32(ch-'A') + 10
	}
}

// scanCharLiteral scans a character literal after its opening quote. The
// literal must hold exactly one character.
func scanCharLiteral(stream InputStream, state *TokenizeState, pos *Position, start Position) (Token, Position) {
	text, errPos, err := ScanStringLiteral(stream, state, pos, '\'')
	if err != nil {
		return NewErrorToken(err), errPos
	}
	ch, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) {
		return NewErrorToken(errMalformedChar(text)), start
	}
	return NewCharToken(ch), start
}
