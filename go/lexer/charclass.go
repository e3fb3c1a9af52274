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
 * Script Lexer - Character Classification
 *
 * Identifiers are ASCII by default. When Unicode identifiers are enabled, the
 * ID_Start and ID_Continue properties are approximated from the unicode
 * package's categories.
 */

package lexer

import (
	"strings"
	"unicode"

	"github.com/multigres/scriptlex/go/lexer/keywords"
)

// NumericSeparator may appear between the digits of a numeric literal.
const NumericSeparator = '_'

var (
	idStartTables = []*unicode.RangeTable{
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
	}
	idContinueTables = []*unicode.RangeTable{
		unicode.L, unicode.Nl, unicode.Other_ID_Start,
		unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue,
	}
)

func isASCIIAlpha(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || ('a' <= ch && ch <= 'f') || ('A' <= ch && ch <= 'F')
}

// isIDFirstAlphabetic reports whether ch is a letter that may start an
// identifier.
func isIDFirstAlphabetic(ch rune, unicodeIdents bool) bool {
	if ch < 0x80 || !unicodeIdents {
		return isASCIIAlpha(ch)
	}
	return unicode.In(ch, idStartTables...)
}

// isIDContinue reports whether ch may continue an identifier.
func isIDContinue(ch rune, unicodeIdents bool) bool {
	if ch < 0x80 || !unicodeIdents {
		return isASCIIAlpha(ch) || isDigit(ch) || ch == '_'
	}
	return unicode.In(ch, idContinueTables...)
}

// IsValidIdentifier reports whether name is a proper identifier: it needs at
// least one alphabetic character, may hold any number of underscores, and no
// digit may come before the first alphabetic character.
func IsValidIdentifier(name string) bool {
	firstAlphabetic := false
	for _, ch := range name {
		switch {
		case ch == '_':
		case isIDFirstAlphabetic(ch, true):
			firstAlphabetic = true
		case !firstAlphabetic:
			return false
		case isIDContinue(ch, true):
		default:
			return false
		}
	}
	return firstAlphabetic
}

// IsKeywordFunction reports whether name is a built-in keyword function that
// can be called like a normal function. "this" is a keyword but not callable.
func IsKeywordFunction(name string) bool {
	return name != keywords.KeywordThis && keywords.IsKeywordFunction(name)
}

// IsDocComment reports whether comment, including its opening delimiter, is
// a doc-comment: "///" but not "////", or "/**" but not "/***". The empty
// block comment "/**/" is not a doc-comment.
func IsDocComment(comment string) bool {
	if strings.HasPrefix(comment, "///") {
		return !strings.HasPrefix(comment, "////")
	}
	return strings.HasPrefix(comment, "/**") && !strings.HasPrefix(comment, "/***") && comment != "/**/"
}
