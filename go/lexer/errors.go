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
 * Script Lexer - Error Kinds
 *
 * Lexical errors are never returned or thrown. Each one travels in-band as an
 * Error token, emitted at the position where the problem was detected, and
 * scanning continues with the following character.
 */

package lexer

import "fmt"

// LexErrorType represents the category of a lexical error
type LexErrorType int

const (
	UnexpectedInput         LexErrorType = iota // character that cannot start any token
	UnterminatedString                          // end of input or raw newline inside a literal
	StringTooLong                               // literal exceeds the configured ceiling
	MalformedEscapeSequence                     // unknown escape or bad \x \u \U digits
	MalformedNumber                             // numeric literal that parses as no numeric type
	MalformedChar                               // character literal with zero or several characters
	MalformedIdentifier                         // identifier with no alphabetic character
	ImproperSymbol                              // reserved or foreign symbol, with a suggestion
)

var lexErrorTypeNames = [...]string{
	UnexpectedInput:         "UnexpectedInput",
	UnterminatedString:      "UnterminatedString",
	StringTooLong:           "StringTooLong",
	MalformedEscapeSequence: "MalformedEscapeSequence",
	MalformedNumber:         "MalformedNumber",
	MalformedChar:           "MalformedChar",
	MalformedIdentifier:     "MalformedIdentifier",
	ImproperSymbol:          "ImproperSymbol",
}

// String returns the name of the error type.
func (t LexErrorType) String() string {
	if t >= 0 && int(t) < len(lexErrorTypeNames) {
		return lexErrorTypeNames[t]
	}
	return fmt.Sprintf("LexErrorType(%d)", int(t))
}

// LexError is a lexical error carried by an Error token. The position is not
// part of the error; it travels alongside the token.
type LexError struct {
	Type LexErrorType
	// Text is the offending source text: the unexpected character, the
	// escape sequence, the raw number, the character literal body, the
	// identifier or the symbol.
	Text string
	// Limit is the configured maximum string size for StringTooLong.
	Limit int
	// Message is the human-readable suggestion for ImproperSymbol.
	Message string
}

// Error implements the error interface.
func (e *LexError) Error() string {
	switch e.Type {
	case UnexpectedInput:
		return fmt.Sprintf("unexpected '%s'", e.Text)
	case UnterminatedString:
		return "open string is not terminated"
	case StringTooLong:
		return fmt.Sprintf("length of string literal exceeds the maximum limit (%d)", e.Limit)
	case MalformedEscapeSequence:
		return fmt.Sprintf("invalid escape sequence: '%s'", e.Text)
	case MalformedNumber:
		return fmt.Sprintf("invalid number: '%s'", e.Text)
	case MalformedChar:
		return fmt.Sprintf("invalid character: '%s'", e.Text)
	case MalformedIdentifier:
		return fmt.Sprintf("variable name is not proper: '%s'", e.Text)
	case ImproperSymbol:
		if e.Message != "" {
			return e.Message
		}
		return fmt.Sprintf("invalid symbol encountered: '%s'", e.Text)
	default:
		return fmt.Sprintf("lexical error %s: '%s'", e.Type, e.Text)
	}
}

// Is reports whether target is a *LexError of the same type, so callers can
// write errors.Is(err, &LexError{Type: MalformedNumber}).
func (e *LexError) Is(target error) bool {
	t, ok := target.(*LexError)
	return ok && t.Type == e.Type
}

func errUnexpectedInput(ch rune) *LexError {
	return &LexError{Type: UnexpectedInput, Text: string(ch)}
}

func errUnterminatedString() *LexError {
	return &LexError{Type: UnterminatedString}
}

func errStringTooLong(limit int) *LexError {
	return &LexError{Type: StringTooLong, Limit: limit}
}

func errMalformedEscape(seq string) *LexError {
	return &LexError{Type: MalformedEscapeSequence, Text: seq}
}

func errMalformedNumber(raw string) *LexError {
	return &LexError{Type: MalformedNumber, Text: raw}
}

func errMalformedChar(body string) *LexError {
	return &LexError{Type: MalformedChar, Text: body}
}

func errMalformedIdentifier(name string) *LexError {
	return &LexError{Type: MalformedIdentifier, Text: name}
}

func errImproperSymbol(symbol, message string) *LexError {
	return &LexError{Type: ImproperSymbol, Text: symbol, Message: message}
}
