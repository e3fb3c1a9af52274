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
 * Script Lexer - Core Tokenizer
 *
 * A single pass over (current character, next character) pairs. Multi
 * character operators are matched longest first. The unary flag in
 * TokenizeState is updated after every token from that token's own
 * classification.
 */

package lexer

import "unicode"

// Tokenizer produces raw tokens from an InputStream. Host configuration is
// not applied here; see TokenIterator.
type Tokenizer struct {
	Stream InputStream
	State  TokenizeState
	Pos    Position
}

// NewTokenizer creates a tokenizer positioned at the start of stream.
func NewTokenizer(stream InputStream, state TokenizeState) *Tokenizer {
	return &Tokenizer{
		Stream: stream,
		State:  state,
		Pos:    StartPosition(),
	}
}

// Next returns the next raw token and its position. It returns false once
// the input is exhausted and State.EndWithNone is set; otherwise the end of
// input is reported by an EOF token, repeatedly.
func (t *Tokenizer) Next() (Token, Position, bool) {
	return NextToken(t.Stream, &t.State, &t.Pos)
}

// NextToken scans one token from stream, threading state and pos through the
// call. It is the step Tokenizer.Next performs, exposed for hosts that keep
// their own state between inputs.
func NextToken(stream InputStream, state *TokenizeState, pos *Position) (Token, Position, bool) {
	tok, at, ok := nextToken(stream, state, pos)
	if ok && tok.Kind != Comment {
		state.NonUnary = !tok.IsNextUnary()
	}
	return tok, at, ok
}

// eatNext consumes the pending lookahead character.
func eatNext(stream InputStream, pos *Position) (rune, bool) {
	pos.Advance()
	return stream.Next()
}

// followedBy consumes the next character if it is ch.
func followedBy(stream InputStream, pos *Position, ch rune) bool {
	if next, ok := stream.Peek(); ok && next == ch {
		eatNext(stream, pos)
		return true
	}
	return false
}

func nextToken(stream InputStream, state *TokenizeState, pos *Position) (Token, Position, bool) {
	if state.CommentLevel > 0 {
		start := *pos
		if tok, ok := resumeBlockComment(stream, state, pos); ok {
			return tok, start, true
		}
	}

	negated := false
	var negStart Position

	for {
		c, ok := stream.Next()
		if !ok {
			break
		}
		pos.Advance()
		start := *pos
		next, _ := stream.Peek()

		switch {
		case c == '\n':
			pos.NewLine()
			continue

		case isDigit(c):
			tok := scanNumber(stream, state, pos, c, negated)
			if negated {
				return tok, negStart, true
			}
			return tok, start, true

		case isIDFirstAlphabetic(c, state.UnicodeIdentifiers) || c == '_':
			return scanIdentifier(stream, state, pos, c), start, true

		case c == '"':
			text, errPos, err := ScanStringLiteral(stream, state, pos, '"')
			if err != nil {
				return NewErrorToken(err), errPos, true
			}
			return NewStringToken(StringConstant, text), start, true

		case c == '\'' && next == '\'':
			eatNext(stream, pos)
			return NewErrorToken(errMalformedChar("")), start, true

		case c == '\'':
			tok, at := scanCharLiteral(stream, state, pos, start)
			return tok, at, true

		case c == '/' && next == '/':
			if tok, ok := lineComment(stream, state, pos); ok {
				return tok, start, true
			}
			continue

		case c == '/' && next == '*':
			if tok, ok := blockComment(stream, state, pos); ok {
				return tok, start, true
			}
			continue

		case c == '-' && isDigit(next) && !state.NonUnary:
			negated = true
			negStart = start
			continue
		}

		if tok, ok := scanSymbol(stream, state, pos, c, next); ok {
			return tok, start, true
		}

		if unicode.IsSpace(c) {
			continue
		}
		return NewErrorToken(errUnexpectedInput(c)), start, true
	}

	pos.Advance()
	if state.EndWithNone {
		return Token{}, *pos, false
	}
	return NewToken(EOF), *pos, true
}

// scanSymbol matches operators and punctuation starting with c.
func scanSymbol(stream InputStream, state *TokenizeState, pos *Position, c, next rune) (Token, bool) {
	two := func(kind TokenKind) (Token, bool) {
		eatNext(stream, pos)
		return NewToken(kind), true
	}
	reserved := func(text string) (Token, bool) {
		for range len(text) - 1 {
			eatNext(stream, pos)
		}
		return NewStringToken(Reserved, text), true
	}
	one := func(kind TokenKind) (Token, bool) {
		return NewToken(kind), true
	}

	switch c {
	case '{':
		return one(LeftBrace)
	case '}':
		return one(RightBrace)
	case '(':
		if next == '*' {
			return reserved("(*")
		}
		return one(LeftParen)
	case ')':
		return one(RightParen)
	case '[':
		return one(LeftBracket)
	case ']':
		return one(RightBracket)

	case '#':
		if next == '{' {
			return two(MapStart)
		}
		return reserved("#")

	case '+':
		switch {
		case next == '=':
			return two(PlusAssign)
		case next == '+':
			return reserved("++")
		case !state.NonUnary:
			return one(UnaryPlus)
		}
		return one(Plus)

	case '-':
		switch {
		case isDigit(next):
			// binary; a unary minus before a digit is folded into the number
			return one(Minus)
		case next == '=':
			return two(MinusAssign)
		case next == '>':
			return reserved("->")
		case next == '-':
			return reserved("--")
		case !state.NonUnary:
			return one(UnaryMinus)
		}
		return one(Minus)

	case '*':
		switch next {
		case ')':
			return reserved("*)")
		case '=':
			return two(MultiplyAssign)
		case '*':
			eatNext(stream, pos)
			if followedBy(stream, pos, '=') {
				return one(PowerOfAssign)
			}
			return one(PowerOf)
		}
		return one(Multiply)

	case '/':
		if next == '=' {
			return two(DivideAssign)
		}
		return one(Divide)

	case ';':
		return one(SemiColon)
	case ',':
		return one(Comma)

	case '.':
		if next == '.' {
			eatNext(stream, pos)
			if followedBy(stream, pos, '.') {
				return NewStringToken(Reserved, "..."), true
			}
			return NewStringToken(Reserved, ".."), true
		}
		return one(Period)

	case '=':
		switch next {
		case '=':
			eatNext(stream, pos)
			if followedBy(stream, pos, '=') {
				return NewStringToken(Reserved, "==="), true
			}
			return one(EqualsTo)
		case '>':
			return two(DoubleArrow)
		}
		return one(Equals)

	case ':':
		switch next {
		case ':':
			eatNext(stream, pos)
			if followedBy(stream, pos, '<') {
				return NewStringToken(Reserved, "::<"), true
			}
			return one(DoubleColon)
		case '=':
			return reserved(":=")
		}
		return one(Colon)

	case '<':
		switch next {
		case '=':
			return two(LessThanEqualsTo)
		case '-':
			return reserved("<-")
		case '<':
			eatNext(stream, pos)
			if followedBy(stream, pos, '=') {
				return one(LeftShiftAssign)
			}
			return one(LeftShift)
		}
		return one(LessThan)

	case '>':
		switch next {
		case '=':
			return two(GreaterThanEqualsTo)
		case '>':
			eatNext(stream, pos)
			if followedBy(stream, pos, '=') {
				return one(RightShiftAssign)
			}
			return one(RightShift)
		}
		return one(GreaterThan)

	case '!':
		if next == '=' {
			eatNext(stream, pos)
			if followedBy(stream, pos, '=') {
				return NewStringToken(Reserved, "!=="), true
			}
			return one(NotEqualsTo)
		}
		return one(Bang)

	case '|':
		switch next {
		case '|':
			return two(Or)
		case '=':
			return two(OrAssign)
		}
		return one(Pipe)

	case '&':
		switch next {
		case '&':
			return two(And)
		case '=':
			return two(AndAssign)
		}
		return one(Ampersand)

	case '^':
		if next == '=' {
			return two(XOrAssign)
		}
		return one(XOr)

	case '%':
		if next == '=' {
			return two(ModuloAssign)
		}
		return one(Modulo)

	case '~':
		return reserved("~")
	case '@':
		return reserved("@")
	case '$':
		return reserved("$")
	}
	return Token{}, false
}

// scanIdentifier scans an identifier or keyword whose first character has
// been consumed.
func scanIdentifier(stream InputStream, state *TokenizeState, pos *Position, first rune) Token {
	buf := make([]rune, 1, 16)
	buf[0] = first
	for {
		next, ok := stream.Peek()
		if !ok || !isIDContinue(next, state.UnicodeIdentifiers) {
			break
		}
		buf = append(buf, next)
		eatNext(stream, pos)
	}

	name := string(buf)
	if tok, ok := LookupFromSyntax(name); ok {
		return tok
	}
	if !IsValidIdentifier(name) {
		return NewErrorToken(errMalformedIdentifier(name))
	}
	return NewStringToken(Identifier, name)
}
