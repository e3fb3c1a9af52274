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
 * Script Lexer - Token Syntax and Classification
 *
 * Canonical source text of every fixed token, the reverse lookup used for
 * identifiers and host configuration, and the properties the parser reads
 * off a token: unary context, precedence and associativity.
 */

package lexer

import (
	"fmt"

	"github.com/multigres/scriptlex/go/lexer/keywords"
)

// kindSyntax holds the canonical text of every token kind without a payload.
var kindSyntax = [numTokenKinds]string{
	Null: "null",

	LeftBrace:    "{",
	RightBrace:   "}",
	LeftParen:    "(",
	RightParen:   ")",
	LeftBracket:  "[",
	RightBracket: "]",

	Plus:       "+",
	UnaryPlus:  "+",
	Minus:      "-",
	UnaryMinus: "-",
	Multiply:   "*",
	Divide:     "/",
	Modulo:     "%",
	PowerOf:    "**",
	LeftShift:  "<<",
	RightShift: ">>",

	SemiColon:   ";",
	Colon:       ":",
	DoubleColon: "::",
	DoubleArrow: "=>",
	Underscore:  "_",
	Comma:       ",",
	Period:      ".",
	MapStart:    "#{",
	Equals:      "=",

	True:     "true",
	False:    "false",
	Let:      "let",
	Const:    "const",
	If:       "if",
	Else:     "else",
	Switch:   "switch",
	Do:       "do",
	While:    "while",
	Until:    "until",
	Loop:     "loop",
	For:      "for",
	In:       "in",
	Fn:       "fn",
	Continue: "continue",
	Break:    "break",
	Return:   "return",
	Throw:    "throw",
	Try:      "try",
	Catch:    "catch",
	Private:  "private",
	Import:   "import",
	Export:   "export",
	As:       "as",

	LessThan:            "<",
	GreaterThan:         ">",
	LessThanEqualsTo:    "<=",
	GreaterThanEqualsTo: ">=",
	EqualsTo:            "==",
	NotEqualsTo:         "!=",
	Bang:                "!",
	Pipe:                "|",
	Or:                  "||",
	XOr:                 "^",
	Ampersand:           "&",
	And:                 "&&",

	PlusAssign:       "+=",
	MinusAssign:      "-=",
	MultiplyAssign:   "*=",
	DivideAssign:     "/=",
	LeftShiftAssign:  "<<=",
	RightShiftAssign: ">>=",
	AndAssign:        "&=",
	OrAssign:         "|=",
	XOrAssign:        "^=",
	ModuloAssign:     "%=",
	PowerOfAssign:    "**=",
}

// reservedSymbols are symbols the tokenizer recognizes but the language does
// not use.
var reservedSymbols = []string{
	"===", "!==", "->", "<-", ":=", "~", "::<", "(*", "*)", "#",
	"++", "--", "..", "...", "@", "$",
}

var syntaxLookupMap map[string]TokenKind

func init() {
	syntaxLookupMap = make(map[string]TokenKind, len(kindSyntax)+len(reservedSymbols)+len(keywords.Keywords))
	for kind, text := range kindSyntax {
		k := TokenKind(kind)
		if text == "" || k == UnaryPlus || k == UnaryMinus {
			continue
		}
		syntaxLookupMap[text] = k
	}
	for _, text := range reservedSymbols {
		syntaxLookupMap[text] = Reserved
	}
	for _, kw := range keywords.Keywords {
		if kw.Category == keywords.ActiveKeyword {
			if _, ok := syntaxLookupMap[kw.Name]; !ok {
				panic(fmt.Sprintf("lexer: active keyword %q has no token kind", kw.Name))
			}
			continue
		}
		syntaxLookupMap[kw.Name] = Reserved
	}
}

// fixedSyntax returns the canonical text of a kind that carries no payload.
func fixedSyntax(kind TokenKind) (string, bool) {
	if kind <= 0 || kind >= numTokenKinds || kindSyntax[kind] == "" {
		return "", false
	}
	return kindSyntax[kind], true
}

// LookupFromSyntax maps source text to the token it denotes: an operator,
// punctuation or structural keyword, or a Reserved token for reserved
// symbols and reserved words. '+' and '-' map to their binary forms.
func LookupFromSyntax(syntax string) (Token, bool) {
	kind, ok := syntaxLookupMap[syntax]
	if !ok {
		return Token{}, false
	}
	if kind == Reserved {
		return NewStringToken(Reserved, syntax), true
	}
	return NewToken(kind), true
}

// IsNextUnary reports whether a '+' or '-' following this token is a unary
// operator. Opening brackets, operators, errors and keywords that begin an
// expression make it unary; closing brackets, literals and identifiers end an
// expression and make it binary.
func (t Token) IsNextUnary() bool {
	switch t.Kind {
	case Error,
		LeftBrace, LeftParen, LeftBracket,
		Plus, UnaryPlus, Minus, UnaryMinus, Multiply, Divide, Modulo, PowerOf,
		LeftShift, RightShift, XOr,
		Comma, Period, Equals,
		LessThan, GreaterThan, LessThanEqualsTo, GreaterThanEqualsTo, EqualsTo, NotEqualsTo,
		Bang, Pipe, Or, Ampersand, And,
		If, Do, While, Until, Return, Throw, In,
		PlusAssign, MinusAssign, MultiplyAssign, DivideAssign, LeftShiftAssign,
		RightShiftAssign, AndAssign, OrAssign, XOrAssign, ModuloAssign, PowerOfAssign:
		return true
	}
	return false
}

// Precedence returns the binding power of a binary operator. Assignments and
// non-operators have no precedence.
func (t Token) Precedence() (uint8, bool) {
	var p uint8
	switch t.Kind {
	case Or, XOr, Pipe:
		p = 30
	case And, Ampersand:
		p = 60
	case EqualsTo, NotEqualsTo:
		p = 90
	case In:
		p = 110
	case LessThan, LessThanEqualsTo, GreaterThan, GreaterThanEqualsTo:
		p = 130
	case Plus, Minus:
		p = 150
	case Divide, Multiply, Modulo:
		p = 180
	case PowerOf:
		p = 190
	case LeftShift, RightShift:
		p = 210
	case Period:
		p = 240
	}
	return p, p > 0
}

// IsBindRight reports whether the operator is right-associative:
// assignments, property access and exponentiation.
func (t Token) IsBindRight() bool {
	switch t.Kind {
	case Equals, PlusAssign, MinusAssign, MultiplyAssign, DivideAssign, PowerOfAssign,
		LeftShiftAssign, RightShiftAssign, AndAssign, OrAssign, XOrAssign, ModuloAssign,
		Period, PowerOf:
		return true
	}
	return false
}

// IsSymbol reports whether t is a standard operator or punctuation symbol.
func (t Token) IsSymbol() bool {
	switch t.Kind {
	case LeftBrace, RightBrace, LeftParen, RightParen, LeftBracket, RightBracket,
		Plus, UnaryPlus, Minus, UnaryMinus, Multiply, Divide, Modulo, PowerOf,
		LeftShift, RightShift, SemiColon, Colon, DoubleColon, DoubleArrow, Comma, Period,
		MapStart, Equals, LessThan, GreaterThan, LessThanEqualsTo, GreaterThanEqualsTo,
		EqualsTo, NotEqualsTo, Bang, Pipe, Or, XOr, Ampersand, And,
		PlusAssign, MinusAssign, MultiplyAssign, DivideAssign, LeftShiftAssign,
		RightShiftAssign, AndAssign, OrAssign, XOrAssign, ModuloAssign, PowerOfAssign:
		return true
	}
	return false
}

// IsKeyword reports whether t is an active structural keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case Null, True, False, Let, Const, If, Else, Switch, Do, While, Until, Loop, For, In,
		Fn, Continue, Break, Return, Throw, Try, Catch, Private, Import, Export, As:
		return true
	}
	return false
}
