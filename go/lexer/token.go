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
	"strconv"

	"github.com/shopspring/decimal"
)

// TokenKind identifies the variant of a Token.
type TokenKind int

const (
	IntegerConstant TokenKind = iota + 1 // Int payload
	FloatConstant                        // Float payload
	DecimalConstant                      // Decimal payload
	Identifier                           // Text payload
	CharConstant                         // Char payload
	StringConstant                       // Text payload
	Null                                 // null

	LeftBrace    // {
	RightBrace   // }
	LeftParen    // (
	RightParen   // )
	LeftBracket  // [
	RightBracket // ]

	Plus       // +
	UnaryPlus  // + (unary)
	Minus      // -
	UnaryMinus // - (unary)
	Multiply   // *
	Divide     // /
	Modulo     // %
	PowerOf    // **
	LeftShift  // <<
	RightShift // >>

	SemiColon   // ;
	Colon       // :
	DoubleColon // ::
	DoubleArrow // =>
	Underscore  // _
	Comma       // ,
	Period      // .
	MapStart    // #{
	Equals      // =

	True     // true
	False    // false
	Let      // let
	Const    // const
	If       // if
	Else     // else
	Switch   // switch
	Do       // do
	While    // while
	Until    // until
	Loop     // loop
	For      // for
	In       // in
	Fn       // fn
	Continue // continue
	Break    // break
	Return   // return
	Throw    // throw
	Try      // try
	Catch    // catch
	Private  // private
	Import   // import
	Export   // export
	As       // as

	LessThan            // <
	GreaterThan         // >
	LessThanEqualsTo    // <=
	GreaterThanEqualsTo // >=
	EqualsTo            // ==
	NotEqualsTo         // !=
	Bang                // !
	Pipe                // |
	Or                  // ||
	XOr                 // ^
	Ampersand           // &
	And                 // &&

	PlusAssign       // +=
	MinusAssign      // -=
	MultiplyAssign   // *=
	DivideAssign     // /=
	LeftShiftAssign  // <<=
	RightShiftAssign // >>=
	AndAssign        // &=
	OrAssign         // |=
	XOrAssign        // ^=
	ModuloAssign     // %=
	PowerOfAssign    // **=

	Error    // Err payload
	Comment  // Text payload
	Reserved // Text payload
	Custom   // Text payload
	EOF      // end of the input stream

	numTokenKinds
)

var tokenKindNames = [numTokenKinds]string{
	IntegerConstant: "IntegerConstant",
	FloatConstant:   "FloatConstant",
	DecimalConstant: "DecimalConstant",
	Identifier:      "Identifier",
	CharConstant:    "CharConstant",
	StringConstant:  "StringConstant",
	Null:            "Null",

	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",

	Plus:       "Plus",
	UnaryPlus:  "UnaryPlus",
	Minus:      "Minus",
	UnaryMinus: "UnaryMinus",
	Multiply:   "Multiply",
	Divide:     "Divide",
	Modulo:     "Modulo",
	PowerOf:    "PowerOf",
	LeftShift:  "LeftShift",
	RightShift: "RightShift",

	SemiColon:   "SemiColon",
	Colon:       "Colon",
	DoubleColon: "DoubleColon",
	DoubleArrow: "DoubleArrow",
	Underscore:  "Underscore",
	Comma:       "Comma",
	Period:      "Period",
	MapStart:    "MapStart",
	Equals:      "Equals",

	True:     "True",
	False:    "False",
	Let:      "Let",
	Const:    "Const",
	If:       "If",
	Else:     "Else",
	Switch:   "Switch",
	Do:       "Do",
	While:    "While",
	Until:    "Until",
	Loop:     "Loop",
	For:      "For",
	In:       "In",
	Fn:       "Fn",
	Continue: "Continue",
	Break:    "Break",
	Return:   "Return",
	Throw:    "Throw",
	Try:      "Try",
	Catch:    "Catch",
	Private:  "Private",
	Import:   "Import",
	Export:   "Export",
	As:       "As",

	LessThan:            "LessThan",
	GreaterThan:         "GreaterThan",
	LessThanEqualsTo:    "LessThanEqualsTo",
	GreaterThanEqualsTo: "GreaterThanEqualsTo",
	EqualsTo:            "EqualsTo",
	NotEqualsTo:         "NotEqualsTo",
	Bang:                "Bang",
	Pipe:                "Pipe",
	Or:                  "Or",
	XOr:                 "XOr",
	Ampersand:           "Ampersand",
	And:                 "And",

	PlusAssign:       "PlusAssign",
	MinusAssign:      "MinusAssign",
	MultiplyAssign:   "MultiplyAssign",
	DivideAssign:     "DivideAssign",
	LeftShiftAssign:  "LeftShiftAssign",
	RightShiftAssign: "RightShiftAssign",
	AndAssign:        "AndAssign",
	OrAssign:         "OrAssign",
	XOrAssign:        "XOrAssign",
	ModuloAssign:     "ModuloAssign",
	PowerOfAssign:    "PowerOfAssign",

	Error:    "Error",
	Comment:  "Comment",
	Reserved: "Reserved",
	Custom:   "Custom",
	EOF:      "EOF",
}

// String returns the name of the token kind.
func (k TokenKind) String() string {
	if k > 0 && k < numTokenKinds {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a classified lexical unit. Kind selects the variant; only the
// payload field belonging to that variant is meaningful. Tokens are values
// and are never modified after they are produced.
type Token struct {
	Kind    TokenKind
	Int     int64           // IntegerConstant
	Float   float64         // FloatConstant
	Decimal decimal.Decimal // DecimalConstant
	Char    rune            // CharConstant
	Text    string          // Identifier, StringConstant, Comment, Reserved, Custom
	Err     *LexError       // Error
}

// NewToken creates a token of a kind that carries no payload.
func NewToken(kind TokenKind) Token {
	return Token{Kind: kind}
}

// NewStringToken creates a token of a text-carrying kind.
func NewStringToken(kind TokenKind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// NewIntegerToken creates an IntegerConstant token.
func NewIntegerToken(v int64) Token {
	return Token{Kind: IntegerConstant, Int: v}
}

// NewFloatToken creates a FloatConstant token.
func NewFloatToken(v float64) Token {
	return Token{Kind: FloatConstant, Float: v}
}

// NewDecimalToken creates a DecimalConstant token.
func NewDecimalToken(v decimal.Decimal) Token {
	return Token{Kind: DecimalConstant, Decimal: v}
}

// NewCharToken creates a CharConstant token.
func NewCharToken(ch rune) Token {
	return Token{Kind: CharConstant, Char: ch}
}

// NewErrorToken creates an Error token carrying err.
func NewErrorToken(err *LexError) Token {
	return Token{Kind: Error, Err: err}
}

// Syntax returns the source text of the token. Literal-valued tokens render
// their value; string constants render as "string".
func (t Token) Syntax() string {
	switch t.Kind {
	case IntegerConstant:
		return strconv.FormatInt(t.Int, 10)
	case FloatConstant:
		return formatFloat(t.Float)
	case DecimalConstant:
		return t.Decimal.String()
	case StringConstant:
		return "string"
	case CharConstant:
		return string(t.Char)
	case Identifier, Reserved, Custom, Comment:
		return t.Text
	case Error:
		if t.Err == nil {
			return ""
		}
		return t.Err.Error()
	case EOF:
		return "{EOF}"
	}
	if s, ok := fixedSyntax(t.Kind); ok {
		return s
	}
	panic(fmt.Sprintf("lexer: no syntax for token kind %s", t.Kind))
}

// String renders the token for debugging, e.g. Identifier("x").
func (t Token) String() string {
	switch t.Kind {
	case IntegerConstant, FloatConstant, DecimalConstant:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Syntax())
	case CharConstant:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Char)
	case Identifier, StringConstant, Comment, Reserved, Custom:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	case Error:
		if t.Err == nil {
			return "Error(<nil>)"
		}
		return fmt.Sprintf("Error(%s: %s)", t.Err.Type, t.Err.Error())
	default:
		return t.Kind.String()
	}
}

// IsEOF reports whether t is the end-of-stream marker.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

// IsReserved reports whether t is a reserved symbol.
func (t Token) IsReserved() bool {
	return t.Kind == Reserved
}

// IsCustom reports whether t is a custom keyword.
func (t Token) IsCustom() bool {
	return t.Kind == Custom
}

// IsError reports whether t carries a lexical error.
func (t Token) IsError() bool {
	return t.Kind == Error
}

// FunctionName returns the name under which t can define or override a
// function: a custom keyword or an identifier with a proper name.
func (t Token) FunctionName() (string, bool) {
	if (t.Kind == Custom || t.Kind == Identifier) && IsValidIdentifier(t.Text) {
		return t.Text, true
	}
	return "", false
}

// formatFloat prints integral values with a trailing ".0" and switches to
// scientific notation for very large or very small magnitudes.
func formatFloat(f float64) string {
	abs := math.Abs(f)
	switch {
	case math.IsInf(f, 0) || math.IsNaN(f):
		return strconv.FormatFloat(f, 'g', -1, 64)
	case abs >= 1e15 || (abs != 0 && abs < 1e-5):
		return strconv.FormatFloat(f, 'e', -1, 64)
	case f == math.Trunc(f):
		return strconv.FormatFloat(f, 'f', 1, 64)
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
