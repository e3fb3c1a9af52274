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
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawTokens runs the tokenizer over input up to and including EOF.
func rawTokens(t *testing.T, state TokenizeState, input string) ([]Token, []Position) {
	t.Helper()
	tk := NewTokenizer(NewMultiInputStream(input), state)
	var (
		tokens    []Token
		positions []Position
	)
	for range 10000 {
		tok, pos, ok := tk.Next()
		if !ok {
			return tokens, positions
		}
		tokens = append(tokens, tok)
		positions = append(positions, pos)
		if tok.IsEOF() {
			return tokens, positions
		}
	}
	require.FailNow(t, "tokenizer did not reach the end of input", "input %q", input)
	return nil, nil
}

func kindsOf(tokens []Token) []TokenKind {
	kinds := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func at(line, column uint16) Position {
	return NewPosition(line, column)
}

func TestOperatorsLongestMatch(t *testing.T) {
	tests := []struct {
		text string
		kind TokenKind
	}{
		{"{", LeftBrace}, {"}", RightBrace}, {"(", LeftParen}, {")", RightParen},
		{"[", LeftBracket}, {"]", RightBracket}, {"#{", MapStart},
		{"+", UnaryPlus}, {"-", UnaryMinus}, {"*", Multiply}, {"/", Divide}, {"%", Modulo},
		{"**", PowerOf}, {"<<", LeftShift}, {">>", RightShift},
		{";", SemiColon}, {":", Colon}, {"::", DoubleColon}, {"=>", DoubleArrow},
		{"_", Underscore}, {",", Comma}, {".", Period}, {"=", Equals},
		{"<", LessThan}, {">", GreaterThan}, {"<=", LessThanEqualsTo}, {">=", GreaterThanEqualsTo},
		{"==", EqualsTo}, {"!=", NotEqualsTo}, {"!", Bang},
		{"|", Pipe}, {"||", Or}, {"^", XOr}, {"&", Ampersand}, {"&&", And},
		{"+=", PlusAssign}, {"-=", MinusAssign}, {"*=", MultiplyAssign}, {"/=", DivideAssign},
		{"<<=", LeftShiftAssign}, {">>=", RightShiftAssign}, {"&=", AndAssign},
		{"|=", OrAssign}, {"^=", XOrAssign}, {"%=", ModuloAssign}, {"**=", PowerOfAssign},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			tokens, positions := rawTokens(t, TokenizeState{}, tt.text)
			require.Len(t, tokens, 2, "tokens: %v", tokens)
			assert.Equal(t, NewToken(tt.kind), tokens[0])
			assert.Equal(t, at(1, 1), positions[0])
			assert.Equal(t, EOF, tokens[1].Kind)
			assert.Equal(t, at(1, uint16(len(tt.text)+1)), positions[1])
		})
	}
}

func TestReservedSymbols(t *testing.T) {
	for _, text := range []string{"===", "!==", "->", "<-", ":=", "::<", "(*", "*)", "#", "++", "--", "..", "...", "~", "@", "$"} {
		t.Run(text, func(t *testing.T) {
			tokens, _ := rawTokens(t, TokenizeState{}, text)
			require.Len(t, tokens, 2)
			assert.Equal(t, NewStringToken(Reserved, text), tokens[0])
		})
	}
}

func TestSyntaxRoundTrip(t *testing.T) {
	for kind := TokenKind(1); kind < numTokenKinds; kind++ {
		syntax, ok := fixedSyntax(kind)
		if !ok {
			continue
		}
		t.Run(kind.String(), func(t *testing.T) {
			tok := NewToken(kind)
			require.Equal(t, syntax, tok.Syntax())

			// Binary '+' and '-' only follow an operand.
			state := TokenizeState{NonUnary: kind != UnaryPlus && kind != UnaryMinus}
			tokens, _ := rawTokens(t, state, tok.Syntax())
			require.NotEmpty(t, tokens)
			assert.Equal(t, tok, tokens[0])
		})
	}
}

func TestIdentifiers(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Token
	}{
		{"simple", "counter", NewStringToken(Identifier, "counter")},
		{"mixed_case", "myVar2", NewStringToken(Identifier, "myVar2")},
		{"leading_underscore", "_private", NewStringToken(Identifier, "_private")},
		{"underscores_and_digits", "__a_1", NewStringToken(Identifier, "__a_1")},
		{"keyword", "let", NewToken(Let)},
		{"keyword_switch", "switch", NewToken(Switch)},
		{"keywords_case_sensitive", "Let", NewStringToken(Identifier, "Let")},
		{"null", "null", NewToken(Null)},
		{"reserved_word", "var", NewStringToken(Reserved, "var")},
		{"keyword_function", "print", NewStringToken(Reserved, "print")},
		{"underscore_alone", "_", NewToken(Underscore)},
		{"underscores_only", "__", NewErrorToken(errMalformedIdentifier("__"))},
		{"digit_before_letter", "_1a", NewErrorToken(errMalformedIdentifier("_1a"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, positions := rawTokens(t, TokenizeState{}, tt.input)
			require.Len(t, tokens, 2)
			assert.Equal(t, tt.expected, tokens[0])
			assert.Equal(t, at(1, 1), positions[0])
		})
	}
}

func TestUnicodeIdentifiers(t *testing.T) {
	tokens, positions := rawTokens(t, TokenizeState{}, "héllo")
	assert.Equal(t, []Token{
		NewStringToken(Identifier, "h"),
		NewErrorToken(errUnexpectedInput('é')),
		NewStringToken(Identifier, "llo"),
		NewToken(EOF),
	}, tokens)
	assert.Equal(t, []Position{at(1, 1), at(1, 2), at(1, 3), at(1, 6)}, positions)

	tokens, _ = rawTokens(t, TokenizeState{UnicodeIdentifiers: true}, "héllo 日本")
	assert.Equal(t, []Token{
		NewStringToken(Identifier, "héllo"),
		NewStringToken(Identifier, "日本"),
		NewToken(EOF),
	}, tokens)
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Token
	}{
		{"plain", `"hello"`, NewStringToken(StringConstant, "hello")},
		{"empty", `""`, NewStringToken(StringConstant, "")},
		{"simple_escapes", `"\t\n\r\\\""`, NewStringToken(StringConstant, "\t\n\r\\\"")},
		{"hex_escape", `"\x41"`, NewStringToken(StringConstant, "A")},
		{"unicode_escape", `"\u0041"`, NewStringToken(StringConstant, "A")},
		{"long_unicode_escape", `"\U00000041"`, NewStringToken(StringConstant, "A")},
		{"non_ascii_escape", `"é\U0001F600"`, NewStringToken(StringConstant, "é😀")},
		{"single_quote_inside", `"it's"`, NewStringToken(StringConstant, "it's")},
		{"unknown_escape", `"\q"`, NewErrorToken(errMalformedEscape(`\q`))},
		{"bad_hex_digit", `"\x4G"`, NewErrorToken(errMalformedEscape(`\x4G`))},
		{"truncated_hex", `"\x4`, NewErrorToken(errMalformedEscape(`\x4`))},
		{"surrogate", `"\uD800"`, NewErrorToken(errMalformedEscape(`\uD800`))},
		{"beyond_unicode", `"\U00110000"`, NewErrorToken(errMalformedEscape(`\U00110000`))},
		{"unterminated", `"abc`, NewErrorToken(errUnterminatedString())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, _ := rawTokens(t, TokenizeState{}, tt.input)
			require.NotEmpty(t, tokens)
			assert.Equal(t, tt.expected, tokens[0])
		})
	}
}

func TestUnterminatedStringPosition(t *testing.T) {
	tokens, positions := rawTokens(t, TokenizeState{}, `x = "abc`)
	require.Len(t, tokens, 4)
	assert.Equal(t, Error, tokens[2].Kind)
	assert.Equal(t, UnterminatedString, tokens[2].Err.Type)
	assert.Equal(t, at(1, 5), positions[2], "reported at the opening quote")
	assert.Equal(t, EOF, tokens[3].Kind)
}

func TestNewlineInsideString(t *testing.T) {
	tokens, positions := rawTokens(t, TokenizeState{}, "\"ab\ncd")
	assert.Equal(t, []TokenKind{Error, Identifier, EOF}, kindsOf(tokens))
	assert.Equal(t, UnterminatedString, tokens[0].Err.Type)
	assert.Equal(t, at(1, 1), positions[0])
	assert.Equal(t, at(2, 1), positions[1], "the newline is still counted")
}

func TestStringTooLong(t *testing.T) {
	state := TokenizeState{MaxStringSize: 3}

	tokens, _ := rawTokens(t, state, `"abc"`)
	assert.Equal(t, NewStringToken(StringConstant, "abc"), tokens[0])

	tokens, _ = rawTokens(t, state, `"abcd"`)
	assert.Equal(t, NewErrorToken(errStringTooLong(3)), tokens[0])
	assert.EqualError(t, tokens[0].Err, "length of string literal exceeds the maximum limit (3)")
}

func TestCharLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Token
	}{
		{"plain", `'a'`, NewCharToken('a')},
		{"escape", `'\n'`, NewCharToken('\n')},
		{"quote_escape", `'\''`, NewCharToken('\'')},
		{"unicode", `'é'`, NewCharToken('é')},
		{"multibyte", `'日'`, NewCharToken('日')},
		{"empty", `''`, NewErrorToken(errMalformedChar(""))},
		{"too_long", `'ab'`, NewErrorToken(errMalformedChar("ab"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, positions := rawTokens(t, TokenizeState{}, tt.input)
			require.Len(t, tokens, 2, "tokens: %v", tokens)
			assert.Equal(t, tt.expected, tokens[0])
			assert.Equal(t, at(1, 1), positions[0])
		})
	}
}

func TestNumericLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected Token
	}{
		{"0", NewIntegerToken(0)},
		{"42", NewIntegerToken(42)},
		{"1__000", NewIntegerToken(1000)},
		{"1_000_000", NewIntegerToken(1000000)},
		{"0x1A", NewIntegerToken(26)},
		{"0XfF", NewIntegerToken(255)},
		{"0xFF_FF", NewIntegerToken(65535)},
		{"0o17", NewIntegerToken(15)},
		{"0b101", NewIntegerToken(5)},
		{"0B1_0", NewIntegerToken(2)},
		{"9223372036854775807", NewIntegerToken(9223372036854775807)},
		{"1.5", NewFloatToken(1.5)},
		{"1.5e10", NewFloatToken(1.5e10)},
		{"2e3", NewFloatToken(2000)},
		{"2E3", NewFloatToken(2000)},
		{"2e-3", NewFloatToken(0.002)},
		{"2e+3", NewFloatToken(2000)},
		{"1_000.25", NewFloatToken(1000.25)},
		{"3.", NewFloatToken(3)},
		{"9223372036854775808", NewFloatToken(9223372036854775808)},
		{"0b102", NewErrorToken(errMalformedNumber("0b102"))},
		{"0x", NewErrorToken(errMalformedNumber("0x"))},
		{"0xG", NewErrorToken(errMalformedNumber("0x"))},
		{"1e+", NewErrorToken(errMalformedNumber("1e+"))},
		{"0b1.5", NewErrorToken(errMalformedNumber("0b1.5"))},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, positions := rawTokens(t, TokenizeState{}, tt.input)
			require.NotEmpty(t, tokens)
			assert.Equal(t, tt.expected, tokens[0])
			assert.Equal(t, at(1, 1), positions[0])
		})
	}
}

func TestDecimalLiterals(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1e400", "1e400"},
		{"-2.5e500", "-2.5e500"},
		{"1_0e309", "1e310"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens, _ := rawTokens(t, TokenizeState{}, tt.input)
			require.Len(t, tokens, 2)
			require.Equal(t, DecimalConstant, tokens[0].Kind, "beyond float64 range")
			expected := decimal.RequireFromString(tt.expected)
			assert.True(t, expected.Equal(tokens[0].Decimal), "got %s", tokens[0].Decimal)
		})
	}
}

func TestNumberBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "property_access",
			input:    "1.abs",
			expected: []Token{NewIntegerToken(1), NewToken(Period), NewStringToken(Identifier, "abs"), NewToken(EOF)},
		},
		{
			name:     "range",
			input:    "1..2",
			expected: []Token{NewIntegerToken(1), NewStringToken(Reserved, ".."), NewIntegerToken(2), NewToken(EOF)},
		},
		{
			name:     "float_then_symbol",
			input:    "3.)",
			expected: []Token{NewFloatToken(3), NewToken(RightParen), NewToken(EOF)},
		},
		{
			name:     "separator_after_period",
			input:    "1._x",
			expected: []Token{NewIntegerToken(1), NewToken(Period), NewStringToken(Identifier, "_x"), NewToken(EOF)},
		},
		{
			name:     "exponent_not_taken",
			input:    "1ex",
			expected: []Token{NewIntegerToken(1), NewStringToken(Identifier, "ex"), NewToken(EOF)},
		},
		{
			name:     "radix_prefix_only_at_start",
			input:    "10x",
			expected: []Token{NewIntegerToken(10), NewStringToken(Identifier, "x"), NewToken(EOF)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, _ := rawTokens(t, TokenizeState{}, tt.input)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestUnaryDisambiguation(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  []Token
		positions []Position
	}{
		{
			name:      "negative_literal",
			input:     "-5",
			expected:  []Token{NewIntegerToken(-5), NewToken(EOF)},
			positions: []Position{at(1, 1), at(1, 3)},
		},
		{
			name:      "binary_minus",
			input:     "x - 5",
			expected:  []Token{NewStringToken(Identifier, "x"), NewToken(Minus), NewIntegerToken(5), NewToken(EOF)},
			positions: []Position{at(1, 1), at(1, 3), at(1, 5), at(1, 6)},
		},
		{
			name:      "binary_minus_before_digit",
			input:     "x-1",
			expected:  []Token{NewStringToken(Identifier, "x"), NewToken(Minus), NewIntegerToken(1), NewToken(EOF)},
			positions: []Position{at(1, 1), at(1, 2), at(1, 3), at(1, 4)},
		},
		{
			name:      "unary_after_operator",
			input:     "2*-3",
			expected:  []Token{NewIntegerToken(2), NewToken(Multiply), NewIntegerToken(-3), NewToken(EOF)},
			positions: []Position{at(1, 1), at(1, 2), at(1, 3), at(1, 5)},
		},
		{
			name:      "unary_before_identifier",
			input:     "(-x)",
			expected:  []Token{NewToken(LeftParen), NewToken(UnaryMinus), NewStringToken(Identifier, "x"), NewToken(RightParen), NewToken(EOF)},
			positions: []Position{at(1, 1), at(1, 2), at(1, 3), at(1, 4), at(1, 5)},
		},
		{
			name:      "binary_after_closing",
			input:     "(1)+2",
			expected:  []Token{NewToken(LeftParen), NewIntegerToken(1), NewToken(RightParen), NewToken(Plus), NewIntegerToken(2), NewToken(EOF)},
			positions: []Position{at(1, 1), at(1, 2), at(1, 3), at(1, 4), at(1, 5), at(1, 6)},
		},
		{
			name:      "negative_hex",
			input:     "-0x1A",
			expected:  []Token{NewIntegerToken(-26), NewToken(EOF)},
			positions: []Position{at(1, 1), at(1, 6)},
		},
		{
			name:      "return_value",
			input:     "return -1",
			expected:  []Token{NewToken(Return), NewIntegerToken(-1), NewToken(EOF)},
			positions: []Position{at(1, 1), at(1, 8), at(1, 10)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, positions := rawTokens(t, TokenizeState{}, tt.input)
			assert.Equal(t, tt.expected, tokens)
			assert.Equal(t, tt.positions, positions)
		})
	}
}

func TestBlockComments(t *testing.T) {
	tokens, positions := rawTokens(t, TokenizeState{}, "/* a /* b */ c */")
	assert.Equal(t, []Token{NewToken(EOF)}, tokens)
	assert.Equal(t, []Position{at(1, 18)}, positions)

	tk := NewTokenizer(NewMultiInputStream("/* never closes"), TokenizeState{})
	tok, _, ok := tk.Next()
	require.True(t, ok)
	assert.Equal(t, EOF, tok.Kind, "an unterminated comment is not an error")
	assert.Equal(t, 1, tk.State.CommentLevel)
	assert.True(t, tk.State.InComment())

	tokens, positions = rawTokens(t, TokenizeState{}, "/* one\ntwo */ x")
	assert.Equal(t, []TokenKind{Identifier, EOF}, kindsOf(tokens))
	assert.Equal(t, at(2, 8), positions[0], "newlines inside comments are counted")
}

func TestCommentRetention(t *testing.T) {
	tests := []struct {
		name     string
		state    TokenizeState
		input    string
		expected []Token
	}{
		{
			name:     "plain_comments_dropped",
			input:    "// hi\n/* there */",
			expected: []Token{NewToken(EOF)},
		},
		{
			name:     "plain_comments_kept",
			state:    TokenizeState{IncludeComments: true},
			input:    "// hi\n/* there */",
			expected: []Token{NewStringToken(Comment, "// hi"), NewStringToken(Comment, "/* there */"), NewToken(EOF)},
		},
		{
			name:     "line_doc_comment",
			input:    "/// doc\nx",
			expected: []Token{NewStringToken(Comment, "/// doc"), NewStringToken(Identifier, "x"), NewToken(EOF)},
		},
		{
			name:     "block_doc_comment",
			input:    "/** doc */",
			expected: []Token{NewStringToken(Comment, "/** doc */"), NewToken(EOF)},
		},
		{
			name:     "slash_run_is_not_doc",
			input:    "//// banner",
			expected: []Token{NewToken(EOF)},
		},
		{
			name:     "slash_run_kept_as_plain",
			state:    TokenizeState{IncludeComments: true},
			input:    "//// banner",
			expected: []Token{NewStringToken(Comment, "//// banner"), NewToken(EOF)},
		},
		{
			name:     "star_run_is_not_doc",
			input:    "/*** banner */",
			expected: []Token{NewToken(EOF)},
		},
		{
			name:     "doc_comments_disabled",
			state:    TokenizeState{DisableDocComments: true},
			input:    "/// doc\n/** doc */",
			expected: []Token{NewToken(EOF)},
		},
		{
			name:     "doc_disabled_kept_as_plain",
			state:    TokenizeState{DisableDocComments: true, IncludeComments: true},
			input:    "/// doc",
			expected: []Token{NewStringToken(Comment, "/// doc"), NewToken(EOF)},
		},
		{
			name:     "empty_block_comment",
			input:    "/**/ x",
			expected: []Token{NewStringToken(Identifier, "x"), NewToken(EOF)},
		},
		{
			name:     "empty_block_comment_kept",
			state:    TokenizeState{IncludeComments: true},
			input:    "/**/",
			expected: []Token{NewStringToken(Comment, "/**/"), NewToken(EOF)},
		},
		{
			name:     "nested_kept",
			state:    TokenizeState{IncludeComments: true},
			input:    "/* a /* b */ c */",
			expected: []Token{NewStringToken(Comment, "/* a /* b */ c */"), NewToken(EOF)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, _ := rawTokens(t, tt.state, tt.input)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestCommentsKeepUnaryContext(t *testing.T) {
	tokens, _ := rawTokens(t, TokenizeState{IncludeComments: true}, "x /* c */ -1")
	assert.Equal(t, []TokenKind{Identifier, Comment, Minus, IntegerConstant, EOF}, kindsOf(tokens))
	assert.Equal(t, int64(1), tokens[3].Int)
}

func TestResumeBlockComment(t *testing.T) {
	stream := NewMultiInputStream("/* first line")
	state := TokenizeState{IncludeComments: true}
	pos := StartPosition()

	tok, _, ok := NextToken(stream, &state, &pos)
	require.True(t, ok)
	assert.Equal(t, NewStringToken(Comment, "/* first line"), tok)
	require.Equal(t, 1, state.CommentLevel)

	// A continuation line finishes the comment before scanning on.
	tok, _, _ = NextToken(stream, &state, &pos)
	assert.Equal(t, EOF, tok.Kind, "nothing left to resume")

	stream = NewMultiInputStream("still */ x")
	pos.NewLine()
	tok, _, ok = NextToken(stream, &state, &pos)
	require.True(t, ok)
	assert.Equal(t, NewStringToken(Comment, "still */"), tok)
	assert.Equal(t, 0, state.CommentLevel)

	tok, where, _ := NextToken(stream, &state, &pos)
	assert.Equal(t, NewStringToken(Identifier, "x"), tok)
	assert.Equal(t, at(2, 10), where)
}

func TestWhitespaceAndUnexpectedInput(t *testing.T) {
	tokens, positions := rawTokens(t, TokenizeState{}, "\t x\r\n`")
	assert.Equal(t, []Token{
		NewStringToken(Identifier, "x"),
		NewErrorToken(errUnexpectedInput('`')),
		NewToken(EOF),
	}, tokens)
	assert.Equal(t, []Position{at(1, 3), at(2, 1), at(2, 2)}, positions)
}

func TestEndWithNone(t *testing.T) {
	tk := NewTokenizer(NewMultiInputStream("x"), TokenizeState{EndWithNone: true})
	tok, _, ok := tk.Next()
	require.True(t, ok)
	assert.Equal(t, NewStringToken(Identifier, "x"), tok)

	_, _, ok = tk.Next()
	assert.False(t, ok)
}

func TestEOFRepeats(t *testing.T) {
	tk := NewTokenizer(NewMultiInputStream(""), TokenizeState{})
	for range 3 {
		tok, _, ok := tk.Next()
		require.True(t, ok)
		assert.True(t, tok.IsEOF())
	}
}

func TestPositionInvariant(t *testing.T) {
	// Every character advances the position exactly once, so a token after
	// arbitrary content on earlier lines reports the right place.
	inputs := []string{
		`"str\"ing" 'c' 0x1F 1.5e3 /* c */ // line`,
		`let x = "unterminated`,
		`a ** b <<= c ::< d`,
		`"é\x41" foo`,
		`/* /* */ */ # ~ ...`,
	}
	for i, line := range inputs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			src := line + "\n  marker"
			tokens, positions := rawTokens(t, TokenizeState{}, src)
			require.GreaterOrEqual(t, len(tokens), 2)
			last := len(tokens) - 2
			assert.Equal(t, NewStringToken(Identifier, "marker"), tokens[last])
			assert.Equal(t, at(2, 3), positions[last])
			assert.Equal(t, at(2, uint16(3+utf8.RuneCountInString("marker"))), positions[last+1])
		})
	}
}
