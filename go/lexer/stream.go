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
 * Script Lexer - Token Stream
 *
 * TokenIterator pulls raw tokens from a Tokenizer and applies the host's
 * symbol policy: reserved symbols become custom keywords, diagnostics or
 * plain Reserved tokens; custom and disabled keywords are re-tagged; the
 * optional mapper runs last on every token.
 */

package lexer

import (
	"fmt"
	"iter"
	"log/slog"
)

// Options configures a TokenIterator.
type Options struct {
	// MaxStringSize limits string and character literals, in bytes. Zero
	// means unlimited.
	MaxStringSize int
	// IncludeComments emits plain comments as Comment tokens.
	IncludeComments bool
	// DisableDocComments treats doc-comments as plain comments.
	DisableDocComments bool
	// EndWithNone ends the sequence without an EOF token.
	EndWithNone bool
	// UnicodeIdentifiers accepts Unicode letters and digits in identifiers.
	UnicodeIdentifiers bool
	// Policy holds custom keywords and disabled symbols. Nil means none.
	Policy SymbolPolicy
	// Map, when set, is applied to every token after the policy.
	Map func(Token) Token
	// Origin is spliced onto every reported position with Position.Add. It
	// is used when the input continues a previously lexed segment.
	Origin Position
	// Logger receives debug records for re-tagged tokens. Nil disables
	// logging.
	Logger *slog.Logger
}

// DefaultOptions returns options with no limits, no policy and EOF
// termination.
func DefaultOptions() Options {
	return Options{
		Origin: NonePosition(),
	}
}

// foreignSymbols maps symbols borrowed from other languages to a suggestion.
var foreignSymbols = map[string]string{
	"===":   "'===' is not a valid operator. This is not JavaScript! Should it be '=='?",
	"!==":   "'!==' is not a valid operator. This is not JavaScript! Should it be '!='?",
	"->":    "'->' is not a valid symbol. This is not C or C++!",
	"<-":    "'<-' is not a valid symbol. This is not Go! Should it be '<='?",
	":=":    "':=' is not a valid assignment operator. This is not Go or Pascal! Should it be simply '='?",
	"::<":   "'::<>' is not a valid symbol. This is not Rust! Should it be '::'?",
	"(*":    pascalComment,
	"*)":    pascalComment,
	"begin": pascalComment,
	"end":   pascalComment,
	"#":     "'#' is not a valid symbol. Should it be '#{'?",
}

const pascalComment = "'(* .. *)' is not a valid comment format. This is not Pascal! Should it be '/* .. */'?"

// TokenIterator is a lazy sequence of (Token, Position) pairs over one or
// more input segments. It is a single-owner cursor and is not safe for
// concurrent use.
type TokenIterator struct {
	tokenizer Tokenizer
	policy    SymbolPolicy
	mapper    func(Token) Token
	origin    Position
	logger    *slog.Logger
	sawEOF    bool
	done      bool
}

// NewTokenIterator creates an iterator over inputs, read as one stream.
func NewTokenIterator(opts Options, inputs ...string) *TokenIterator {
	policy := opts.Policy
	if policy == nil {
		policy = (*SymbolSet)(nil)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TokenIterator{
		tokenizer: Tokenizer{
			Stream: NewMultiInputStream(inputs...),
			State: TokenizeState{
				MaxStringSize:      opts.MaxStringSize,
				EndWithNone:        opts.EndWithNone,
				IncludeComments:    opts.IncludeComments,
				DisableDocComments: opts.DisableDocComments,
				UnicodeIdentifiers: opts.UnicodeIdentifiers,
			},
			Pos: StartPosition(),
		},
		policy: policy,
		mapper: opts.Map,
		origin: opts.Origin,
		logger: logger,
	}
}

// State exposes the scanning state, e.g. to check for an unterminated block
// comment after the sequence ends.
func (it *TokenIterator) State() *TokenizeState {
	return &it.tokenizer.State
}

// Position returns the current scanning position, without the origin.
func (it *TokenIterator) Position() Position {
	return it.tokenizer.Pos
}

// Next returns the next token and its position. It returns false when the
// sequence has ended, which only happens with Options.EndWithNone; otherwise
// the end of input is reported by EOF tokens.
func (it *TokenIterator) Next() (Token, Position, bool) {
	if it.done {
		return Token{}, NonePosition(), false
	}
	raw, pos, ok := it.tokenizer.Next()
	if !ok {
		it.done = true
		return Token{}, NonePosition(), false
	}
	it.sawEOF = raw.IsEOF()

	tok := it.applyPolicy(raw)
	if it.mapper != nil {
		tok = it.mapper(tok)
	}
	return tok, it.origin.Add(pos), true
}

// All returns the remaining tokens as a sequence that ends after the first
// EOF token or when the input runs out.
func (it *TokenIterator) All() iter.Seq2[Token, Position] {
	return func(yield func(Token, Position) bool) {
		for {
			tok, pos, ok := it.Next()
			if !ok || !yield(tok, pos) || it.sawEOF {
				return
			}
		}
	}
}

// Collect drains the iterator.
func (it *TokenIterator) Collect() ([]Token, []Position) {
	var (
		tokens    []Token
		positions []Position
	)
	for tok, pos := range it.All() {
		tokens = append(tokens, tok)
		positions = append(positions, pos)
	}
	return tokens, positions
}

func (it *TokenIterator) applyPolicy(tok Token) Token {
	switch tok.Kind {
	case Reserved:
		return it.retag(tok, it.reserved(tok.Text))

	case Identifier:
		if it.policy.IsCustomKeyword(tok.Text) {
			return it.retag(tok, NewStringToken(Custom, tok.Text))
		}
		return tok
	}

	syntax, ok := fixedSyntax(tok.Kind)
	if !ok {
		return tok
	}
	if it.policy.IsCustomKeyword(syntax) {
		if !it.policy.IsDisabledSymbol(syntax) {
			panic(fmt.Sprintf("lexer: %s is an active keyword and cannot be a custom keyword unless disabled", tok.Kind))
		}
		return it.retag(tok, NewStringToken(Custom, syntax))
	}
	if it.policy.IsDisabledSymbol(syntax) {
		return it.retag(tok, NewStringToken(Reserved, syntax))
	}
	return tok
}

// reserved classifies a reserved symbol produced by the tokenizer.
func (it *TokenIterator) reserved(text string) Token {
	if it.policy.IsCustomKeyword(text) {
		return NewStringToken(Custom, text)
	}
	if msg, ok := foreignSymbols[text]; ok {
		return NewErrorToken(errImproperSymbol(text, msg))
	}
	if !IsValidIdentifier(text) {
		return NewErrorToken(errImproperSymbol(text, fmt.Sprintf("'%s' is a reserved symbol", text)))
	}
	if it.policy.IsDisabledSymbol(text) {
		return NewErrorToken(errImproperSymbol(text, fmt.Sprintf("reserved symbol '%s' is disabled", text)))
	}
	return NewStringToken(Reserved, text)
}

func (it *TokenIterator) retag(from, to Token) Token {
	if from.Kind != to.Kind {
		it.logger.Debug("re-tagged token", "from", from.Kind.String(), "to", to.Kind.String(), "syntax", from.Syntax())
	}
	return to
}
