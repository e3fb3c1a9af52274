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

// TokenizeState is the mutable scanning state of one tokenization session.
// It is owned by a single Tokenizer and updated on every token production.
type TokenizeState struct {
	// MaxStringSize is the ceiling, in bytes, for string and character
	// literals. Zero means unlimited.
	MaxStringSize int
	// NonUnary records that the previously emitted token makes a following
	// '+' or '-' a binary operator.
	NonUnary bool
	// CommentLevel is the current block comment nesting depth. A non-zero
	// value after a token means the input ended inside a block comment.
	CommentLevel int
	// EndWithNone ends the session by reporting no more tokens instead of
	// producing an EOF token.
	EndWithNone bool
	// IncludeComments retains plain comments as Comment tokens.
	IncludeComments bool
	// DisableDocComments stops doc-comments from being recognized.
	DisableDocComments bool
	// UnicodeIdentifiers accepts Unicode identifier characters in addition
	// to ASCII letters, digits and '_'.
	UnicodeIdentifiers bool
}

// InComment reports whether the session stopped inside a block comment.
func (s *TokenizeState) InComment() bool {
	return s.CommentLevel > 0
}
