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
 * Script Lexer - Comments
 *
 * Line comments run to the end of the line. Block comments nest; the depth
 * is kept in TokenizeState so that an unterminated comment can be resumed by
 * the next call, e.g. on a REPL continuation line. Comment text is only
 * collected when it will be emitted as a token.
 */

package lexer

import "strings"

// scanBlockComment consumes block comment text until the nesting level drops
// to zero or the input runs out, and returns the remaining level. buf, when
// not nil, receives every consumed character.
func scanBlockComment(stream InputStream, level int, pos *Position, buf *strings.Builder) int {
	for level > 0 {
		ch, ok := stream.Next()
		if !ok {
			break
		}
		pos.Advance()
		if buf != nil {
			buf.WriteRune(ch)
		}

		switch ch {
		case '/':
			if next, ok := stream.Peek(); ok && next == '*' {
				eatNext(stream, pos)
				if buf != nil {
					buf.WriteRune(next)
				}
				level++
			}
		case '*':
			if next, ok := stream.Peek(); ok && next == '/' {
				eatNext(stream, pos)
				if buf != nil {
					buf.WriteRune(next)
				}
				level--
			}
		case '\n':
			pos.NewLine()
		}
	}
	return level
}

// scanLineComment consumes the rest of a line comment, including the
// terminating newline.
func scanLineComment(stream InputStream, pos *Position, buf *strings.Builder) {
	for {
		ch, ok := stream.Next()
		if !ok {
			return
		}
		if ch == '\n' {
			pos.Advance()
			pos.NewLine()
			return
		}
		if buf != nil {
			buf.WriteRune(ch)
		}
		pos.Advance()
	}
}

// lineComment handles "//" with the first slash consumed and the second one
// still pending. It returns the comment token if one is to be emitted.
func lineComment(stream InputStream, state *TokenizeState, pos *Position) (Token, bool) {
	eatNext(stream, pos)

	var buf *strings.Builder
	next, _ := stream.Peek()
	switch {
	case next == '/' && !state.DisableDocComments:
		eatNext(stream, pos)
		// Long runs of slashes are not doc-comments.
		if after, _ := stream.Peek(); after != '/' || state.IncludeComments {
			buf = &strings.Builder{}
			buf.WriteString("///")
		}
	case state.IncludeComments:
		buf = &strings.Builder{}
		buf.WriteString("//")
	}

	scanLineComment(stream, pos, buf)
	if buf == nil {
		return Token{}, false
	}
	return NewStringToken(Comment, buf.String()), true
}

// blockComment handles "/*" with the slash consumed and the star still
// pending. It returns the comment token if one is to be emitted.
func blockComment(stream InputStream, state *TokenizeState, pos *Position) (Token, bool) {
	state.CommentLevel = 1
	eatNext(stream, pos)

	var buf *strings.Builder
	next, _ := stream.Peek()
	switch {
	case next == '*' && !state.DisableDocComments:
		eatNext(stream, pos)
		after, _ := stream.Peek()
		if after == '/' {
			// "/**/" is an empty plain comment.
			eatNext(stream, pos)
			state.CommentLevel = 0
			if state.IncludeComments {
				return NewStringToken(Comment, "/**/"), true
			}
			return Token{}, false
		}
		// Long runs of stars are not doc-comments.
		if after != '*' || state.IncludeComments {
			buf = &strings.Builder{}
			buf.WriteString("/**")
		}
	case state.IncludeComments:
		buf = &strings.Builder{}
		buf.WriteString("/*")
	}

	state.CommentLevel = scanBlockComment(stream, state.CommentLevel, pos, buf)
	if buf == nil {
		return Token{}, false
	}
	return NewStringToken(Comment, buf.String()), true
}

// resumeBlockComment finishes a block comment left open by a previous call.
// Nothing is emitted when the input holds no more comment text.
func resumeBlockComment(stream InputStream, state *TokenizeState, pos *Position) (Token, bool) {
	var buf *strings.Builder
	if state.IncludeComments {
		buf = &strings.Builder{}
	}
	state.CommentLevel = scanBlockComment(stream, state.CommentLevel, pos, buf)
	if buf == nil || buf.Len() == 0 {
		return Token{}, false
	}
	return NewStringToken(Comment, buf.String()), true
}
