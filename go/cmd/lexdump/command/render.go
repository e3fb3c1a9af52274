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

package command

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/multigres/scriptlex/go/lexer"
)

// Output formats
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// TokenRecord is one token of a dump.
type TokenRecord struct {
	Line      int    `json:"line" yaml:"line"`
	Column    int    `json:"column" yaml:"column"`
	Kind      string `json:"kind" yaml:"kind"`
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	ErrorType string `json:"error_type,omitempty" yaml:"error-type,omitempty"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`

	token lexer.Token
}

// FileDump holds the tokens of one input, or of all inputs with --concat.
type FileDump struct {
	File                string        `json:"file" yaml:"file"`
	Tokens              []TokenRecord `json:"tokens" yaml:"tokens"`
	Errors              int           `json:"errors" yaml:"errors"`
	UnterminatedComment bool          `json:"unterminated_comment,omitempty" yaml:"unterminated-comment,omitempty"`
}

func newTokenRecord(tok lexer.Token, pos lexer.Position) TokenRecord {
	line, _ := pos.Line()
	column, _ := pos.Column()
	rec := TokenRecord{
		Line:   line,
		Column: column,
		Kind:   tok.Kind.String(),
		token:  tok,
	}
	switch tok.Kind {
	case lexer.Error:
		if tok.Err != nil {
			rec.ErrorType = tok.Err.Type.String()
			rec.Error = tok.Err.Error()
			rec.Text = tok.Err.Text
		}
	case lexer.StringConstant:
		rec.Text = tok.Text
	case lexer.EOF:
	default:
		rec.Text = tok.Syntax()
	}
	return rec
}

// lexInputs tokenizes inputs as one stream and records every token.
func lexInputs(name string, opts lexer.Options, inputs ...string) FileDump {
	it := lexer.NewTokenIterator(opts, inputs...)
	dump := FileDump{File: name, Tokens: []TokenRecord{}}
	for tok, pos := range it.All() {
		if tok.IsError() {
			dump.Errors++
		}
		dump.Tokens = append(dump.Tokens, newTokenRecord(tok, pos))
	}
	dump.UnterminatedComment = it.State().InComment()
	return dump
}

func render(format string, dumps []FileDump) ([]byte, error) {
	switch strings.ToLower(format) {
	case formatText:
		return renderText(dumps), nil
	case formatJSON:
		data, err := json.MarshalIndent(dumps, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal json: %w", err)
		}
		return append(data, '\n'), nil
	case formatYAML:
		data, err := yaml.Marshal(dumps)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown format %q (expected text, json or yaml)", format)
	}
}

func renderText(dumps []FileDump) []byte {
	var b strings.Builder
	for i, dump := range dumps {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "# %s\n", dump.File)
		for _, rec := range dump.Tokens {
			fmt.Fprintf(&b, "%d:%d\t%s\n", rec.Line, rec.Column, rec.token)
		}
		if dump.UnterminatedComment {
			b.WriteString("# unterminated block comment\n")
		}
		if dump.Errors > 0 {
			fmt.Fprintf(&b, "# %d lexical error(s)\n", dump.Errors)
		}
	}
	return []byte(b.String())
}
