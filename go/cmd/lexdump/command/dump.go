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
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/multigres/scriptlex/go/tools/fileutil"
)

// stdinName is the file argument that reads standard input.
const stdinName = "-"

// LexDumpDumpCmd holds the dump command configuration
type LexDumpDumpCmd struct {
	lc *LexDumpCommand
}

// AddDumpCommand adds the dump subcommand to the root command
func AddDumpCommand(root *cobra.Command, lc *LexDumpCommand) *LexDumpDumpCmd {
	dumpCmd := &LexDumpDumpCmd{lc: lc}
	root.AddCommand(dumpCmd.createCommand())
	return dumpCmd
}

func (d *LexDumpDumpCmd) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dump [files...]",
		Short: "Print the tokens of script files",
		Long: `Lex each file and print its tokens with their positions. With no files, or
with '-', the script is read from standard input.

Examples:
  # Dump a script as text
  lexdump dump script.rhai

  # Dump two files as one stream, as JSON, into a file
  lexdump dump --concat -f json -o tokens.json prelude.rhai main.rhai

  # Treat 'cube' as a custom keyword and disable 'while'
  lexdump dump --custom-keyword cube --disable-symbol while script.rhai`,
		Args: cobra.ArbitraryArgs,
		RunE: d.runDump,
	}
}

type namedInput struct {
	name string
	text string
}

func (d *LexDumpDumpCmd) runDump(cmd *cobra.Command, args []string) error {
	lc := d.lc
	inputs, err := lc.readInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	dumps, err := lc.lexAll(inputs)
	if err != nil {
		return err
	}

	return lc.emit(cmd.OutOrStdout(), dumps)
}

// readInputs reads every named file, or standard input when no file is
// given.
func (lc *LexDumpCommand) readInputs(stdin io.Reader, args []string) ([]namedInput, error) {
	if len(args) == 0 {
		args = []string{stdinName}
	}
	inputs := make([]namedInput, 0, len(args))
	for _, name := range args {
		var (
			data []byte
			err  error
		)
		if name == stdinName {
			data, err = io.ReadAll(stdin)
		} else {
			data, err = afero.ReadFile(lc.fs, name)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
		inputs = append(inputs, namedInput{name: name, text: string(data)})
	}
	return inputs, nil
}

// lexAll tokenizes the inputs under the effective policy, one dump per file
// or a single dump with --concat.
func (lc *LexDumpCommand) lexAll(inputs []namedInput) ([]FileDump, error) {
	cfg, err := lc.loadPolicy()
	if err != nil {
		return nil, err
	}
	logger := lc.logs.Get()
	opts := cfg.LexerOptions(logger)
	opts.EndWithNone = lc.v.GetBool(keyEndWithNone)

	if lc.v.GetBool(keyConcat) {
		names := make([]string, len(inputs))
		texts := make([]string, len(inputs))
		for i, in := range inputs {
			names[i] = in.name
			texts[i] = in.text
		}
		dump := lexInputs(strings.Join(names, " + "), opts, texts...)
		logger.Debug("lexed inputs", "files", names, "tokens", len(dump.Tokens), "errors", dump.Errors)
		return []FileDump{dump}, nil
	}

	dumps := make([]FileDump, 0, len(inputs))
	for _, in := range inputs {
		dump := lexInputs(in.name, opts, in.text)
		logger.Debug("lexed input", "file", in.name, "tokens", len(dump.Tokens), "errors", dump.Errors)
		dumps = append(dumps, dump)
	}
	return dumps, nil
}

// emit renders dumps in the configured format and writes them to --output
// or to w.
func (lc *LexDumpCommand) emit(w io.Writer, dumps []FileDump) error {
	data, err := render(lc.v.GetString(keyFormat), dumps)
	if err != nil {
		return err
	}

	if path := lc.v.GetString(keyOutput); path != "" {
		if err := fileutil.AtomicWriteFile(lc.fs, path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		lc.logs.Get().Info("dump written", "path", path)
	} else if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if lc.v.GetBool(keyFailOnError) {
		total := 0
		for _, dump := range dumps {
			total += dump.Errors
		}
		if total > 0 {
			return fmt.Errorf("found %d lexical error(s)", total)
		}
	}
	return nil
}
