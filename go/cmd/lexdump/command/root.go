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
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/multigres/scriptlex/go/hostpolicy"
	"github.com/multigres/scriptlex/go/tools/logutil"
)

// Configuration keys, also used as flag names.
const (
	keyPolicy             = "policy"
	keyMaxStringSize      = "max-string-size"
	keyIncludeComments    = "include-comments"
	keyDisableDocComments = "disable-doc-comments"
	keyUnicodeIdentifiers = "unicode-identifiers"
	keyCustomKeyword      = "custom-keyword"
	keyDisableSymbol      = "disable-symbol"
	keyFormat             = "format"
	keyOutput             = "output"
	keyConcat             = "concat"
	keyEndWithNone        = "end-with-none"
	keyFailOnError        = "fail-on-error"
)

// EnvPrefix prefixes the environment variables that override flags, e.g.
// LEXDUMP_FORMAT=json.
const EnvPrefix = "LEXDUMP"

// LexDumpCommand holds the configuration shared by lexdump commands.
type LexDumpCommand struct {
	v    *viper.Viper
	fs   afero.Fs
	logs *logutil.Logger
}

// GetRootCommand creates the lexdump root command with all subcommands,
// reading files from the host filesystem.
func GetRootCommand() (*cobra.Command, *LexDumpCommand) {
	return newRootCommand(afero.NewOsFs())
}

func newRootCommand(fs afero.Fs) (*cobra.Command, *LexDumpCommand) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	lc := &LexDumpCommand{
		v:    v,
		fs:   fs,
		logs: logutil.NewLogger(v, fs),
	}

	root := &cobra.Command{
		Use:   "lexdump [files...]",
		Short: "Print the token stream of script files",
		Long: `lexdump runs the script lexer over one or more files and prints every token
with its line and column. With no subcommand it behaves like 'lexdump dump'.

A host policy (custom keywords, disabled symbols, limits) can be read from a
YAML, JSON or TOML file with --policy and adjusted with flags. Every flag can
also be set through an environment variable prefixed with LEXDUMP_, for
example LEXDUMP_FORMAT=json.

Get started with:
  lexdump script.rhai                   # Dump tokens as text
  lexdump policy init policy.yaml       # Write a default policy file
  lexdump watch --policy policy.yaml a.rhai`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Silence usage for application errors, but allow it for flag errors
			cmd.SilenceUsage = true
			lc.logs.SetOutputs(cmd.OutOrStdout(), cmd.ErrOrStderr())
			lc.logs.Setup()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return lc.logs.Close()
		},
	}

	lc.RegisterFlags(root.PersistentFlags())

	dump := AddDumpCommand(root, lc)
	root.RunE = dump.runDump
	AddWatchCommand(root, lc)
	AddPolicyCommand(root, lc)

	return root, lc
}

// RegisterFlags registers the policy, output and logging flags and binds
// them to the command's viper instance.
func (lc *LexDumpCommand) RegisterFlags(fs *pflag.FlagSet) {
	fs.String(keyPolicy, "", "Host policy file (yaml, json or toml)")
	fs.Int(keyMaxStringSize, 0, "Maximum string literal size in bytes, 0 for unlimited (default 1MiB)")
	fs.Bool(keyIncludeComments, false, "Emit plain comments as tokens")
	fs.Bool(keyDisableDocComments, false, "Treat doc-comments as plain comments")
	fs.Bool(keyUnicodeIdentifiers, false, "Accept Unicode letters and digits in identifiers")
	fs.StringSlice(keyCustomKeyword, nil, "Register a custom keyword (repeatable)")
	fs.StringSlice(keyDisableSymbol, nil, "Disable a standard keyword or symbol (repeatable)")
	fs.StringP(keyFormat, "f", formatText, "Output format (text, json, yaml)")
	fs.StringP(keyOutput, "o", "", "Write output to a file instead of stdout")
	fs.Bool(keyConcat, false, "Lex all files as one continuous stream")
	fs.Bool(keyEndWithNone, false, "End the stream without an EOF token")
	fs.Bool(keyFailOnError, false, "Exit with an error if any lexical error is found")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = lc.v.BindPFlag(f.Name, f)
	})
	lc.logs.RegisterFlags(fs)
}

// loadPolicy builds the effective host policy: the --policy file (or the
// defaults) with flag and environment overrides applied on top.
func (lc *LexDumpCommand) loadPolicy() (*hostpolicy.Config, error) {
	cfg := hostpolicy.Default()
	if path := lc.v.GetString(keyPolicy); path != "" {
		loaded, err := hostpolicy.Load(lc.fs, path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if lc.v.IsSet(keyMaxStringSize) {
		cfg.MaxStringSize = lc.v.GetInt(keyMaxStringSize)
	}
	for key, field := range map[string]*bool{
		keyIncludeComments:    &cfg.IncludeComments,
		keyDisableDocComments: &cfg.DisableDocComments,
		keyUnicodeIdentifiers: &cfg.UnicodeIdentifiers,
	} {
		if lc.v.IsSet(key) {
			*field = lc.v.GetBool(key)
		}
	}
	cfg.CustomKeywords = append(cfg.CustomKeywords, lc.v.GetStringSlice(keyCustomKeyword)...)
	cfg.DisabledSymbols = append(cfg.DisabledSymbols, lc.v.GetStringSlice(keyDisableSymbol)...)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy: %w", err)
	}
	return cfg, nil
}
