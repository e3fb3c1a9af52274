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

// Package hostpolicy loads the host configuration a script engine applies to
// the lexer: custom keywords, disabled symbols and tokenizer limits. Policy
// files may be YAML, JSON or TOML; the format is taken from the extension.
package hostpolicy

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/multigres/scriptlex/go/lexer"
	"github.com/multigres/scriptlex/go/tools/fileutil"
)

// DefaultMaxStringSize is the string literal ceiling written by Default.
const DefaultMaxStringSize = 1 << 20

// Config is a host policy.
type Config struct {
	CustomKeywords     []string `mapstructure:"custom-keywords" yaml:"custom-keywords"`
	DisabledSymbols    []string `mapstructure:"disabled-symbols" yaml:"disabled-symbols"`
	MaxStringSize      int      `mapstructure:"max-string-size" yaml:"max-string-size"`
	IncludeComments    bool     `mapstructure:"include-comments" yaml:"include-comments"`
	DisableDocComments bool     `mapstructure:"disable-doc-comments" yaml:"disable-doc-comments"`
	UnicodeIdentifiers bool     `mapstructure:"unicode-identifiers" yaml:"unicode-identifiers"`
}

// Default returns the policy used when no file is given.
func Default() *Config {
	return &Config{
		CustomKeywords:  []string{},
		DisabledSymbols: []string{},
		MaxStringSize:   DefaultMaxStringSize,
	}
}

// Load reads and validates the policy file at path on fs.
func Load(fs afero.Fs, path string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read policy file %s: %w", path, err)
	}

	cfg, err := Decode(v.AllSettings())
	if err != nil {
		return nil, fmt.Errorf("invalid policy file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid policy file %s: %w", path, err)
	}
	return cfg, nil
}

// Decode converts loosely typed settings into a Config on top of the
// defaults. Unknown keys are rejected.
func Decode(settings map[string]any) (*Config, error) {
	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(settings); err != nil {
		return nil, fmt.Errorf("failed to decode policy: %w", err)
	}
	return cfg, nil
}

// Validate reports every problem with the policy.
func (c *Config) Validate() error {
	var errs []error
	if c.MaxStringSize < 0 {
		errs = append(errs, fmt.Errorf("max-string-size must not be negative, got %d", c.MaxStringSize))
	}
	for _, name := range c.CustomKeywords {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, errors.New("custom-keywords contains an empty entry"))
		}
	}
	for _, name := range c.DisabledSymbols {
		if strings.TrimSpace(name) == "" {
			errs = append(errs, errors.New("disabled-symbols contains an empty entry"))
		}
	}
	if err := c.SymbolSet().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SymbolSet returns the lexer policy for the configured keywords and
// symbols.
func (c *Config) SymbolSet() *lexer.SymbolSet {
	return lexer.NewSymbolSet(c.CustomKeywords, c.DisabledSymbols)
}

// LexerOptions returns tokenizer options for this policy. The caller may
// still set EndWithNone, Map and Origin.
func (c *Config) LexerOptions(logger *slog.Logger) lexer.Options {
	opts := lexer.DefaultOptions()
	opts.MaxStringSize = c.MaxStringSize
	opts.IncludeComments = c.IncludeComments
	opts.DisableDocComments = c.DisableDocComments
	opts.UnicodeIdentifiers = c.UnicodeIdentifiers
	opts.Policy = c.SymbolSet()
	opts.Logger = logger
	return opts
}

// Marshal renders the policy as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal policy: %w", err)
	}
	return data, nil
}

// WriteFile writes the policy as YAML to path. Unless overwrite is set an
// existing file is left alone and fileutil.ErrFileExists is returned.
func (c *Config) WriteFile(fs afero.Fs, path string, overwrite bool) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if overwrite {
		return fileutil.AtomicWriteFile(fs, path, data, 0o644)
	}
	return fileutil.WriteNewFile(fs, path, data, 0o644)
}
