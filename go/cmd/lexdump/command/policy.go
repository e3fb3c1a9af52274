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
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/multigres/scriptlex/go/hostpolicy"
	"github.com/multigres/scriptlex/go/tools/fileutil"
)

// defaultPolicyFile is written by 'policy init' when no path is given.
const defaultPolicyFile = "lexdump-policy.yaml"

// LexDumpPolicyCmd holds the policy command configuration
type LexDumpPolicyCmd struct {
	lc    *LexDumpCommand
	force bool
}

// AddPolicyCommand adds the policy subcommands to the root command
func AddPolicyCommand(root *cobra.Command, lc *LexDumpCommand) {
	policyCmd := &LexDumpPolicyCmd{lc: lc}

	cmd := &cobra.Command{
		Use:   "policy",
		Short: "Create and check host policy files",
	}
	cmd.AddCommand(policyCmd.createInitCommand())
	cmd.AddCommand(policyCmd.createCheckCommand())
	root.AddCommand(cmd)
}

func (p *LexDumpPolicyCmd) createInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a policy file",
		Long: `Write a YAML policy file holding the effective policy: the defaults, or the
--policy file, with any policy flags applied on top.

Examples:
  # Write the default policy to ./lexdump-policy.yaml
  lexdump policy init

  # Write a policy with a custom keyword replacing 'while'
  lexdump policy init --custom-keyword while --disable-symbol while policy.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: p.runInit,
	}
	cmd.Flags().BoolVar(&p.force, "force", false, "Overwrite an existing policy file")
	return cmd
}

func (p *LexDumpPolicyCmd) createCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check path",
		Short: "Validate a policy file and print its settings",
		Args:  cobra.ExactArgs(1),
		RunE:  p.runCheck,
	}
}

func (p *LexDumpPolicyCmd) runInit(cmd *cobra.Command, args []string) error {
	path := defaultPolicyFile
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := p.lc.loadPolicy()
	if err != nil {
		return err
	}
	if err := cfg.WriteFile(p.lc.fs, path, p.force); err != nil {
		if errors.Is(err, fileutil.ErrFileExists) {
			return fmt.Errorf("policy file %s already exists (use --force to overwrite)", path)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Policy written to %s\n", path)
	return nil
}

func (p *LexDumpPolicyCmd) runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := hostpolicy.Load(p.lc.fs, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Policy %s is valid\n", args[0])
	fmt.Fprintf(out, "  custom keywords:      %s\n", listOrNone(cfg.SymbolSet().CustomKeywords()))
	fmt.Fprintf(out, "  disabled symbols:     %s\n", listOrNone(cfg.SymbolSet().DisabledSymbols()))
	if cfg.MaxStringSize == 0 {
		fmt.Fprintf(out, "  max string size:      unlimited\n")
	} else {
		fmt.Fprintf(out, "  max string size:      %d\n", cfg.MaxStringSize)
	}
	fmt.Fprintf(out, "  include comments:     %t\n", cfg.IncludeComments)
	fmt.Fprintf(out, "  disable doc-comments: %t\n", cfg.DisableDocComments)
	fmt.Fprintf(out, "  unicode identifiers:  %t\n", cfg.UnicodeIdentifiers)
	return nil
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "(none)"
	}
	return strings.Join(items, ", ")
}
