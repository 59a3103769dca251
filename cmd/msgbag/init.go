package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const starterRuleset = `# msgbag ruleset
# Each field maps to pipe-separated rules; use the array form when a rule
# parameter needs a literal '|' (regex alternation).

[rules]
name = "required|min:2|max:100"
email = "required|email"
age = "integer|gte:18"
"items.*.name" = "required|min:2"

[messages]
# "email.required" = "we need your e-mail"

[attributes]
# email = "e-mail address"
`

var initForce bool

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing msgbag.toml")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter msgbag.toml ruleset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		const path = "msgbag.toml"
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to stat %q: %w", path, err)
		}
		if err := os.WriteFile(path, []byte(starterRuleset), 0o644); err != nil {
			return fmt.Errorf("failed to write %q: %w", path, err)
		}
		if !quiet(cmd) {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		}
		return nil
	},
}
