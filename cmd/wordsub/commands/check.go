package commands

import (
	"os"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/wordsub/pkg/engine"
	"github.com/walteh/wordsub/pkg/store"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates a new check command
func NewCheckCmd() *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "check <word replacements file>",
		Short: "Validate a rule file without processing any text",
		Long: `Check ingests a rule file and reports how many rules were accepted and
how many lines were skipped as malformed. A rule that would create a cycle
fails the check.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "check").Logger().WithContext(ctx)
			rulesPath := args[0]

			st, err := store.New(backend)
			if err != nil {
				return err
			}
			eng := engine.New(st)

			rulesFile, err := os.Open(rulesPath)
			if err != nil {
				return errors.Errorf("opening rules file: %w", err)
			}
			defer rulesFile.Close()

			result, err := eng.LoadRules(ctx, rulesFile)
			if err != nil {
				pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).
					Printfln("%s failed after %d rules", rulesPath, result.RulesAdded)
				return err
			}

			pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).
				Printfln("%s: %d rules, %d malformed lines skipped",
					rulesPath, result.RulesAdded, result.LinesSkipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&backend, "backend", "b", store.BackendHash, "rule store backend (bst|rbt|hash)")

	return cmd
}
