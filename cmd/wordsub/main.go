// Copyright 2025 walteh LLC
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

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/wordsub/cmd/wordsub/commands"
	"github.com/walteh/wordsub/pkg/config"
	"gitlab.com/tozd/go/errors"
)

func main() {
	rootCmd := newRootCmd()

	// All errors surface here: print the diagnostic and terminate.
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

// newRootCmd builds the root command and its subcommands.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wordsub <input text file> <word replacements file> <bst|rbt|hash>",
		Short: "Rule-driven global word substitution",
		Long: `wordsub rewrites every word in a text file to its fully-resolved
replacement. Rules form a directed replacement graph: chains like
cat -> dog -> animal resolve transitively, and rules that would close a
cycle are rejected at ingestion.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ro, err := newRootOpts(ctx)
			if err != nil {
				return err
			}

			// A config file can stand in for the positional arguments.
			if len(args) == 0 && ro.Config != nil {
				return runConfig(ctx, ro.Config, cmd.OutOrStdout())
			}
			if len(args) != 3 {
				return errors.WithStack(&UsageError{})
			}
			return runReplace(ctx, args[0], args[1], args[2], cmd.OutOrStdout())
		},
	}

	addRootFlags(rootCmd)
	rootCmd.AddCommand(
		commands.NewBatchCmd(),
		commands.NewCheckCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// runConfig dispatches a config-driven run to single-file or batch mode.
func runConfig(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	if cfg.Batch != nil {
		return commands.RunBatch(ctx, commands.BatchOptions{
			RulesPath: cfg.Rules,
			Backend:   cfg.Backend,
			Glob:      cfg.Batch.Glob,
			Jobs:      cfg.Batch.Jobs,
			InPlace:   cfg.Batch.InPlace,
		}, stdout)
	}
	return runReplace(ctx, cfg.Input, cfg.Rules, cfg.Backend, stdout)
}
