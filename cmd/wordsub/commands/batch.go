package commands

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/wordsub/pkg/engine"
	"github.com/walteh/wordsub/pkg/rewrite"
	"github.com/walteh/wordsub/pkg/status"
	"github.com/walteh/wordsub/pkg/store"
	"gitlab.com/tozd/go/errors"
)

// BatchOptions configures one batch run.
type BatchOptions struct {
	RulesPath string
	Backend   string
	Glob      string
	Jobs      int
	InPlace   bool
}

// NewBatchCmd creates a new batch command
func NewBatchCmd() *cobra.Command {
	var (
		rulesPath string
		backend   string
		glob      string
		jobs      int
		inPlace   bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Apply one rule set to every file matching a glob",
		Long: `Batch loads the rule file once and rewrites every file matched by the
glob pattern. Files are read concurrently; resolution itself is serialized
because path compression mutates the rule store. Without -w the rewritten
files are concatenated to stdout in match order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "batch").Logger().WithContext(ctx)

			o := BatchOptions{
				RulesPath: rulesPath,
				Backend:   backend,
				Glob:      glob,
				Jobs:      jobs,
				InPlace:   inPlace,
			}

			// Flags override config; config fills blanks.
			configPath, _ := cmd.Flags().GetString("config")
			if configPath != "" {
				ro, err := loadRootOpts(ctx, configPath)
				if err != nil {
					return err
				}
				if cfg := ro.Config; cfg != nil {
					if o.RulesPath == "" {
						o.RulesPath = cfg.Rules
					}
					if !cmd.Flags().Changed("backend") && cfg.Backend != "" {
						o.Backend = cfg.Backend
					}
					if cfg.Batch != nil {
						if o.Glob == "" {
							o.Glob = cfg.Batch.Glob
						}
						if !cmd.Flags().Changed("jobs") && cfg.Batch.Jobs > 0 {
							o.Jobs = cfg.Batch.Jobs
						}
						if !cmd.Flags().Changed("write") {
							o.InPlace = cfg.Batch.InPlace
						}
					}
				}
			}

			return RunBatch(ctx, o, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "replacement rules file")
	cmd.Flags().StringVarP(&backend, "backend", "b", store.BackendHash, "rule store backend (bst|rbt|hash)")
	cmd.Flags().StringVarP(&glob, "glob", "g", "", "glob pattern selecting input files (doublestar syntax)")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 4, "concurrent file readers")
	cmd.Flags().BoolVarP(&inPlace, "write", "w", false, "rewrite matched files in place")

	return cmd
}

// RunBatch loads the rule set once and processes every matched file.
func RunBatch(ctx context.Context, o BatchOptions, stdout io.Writer) error {
	log := zerolog.Ctx(ctx)

	if o.RulesPath == "" {
		return errors.New("a rules file is required (--rules)")
	}
	if o.Glob == "" {
		return errors.New("a glob pattern is required (--glob)")
	}
	if o.Jobs < 1 {
		o.Jobs = 1
	}

	st, err := store.New(o.Backend)
	if err != nil {
		return err
	}
	eng := engine.New(st)

	rulesFile, err := os.Open(o.RulesPath)
	if err != nil {
		return errors.Errorf("opening rules file: %w", err)
	}
	defer rulesFile.Close()

	loaded, err := eng.LoadRules(ctx, rulesFile)
	if err != nil {
		return err
	}
	log.Debug().Int("rules", loaded.RulesAdded).Msg("rules ingested")

	matches, err := doublestar.FilepathGlob(o.Glob)
	if err != nil {
		return errors.Errorf("matching glob %q: %w", o.Glob, err)
	}
	if len(matches) == 0 {
		return errors.Errorf("no files match %q", o.Glob)
	}

	reporter := status.NewReporter(ctx)
	rewriter := rewrite.New(eng)

	// Resolution mutates the store (path compression), so all rewriting
	// happens behind one mutex; only file reads overlap.
	var engineMu sync.Mutex

	outputs := make([][]byte, len(matches))
	grp, grpCtx := newErrgroup(ctx, o.Jobs)
	for i, path := range matches {
		i, path := i, path
		grp.Go(func() error {
			if err := grpCtx.Err(); err != nil {
				return err
			}

			content, err := os.ReadFile(path)
			if err != nil {
				reporter.Report(status.FileReport{Path: path, Status: status.StatusFailed, Error: err})
				return nil
			}

			var out bytes.Buffer
			engineMu.Lock()
			result, err := rewriter.Rewrite(grpCtx, bytes.NewReader(content), &out)
			engineMu.Unlock()
			if err != nil {
				reporter.Report(status.FileReport{Path: path, Status: status.StatusFailed, Error: err})
				return nil
			}

			if o.InPlace {
				if result.WasModified() {
					if err := status.WriteFileAtomic(grpCtx, path, out.Bytes()); err != nil {
						reporter.Report(status.FileReport{Path: path, Status: status.StatusFailed, Error: err})
						return nil
					}
				}
			} else {
				outputs[i] = out.Bytes()
			}

			outcome := status.StatusUnchanged
			if result.WasModified() {
				outcome = status.StatusRewritten
			}
			reporter.Report(status.FileReport{
				Path:     path,
				Status:   outcome,
				Words:    result.Words,
				Replaced: result.Replaced,
			})
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	if !o.InPlace {
		for _, out := range outputs {
			if _, err := stdout.Write(out); err != nil {
				return errors.Errorf("writing output: %w", err)
			}
		}
	}

	reporter.Summary()
	if reporter.Failed() {
		return errors.New("batch finished with failures")
	}
	return nil
}
