package commands

import (
	"context"

	"github.com/walteh/wordsub/cmd/wordsub/opts"
	"golang.org/x/sync/errgroup"
)

// loadRootOpts resolves the shared options for a subcommand invocation.
func loadRootOpts(ctx context.Context, configPath string) (*opts.RootOpts, error) {
	return opts.New(ctx, configPath)
}

// newErrgroup creates a bounded errgroup.
func newErrgroup(ctx context.Context, limit int) (*errgroup.Group, context.Context) {
	grp, grpCtx := errgroup.WithContext(ctx)
	grp.SetLimit(limit)
	return grp, grpCtx
}
