package opts

import (
	"context"

	"github.com/walteh/wordsub/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	// Config is nil unless a config file path was given.
	Config *config.Config
}

// New creates a RootOpts, loading the config file when a path is given.
func New(ctx context.Context, configPath string) (*RootOpts, error) {
	ro := &RootOpts{}

	if configPath != "" {
		cfg, err := config.Load(ctx, configPath)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		ro.Config = cfg
	}

	return ro, nil
}
