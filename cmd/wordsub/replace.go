package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/wordsub/pkg/engine"
	"github.com/walteh/wordsub/pkg/rewrite"
	"github.com/walteh/wordsub/pkg/store"
	"gitlab.com/tozd/go/errors"
)

// runReplace is the single-file flow: validate the three arguments, ingest
// the rule file, rewrite the input file to stdout. Every failure comes back
// as one of the boundary error types (or *engine.CycleError), so main can
// print it verbatim and exit.
//
// Validation order matches the diagnostics contract: input file first, then
// rule file, then backend selector.
func runReplace(ctx context.Context, inputPath, rulesPath, backend string, stdout io.Writer) error {
	log := zerolog.Ctx(ctx)

	input, err := os.Open(inputPath)
	if err != nil {
		return errors.WithStack(&FileAccessError{Name: inputPath})
	}
	defer input.Close()

	rulesFile, err := os.Open(rulesPath)
	if err != nil {
		return errors.WithStack(&FileAccessError{Name: rulesPath})
	}
	defer rulesFile.Close()

	st, err := store.New(backend)
	if err != nil {
		return errors.WithStack(&InvalidBackendError{Name: backend})
	}

	eng := engine.New(st)
	loaded, err := eng.LoadRules(ctx, rulesFile)
	if err != nil {
		var cycleErr *engine.CycleError
		if errors.As(err, &cycleErr) {
			return err
		}
		return errors.WithStack(&IOError{Name: rulesPath})
	}
	log.Debug().Int("rules", loaded.RulesAdded).Str("backend", backend).Msg("rules ingested")

	if _, err := rewrite.New(eng).Rewrite(ctx, input, stdout); err != nil {
		return errors.WithStack(&IOError{Name: inputPath})
	}

	// The replaced text is followed by one extra newline.
	if _, err := fmt.Fprintln(stdout); err != nil {
		return errors.WithStack(&IOError{Name: inputPath})
	}
	return nil
}
