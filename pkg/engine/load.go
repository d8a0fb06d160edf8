package engine

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// ruleDelimiter separates key from value in a rule line. The spaces are part
// of the delimiter: "a->b" is a malformed line, not a rule.
const ruleDelimiter = " -> "

// LoadResult summarizes one rule-file ingestion.
type LoadResult struct {
	// RulesAdded is the number of edges inserted into the store.
	RulesAdded int

	// LinesSkipped is the number of lines that did not split into exactly
	// two fields on the delimiter. Skipping is not an error.
	LinesSkipped int
}

// LoadRules reads rule lines from r until EOF and inserts each well-formed
// rule into the engine. Malformed lines are skipped silently (debug-logged).
// A cycle aborts ingestion immediately: the returned error wraps *CycleError
// and the store is left with every rule accepted before the offending one.
func (e *Engine) LoadRules(ctx context.Context, r io.Reader) (*LoadResult, error) {
	log := zerolog.Ctx(ctx)
	result := &LoadResult{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		parts := strings.Split(line, ruleDelimiter)
		// Trailing empty fields do not count: "a -> " is malformed, not a
		// rule mapping to the empty token.
		for len(parts) > 0 && parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}
		if len(parts) != 2 {
			result.LinesSkipped++
			log.Debug().Str("line", line).Msg("skipping malformed rule line")
			continue
		}

		if err := e.AddRule(parts[0], parts[1]); err != nil {
			return result, err
		}
		result.RulesAdded++
	}
	if err := scanner.Err(); err != nil {
		return result, errors.Errorf("reading rules: %w", err)
	}

	log.Debug().
		Int("rules", result.RulesAdded).
		Int("skipped", result.LinesSkipped).
		Msg("rule ingestion complete")
	return result, nil
}
