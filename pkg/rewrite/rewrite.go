package rewrite

import (
	"bufio"
	"context"
	"io"
	"strings"
	"unicode"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1024 * 1024

// Resolver maps a word to its fully-resolved replacement. A word with no
// replacement resolves to itself.
type Resolver interface {
	Resolve(token string) string
}

// Result contains the results of one rewrite pass.
type Result struct {
	// Lines is the number of input lines processed.
	Lines int

	// Words is the number of alphabetic runs encountered.
	Words int

	// Replaced is the number of words whose resolution differed from the
	// word itself.
	Replaced int
}

// WasModified reports whether any word changed.
func (r *Result) WasModified() bool {
	return r.Replaced > 0
}

// Rewriter substitutes every word in a text stream with its resolved
// replacement. A word is a maximal run of letters; every other character is a
// boundary and passes through verbatim.
type Rewriter struct {
	resolver Resolver
}

// New creates a Rewriter using the given resolver.
func New(resolver Resolver) *Rewriter {
	return &Rewriter{resolver: resolver}
}

// RewriteLine returns line with every word replaced by its resolution and all
// other characters unchanged. It never adds or removes line terminators.
func (r *Rewriter) RewriteLine(line string) string {
	out, _ := r.rewriteLine(line, nil)
	return out
}

func (r *Rewriter) rewriteLine(line string, result *Result) (string, bool) {
	var out strings.Builder
	out.Grow(len(line))
	var word strings.Builder
	modified := false

	flush := func() {
		if word.Len() == 0 {
			return
		}
		token := word.String()
		replacement := r.resolver.Resolve(token)
		out.WriteString(replacement)
		if result != nil {
			result.Words++
			if replacement != token {
				result.Replaced++
			}
		}
		if replacement != token {
			modified = true
		}
		word.Reset()
	}

	for _, c := range line {
		if unicode.IsLetter(c) {
			word.WriteRune(c)
			continue
		}
		flush()
		out.WriteRune(c)
	}
	// A word can end the line with no boundary after it.
	flush()

	return out.String(), modified
}

// Rewrite processes src line by line, writing each rewritten line to dst
// followed by a single newline. Line terminators in src are normalized: every
// output line ends in exactly one '\n' regardless of how the input line was
// terminated.
func (r *Rewriter) Rewrite(ctx context.Context, src io.Reader, dst io.Writer) (*Result, error) {
	log := zerolog.Ctx(ctx)
	result := &Result{}

	w := bufio.NewWriter(dst)
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		line, _ := r.rewriteLine(scanner.Text(), result)
		if _, err := w.WriteString(line); err != nil {
			return result, errors.Errorf("writing output: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return result, errors.Errorf("writing output: %w", err)
		}
		result.Lines++
	}
	if err := scanner.Err(); err != nil {
		return result, errors.Errorf("reading input: %w", err)
	}
	if err := w.Flush(); err != nil {
		return result, errors.Errorf("writing output: %w", err)
	}

	log.Debug().
		Int("lines", result.Lines).
		Int("words", result.Words).
		Int("replaced", result.Replaced).
		Msg("rewrite complete")
	return result, nil
}
