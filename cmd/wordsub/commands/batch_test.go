package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunBatch_Stdout(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "rules.txt", "cat -> dog\ndog -> animal\n")
	writeFile(t, dir, "a.txt", "one cat\n")
	writeFile(t, dir, "b.txt", "two dogs\n")

	var out bytes.Buffer
	err := RunBatch(context.Background(), BatchOptions{
		RulesPath: rules,
		Backend:   "hash",
		Glob:      filepath.Join(dir, "*.txt"),
		Jobs:      2,
	}, &out)
	require.NoError(t, err)

	// Output is concatenated in match order (a.txt, b.txt, rules.txt).
	// "dogs" is one word with no rule; only exact tokens are replaced.
	assert.Contains(t, out.String(), "one animal\n")
	assert.Contains(t, out.String(), "two dogs\n")
}

func TestRunBatch_InPlace(t *testing.T) {
	dir := t.TempDir()
	rulesDir := t.TempDir()
	rules := writeFile(t, rulesDir, "rules.txt", "cat -> dog\n")
	target := writeFile(t, dir, "doc.txt", "a cat sat\n")
	untouched := writeFile(t, dir, "plain.txt", "nothing here\n")

	var out bytes.Buffer
	err := RunBatch(context.Background(), BatchOptions{
		RulesPath: rules,
		Backend:   "rbt",
		Glob:      filepath.Join(dir, "*.txt"),
		Jobs:      1,
		InPlace:   true,
	}, &out)
	require.NoError(t, err)

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "a dog sat\n", string(content))

	content, err = os.ReadFile(untouched)
	require.NoError(t, err)
	assert.Equal(t, "nothing here\n", string(content))

	// In-place mode writes nothing to stdout.
	assert.Empty(t, out.String())
}

func TestRunBatch_Errors(t *testing.T) {
	dir := t.TempDir()
	rules := writeFile(t, dir, "rules.rules", "cat -> dog\n")

	tests := []struct {
		name      string
		opts      BatchOptions
		wantError string
	}{
		{
			name:      "missing_rules_flag",
			opts:      BatchOptions{Glob: "*.txt", Backend: "hash"},
			wantError: "rules file is required",
		},
		{
			name:      "missing_glob",
			opts:      BatchOptions{RulesPath: rules, Backend: "hash"},
			wantError: "glob pattern is required",
		},
		{
			name: "no_matches",
			opts: BatchOptions{
				RulesPath: rules,
				Backend:   "hash",
				Glob:      filepath.Join(dir, "*.nope"),
			},
			wantError: "no files match",
		},
		{
			name: "cycle_in_rules",
			opts: BatchOptions{
				RulesPath: writeFile(t, dir, "cyclic.rules", "a -> b\nb -> a\n"),
				Backend:   "hash",
				Glob:      filepath.Join(dir, "*.rules"),
			},
			wantError: "Cycle detected when trying to add replacement rule: b -> a",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := RunBatch(context.Background(), tt.opts, &out)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}
