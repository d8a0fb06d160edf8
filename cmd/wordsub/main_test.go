package main

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

func TestRunReplace(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		rules     string
		backend   string
		want      string
		wantError string
	}{
		{
			name:    "transitive_replacement",
			input:   "The cat sat.\n",
			rules:   "cat -> dog\ndog -> animal\n",
			backend: "hash",
			want:    "The animal sat.\n\n",
		},
		{
			name:      "cycle_terminates_run",
			input:     "anything\n",
			rules:     "a -> b\nb -> a\n",
			backend:   "bst",
			wantError: "Cycle detected when trying to add replacement rule: b -> a",
		},
		{
			name:    "malformed_rule_line_skipped",
			input:   "The cat sat.\n",
			rules:   "justoneword\ncat -> dog\n",
			backend: "rbt",
			want:    "The dog sat.\n\n",
		},
		{
			name:    "empty_rule_file_passes_through",
			input:   "Hello, World!\n",
			rules:   "",
			backend: "hash",
			want:    "Hello, World!\n\n",
		},
		{
			name:      "invalid_backend",
			input:     "x\n",
			rules:     "",
			backend:   "treap",
			wantError: "Error: Invalid data structure 'treap' received.",
		},
		{
			name:      "backend_selector_is_case_sensitive",
			input:     "x\n",
			rules:     "",
			backend:   "Hash",
			wantError: "Error: Invalid data structure 'Hash' received.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			inputPath := writeFile(t, dir, "input.txt", tt.input)
			rulesPath := writeFile(t, dir, "rules.txt", tt.rules)

			var out bytes.Buffer
			err := runReplace(context.Background(), inputPath, rulesPath, tt.backend, &out)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantError, err.Error())
				assert.Empty(t, out.String(), "no output on failure")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestRunReplace_MissingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := writeFile(t, dir, "exists.txt", "x\n")
	missing := filepath.Join(dir, "missing.txt")

	t.Run("missing_input_file", func(t *testing.T) {
		var out bytes.Buffer
		err := runReplace(context.Background(), missing, existing, "hash", &out)
		require.Error(t, err)
		assert.Equal(t, "Error: Cannot open file '"+missing+"' for input.", err.Error())
	})

	t.Run("missing_rules_file", func(t *testing.T) {
		var out bytes.Buffer
		err := runReplace(context.Background(), existing, missing, "hash", &out)
		require.Error(t, err)
		assert.Equal(t, "Error: Cannot open file '"+missing+"' for input.", err.Error())
	})

	t.Run("input_checked_before_rules", func(t *testing.T) {
		// Both files missing: the input file is the one reported.
		var out bytes.Buffer
		err := runReplace(context.Background(), missing, filepath.Join(dir, "also-missing.txt"), "hash", &out)
		require.Error(t, err)
		assert.Equal(t, "Error: Cannot open file '"+missing+"' for input.", err.Error())
	})
}

func TestRootCommand_WrongArgumentCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{
			name: "no_arguments",
			args: []string{},
		},
		{
			name: "one_argument",
			args: []string{"input.txt"},
		},
		{
			name: "two_arguments",
			args: []string{"input.txt", "rules.txt"},
		},
		{
			name: "four_arguments",
			args: []string{"input.txt", "rules.txt", "hash", "extra"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile = ""
			cmd := newRootCmd()
			cmd.SetArgs(tt.args)
			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)

			err := cmd.ExecuteContext(context.Background())
			require.Error(t, err)
			assert.Equal(t,
				"Usage: wordsub <input text file> <word replacements file> <bst|rbt|hash>",
				err.Error())
			assert.Empty(t, out.String(), "no output on failure")
		})
	}
}

func TestRootCommand_ThreeArguments(t *testing.T) {
	dir := t.TempDir()
	inputPath := writeFile(t, dir, "input.txt", "The cat sat.\n")
	rulesPath := writeFile(t, dir, "rules.txt", "cat -> dog\ndog -> animal\n")

	configFile = ""
	cmd := newRootCmd()
	cmd.SetArgs([]string{inputPath, rulesPath, "hash"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "The animal sat.\n\n", out.String())
}

func TestBoundaryErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "usage",
			err:  &UsageError{},
			want: "Usage: wordsub <input text file> <word replacements file> <bst|rbt|hash>",
		},
		{
			name: "file_access",
			err:  &FileAccessError{Name: "data.txt"},
			want: "Error: Cannot open file 'data.txt' for input.",
		},
		{
			name: "invalid_backend",
			err:  &InvalidBackendError{Name: "avl"},
			want: "Error: Invalid data structure 'avl' received.",
		},
		{
			name: "io",
			err:  &IOError{Name: "data.txt"},
			want: "Error: An I/O error occurred reading 'data.txt'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
