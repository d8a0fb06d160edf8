package main

import "fmt"

// The diagnostics printed at the program boundary are part of the CLI
// contract; each error type below formats one of them exactly.

// UsageError reports a bad invocation: wrong argument count.
type UsageError struct{}

func (e *UsageError) Error() string {
	return "Usage: wordsub <input text file> <word replacements file> <bst|rbt|hash>"
}

// FileAccessError reports a named file that could not be opened.
type FileAccessError struct {
	Name string
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("Error: Cannot open file '%s' for input.", e.Name)
}

// InvalidBackendError reports a backend selector that is not bst, rbt or hash.
type InvalidBackendError struct {
	Name string
}

func (e *InvalidBackendError) Error() string {
	return fmt.Sprintf("Error: Invalid data structure '%s' received.", e.Name)
}

// IOError reports a read failure on a file that opened successfully.
type IOError struct {
	Name string
}

func (e *IOError) Error() string {
	return fmt.Sprintf("Error: An I/O error occurred reading '%s'.", e.Name)
}
