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

package status

import (
	"context"
	"sync"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 📊 FileStatus represents the outcome of processing one file
type FileStatus int

const (
	StatusUnknown   FileStatus = iota
	StatusRewritten            // File content changed
	StatusUnchanged            // No word had a replacement
	StatusFailed               // Processing failed
)

// String returns a string representation of FileStatus
func (s FileStatus) String() string {
	switch s {
	case StatusRewritten:
		return "rewritten"
	case StatusUnchanged:
		return "unchanged"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 FileReport contains the outcome of processing one file
type FileReport struct {
	Path     string     // Path as matched by the glob
	Status   FileStatus // Outcome
	Words    int        // Words seen
	Replaced int        // Words replaced
	Error    error      // Set when Status is StatusFailed
}

// 📈 Reporter collects per-file outcomes during a batch run and mirrors them
// to the console (pterm) and the structured log (zerolog).
type Reporter struct {
	log zerolog.Logger

	mu      sync.Mutex
	reports []FileReport
}

// 🏭 NewReporter creates a Reporter bound to the context logger.
func NewReporter(ctx context.Context) *Reporter {
	return &Reporter{log: *zerolog.Ctx(ctx)}
}

// 📝 Report records one file outcome and prints it.
func (r *Reporter) Report(report FileReport) {
	r.mu.Lock()
	r.reports = append(r.reports, report)
	r.mu.Unlock()

	msg := FormatFileReport(report)
	switch report.Status {
	case StatusRewritten:
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✏️"}).Println(msg)
		r.log.Info().Str("path", report.Path).Int("replaced", report.Replaced).Msg("file rewritten")
	case StatusUnchanged:
		pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭️"}).Println(msg)
		r.log.Debug().Str("path", report.Path).Msg("file unchanged")
	case StatusFailed:
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(msg)
		if report.Error != nil {
			pterm.Error.Println(report.Error)
		}
		r.log.Error().Err(report.Error).Str("path", report.Path).Msg("file failed")
	}
}

// 📋 Reports returns a copy of everything recorded so far.
func (r *Reporter) Reports() []FileReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]FileReport, len(r.reports))
	copy(out, r.reports)
	return out
}

// 📊 Summary prints the aligned per-file table and the run totals.
func (r *Reporter) Summary() {
	reports := r.Reports()

	var rewritten, failed, replaced int
	for _, report := range reports {
		pterm.Println(FormatFileLine(report))
		switch report.Status {
		case StatusRewritten:
			rewritten++
			replaced += report.Replaced
		case StatusFailed:
			failed++
		}
	}

	r.log.Info().
		Int("files", len(reports)).
		Int("rewritten", rewritten).
		Int("failed", failed).
		Int("replacements", replaced).
		Msg("batch complete")
	pterm.Info.WithPrefix(pterm.Prefix{Text: "📦"}).
		Printfln("%d files, %d rewritten, %d failed, %d replacements",
			len(reports), rewritten, failed, replaced)
}

// Failed reports whether any file failed.
func (r *Reporter) Failed() bool {
	for _, report := range r.Reports() {
		if report.Status == StatusFailed {
			return true
		}
	}
	return false
}
