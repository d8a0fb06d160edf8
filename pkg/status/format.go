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
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 12 // Width for status text
)

// 🎯 FormatFileReport formats a short, single-line outcome message
func FormatFileReport(report FileReport) string {
	switch report.Status {
	case StatusRewritten:
		return fmt.Sprintf("Rewrote %s (%d replacements)", report.Path, report.Replaced)
	case StatusUnchanged:
		return fmt.Sprintf("Unchanged %s", report.Path)
	case StatusFailed:
		return fmt.Sprintf("Failed %s", report.Path)
	default:
		return report.Path
	}
}

// 🎯 FormatFileLine formats one aligned summary-table row
func FormatFileLine(report FileReport) string {
	var prefix string
	switch report.Status {
	case StatusRewritten:
		prefix = color.GreenString("✓")
	case StatusFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	namePart := fmt.Sprintf("%-*s", nameWidth, report.Path)
	statusPart := fmt.Sprintf("%-*s", statusWidth, report.Status.String())
	countPart := ""
	if report.Status == StatusRewritten {
		countPart = fmt.Sprintf("%d/%d words", report.Replaced, report.Words)
	}

	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		namePart,
		statusPart,
		countPart,
	)
}
