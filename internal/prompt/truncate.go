package prompt

import (
	"fmt"
	"strings"
)

// DefaultMaxDiffLines bounds the diff sent to the model.
const DefaultMaxDiffLines = 500

// TruncateDiff keeps the first maxLines lines of diff and appends a note with
// the number of lines dropped. A diff at or under the limit is returned as is.
// maxLines <= 0 selects DefaultMaxDiffLines.
func TruncateDiff(diff string, maxLines int) string {
	if maxLines <= 0 {
		maxLines = DefaultMaxDiffLines
	}

	lines := strings.Split(diff, "\n")
	if len(lines) <= maxLines {
		return diff
	}

	omitted := len(lines) - maxLines
	kept := strings.Join(lines[:maxLines], "\n")
	return fmt.Sprintf("%s\n... (%d lines omitted for brevity)", kept, omitted)
}
