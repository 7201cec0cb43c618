// Package diff renders line diffs for log output.
package diff

import (
	"bytes"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const truncateMessage = "... (diff truncated) ..."

// Lines returns a unified-style diff of before and after, one changed line
// per output line prefixed with "-" or "+", and unchanged lines prefixed with
// a space. It returns an empty string when the inputs are identical and
// stops after maxLines output lines when maxLines is positive.
func Lines(before, after []byte, beforeLabel, afterLabel string, maxLines int) string {
	if bytes.Equal(before, after) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var buf strings.Builder
	buf.WriteString("--- " + beforeLabel + "\n")
	buf.WriteString("+++ " + afterLabel + "\n")

	written := 0
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if maxLines > 0 && written == maxLines {
				buf.WriteString(truncateMessage + "\n")
				return buf.String()
			}
			buf.WriteString(prefix)
			buf.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				buf.WriteString("\n")
			}
			written++
		}
	}

	return buf.String()
}
