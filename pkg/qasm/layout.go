package qasm

import (
	"strconv"
	"strings"
)

// ioLayout is the pre-parse result of scraping leading `// i a b c …` /
// `// o a b c …` comment lines (spec.md §4.5). The scanner discards every
// comment as trivia, so this is a raw-text pass over src run before
// tokenizing even begins.
type ioLayout struct {
	initial []int // position in the line is the logical index, value the physical index
	output  []int
}

// scrapeIOLayout scans leading lines of src (blank lines and ordinary `//`
// comments are skipped over) for `// i` / `// o` layout lines, stopping at
// the first line that is neither blank nor a `//` comment.
func scrapeIOLayout(src string) ioLayout {
	var out ioLayout
	for _, line := range strings.Split(src, "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, "// i "), trimmed == "// i":
			out.initial = parseIntFields(strings.TrimPrefix(trimmed, "// i"))
		case strings.HasPrefix(trimmed, "// o "), trimmed == "// o":
			out.output = parseIntFields(strings.TrimPrefix(trimmed, "// o"))
		case strings.HasPrefix(trimmed, "//"):
			continue
		default:
			return out
		}
	}
	return out
}

func parseIntFields(s string) []int {
	fields := strings.Fields(s)
	vals := make([]int, 0, len(fields))
	for _, f := range fields {
		if v, err := strconv.Atoi(f); err == nil {
			vals = append(vals, v)
		}
	}
	return vals
}
