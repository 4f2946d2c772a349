// Package document implements the line-oriented document model: splitting
// uploaded text into lines, selecting inclusive line ranges and rewriting
// lines via literal search/replace. Documents live only for the duration of
// a request; callers carry the line sequence between calls.
package document

import "strings"

// SplitLines splits text into lines on newline boundaries, treating "\r\n"
// like "\n". A trailing newline does not produce a final empty line; empty
// input yields an empty, non-nil slice.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Range is a closed, zero-based interval of line indices.
type Range struct {
	Start int
	End   int
}

// Valid reports whether the range selects at least one line of an n-line
// document: 0 <= Start <= End < n.
func (r Range) Valid(n int) bool {
	return r.Start >= 0 && r.Start <= r.End && r.End < n
}

// InBounds reports whether both endpoints fall inside an n-line document.
// It does not check the endpoint order; see Inverted.
func (r Range) InBounds(n int) bool {
	return r.Start >= 0 && r.End < n
}

// Inverted reports whether the range runs backwards.
func (r Range) Inverted() bool {
	return r.Start > r.End
}

// Text joins the selected lines with "\n". The range must be Valid for the
// given lines.
func (r Range) Text(lines []string) string {
	return strings.Join(lines[r.Start:r.End+1], "\n")
}

// Section is a titled line range selected for export. TokenCount and
// ShouldSummarize are caller-supplied metadata carried through to the
// export manifest unchanged.
type Section struct {
	Range
	Title           string
	TokenCount      int
	ShouldSummarize bool
}

// Replace substitutes every occurrence of search in each line with
// replacement and returns the rewritten lines together with the number of
// occurrences found in the input. The count is taken from the original
// lines, so overlaps introduced by the replacement itself are not counted.
// The input slice is not modified.
func Replace(lines []string, search, replacement string) ([]string, int) {
	out := make([]string, len(lines))
	total := 0
	for i, line := range lines {
		total += strings.Count(line, search)
		out[i] = strings.ReplaceAll(line, search, replacement)
	}
	return out, total
}
