package document

import (
	"reflect"
	"testing"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()
	cases := []struct {
		in   string
		want []string
	}{
		{"", []string{}},
		{"single", []string{"single"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\nc", []string{"a", "b", "c"}},
		{"a\n", []string{"a"}},
		{"a\r\n", []string{"a"}},
		{"a\n\n", []string{"a", ""}},
		{"\n", []string{""}},
		{"\nb", []string{"", "b"}},
	}
	for _, tc := range cases {
		if got := SplitLines(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("SplitLines(%q) = %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestSplitLinesNeverNil(t *testing.T) {
	t.Parallel()
	if SplitLines("") == nil {
		t.Fatalf("expected non-nil slice for empty input")
	}
}

func TestRangeValid(t *testing.T) {
	t.Parallel()
	cases := []struct {
		r    Range
		n    int
		want bool
	}{
		{Range{Start: 0, End: 0}, 1, true},
		{Range{Start: 0, End: 4}, 5, true},
		{Range{Start: 2, End: 2}, 5, true},
		{Range{Start: -1, End: 0}, 5, false},
		{Range{Start: 3, End: 2}, 5, false},
		{Range{Start: 0, End: 5}, 5, false},
		{Range{Start: 0, End: 0}, 0, false},
	}
	for _, tc := range cases {
		if got := tc.r.Valid(tc.n); got != tc.want {
			t.Fatalf("Range{%d,%d}.Valid(%d) = %v, want %v", tc.r.Start, tc.r.End, tc.n, got, tc.want)
		}
	}
}

func TestRangeInBoundsIgnoresOrder(t *testing.T) {
	t.Parallel()
	r := Range{Start: 3, End: 1}
	if !r.InBounds(5) {
		t.Fatalf("expected reversed range to still be in bounds")
	}
	if !r.Inverted() {
		t.Fatalf("expected reversed range to report Inverted")
	}
}

func TestRangeText(t *testing.T) {
	t.Parallel()
	lines := []string{"alpha", "beta", "gamma", "delta"}
	got := Range{Start: 1, End: 2}.Text(lines)
	if got != "beta\ngamma" {
		t.Fatalf("Text = %q", got)
	}
	if got := (Range{Start: 2, End: 2}).Text(lines); got != "gamma" {
		t.Fatalf("single-line Text = %q", got)
	}
}

func TestReplaceCountsOriginalOccurrences(t *testing.T) {
	t.Parallel()
	lines := []string{"aaa", "bab", "none"}
	got, n := Replace(lines, "a", "aa")
	if n != 4 {
		t.Fatalf("expected 4 replacements, got %d", n)
	}
	want := []string{"aaaaaa", "baab", "none"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Replace = %#v, want %#v", got, want)
	}
	if lines[0] != "aaa" {
		t.Fatalf("input slice mutated: %#v", lines)
	}
}

func TestReplaceEmptySearch(t *testing.T) {
	t.Parallel()
	got, n := Replace([]string{"ab"}, "", "-")
	if got[0] != "-a-b-" {
		t.Fatalf("Replace with empty search = %q", got[0])
	}
	if n != 3 {
		t.Fatalf("expected count 3 for empty search over two runes, got %d", n)
	}
}

func TestReplaceEmptyLines(t *testing.T) {
	t.Parallel()
	got, n := Replace([]string{}, "x", "y")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil result, got %#v", got)
	}
	if n != 0 {
		t.Fatalf("expected zero replacements, got %d", n)
	}
}
