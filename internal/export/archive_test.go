package export

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/ar2rodelvalle/manual-splitter-backend/internal/document"
)

func readArchive(t *testing.T, blob []byte) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(blob), int64(len(blob)))
	if err != nil {
		t.Fatalf("zip.NewReader: %v", err)
	}
	got := make(map[string]string, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		got[f.Name] = string(b)
	}
	return got
}

func TestBuildArchiveRoundTrip(t *testing.T) {
	lines := []string{"alpha", "beta", "gamma"}
	sections := []document.Section{
		{Range: document.Range{Start: 0, End: 1}, Title: "Head", ShouldSummarize: true},
		{Range: document.Range{Start: 2, End: 2}, Title: "Tail"},
	}

	blob, err := BuildArchive(lines, sections)
	if err != nil {
		t.Fatalf("BuildArchive: %v", err)
	}
	got := readArchive(t, blob)
	if len(got) != 3 {
		t.Fatalf("expected 3 archive entries, got %d: %v", len(got), got)
	}
	if got["section_1.txt"] != "alpha\nbeta" {
		t.Fatalf("section_1 = %q", got["section_1.txt"])
	}
	if got["section_2.txt"] != "gamma" {
		t.Fatalf("section_2 = %q", got["section_2.txt"])
	}

	var m Manifest
	if err := json.Unmarshal([]byte(got[MetadataFilename]), &m); err != nil {
		t.Fatalf("decode metadata: %v", err)
	}
	if m.TotalSections != 2 || m.Sections[0].Title != "Head" {
		t.Fatalf("unexpected manifest: %+v", m)
	}
}

func TestBuildArchiveNoSections(t *testing.T) {
	blob, err := BuildArchive([]string{"a"}, nil)
	if err != nil {
		t.Fatalf("BuildArchive: %v", err)
	}
	got := readArchive(t, blob)
	if len(got) != 1 {
		t.Fatalf("expected metadata only, got %v", got)
	}
	if _, ok := got[MetadataFilename]; !ok {
		t.Fatalf("metadata.json missing: %v", got)
	}
}

func TestBuildArchiveMatchesFilesystemLayout(t *testing.T) {
	lines := []string{"l0", "l1", "l2", "l3", "l4"}
	sections := []document.Section{
		{Range: document.Range{Start: 1, End: 3}, Title: "Mid", TokenCount: 5, ShouldSummarize: true},
	}
	blob, err := BuildArchive(lines, sections)
	if err != nil {
		t.Fatalf("BuildArchive: %v", err)
	}
	got := readArchive(t, blob)

	wantManifest, err := BuildManifest(sections).encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got[MetadataFilename] != string(wantManifest) {
		t.Fatalf("archive metadata diverges from filesystem metadata:\n%s\nvs\n%s", got[MetadataFilename], wantManifest)
	}
	if got["section_1.txt"] != "l1\nl2\nl3" {
		t.Fatalf("section_1 = %q", got["section_1.txt"])
	}
}
