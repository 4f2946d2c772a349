// Package export turns validated document sections into files: either a
// directory of section texts plus a metadata manifest, or the same file set
// bundled into an in-memory zip archive.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/ar2rodelvalle/manual-splitter-backend/internal/document"
)

// MetadataFilename is the manifest file written next to the section files.
const MetadataFilename = "metadata.json"

// ManifestEntry describes one exported section file.
type ManifestEntry struct {
	Filename        string `json:"filename"`
	Index           int    `json:"index"`
	Title           string `json:"title"`
	StartLine       int    `json:"start_line"`
	EndLine         int    `json:"end_line"`
	TokenCount      int    `json:"token_count"`
	ShouldSummarize bool   `json:"should_summarize"`
}

// Manifest is the metadata document written alongside exported sections.
type Manifest struct {
	Sections      []ManifestEntry `json:"sections"`
	TotalSections int             `json:"total_sections"`
}

// BuildManifest constructs the manifest for sections in input order.
// Entry indices and filenames are 1-based and derived from position only.
func BuildManifest(sections []document.Section) Manifest {
	entries := make([]ManifestEntry, 0, len(sections))
	for i, s := range sections {
		entries = append(entries, ManifestEntry{
			Filename:        SectionFilename(i),
			Index:           i + 1,
			Title:           s.Title,
			StartLine:       s.Start,
			EndLine:         s.End,
			TokenCount:      s.TokenCount,
			ShouldSummarize: s.ShouldSummarize,
		})
	}
	return Manifest{Sections: entries, TotalSections: len(sections)}
}

// SectionFilename returns the export filename for the section at zero-based
// position i: section_1.txt, section_2.txt, ...
func SectionFilename(i int) string {
	return fmt.Sprintf("section_%d.txt", i+1)
}

// encode renders the manifest as two-space-indented JSON, the on-disk
// metadata.json format.
func (m Manifest) encode() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}
