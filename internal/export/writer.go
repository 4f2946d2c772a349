package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ar2rodelvalle/manual-splitter-backend/internal/document"
)

// WriteFilesystem writes each section's newline-joined text to
// section_{i}.txt under dir, creating dir when missing, then writes
// metadata.json. It returns the written filenames in order. On failure the
// files already written stay in place.
//
// Error texts surface verbatim in API error responses.
func WriteFilesystem(dir string, lines []string, sections []document.Section) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("Failed to create output directory: %w", err)
	}
	files := make([]string, 0, len(sections)+1)
	for i, s := range sections {
		name := SectionFilename(i)
		if err := os.WriteFile(filepath.Join(dir, name), []byte(s.Text(lines)), 0o644); err != nil {
			return nil, fmt.Errorf("Failed to write section %d: %w", i+1, err)
		}
		files = append(files, name)
	}
	data, err := BuildManifest(sections).encode()
	if err != nil {
		return nil, fmt.Errorf("Failed to write metadata: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, MetadataFilename), data, 0o644); err != nil {
		return nil, fmt.Errorf("Failed to write metadata: %w", err)
	}
	files = append(files, MetadataFilename)
	return files, nil
}
