package export

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/ar2rodelvalle/manual-splitter-backend/internal/document"
)

// ArchiveFilename is the suggested download name for zip exports.
const ArchiveFilename = "sections.zip"

// BuildArchive bundles the same file set WriteFilesystem would produce —
// section_{i}.txt texts plus metadata.json — into an in-memory zip and
// returns its bytes. Nothing is written to disk.
func BuildArchive(lines []string, sections []document.Section) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for i, s := range sections {
		w, err := zw.Create(SectionFilename(i))
		if err != nil {
			return nil, fmt.Errorf("Failed to write section %d: %w", i+1, err)
		}
		if _, err := w.Write([]byte(s.Text(lines))); err != nil {
			return nil, fmt.Errorf("Failed to write section %d: %w", i+1, err)
		}
	}
	data, err := BuildManifest(sections).encode()
	if err != nil {
		return nil, fmt.Errorf("Failed to write metadata: %w", err)
	}
	w, err := zw.Create(MetadataFilename)
	if err != nil {
		return nil, fmt.Errorf("Failed to write metadata: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("Failed to write metadata: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("Failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}
