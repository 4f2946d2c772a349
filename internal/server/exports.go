package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ar2rodelvalle/manual-splitter-backend/internal/document"
	"github.com/ar2rodelvalle/manual-splitter-backend/internal/export"
)

// ExportsHandler serves section export in its two historical shapes:
// filesystem mode, which writes section files plus metadata.json under an
// output directory, and archive mode, which streams the same file set as a
// zip download and touches no disk.
type ExportsHandler struct {
	DefaultOutputPath string
	Debug             bool
	Logger            *log.Logger
}

func (h *ExportsHandler) debugf(format string, args ...interface{}) {
	if !h.Debug || h.Logger == nil {
		return
	}
	h.Logger.Printf(format, args...)
}

func (h *ExportsHandler) Register(g *echo.Group) {
	g.POST("/export", h.filesystem)
	g.POST("/export/archive", h.archive)
}

// filesystem exports sections to the local filesystem
//
//	@Summary	Export sections to a directory
//	@Tags		exports
//	@Accept		json
//	@Produce	json
//	@Param		payload	body		ExportRequest	true	"Lines, sections and optional outputPath"
//	@Success	200	{object}	ExportResponse
//	@Failure	400	{object}	HTTPError
//	@Failure	500	{object}	HTTPError
//	@Router		/export [post]
func (h *ExportsHandler) filesystem(c echo.Context) error {
	req, sections, err := h.decode(c)
	if err != nil {
		return err
	}
	outputPath := h.DefaultOutputPath
	if req.OutputPath != nil {
		outputPath = *req.OutputPath
	}
	files, err := export.WriteFilesystem(outputPath, req.Lines, sections)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	sectionsExported.WithLabelValues("filesystem").Add(float64(len(sections)))
	h.debugf("wrote %d files to %s", len(files), outputPath)
	return c.JSON(http.StatusOK, ExportResponse{Message: "Export successful", OutputPath: outputPath, Files: files})
}

// archive exports sections as a zip download, writing nothing to disk.
// outputPath has no meaning here and is ignored.
func (h *ExportsHandler) archive(c echo.Context) error {
	req, sections, err := h.decode(c)
	if err != nil {
		return err
	}
	blob, err := export.BuildArchive(req.Lines, sections)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	sectionsExported.WithLabelValues("archive").Add(float64(len(sections)))
	h.debugf("built %s with %d sections (%d bytes)", export.ArchiveFilename, len(sections), len(blob))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", export.ArchiveFilename))
	return c.Blob(http.StatusOK, "application/zip", blob)
}

// decode binds and validates the export payload shared by both modes, so
// filesystem and archive exports reject the same inputs with the same
// messages.
func (h *ExportsHandler) decode(c echo.Context) (*ExportRequest, []document.Section, error) {
	var req ExportRequest
	if err := c.Bind(&req); err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Lines == nil || req.Sections == nil {
		return nil, nil, echo.NewHTTPError(http.StatusBadRequest, "Missing required data")
	}
	sections, err := parseSections(req.Sections, len(req.Lines))
	if err != nil {
		return nil, nil, err
	}
	return &req, sections, nil
}

// parseSections validates raw section objects against an n-line document in
// input order, failing on the first violation so no output of any kind is
// produced for a partially valid request.
func parseSections(raw []json.RawMessage, n int) ([]document.Section, error) {
	sections := make([]document.Section, 0, len(raw))
	for _, r := range raw {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(r, &obj); err != nil || obj == nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid section format")
		}
		startRaw, hasStart := obj["start"]
		endRaw, hasEnd := obj["end"]
		if !hasStart || !hasEnd {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Section missing start or end")
		}
		start, okStart := intFromRaw(startRaw)
		end, okEnd := intFromRaw(endRaw)
		if !okStart || !okEnd {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Section start and end must be integers")
		}
		rng := document.Range{Start: start, End: end}
		if !rng.InBounds(n) {
			return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Section range %d-%d out of bounds", start, end))
		}
		if rng.Inverted() {
			return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Section range %d-%d invalid: start greater than end", start, end))
		}

		sec := document.Section{
			Range:           rng,
			Title:           fmt.Sprintf("Section %d", len(sections)+1),
			ShouldSummarize: true,
		}
		if tRaw, ok := obj["title"]; ok {
			var title *string
			if json.Unmarshal(tRaw, &title) == nil && title != nil {
				sec.Title = *title
			}
		}
		if tcRaw, ok := obj["tokenCount"]; ok {
			if tc, ok := intFromRaw(tcRaw); ok {
				sec.TokenCount = tc
			}
		}
		if ssRaw, ok := obj["shouldSummarize"]; ok {
			var ss *bool
			if json.Unmarshal(ssRaw, &ss) == nil && ss != nil {
				sec.ShouldSummarize = *ss
			}
		}
		sections = append(sections, sec)
	}
	return sections, nil
}

// intFromRaw decodes a JSON value that must be an integer literal.
// Fractional numbers, quoted strings, booleans and null all fail: a raw
// integer token is the only form strconv.Atoi accepts.
func intFromRaw(raw json.RawMessage) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(string(raw)))
	if err != nil {
		return 0, false
	}
	return n, true
}
