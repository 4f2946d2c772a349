package server

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/ar2rodelvalle/manual-splitter-backend/internal/document"
	"github.com/ar2rodelvalle/manual-splitter-backend/internal/tokenizer"
)

// DocumentsHandler serves the document lifecycle: upload and parse, token
// counting over line ranges, and literal search/replace.
type DocumentsHandler struct {
	Tokenizer        tokenizer.Tokenizer
	AllowedExtension string
	Debug            bool
	Logger           *log.Logger
}

func (h *DocumentsHandler) debugf(format string, args ...interface{}) {
	if !h.Debug || h.Logger == nil {
		return
	}
	h.Logger.Printf(format, args...)
}

func (h *DocumentsHandler) Register(g *echo.Group) {
	g.POST("/upload", h.upload)
	g.POST("/tokens", h.tokens)
	g.POST("/replace", h.replace)
}

// upload parses a plain-text file into its line sequence
//
//	@Summary	Upload a text document
//	@Tags		documents
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"Plain-text file"
//	@Success	200	{object}	UploadResponse
//	@Failure	400	{object}	HTTPError
//	@Failure	500	{object}	HTTPError
//	@Router		/upload [post]
func (h *DocumentsHandler) upload(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No file part")
	}
	files := form.File["file"]
	if len(files) == 0 {
		// A part named "file" without a filename parses as a plain form
		// value: the field was sent but no file was chosen.
		if _, ok := form.Value["file"]; ok {
			return echo.NewHTTPError(http.StatusBadRequest, "No selected file")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "No file part")
	}
	fh := files[0]
	if fh.Filename == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "No selected file")
	}
	if !strings.HasSuffix(fh.Filename, h.AllowedExtension) {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Only %s files are allowed", h.AllowedExtension))
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if !utf8.Valid(content) {
		return echo.NewHTTPError(http.StatusInternalServerError, "file content is not valid UTF-8 text")
	}

	lines := document.SplitLines(string(content))
	h.debugf("upload: parsed %q into %d lines", fh.Filename, len(lines))
	return c.JSON(http.StatusOK, UploadResponse{Filename: fh.Filename, Lines: lines})
}

// tokens counts tokenizer tokens over an inclusive line range.
func (h *DocumentsHandler) tokens(c echo.Context) error {
	var req TokenCountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Lines == nil || req.Start == nil || req.End == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}
	rng := document.Range{Start: *req.Start, End: *req.End}
	if !rng.Valid(len(req.Lines)) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid line range")
	}
	count, err := h.Tokenizer.Count(rng.Text(req.Lines))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	tokensCounted.Add(float64(count))
	h.debugf("tokens: counted %d tokens for lines %d to %d", count, rng.Start, rng.End)
	return c.JSON(http.StatusOK, TokenCountResponse{TokenCount: count, StartLine: rng.Start, EndLine: rng.End})
}

// replace rewrites every line via literal search/replace. The reported
// count reflects occurrences in the lines as sent, not in the output.
func (h *DocumentsHandler) replace(c echo.Context) error {
	var req ReplaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Lines == nil || req.Search == nil || req.Replace == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing required fields")
	}
	lines, n := document.Replace(req.Lines, *req.Search, *req.Replace)
	return c.JSON(http.StatusOK, ReplaceResponse{Lines: lines, Replacements: n})
}
