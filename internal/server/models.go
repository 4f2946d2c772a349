package server

import "encoding/json"

// HTTPError is the generic error envelope returned by the server.
type HTTPError struct {
	Error string `json:"error"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}

// UploadResponse returns the parsed line sequence for an uploaded file.
type UploadResponse struct {
	Filename string   `json:"filename"`
	Lines    []string `json:"lines"`
}

// TokenCountRequest selects an inclusive, zero-based line range of a
// document. Start and end are pointers so an absent field can be told apart
// from an explicit zero.
type TokenCountRequest struct {
	Lines []string `json:"lines"`
	Start *int     `json:"start"`
	End   *int     `json:"end"`
}

// TokenCountResponse carries the token count for the selected range.
type TokenCountResponse struct {
	TokenCount int `json:"token_count"`
	StartLine  int `json:"start_line"`
	EndLine    int `json:"end_line"`
}

// ExportRequest asks for sections of a document to be exported. Section
// objects are validated field by field with per-field error messages, so
// they arrive as raw JSON.
type ExportRequest struct {
	Lines      []string          `json:"lines"`
	Sections   []json.RawMessage `json:"sections"`
	OutputPath *string           `json:"outputPath"`
}

// ExportResponse lists the files written by a filesystem export.
type ExportResponse struct {
	Message    string   `json:"message"`
	OutputPath string   `json:"outputPath"`
	Files      []string `json:"files"`
}

// ReplaceRequest applies a literal search/replace across every line.
// Empty strings are valid values for both search and replace.
type ReplaceRequest struct {
	Lines   []string `json:"lines"`
	Search  *string  `json:"search"`
	Replace *string  `json:"replace"`
}

// ReplaceResponse returns the rewritten lines and the number of occurrences
// found in the original lines.
type ReplaceResponse struct {
	Lines        []string `json:"lines"`
	Replacements int      `json:"replacements"`
}
