package models

import (
	"path/filepath"
	"strings"
	"time"
)

// Document is one file attached to a case. IsIndexed flips to true once the
// backend has embedded the file for retrieval; the flag only updates on a
// fresh document load, there is no push for it.
type Document struct {
	ID         int64     `json:"id"`
	CaseID     int64     `json:"case_id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type,omitempty"`
	FileSize   int64     `json:"file_size,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
	IsIndexed  bool      `json:"is_indexed"`
}

// UploadAccept lists the file extensions the backend ingests.
var UploadAccept = []string{".pdf", ".doc", ".docx", ".txt"}

// AcceptedUpload reports whether filename has an ingestible extension.
func AcceptedUpload(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, ok := range UploadAccept {
		if ext == ok {
			return true
		}
	}
	return false
}
