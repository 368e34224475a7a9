package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/pkg/errors"

	"github.com/unalbahadir/lawyer-assistant/pkg/models"
)

// ListDocuments fetches the full document set of a case.
func (c *Client) ListDocuments(ctx context.Context, caseID int64) ([]models.Document, error) {
	var out []models.Document
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/documents/case/%d", caseID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadDocument sends one file to the ingestion endpoint as multipart form
// data. The created record comes back with is_indexed=false; indexing happens
// asynchronously on the server.
func (c *Client) UploadDocument(ctx context.Context, caseID int64, filename string, content io.Reader) (*models.Document, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, errors.Wrap(err, "create multipart part")
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, errors.Wrapf(err, "read upload %s", filename)
	}
	if err := mw.Close(); err != nil {
		return nil, errors.Wrap(err, "finalize multipart body")
	}

	path := fmt.Sprintf("/api/documents/%d", caseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return nil, errors.Wrapf(err, "build POST %s", path)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out models.Document
	if err := c.send(req, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDocument removes one document. The caller is responsible for having
// confirmed the action with the user first.
func (c *Client) DeleteDocument(ctx context.Context, id int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/api/documents/%d", id), nil, nil)
}
