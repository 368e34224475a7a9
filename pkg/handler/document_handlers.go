package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/unalbahadir/lawyer-assistant/pkg/models"
)

// Documents returns the tracked document set of the active case.
// GET /api/workspace/documents
func (h *WorkspaceHandler) Documents(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Retrieved successfully", Data: h.Svc.Documents()})
}

// UploadDocument uploads one file to the active case.
// POST /api/workspace/documents (multipart form, field "file")
func (h *WorkspaceHandler) UploadDocument(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "A file is required: " + err.Error()})
		return
	}

	if !models.AcceptedUpload(header.Filename) {
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "Unsupported file type: " + header.Filename})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "Could not read upload: " + err.Error()})
		return
	}
	defer f.Close()

	if err := h.Svc.UploadDocument(c.Request.Context(), header.Filename, f); err != nil {
		status := statusForError(err)
		h.Logger.Error("Failed to upload document", "filename", header.Filename, "error", err)
		c.JSON(status, models.Response{Code: status, Message: err.Error()})
		return
	}

	h.Logger.Info("Document uploaded via API", "filename", header.Filename, "size", header.Size)
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Uploaded successfully", Data: h.Svc.Documents()})
}

// RefreshDocuments re-fetches the document set so the UI can pick up indexing
// progress without a mutation.
// POST /api/workspace/documents/refresh
func (h *WorkspaceHandler) RefreshDocuments(c *gin.Context) {
	if err := h.Svc.RefreshDocuments(c.Request.Context()); err != nil {
		status := statusForError(err)
		c.JSON(status, models.Response{Code: status, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Refreshed", Data: h.Svc.Documents()})
}

// DeleteDocument removes one document. The UI sets confirm=true only after
// the user answered the confirmation dialog; without it the request is
// rejected before any backend call.
// DELETE /api/workspace/documents/:id?confirm=true
func (h *WorkspaceHandler) DeleteDocument(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "Invalid document id"})
		return
	}
	confirmed := c.Query("confirm") == "true"

	if err := h.Svc.DeleteDocument(c.Request.Context(), id, confirmed); err != nil {
		status := statusForError(err)
		if status >= 500 {
			h.Logger.Error("Failed to delete document", "documentId", id, "error", err)
		}
		c.JSON(status, models.Response{Code: status, Message: err.Error()})
		return
	}

	h.Logger.Info("Document deleted via API", "documentId", id)
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Deleted successfully", Data: h.Svc.Documents()})
}
