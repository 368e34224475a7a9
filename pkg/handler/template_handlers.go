package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unalbahadir/lawyer-assistant/pkg/models"
)

// TemplateDraft returns the transient draft state of the templates tab.
// GET /api/workspace/template
func (h *WorkspaceHandler) TemplateDraft(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Retrieved successfully", Data: h.Svc.TemplateDraft()})
}

// SelectTemplateType picks which draft type to generate.
// POST /api/workspace/template {"template_type": "dilekce"}
func (h *WorkspaceHandler) SelectTemplateType(c *gin.Context) {
	var req models.SelectTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "Invalid request parameters: " + err.Error()})
		return
	}

	if err := h.Svc.SetTemplateType(req.TemplateType); err != nil {
		status := statusForError(err)
		c.JSON(status, models.Response{Code: status, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Template type selected", Data: h.Svc.TemplateDraft()})
}

// GenerateDraft runs one draft generation for the active case and returns the
// resulting draft state.
// POST /api/workspace/template/generate
func (h *WorkspaceHandler) GenerateDraft(c *gin.Context) {
	if err := h.Svc.GenerateDraft(c.Request.Context()); err != nil {
		status := statusForError(err)
		if status >= 500 {
			h.Logger.Error("Failed to generate draft", "error", err)
		}
		c.JSON(status, models.Response{Code: status, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Draft generated", Data: h.Svc.TemplateDraft()})
}
