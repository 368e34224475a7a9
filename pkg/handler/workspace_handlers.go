package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unalbahadir/lawyer-assistant/pkg/backend"
	"github.com/unalbahadir/lawyer-assistant/pkg/models"
	"github.com/unalbahadir/lawyer-assistant/pkg/service"
)

// WorkspaceHandler provides HTTP handlers for the case workspace session.
type WorkspaceHandler struct {
	Svc    *service.WorkspaceService
	Logger *slog.Logger
}

func NewWorkspaceHandler(svc *service.WorkspaceService, logger *slog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{Svc: svc, Logger: logger}
}

// RegisterRoutes registers workspace routes under /api/workspace.
func (h *WorkspaceHandler) RegisterRoutes(r *gin.RouterGroup) {
	ws := r.Group("/workspace")
	{
		ws.POST("/open", h.Open)
		ws.POST("/close", h.Close)
		ws.GET("/state", h.State)
		ws.POST("/tab", h.SwitchTab)

		ws.POST("/chat", h.SendMessage)
		ws.GET("/chat", h.ChatEntries)

		ws.GET("/documents", h.Documents)
		ws.POST("/documents", h.UploadDocument)
		ws.POST("/documents/refresh", h.RefreshDocuments)
		ws.DELETE("/documents/:id", h.DeleteDocument)

		ws.GET("/template", h.TemplateDraft)
		ws.POST("/template", h.SelectTemplateType)
		ws.POST("/template/generate", h.GenerateDraft)
	}
}

// Open makes a case the active workspace.
// POST /api/workspace/open {"case_id": 7}
func (h *WorkspaceHandler) Open(c *gin.Context) {
	var req models.OpenWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Warn("Invalid open workspace request", "error", err)
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "Invalid request parameters: " + err.Error()})
		return
	}

	if err := h.Svc.OpenCase(c.Request.Context(), req.CaseID); err != nil {
		if backend.IsNotFound(err) {
			h.Logger.Warn("Case not found", "caseId", req.CaseID)
			c.JSON(http.StatusNotFound, models.Response{Code: 404, Message: "Case not found"})
			return
		}
		h.Logger.Error("Failed to open case workspace", "caseId", req.CaseID, "error", err)
		c.JSON(http.StatusBadGateway, models.Response{Code: 502, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Workspace opened", Data: h.Svc.State()})
}

// Close discards the active workspace.
// POST /api/workspace/close
func (h *WorkspaceHandler) Close(c *gin.Context) {
	h.Svc.CloseCase()
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Workspace closed"})
}

// State returns the full workspace snapshot.
// GET /api/workspace/state
func (h *WorkspaceHandler) State(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Retrieved successfully", Data: h.Svc.State()})
}

// SwitchTab changes the active tab.
// POST /api/workspace/tab {"tab": "documents"}
func (h *WorkspaceHandler) SwitchTab(c *gin.Context) {
	var req models.SwitchTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "Invalid request parameters: " + err.Error()})
		return
	}

	if err := h.Svc.SwitchTab(req.Tab); err != nil {
		status := statusForError(err)
		c.JSON(status, models.Response{Code: status, Message: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Tab switched"})
}
