package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/unalbahadir/lawyer-assistant/pkg/models"
)

// SendMessage submits one question for the active case. The response carries
// the updated conversation; the pending entry will already have been resolved
// or rolled back by the time this returns.
// POST /api/workspace/chat {"message": "..."}
func (h *WorkspaceHandler) SendMessage(c *gin.Context) {
	var req models.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Response{Code: 400, Message: "Invalid request parameters: " + err.Error()})
		return
	}

	if err := h.Svc.SendMessage(c.Request.Context(), req.Message); err != nil {
		status := statusForError(err)
		if status >= 500 {
			h.Logger.Error("Failed to send message", "error", err)
		} else {
			h.Logger.Warn("Message rejected", "error", err)
		}
		c.JSON(status, models.Response{Code: status, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Message answered", Data: h.Svc.ChatEntries()})
}

// ChatEntries returns the active conversation in submission order.
// GET /api/workspace/chat
func (h *WorkspaceHandler) ChatEntries(c *gin.Context) {
	c.JSON(http.StatusOK, models.Response{Code: 200, Message: "Retrieved successfully", Data: h.Svc.ChatEntries()})
}
