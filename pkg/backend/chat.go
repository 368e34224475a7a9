package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/unalbahadir/lawyer-assistant/pkg/models"
)

// SendMessage asks one question against a case's indexed documents and blocks
// until the answer is generated.
func (c *Client) SendMessage(ctx context.Context, req models.ChatRequest) (*models.ChatReply, error) {
	var out models.ChatReply
	if err := c.doJSON(ctx, http.MethodPost, "/api/chat/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetChatHistory fetches the confirmed conversation of a case, oldest first.
func (c *Client) GetChatHistory(ctx context.Context, caseID int64) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/chat/case/%d", caseID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
