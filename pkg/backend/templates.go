package backend

import (
	"context"
	"net/http"

	"github.com/unalbahadir/lawyer-assistant/pkg/models"
)

// GenerateTemplate asks the backend to draft a document of the given type from
// the case's indexed material.
func (c *Client) GenerateTemplate(ctx context.Context, req models.TemplateRequest) (*models.TemplateReply, error) {
	var out models.TemplateReply
	if err := c.doJSON(ctx, http.MethodPost, "/api/templates/", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
