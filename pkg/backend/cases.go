package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/unalbahadir/lawyer-assistant/pkg/models"
)

// GetCase fetches one case's metadata. Returns an *APIError with status 404
// when the id is unknown.
func (c *Client) GetCase(ctx context.Context, id int64) (*models.Case, error) {
	var out models.Case
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/cases/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
