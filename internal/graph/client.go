// Package graph loads object graphs from the host system's object API and
// decodes them into schema objects. A single fetch returns the object with
// its class definition, parent chain, children and raw field values inlined,
// so one sync run needs exactly one request.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/qburst/pimcore-magento-product-connector/internal/schema"
)

// Client fetches object documents over HTTP with API-key auth.
type Client struct {
	http *resty.Client
}

// NewClient builds a loader for the host at baseURL.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("Accept", "application/json").
			SetHeader("X-API-Key", apiKey).
			SetTimeout(timeout),
	}
}

// Load fetches one object graph by identifier.
func (c *Client) Load(ctx context.Context, id int64) (*schema.Object, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/objects/%d", id))
	if err != nil {
		return nil, fmt.Errorf("fetch object %d: %w", id, err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("fetch object %d: status %s", id, resp.Status())
	}

	var doc objectDoc
	if err := json.Unmarshal(resp.Body(), &doc); err != nil {
		return nil, fmt.Errorf("decode object %d: %w", id, err)
	}

	return doc.decode(), nil
}
