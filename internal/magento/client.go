// Package magento transmits product payloads to the catalog's GraphQL
// endpoint.
package magento

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const saveProductMutation = `{"query": "mutation SaveProduct { saveProduct(input: { %s }) { status_code message } }"}`

// Client posts saveProduct mutations to {storeUrl}/graphql with bearer-token
// auth. Delivery is attempted exactly once per call; failures are never
// retried here.
type Client struct {
	http *resty.Client
}

// NewClient builds a client for one store. The timeout applies to the whole
// request; hitting it surfaces as a TransportError.
func NewClient(storeURL, accessToken string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(strings.TrimRight(storeURL, "/")).
			SetAuthToken(accessToken).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetHeader("Content-Type", "application/json"),
	}
}

type graphQLResponse struct {
	Errors []struct {
		Message      string `json:"message"`
		DebugMessage string `json:"debugMessage"`
	} `json:"errors"`
	Data struct {
		SaveProduct struct {
			StatusCode string `json:"status_code"`
			Message    string `json:"message"`
		} `json:"saveProduct"`
	} `json:"data"`
}

// SaveProduct sends one rendered payload fragment and returns the remote
// message on success.
func (c *Client) SaveProduct(ctx context.Context, fragment string) (string, error) {
	body := fmt.Sprintf(saveProductMutation, fragment)

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/graphql")
	if err != nil {
		return "", &TransportError{Err: err}
	}

	var parsed graphQLResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", &RemoteError{Message: fmt.Sprintf("unreadable response: %v", err)}
	}

	if len(parsed.Errors) > 0 {
		return "", &RemoteError{Message: foldErrors(parsed)}
	}

	result := parsed.Data.SaveProduct
	if result.StatusCode != "200" {
		return "", &RemoteError{Message: result.Message}
	}

	return result.Message, nil
}

// foldErrors joins the unique message/debugMessage pairs of a GraphQL errors
// array as "message->debugMessage", comma-separated. Uniqueness is over the
// combined pair string; two errors sharing a message but differing in debug
// detail both survive.
func foldErrors(parsed graphQLResponse) string {
	var parts []string
	seen := map[string]struct{}{}

	for _, e := range parsed.Errors {
		text := e.Message
		if e.DebugMessage != "" {
			text += "->" + e.DebugMessage
		}

		if _, dup := seen[text]; dup {
			continue
		}

		seen[text] = struct{}{}
		parts = append(parts, text)
	}

	return strings.Join(parts, ",")
}
