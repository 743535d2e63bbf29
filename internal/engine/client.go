package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/natnaelw/vendora/internal/dto"
)

// defaultTimeout bounds every backend call so a hung fetch cannot leave the
// caller waiting indefinitely.
const defaultTimeout = 10 * time.Second

// Client is the REST collaborator the engine persists through. It holds no
// credentials; the bearer token is passed per call.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// NewClientWithHTTP is for callers that need a custom transport or timeout.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

func (c *Client) FetchThread(ctx context.Context, productID string, viewerID *string) (*dto.ThreadResponse, error) {
	endpoint := fmt.Sprintf("%s/products/%s/comments", c.baseURL, url.PathEscape(productID))
	if viewerID != nil {
		endpoint += "?viewer=" + url.QueryEscape(*viewerID)
	}

	var thread dto.ThreadResponse
	if err := c.do(ctx, http.MethodGet, endpoint, "", nil, &thread); err != nil {
		return nil, err
	}
	return &thread, nil
}

func (c *Client) FetchCount(ctx context.Context, productID string) (int64, error) {
	endpoint := fmt.Sprintf("%s/products/%s/comments/count", c.baseURL, url.PathEscape(productID))

	var out struct {
		TotalCount int64 `json:"total_count"`
	}
	if err := c.do(ctx, http.MethodGet, endpoint, "", nil, &out); err != nil {
		return 0, err
	}
	return out.TotalCount, nil
}

func (c *Client) PostComment(ctx context.Context, token string, req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	endpoint := c.baseURL + "/comments"

	var created dto.CommentResponse
	if err := c.do(ctx, http.MethodPost, endpoint, token, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) ToggleReaction(ctx context.Context, token, commentID string, kind string) (*dto.ReactionStateResponse, error) {
	endpoint := fmt.Sprintf("%s/comments/%s/react", c.baseURL, url.PathEscape(commentID))

	var state dto.ReactionStateResponse
	if err := c.do(ctx, http.MethodPost, endpoint, token, dto.ReactRequest{Kind: kind}, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (c *Client) DeleteComment(ctx context.Context, token, commentID string) error {
	endpoint := fmt.Sprintf("%s/comments/%s", c.baseURL, url.PathEscape(commentID))
	return c.do(ctx, http.MethodDelete, endpoint, token, nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr dto.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return fmt.Errorf("backend returned %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("backend returned %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
