package memos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// ErrNotFound is returned when the Memos API answers 404.
var ErrNotFound = errors.New("memo not found")

// Client is the HTTP wrapper for the Memos REST API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

// NewClient creates a new Memos HTTP client.
func NewClient(baseURL, accessToken string) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: defaultTimeout},
	}
}

// CreateMemo creates a new memo via POST /api/v1/memos.
func (c *Client) CreateMemo(ctx context.Context, req CreateMemoRequest) (*Memo, error) {
	var memo Memo
	if err := c.do(ctx, http.MethodPost, "/api/v1/memos", nil, req, &memo); err != nil {
		return nil, fmt.Errorf("memos create: %w", err)
	}
	return &memo, nil
}

// GetMemo fetches a single memo by its ID.
func (c *Client) GetMemo(ctx context.Context, id string) (*Memo, error) {
	var memo Memo
	if err := c.do(ctx, http.MethodGet, "/api/v1/memos/"+url.PathEscape(id), nil, nil, &memo); err != nil {
		return nil, fmt.Errorf("memos get: %w", err)
	}
	return &memo, nil
}

// UpdateMemo patches the fields named by req.UpdateMask.
func (c *Client) UpdateMemo(ctx context.Context, id string, req UpdateMemoRequest) (*Memo, error) {
	query := url.Values{"updateMask": {req.UpdateMask}}
	var memo Memo
	if err := c.do(ctx, http.MethodPatch, "/api/v1/memos/"+url.PathEscape(id), query, req, &memo); err != nil {
		return nil, fmt.Errorf("memos update: %w", err)
	}
	return &memo, nil
}

// DeleteMemo removes a memo by its ID.
func (c *Client) DeleteMemo(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/api/v1/memos/"+url.PathEscape(id), nil, nil, nil); err != nil {
		return fmt.Errorf("memos delete: %w", err)
	}
	return nil
}

// ListMemos returns one page of memos carrying tag. An empty nextPageToken means the last page.
func (c *Client) ListMemos(ctx context.Context, tag string, pageSize int, pageToken string) ([]Memo, string, error) {
	query := url.Values{}
	query.Set("pageSize", fmt.Sprintf("%d", pageSize))
	if tag != "" {
		query.Set("filter", fmt.Sprintf("tag in [%q]", tag))
	}
	if pageToken != "" {
		query.Set("pageToken", pageToken)
	}

	var listResp struct {
		Memos         []Memo `json:"memos"`
		NextPageToken string `json:"nextPageToken"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/memos", query, nil, &listResp); err != nil {
		return nil, "", fmt.Errorf("memos list: %w", err)
	}
	return listResp.Memos, listResp.NextPageToken, nil
}

// Ping checks that the API answers an authenticated list call.
func (c *Client) Ping(ctx context.Context) error {
	_, _, err := c.ListMemos(ctx, "", 1, "")
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ---- Request/Response types scoped to this package ----

// CreateMemoRequest is the body for POST /api/v1/memos.
type CreateMemoRequest struct {
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
}

// UpdateMemoRequest is the body for PATCH /api/v1/memos/{id}.
type UpdateMemoRequest struct {
	Content    string `json:"content"`
	UpdateMask string `json:"-"`
}

// Memo is the Memos API memo object.
type Memo struct {
	Name       string `json:"name"`
	UID        string `json:"uid"`
	Content    string `json:"content"`
	Visibility string `json:"visibility"`
	CreateTime string `json:"createTime"`
	UpdateTime string `json:"updateTime"`
}

// ID returns the memo's short id. Name has the form "memos/{uid}".
func (m Memo) ID() string {
	if m.UID != "" {
		return m.UID
	}
	if uid, ok := strings.CutPrefix(m.Name, "memos/"); ok {
		return uid
	}
	return m.Name
}
