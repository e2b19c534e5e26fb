package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"postdesk/internal/core/domain"
	"postdesk/internal/core/ports"
)

// UpstreamError carries the human-readable message the API returned.
// It is surfaced to the user verbatim instead of a generic failure.
type UpstreamError struct {
	Code    int
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

// Client talks to the back-office REST API with the bearer credential of
// the authenticated session injected at construction.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

var (
	_ ports.TaskDirectory    = (*Client)(nil)
	_ ports.ContentUnitStore = (*Client)(nil)
	_ ports.DeliverableStore = (*Client)(nil)
)

func NewClient(baseURL string, timeout time.Duration, session domain.Session) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		token:   session.Token,
	}
}

func (c *Client) TasksForActor(ctx context.Context, actorID uint64) ([]domain.Task, error) {
	var items []taskItem
	path := fmt.Sprintf("/api/tasks?assignee=%d", actorID)
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return toDomainTasks(items)
}

func (c *Client) SetTaskStatus(ctx context.Context, taskID uint64, status domain.TaskStatus) error {
	path := fmt.Sprintf("/api/tasks/%d/status", taskID)
	return c.do(ctx, http.MethodPut, path, updateStatusRequest{Status: string(status)}, nil)
}

func (c *Client) SiblingTasks(ctx context.Context, customerID uint64, sequence int) ([]domain.Task, error) {
	var items []taskItem
	path := fmt.Sprintf("/api/customers/%d/posts/%d/tasks", customerID, sequence)
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return toDomainTasks(items)
}

func (c *Client) UnitsForPeriod(ctx context.Context, customerID uint64, period string) ([]domain.ContentUnit, error) {
	var items []postItem
	path := fmt.Sprintf("/api/customers/%d/posts?period=%s", customerID, period)
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	units := make([]domain.ContentUnit, 0, len(items))
	for _, item := range items {
		units = append(units, toDomainUnit(item))
	}
	return units, nil
}

func (c *Client) SaveUnitMetadata(ctx context.Context, customerID uint64, period string, sequence int, form domain.MetadataForm) error {
	path := fmt.Sprintf("/api/customers/%d/posts/%s/%d", customerID, period, sequence)
	return c.do(ctx, http.MethodPut, path, toUpdatePostRequest(form), nil)
}

func (c *Client) UploadDeliverable(ctx context.Context, taskID uint64, filename string, content io.Reader) (domain.FileRef, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return domain.FileRef{}, err
	}
	if _, err := io.Copy(part, content); err != nil {
		return domain.FileRef{}, err
	}
	if err := writer.Close(); err != nil {
		return domain.FileRef{}, err
	}

	path := fmt.Sprintf("/api/tasks/%d/deliverables", taskID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return domain.FileRef{}, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.setCommonHeaders(req, true)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.FileRef{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return domain.FileRef{}, decodeError(resp)
	}

	var payload fileRefPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.FileRef{}, err
	}
	return domain.FileRef{ID: payload.ID, Name: payload.Name, URL: payload.URL}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setCommonHeaders(req, method != http.MethodGet)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) setCommonHeaders(req *http.Request, mutating bool) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	if mutating {
		// Mutations carry a request ID so idempotent retries can be
		// correlated upstream.
		req.Header.Set("X-Request-ID", uuid.NewString())
	}
}

func decodeError(resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return domain.ErrNotAuthenticated
	}

	var payload errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.ErrDetails.Message != "" {
		return &UpstreamError{Code: payload.ErrDetails.Code, Message: payload.ErrDetails.Message}
	}

	if resp.StatusCode == http.StatusNotFound {
		return domain.ErrTaskNotFound
	}
	return &UpstreamError{Code: resp.StatusCode, Message: resp.Status}
}
