package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Client talks to the upstream payroll REST API. Every resource lives at
// {baseURL}/{resource}/ and single items at {baseURL}/{resource}/{id}/.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Response is a successful upstream reply. JSON bodies are decoded on demand,
// anything else is kept as raw text.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func (r *Response) IsJSON() bool {
	return strings.Contains(strings.ToLower(r.ContentType), "application/json")
}

func (r *Response) Text() string {
	return string(r.Body)
}

func (r *Response) Decode(v any) error {
	if !r.IsJSON() {
		return ErrNotJSON
	}
	dec := json.NewDecoder(bytes.NewReader(r.Body))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode upstream body: %w", err)
	}
	return nil
}

// Do performs one request. Non-2xx replies come back as *APIError.
func (c *Client) Do(ctx context.Context, method, path string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID(ctx))

	resource := resourceOf(path)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		recordUpstreamMetrics(resource, method, 0, time.Since(start))
		c.logger.ErrorContext(ctx, "upstream request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	recordUpstreamMetrics(resource, method, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("read upstream body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Status:     http.StatusText(resp.StatusCode),
			Body:       string(raw),
		}
		c.logger.ErrorContext(ctx, "upstream API error",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.String("body", apiErr.Body),
		)
		return nil, apiErr
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        raw,
	}, nil
}

// List fetches every record of a resource. Paginated envelopes are unwrapped.
func (c *Client) List(ctx context.Context, resource string) ([]Record, error) {
	resp, err := c.Do(ctx, http.MethodGet, collectionPath(resource), nil)
	if err != nil {
		return nil, err
	}

	var payload any
	if err := resp.Decode(&payload); err != nil {
		return nil, fmt.Errorf("list %s: %w", resource, err)
	}

	items, ok := payload.([]any)
	if !ok {
		if envelope, isMap := payload.(map[string]any); isMap {
			items, ok = envelope["results"].([]any)
		}
	}
	if !ok {
		return nil, fmt.Errorf("list %s: expected a JSON array", resource)
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		if m, isMap := item.(map[string]any); isMap {
			records = append(records, Record(m))
		}
	}
	return records, nil
}

func (c *Client) Get(ctx context.Context, resource string, id int64) (Record, error) {
	resp, err := c.Do(ctx, http.MethodGet, itemPath(resource, id), nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord(resp)
}

func (c *Client) Create(ctx context.Context, resource string, body any) (Record, error) {
	resp, err := c.Do(ctx, http.MethodPost, collectionPath(resource), body)
	if err != nil {
		return nil, err
	}
	return decodeRecord(resp)
}

func (c *Client) Update(ctx context.Context, resource string, id int64, body any) (Record, error) {
	resp, err := c.Do(ctx, http.MethodPut, itemPath(resource, id), body)
	if err != nil {
		return nil, err
	}
	return decodeRecord(resp)
}

func (c *Client) Delete(ctx context.Context, resource string, id int64) error {
	_, err := c.Do(ctx, http.MethodDelete, itemPath(resource, id), nil)
	return err
}

// decodeRecord tolerates empty and non-JSON bodies
func decodeRecord(resp *Response) (Record, error) {
	if !resp.IsJSON() || len(bytes.TrimSpace(resp.Body)) == 0 {
		return Record{}, nil
	}
	var rec Record
	if err := resp.Decode(&rec); err != nil {
		return nil, err
	}
	if rec == nil {
		rec = Record{}
	}
	return rec, nil
}

func collectionPath(resource string) string {
	return "/" + strings.Trim(resource, "/") + "/"
}

func itemPath(resource string, id int64) string {
	return collectionPath(resource) + strconv.FormatInt(id, 10) + "/"
}

func resourceOf(path string) string {
	trimmed := strings.Trim(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}

func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
