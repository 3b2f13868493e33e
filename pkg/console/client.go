// Package console is the typed client for the Thaalam admin API. It bundles
// the transport (Client), the permission evaluator, and the list, form and
// table controllers that admin screens are built from.
package console

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const defaultRequestTimeout = 30 * time.Second

// APIError is a non-2xx response from the admin API, carrying the HTTP status
// and the server's error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

// Client is the authenticated HTTP transport shared by all controllers.
// It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// ClientOption configures a Client at construction time.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithToken seeds the client with an existing bearer token, for resuming a
// session without logging in again.
func WithToken(token string) ClientOption {
	return func(c *Client) { c.token = token }
}

func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultRequestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken installs the bearer token used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the current bearer token, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do performs one API request. A nil out skips response decoding. Errors from
// the server come back as *APIError; transport failures as plain errors.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeAPIError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	var envelope struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == "" {
		envelope.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: envelope.Error}
}

// Query is the list-screen query state sent to list endpoints.
type Query struct {
	Page     int
	PageSize int
	Search   string
	Filters  map[string]string
}

func (q Query) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	for k, val := range q.Filters {
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}

// Page is one page of list results together with the pagination the server
// computed for the query.
type Page[T any] struct {
	Records      []T
	TotalRecords int64
	CurrentPage  int
	TotalPages   int
}

type paginationEnvelope struct {
	TotalRecords int64 `json:"total_records"`
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
}

type listEnvelope[T any] struct {
	Data       []T                `json:"data"`
	Pagination paginationEnvelope `json:"pagination"`
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// List fetches one page of records from a list endpoint such as /v1/expenses.
func List[T any](ctx context.Context, c *Client, path string, q Query) (*Page[T], error) {
	var envelope listEnvelope[T]
	if err := c.do(ctx, http.MethodGet, path, q.values(), nil, "", &envelope); err != nil {
		return nil, err
	}
	return &Page[T]{
		Records:      envelope.Data,
		TotalRecords: envelope.Pagination.TotalRecords,
		CurrentPage:  envelope.Pagination.CurrentPage,
		TotalPages:   envelope.Pagination.TotalPages,
	}, nil
}

// Get fetches a single record by id.
func Get[T any](ctx context.Context, c *Client, path, id string) (T, error) {
	var envelope dataEnvelope[T]
	err := c.do(ctx, http.MethodGet, path+"/"+url.PathEscape(id), nil, nil, "", &envelope)
	return envelope.Data, err
}

// Create posts a new record and returns the stored version with its
// server-assigned fields filled in.
func Create[T any](ctx context.Context, c *Client, path string, record T) (T, error) {
	var zero T
	body, err := json.Marshal(record)
	if err != nil {
		return zero, fmt.Errorf("encode record: %w", err)
	}
	var envelope dataEnvelope[T]
	if err := c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(body), "application/json", &envelope); err != nil {
		return zero, err
	}
	return envelope.Data, nil
}

// Update replaces an existing record and returns the stored version.
func Update[T any](ctx context.Context, c *Client, path, id string, record T) (T, error) {
	var zero T
	body, err := json.Marshal(record)
	if err != nil {
		return zero, fmt.Errorf("encode record: %w", err)
	}
	var envelope dataEnvelope[T]
	if err := c.do(ctx, http.MethodPut, path+"/"+url.PathEscape(id), nil, bytes.NewReader(body), "application/json", &envelope); err != nil {
		return zero, err
	}
	return envelope.Data, nil
}

// Delete removes a record by id.
func Delete(ctx context.Context, c *Client, path, id string) error {
	return c.do(ctx, http.MethodDelete, path+"/"+url.PathEscape(id), nil, nil, "", nil)
}

// Attachment is a file staged for upload.
type Attachment struct {
	Field       string
	FileName    string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Upload sends one file as a multipart request to an attachment endpoint such
// as /v1/podcasts/:id/media. The decoded record is returned.
func Upload[T any](ctx context.Context, c *Client, method, path string, att Attachment) (T, error) {
	var zero T

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(att.Field, att.FileName)
	if err != nil {
		return zero, fmt.Errorf("multipart: %w", err)
	}
	if _, err := io.Copy(part, att.Reader); err != nil {
		return zero, fmt.Errorf("multipart: %w", err)
	}
	if err := w.Close(); err != nil {
		return zero, fmt.Errorf("multipart: %w", err)
	}

	var envelope dataEnvelope[T]
	if err := c.do(ctx, method, path, nil, &buf, w.FormDataContentType(), &envelope); err != nil {
		return zero, err
	}
	return envelope.Data, nil
}

// CreateMultipart posts field values and an optional file in a single
// multipart request, for create screens that accept an upload inline.
func CreateMultipart[T any](ctx context.Context, c *Client, path string, fields map[string]string, att *Attachment) (T, error) {
	var zero T

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return zero, fmt.Errorf("multipart: %w", err)
		}
	}
	if att != nil {
		part, err := w.CreateFormFile(att.Field, att.FileName)
		if err != nil {
			return zero, fmt.Errorf("multipart: %w", err)
		}
		if _, err := io.Copy(part, att.Reader); err != nil {
			return zero, fmt.Errorf("multipart: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return zero, fmt.Errorf("multipart: %w", err)
	}

	var envelope dataEnvelope[T]
	if err := c.do(ctx, http.MethodPost, path, nil, &buf, w.FormDataContentType(), &envelope); err != nil {
		return zero, err
	}
	return envelope.Data, nil
}

// NextDocumentNumber asks the server to reserve the next number in a document
// sequence, e.g. /v1/payslips/next-number.
func NextDocumentNumber(ctx context.Context, c *Client, path string) (string, error) {
	var envelope dataEnvelope[struct {
		Number string `json:"number"`
	}]
	if err := c.do(ctx, http.MethodGet, path, nil, nil, "", &envelope); err != nil {
		return "", err
	}
	return envelope.Data.Number, nil
}
