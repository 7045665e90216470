package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/iho/txdash/internal/domain"
	"github.com/iho/txdash/internal/infrastructure/metrics"
)

const (
	// IdempotencyKeyHeader carries a fresh key on every create and upload.
	IdempotencyKeyHeader = "Idempotency-Key"

	// DefaultTimeout bounds every call to the transaction service.
	DefaultTimeout = 10 * time.Second

	uploadField     = "file"
	maxResponseSize = 4 << 20
)

const (
	opList       = "list"
	opCreate     = "create"
	opUpdate     = "update"
	opDelete     = "delete"
	opDeleteMany = "delete_many"
	opUpload     = "upload"
)

// Client implements usecase.TransactionClient over the service's HTTP/JSON
// API. Every failure it returns is a *domain.CallError.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	metrics    *metrics.Metrics
	retrier    *retrier
	newKey     func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the client logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
		c.retrier.logger = logger
	}
}

// WithMetrics records call counts and durations.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithListRetries sets how many times a list call is retried after a
// transport failure.
func WithListRetries(n int) Option {
	return func(c *Client) {
		c.retrier.maxRetries = max(n, 0)
	}
}

// New creates a Client for the service rooted at baseURL. A zero timeout
// means DefaultTimeout.
func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     zerolog.Nop(),
		retrier:    newRetrier(0, zerolog.Nop()),
		newKey:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.retrier.onRetry = func(op string) {
		if c.metrics != nil {
			c.metrics.RemoteRetries.WithLabelValues(op).Inc()
		}
	}

	return c
}

type request struct {
	method         string
	path           string
	query          url.Values
	body           []byte
	contentType    string
	idempotencyKey string
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data"`
}

// List fetches one page of transactions.
func (c *Client) List(ctx context.Context, page, limit int) (*domain.TransactionPage, error) {
	req := &request{
		method: http.MethodGet,
		path:   "/get",
		query: url.Values{
			"page":  []string{strconv.Itoa(page)},
			"limit": []string{strconv.Itoa(limit)},
		},
	}

	var result domain.TransactionPage
	err := c.retrier.Retry(ctx, opList, func() error {
		result = domain.TransactionPage{}
		return c.call(ctx, opList, req, &result)
	})
	if err != nil {
		return nil, domain.ClassifyError(err)
	}

	return &result, nil
}

// Create adds a transaction and returns the service message.
func (c *Client) Create(ctx context.Context, data domain.TransactionFormData) (string, error) {
	req, err := c.jsonRequest(http.MethodPost, "/add", data)
	if err != nil {
		return "", err
	}
	req.idempotencyKey = c.newKey()

	return c.mutate(ctx, opCreate, req)
}

// Update replaces the editable fields of transaction id.
func (c *Client) Update(ctx context.Context, id int64, data domain.TransactionFormData) (string, error) {
	req, err := c.jsonRequest(http.MethodPut, "/edit/"+strconv.FormatInt(id, 10), data)
	if err != nil {
		return "", err
	}

	return c.mutate(ctx, opUpdate, req)
}

// Delete removes transaction id.
func (c *Client) Delete(ctx context.Context, id int64) (string, error) {
	req := &request{method: http.MethodDelete, path: "/delete/" + strconv.FormatInt(id, 10)}
	return c.mutate(ctx, opDelete, req)
}

// DeleteMany removes every transaction in ids in one request.
func (c *Client) DeleteMany(ctx context.Context, ids []int64) (string, error) {
	req, err := c.jsonRequest(http.MethodDelete, "/delete-multiple", struct {
		IDs []int64 `json:"ids"`
	}{IDs: ids})
	if err != nil {
		return "", err
	}

	return c.mutate(ctx, opDeleteMany, req)
}

// Upload sends a CSV file for bulk import as multipart field "file".
func (c *Client) Upload(ctx context.Context, file domain.UploadFile) (string, error) {
	if file.Content == nil {
		return "", domain.NewTransportError(errors.New("upload file has no content"))
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(uploadField, filepath.Base(file.Name))
	if err != nil {
		return "", domain.NewTransportError(fmt.Errorf("create form file: %w", err))
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return "", domain.NewTransportError(fmt.Errorf("read upload file: %w", err))
	}
	if err := writer.Close(); err != nil {
		return "", domain.NewTransportError(fmt.Errorf("close multipart body: %w", err))
	}

	req := &request{
		method:         http.MethodPost,
		path:           "/upload",
		body:           buf.Bytes(),
		contentType:    writer.FormDataContentType(),
		idempotencyKey: c.newKey(),
	}

	return c.mutate(ctx, opUpload, req)
}

func (c *Client) jsonRequest(method, path string, payload any) (*request, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.NewTransportError(fmt.Errorf("encode request: %w", err))
	}

	return &request{method: method, path: path, body: body, contentType: "application/json"}, nil
}

func (c *Client) mutate(ctx context.Context, op string, req *request) (string, error) {
	var resp messageResponse
	if err := c.call(ctx, op, req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) call(ctx context.Context, op string, req *request, out any) error {
	start := time.Now()
	err := c.send(ctx, op, req, out)
	c.observe(op, start, err)

	event := c.logger.Debug()
	if err != nil {
		event = c.logger.Warn().Err(err)
	}
	event.Str("operation", op).
		Str("method", req.method).
		Str("path", req.path).
		Dur("duration", time.Since(start)).
		Msg("transaction service call")

	return err
}

func (c *Client) send(ctx context.Context, op string, req *request, out any) error {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return domain.NewTransportError(fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	if req.idempotencyKey != "" {
		httpReq.Header.Set(IdempotencyKeyHeader, req.idempotencyKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.NewTransportError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return domain.NewTransportError(fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeFailure(op, resp.StatusCode, payload)
	}

	if len(bytes.TrimSpace(payload)) == 0 {
		if op == opList {
			return domain.NewTransportError(errors.New("empty list response"))
		}
		return nil
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return domain.NewTransportError(fmt.Errorf("decode response: %w", err))
	}

	return nil
}

// decodeFailure classifies a non-2xx response. Row errors are only read
// from upload responses.
func decodeFailure(op string, status int, payload []byte) error {
	var body errorResponse
	if err := json.Unmarshal(payload, &body); err != nil {
		return domain.NewStatusError(status, "", nil)
	}

	var rows []domain.ImportErrorRow
	if op == opUpload && len(body.Data) > 0 {
		// Data that is not a row list is ignored.
		_ = json.Unmarshal(body.Data, &rows)
	}

	return domain.NewStatusError(status, body.Error, rows)
}

func (c *Client) observe(op string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		callErr := domain.ClassifyError(err)
		outcome = callErr.Kind.String()
		if len(callErr.Rows) > 0 {
			c.metrics.RejectedRows.WithLabelValues(op).Add(float64(len(callErr.Rows)))
		}
	}

	c.metrics.RemoteCalls.WithLabelValues(op, outcome).Inc()
	c.metrics.RemoteDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
