// Package extract talks to the field-extraction service: it uploads an
// appraisal document and receives the extracted field tree to merge into
// the review document.
package extract

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/reviewdesk/appraisalint/internal/cache"
	"github.com/reviewdesk/appraisalint/internal/model"
	"github.com/reviewdesk/appraisalint/internal/util"
	"github.com/reviewdesk/appraisalint/internal/worker"
)

// Request describes one extraction call.
type Request struct {
	FileName string
	File     []byte
	FormType string // 1004, 1007 or 1073
	Category string // optional section id; uses /extract-by-category when set
	Comment  string
}

// Response is the extraction service's decoded reply.
type Response struct {
	Fields model.Document `json:"fields"`
	Raw    string         `json:"raw,omitempty"`
}

// Client calls the extraction service with retries and rate limiting.
type Client struct {
	httpClient *http.Client
	endpoint   string
	userAgent  string
	maxRetries int
	limiter    *worker.Limiter
	store      cache.Cache
	cacheTTL   time.Duration

	// sleep is swapped out in tests so retry backoff does not wall-wait.
	sleep func(time.Duration)
}

// NewClient creates an extraction client from configuration. limiter and
// store may be nil to disable pacing and caching.
func NewClient(cfg model.HTTPConfig, limiter *worker.Limiter, store cache.Cache, cacheTTL time.Duration) *Client {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy),
	}
	if cfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
		},
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		limiter:    limiter,
		store:      store,
		cacheTTL:   cacheTTL,
		sleep:      time.Sleep,
	}
}

// Extract uploads the document and returns the extracted fields. Identical
// requests are served from the cache. On transport failure or a retryable
// status the call is repeated with exponential backoff (1s, 2s, 4s); a
// gateway timeout is not retried because the service is already processing
// the upload.
func (c *Client) Extract(ctx context.Context, req Request) (*Response, error) {
	key := cache.Key(req.File, req.FormType, req.Category)
	if c.store != nil {
		if data, found := c.store.Get(key); found {
			var resp Response
			if err := json.Unmarshal(data, &resp); err == nil {
				return &resp, nil
			}
		}
	}

	endpoint := c.endpoint + "/extract"
	if req.Category != "" {
		endpoint = c.endpoint + "/extract-by-category"
	}

	var lastErr error
	for attempt := 0; attempt < c.attempts(); attempt++ {
		if attempt > 0 {
			// 1s, 2s, 4s.
			c.sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx, endpoint); err != nil {
				return nil, fmt.Errorf("rate limit: %w", err)
			}
		}

		resp, retryable, err := c.do(ctx, endpoint, req)
		if err == nil {
			if c.store != nil {
				if data, merr := json.Marshal(resp); merr == nil {
					_ = c.store.Set(key, data, c.cacheTTL)
				}
			}
			return resp, nil
		}
		lastErr = err
		if !retryable {
			break
		}
	}
	return nil, lastErr
}

func (c *Client) attempts() int {
	if c.maxRetries <= 0 {
		return 1
	}
	return c.maxRetries
}

func (c *Client) do(ctx context.Context, endpoint string, req Request) (*Response, bool, error) {
	body, contentType, err := encodeMultipart(req)
	if err != nil {
		return nil, false, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", contentType)
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("extract: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		msg := decodeErrorBody(httpResp.Body)
		retryable := httpResp.StatusCode != http.StatusGatewayTimeout
		return nil, retryable, fmt.Errorf("extraction service returned %d: %s", httpResp.StatusCode, msg)
	}

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, false, fmt.Errorf("decode response: %w", err)
	}
	return &resp, false, nil
}

func encodeMultipart(req Request) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	name := req.FileName
	if name == "" {
		name = "document.pdf"
	}
	part, err := w.CreateFormFile("file", name)
	if err != nil {
		return nil, "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := part.Write(req.File); err != nil {
		return nil, "", fmt.Errorf("write form file: %w", err)
	}

	if err := w.WriteField("form_type", req.FormType); err != nil {
		return nil, "", fmt.Errorf("write form_type: %w", err)
	}
	if req.Category != "" {
		if err := w.WriteField("category", req.Category); err != nil {
			return nil, "", fmt.Errorf("write category: %w", err)
		}
	}
	if req.Comment != "" {
		if err := w.WriteField("comment", req.Comment); err != nil {
			return nil, "", fmt.Errorf("write comment: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("close multipart writer: %w", err)
	}
	return body, w.FormDataContentType(), nil
}

// decodeErrorBody extracts a human-readable message from a non-2xx body:
// {"error": …} or {"detail": …} JSON, falling back to the raw text.
func decodeErrorBody(r io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(data) == 0 {
		return "no response body"
	}

	var parsed struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if json.Unmarshal(data, &parsed) == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Detail != "" {
			return parsed.Detail
		}
	}
	return strings.TrimSpace(string(data))
}
