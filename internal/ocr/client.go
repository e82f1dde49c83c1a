package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Extraction is the immutable result of one provider call.
type Extraction struct {
	Provider string          `json:"provider"`
	Text     string          `json:"text"`
	Pages    []string        `json:"pages,omitempty"`
	Raw      json.RawMessage `json:"-"` // kept for diagnostics only
}

// Extractor is the contract the processor depends on.
type Extractor interface {
	Extract(ctx context.Context, path, mimeType string) (Extraction, error)
}

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration // bound on one provider call; a timeout is retryable
}

// Client calls an external text-recognition provider over HTTP and classifies
// every failure as retryable or permanent.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg Config, httpClient *http.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 45 * time.Second
	}
	return &Client{cfg: cfg, httpClient: httpClient, log: logger}
}

// provider wire format
type extractRequest struct {
	Document string `json:"document"` // base64 file bytes
	MimeType string `json:"mime_type"`
}

type extractResponse struct {
	Text  string `json:"text"`
	Pages []struct {
		Text string `json:"text"`
	} `json:"pages"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Extract reads the file at path and submits it for text recognition.
func (c *Client) Extract(ctx context.Context, path, mimeType string) (Extraction, error) {
	rid := uuid.New().String()
	start := time.Now()

	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return Extraction{}, permanent("credentials", errors.New("api key is not configured"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Extraction{}, permanent("read_file", err)
	}

	body, err := json.Marshal(extractRequest{
		Document: base64.StdEncoding.EncodeToString(data),
		MimeType: mimeType,
	})
	if err != nil {
		return Extraction{}, permanent("encode_request", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/extract"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Extraction{}, permanent("build_request", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	c.log.Info("ocr.extract.request",
		"req_id", rid,
		"url", endpoint,
		"mime_type", mimeType,
		"bytes", len(data),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("ocr.extract.send_error", "req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return Extraction{}, retryable("send", err)
	}
	defer func(b io.ReadCloser) {
		if err := b.Close(); err != nil {
			c.log.Warn("ocr.extract.body_close_error", "req_id", rid, "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)

	c.log.Info("ocr.extract.response",
		"req_id", rid,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if err := classifyStatus(resp.StatusCode, raw); err != nil {
		return Extraction{}, err
	}

	var out extractResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return Extraction{}, retryable("decode_response", fmt.Errorf("unparsable provider response: %w", err))
	}
	if out.Error != nil {
		return Extraction{}, permanent("provider", fmt.Errorf("%s: %s", out.Error.Code, out.Error.Message))
	}

	pages := make([]string, 0, len(out.Pages))
	for _, p := range out.Pages {
		pages = append(pages, p.Text)
	}
	text := out.Text
	if text == "" && len(pages) > 0 {
		text = strings.Join(pages, "\n")
	}

	return Extraction{
		Provider: providerName(c.cfg.BaseURL),
		Text:     text,
		Pages:    pages,
		Raw:      raw,
	}, nil
}

func classifyStatus(code int, raw []byte) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusTooManyRequests || code >= 500:
		return retryable("status", fmt.Errorf("provider status %d: %s", code, truncateBody(raw)))
	default:
		return permanent("status", fmt.Errorf("provider status %d: %s", code, truncateBody(raw)))
	}
}

func truncateBody(raw []byte) string {
	const max = 512
	if len(raw) > max {
		return string(raw[:max]) + "...(truncated)"
	}
	return string(raw)
}

func providerName(baseURL string) string {
	u := strings.TrimPrefix(strings.TrimPrefix(baseURL, "https://"), "http://")
	if i := strings.IndexByte(u, '/'); i >= 0 {
		u = u[:i]
	}
	if u == "" {
		return "ocr"
	}
	return u
}
