package visionapi

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/hoopsight/courtload/internal/domain/vision"
	"github.com/hoopsight/courtload/internal/platform/logging"
	"github.com/hoopsight/courtload/internal/platform/resilience"
	"github.com/hoopsight/courtload/internal/usecase"
)

const (
	defaultBaseURL     = "http://localhost:5001"
	analyzePath        = "/api/analyze"
	healthPath         = "/api/health"
	maxResponseBytes   = 1 << 20
	defaultHTTPTimeout = 15 * time.Second
)

var errVisionTransient = crerr.New("vision analyzer transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client calls the clip-analysis sidecar over HTTP. It satisfies
// usecase.ClipAnalyzer.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultHTTPTimeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type analyzeRequest struct {
	ClipRef string `json:"clip_ref"`
}

type analyzeResponse struct {
	RiskScore    float64  `json:"risk_score"`
	RiskCategory string   `json:"risk_category"`
	SeriousFlags []string `json:"serious_flags"`
	AnalyzedAt   string   `json:"analyzed_at"`
}

func (c *Client) AnalyzeClip(ctx context.Context, clipRef string) (vision.Analysis, error) {
	clipRef = strings.TrimSpace(clipRef)
	if clipRef == "" {
		return vision.Analysis{}, fmt.Errorf("clip reference is required")
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "vision circuit breaker rejected request", "state", c.breaker.State())
			return vision.Analysis{}, fmt.Errorf("%w: vision analyzer is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	body, err := sonic.Marshal(analyzeRequest{ClipRef: clipRef})
	if err != nil {
		return vision.Analysis{}, fmt.Errorf("encode analyze request: %w", err)
	}

	out, err, _ := c.flight.Do("analyze:"+clipRef, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, http.MethodPost, c.baseURL+analyzePath, body)
		if c.circuitEnabled {
			if reqErr != nil && isVisionCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return vision.Analysis{}, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return vision.Analysis{}, fmt.Errorf("unexpected response payload type %T", out)
	}

	var decoded analyzeResponse
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return vision.Analysis{}, fmt.Errorf("decode analyzer payload: %w", err)
	}

	analysis := vision.Analysis{
		Score:        decoded.RiskScore,
		Category:     strings.TrimSpace(decoded.RiskCategory),
		SeriousFlags: decoded.SeriousFlags,
		AnalyzedAt:   parseAnalyzedAt(decoded.AnalyzedAt),
	}
	if err := analysis.Validate(); err != nil {
		return vision.Analysis{}, fmt.Errorf("analyzer returned invalid payload: %w", err)
	}

	return analysis, nil
}

// Healthy reports whether the analyzer answers its health probe. Used at
// startup to log a warning before the first clip arrives.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return false
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func (c *Client) executeRequest(ctx context.Context, method, fullURL string, body []byte) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, method, fullURL, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("content-type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %v", errVisionTransient, err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errVisionTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: analyzer status=%d body=%s", errVisionTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("analyzer status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("analyzer request failed")
	}
	c.logger.WarnContext(ctx, "vision analyzer request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func isVisionCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errVisionTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func parseAnalyzedAt(raw string) time.Time {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
