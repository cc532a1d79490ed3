package notify

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/peladahub/pelada-league/internal/platform/logging"
	"github.com/peladahub/pelada-league/internal/platform/resilience"
)

var errWebhookTransient = crerr.New("webhook transient failure")

type WebhookConfig struct {
	URL            string
	Token          string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// WebhookPublisher posts session-change payloads to a configured endpoint.
// It backs the best-effort notification hook of the recording flow.
type WebhookPublisher struct {
	client         *fasthttp.Client
	url            string
	token          string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewWebhookPublisher(cfg WebhookConfig, logger *logging.Logger) *WebhookPublisher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &WebhookPublisher{
		client: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		url:            strings.TrimSpace(cfg.URL),
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type sessionUpdatedPayload struct {
	PeladaID  string `json:"peladaId"`
	SeasonID  string `json:"temporadaId"`
	Change    string `json:"alteracao"`
	Timestamp string `json:"timestamp"`
}

func (p *WebhookPublisher) SessionUpdated(ctx context.Context, peladaID, seasonID, change string) error {
	if p.url == "" {
		return nil
	}
	if p.circuitEnabled {
		if err := p.breaker.Allow(); err != nil {
			p.logger.WarnContext(ctx, "webhook circuit breaker rejected request", "state", p.breaker.State())
			return fmt.Errorf("webhook is temporarily unavailable: %w", err)
		}
	}

	body, err := sonic.Marshal(sessionUpdatedPayload{
		PeladaID:  peladaID,
		SeasonID:  seasonID,
		Change:    change,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return crerr.Wrap(err, "marshal webhook payload")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(p.url)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}
	req.SetBody(body)

	p.logger.DebugContext(ctx, "webhook publish request",
		"url", p.url,
		"preview", requestPreview(p.url, body, p.token != ""),
	)

	if err := p.client.DoTimeout(req, resp, p.timeout); err != nil {
		callErr := fmt.Errorf("%w: post session update url=%s: %v", errWebhookTransient, p.url, err)
		p.recordCircuitResult(callErr)
		return callErr
	}

	status := resp.StatusCode()
	if status/100 != 2 {
		raw := strings.TrimSpace(string(resp.Body()))
		if isRetryableStatus(status) {
			callErr := fmt.Errorf("%w: post session update status=%d url=%s body=%s", errWebhookTransient, status, p.url, raw)
			p.recordCircuitResult(callErr)
			return callErr
		}

		callErr := fmt.Errorf("post session update status=%d url=%s body=%s", status, p.url, raw)
		p.recordCircuitResult(callErr)
		return callErr
	}

	p.logger.DebugContext(ctx, "webhook published", "pelada_id", peladaID, "change", change)
	p.recordCircuitResult(nil)
	return nil
}

func requestPreview(url string, body []byte, withToken bool) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("POST ")
	_, _ = buf.WriteString(url)
	if withToken {
		_, _ = buf.WriteString(" Authorization=***")
	}
	_, _ = buf.WriteString(" body=")
	if len(body) > 1024 {
		_, _ = buf.Write(body[:1024])
		_, _ = buf.WriteString("...(truncated)")
	} else {
		_, _ = buf.Write(body)
	}

	return buf.String()
}

func (p *WebhookPublisher) recordCircuitResult(err error) {
	if !p.circuitEnabled || p.breaker == nil {
		return
	}
	if err == nil {
		p.breaker.RecordSuccess()
		return
	}
	if stderrors.Is(err, errWebhookTransient) {
		p.breaker.RecordFailure()
		return
	}
	p.breaker.RecordSuccess()
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == fasthttp.StatusRequestTimeout ||
		statusCode == fasthttp.StatusTooManyRequests ||
		statusCode >= fasthttp.StatusInternalServerError
}
