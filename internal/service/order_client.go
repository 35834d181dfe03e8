package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"steakhouse/storefront/internal/config"
	"steakhouse/storefront/internal/model"
	"steakhouse/storefront/pkg/crypto"
)

// OrderSubmitter forwards placed orders to the remote order endpoint.
type OrderSubmitter interface {
	Submit(ctx context.Context, sessionID string, order *model.Order) (*model.APIResponse, error)
}

type orderClient struct {
	cfg    config.OrderAPIConfig
	client *http.Client
	logger *zap.Logger
}

type saveOrderRequest struct {
	Action    string       `json:"action"`
	OrderData *model.Order `json:"orderData"`
}

// retryableError marks failures worth another attempt: transport errors other than
// timeouts, and 5xx replies.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

func NewOrderClient(cfg config.OrderAPIConfig, client *http.Client, logger *zap.Logger) (OrderSubmitter, error) {
	if strings.TrimSpace(cfg.URL) == "" {
		return nil, fmt.Errorf("order api url is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if client == nil {
		client = &http.Client{}
	}
	return &orderClient{cfg: cfg, client: client, logger: logger}, nil
}

func (c *orderClient) Submit(ctx context.Context, sessionID string, order *model.Order) (*model.APIResponse, error) {
	body, err := json.Marshal(saveOrderRequest{Action: "saveOrder", OrderData: order})
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.Retries; attempt++ {
		if attempt > 0 {
			c.logger.Warn("retrying order submission",
				zap.String("order_number", order.OrderNumber),
				zap.Int("retries_left", c.cfg.Retries-attempt+1),
				zap.Error(lastErr),
			)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.cfg.RetryWait):
			}
		}

		resp, err := c.post(ctx, sessionID, body)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		var retryable *retryableError
		if !errors.As(err, &retryable) || ctx.Err() != nil {
			break
		}
	}

	c.logger.Error("order submission failed", zap.String("order_number", order.OrderNumber), zap.Error(lastErr))
	return nil, lastErr
}

func (c *orderClient) post(ctx context.Context, sessionID string, body []byte) (*model.APIResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	requestID, err := newRequestID()
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := c.client.Do(req)
	if err != nil {
		// The server may already have accepted a timed-out POST.
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: request timed out", ErrOrderUnavailable)
		}
		return nil, &retryableError{err: fmt.Errorf("%w: %v", ErrOrderUnavailable, err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, &retryableError{err: fmt.Errorf("%w: read response: %v", ErrOrderUnavailable, err)}
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, &retryableError{err: fmt.Errorf("%w: server error %d", ErrOrderUnavailable, resp.StatusCode)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP error %d: %s", ErrOrderRejected, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var result model.APIResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: undecodable response: %v", ErrOrderRejected, err)
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "the order service reported a failure"
		}
		return nil, fmt.Errorf("%w: %s", ErrOrderRejected, msg)
	}
	return &result, nil
}

func newRequestID() (string, error) {
	suffix, err := crypto.GenerateRandomString(6)
	if err != nil {
		return "", err
	}
	return "req-" + strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + suffix, nil
}
