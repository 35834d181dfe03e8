package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"steakhouse/storefront/internal/config"
	"steakhouse/storefront/internal/model"
	"steakhouse/storefront/internal/service"
)

func newOrderClient(t *testing.T, url string, retries int) service.OrderSubmitter {
	t.Helper()
	client, err := service.NewOrderClient(config.OrderAPIConfig{
		URL:       url,
		Timeout:   2 * time.Second,
		Retries:   retries,
		RetryWait: time.Millisecond,
	}, nil, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestOrderClient_Submit(t *testing.T) {
	ctx := context.Background()
	order := &model.Order{OrderNumber: "SS-1", CustomerName: "Ada", Items: "[]", Total: 5}

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "sess-1", r.Header.Get("X-Session-ID"))
			assert.True(t, strings.HasPrefix(r.Header.Get("X-Request-ID"), "req-"))

			var body struct {
				Action    string      `json:"action"`
				OrderData model.Order `json:"orderData"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "saveOrder", body.Action)
			assert.Equal(t, "SS-1", body.OrderData.OrderNumber)

			_, _ = w.Write([]byte(`{"success":true,"message":"Order saved","orderNumber":"SS-1"}`))
		}))
		defer srv.Close()

		resp, err := newOrderClient(t, srv.URL, 2).Submit(ctx, "sess-1", order)
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "Order saved", resp.Message)
	})

	t.Run("retries server errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) < 3 {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(`{"success":true,"message":"ok"}`))
		}))
		defer srv.Close()

		_, err := newOrderClient(t, srv.URL, 2).Submit(ctx, "sess-1", order)
		require.NoError(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("gives up after retries", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := newOrderClient(t, srv.URL, 2).Submit(ctx, "sess-1", order)
		assert.ErrorIs(t, err, service.ErrOrderUnavailable)
		assert.Equal(t, int32(3), calls.Load())
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			http.Error(w, "bad order", http.StatusBadRequest)
		}))
		defer srv.Close()

		_, err := newOrderClient(t, srv.URL, 2).Submit(ctx, "sess-1", order)
		assert.ErrorIs(t, err, service.ErrOrderRejected)
		assert.Contains(t, err.Error(), "bad order")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("timed out request is not resent", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte(`{"success":true}`))
		}))
		defer srv.Close()

		client, err := service.NewOrderClient(config.OrderAPIConfig{
			URL:       srv.URL,
			Timeout:   20 * time.Millisecond,
			Retries:   2,
			RetryWait: time.Millisecond,
		}, nil, zap.NewNop())
		require.NoError(t, err)

		_, err = client.Submit(ctx, "sess-1", order)
		assert.ErrorIs(t, err, service.ErrOrderUnavailable)
		assert.Contains(t, err.Error(), "timed out")
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("api reported failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":false,"message":"sheet locked"}`))
		}))
		defer srv.Close()

		_, err := newOrderClient(t, srv.URL, 2).Submit(ctx, "sess-1", order)
		assert.ErrorIs(t, err, service.ErrOrderRejected)
		assert.Contains(t, err.Error(), "sheet locked")
	})

	t.Run("canceled context", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := newOrderClient(t, srv.URL, 2).Submit(cctx, "sess-1", order)
		assert.Error(t, err)
	})
}

func TestNewOrderClient_RequiresURL(t *testing.T) {
	_, err := service.NewOrderClient(config.OrderAPIConfig{}, nil, zap.NewNop())
	assert.Error(t, err)
}
