package lmstfy

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mvmall/internal/app/pkg/logger"
)

// recordingHandler 记录收到的结算任务（测试用）
type recordingHandler struct {
	mu     sync.Mutex
	orders []string
	ids    [][]string
}

func (h *recordingHandler) SettleOrder(ctx context.Context, orderNumber string, commissionIDs []string) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.orders = append(h.orders, orderNumber)
	h.ids = append(h.ids, commissionIDs)
	return nil
}

// 消费一条结算任务：处理后确认，随后队列空转直到退出
func TestSettlementConsumerHandlesAndAcks(t *testing.T) {
	payload, err := json.Marshal(SettlementJob{
		OrderNumber:   "PO1001",
		CommissionIDs: []string{"c-1", "c-2"},
	})
	require.NoError(t, err)

	var mu sync.Mutex
	delivered := false
	acked := make(chan string, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			mu.Lock()
			already := delivered
			delivered = true
			mu.Unlock()
			if already {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_ = json.NewEncoder(w).Encode(map[string]string{
				"job_id": "job-1",
				"data":   base64.StdEncoding.EncodeToString(payload),
			})
		case http.MethodDelete:
			acked <- r.URL.Path
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	handler := &recordingHandler{}
	consumer := NewSettlementConsumer(NewClient(srv.URL, "test", ""), "settle", handler, logger.NopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- consumer.Run(ctx) }()

	select {
	case path := <-acked:
		assert.Contains(t, path, "job-1")
	case <-time.After(5 * time.Second):
		t.Fatal("settlement job was not acked")
	}
	cancel()

	require.ErrorIs(t, <-done, context.Canceled)

	handler.mu.Lock()
	defer handler.mu.Unlock()
	require.Len(t, handler.orders, 1)
	assert.Equal(t, "PO1001", handler.orders[0])
	assert.Equal(t, []string{"c-1", "c-2"}, handler.ids[0])
}
