package redis

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/atomic"
)

// OrderAnnouncer 基于 Redis Pub/Sub 的下单事件通知。
// 履约/物流侧订阅该频道获知新订单，通知失败不影响下单链路。
type OrderAnnouncer struct {
	rdb     *redis.Client
	channel string
	dropped atomic.Int64 // 发布失败的事件数，供巡检观测
}

// orderCreatedEvent 下单完成事件
type orderCreatedEvent struct {
	OrderNumber string `json:"order_number"`
	TotalAmount int64  `json:"total_amount"`
}

// NewOrderAnnouncer 创建通知客户端，支持密码认证
func NewOrderAnnouncer(addr, password string, db int, channel string) (*OrderAnnouncer, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &OrderAnnouncer{rdb: rdb, channel: channel}, nil
}

// AnnounceOrderCreated 向频道发布下单完成事件
func (c *OrderAnnouncer) AnnounceOrderCreated(ctx context.Context, orderNumber string, totalAmount int64) error {
	payload, err := json.Marshal(orderCreatedEvent{
		OrderNumber: orderNumber,
		TotalAmount: totalAmount,
	})
	if err != nil {
		return err
	}

	if err := c.rdb.Publish(ctx, c.channel, string(payload)).Err(); err != nil {
		c.dropped.Inc()
		return err
	}
	return nil
}

// DroppedCount 返回累计发布失败的事件数
func (c *OrderAnnouncer) DroppedCount() int64 {
	return c.dropped.Load()
}

// Close 关闭连接
func (c *OrderAnnouncer) Close() error {
	return c.rdb.Close()
}
