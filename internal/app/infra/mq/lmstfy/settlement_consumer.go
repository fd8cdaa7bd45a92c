package lmstfy

import (
	"context"
	"encoding/json"
	"time"

	"mvmall/internal/app/pkg/logger"
)

const (
	// Consume 长轮询等待时长（秒）
	consumeTimeout = 3
	// 消息处理超时，超时未 Ack 将被队列重投（秒）
	consumeTTR = 30
)

// SettlementHandler 结算任务处理方，由领域服务实现
type SettlementHandler interface {
	SettleOrder(ctx context.Context, orderNumber string, commissionIDs []string) error
}

// SettlementConsumer 佣金结算任务消费者。
// 从结算队列拉取任务交给处理方，处理成功后确认；
// 处理失败不确认，依赖队列按 TTR 重投。
type SettlementConsumer struct {
	client  *Client
	queue   string
	handler SettlementHandler
	log     logger.Logger
}

// NewSettlementConsumer 创建结算任务消费者
func NewSettlementConsumer(client *Client, queue string, handler SettlementHandler, log logger.Logger) *SettlementConsumer {
	return &SettlementConsumer{
		client:  client,
		queue:   queue,
		handler: handler,
		log:     log,
	}
}

// Run 阻塞消费循环，ctx 取消后退出
func (c *SettlementConsumer) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		msg, err := c.client.Consume(ctx, c.queue, consumeTimeout, consumeTTR)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.log.Errorf(ctx, "consume settlement job failed: %v", err)
			time.Sleep(time.Second)
			continue
		}
		if msg == nil {
			continue
		}

		var job SettlementJob
		if err := json.Unmarshal(msg.Data, &job); err != nil {
			// 无法解析的消息直接确认，避免反复重投
			c.log.Errorf(ctx, "decode settlement job failed: job_id=%s, error=%v", msg.JobID, err)
			if err := c.client.Ack(ctx, c.queue, msg.JobID); err != nil {
				c.log.Warnf(ctx, "ack settlement job failed: job_id=%s, error=%v", msg.JobID, err)
			}
			continue
		}

		jobCtx := logger.WithOrderNumber(ctx, job.OrderNumber)
		if err := c.handler.SettleOrder(jobCtx, job.OrderNumber, job.CommissionIDs); err != nil {
			c.log.Errorf(jobCtx, "settle commissions failed: error=%v", err)
			continue
		}

		if err := c.client.Ack(jobCtx, c.queue, msg.JobID); err != nil {
			c.log.Warnf(jobCtx, "ack settlement job failed: job_id=%s, error=%v", msg.JobID, err)
		}
	}
}
