package lmstfy

import (
	"context"
)

// SettlementProducer 佣金结算任务投递。下单提交后把本单新建的佣金ID
// 投到结算队列，结算 worker 消费后逐条 MarkPaid。
type SettlementProducer struct {
	client *Client
	queue  string
}

// SettlementJob 结算任务载荷
type SettlementJob struct {
	OrderNumber   string   `json:"order_number"`
	CommissionIDs []string `json:"commission_ids"`
}

// NewSettlementProducer 创建结算任务投递器
func NewSettlementProducer(client *Client, queue string) *SettlementProducer {
	return &SettlementProducer{client: client, queue: queue}
}

// EnqueueSettlement 投递一笔订单的佣金结算任务
func (p *SettlementProducer) EnqueueSettlement(ctx context.Context, orderNumber string, commissionIDs []string) error {
	return p.client.Publish(ctx, p.queue, SettlementJob{
		OrderNumber:   orderNumber,
		CommissionIDs: commissionIDs,
	})
}
