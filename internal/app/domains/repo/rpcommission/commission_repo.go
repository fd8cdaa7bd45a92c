package rpcommission

import (
	"context"
	"time"

	"mvmall/internal/app/domains/entity/etcommission"
)

// CommissionRepository 佣金仓储接口（只定义，不实现）
type CommissionRepository interface {
	// Create 创建佣金记录
	Create(ctx context.Context, commission *etcommission.Commission) error

	// FindByOrderItemID 查询行项目对应的佣金，未找到返回 nil, nil
	FindByOrderItemID(ctx context.Context, orderItemID string) (*etcommission.Commission, error)

	// MarkPaid 标记佣金已结算（结算消费侧调用）
	MarkPaid(ctx context.Context, commissionID string, paidAt time.Time) error
}
