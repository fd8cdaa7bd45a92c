package rporder

import (
	"context"

	"mvmall/internal/app/domains/entity/etorder"
	"mvmall/internal/app/domains/entity/etprimitive"
)

// ParentOrderRepository 主订单仓储接口（只定义，不实现）
// 实现在 infra/persistence 层
type ParentOrderRepository interface {
	// Create 创建主订单
	Create(ctx context.Context, order *etorder.ParentOrder, rawRequest []byte) error

	// UpdateTotalAmount 回填主订单总额
	UpdateTotalAmount(ctx context.Context, orderID string, totalAmount int64) error

	// UpdateStatus 更新主订单状态
	UpdateStatus(ctx context.Context, orderID string, status etorder.OrderStatus) error

	// FindByID 根据ID查询，未找到返回 nil, nil
	FindByID(ctx context.Context, orderID string) (*etorder.ParentOrder, error)

	// FindByOrderNumber 根据订单号查询，未找到返回 nil, nil
	FindByOrderNumber(ctx context.Context, orderNumber string) (*etorder.ParentOrder, error)

	// FindByCustomerID 分页查询买家的主订单，按创建时间倒序
	FindByCustomerID(ctx context.Context, customerID int64, page etprimitive.Pagination) ([]*etorder.ParentOrder, int64, error)

	// Count 主订单总数
	Count(ctx context.Context) (int64, error)

	// CountByStatus 按状态统计主订单数量
	CountByStatus(ctx context.Context, status etorder.OrderStatus) (int64, error)

	// SumAmountByStatus 按状态汇总主订单总额（分）
	SumAmountByStatus(ctx context.Context, status etorder.OrderStatus) (int64, error)
}
