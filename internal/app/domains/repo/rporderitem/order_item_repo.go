package rporderitem

import (
	"context"

	"mvmall/internal/app/domains/entity/etorder"
)

// OrderItemRepository 订单行项目仓储接口（只定义，不实现）
type OrderItemRepository interface {
	// Create 创建行项目
	Create(ctx context.Context, item *etorder.OrderItem) error

	// FindByStoreOrderID 查询子订单下的全部行项目，按创建顺序
	FindByStoreOrderID(ctx context.Context, storeOrderID string) ([]*etorder.OrderItem, error)

	// SumQuantityByStoreOrderIDs 批量统计各子订单的商品件数（数量之和）
	SumQuantityByStoreOrderIDs(ctx context.Context, storeOrderIDs []string) (map[string]int64, error)
}
