package rpstoreorder

import (
	"context"

	"mvmall/internal/app/domains/entity/etorder"
	"mvmall/internal/app/domains/entity/etprimitive"
)

// StoreOrderRepository 店铺子订单仓储接口（只定义，不实现）
type StoreOrderRepository interface {
	// Create 创建子订单
	Create(ctx context.Context, order *etorder.StoreOrder) error

	// UpdateTotalAmount 回填子订单总额
	UpdateTotalAmount(ctx context.Context, orderID string, totalAmount int64) error

	// UpdateStatus 更新子订单状态
	UpdateStatus(ctx context.Context, orderID string, status etorder.OrderStatus) error

	// FindByID 根据ID查询，未找到返回 nil, nil
	FindByID(ctx context.Context, orderID string) (*etorder.StoreOrder, error)

	// FindByParentOrderID 查询主订单下的全部子订单，按创建顺序
	FindByParentOrderID(ctx context.Context, parentOrderID string) ([]*etorder.StoreOrder, error)

	// FindByStoreID 分页查询店铺的子订单，按创建时间倒序
	FindByStoreID(ctx context.Context, storeID int64, page etprimitive.Pagination) ([]*etorder.StoreOrder, int64, error)
}
