package svquery

import (
	"context"
	"fmt"

	"mvmall/internal/app/domains/entity/etorder"
	"mvmall/internal/app/domains/entity/etprimitive"
	"mvmall/internal/app/domains/entity/etstore"
	"mvmall/internal/app/domains/repo/rporder"
	"mvmall/internal/app/domains/repo/rporderitem"
	"mvmall/internal/app/domains/repo/rpstore"
	"mvmall/internal/app/domains/repo/rpstoreorder"
	"mvmall/internal/app/pkg/errorx"
)

// StoreOrderDetail 子订单明细（含店铺快照）
type StoreOrderDetail struct {
	StoreOrder *etorder.StoreOrder
	Items      []*etorder.OrderItem
	Store      *etstore.Store
}

// OrderDetail 主订单完整视图
type OrderDetail struct {
	ParentOrder *etorder.ParentOrder
	StoreOrders []StoreOrderDetail
	GrandTotal  int64
	TotalStores int
}

// StoreOrderListing 店铺侧列表项，带派生的商品件数
type StoreOrderListing struct {
	StoreOrder *etorder.StoreOrder
	ItemCount  int64
}

// OrderStats 订单统计
type OrderStats struct {
	TotalOrders     int64 // 主订单总数
	TotalRevenue    int64 // 已完成主订单的总额之和（分）
	PendingOrders   int64
	CompletedOrders int64
	CancelledOrders int64
}

// QueryService 订单查询/报表服务（读侧）。
// 查询路径约定：未找到返回 nil, nil，不作为错误；
// 状态更新按迁移表校验后直接替换。
type QueryService struct {
	parentRepo     rporder.ParentOrderRepository
	storeOrderRepo rpstoreorder.StoreOrderRepository
	itemRepo       rporderitem.OrderItemRepository
	storeLookup    rpstore.StoreLookup
}

// NewQueryService 创建查询服务实例
func NewQueryService(
	parentRepo rporder.ParentOrderRepository,
	storeOrderRepo rpstoreorder.StoreOrderRepository,
	itemRepo rporderitem.OrderItemRepository,
	storeLookup rpstore.StoreLookup,
) *QueryService {
	return &QueryService{
		parentRepo:     parentRepo,
		storeOrderRepo: storeOrderRepo,
		itemRepo:       itemRepo,
		storeLookup:    storeLookup,
	}
}

// FindOrderByID 根据ID查询主订单完整视图，未找到返回 nil, nil
func (s *QueryService) FindOrderByID(ctx context.Context, orderID string) (*OrderDetail, error) {
	parent, err := s.parentRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("find parent order failed: %w", err)
	}
	if parent == nil {
		return nil, nil
	}
	return s.assembleDetail(ctx, parent)
}

// FindOrderByNumber 根据订单号查询主订单完整视图，未找到返回 nil, nil
func (s *QueryService) FindOrderByNumber(ctx context.Context, orderNumber string) (*OrderDetail, error) {
	parent, err := s.parentRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("find parent order failed: %w", err)
	}
	if parent == nil {
		return nil, nil
	}
	return s.assembleDetail(ctx, parent)
}

// FindOrdersByCustomer 分页查询买家的主订单列表
func (s *QueryService) FindOrdersByCustomer(ctx context.Context, customerID int64, page etprimitive.Pagination) ([]*etorder.ParentOrder, int64, error) {
	return s.parentRepo.FindByCustomerID(ctx, customerID, page)
}

// FindStoreOrdersByStore 分页查询店铺的子订单列表，每条带商品件数
func (s *QueryService) FindStoreOrdersByStore(ctx context.Context, storeID int64, page etprimitive.Pagination) ([]StoreOrderListing, int64, error) {
	orders, total, err := s.storeOrderRepo.FindByStoreID(ctx, storeID, page)
	if err != nil {
		return nil, 0, fmt.Errorf("find store orders failed: %w", err)
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	counts, err := s.itemRepo.SumQuantityByStoreOrderIDs(ctx, ids)
	if err != nil {
		return nil, 0, fmt.Errorf("sum item quantities failed: %w", err)
	}

	listings := make([]StoreOrderListing, 0, len(orders))
	for _, o := range orders {
		listings = append(listings, StoreOrderListing{
			StoreOrder: o,
			ItemCount:  counts[o.ID],
		})
	}
	return listings, total, nil
}

// UpdateParentOrderStatus 更新主订单状态，按迁移表校验
func (s *QueryService) UpdateParentOrderStatus(ctx context.Context, orderID string, status etorder.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("status %q: %w", status, errorx.ErrInvalidOrderStatus)
	}

	parent, err := s.parentRepo.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("find parent order failed: %w", err)
	}
	if parent == nil {
		return errorx.ErrOrderNotFound
	}
	if !parent.Status.CanTransitionTo(status) {
		return fmt.Errorf("%s -> %s: %w", parent.Status, status, errorx.ErrInvalidTransition)
	}

	return s.parentRepo.UpdateStatus(ctx, orderID, status)
}

// UpdateStoreOrderStatus 更新子订单状态，按迁移表校验
func (s *QueryService) UpdateStoreOrderStatus(ctx context.Context, orderID string, status etorder.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("status %q: %w", status, errorx.ErrInvalidOrderStatus)
	}

	order, err := s.storeOrderRepo.FindByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("find store order failed: %w", err)
	}
	if order == nil {
		return errorx.ErrOrderNotFound
	}
	if !order.Status.CanTransitionTo(status) {
		return fmt.Errorf("%s -> %s: %w", order.Status, status, errorx.ErrInvalidTransition)
	}

	return s.storeOrderRepo.UpdateStatus(ctx, orderID, status)
}

// GetOrderStats 订单统计，聚合全部由数据库侧计算
func (s *QueryService) GetOrderStats(ctx context.Context) (*OrderStats, error) {
	total, err := s.parentRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders failed: %w", err)
	}

	revenue, err := s.parentRepo.SumAmountByStatus(ctx, etorder.OrderStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("sum completed revenue failed: %w", err)
	}

	pending, err := s.parentRepo.CountByStatus(ctx, etorder.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("count pending orders failed: %w", err)
	}
	completed, err := s.parentRepo.CountByStatus(ctx, etorder.OrderStatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("count completed orders failed: %w", err)
	}
	cancelled, err := s.parentRepo.CountByStatus(ctx, etorder.OrderStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("count cancelled orders failed: %w", err)
	}

	return &OrderStats{
		TotalOrders:     total,
		TotalRevenue:    revenue,
		PendingOrders:   pending,
		CompletedOrders: completed,
		CancelledOrders: cancelled,
	}, nil
}

// assembleDetail 组装主订单完整视图
func (s *QueryService) assembleDetail(ctx context.Context, parent *etorder.ParentOrder) (*OrderDetail, error) {
	storeOrders, err := s.storeOrderRepo.FindByParentOrderID(ctx, parent.ID)
	if err != nil {
		return nil, fmt.Errorf("find store orders failed: %w", err)
	}

	details := make([]StoreOrderDetail, 0, len(storeOrders))
	for _, so := range storeOrders {
		items, err := s.itemRepo.FindByStoreOrderID(ctx, so.ID)
		if err != nil {
			return nil, fmt.Errorf("find order items failed: %w", err)
		}

		// 店铺可能已下架，查不到时保留 nil 快照
		store, err := s.storeLookup.FindByID(ctx, so.StoreID)
		if err != nil {
			return nil, fmt.Errorf("lookup store %d failed: %w", so.StoreID, err)
		}

		details = append(details, StoreOrderDetail{
			StoreOrder: so,
			Items:      items,
			Store:      store,
		})
	}

	return &OrderDetail{
		ParentOrder: parent,
		StoreOrders: details,
		GrandTotal:  parent.TotalAmount,
		TotalStores: len(details),
	}, nil
}
