package rpstoreorder

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"mvmall/common/entity"
	"mvmall/internal/app/domains/entity/etorder"
	"mvmall/internal/app/domains/entity/etprimitive"
	"mvmall/internal/app/infra/persistence/mysql"
)

// StoreOrderRepositoryImpl 店铺子订单仓储实现（MySQL）
type StoreOrderRepositoryImpl struct {
	db *gorm.DB
}

// NewStoreOrderRepository 创建子订单仓储实例
func NewStoreOrderRepository(db *gorm.DB) StoreOrderRepository {
	return &StoreOrderRepositoryImpl{db: db}
}

// Create 创建子订单
func (r *StoreOrderRepositoryImpl) Create(ctx context.Context, order *etorder.StoreOrder) error {
	return mysql.DB(ctx, r.db).Create(r.toGormModel(order)).Error
}

// UpdateTotalAmount 回填子订单总额
func (r *StoreOrderRepositoryImpl) UpdateTotalAmount(ctx context.Context, orderID string, totalAmount int64) error {
	return mysql.DB(ctx, r.db).
		Model(&entity.StoreOrder{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"total_amount": totalAmount,
			"updated_at":   time.Now(),
		}).Error
}

// UpdateStatus 更新子订单状态
func (r *StoreOrderRepositoryImpl) UpdateStatus(ctx context.Context, orderID string, status etorder.OrderStatus) error {
	result := mysql.DB(ctx, r.db).
		Model(&entity.StoreOrder{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID 根据ID查询子订单
func (r *StoreOrderRepositoryImpl) FindByID(ctx context.Context, orderID string) (*etorder.StoreOrder, error) {
	var po entity.StoreOrder
	err := mysql.DB(ctx, r.db).Where("id = ?", orderID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomainModel(&po), nil
}

// FindByParentOrderID 查询主订单下的全部子订单
func (r *StoreOrderRepositoryImpl) FindByParentOrderID(ctx context.Context, parentOrderID string) ([]*etorder.StoreOrder, error) {
	var pos []entity.StoreOrder
	err := mysql.DB(ctx, r.db).
		Where("parent_order_id = ?", parentOrderID).
		Order("created_at ASC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*etorder.StoreOrder, 0, len(pos))
	for i := range pos {
		orders = append(orders, r.toDomainModel(&pos[i]))
	}
	return orders, nil
}

// FindByStoreID 分页查询店铺的子订单列表
func (r *StoreOrderRepositoryImpl) FindByStoreID(ctx context.Context, storeID int64, page etprimitive.Pagination) ([]*etorder.StoreOrder, int64, error) {
	page = page.Normalize()

	var total int64
	var pos []entity.StoreOrder

	query := mysql.DB(ctx, r.db).Model(&entity.StoreOrder{}).Where("store_id = ?", storeID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(page.Offset).Limit(page.Limit).Order("created_at DESC").Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*etorder.StoreOrder, 0, len(pos))
	for i := range pos {
		orders = append(orders, r.toDomainModel(&pos[i]))
	}
	return orders, total, nil
}

// toGormModel 领域对象转换为 GORM 模型
func (r *StoreOrderRepositoryImpl) toGormModel(order *etorder.StoreOrder) *entity.StoreOrder {
	return &entity.StoreOrder{
		ID:            order.ID,
		ParentOrderID: order.ParentOrderID,
		CustomerID:    order.CustomerID,
		StoreID:       order.StoreID,
		OrderNumber:   order.OrderNumber,
		TotalAmount:   order.TotalAmount,
		Currency:      order.Currency,
		Status:        string(order.Status),
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

// toDomainModel GORM 模型转换为领域对象
func (r *StoreOrderRepositoryImpl) toDomainModel(po *entity.StoreOrder) *etorder.StoreOrder {
	return &etorder.StoreOrder{
		ID:            po.ID,
		ParentOrderID: po.ParentOrderID,
		CustomerID:    po.CustomerID,
		StoreID:       po.StoreID,
		OrderNumber:   po.OrderNumber,
		TotalAmount:   po.TotalAmount,
		Currency:      po.Currency,
		Status:        etorder.OrderStatus(po.Status),
		CreatedAt:     po.CreatedAt,
		UpdatedAt:     po.UpdatedAt,
	}
}
