package rporder

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

// ParentOrderRepositoryImpl 主订单仓储实现（MySQL）
type ParentOrderRepositoryImpl struct {
	db *gorm.DB
}

// NewParentOrderRepository 创建主订单仓储实例
func NewParentOrderRepository(db *gorm.DB) ParentOrderRepository {
	return &ParentOrderRepositoryImpl{db: db}
}

// Create 创建主订单，将领域对象转换为 GORM 模型后存储
func (r *ParentOrderRepositoryImpl) Create(ctx context.Context, order *etorder.ParentOrder, rawRequest []byte) error {
	po := r.toGormModel(order)
	po.RawRequest = rawRequest
	return mysql.DB(ctx, r.db).Create(po).Error
}

// UpdateTotalAmount 回填主订单总额
func (r *ParentOrderRepositoryImpl) UpdateTotalAmount(ctx context.Context, orderID string, totalAmount int64) error {
	return mysql.DB(ctx, r.db).
		Model(&entity.ParentOrder{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"total_amount": totalAmount,
			"updated_at":   time.Now(),
		}).Error
}

// UpdateStatus 更新主订单状态
func (r *ParentOrderRepositoryImpl) UpdateStatus(ctx context.Context, orderID string, status etorder.OrderStatus) error {
	result := mysql.DB(ctx, r.db).
		Model(&entity.ParentOrder{}).
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

// FindByID 根据ID查询主订单
func (r *ParentOrderRepositoryImpl) FindByID(ctx context.Context, orderID string) (*etorder.ParentOrder, error) {
	var po entity.ParentOrder
	err := mysql.DB(ctx, r.db).Where("id = ?", orderID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomainModel(&po), nil
}

// FindByOrderNumber 根据订单号查询主订单
func (r *ParentOrderRepositoryImpl) FindByOrderNumber(ctx context.Context, orderNumber string) (*etorder.ParentOrder, error) {
	var po entity.ParentOrder
	err := mysql.DB(ctx, r.db).Where("order_number = ?", orderNumber).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomainModel(&po), nil
}

// FindByCustomerID 分页查询买家的主订单列表
func (r *ParentOrderRepositoryImpl) FindByCustomerID(ctx context.Context, customerID int64, page etprimitive.Pagination) ([]*etorder.ParentOrder, int64, error) {
	page = page.Normalize()

	var total int64
	var pos []entity.ParentOrder

	query := mysql.DB(ctx, r.db).Model(&entity.ParentOrder{}).Where("customer_id = ?", customerID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(page.Offset).Limit(page.Limit).Order("created_at DESC").Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*etorder.ParentOrder, 0, len(pos))
	for i := range pos {
		orders = append(orders, r.toDomainModel(&pos[i]))
	}

	return orders, total, nil
}

// Count 主订单总数
func (r *ParentOrderRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var total int64
	err := mysql.DB(ctx, r.db).Model(&entity.ParentOrder{}).Count(&total).Error
	return total, err
}

// CountByStatus 按状态统计主订单数量
func (r *ParentOrderRepositoryImpl) CountByStatus(ctx context.Context, status etorder.OrderStatus) (int64, error) {
	var total int64
	err := mysql.DB(ctx, r.db).
		Model(&entity.ParentOrder{}).
		Where("status = ?", string(status)).
		Count(&total).Error
	return total, err
}

// SumAmountByStatus 按状态汇总主订单总额，聚合在数据库侧完成
func (r *ParentOrderRepositoryImpl) SumAmountByStatus(ctx context.Context, status etorder.OrderStatus) (int64, error) {
	var sum int64
	err := mysql.DB(ctx, r.db).
		Model(&entity.ParentOrder{}).
		Where("status = ?", string(status)).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&sum).Error
	return sum, err
}

// toGormModel 领域对象转换为 GORM 模型
func (r *ParentOrderRepositoryImpl) toGormModel(order *etorder.ParentOrder) *entity.ParentOrder {
	return &entity.ParentOrder{
		ID:          order.ID,
		CustomerID:  order.CustomerID,
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount,
		Currency:    order.Currency,
		Status:      string(order.Status),
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}
}

// toDomainModel GORM 模型转换为领域对象
func (r *ParentOrderRepositoryImpl) toDomainModel(po *entity.ParentOrder) *etorder.ParentOrder {
	return &etorder.ParentOrder{
		ID:          po.ID,
		CustomerID:  po.CustomerID,
		OrderNumber: po.OrderNumber,
		TotalAmount: po.TotalAmount,
		Currency:    po.Currency,
		Status:      etorder.OrderStatus(po.Status),
		CreatedAt:   po.CreatedAt,
		UpdatedAt:   po.UpdatedAt,
	}
}
