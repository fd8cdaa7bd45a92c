package rpcommission

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"mvmall/common/entity"
	"mvmall/internal/app/domains/entity/etcommission"
	"mvmall/internal/app/infra/persistence/mysql"
)

// CommissionRepositoryImpl 佣金仓储实现（MySQL）
type CommissionRepositoryImpl struct {
	db *gorm.DB
}

// NewCommissionRepository 创建佣金仓储实例
func NewCommissionRepository(db *gorm.DB) CommissionRepository {
	return &CommissionRepositoryImpl{db: db}
}

// Create 创建佣金记录
func (r *CommissionRepositoryImpl) Create(ctx context.Context, commission *etcommission.Commission) error {
	po := &entity.Commission{
		ID:               commission.ID,
		OrderItemID:      commission.OrderItemID,
		StoreID:          commission.StoreID,
		CommissionRateBp: commission.CommissionRateBp,
		CommissionAmount: commission.CommissionAmount,
		Status:           string(commission.Status),
		PaidAt:           commission.PaidAt,
		CreatedAt:        commission.CreatedAt,
		UpdatedAt:        commission.UpdatedAt,
	}
	return mysql.DB(ctx, r.db).Create(po).Error
}

// FindByOrderItemID 查询行项目对应的佣金
func (r *CommissionRepositoryImpl) FindByOrderItemID(ctx context.Context, orderItemID string) (*etcommission.Commission, error) {
	var po entity.Commission
	err := mysql.DB(ctx, r.db).Where("order_item_id = ?", orderItemID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &etcommission.Commission{
		ID:               po.ID,
		OrderItemID:      po.OrderItemID,
		StoreID:          po.StoreID,
		CommissionRateBp: po.CommissionRateBp,
		CommissionAmount: po.CommissionAmount,
		Status:           etcommission.CommissionStatus(po.Status),
		PaidAt:           po.PaidAt,
		CreatedAt:        po.CreatedAt,
		UpdatedAt:        po.UpdatedAt,
	}, nil
}

// MarkPaid 标记佣金已结算
func (r *CommissionRepositoryImpl) MarkPaid(ctx context.Context, commissionID string, paidAt time.Time) error {
	result := mysql.DB(ctx, r.db).
		Model(&entity.Commission{}).
		Where("id = ? AND status = ?", commissionID, entity.CommissionStatusPending).
		Updates(map[string]interface{}{
			"status":     entity.CommissionStatusPaid,
			"paid_at":    paidAt,
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
