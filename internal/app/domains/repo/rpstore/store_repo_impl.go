package rpstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mvmall/common/entity"
	"mvmall/internal/app/domains/entity/etstore"
	"mvmall/internal/app/infra/persistence/mysql"
)

// StoreLookupImpl 店铺只读查询实现（MySQL）
type StoreLookupImpl struct {
	db *gorm.DB
}

// NewStoreLookup 创建店铺查询实例
func NewStoreLookup(db *gorm.DB) StoreLookup {
	return &StoreLookupImpl{db: db}
}

// FindByID 根据ID查询店铺
func (r *StoreLookupImpl) FindByID(ctx context.Context, storeID int64) (*etstore.Store, error) {
	var po entity.Store
	err := mysql.DB(ctx, r.db).Where("id = ?", storeID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &etstore.Store{
		ID:               po.ID,
		Name:             po.Name,
		CommissionRateBp: po.CommissionRateBp,
		Sellable:         po.Sellable,
		CreatedAt:        po.CreatedAt,
	}, nil
}
