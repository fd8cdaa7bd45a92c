package rpproduct

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"mvmall/common/entity"
	"mvmall/internal/app/domains/entity/etproduct"
	"mvmall/internal/app/infra/persistence/mysql"
)

// ProductLookupImpl 商品只读查询实现（MySQL）
type ProductLookupImpl struct {
	db *gorm.DB
}

// NewProductLookup 创建商品查询实例
func NewProductLookup(db *gorm.DB) ProductLookup {
	return &ProductLookupImpl{db: db}
}

// FindByID 根据ID查询商品
func (r *ProductLookupImpl) FindByID(ctx context.Context, productID int64) (*etproduct.Product, error) {
	var po entity.Product
	err := mysql.DB(ctx, r.db).Where("id = ?", productID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &etproduct.Product{
		ID:         po.ID,
		Name:       po.Name,
		StoreID:    po.StoreID,
		PriceCents: po.PriceCents,
		Currency:   po.Currency,
		CreatedAt:  po.CreatedAt,
	}, nil
}
