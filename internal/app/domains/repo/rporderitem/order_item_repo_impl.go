package rporderitem

import (
	"context"

	"gorm.io/gorm"

	"mvmall/common/entity"
	"mvmall/internal/app/domains/entity/etorder"
	"mvmall/internal/app/infra/persistence/mysql"
)

// OrderItemRepositoryImpl 订单行项目仓储实现（MySQL）
type OrderItemRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderItemRepository 创建行项目仓储实例
func NewOrderItemRepository(db *gorm.DB) OrderItemRepository {
	return &OrderItemRepositoryImpl{db: db}
}

// Create 创建行项目
func (r *OrderItemRepositoryImpl) Create(ctx context.Context, item *etorder.OrderItem) error {
	po := &entity.OrderItem{
		ID:           item.ID,
		StoreOrderID: item.StoreOrderID,
		ProductID:    item.ProductID,
		Quantity:     item.Quantity,
		UnitPrice:    item.UnitPrice,
		TotalPrice:   item.TotalPrice,
		CreatedAt:    item.CreatedAt,
	}
	return mysql.DB(ctx, r.db).Create(po).Error
}

// FindByStoreOrderID 查询子订单下的全部行项目
func (r *OrderItemRepositoryImpl) FindByStoreOrderID(ctx context.Context, storeOrderID string) ([]*etorder.OrderItem, error) {
	var pos []entity.OrderItem
	err := mysql.DB(ctx, r.db).
		Where("store_order_id = ?", storeOrderID).
		Order("created_at ASC").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*etorder.OrderItem, 0, len(pos))
	for i := range pos {
		items = append(items, &etorder.OrderItem{
			ID:           pos[i].ID,
			StoreOrderID: pos[i].StoreOrderID,
			ProductID:    pos[i].ProductID,
			Quantity:     pos[i].Quantity,
			UnitPrice:    pos[i].UnitPrice,
			TotalPrice:   pos[i].TotalPrice,
			CreatedAt:    pos[i].CreatedAt,
		})
	}
	return items, nil
}

// SumQuantityByStoreOrderIDs 批量统计各子订单的商品件数，聚合在数据库侧完成
func (r *OrderItemRepositoryImpl) SumQuantityByStoreOrderIDs(ctx context.Context, storeOrderIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(storeOrderIDs))
	if len(storeOrderIDs) == 0 {
		return counts, nil
	}

	type row struct {
		StoreOrderID string
		ItemCount    int64
	}

	var rows []row
	err := mysql.DB(ctx, r.db).
		Model(&entity.OrderItem{}).
		Select("store_order_id, COALESCE(SUM(quantity), 0) AS item_count").
		Where("store_order_id IN ?", storeOrderIDs).
		Group("store_order_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, v := range rows {
		counts[v.StoreOrderID] = v.ItemCount
	}
	return counts, nil
}
