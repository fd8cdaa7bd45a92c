package entity

import "time"

// Product 商品实体（商品主数据，本服务只读）
type Product struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;type:varchar(255);not null"`

	// 归属店铺，0 表示尚未挂到任何店铺
	StoreID int64 `gorm:"column:store_id;index:idx_store"`
	// 售价（分）
	PriceCents int64  `gorm:"column:price_cents;not null"`
	Currency   string `gorm:"column:currency;type:varchar(8);not null;default:'USD'"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
