package entity

import "time"

// Store 店铺实体（卖家主数据，本服务只读）
type Store struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name string `gorm:"column:name;type:varchar(255);not null"`

	// 佣金费率（基点，1000 = 10.00%）
	CommissionRateBp int64 `gorm:"column:commission_rate_bp;not null;default:0"`
	// 是否允许售卖（审核通过且未被封禁）
	Sellable bool `gorm:"column:sellable;not null;default:false"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (Store) TableName() string {
	return "stores"
}
