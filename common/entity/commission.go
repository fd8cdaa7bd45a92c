package entity

import "time"

// Commission 平台佣金实体（每个订单行项目一条）
type Commission struct {
	ID          string `gorm:"column:id;primaryKey;type:varchar(64)"`
	OrderItemID string `gorm:"column:order_item_id;type:varchar(64);not null;uniqueIndex:uk_order_item"`
	StoreID     int64  `gorm:"column:store_id;not null;index:idx_commission_store"`

	// 下单时刻快照的佣金费率（基点，1000 = 10.00%）
	CommissionRateBp int64 `gorm:"column:commission_rate_bp;not null"`
	// 佣金金额（分）
	CommissionAmount int64 `gorm:"column:commission_amount;not null"`

	Status string     `gorm:"column:status;type:varchar(16);not null;default:'PENDING'"`
	PaidAt *time.Time `gorm:"column:paid_at"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Commission) TableName() string {
	return "commissions"
}

// 佣金状态常量
const (
	CommissionStatusPending = "PENDING"
	CommissionStatusPaid    = "PAID"
)
