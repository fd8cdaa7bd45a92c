package entity

import (
	"time"

	"gorm.io/datatypes"
)

// ParentOrder 主订单实体（一次结算对应一条，聚合所有店铺子订单）
type ParentOrder struct {
	// 基础字段
	ID          string `gorm:"column:id;primaryKey;type:varchar(64)"`
	CustomerID  int64  `gorm:"column:customer_id;not null;index:idx_customer_status"`
	OrderNumber string `gorm:"column:order_number;type:varchar(64);not null;uniqueIndex:uk_order_number"`

	// 金额（最小货币单位，分）
	TotalAmount int64  `gorm:"column:total_amount;not null;default:0"`
	Currency    string `gorm:"column:currency;type:varchar(8);not null;default:'USD'"`

	// 状态
	Status string `gorm:"column:status;type:varchar(16);not null;default:'PENDING';index:idx_customer_status"`

	// 原始结算请求快照（用于审计和排查）
	RawRequest datatypes.JSON `gorm:"column:raw_request;type:json"`

	// 时间戳
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (ParentOrder) TableName() string {
	return "parent_orders"
}

// StoreOrder 店铺子订单实体（每个卖家一条，归属于一个主订单）
type StoreOrder struct {
	ID            string `gorm:"column:id;primaryKey;type:varchar(64)"`
	ParentOrderID string `gorm:"column:parent_order_id;type:varchar(64);not null;index:idx_parent_order"`
	CustomerID    int64  `gorm:"column:customer_id;not null"`
	StoreID       int64  `gorm:"column:store_id;not null;index:idx_store_status"`
	OrderNumber   string `gorm:"column:order_number;type:varchar(80);not null;uniqueIndex:uk_parent_store_number"`

	TotalAmount int64  `gorm:"column:total_amount;not null;default:0"`
	Currency    string `gorm:"column:currency;type:varchar(8);not null;default:'USD'"`
	Status      string `gorm:"column:status;type:varchar(16);not null;default:'PENDING';index:idx_store_status"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (StoreOrder) TableName() string {
	return "store_orders"
}

// OrderItem 订单行项目实体（归属于一个店铺子订单）
type OrderItem struct {
	ID           string `gorm:"column:id;primaryKey;type:varchar(64)"`
	StoreOrderID string `gorm:"column:store_order_id;type:varchar(64);not null;index:idx_store_order"`
	ProductID    int64  `gorm:"column:product_id;not null"`
	Quantity     int    `gorm:"column:quantity;not null"`

	// 单价/总价均为分
	UnitPrice  int64 `gorm:"column:unit_price;not null"`
	TotalPrice int64 `gorm:"column:total_price;not null"`

	CreatedAt time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}

// 订单状态常量
const (
	OrderStatusPending   = "PENDING"
	OrderStatusCompleted = "COMPLETED"
	OrderStatusCancelled = "CANCELLED"
)
