package etorder

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidOrderID     = errors.New("order ID cannot be empty")
	ErrInvalidCustomerID  = errors.New("invalid customer ID")
	ErrInvalidOrderNumber = errors.New("order number cannot be empty")
	ErrInvalidStoreID     = errors.New("invalid store ID")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidUnitPrice   = errors.New("unit price cannot be negative")
)

// OrderStatus 订单状态
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// statusTransitions 状态迁移表：PENDING 可流转到终态，终态不可再流转
var statusTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// Valid 判断是否为合法状态值
func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransitionTo 判断当前状态能否流转到目标状态
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// ParentOrder 主订单聚合根（领域对象）
type ParentOrder struct {
	ID          string      // 主订单ID (UUID)
	CustomerID  int64       // 买家ID
	OrderNumber string      // 主订单号（全局唯一）
	TotalAmount int64       // 订单总额（分）
	Currency    string      // 币种
	Status      OrderStatus // 订单状态
	CreatedAt   time.Time   // 创建时间
	UpdatedAt   time.Time   // 更新时间
}

// StoreOrder 店铺子订单（领域对象）
type StoreOrder struct {
	ID            string      // 子订单ID (UUID)
	ParentOrderID string      // 归属主订单ID
	CustomerID    int64       // 买家ID
	StoreID       int64       // 店铺ID
	OrderNumber   string      // 子订单号（主订单内唯一）
	TotalAmount   int64       // 子订单总额（分）
	Currency      string      // 币种
	Status        OrderStatus // 订单状态
	CreatedAt     time.Time   // 创建时间
	UpdatedAt     time.Time   // 更新时间
}

// OrderItem 订单行项目（领域对象）
type OrderItem struct {
	ID           string    // 行项目ID (UUID)
	StoreOrderID string    // 归属子订单ID
	ProductID    int64     // 商品ID
	Quantity     int       // 购买数量
	UnitPrice    int64     // 单价（分）
	TotalPrice   int64     // 行总价（分），恒等于 UnitPrice * Quantity
	CreatedAt    time.Time // 创建时间
}

// NewParentOrder 创建主订单（工厂方法），总额从 0 起步，行项目落库后回填
func NewParentOrder(id string, customerID int64, orderNumber, currency string) (*ParentOrder, error) {
	if id == "" {
		return nil, ErrInvalidOrderID
	}
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	if orderNumber == "" {
		return nil, ErrInvalidOrderNumber
	}

	now := time.Now()
	return &ParentOrder{
		ID:          id,
		CustomerID:  customerID,
		OrderNumber: orderNumber,
		TotalAmount: 0,
		Currency:    currency,
		Status:      OrderStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// NewStoreOrder 创建店铺子订单（工厂方法）
func NewStoreOrder(id, parentOrderID string, customerID, storeID int64, orderNumber, currency string) (*StoreOrder, error) {
	if id == "" || parentOrderID == "" {
		return nil, ErrInvalidOrderID
	}
	if storeID <= 0 {
		return nil, ErrInvalidStoreID
	}
	if orderNumber == "" {
		return nil, ErrInvalidOrderNumber
	}

	now := time.Now()
	return &StoreOrder{
		ID:            id,
		ParentOrderID: parentOrderID,
		CustomerID:    customerID,
		StoreID:       storeID,
		OrderNumber:   orderNumber,
		TotalAmount:   0,
		Currency:      currency,
		Status:        OrderStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// NewOrderItem 创建订单行项目（工厂方法），行总价在此处一次性算定
func NewOrderItem(id, storeOrderID string, productID int64, quantity int, unitPrice int64) (*OrderItem, error) {
	if id == "" || storeOrderID == "" {
		return nil, ErrInvalidOrderID
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice < 0 {
		return nil, ErrInvalidUnitPrice
	}

	return &OrderItem{
		ID:           id,
		StoreOrderID: storeOrderID,
		ProductID:    productID,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		TotalPrice:   unitPrice * int64(quantity),
		CreatedAt:    time.Now(),
	}, nil
}
