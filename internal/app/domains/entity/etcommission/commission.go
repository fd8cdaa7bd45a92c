package etcommission

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidCommissionID = errors.New("commission ID cannot be empty")
	ErrInvalidOrderItemID  = errors.New("order item ID cannot be empty")
	ErrAlreadyPaid         = errors.New("commission already paid")
)

// CommissionStatus 佣金状态
type CommissionStatus string

const (
	CommissionStatusPending CommissionStatus = "PENDING"
	CommissionStatusPaid    CommissionStatus = "PAID"
)

// Commission 平台佣金（领域对象），费率在下单时刻快照，后续不随店铺费率变化
type Commission struct {
	ID               string           // 佣金ID (UUID)
	OrderItemID      string           // 关联的订单行项目ID
	StoreID          int64            // 店铺ID
	CommissionRateBp int64            // 佣金费率（基点，1000 = 10.00%）
	CommissionAmount int64            // 佣金金额（分）
	Status           CommissionStatus // 佣金状态
	PaidAt           *time.Time       // 结算时间
	CreatedAt        time.Time        // 创建时间
	UpdatedAt        time.Time        // 更新时间
}

// NewCommission 创建佣金记录（工厂方法）
func NewCommission(id, orderItemID string, storeID, rateBp, amount int64) (*Commission, error) {
	if id == "" {
		return nil, ErrInvalidCommissionID
	}
	if orderItemID == "" {
		return nil, ErrInvalidOrderItemID
	}

	now := time.Now()
	return &Commission{
		ID:               id,
		OrderItemID:      orderItemID,
		StoreID:          storeID,
		CommissionRateBp: rateBp,
		CommissionAmount: amount,
		Status:           CommissionStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// MarkPaid 标记佣金已结算（领域行为）
func (c *Commission) MarkPaid(paidAt time.Time) error {
	if c.Status == CommissionStatusPaid {
		return ErrAlreadyPaid
	}
	c.Status = CommissionStatusPaid
	c.PaidAt = &paidAt
	c.UpdatedAt = paidAt
	return nil
}
