package etstore

import "time"

// Store 店铺（卖家）只读快照，主数据由店铺域维护
type Store struct {
	ID               int64     // 店铺ID
	Name             string    // 店铺名称
	CommissionRateBp int64     // 佣金费率（基点，1000 = 10.00%）
	Sellable         bool      // 是否允许售卖
	CreatedAt        time.Time // 创建时间
}
