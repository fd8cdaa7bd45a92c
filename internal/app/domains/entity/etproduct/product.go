package etproduct

import "time"

// Product 商品只读快照，主数据由商品域维护
type Product struct {
	ID         int64     // 商品ID
	Name       string    // 商品名称
	StoreID    int64     // 归属店铺ID，0 表示未挂店铺
	PriceCents int64     // 售价（分）
	Currency   string    // 币种
	CreatedAt  time.Time // 创建时间
}

// Assigned 判断商品是否已挂到店铺
func (p *Product) Assigned() bool {
	return p.StoreID > 0
}
