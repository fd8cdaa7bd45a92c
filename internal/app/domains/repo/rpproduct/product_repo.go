package rpproduct

import (
	"context"

	"mvmall/internal/app/domains/entity/etproduct"
)

// ProductLookup 商品只读查询接口。商品主数据归商品域管理，
// 订单域只消费这个窄接口。未找到返回 nil, nil。
type ProductLookup interface {
	FindByID(ctx context.Context, productID int64) (*etproduct.Product, error)
}
