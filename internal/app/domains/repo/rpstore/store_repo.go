package rpstore

import (
	"context"

	"mvmall/internal/app/domains/entity/etstore"
)

// StoreLookup 店铺只读查询接口。店铺主数据归店铺域管理，
// 订单域只消费这个窄接口。未找到返回 nil, nil。
type StoreLookup interface {
	FindByID(ctx context.Context, storeID int64) (*etstore.Store, error)
}
