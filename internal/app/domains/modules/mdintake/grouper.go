package mdintake

import (
	"context"
	"fmt"

	"mvmall/internal/app/domains/entity/etorder"
	"mvmall/internal/app/domains/entity/etproduct"
	"mvmall/internal/app/domains/repo/rpproduct"
	"mvmall/internal/app/pkg/errorx"
)

// CartItem 购物车条目
type CartItem struct {
	ProductID int64
	Quantity  int
}

// GroupedItem 已解析的购物车条目，带商品快照
type GroupedItem struct {
	Product  *etproduct.Product
	Quantity int
}

// StoreGroup 按店铺拆分后的条目组
type StoreGroup struct {
	StoreID int64
	Items   []GroupedItem
}

// Grouper 购物车分组模块：校验每个条目并按店铺拆分。
// 纯校验 + 分组，无副作用。
type Grouper struct {
	productLookup rpproduct.ProductLookup
}

// NewGrouper 创建分组模块
func NewGrouper(productLookup rpproduct.ProductLookup) *Grouper {
	return &Grouper{productLookup: productLookup}
}

// Group 把扁平购物车按店铺拆分。
// 分组顺序与店铺在购物车中首次出现的顺序一致，保证下游遍历确定性。
func (g *Grouper) Group(ctx context.Context, items []CartItem) ([]StoreGroup, error) {
	if len(items) == 0 {
		return nil, errorx.ErrEmptyCart
	}

	groups := make([]StoreGroup, 0)
	index := make(map[int64]int) // storeID -> groups 下标

	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, etorder.ErrInvalidQuantity)
		}

		product, err := g.productLookup.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("lookup product %d failed: %w", item.ProductID, err)
		}
		if product == nil {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, errorx.ErrProductNotFound)
		}
		if !product.Assigned() {
			return nil, fmt.Errorf("product %d: %w", item.ProductID, errorx.ErrProductUnassigned)
		}

		i, ok := index[product.StoreID]
		if !ok {
			i = len(groups)
			index[product.StoreID] = i
			groups = append(groups, StoreGroup{StoreID: product.StoreID})
		}
		groups[i].Items = append(groups[i].Items, GroupedItem{
			Product:  product,
			Quantity: item.Quantity,
		})
	}

	return groups, nil
}
