package mdintake

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mvmall/internal/app/domains/entity/etorder"
	"mvmall/internal/app/domains/entity/etproduct"
	"mvmall/internal/app/pkg/errorx"
)

// fakeProductLookup 内存商品查询（测试用）
type fakeProductLookup struct {
	products map[int64]*etproduct.Product
}

func (f *fakeProductLookup) FindByID(ctx context.Context, productID int64) (*etproduct.Product, error) {
	return f.products[productID], nil
}

func newFakeLookup() *fakeProductLookup {
	return &fakeProductLookup{products: map[int64]*etproduct.Product{
		101: {ID: 101, Name: "keyboard", StoreID: 1, PriceCents: 1000},
		102: {ID: 102, Name: "mouse", StoreID: 1, PriceCents: 500},
		201: {ID: 201, Name: "mug", StoreID: 2, PriceCents: 800},
		301: {ID: 301, Name: "orphan", StoreID: 0, PriceCents: 100},
	}}
}

func TestGroupSplitsByStorePreservingFirstSeenOrder(t *testing.T) {
	g := NewGrouper(newFakeLookup())

	groups, err := g.Group(context.Background(), []CartItem{
		{ProductID: 201, Quantity: 1},
		{ProductID: 101, Quantity: 2},
		{ProductID: 102, Quantity: 1},
	})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	// 店铺顺序按首次出现：先 2 后 1
	assert.Equal(t, int64(2), groups[0].StoreID)
	assert.Len(t, groups[0].Items, 1)

	assert.Equal(t, int64(1), groups[1].StoreID)
	require.Len(t, groups[1].Items, 2)
	assert.Equal(t, int64(101), groups[1].Items[0].Product.ID)
	assert.Equal(t, 2, groups[1].Items[0].Quantity)
}

func TestGroupRejectsEmptyCart(t *testing.T) {
	g := NewGrouper(newFakeLookup())

	_, err := g.Group(context.Background(), nil)
	assert.ErrorIs(t, err, errorx.ErrEmptyCart)
}

func TestGroupRejectsUnknownProduct(t *testing.T) {
	g := NewGrouper(newFakeLookup())

	_, err := g.Group(context.Background(), []CartItem{{ProductID: 999, Quantity: 1}})
	assert.ErrorIs(t, err, errorx.ErrProductNotFound)
}

func TestGroupRejectsUnassignedProduct(t *testing.T) {
	g := NewGrouper(newFakeLookup())

	_, err := g.Group(context.Background(), []CartItem{{ProductID: 301, Quantity: 1}})
	assert.ErrorIs(t, err, errorx.ErrProductUnassigned)
}

func TestGroupRejectsNonPositiveQuantity(t *testing.T) {
	g := NewGrouper(newFakeLookup())

	_, err := g.Group(context.Background(), []CartItem{{ProductID: 101, Quantity: 0}})
	assert.ErrorIs(t, err, etorder.ErrInvalidQuantity)
}
