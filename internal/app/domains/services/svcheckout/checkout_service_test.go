package svcheckout

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mvmall/common/entity"
	"mvmall/internal/app/domains/modules/mdintake"
	"mvmall/internal/app/domains/repo/rpcommission"
	"mvmall/internal/app/domains/repo/rporder"
	"mvmall/internal/app/domains/repo/rporderitem"
	"mvmall/internal/app/domains/repo/rpproduct"
	"mvmall/internal/app/domains/repo/rpstore"
	"mvmall/internal/app/domains/repo/rpstoreorder"
	"mvmall/internal/app/infra/persistence/mysql"
	"mvmall/internal/app/pkg/errorx"
	"mvmall/internal/app/pkg/logger"
	"mvmall/internal/app/pkg/ordernum"
)

// newTestDB 每个用例一个独立的内存数据库
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, mysql.AutoMigrate(db))
	return db
}

// newService 用真实仓储 + 内存库装配拆单服务
func newService(t *testing.T, db *gorm.DB) *CheckoutService {
	t.Helper()

	productLookup := rpproduct.NewProductLookup(db)
	return NewCheckoutService(
		mdintake.NewGrouper(productLookup),
		rpstore.NewStoreLookup(db),
		ordernum.NewSnowflakeAllocator(1),
		mysql.NewTxManager(db),
		rporder.NewParentOrderRepository(db),
		rpstoreorder.NewStoreOrderRepository(db),
		rporderitem.NewOrderItemRepository(db),
		rpcommission.NewCommissionRepository(db),
		nil,
		nil,
		logger.NopLogger{},
	)
}

func seedStore(t *testing.T, db *gorm.DB, id int64, rateBp int64, sellable bool) {
	t.Helper()
	require.NoError(t, db.Create(&entity.Store{
		ID:               id,
		Name:             fmt.Sprintf("store-%d", id),
		CommissionRateBp: rateBp,
		Sellable:         sellable,
	}).Error)
}

func seedProduct(t *testing.T, db *gorm.DB, id, storeID, priceCents int64) {
	t.Helper()
	require.NoError(t, db.Create(&entity.Product{
		ID:         id,
		Name:       fmt.Sprintf("product-%d", id),
		StoreID:    storeID,
		PriceCents: priceCents,
	}).Error)
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

// 单店铺：$10.00 x2 + $5.00 x1，费率 10%
func TestCreateOrderSingleStore(t *testing.T) {
	db := newTestDB(t)
	seedStore(t, db, 1, 1000, true)
	seedProduct(t, db, 101, 1, 1000)
	seedProduct(t, db, 102, 1, 500)

	svc := newService(t, db)
	ctx := context.Background()

	summary, err := svc.CreateOrder(ctx, &CheckoutRequest{
		CustomerID: 42,
		Items: []mdintake.CartItem{
			{ProductID: 101, Quantity: 2},
			{ProductID: 102, Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalStores)
	assert.Equal(t, int64(2500), summary.GrandTotal)
	assert.Equal(t, int64(2500), summary.ParentOrder.TotalAmount)

	require.Len(t, summary.StoreOrders, 1)
	so := summary.StoreOrders[0]
	assert.Equal(t, int64(2500), so.StoreOrder.TotalAmount)
	require.Len(t, so.Items, 2)

	// 行项目级佣金：$2.00 和 $0.50
	commissionRepo := rpcommission.NewCommissionRepository(db)
	wantCommission := map[int64]int64{101: 200, 102: 50}
	for _, item := range so.Items {
		commission, err := commissionRepo.FindByOrderItemID(ctx, item.ID)
		require.NoError(t, err)
		require.NotNil(t, commission)
		assert.Equal(t, wantCommission[item.ProductID], commission.CommissionAmount)
		assert.Equal(t, int64(1000), commission.CommissionRateBp)
	}
}

// 双店铺：主订单总额等于两个子订单之和，行项目只落到各自店铺
func TestCreateOrderTwoStores(t *testing.T) {
	db := newTestDB(t)
	seedStore(t, db, 1, 1000, true)
	seedStore(t, db, 2, 500, true)
	seedProduct(t, db, 101, 1, 1000)
	seedProduct(t, db, 201, 2, 800)

	svc := newService(t, db)

	summary, err := svc.CreateOrder(context.Background(), &CheckoutRequest{
		CustomerID: 42,
		Items: []mdintake.CartItem{
			{ProductID: 101, Quantity: 1},
			{ProductID: 201, Quantity: 3},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, summary.TotalStores)
	require.Len(t, summary.StoreOrders, 2)

	var sum int64
	for _, so := range summary.StoreOrders {
		sum += so.StoreOrder.TotalAmount

		var itemSum int64
		for _, item := range so.Items {
			assert.Equal(t, so.StoreOrder.ID, item.StoreOrderID)
			assert.Equal(t, item.UnitPrice*int64(item.Quantity), item.TotalPrice)
			itemSum += item.TotalPrice
		}
		assert.Equal(t, so.StoreOrder.TotalAmount, itemSum)
	}
	assert.Equal(t, summary.ParentOrder.TotalAmount, sum)
	assert.Equal(t, int64(1000+2400), summary.GrandTotal)

	// 子订单号在主订单内不重复
	assert.NotEqual(t, summary.StoreOrders[0].StoreOrder.OrderNumber, summary.StoreOrders[1].StoreOrder.OrderNumber)
}

// 商品未挂店铺：整单失败，无任何落库
func TestCreateOrderUnassignedProductLeavesNoRows(t *testing.T) {
	db := newTestDB(t)
	seedStore(t, db, 1, 1000, true)
	seedProduct(t, db, 101, 1, 1000)
	seedProduct(t, db, 301, 0, 100) // 未挂店铺

	svc := newService(t, db)

	_, err := svc.CreateOrder(context.Background(), &CheckoutRequest{
		CustomerID: 42,
		Items: []mdintake.CartItem{
			{ProductID: 101, Quantity: 1},
			{ProductID: 301, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, errorx.ErrProductUnassigned)

	assert.Zero(t, countRows(t, db, &entity.ParentOrder{}))
	assert.Zero(t, countRows(t, db, &entity.StoreOrder{}))
	assert.Zero(t, countRows(t, db, &entity.OrderItem{}))
	assert.Zero(t, countRows(t, db, &entity.Commission{}))
}

// 第二个店铺不可售：第一个店铺已写入的行一并回滚
func TestCreateOrderUnsellableStoreRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	seedStore(t, db, 1, 1000, true)
	seedStore(t, db, 2, 500, false) // 不可售
	seedProduct(t, db, 101, 1, 1000)
	seedProduct(t, db, 201, 2, 800)

	svc := newService(t, db)

	_, err := svc.CreateOrder(context.Background(), &CheckoutRequest{
		CustomerID: 42,
		Items: []mdintake.CartItem{
			{ProductID: 101, Quantity: 1},
			{ProductID: 201, Quantity: 1},
		},
	})
	require.ErrorIs(t, err, errorx.ErrStoreNotSellable)

	assert.Zero(t, countRows(t, db, &entity.ParentOrder{}))
	assert.Zero(t, countRows(t, db, &entity.StoreOrder{}))
	assert.Zero(t, countRows(t, db, &entity.OrderItem{}))
	assert.Zero(t, countRows(t, db, &entity.Commission{}))
}

// 店铺不存在：整单失败
func TestCreateOrderUnknownStore(t *testing.T) {
	db := newTestDB(t)
	seedProduct(t, db, 101, 9, 1000) // 店铺 9 不存在

	svc := newService(t, db)

	_, err := svc.CreateOrder(context.Background(), &CheckoutRequest{
		CustomerID: 42,
		Items:      []mdintake.CartItem{{ProductID: 101, Quantity: 1}},
	})
	require.ErrorIs(t, err, errorx.ErrStoreNotFound)
	assert.Zero(t, countRows(t, db, &entity.ParentOrder{}))
}

// 落库后的总额与各级组成部分一致（重读数据库校验，而非只看内存汇总）
func TestCreateOrderPersistedTotalsConsistent(t *testing.T) {
	db := newTestDB(t)
	seedStore(t, db, 1, 750, true)
	seedStore(t, db, 2, 1000, true)
	seedProduct(t, db, 101, 1, 999)
	seedProduct(t, db, 102, 1, 1)
	seedProduct(t, db, 201, 2, 333)

	svc := newService(t, db)
	ctx := context.Background()

	summary, err := svc.CreateOrder(ctx, &CheckoutRequest{
		CustomerID: 7,
		Items: []mdintake.CartItem{
			{ProductID: 101, Quantity: 3},
			{ProductID: 201, Quantity: 2},
			{ProductID: 102, Quantity: 5},
		},
	})
	require.NoError(t, err)

	parentRepo := rporder.NewParentOrderRepository(db)
	storeOrderRepo := rpstoreorder.NewStoreOrderRepository(db)
	itemRepo := rporderitem.NewOrderItemRepository(db)

	parent, err := parentRepo.FindByID(ctx, summary.ParentOrder.ID)
	require.NoError(t, err)
	require.NotNil(t, parent)

	storeOrders, err := storeOrderRepo.FindByParentOrderID(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, storeOrders, 2)

	var parentSum int64
	for _, so := range storeOrders {
		items, err := itemRepo.FindByStoreOrderID(ctx, so.ID)
		require.NoError(t, err)

		var itemSum int64
		for _, item := range items {
			assert.Equal(t, item.UnitPrice*int64(item.Quantity), item.TotalPrice)
			itemSum += item.TotalPrice
		}
		assert.Equal(t, so.TotalAmount, itemSum)
		parentSum += so.TotalAmount
	}
	assert.Equal(t, parent.TotalAmount, parentSum)
}
