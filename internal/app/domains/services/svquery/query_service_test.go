package svquery

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mvmall/common/entity"
	"mvmall/internal/app/domains/entity/etorder"
	"mvmall/internal/app/domains/entity/etprimitive"
	"mvmall/internal/app/domains/repo/rporder"
	"mvmall/internal/app/domains/repo/rporderitem"
	"mvmall/internal/app/domains/repo/rpstore"
	"mvmall/internal/app/domains/repo/rpstoreorder"
	"mvmall/internal/app/infra/persistence/mysql"
	"mvmall/internal/app/pkg/errorx"
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

func newService(db *gorm.DB) *QueryService {
	return NewQueryService(
		rporder.NewParentOrderRepository(db),
		rpstoreorder.NewStoreOrderRepository(db),
		rporderitem.NewOrderItemRepository(db),
		rpstore.NewStoreLookup(db),
	)
}

// seedParent 直接写入一条主订单
func seedParent(t *testing.T, db *gorm.DB, customerID int64, number string, total int64, status string) string {
	t.Helper()

	order, err := etorder.NewParentOrder(uuid.New().String(), customerID, number, "USD")
	require.NoError(t, err)
	order.TotalAmount = total

	repo := rporder.NewParentOrderRepository(db)
	require.NoError(t, repo.Create(context.Background(), order, nil))
	if status != string(etorder.OrderStatusPending) {
		require.NoError(t, db.Model(&entity.ParentOrder{}).Where("id = ?", order.ID).
			Update("status", status).Error)
	}
	return order.ID
}

// seedStoreOrder 直接写入一条子订单及其行项目
func seedStoreOrder(t *testing.T, db *gorm.DB, parentID string, storeID int64, number string, quantities []int) string {
	t.Helper()
	ctx := context.Background()

	so, err := etorder.NewStoreOrder(uuid.New().String(), parentID, 42, storeID, number, "USD")
	require.NoError(t, err)
	require.NoError(t, rpstoreorder.NewStoreOrderRepository(db).Create(ctx, so))

	itemRepo := rporderitem.NewOrderItemRepository(db)
	for i, q := range quantities {
		item, err := etorder.NewOrderItem(uuid.New().String(), so.ID, int64(1000+i), q, 100)
		require.NoError(t, err)
		require.NoError(t, itemRepo.Create(ctx, item))
	}
	return so.ID
}

// 查询不存在的订单返回 nil，而不是错误
func TestFindOrderByIDAbsent(t *testing.T) {
	db := newTestDB(t)
	svc := newService(db)

	detail, err := svc.FindOrderByID(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, detail)

	detail, err = svc.FindOrderByNumber(context.Background(), "PO-none")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestFindOrderByIDAssemblesFullView(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&entity.Store{ID: 1, Name: "store-1", CommissionRateBp: 1000, Sellable: true}).Error)

	parentID := seedParent(t, db, 42, "PO2001", 500, string(etorder.OrderStatusPending))
	seedStoreOrder(t, db, parentID, 1, "PO2001-S1-1", []int{2, 3})

	svc := newService(db)
	detail, err := svc.FindOrderByID(context.Background(), parentID)
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, 1, detail.TotalStores)
	assert.Equal(t, int64(500), detail.GrandTotal)
	require.Len(t, detail.StoreOrders, 1)
	assert.Len(t, detail.StoreOrders[0].Items, 2)
	require.NotNil(t, detail.StoreOrders[0].Store)
	assert.Equal(t, "store-1", detail.StoreOrders[0].Store.Name)
}

func TestFindOrdersByCustomerPagination(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 5; i++ {
		seedParent(t, db, 42, fmt.Sprintf("PO3%03d", i), 100, string(etorder.OrderStatusPending))
	}
	seedParent(t, db, 7, "PO3999", 100, string(etorder.OrderStatusPending))

	svc := newService(db)
	orders, total, err := svc.FindOrdersByCustomer(context.Background(), 42, etprimitive.Pagination{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, orders, 2)

	orders, total, err = svc.FindOrdersByCustomer(context.Background(), 42, etprimitive.Pagination{Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, orders, 1)
}

// 店铺侧列表带派生的商品件数
func TestFindStoreOrdersByStoreReportsItemCount(t *testing.T) {
	db := newTestDB(t)
	parentID := seedParent(t, db, 42, "PO4001", 700, string(etorder.OrderStatusPending))
	soID := seedStoreOrder(t, db, parentID, 1, "PO4001-S1-1", []int{2, 5})
	seedStoreOrder(t, db, parentID, 2, "PO4001-S2-1", []int{1})

	svc := newService(db)
	listings, total, err := svc.FindStoreOrdersByStore(context.Background(), 1, etprimitive.Pagination{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, listings, 1)
	assert.Equal(t, soID, listings[0].StoreOrder.ID)
	assert.Equal(t, int64(7), listings[0].ItemCount)
}

func TestUpdateParentOrderStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	parentID := seedParent(t, db, 42, "PO5001", 100, string(etorder.OrderStatusPending))

	svc := newService(db)
	ctx := context.Background()

	// PENDING -> COMPLETED 合法
	require.NoError(t, svc.UpdateParentOrderStatus(ctx, parentID, etorder.OrderStatusCompleted))

	// COMPLETED -> PENDING 非法
	err := svc.UpdateParentOrderStatus(ctx, parentID, etorder.OrderStatusPending)
	assert.ErrorIs(t, err, errorx.ErrInvalidTransition)

	// 未知状态
	err = svc.UpdateParentOrderStatus(ctx, parentID, etorder.OrderStatus("SHIPPED"))
	assert.ErrorIs(t, err, errorx.ErrInvalidOrderStatus)

	// 不存在的订单
	err = svc.UpdateParentOrderStatus(ctx, "no-such-id", etorder.OrderStatusCompleted)
	assert.ErrorIs(t, err, errorx.ErrOrderNotFound)
}

func TestUpdateStoreOrderStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	parentID := seedParent(t, db, 42, "PO6001", 100, string(etorder.OrderStatusPending))
	soID := seedStoreOrder(t, db, parentID, 1, "PO6001-S1-1", []int{1})

	svc := newService(db)
	ctx := context.Background()

	require.NoError(t, svc.UpdateStoreOrderStatus(ctx, soID, etorder.OrderStatusCancelled))

	err := svc.UpdateStoreOrderStatus(ctx, soID, etorder.OrderStatusCompleted)
	assert.ErrorIs(t, err, errorx.ErrInvalidTransition)
}

// 统计：3 笔待处理、2 笔已完成、1 笔已取消
func TestGetOrderStats(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 3; i++ {
		seedParent(t, db, 42, fmt.Sprintf("PO7%03d", i), 100, string(etorder.OrderStatusPending))
	}
	seedParent(t, db, 42, "PO7100", 1500, string(etorder.OrderStatusCompleted))
	seedParent(t, db, 42, "PO7101", 2500, string(etorder.OrderStatusCompleted))
	seedParent(t, db, 42, "PO7200", 999, string(etorder.OrderStatusCancelled))

	svc := newService(db)
	stats, err := svc.GetOrderStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(6), stats.TotalOrders)
	assert.Equal(t, int64(3), stats.PendingOrders)
	assert.Equal(t, int64(2), stats.CompletedOrders)
	assert.Equal(t, int64(1), stats.CancelledOrders)
	// 营收只计已完成订单
	assert.Equal(t, int64(4000), stats.TotalRevenue)
}
