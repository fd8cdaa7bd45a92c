package rpcommission

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"mvmall/internal/app/domains/entity/etcommission"
	"mvmall/internal/app/infra/persistence/mysql"
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

// 结算只允许生效一次，第二次按未命中处理
func TestMarkPaidTransitionsOnceOnly(t *testing.T) {
	db := newTestDB(t)
	repo := NewCommissionRepository(db)
	ctx := context.Background()

	c, err := etcommission.NewCommission(uuid.New().String(), "item-1", 1, 1000, 200)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, c))

	require.NoError(t, repo.MarkPaid(ctx, c.ID, time.Now()))

	got, err := repo.FindByOrderItemID(ctx, "item-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, etcommission.CommissionStatusPaid, got.Status)
	require.NotNil(t, got.PaidAt)

	err = repo.MarkPaid(ctx, c.ID, time.Now())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMarkPaidUnknownCommission(t *testing.T) {
	db := newTestDB(t)

	err := NewCommissionRepository(db).MarkPaid(context.Background(), "no-such-id", time.Now())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
