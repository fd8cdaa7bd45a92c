package mysql

import (
	"context"

	"gorm.io/gorm"
)

// txKey 事务在 Context 中的键
type txKey struct{}

// TxManager 事务管理器，把一次业务操作内的多次仓储写入包进同一个数据库事务。
// 事务句柄通过 Context 传递，仓储实现用 DB() 取句柄，自动加入外层事务。
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 在一个事务内执行 fn，fn 返回错误则整体回滚
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// DB 返回 Context 中的事务句柄；不在事务中时回退到默认连接
func DB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
