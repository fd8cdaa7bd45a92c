package ordernum

import (
	"fmt"
	"sync"
	"time"
)

// Allocator 订单号分配器。
// 并发约束：NextParentOrderNumber 全局不重复；
// NextStoreOrderNumber 在 (主订单, 店铺) 范围内不重复。
type Allocator interface {
	NextParentOrderNumber() string
	NextStoreOrderNumber(parentOrderNumber string, storeID int64) string
}

// SnowflakeAllocator 基于简化雪花ID的订单号分配器。
// 号段格式: 时间戳(10位) + 机器ID(2位) + 序列号(3位) = 15位数字。
// 同一秒内序列号递增，用尽则等待下一秒，互斥锁保证并发下不重号。
type SnowflakeAllocator struct {
	mu        sync.Mutex
	epoch     int64 // 起始时间戳 (2024-01-01 00:00:00)
	machineID int64 // 机器ID (0-99)
	sequence  int64 // 序列号 (0-999)
	lastTime  int64 // 上次生成ID的时间戳
	nowFn     func() int64
}

const (
	maxMachineID = 99  // 最大机器ID
	maxSequence  = 999 // 最大序列号
)

// NewSnowflakeAllocator 创建订单号分配器
// machineID: 机器ID，范围 0-99
func NewSnowflakeAllocator(machineID int64) *SnowflakeAllocator {
	if machineID < 0 || machineID > maxMachineID {
		machineID = 0
	}

	// 使用 2024-01-01 00:00:00 作为起始时间
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Unix()

	return &SnowflakeAllocator{
		epoch:     epoch,
		machineID: machineID,
		sequence:  0,
		lastTime:  0,
		nowFn:     func() int64 { return time.Now().Unix() },
	}
}

// nextID 生成下一个全局唯一ID
func (g *SnowflakeAllocator) nextID() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.nowFn()

	// 时钟回拨时等待追平，避免重发已用号段
	for now < g.lastTime {
		now = g.nowFn()
	}

	if now == g.lastTime {
		// 同一秒内，序列号递增
		g.sequence = (g.sequence + 1) % (maxSequence + 1)
		if g.sequence == 0 {
			// 序列号用尽，等待下一秒
			for now <= g.lastTime {
				now = g.nowFn()
			}
		}
	} else {
		// 新的一秒，重置序列号
		g.sequence = 0
	}

	g.lastTime = now

	// 计算时间偏移（从epoch开始的秒数）
	timestamp := now - g.epoch

	// 组合ID: 时间戳(10位) * 100000 + 机器ID(2位) * 1000 + 序列号(3位)
	return timestamp*100000 + g.machineID*1000 + g.sequence
}

// NextParentOrderNumber 生成主订单号，如 PO173050230001234
func (g *SnowflakeAllocator) NextParentOrderNumber() string {
	return fmt.Sprintf("PO%d", g.nextID())
}

// NextStoreOrderNumber 生成店铺子订单号，如 PO173050230001234-S7-173050230001235。
// 后缀取自同一个全局唯一号段，因此在任意范围内都不会重号。
func (g *SnowflakeAllocator) NextStoreOrderNumber(parentOrderNumber string, storeID int64) string {
	return fmt.Sprintf("%s-S%d-%d", parentOrderNumber, storeID, g.nextID())
}
