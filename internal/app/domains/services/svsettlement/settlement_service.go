package svsettlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"mvmall/internal/app/domains/repo/rpcommission"
	"mvmall/internal/app/pkg/logger"
)

// SettlementService 佣金结算服务。消费结算任务，把订单关联的佣金
// 逐条置为已结算。队列可能重投同一任务，结算必须幂等。
type SettlementService struct {
	commissionRepo rpcommission.CommissionRepository
	log            logger.Logger
}

// NewSettlementService 创建结算服务实例
func NewSettlementService(commissionRepo rpcommission.CommissionRepository, log logger.Logger) *SettlementService {
	return &SettlementService{
		commissionRepo: commissionRepo,
		log:            log,
	}
}

// SettleOrder 结算一笔订单的全部佣金。
// 已结算或不存在的佣金跳过，不视为失败。
func (s *SettlementService) SettleOrder(ctx context.Context, orderNumber string, commissionIDs []string) error {
	now := time.Now()

	settled := 0
	for _, id := range commissionIDs {
		err := s.commissionRepo.MarkPaid(ctx, id, now)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.log.Warnf(ctx, "commission already settled or missing: commission_id=%s", id)
				continue
			}
			return fmt.Errorf("mark commission %s paid failed: %w", id, err)
		}
		settled++
	}

	s.log.Infof(ctx, "commissions settled: order_number=%s, settled=%d/%d", orderNumber, settled, len(commissionIDs))
	return nil
}
