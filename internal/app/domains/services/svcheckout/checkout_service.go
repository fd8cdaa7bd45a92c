package svcheckout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"mvmall/internal/app/domains/entity/etcommission"
	"mvmall/internal/app/domains/entity/etorder"
	"mvmall/internal/app/domains/entity/etstore"
	"mvmall/internal/app/domains/modules/mdcommission"
	"mvmall/internal/app/domains/modules/mdintake"
	"mvmall/internal/app/domains/repo/rpcommission"
	"mvmall/internal/app/domains/repo/rporder"
	"mvmall/internal/app/domains/repo/rporderitem"
	"mvmall/internal/app/domains/repo/rpstore"
	"mvmall/internal/app/domains/repo/rpstoreorder"
	"mvmall/internal/app/pkg/errorx"
	"mvmall/internal/app/pkg/logger"
	"mvmall/internal/app/pkg/ordernum"
)

// TxManager 事务能力，由 infra 层注入
type TxManager interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrderAnnouncer 下单完成事件通知（事务提交后触发，失败不影响下单）
type OrderAnnouncer interface {
	AnnounceOrderCreated(ctx context.Context, orderNumber string, totalAmount int64) error
}

// SettlementProducer 佣金结算任务投递（事务提交后触发，失败不影响下单）
type SettlementProducer interface {
	EnqueueSettlement(ctx context.Context, orderNumber string, commissionIDs []string) error
}

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	CustomerID int64               `json:"customer_id"`
	Currency   string              `json:"currency"`
	Items      []mdintake.CartItem `json:"items"`
}

// StoreOrderSummary 单个店铺的子订单汇总
type StoreOrderSummary struct {
	StoreOrder *etorder.StoreOrder
	Items      []*etorder.OrderItem
	Store      *etstore.Store
}

// OrderSummary 结算结果汇总
type OrderSummary struct {
	ParentOrder *etorder.ParentOrder
	StoreOrders []StoreOrderSummary
	GrandTotal  int64
	TotalStores int
}

// CheckoutService 订单拆单服务（写侧）。
// 一次结算拆成：一条主订单 + 每个店铺一条子订单 + 行项目 + 行项目级佣金，
// 全部写入在同一个数据库事务内完成，任何一步失败整体回滚。
type CheckoutService struct {
	grouper        *mdintake.Grouper
	storeLookup    rpstore.StoreLookup
	allocator      ordernum.Allocator
	txManager      TxManager
	parentRepo     rporder.ParentOrderRepository
	storeOrderRepo rpstoreorder.StoreOrderRepository
	itemRepo       rporderitem.OrderItemRepository
	commissionRepo rpcommission.CommissionRepository
	announcer      OrderAnnouncer
	settlement     SettlementProducer
	log            logger.Logger
}

// NewCheckoutService 创建拆单服务实例。announcer 和 settlement 可为 nil。
func NewCheckoutService(
	grouper *mdintake.Grouper,
	storeLookup rpstore.StoreLookup,
	allocator ordernum.Allocator,
	txManager TxManager,
	parentRepo rporder.ParentOrderRepository,
	storeOrderRepo rpstoreorder.StoreOrderRepository,
	itemRepo rporderitem.OrderItemRepository,
	commissionRepo rpcommission.CommissionRepository,
	announcer OrderAnnouncer,
	settlement SettlementProducer,
	log logger.Logger,
) *CheckoutService {
	return &CheckoutService{
		grouper:        grouper,
		storeLookup:    storeLookup,
		allocator:      allocator,
		txManager:      txManager,
		parentRepo:     parentRepo,
		storeOrderRepo: storeOrderRepo,
		itemRepo:       itemRepo,
		commissionRepo: commissionRepo,
		announcer:      announcer,
		settlement:     settlement,
		log:            log,
	}
}

// CreateOrder 创建订单（完整业务流程）
// 1. 购物车校验 + 按店铺分组（无副作用，失败直接返回）
// 2. 事务内：创建主订单壳 → 逐店铺创建子订单/行项目/佣金并回填子订单总额 → 回填主订单总额
// 3. 提交后：发布下单事件、投递佣金结算任务（失败只告警）
func (s *CheckoutService) CreateOrder(ctx context.Context, req *CheckoutRequest) (*OrderSummary, error) {
	if req == nil || req.CustomerID <= 0 {
		return nil, etorder.ErrInvalidCustomerID
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	groups, err := s.grouper.Group(ctx, req.Items)
	if err != nil {
		return nil, fmt.Errorf("group cart failed: %w", err)
	}

	rawRequest, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal checkout request failed: %w", err)
	}

	var (
		summary       *OrderSummary
		commissionIDs []string
	)

	err = s.txManager.Transaction(ctx, func(txCtx context.Context) error {
		summary, commissionIDs, err = s.decompose(txCtx, req.CustomerID, currency, rawRequest, groups)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.afterCommit(ctx, summary, commissionIDs)

	return summary, nil
}

// decompose 在事务内执行拆单，返回完整汇总和新建的佣金ID列表
func (s *CheckoutService) decompose(
	ctx context.Context,
	customerID int64,
	currency string,
	rawRequest []byte,
	groups []mdintake.StoreGroup,
) (*OrderSummary, []string, error) {
	parentNumber := s.allocator.NextParentOrderNumber()

	parent, err := etorder.NewParentOrder(uuid.New().String(), customerID, parentNumber, currency)
	if err != nil {
		return nil, nil, fmt.Errorf("create parent order entity failed: %w", err)
	}
	if err := s.parentRepo.Create(ctx, parent, rawRequest); err != nil {
		return nil, nil, fmt.Errorf("save parent order failed: %w", err)
	}

	summary := &OrderSummary{
		ParentOrder: parent,
		StoreOrders: make([]StoreOrderSummary, 0, len(groups)),
	}

	var (
		parentTotal   int64
		commissionIDs []string
	)

	for _, group := range groups {
		storeSummary, subtotal, ids, err := s.decomposeStore(ctx, parent, currency, group)
		if err != nil {
			return nil, nil, err
		}

		parentTotal += subtotal
		commissionIDs = append(commissionIDs, ids...)
		summary.StoreOrders = append(summary.StoreOrders, *storeSummary)
	}

	if err := s.parentRepo.UpdateTotalAmount(ctx, parent.ID, parentTotal); err != nil {
		return nil, nil, fmt.Errorf("backfill parent order total failed: %w", err)
	}
	parent.TotalAmount = parentTotal

	summary.GrandTotal = parentTotal
	summary.TotalStores = len(summary.StoreOrders)

	return summary, commissionIDs, nil
}

// decomposeStore 处理单个店铺分组：子订单壳 → 行项目 → 佣金 → 回填子订单总额
func (s *CheckoutService) decomposeStore(
	ctx context.Context,
	parent *etorder.ParentOrder,
	currency string,
	group mdintake.StoreGroup,
) (*StoreOrderSummary, int64, []string, error) {
	store, err := s.storeLookup.FindByID(ctx, group.StoreID)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("lookup store %d failed: %w", group.StoreID, err)
	}
	if store == nil {
		return nil, 0, nil, fmt.Errorf("store %d: %w", group.StoreID, errorx.ErrStoreNotFound)
	}
	if !store.Sellable {
		return nil, 0, nil, fmt.Errorf("store %d: %w", group.StoreID, errorx.ErrStoreNotSellable)
	}

	storeNumber := s.allocator.NextStoreOrderNumber(parent.OrderNumber, store.ID)

	storeOrder, err := etorder.NewStoreOrder(uuid.New().String(), parent.ID, parent.CustomerID, store.ID, storeNumber, currency)
	if err != nil {
		return nil, 0, nil, fmt.Errorf("create store order entity failed: %w", err)
	}
	if err := s.storeOrderRepo.Create(ctx, storeOrder); err != nil {
		return nil, 0, nil, fmt.Errorf("save store order failed: %w", err)
	}

	items := make([]*etorder.OrderItem, 0, len(group.Items))
	var subtotal int64

	for _, gi := range group.Items {
		item, err := etorder.NewOrderItem(uuid.New().String(), storeOrder.ID, gi.Product.ID, gi.Quantity, gi.Product.PriceCents)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("create order item entity failed: %w", err)
		}
		if err := s.itemRepo.Create(ctx, item); err != nil {
			return nil, 0, nil, fmt.Errorf("save order item failed: %w", err)
		}

		subtotal += item.TotalPrice
		items = append(items, item)
	}

	// 佣金费率取下单时刻的店铺费率快照
	commissionIDs := make([]string, 0, len(items))
	for _, item := range items {
		amount := mdcommission.Calculate(item.TotalPrice, store.CommissionRateBp)

		commission, err := etcommission.NewCommission(uuid.New().String(), item.ID, store.ID, store.CommissionRateBp, amount)
		if err != nil {
			return nil, 0, nil, fmt.Errorf("create commission entity failed: %w", err)
		}
		if err := s.commissionRepo.Create(ctx, commission); err != nil {
			return nil, 0, nil, fmt.Errorf("save commission failed: %w", err)
		}
		commissionIDs = append(commissionIDs, commission.ID)
	}

	if err := s.storeOrderRepo.UpdateTotalAmount(ctx, storeOrder.ID, subtotal); err != nil {
		return nil, 0, nil, fmt.Errorf("backfill store order total failed: %w", err)
	}
	storeOrder.TotalAmount = subtotal

	return &StoreOrderSummary{
		StoreOrder: storeOrder,
		Items:      items,
		Store:      store,
	}, subtotal, commissionIDs, nil
}

// afterCommit 事务提交后的通知动作，失败只告警不回滚
func (s *CheckoutService) afterCommit(ctx context.Context, summary *OrderSummary, commissionIDs []string) {
	orderNumber := summary.ParentOrder.OrderNumber
	ctx = logger.WithOrderNumber(ctx, orderNumber)

	if s.announcer != nil {
		if err := s.announcer.AnnounceOrderCreated(ctx, orderNumber, summary.GrandTotal); err != nil {
			s.log.Warnf(ctx, "announce order created failed: order_number=%s, error=%v", orderNumber, err)
		}
	}

	if s.settlement != nil && len(commissionIDs) > 0 {
		if err := s.settlement.EnqueueSettlement(ctx, orderNumber, commissionIDs); err != nil {
			s.log.Warnf(ctx, "enqueue commission settlement failed: order_number=%s, error=%v", orderNumber, err)
		}
	}

	s.log.Infof(ctx, "order created: order_number=%s, stores=%d, total=%d", orderNumber, summary.TotalStores, summary.GrandTotal)
}
