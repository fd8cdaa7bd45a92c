package response

import (
	"fmt"

	"mvmall/internal/app/domains/entity/etorder"
	"mvmall/internal/app/domains/services/svcheckout"
	"mvmall/internal/app/domains/services/svquery"
)

// displayCents 分转展示金额字符串，仅在 DTO 边界做一次
func displayCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// FromParentOrderEntity 从主订单领域对象转换为响应 DTO（不含子订单）
func FromParentOrderEntity(order *etorder.ParentOrder) *OrderResponse {
	return &OrderResponse{
		ID:           order.ID,
		CustomerID:   order.CustomerID,
		OrderNumber:  order.OrderNumber,
		TotalAmount:  order.TotalAmount,
		TotalDisplay: displayCents(order.TotalAmount),
		Currency:     order.Currency,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}
}

// FromStoreOrderEntity 从子订单领域对象转换为响应 DTO（不含行项目）
func FromStoreOrderEntity(order *etorder.StoreOrder) *StoreOrderResponse {
	return &StoreOrderResponse{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		StoreID:      order.StoreID,
		TotalAmount:  order.TotalAmount,
		TotalDisplay: displayCents(order.TotalAmount),
		Currency:     order.Currency,
		Status:       string(order.Status),
		CreatedAt:    order.CreatedAt,
	}
}

// FromOrderItemEntity 从行项目领域对象转换为响应 DTO
func FromOrderItemEntity(item *etorder.OrderItem) *OrderItemResponse {
	return &OrderItemResponse{
		ID:           item.ID,
		ProductID:    item.ProductID,
		Quantity:     item.Quantity,
		UnitPrice:    item.UnitPrice,
		TotalPrice:   item.TotalPrice,
		TotalDisplay: displayCents(item.TotalPrice),
	}
}

// FromOrderSummary 从结算结果汇总转换为响应 DTO
func FromOrderSummary(summary *svcheckout.OrderSummary) *OrderResponse {
	resp := FromParentOrderEntity(summary.ParentOrder)
	resp.TotalStores = summary.TotalStores

	for _, so := range summary.StoreOrders {
		sr := FromStoreOrderEntity(so.StoreOrder)
		if so.Store != nil {
			sr.StoreName = so.Store.Name
		}
		for _, item := range so.Items {
			sr.Items = append(sr.Items, FromOrderItemEntity(item))
		}
		resp.StoreOrders = append(resp.StoreOrders, sr)
	}

	return resp
}

// FromOrderDetail 从查询侧完整视图转换为响应 DTO
func FromOrderDetail(detail *svquery.OrderDetail) *OrderResponse {
	resp := FromParentOrderEntity(detail.ParentOrder)
	resp.TotalStores = detail.TotalStores

	for _, so := range detail.StoreOrders {
		sr := FromStoreOrderEntity(so.StoreOrder)
		if so.Store != nil {
			sr.StoreName = so.Store.Name
		}
		for _, item := range so.Items {
			sr.Items = append(sr.Items, FromOrderItemEntity(item))
		}
		resp.StoreOrders = append(resp.StoreOrders, sr)
	}

	return resp
}

// FromStoreOrderListings 从店铺侧列表转换为响应 DTO
func FromStoreOrderListings(listings []svquery.StoreOrderListing, total int64) *StoreOrderListResponse {
	resp := &StoreOrderListResponse{
		Orders: make([]*StoreOrderListingResponse, 0, len(listings)),
		Total:  total,
	}
	for _, l := range listings {
		resp.Orders = append(resp.Orders, &StoreOrderListingResponse{
			Order:     FromStoreOrderEntity(l.StoreOrder),
			ItemCount: l.ItemCount,
		})
	}
	return resp
}

// FromOrderStats 从统计结果转换为响应 DTO
func FromOrderStats(stats *svquery.OrderStats) *OrderStatsResponse {
	return &OrderStatsResponse{
		TotalOrders:     stats.TotalOrders,
		TotalRevenue:    stats.TotalRevenue,
		RevenueDisplay:  displayCents(stats.TotalRevenue),
		PendingOrders:   stats.PendingOrders,
		CompletedOrders: stats.CompletedOrders,
		CancelledOrders: stats.CancelledOrders,
	}
}
