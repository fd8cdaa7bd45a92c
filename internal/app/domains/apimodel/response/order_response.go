package response

import "time"

// OrderResponse 主订单响应（DTO）
type OrderResponse struct {
	ID           string                `json:"id"`
	CustomerID   int64                 `json:"customer_id"`
	OrderNumber  string                `json:"order_number"`
	TotalAmount  int64                 `json:"total_amount"`
	TotalDisplay string                `json:"total_display"`
	Currency     string                `json:"currency"`
	Status       string                `json:"status"`
	TotalStores  int                   `json:"total_stores"`
	StoreOrders  []*StoreOrderResponse `json:"store_orders,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// StoreOrderResponse 店铺子订单响应（DTO）
type StoreOrderResponse struct {
	ID           string               `json:"id"`
	OrderNumber  string               `json:"order_number"`
	StoreID      int64                `json:"store_id"`
	StoreName    string               `json:"store_name,omitempty"`
	TotalAmount  int64                `json:"total_amount"`
	TotalDisplay string               `json:"total_display"`
	Currency     string               `json:"currency"`
	Status       string               `json:"status"`
	Items        []*OrderItemResponse `json:"items,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// OrderItemResponse 订单行项目响应（DTO）
type OrderItemResponse struct {
	ID           string `json:"id"`
	ProductID    int64  `json:"product_id"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unit_price"`
	TotalPrice   int64  `json:"total_price"`
	TotalDisplay string `json:"total_display"`
}

// OrderListResponse 主订单列表响应（DTO）
type OrderListResponse struct {
	Orders []*OrderResponse `json:"orders"`
	Total  int64            `json:"total"`
}

// StoreOrderListingResponse 店铺侧子订单列表项（DTO），带商品件数
type StoreOrderListingResponse struct {
	Order     *StoreOrderResponse `json:"order"`
	ItemCount int64               `json:"item_count"`
}

// StoreOrderListResponse 店铺侧子订单列表响应（DTO）
type StoreOrderListResponse struct {
	Orders []*StoreOrderListingResponse `json:"orders"`
	Total  int64                        `json:"total"`
}

// OrderStatsResponse 订单统计响应（DTO）
type OrderStatsResponse struct {
	TotalOrders     int64  `json:"total_orders"`
	TotalRevenue    int64  `json:"total_revenue"`
	RevenueDisplay  string `json:"revenue_display"`
	PendingOrders   int64  `json:"pending_orders"`
	CompletedOrders int64  `json:"completed_orders"`
	CancelledOrders int64  `json:"cancelled_orders"`
}
