package request

// CreateOrderRequest 创建订单（结算）请求
type CreateOrderRequest struct {
	CustomerID int64       `json:"customer_id" binding:"required" example:"1"`
	Currency   string      `json:"currency" example:"USD"`
	Items      []*CartItem `json:"items" binding:"required,min=1,dive"`
}

// CartItem 购物车条目
type CartItem struct {
	ProductID int64 `json:"product_id" binding:"required" example:"1001"`
	Quantity  int   `json:"quantity" binding:"required,gt=0" example:"2"`
}

// UpdateStatusRequest 更新订单状态请求
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"COMPLETED"`
}
