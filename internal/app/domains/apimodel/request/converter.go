package request

import (
	"mvmall/internal/app/domains/modules/mdintake"
	"mvmall/internal/app/domains/services/svcheckout"
)

// ToCheckoutRequest 请求 DTO 转换为服务层结算请求
func (r *CreateOrderRequest) ToCheckoutRequest() *svcheckout.CheckoutRequest {
	items := make([]mdintake.CartItem, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, mdintake.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &svcheckout.CheckoutRequest{
		CustomerID: r.CustomerID,
		Currency:   r.Currency,
		Items:      items,
	}
}
