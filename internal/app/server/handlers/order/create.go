package order

import (
	"github.com/gin-gonic/gin"

	"mvmall/internal/app/domains/apimodel/request"
	"mvmall/internal/app/domains/apimodel/response"
	"mvmall/internal/app/pkg/ginx"
)

// Create 创建订单接口（结算拆单）
// POST /api/v1/orders
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	summary, err := h.checkoutService.CreateOrder(c.Request.Context(), req.ToCheckoutRequest())
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	ginx.Success(c, response.FromOrderSummary(summary))
}
