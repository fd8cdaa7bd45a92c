package order

import (
	"github.com/gin-gonic/gin"

	"mvmall/internal/app/domains/apimodel/request"
	"mvmall/internal/app/domains/entity/etorder"
	"mvmall/internal/app/pkg/ginx"
)

// UpdateStatus 更新主订单状态
// PATCH /api/v1/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		ginx.BadRequest(c, "order_id required")
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	err := h.queryService.UpdateParentOrderStatus(c.Request.Context(), orderID, etorder.OrderStatus(req.Status))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	ginx.Success(c, nil)
}

// UpdateStoreOrderStatus 更新店铺子订单状态
// PATCH /api/v1/store-orders/:id/status
func (h *OrderHandler) UpdateStoreOrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		ginx.BadRequest(c, "order_id required")
		return
	}

	var req request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	err := h.queryService.UpdateStoreOrderStatus(c.Request.Context(), orderID, etorder.OrderStatus(req.Status))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	ginx.Success(c, nil)
}
