package order

import (
	"github.com/gin-gonic/gin"

	"mvmall/internal/app/domains/apimodel/response"
	"mvmall/internal/app/pkg/ginx"
)

// Stats 订单统计
// GET /api/v1/stats/orders
func (h *OrderHandler) Stats(c *gin.Context) {
	stats, err := h.queryService.GetOrderStats(c.Request.Context())
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromOrderStats(stats))
}
