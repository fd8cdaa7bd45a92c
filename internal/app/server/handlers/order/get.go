package order

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"mvmall/internal/app/domains/apimodel/response"
	"mvmall/internal/app/domains/entity/etprimitive"
	"mvmall/internal/app/pkg/ginx"
)

// Get godoc
// @Summary      获取订单详情
// @Description  根据主订单ID获取完整订单视图（含各店铺子订单和行项目）
// @Tags         orders
// @Produce      json
// @Param        id path string true "主订单ID（UUID）"
// @Success      200 {object} ginx.Response{data=response.OrderResponse} "查询成功"
// @Failure      404 {object} ginx.Response "订单不存在"
// @Failure      500 {object} ginx.Response "服务器错误"
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		ginx.BadRequest(c, "order_id required")
		return
	}

	detail, err := h.queryService.FindOrderByID(c.Request.Context(), orderID)
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}
	if detail == nil {
		ginx.NotFound(c, "order not found")
		return
	}

	ginx.Success(c, response.FromOrderDetail(detail))
}

// GetByNumber 根据订单号获取订单详情
// GET /api/v1/orders/number/:number
func (h *OrderHandler) GetByNumber(c *gin.Context) {
	orderNumber := c.Param("number")
	if orderNumber == "" {
		ginx.BadRequest(c, "order_number required")
		return
	}

	detail, err := h.queryService.FindOrderByNumber(c.Request.Context(), orderNumber)
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}
	if detail == nil {
		ginx.NotFound(c, "order not found")
		return
	}

	ginx.Success(c, response.FromOrderDetail(detail))
}

// ListByCustomer 分页查询买家的主订单列表
// GET /api/v1/orders?customer_id=1&limit=20&offset=0
func (h *OrderHandler) ListByCustomer(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Query("customer_id"), 10, 64)
	if err != nil || customerID <= 0 {
		ginx.BadRequest(c, "customer_id required")
		return
	}

	page := parsePagination(c)

	orders, total, err := h.queryService.FindOrdersByCustomer(c.Request.Context(), customerID, page)
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}

	resp := &response.OrderListResponse{
		Orders: make([]*response.OrderResponse, 0, len(orders)),
		Total:  total,
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, response.FromParentOrderEntity(o))
	}

	ginx.Success(c, resp)
}

// parsePagination 解析分页参数，非法值交由 Normalize 兜底
func parsePagination(c *gin.Context) etprimitive.Pagination {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return etprimitive.Pagination{Limit: limit, Offset: offset}
}
