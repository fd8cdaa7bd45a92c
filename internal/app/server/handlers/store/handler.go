package store

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"mvmall/internal/app/domains/apimodel/response"
	"mvmall/internal/app/domains/entity/etprimitive"
	"mvmall/internal/app/domains/services/svquery"
	"mvmall/internal/app/pkg/ginx"
)

// StoreHandler 店铺侧 HTTP 处理器
type StoreHandler struct {
	queryService *svquery.QueryService
}

// NewStoreHandler 创建店铺处理器实例
func NewStoreHandler(queryService *svquery.QueryService) *StoreHandler {
	return &StoreHandler{queryService: queryService}
}

// ListOrders 分页查询店铺的子订单列表（带商品件数）
// GET /api/v1/stores/:id/orders?limit=20&offset=0
func (h *StoreHandler) ListOrders(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || storeID <= 0 {
		ginx.BadRequest(c, "store_id required")
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	page := etprimitive.Pagination{Limit: limit, Offset: offset}

	listings, total, err := h.queryService.FindStoreOrdersByStore(c.Request.Context(), storeID, page)
	if err != nil {
		ginx.InternalError(c, err.Error())
		return
	}

	ginx.Success(c, response.FromStoreOrderListings(listings, total))
}
