package order

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mvmall/internal/app/domains/services/svcheckout"
	"mvmall/internal/app/domains/services/svquery"
	"mvmall/internal/app/pkg/errorx"
	"mvmall/internal/app/pkg/ginx"
)

// OrderHandler 订单 HTTP 处理器
type OrderHandler struct {
	checkoutService *svcheckout.CheckoutService
	queryService    *svquery.QueryService
}

// NewOrderHandler 创建订单处理器实例
func NewOrderHandler(checkoutService *svcheckout.CheckoutService, queryService *svquery.QueryService) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		queryService:    queryService,
	}
}

// writeBusinessError 业务错误映射到 HTTP 状态码
func writeBusinessError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errorx.ErrProductNotFound),
		errors.Is(err, errorx.ErrStoreNotFound),
		errors.Is(err, errorx.ErrOrderNotFound):
		ginx.NotFound(c, err.Error())
	case errors.Is(err, errorx.ErrProductUnassigned),
		errors.Is(err, errorx.ErrStoreNotSellable),
		errors.Is(err, errorx.ErrEmptyCart),
		errors.Is(err, errorx.ErrInvalidOrderStatus):
		ginx.BadRequest(c, err.Error())
	case errors.Is(err, errorx.ErrInvalidTransition):
		ginx.Conflict(c, err.Error())
	default:
		ginx.InternalError(c, err.Error())
	}
}
