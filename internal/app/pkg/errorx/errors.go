package errorx

import "errors"

// 定义业务错误
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnassigned  = errors.New("product not assigned to any store")
	ErrStoreNotFound      = errors.New("store not found")
	ErrStoreNotSellable   = errors.New("store is not sellable")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyCart          = errors.New("cart cannot be empty")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidOrderStatus = errors.New("unknown order status")
)

// BusinessError 业务错误结构
type BusinessError struct {
	Code    int
	Message string
	Details []ErrorDetail
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Path string
	Info string
}

// Error 实现 error 接口
func (e *BusinessError) Error() string {
	return e.Message
}

// NewBusinessError 创建业务错误
func NewBusinessError(code int, message string) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
	}
}
