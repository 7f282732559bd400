package errorx

import "errors"

// 业务错误定义
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrAccountExists      = errors.New("account already exists")
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrOrderNotFound      = errors.New("order not found")
	ErrRequestNotFound    = errors.New("shipping request not found")
	ErrBatchNotFound      = errors.New("settlement batch not found")
	ErrActionNotAllowed   = errors.New("action not allowed in current status")
	ErrFieldNotEditable   = errors.New("field not editable in current status")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrNotOwner           = errors.New("order does not belong to current account")
	ErrNotAssignee        = errors.New("order is not assigned to current account")
)

// BusinessError 业务错误结构
type BusinessError struct {
	Code    int
	Message string
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

// IsBusiness 判断是否业务错误（业务错误返回给调用方原文展示）
func IsBusiness(err error) bool {
	switch {
	case errors.Is(err, ErrAccountNotFound),
		errors.Is(err, ErrAccountExists),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrOrderNotFound),
		errors.Is(err, ErrRequestNotFound),
		errors.Is(err, ErrBatchNotFound),
		errors.Is(err, ErrActionNotAllowed),
		errors.Is(err, ErrFieldNotEditable),
		errors.Is(err, ErrInvalidTransition),
		errors.Is(err, ErrNotOwner),
		errors.Is(err, ErrNotAssignee):
		return true
	}
	var be *BusinessError
	return errors.As(err, &be)
}
