package ginx

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/errorx"
)

// RespondError 业务错误统一转换为 HTTP 响应
// 未识别的错误一律按服务端错误处理，不向客户端透出细节
func RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errorx.ErrOrderNotFound),
		errors.Is(err, errorx.ErrRequestNotFound),
		errors.Is(err, errorx.ErrBatchNotFound),
		errors.Is(err, errorx.ErrAccountNotFound):
		NotFound(c, err.Error())
	case errors.Is(err, errorx.ErrNotOwner),
		errors.Is(err, errorx.ErrNotAssignee),
		errors.Is(err, errorx.ErrActionNotAllowed),
		errors.Is(err, errorx.ErrFieldNotEditable):
		Forbidden(c, err.Error())
	case errors.Is(err, errorx.ErrInvalidCredentials):
		Unauthorized(c, err.Error())
	case errors.Is(err, errorx.ErrAccountExists),
		errors.Is(err, errorx.ErrInvalidTransition):
		BadRequest(c, err.Error())
	case errorx.IsBusiness(err), isEntityError(err):
		BadRequest(c, err.Error())
	default:
		InternalError(c, "internal server error")
	}
}

// isEntityError 领域实体抛出的校验/流转错误，原文返回给调用方
func isEntityError(err error) bool {
	for _, target := range []error{
		etorder.ErrInvalidOrderID, etorder.ErrInvalidAccountID, etorder.ErrInvalidContact,
		etorder.ErrInvalidWeight, etorder.ErrNotDraft, etorder.ErrInvalidTransition,
		etrequest.ErrInvalidRequestID, etrequest.ErrInvalidRequester, etrequest.ErrInvalidType,
		etrequest.ErrNotPending, etrequest.ErrNotProcessing,
		etsettle.ErrNotOpen,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
