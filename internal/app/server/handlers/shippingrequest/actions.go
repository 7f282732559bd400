package shippingrequest

import (
	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/request"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/middlewares"
)

// Cancel 发起人取消工单
// POST /api/v1/user/requests/:id/cancel
func (h *RequestHandler) Cancel(c *gin.Context) {
	sr, err := h.requestService.CancelRequest(c.Request.Context(), middlewares.AccountID(c), c.Param("id"))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromRequestEntity(sr))
}

// Take 受理工单
// POST /api/v1/manager/requests/:id/take
func (h *RequestHandler) Take(c *gin.Context) {
	sr, err := h.requestService.TakeRequest(c.Request.Context(), middlewares.AccountID(c), c.Param("id"))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromRequestEntity(sr))
}

// Resolve 解决工单
// POST /api/v1/manager/requests/:id/resolve
func (h *RequestHandler) Resolve(c *gin.Context) {
	var req request.HandleShippingRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	sr, err := h.requestService.ResolveRequest(c.Request.Context(), middlewares.AccountID(c), c.Param("id"), req.Response, req.ToAttachments())
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromRequestEntity(sr))
}

// Reject 驳回工单
// POST /api/v1/manager/requests/:id/reject
func (h *RequestHandler) Reject(c *gin.Context) {
	var req request.HandleShippingRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	sr, err := h.requestService.RejectRequest(c.Request.Context(), middlewares.AccountID(c), c.Param("id"), req.Response)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromRequestEntity(sr))
}
