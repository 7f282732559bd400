package shippingrequest

import (
	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/request"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/middlewares"
)

// Create 创建运输工单
// POST /api/v1/user/requests
func (h *RequestHandler) Create(c *gin.Context) {
	var req request.CreateShippingRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	sr, err := h.requestService.CreateRequest(c.Request.Context(), middlewares.AccountID(c), req.ToCreateRequestInput())
	if err != nil {
		h.log.Warnf(c.Request.Context(), "create shipping request failed: %v", err)
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromRequestEntity(sr))
}
