package order

import (
	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/request"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
)

// AssignShipper 指派揽收/派送快递员
// POST /api/v1/manager/orders/:id/assign-shipper
func (h *OrderHandler) AssignShipper(c *gin.Context) {
	var req request.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order, err := h.orderService.AssignShipper(c.Request.Context(), c.Param("id"), req.AccountID)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromOrderEntity(order))
}

// AssignDriver 指派干线司机
// POST /api/v1/manager/orders/:id/assign-driver
func (h *OrderHandler) AssignDriver(c *gin.Context) {
	var req request.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order, err := h.orderService.AssignDriver(c.Request.Context(), c.Param("id"), req.AccountID)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromOrderEntity(order))
}
