package order

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/request"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/middlewares"
)

// Update 用户侧逐字段编辑
// PATCH /api/v1/user/orders/:id
func (h *OrderHandler) Update(c *gin.Context) {
	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order, err := h.orderService.UpdateUserOrderFields(c.Request.Context(), middlewares.AccountID(c), c.Param("id"), req.Fields)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromOrderEntity(order))
}

// UpdateByManager 网点侧逐字段编辑
// PATCH /api/v1/manager/orders/:id
func (h *OrderHandler) UpdateByManager(c *gin.Context) {
	h.updateOffice(c, h.orderService.UpdateManagerOrderFields)
}

// UpdateByAdmin 管理员侧逐字段编辑
// PATCH /api/v1/admin/orders/:id
func (h *OrderHandler) UpdateByAdmin(c *gin.Context) {
	h.updateOffice(c, h.orderService.UpdateAdminOrderFields)
}

func (h *OrderHandler) updateOffice(c *gin.Context, update func(ctx context.Context, orderID string, fields map[string]interface{}) (*etorder.Order, error)) {
	var req request.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order, err := update(c.Request.Context(), c.Param("id"), req.Fields)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromOrderEntity(order))
}
