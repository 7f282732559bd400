package order

import (
	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/middlewares"
)

// Get 用户查询订单详情（校验归属）
// GET /api/v1/user/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	order, err := h.orderService.GetUserOrder(c.Request.Context(), middlewares.AccountID(c), c.Param("id"))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	resp := response.FromOrderEntity(order)
	h.enrichLocation(c.Request.Context(), resp)
	ginx.Success(c, resp)
}

// GetOffice 网点/管理侧查询订单详情
// GET /api/v1/manager/orders/:id
func (h *OrderHandler) GetOffice(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	resp := response.FromOrderEntity(order)
	h.enrichLocation(c.Request.Context(), resp)
	ginx.Success(c, resp)
}

// GetForDelivery 快递员/司机查询任务详情，附带导航链接
// GET /api/v1/shipper/orders/:id
func (h *OrderHandler) GetForDelivery(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	resp := response.FromOrderEntity(order)
	h.enrichLocation(c.Request.Context(), resp)
	ginx.Success(c, withDirections(resp))
}

// Track 按运单号公开查件
// GET /api/v1/tracking/:trackingNo
func (h *OrderHandler) Track(c *gin.Context) {
	order, err := h.orderService.TrackOrder(c.Request.Context(), c.Param("trackingNo"))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	resp := response.FromOrderEntity(order)
	h.enrichLocation(c.Request.Context(), resp)
	ginx.Success(c, resp)
}

// Print 查询可打印面单的订单
// GET /api/v1/manager/orders/:id/print
func (h *OrderHandler) Print(c *gin.Context) {
	order, err := h.orderService.GetPrintableOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	resp := response.FromOrderEntity(order)
	h.enrichLocation(c.Request.Context(), resp)
	ginx.Success(c, resp)
}
