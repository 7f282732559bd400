package order

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/middlewares"
)

// Publish 发布订单：草稿转待确认
// POST /api/v1/user/orders/:id/publish
func (h *OrderHandler) Publish(c *gin.Context) {
	h.actorOp(c, h.orderService.PublishOrder)
}

// Cancel 用户取消订单
// POST /api/v1/user/orders/:id/cancel
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.actorOp(c, h.orderService.CancelUserOrder)
}

// Delete 删除草稿订单
// DELETE /api/v1/user/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	if err := h.orderService.DeleteUserOrder(c.Request.Context(), middlewares.AccountID(c), c.Param("id")); err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.SuccessMessage(c, "order deleted")
}

// CancelByManager 网点取消订单
// POST /api/v1/manager/orders/:id/cancel
func (h *OrderHandler) CancelByManager(c *gin.Context) {
	h.officeOp(c, h.orderService.ManagerCancelOrder)
}

// Confirm 网点确认订单
// POST /api/v1/manager/orders/:id/confirm
func (h *OrderHandler) Confirm(c *gin.Context) {
	h.officeOp(c, h.orderService.ConfirmOrder)
}

// MarkReady 网点标记待揽收
// POST /api/v1/manager/orders/:id/ready
func (h *OrderHandler) MarkReady(c *gin.Context) {
	h.officeOp(c, h.orderService.MarkReady)
}

// ReceiveAtOrigin 网点入库
// POST /api/v1/manager/orders/:id/receive
func (h *OrderHandler) ReceiveAtOrigin(c *gin.Context) {
	h.officeOp(c, h.orderService.ReceiveAtOrigin)
}

// Return 退回寄件人
// POST /api/v1/manager/orders/:id/return
func (h *OrderHandler) Return(c *gin.Context) {
	h.officeOp(c, h.orderService.ReturnOrder)
}

// StartPickup 快递员开始揽收
// POST /api/v1/shipper/orders/:id/start-pickup
func (h *OrderHandler) StartPickup(c *gin.Context) {
	h.actorOp(c, h.orderService.StartPickup)
}

// FinishPickup 快递员完成揽收
// POST /api/v1/shipper/orders/:id/finish-pickup
func (h *OrderHandler) FinishPickup(c *gin.Context) {
	h.actorOp(c, h.orderService.FinishPickup)
}

// StartDelivery 快递员开始派送
// POST /api/v1/shipper/orders/:id/start-delivery
func (h *OrderHandler) StartDelivery(c *gin.Context) {
	h.actorOp(c, h.orderService.StartDelivery)
}

// FinishDelivery 快递员签收
// POST /api/v1/shipper/orders/:id/finish-delivery
func (h *OrderHandler) FinishDelivery(c *gin.Context) {
	h.actorOp(c, h.orderService.FinishDelivery)
}

// FailDelivery 快递员标记派送失败
// POST /api/v1/shipper/orders/:id/fail-delivery
func (h *OrderHandler) FailDelivery(c *gin.Context) {
	h.actorOp(c, h.orderService.FailDelivery)
}

// RetryDelivery 派送失败后重新派送
// POST /api/v1/shipper/orders/:id/retry-delivery
func (h *OrderHandler) RetryDelivery(c *gin.Context) {
	h.actorOp(c, h.orderService.RetryDelivery)
}

// DepartOrigin 司机发车
// POST /api/v1/driver/orders/:id/depart
func (h *OrderHandler) DepartOrigin(c *gin.Context) {
	h.actorOp(c, h.orderService.DepartOrigin)
}

// ArriveDest 司机到达目的网点
// POST /api/v1/driver/orders/:id/arrive
func (h *OrderHandler) ArriveDest(c *gin.Context) {
	h.actorOp(c, h.orderService.ArriveDest)
}

// actorOp 带操作者身份的订单操作
func (h *OrderHandler) actorOp(c *gin.Context, op func(ctx context.Context, actorID int64, orderID string) (*etorder.Order, error)) {
	order, err := op(c.Request.Context(), middlewares.AccountID(c), c.Param("id"))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromOrderEntity(order))
}

// officeOp 网点/管理侧订单操作
func (h *OrderHandler) officeOp(c *gin.Context, op func(ctx context.Context, orderID string) (*etorder.Order, error)) {
	order, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromOrderEntity(order))
}
