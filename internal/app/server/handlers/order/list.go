package order

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rporder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/middlewares"
)

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return page, limit
}

// List 用户侧订单列表
// GET /api/v1/user/orders?status=PENDING&page=1&limit=20
func (h *OrderHandler) List(c *gin.Context) {
	page, limit := pagination(c)
	orders, total, err := h.orderService.ListUserOrders(c.Request.Context(), middlewares.AccountID(c), etorder.Status(c.Query("status")), page, limit)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.SuccessList(c, response.FromOrderEntities(orders), total, page, limit)
}

// ListOffice 网点/管理侧订单列表（自由组合条件）
// GET /api/v1/manager/orders?status=PENDING&creatorType=USER&accountId=3
func (h *OrderHandler) ListOffice(c *gin.Context) {
	page, limit := pagination(c)
	accountID, _ := strconv.ParseInt(c.Query("accountId"), 10, 64)

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), rporder.Query{
		AccountID:   accountID,
		Status:      etorder.Status(c.Query("status")),
		CreatorType: etorder.CreatorType(c.Query("creatorType")),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.SuccessList(c, response.FromOrderEntities(orders), total, page, limit)
}

// ListShipper 快递员侧任务列表
// GET /api/v1/shipper/orders?status=READY_FOR_PICKUP
func (h *OrderHandler) ListShipper(c *gin.Context) {
	page, limit := pagination(c)
	orders, total, err := h.orderService.ListShipperOrders(c.Request.Context(), middlewares.AccountID(c), etorder.Status(c.Query("status")), page, limit)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.SuccessList(c, response.FromOrderEntities(orders), total, page, limit)
}

// ListDriver 司机侧任务列表
// GET /api/v1/driver/orders?status=AT_ORIGIN_OFFICE
func (h *OrderHandler) ListDriver(c *gin.Context) {
	page, limit := pagination(c)
	orders, total, err := h.orderService.ListDriverOrders(c.Request.Context(), middlewares.AccountID(c), etorder.Status(c.Query("status")), page, limit)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.SuccessList(c, response.FromOrderEntities(orders), total, page, limit)
}
