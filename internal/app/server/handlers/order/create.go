package order

import (
	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/request"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/middlewares"
)

// Create 用户创建订单草稿
// POST /api/v1/user/orders
func (h *OrderHandler) Create(c *gin.Context) {
	h.create(c, etorder.CreatorUser)
}

// CreateByManager 网点代客下单
// POST /api/v1/manager/orders
func (h *OrderHandler) CreateByManager(c *gin.Context) {
	h.create(c, etorder.CreatorManager)
}

func (h *OrderHandler) create(c *gin.Context, creator etorder.CreatorType) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), middlewares.AccountID(c), creator, req.ToCreateOrderInput())
	if err != nil {
		h.log.Errorf(c.Request.Context(), "create order failed: %v", err)
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, response.FromOrderEntity(order))
}
