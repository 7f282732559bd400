package shippingrequest

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rprequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/middlewares"
)

// Get 发起人查询工单详情（校验归属）
// GET /api/v1/user/requests/:id
func (h *RequestHandler) Get(c *gin.Context) {
	sr, err := h.requestService.GetUserRequest(c.Request.Context(), middlewares.AccountID(c), c.Param("id"))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromRequestEntity(sr))
}

// GetOffice 网点/管理侧查询工单详情
// GET /api/v1/manager/requests/:id
func (h *RequestHandler) GetOffice(c *gin.Context) {
	sr, err := h.requestService.GetRequest(c.Request.Context(), c.Param("id"))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromRequestEntity(sr))
}

// List 发起人侧工单列表
// GET /api/v1/user/requests?status=PENDING
func (h *RequestHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reqs, total, err := h.requestService.ListUserRequests(c.Request.Context(), middlewares.AccountID(c), etrequest.Status(c.Query("status")), page, limit)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.SuccessList(c, response.FromRequestEntities(reqs), total, page, limit)
}

// ListOffice 网点/管理侧工单列表
// GET /api/v1/manager/requests?status=PENDING&accountId=3
func (h *RequestHandler) ListOffice(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	accountID, _ := strconv.ParseInt(c.Query("accountId"), 10, 64)

	reqs, total, err := h.requestService.ListRequests(c.Request.Context(), rprequest.Query{
		AccountID: accountID,
		Status:    etrequest.Status(c.Query("status")),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.SuccessList(c, response.FromRequestEntities(reqs), total, page, limit)
}
