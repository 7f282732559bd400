package account

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/middlewares"
)

// Profile 当前账号信息
// GET /api/v1/user/profile
func (h *AccountHandler) Profile(c *gin.Context) {
	account, err := h.accountService.GetAccount(c.Request.Context(), middlewares.AccountID(c))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromAccountEntity(account))
}

// List 按角色分页查询账号
// GET /api/v1/admin/accounts?role=SHIPPER&page=1&limit=20
func (h *AccountHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	accounts, total, err := h.accountService.ListAccounts(c.Request.Context(), etaccount.Role(c.Query("role")), page, limit)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.SuccessList(c, response.FromAccountEntities(accounts), total, page, limit)
}
