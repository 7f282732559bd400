package account

import (
	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/request"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
)

// Register 注册接口
// POST /api/v1/auth/register
func (h *AccountHandler) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	account, err := h.accountService.Register(c.Request.Context(), req.Name, req.Phone, req.Email, req.Password, req.Role)
	if err != nil {
		h.log.Warnf(c.Request.Context(), "register failed: phone=%s, error=%v", req.Phone, err)
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, response.FromAccountEntity(account))
}
