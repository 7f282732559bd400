package account

import (
	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/request"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
)

// Login 登录接口
// POST /api/v1/auth/login
func (h *AccountHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ginx.BadRequestWithValidation(c, err)
		return
	}

	token, account, err := h.accountService.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}

	ginx.Success(c, &response.LoginResponse{
		Token:   token,
		Account: response.FromAccountEntity(account),
	})
}
