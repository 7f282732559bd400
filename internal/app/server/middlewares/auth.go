package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/auth"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
)

// gin context 键
const (
	CtxAccountID = "account_id"
	CtxRole      = "role"
)

// JWTAuth 认证中间件：解析 Bearer 令牌并注入账号信息
func JWTAuth(issuer *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			ginx.Unauthorized(c, "missing or malformed authorization header")
			c.Abort()
			return
		}

		claims, err := issuer.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			ginx.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxAccountID, claims.AccountID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// RequireRole 角色校验中间件，需在 JWTAuth 之后使用
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		if !allowed[role] {
			ginx.Forbidden(c, "insufficient role")
			c.Abort()
			return
		}
		c.Next()
	}
}

// AccountID 从 gin context 取当前账号ID
func AccountID(c *gin.Context) int64 {
	return c.GetInt64(CtxAccountID)
}
