package account

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/middlewares"
)

// WaitNotification 长轮询等待下一条订单事件通知
// GET /api/v1/user/notifications/wait?timeout=25
// 超时无消息时返回空 data，客户端重新发起
func (h *AccountHandler) WaitNotification(c *gin.Context) {
	timeoutSeconds := 25
	if t, err := strconv.Atoi(c.Query("timeout")); err == nil && t > 0 && t <= 60 {
		timeoutSeconds = t
	}

	n, err := h.notifyModule.WaitForNotification(c.Request.Context(), middlewares.AccountID(c), time.Duration(timeoutSeconds)*time.Second)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			ginx.Success(c, nil)
			return
		}
		h.log.Warnf(c.Request.Context(), "wait notification failed: error=%v", err)
		ginx.InternalError(c, "wait notification failed")
		return
	}

	ginx.Success(c, n)
}
