package settlement

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/request"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
)

// Reconcile 触发异步结算对账
// POST /api/v1/admin/settlements/reconcile
// 对账任务入队后立即返回，批次由 worker 生成
func (h *SettlementHandler) Reconcile(c *gin.Context) {
	var req request.ReconcileRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			ginx.BadRequestWithValidation(c, err)
			return
		}
	}

	before := time.Now()
	if req.Before != "" {
		parsed, err := time.Parse(time.RFC3339, req.Before)
		if err != nil {
			ginx.BadRequest(c, "before must be RFC3339")
			return
		}
		before = parsed
	}

	if err := h.settleService.EnqueueReconcile(c.Request.Context(), before); err != nil {
		h.log.Errorf(c.Request.Context(), "enqueue reconcile failed: %v", err)
		ginx.InternalError(c, "enqueue reconcile failed")
		return
	}
	ginx.SuccessMessage(c, "reconcile enqueued")
}
