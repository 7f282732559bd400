package settlement

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/server/middlewares"
)

// Get 查询批次详情（含流水）
// GET /api/v1/admin/settlements/:id
func (h *SettlementHandler) Get(c *gin.Context) {
	batch, txs, err := h.settleService.GetBatchDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, &response.SettlementBatchDetailResponse{
		Batch:        response.FromBatchEntity(batch),
		Transactions: response.FromTransactionEntities(txs),
	})
}

// List 分页查询批次列表
// GET /api/v1/admin/settlements?accountId=3&page=1&limit=20
func (h *SettlementHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	accountID, _ := strconv.ParseInt(c.Query("accountId"), 10, 64)

	batches, total, err := h.settleService.ListBatches(c.Request.Context(), accountID, page, limit)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.SuccessList(c, response.FromBatchEntities(batches), total, page, limit)
}

// ListMine 商家查看自己的结算批次
// GET /api/v1/user/settlements
func (h *SettlementHandler) ListMine(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	batches, total, err := h.settleService.ListBatches(c.Request.Context(), middlewares.AccountID(c), page, limit)
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.SuccessList(c, response.FromBatchEntities(batches), total, page, limit)
}

// Transfer 标记批次已打款
// POST /api/v1/admin/settlements/:id/transfer
func (h *SettlementHandler) Transfer(c *gin.Context) {
	batch, err := h.settleService.MarkBatchTransferred(c.Request.Context(), c.Param("id"))
	if err != nil {
		ginx.RespondError(c, err)
		return
	}
	ginx.Success(c, response.FromBatchEntity(batch))
}
