package rpsettle

import (
	"context"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etsettle"
)

// SettleRepository 结算仓储接口
type SettleRepository interface {
	// CreateBatch 创建结算批次及其流水，并将入批订单标记为已结算（同一事务）
	CreateBatch(ctx context.Context, batch *etsettle.Batch, txs []*etsettle.Transaction, orderIDs []string) error

	// GetBatch 根据ID查询批次
	GetBatch(ctx context.Context, batchID string) (*etsettle.Batch, error)

	// ListBatches 按商家账号分页查询批次
	ListBatches(ctx context.Context, accountID int64, page, limit int) ([]*etsettle.Batch, int64, error)

	// ListTransactions 查询批次下全部流水
	ListTransactions(ctx context.Context, batchID string) ([]*etsettle.Transaction, error)

	// UpdateBatch 保存批次状态变更
	UpdateBatch(ctx context.Context, batch *etsettle.Batch) error
}
