package mdsettle

import (
	"context"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rpsettle"
)

// SettleModule 货款结算模块
type SettleModule struct {
	settleRepo rpsettle.SettleRepository
}

// NewSettleModule 创建结算模块
func NewSettleModule(settleRepo rpsettle.SettleRepository) *SettleModule {
	return &SettleModule{
		settleRepo: settleRepo,
	}
}

// CreateBatch 创建结算批次及其流水，并将入批订单标记为已结算（同一事务）
func (m *SettleModule) CreateBatch(ctx context.Context, batch *etsettle.Batch, txs []*etsettle.Transaction, orderIDs []string) error {
	return m.settleRepo.CreateBatch(ctx, batch, txs, orderIDs)
}

// GetBatch 查询批次
func (m *SettleModule) GetBatch(ctx context.Context, batchID string) (*etsettle.Batch, error) {
	return m.settleRepo.GetBatch(ctx, batchID)
}

// ListBatches 按商家账号分页查询批次
func (m *SettleModule) ListBatches(ctx context.Context, accountID int64, page, limit int) ([]*etsettle.Batch, int64, error) {
	return m.settleRepo.ListBatches(ctx, accountID, page, limit)
}

// ListTransactions 查询批次下全部流水
func (m *SettleModule) ListTransactions(ctx context.Context, batchID string) ([]*etsettle.Transaction, error) {
	return m.settleRepo.ListTransactions(ctx, batchID)
}

// UpdateBatch 保存批次状态变更
func (m *SettleModule) UpdateBatch(ctx context.Context, batch *etsettle.Batch) error {
	return m.settleRepo.UpdateBatch(ctx, batch)
}
