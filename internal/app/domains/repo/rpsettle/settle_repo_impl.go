package rpsettle

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/persistence/model"
)

// SettleRepositoryImpl 结算仓储实现（MySQL）
type SettleRepositoryImpl struct {
	db *gorm.DB
}

// NewSettleRepository 创建结算仓储实例
func NewSettleRepository(db *gorm.DB) SettleRepository {
	return &SettleRepositoryImpl{db: db}
}

// CreateBatch 创建结算批次及其流水，并将入批订单标记为已结算
// 三步同一事务：任一失败整体回滚，重投递不会产生重复批次
func (r *SettleRepositoryImpl) CreateBatch(ctx context.Context, batch *etsettle.Batch, txs []*etsettle.Transaction, orderIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(batchToGorm(batch)).Error; err != nil {
			return err
		}
		rows := make([]*model.SettlementTransaction, 0, len(txs))
		for _, t := range txs {
			rows = append(rows, txToGorm(t))
		}
		if err := tx.Create(rows).Error; err != nil {
			return err
		}
		return tx.Model(&model.Order{}).
			Where("id IN ?", orderIDs).
			Updates(map[string]interface{}{
				"payment_status": string(etorder.PaymentSettled),
				"updated_at":     time.Now(),
			}).Error
	})
}

// GetBatch 根据ID查询批次，不存在返回 nil
func (r *SettleRepositoryImpl) GetBatch(ctx context.Context, batchID string) (*etsettle.Batch, error) {
	var po model.SettlementBatch
	err := r.db.WithContext(ctx).Where("id = ?", batchID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return batchToDomain(&po), nil
}

// ListBatches 按商家账号分页查询批次
func (r *SettleRepositoryImpl) ListBatches(ctx context.Context, accountID int64, page, limit int) ([]*etsettle.Batch, int64, error) {
	var total int64
	var pos []model.SettlementBatch

	query := r.db.WithContext(ctx).Model(&model.SettlementBatch{})
	if accountID > 0 {
		query = query.Where("account_id = ?", accountID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	batches := make([]*etsettle.Batch, 0, len(pos))
	for i := range pos {
		batches = append(batches, batchToDomain(&pos[i]))
	}
	return batches, total, nil
}

// ListTransactions 查询批次下全部流水
func (r *SettleRepositoryImpl) ListTransactions(ctx context.Context, batchID string) ([]*etsettle.Transaction, error) {
	var pos []model.SettlementTransaction
	err := r.db.WithContext(ctx).
		Where("batch_id = ?", batchID).
		Order("created_at").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	txs := make([]*etsettle.Transaction, 0, len(pos))
	for i := range pos {
		txs = append(txs, txToDomain(&pos[i]))
	}
	return txs, nil
}

// UpdateBatch 保存批次状态变更
func (r *SettleRepositoryImpl) UpdateBatch(ctx context.Context, batch *etsettle.Batch) error {
	return r.db.WithContext(ctx).
		Model(&model.SettlementBatch{}).
		Where("id = ?", batch.ID).
		Updates(map[string]interface{}{
			"status":         string(batch.Status),
			"transferred_at": batch.TransferredAt,
		}).Error
}

func batchToGorm(b *etsettle.Batch) *model.SettlementBatch {
	return &model.SettlementBatch{
		ID:            b.ID,
		AccountID:     b.AccountID,
		Status:        string(b.Status),
		TotalCOD:      b.TotalCOD,
		TotalFee:      b.TotalFee,
		TotalNet:      b.TotalNet,
		TxCount:       b.TxCount,
		PeriodStart:   b.PeriodStart,
		PeriodEnd:     b.PeriodEnd,
		CreatedAt:     b.CreatedAt,
		TransferredAt: b.TransferredAt,
	}
}

func batchToDomain(po *model.SettlementBatch) *etsettle.Batch {
	return &etsettle.Batch{
		ID:            po.ID,
		AccountID:     po.AccountID,
		Status:        etsettle.BatchStatus(po.Status),
		TotalCOD:      po.TotalCOD,
		TotalFee:      po.TotalFee,
		TotalNet:      po.TotalNet,
		TxCount:       po.TxCount,
		PeriodStart:   po.PeriodStart,
		PeriodEnd:     po.PeriodEnd,
		CreatedAt:     po.CreatedAt,
		TransferredAt: po.TransferredAt,
	}
}

func txToGorm(t *etsettle.Transaction) *model.SettlementTransaction {
	return &model.SettlementTransaction{
		ID:         t.ID,
		BatchID:    t.BatchID,
		OrderID:    t.OrderID,
		TrackingNo: t.TrackingNo,
		COD:        t.COD,
		Fee:        t.Fee,
		Net:        t.Net,
		CreatedAt:  t.CreatedAt,
	}
}

func txToDomain(po *model.SettlementTransaction) *etsettle.Transaction {
	return &etsettle.Transaction{
		ID:         po.ID,
		BatchID:    po.BatchID,
		OrderID:    po.OrderID,
		TrackingNo: po.TrackingNo,
		COD:        po.COD,
		Fee:        po.Fee,
		Net:        po.Net,
		CreatedAt:  po.CreatedAt,
	}
}
