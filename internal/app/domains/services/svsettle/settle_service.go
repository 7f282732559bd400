package svsettle

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/errorx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
)

// ReconcileEnqueuer 对账任务入队接口（实现为通知模块）
type ReconcileEnqueuer interface {
	EnqueueSettlementReconcile(ctx context.Context, before time.Time) error
}

// SettleService 代收货款结算服务
type SettleService struct {
	settleModule *mdsettle.SettleModule
	orderModule  *mdorder.OrderModule
	enqueuer     ReconcileEnqueuer
	log          logger.Logger
}

// NewSettleService 创建结算服务实例
func NewSettleService(settleModule *mdsettle.SettleModule, orderModule *mdorder.OrderModule, enqueuer ReconcileEnqueuer, log logger.Logger) *SettleService {
	return &SettleService{
		settleModule: settleModule,
		orderModule:  orderModule,
		enqueuer:     enqueuer,
		log:          log,
	}
}

// EnqueueReconcile 触发异步对账（管理端入口，实际执行在 worker）
func (s *SettleService) EnqueueReconcile(ctx context.Context, before time.Time) error {
	return s.enqueuer.EnqueueSettlementReconcile(ctx, before)
}

// ReconcileCOD 对账结算：按商家归集未结算的代收货款订单并生成结算批次
// 1. 查询截止时间前已签收、未结算、有代收货款的订单
// 2. 按商家账号分组，每组生成一个批次及其流水
// 3. 批次落库与订单标记已结算在同一事务内，重投递不会重复入批
func (s *SettleService) ReconcileCOD(ctx context.Context, before time.Time) ([]*etsettle.Batch, error) {
	orders, err := s.orderModule.ListUnsettledCOD(ctx, before)
	if err != nil {
		return nil, fmt.Errorf("list unsettled orders failed: %w", err)
	}
	if len(orders) == 0 {
		return nil, nil
	}

	// 订单按 account_id 排序返回，顺序分组即可
	groups := make(map[int64][]*etorder.Order)
	accountIDs := make([]int64, 0)
	for _, o := range orders {
		if _, ok := groups[o.AccountID]; !ok {
			accountIDs = append(accountIDs, o.AccountID)
		}
		groups[o.AccountID] = append(groups[o.AccountID], o)
	}

	batches := make([]*etsettle.Batch, 0, len(accountIDs))
	for _, accountID := range accountIDs {
		group := groups[accountID]

		batchID := uuid.New().String()
		periodStart := group[0].CreatedAt
		txs := make([]*etsettle.Transaction, 0, len(group))
		orderIDs := make([]string, 0, len(group))
		for _, o := range group {
			if o.CreatedAt.Before(periodStart) {
				periodStart = o.CreatedAt
			}
			txs = append(txs, &etsettle.Transaction{
				ID:         uuid.New().String(),
				BatchID:    batchID,
				OrderID:    o.ID,
				TrackingNo: o.TrackingNo,
				COD:        o.COD,
				Fee:        o.TotalFee,
				CreatedAt:  time.Now(),
			})
			orderIDs = append(orderIDs, o.ID)
		}

		batch, err := etsettle.NewBatch(batchID, accountID, periodStart, before, txs)
		if err != nil {
			return nil, fmt.Errorf("build settlement batch failed: %w", err)
		}

		if err := s.settleModule.CreateBatch(ctx, batch, txs, orderIDs); err != nil {
			return nil, fmt.Errorf("save settlement batch failed: %w", err)
		}

		s.log.Infof(ctx, "settlement batch created: batch_id=%s, account_id=%d, tx_count=%d", batchID, accountID, len(txs))
		batches = append(batches, batch)
	}

	return batches, nil
}

// GetBatchDetail 查询批次及其流水
func (s *SettleService) GetBatchDetail(ctx context.Context, batchID string) (*etsettle.Batch, []*etsettle.Transaction, error) {
	batch, err := s.settleModule.GetBatch(ctx, batchID)
	if err != nil {
		return nil, nil, err
	}
	if batch == nil {
		return nil, nil, errorx.ErrBatchNotFound
	}

	txs, err := s.settleModule.ListTransactions(ctx, batchID)
	if err != nil {
		return nil, nil, err
	}
	return batch, txs, nil
}

// ListBatches 按商家账号分页查询批次
func (s *SettleService) ListBatches(ctx context.Context, accountID int64, page, limit int) ([]*etsettle.Batch, int64, error) {
	return s.settleModule.ListBatches(ctx, accountID, page, limit)
}

// MarkBatchTransferred 标记批次已打款
func (s *SettleService) MarkBatchTransferred(ctx context.Context, batchID string) (*etsettle.Batch, error) {
	batch, err := s.settleModule.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if batch == nil {
		return nil, errorx.ErrBatchNotFound
	}
	if err := batch.MarkTransferred(); err != nil {
		return nil, err
	}
	return batch, s.settleModule.UpdateBatch(ctx, batch)
}
