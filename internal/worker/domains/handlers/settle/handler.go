package settle

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdnotify"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/services/svsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/common/model"
)

// Handler 结算对账任务处理器
// 执行实际的对账归集，并向商家推送结算完成通知
type Handler struct {
	settleService *svsettle.SettleService
	notifyModule  *mdnotify.NotifyModule
	log           logger.Logger
}

// NewHandler 创建结算处理器
func NewHandler(settleService *svsettle.SettleService, notifyModule *mdnotify.NotifyModule, log logger.Logger) *Handler {
	return &Handler{
		settleService: settleService,
		notifyModule:  notifyModule,
		log:           log,
	}
}

// Handle 处理 settlement_reconcile 任务
func (h *Handler) Handle(ctx context.Context, meta *model.Meta, payload json.RawMessage) error {
	var data model.SettlementReconcileData
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("unmarshal reconcile data failed: %w", err)
	}

	before := time.Now()
	if data.Before != "" {
		parsed, err := time.Parse(time.RFC3339, data.Before)
		if err != nil {
			return fmt.Errorf("parse before failed: %w", err)
		}
		before = parsed
	}

	batches, err := h.settleService.ReconcileCOD(ctx, before)
	if err != nil {
		return fmt.Errorf("reconcile failed: %w", err)
	}

	h.log.Infof(ctx, "reconcile complete: request_id=%s, batches=%d", meta.RequestID, len(batches))

	// 结算完成通知商家，推送失败不影响对账结果
	for _, batch := range batches {
		n := model.OrderNotification{Type: "SETTLEMENT", TrackingNo: batch.ID}
		if err := h.notifyModule.PublishNotification(ctx, batch.AccountID, n); err != nil {
			h.log.Warnf(ctx, "publish settlement notification failed: batch_id=%s, error=%v", batch.ID, err)
		}
	}

	return nil
}
