package fanout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdnotify"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/common/model"
)

// Handler 订单事件扩散处理器
// 把一条订单事件扩散到所有参与方的通知频道
type Handler struct {
	notifyModule *mdnotify.NotifyModule
	log          logger.Logger
}

// NewHandler 创建扩散处理器
func NewHandler(notifyModule *mdnotify.NotifyModule, log logger.Logger) *Handler {
	return &Handler{
		notifyModule: notifyModule,
		log:          log,
	}
}

// Handle 处理 order_event_fanout 任务
func (h *Handler) Handle(ctx context.Context, meta *model.Meta, payload json.RawMessage) error {
	var data model.OrderEventData
	if err := json.Unmarshal(payload, &data); err != nil {
		return fmt.Errorf("unmarshal order event failed: %w", err)
	}

	n := model.OrderNotification{
		Type:       data.EventType,
		TrackingNo: data.TrackingNo,
	}

	var failed int
	for _, partyID := range data.PartyIDs {
		if err := h.notifyModule.PublishNotification(ctx, partyID, n); err != nil {
			failed++
			h.log.Warnf(ctx, "publish notification failed: account_id=%d, order_id=%s, error=%v", partyID, data.OrderID, err)
		}
	}
	if failed > 0 {
		return fmt.Errorf("fanout incomplete: %d/%d targets failed", failed, len(data.PartyIDs))
	}

	h.log.Infof(ctx, "fanout complete: order_id=%s, event=%s, targets=%d", data.OrderID, data.EventType, len(data.PartyIDs))
	return nil
}
