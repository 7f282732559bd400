package domains

import (
	"context"
	"encoding/json"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/common/model"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/worker/domains/handlers/fanout"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/worker/domains/handlers/settle"
)

// JobHandler 任务处理器接口
type JobHandler interface {
	Handle(ctx context.Context, meta *model.Meta, payload json.RawMessage) error
}

// Deps 处理器依赖集合（由 main 装配后注入）
type Deps struct {
	SettleHandler *settle.Handler
	FanoutHandler *fanout.Handler
}

// HandlerMap 路由表（ActionType → Handler 映射）
func (d *Deps) HandlerMap() map[string]JobHandler {
	return map[string]JobHandler{
		model.ActionSettlementReconcile: d.SettleHandler,
		model.ActionOrderEventFanout:    d.FanoutHandler,
	}
}
