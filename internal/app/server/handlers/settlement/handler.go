package settlement

import (
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/services/svsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
)

// SettlementHandler 货款结算 HTTP 处理器
type SettlementHandler struct {
	settleService *svsettle.SettleService
	log           logger.Logger
}

// NewSettlementHandler 创建结算处理器实例
func NewSettlementHandler(settleService *svsettle.SettleService, log logger.Logger) *SettlementHandler {
	return &SettlementHandler{
		settleService: settleService,
		log:           log,
	}
}
