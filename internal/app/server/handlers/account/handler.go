package account

import (
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdnotify"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/services/svaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
)

// AccountHandler 账号 HTTP 处理器
type AccountHandler struct {
	accountService *svaccount.AccountService
	notifyModule   *mdnotify.NotifyModule
	log            logger.Logger
}

// NewAccountHandler 创建账号处理器实例
func NewAccountHandler(accountService *svaccount.AccountService, notifyModule *mdnotify.NotifyModule, log logger.Logger) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		notifyModule:   notifyModule,
		log:            log,
	}
}
