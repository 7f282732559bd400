package shippingrequest

import (
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/services/svrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
)

// RequestHandler 运输工单 HTTP 处理器
type RequestHandler struct {
	requestService *svrequest.RequestService
	log            logger.Logger
}

// NewRequestHandler 创建工单处理器实例
func NewRequestHandler(requestService *svrequest.RequestService, log logger.Logger) *RequestHandler {
	return &RequestHandler{
		requestService: requestService,
		log:            log,
	}
}
