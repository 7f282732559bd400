package order

import (
	"context"
	"fmt"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/apimodel/response"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/services/svorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/location"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
)

// OrderHandler 订单 HTTP 处理器
type OrderHandler struct {
	orderService   *svorder.OrderService
	locationClient *location.Client
	log            logger.Logger
}

// NewOrderHandler 创建订单处理器实例
func NewOrderHandler(orderService *svorder.OrderService, locationClient *location.Client, log logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		locationClient: locationClient,
		log:            log,
	}
}

// enrichLocation 解析联系人的行政区划名称，解析失败只返回编码
func (h *OrderHandler) enrichLocation(ctx context.Context, resp *response.OrderResponse) {
	for _, cv := range []*response.ContactView{resp.Sender, resp.Recipient} {
		if cv == nil || cv.CityCode == "" {
			continue
		}
		if name, err := h.locationClient.ResolveCity(ctx, cv.CityCode); err == nil {
			cv.CityName = name
		}
		if cv.WardCode == "" {
			continue
		}
		if name, err := h.locationClient.ResolveWard(ctx, cv.CityCode, cv.WardCode); err == nil {
			cv.WardName = name
		}
	}
}

// withDirections 为派送视图附上导航链接
func withDirections(resp *response.OrderResponse) *response.OrderResponse {
	if resp.Sender != nil && resp.Recipient != nil {
		resp.DirectionsURL = location.DirectionsURL(contactAddress(resp.Sender), contactAddress(resp.Recipient))
	}
	return resp
}

func contactAddress(cv *response.ContactView) string {
	city := cv.CityName
	if city == "" {
		city = cv.CityCode
	}
	ward := cv.WardName
	if ward == "" {
		ward = cv.WardCode
	}
	return fmt.Sprintf("%s, %s, %s", cv.Detail, ward, city)
}
