package locationproxy

import (
	"github.com/gin-gonic/gin"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/location"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/ginx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
)

// LocationHandler 行政区划名称解析透传
// 前端下单表单直接查本服务，由服务端统一走缓存回源
type LocationHandler struct {
	locationClient *location.Client
	log            logger.Logger
}

// NewLocationHandler 创建区划处理器实例
func NewLocationHandler(locationClient *location.Client, log logger.Logger) *LocationHandler {
	return &LocationHandler{
		locationClient: locationClient,
		log:            log,
	}
}

// ResolveCity 城市编码转名称
func (h *LocationHandler) ResolveCity(c *gin.Context) {
	name, err := h.locationClient.ResolveCity(c.Request.Context(), c.Param("cityCode"))
	if err != nil {
		h.log.Warnf(c.Request.Context(), "resolve city failed: code=%s, error=%v", c.Param("cityCode"), err)
		ginx.NotFound(c, "city not found")
		return
	}
	ginx.Success(c, gin.H{"name": name})
}

// ResolveWard 区划编码转名称
func (h *LocationHandler) ResolveWard(c *gin.Context) {
	name, err := h.locationClient.ResolveWard(c.Request.Context(), c.Param("cityCode"), c.Param("wardCode"))
	if err != nil {
		h.log.Warnf(c.Request.Context(), "resolve ward failed: city=%s, ward=%s, error=%v", c.Param("cityCode"), c.Param("wardCode"), err)
		ginx.NotFound(c, "ward not found")
		return
	}
	ginx.Success(c, gin.H{"name": name})
}
