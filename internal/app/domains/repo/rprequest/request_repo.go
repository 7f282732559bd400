package rprequest

import (
	"context"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etrequest"
)

// Query 工单列表查询条件
type Query struct {
	AccountID int64
	Status    etrequest.Status
	Page      int
	Limit     int
}

// RequestRepository 工单仓储接口
type RequestRepository interface {
	// Create 创建工单
	Create(ctx context.Context, req *etrequest.ShippingRequest) error

	// GetByID 根据ID查询工单
	GetByID(ctx context.Context, requestID string) (*etrequest.ShippingRequest, error)

	// Update 保存工单的可变字段
	Update(ctx context.Context, req *etrequest.ShippingRequest) error

	// List 分页查询工单列表
	List(ctx context.Context, q Query) ([]*etrequest.ShippingRequest, int64, error)
}
