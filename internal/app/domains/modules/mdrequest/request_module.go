package mdrequest

import (
	"context"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rprequest"
)

// RequestModule 运输工单模块
type RequestModule struct {
	requestRepo rprequest.RequestRepository
}

// NewRequestModule 创建工单模块
func NewRequestModule(requestRepo rprequest.RequestRepository) *RequestModule {
	return &RequestModule{
		requestRepo: requestRepo,
	}
}

// CreateRequest 创建工单
func (m *RequestModule) CreateRequest(ctx context.Context, req *etrequest.ShippingRequest) error {
	return m.requestRepo.Create(ctx, req)
}

// GetRequest 查询工单
func (m *RequestModule) GetRequest(ctx context.Context, requestID string) (*etrequest.ShippingRequest, error) {
	return m.requestRepo.GetByID(ctx, requestID)
}

// UpdateRequest 保存工单变更
func (m *RequestModule) UpdateRequest(ctx context.Context, req *etrequest.ShippingRequest) error {
	return m.requestRepo.Update(ctx, req)
}

// ListRequests 分页查询工单列表
func (m *RequestModule) ListRequests(ctx context.Context, q rprequest.Query) ([]*etrequest.ShippingRequest, int64, error) {
	return m.requestRepo.List(ctx, q)
}
