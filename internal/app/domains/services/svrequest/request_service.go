package svrequest

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/policy"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rprequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/errorx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/idgen"
)

// 工单编号与运单号同一套生成规则，前缀区分
var codeGen = idgen.NewTrackingNumberGenerator("RQ", 1)

// RequestService 运输工单服务
type RequestService struct {
	requestModule *mdrequest.RequestModule
	orderModule   *mdorder.OrderModule
}

// NewRequestService 创建工单服务实例
func NewRequestService(requestModule *mdrequest.RequestModule, orderModule *mdorder.OrderModule) *RequestService {
	return &RequestService{
		requestModule: requestModule,
		orderModule:   orderModule,
	}
}

// CreateRequestInput 创建工单入参
type CreateRequestInput struct {
	Name        string
	Phone       string
	TrackingNo  string
	RequestType etrequest.Type
	Content     string
	Attachments []etrequest.Attachment
}

// CreateRequest 创建工单
// 关联运单号时校验运单存在
func (s *RequestService) CreateRequest(ctx context.Context, accountID int64, in CreateRequestInput) (*etrequest.ShippingRequest, error) {
	if in.TrackingNo != "" {
		order, err := s.orderModule.GetOrderByTrackingNo(ctx, in.TrackingNo)
		if err != nil {
			return nil, fmt.Errorf("query order failed: %w", err)
		}
		if order == nil {
			return nil, errorx.ErrOrderNotFound
		}
	}

	req, err := etrequest.NewShippingRequest(
		uuid.New().String(), codeGen.Next(),
		accountID, in.Name, in.Phone, in.TrackingNo,
		in.RequestType, in.Content, in.Attachments,
	)
	if err != nil {
		return nil, err
	}

	if err := s.requestModule.CreateRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("save request failed: %w", err)
	}
	return req, nil
}

// GetRequest 查询工单（网点侧、管理侧）
func (s *RequestService) GetRequest(ctx context.Context, requestID string) (*etrequest.ShippingRequest, error) {
	req, err := s.requestModule.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, errorx.ErrRequestNotFound
	}
	return req, nil
}

// GetUserRequest 查询工单并校验归属
func (s *RequestService) GetUserRequest(ctx context.Context, accountID int64, requestID string) (*etrequest.ShippingRequest, error) {
	req, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.AccountID != accountID {
		return nil, errorx.ErrNotOwner
	}
	return req, nil
}

// CancelRequest 发起人取消工单（仅待受理）
func (s *RequestService) CancelRequest(ctx context.Context, accountID int64, requestID string) (*etrequest.ShippingRequest, error) {
	req, err := s.GetUserRequest(ctx, accountID, requestID)
	if err != nil {
		return nil, err
	}
	if !policy.CanCancelRequest(req.Status) {
		return nil, errorx.ErrActionNotAllowed
	}
	if err := req.Cancel(); err != nil {
		return nil, err
	}
	return req, s.requestModule.UpdateRequest(ctx, req)
}

// TakeRequest 受理工单
func (s *RequestService) TakeRequest(ctx context.Context, handlerID int64, requestID string) (*etrequest.ShippingRequest, error) {
	req, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !policy.CanTakeRequest(req.Status) {
		return nil, errorx.ErrActionNotAllowed
	}
	if err := req.Take(handlerID); err != nil {
		return nil, err
	}
	return req, s.requestModule.UpdateRequest(ctx, req)
}

// ResolveRequest 解决工单，只有受理人可操作
func (s *RequestService) ResolveRequest(ctx context.Context, handlerID int64, requestID, response string, attachments []etrequest.Attachment) (*etrequest.ShippingRequest, error) {
	req, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.HandlerID != handlerID {
		return nil, errorx.ErrNotAssignee
	}
	if !policy.CanResolveRequest(req.Status) {
		return nil, errorx.ErrActionNotAllowed
	}
	if err := req.Resolve(response, attachments); err != nil {
		return nil, err
	}
	return req, s.requestModule.UpdateRequest(ctx, req)
}

// RejectRequest 驳回工单
func (s *RequestService) RejectRequest(ctx context.Context, handlerID int64, requestID, response string) (*etrequest.ShippingRequest, error) {
	req, err := s.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status == etrequest.StatusProcessing && req.HandlerID != handlerID {
		return nil, errorx.ErrNotAssignee
	}
	if err := req.Reject(response); err != nil {
		return nil, err
	}
	return req, s.requestModule.UpdateRequest(ctx, req)
}

// ListRequests 分页查询工单列表（管理侧）
func (s *RequestService) ListRequests(ctx context.Context, q rprequest.Query) ([]*etrequest.ShippingRequest, int64, error) {
	return s.requestModule.ListRequests(ctx, q)
}

// ListUserRequests 发起人侧工单列表
func (s *RequestService) ListUserRequests(ctx context.Context, accountID int64, status etrequest.Status, page, limit int) ([]*etrequest.ShippingRequest, int64, error) {
	return s.requestModule.ListRequests(ctx, rprequest.Query{AccountID: accountID, Status: status, Page: page, Limit: limit})
}
