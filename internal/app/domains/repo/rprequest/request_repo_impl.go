package rprequest

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/persistence/model"
)

// RequestRepositoryImpl 工单仓储实现（MySQL）
type RequestRepositoryImpl struct {
	db *gorm.DB
}

// NewRequestRepository 创建工单仓储实例
func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &RequestRepositoryImpl{db: db}
}

// Create 创建工单
func (r *RequestRepositoryImpl) Create(ctx context.Context, req *etrequest.ShippingRequest) error {
	po, err := r.toGormModel(req)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(po).Error
}

// GetByID 根据ID查询工单，不存在返回 nil
func (r *RequestRepositoryImpl) GetByID(ctx context.Context, requestID string) (*etrequest.ShippingRequest, error) {
	var po model.ShippingRequest
	err := r.db.WithContext(ctx).Where("id = ?", requestID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomainModel(&po)
}

// Update 保存工单的可变字段
func (r *RequestRepositoryImpl) Update(ctx context.Context, req *etrequest.ShippingRequest) error {
	po, err := r.toGormModel(req)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&model.ShippingRequest{}).
		Where("id = ?", req.ID).
		Updates(map[string]interface{}{
			"status":     po.Status,
			"response":   po.Response,
			"handler_id": po.HandlerID,
			"responses":  po.Responses,
			"updated_at": time.Now(),
		}).Error
}

// List 分页查询工单列表
func (r *RequestRepositoryImpl) List(ctx context.Context, q Query) ([]*etrequest.ShippingRequest, int64, error) {
	var total int64
	var pos []model.ShippingRequest

	query := r.db.WithContext(ctx).Model(&model.ShippingRequest{})
	if q.AccountID > 0 {
		query = query.Where("account_id = ?", q.AccountID)
	}
	if q.Status != "" {
		query = query.Where("status = ?", string(q.Status))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	reqs := make([]*etrequest.ShippingRequest, 0, len(pos))
	for i := range pos {
		req, err := r.toDomainModel(&pos[i])
		if err != nil {
			return nil, 0, err
		}
		reqs = append(reqs, req)
	}
	return reqs, total, nil
}

// toGormModel 领域对象转换为 GORM 模型
func (r *RequestRepositoryImpl) toGormModel(req *etrequest.ShippingRequest) (*model.ShippingRequest, error) {
	attachmentsJSON, err := json.Marshal(req.Attachments)
	if err != nil {
		return nil, err
	}
	responsesJSON, err := json.Marshal(req.Responses)
	if err != nil {
		return nil, err
	}

	return &model.ShippingRequest{
		ID:          req.ID,
		Code:        req.Code,
		AccountID:   req.AccountID,
		Name:        req.Name,
		Phone:       req.Phone,
		TrackingNo:  req.TrackingNo,
		RequestType: string(req.RequestType),
		Status:      string(req.Status),
		Content:     req.Content,
		Response:    req.Response,
		HandlerID:   req.HandlerID,
		Attachments: attachmentsJSON,
		Responses:   responsesJSON,
		CreatedAt:   req.CreatedAt,
		UpdatedAt:   req.UpdatedAt,
	}, nil
}

// toDomainModel GORM 模型转换为领域对象
func (r *RequestRepositoryImpl) toDomainModel(po *model.ShippingRequest) (*etrequest.ShippingRequest, error) {
	req := &etrequest.ShippingRequest{
		ID:          po.ID,
		Code:        po.Code,
		AccountID:   po.AccountID,
		Name:        po.Name,
		Phone:       po.Phone,
		TrackingNo:  po.TrackingNo,
		RequestType: etrequest.Type(po.RequestType),
		Status:      etrequest.Status(po.Status),
		Content:     po.Content,
		Response:    po.Response,
		HandlerID:   po.HandlerID,
		CreatedAt:   po.CreatedAt,
		UpdatedAt:   po.UpdatedAt,
	}

	if len(po.Attachments) > 0 {
		if err := json.Unmarshal(po.Attachments, &req.Attachments); err != nil {
			return nil, err
		}
	}
	if len(po.Responses) > 0 {
		if err := json.Unmarshal(po.Responses, &req.Responses); err != nil {
			return nil, err
		}
	}
	return req, nil
}
