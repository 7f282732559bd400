package rporder

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/persistence/model"
)

// OrderRepositoryImpl 订单仓储实现（MySQL）
type OrderRepositoryImpl struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储实例
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

// Create 创建订单，将领域对象转换为 GORM 模型后存储
func (r *OrderRepositoryImpl) Create(ctx context.Context, order *etorder.Order) error {
	po, err := r.toGormModel(order)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(po).Error
}

// GetByID 根据ID查询订单，不存在返回 nil
func (r *OrderRepositoryImpl) GetByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	var po model.Order
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomainModel(&po)
}

// GetByTrackingNo 根据运单号查询，不存在返回 nil
func (r *OrderRepositoryImpl) GetByTrackingNo(ctx context.Context, trackingNo string) (*etorder.Order, error) {
	var po model.Order
	err := r.db.WithContext(ctx).Where("tracking_no = ?", trackingNo).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.toDomainModel(&po)
}

// Update 保存订单的可变字段
func (r *OrderRepositoryImpl) Update(ctx context.Context, order *etorder.Order) error {
	po, err := r.toGormModel(order)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"tracking_no":     po.TrackingNo,
			"status":          po.Status,
			"sender":          po.Sender,
			"recipient":       po.Recipient,
			"weight_gram":     po.WeightGram,
			"service_type":    po.ServiceType,
			"pickup_type":     po.PickupType,
			"cod":             po.COD,
			"total_fee":       po.TotalFee,
			"order_value":     po.OrderValue,
			"discount_amount": po.DiscountAmount,
			"payer":           po.Payer,
			"payment_status":  po.PaymentStatus,
			"shipper_id":      po.ShipperID,
			"driver_id":       po.DriverID,
			"notes":           po.Notes,
			"updated_at":      time.Now(),
		}).Error
}

// Delete 删除订单
func (r *OrderRepositoryImpl) Delete(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).Where("id = ?", orderID).Delete(&model.Order{}).Error
}

// List 分页查询订单列表
func (r *OrderRepositoryImpl) List(ctx context.Context, q Query) ([]*etorder.Order, int64, error) {
	var total int64
	var pos []model.Order

	query := r.db.WithContext(ctx).Model(&model.Order{})
	if q.AccountID > 0 {
		query = query.Where("account_id = ?", q.AccountID)
	}
	if q.ShipperID > 0 {
		query = query.Where("shipper_id = ?", q.ShipperID)
	}
	if q.DriverID > 0 {
		query = query.Where("driver_id = ?", q.DriverID)
	}
	if q.Status != "" {
		query = query.Where("status = ?", string(q.Status))
	}
	if q.CreatorType != "" {
		query = query.Where("creator_type = ?", string(q.CreatorType))
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

	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		order, err := r.toDomainModel(&pos[i])
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	return orders, total, nil
}

// ListUnsettledCOD 查询已签收且未结算的代收货款订单
func (r *OrderRepositoryImpl) ListUnsettledCOD(ctx context.Context, before time.Time) ([]*etorder.Order, error) {
	var pos []model.Order
	err := r.db.WithContext(ctx).
		Where("status = ? AND payment_status <> ? AND cod > 0 AND updated_at < ?",
			string(etorder.StatusDelivered), string(etorder.PaymentSettled), before).
		Order("account_id, updated_at").
		Find(&pos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*etorder.Order, 0, len(pos))
	for i := range pos {
		order, err := r.toDomainModel(&pos[i])
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// toGormModel 领域对象转换为 GORM 模型
func (r *OrderRepositoryImpl) toGormModel(order *etorder.Order) (*model.Order, error) {
	senderJSON, err := json.Marshal(order.Sender)
	if err != nil {
		return nil, err
	}
	recipientJSON, err := json.Marshal(order.Recipient)
	if err != nil {
		return nil, err
	}

	return &model.Order{
		ID:             order.ID,
		TrackingNo:     order.TrackingNo,
		AccountID:      order.AccountID,
		CreatorType:    string(order.CreatorType),
		Status:         string(order.Status),
		Sender:         senderJSON,
		Recipient:      recipientJSON,
		WeightGram:     order.WeightGram,
		ServiceType:    string(order.ServiceType),
		PickupType:     string(order.PickupType),
		COD:            order.COD,
		TotalFee:       order.TotalFee,
		OrderValue:     order.OrderValue,
		DiscountAmount: order.DiscountAmount,
		Payer:          string(order.Payer),
		PaymentStatus:  string(order.PaymentStatus),
		ShipperID:      order.ShipperID,
		DriverID:       order.DriverID,
		Notes:          order.Notes,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
	}, nil
}

// toDomainModel GORM 模型转换为领域对象
func (r *OrderRepositoryImpl) toDomainModel(po *model.Order) (*etorder.Order, error) {
	var sender, recipient etorder.Contact
	if err := json.Unmarshal(po.Sender, &sender); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(po.Recipient, &recipient); err != nil {
		return nil, err
	}

	return &etorder.Order{
		ID:             po.ID,
		TrackingNo:     po.TrackingNo,
		AccountID:      po.AccountID,
		CreatorType:    etorder.CreatorType(po.CreatorType),
		Status:         etorder.Status(po.Status),
		Sender:         sender,
		Recipient:      recipient,
		WeightGram:     po.WeightGram,
		ServiceType:    etorder.ServiceType(po.ServiceType),
		PickupType:     etorder.PickupType(po.PickupType),
		COD:            po.COD,
		TotalFee:       po.TotalFee,
		OrderValue:     po.OrderValue,
		DiscountAmount: po.DiscountAmount,
		Payer:          etorder.Payer(po.Payer),
		PaymentStatus:  etorder.PaymentStatus(po.PaymentStatus),
		ShipperID:      po.ShipperID,
		DriverID:       po.DriverID,
		Notes:          po.Notes,
		CreatedAt:      po.CreatedAt,
		UpdatedAt:      po.UpdatedAt,
	}, nil
}
