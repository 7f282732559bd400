package rporder

import (
	"context"
	"time"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
)

// Query 订单列表查询条件
type Query struct {
	AccountID   int64
	ShipperID   int64
	DriverID    int64
	Status      etorder.Status
	CreatorType etorder.CreatorType
	Page        int
	Limit       int
}

// OrderRepository 订单仓储接口（只定义，不实现）
// 实现在本包的 MySQL 实现文件中
type OrderRepository interface {
	// Create 创建订单
	Create(ctx context.Context, order *etorder.Order) error

	// GetByID 根据ID查询订单，不存在返回 nil
	GetByID(ctx context.Context, orderID string) (*etorder.Order, error)

	// GetByTrackingNo 根据运单号查询，不存在返回 nil
	GetByTrackingNo(ctx context.Context, trackingNo string) (*etorder.Order, error)

	// Update 保存订单的可变字段
	Update(ctx context.Context, order *etorder.Order) error

	// Delete 删除订单（仅草稿，由服务层把关）
	Delete(ctx context.Context, orderID string) error

	// List 分页查询订单列表
	List(ctx context.Context, q Query) ([]*etorder.Order, int64, error)

	// ListUnsettledCOD 查询已签收且未结算的代收货款订单
	ListUnsettledCOD(ctx context.Context, before time.Time) ([]*etorder.Order, error)
}
