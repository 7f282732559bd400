package mdorder

import (
	"context"
	"time"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rpaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rporder"
)

// OrderModule 订单模块（业务编排层）
type OrderModule struct {
	orderRepo   rporder.OrderRepository
	accountRepo rpaccount.AccountRepository
}

// NewOrderModule 创建订单模块
func NewOrderModule(
	orderRepo rporder.OrderRepository,
	accountRepo rpaccount.AccountRepository,
) *OrderModule {
	return &OrderModule{
		orderRepo:   orderRepo,
		accountRepo: accountRepo,
	}
}

// CreateOrder 创建订单（数据操作）
func (m *OrderModule) CreateOrder(ctx context.Context, order *etorder.Order) error {
	return m.orderRepo.Create(ctx, order)
}

// GetOrder 查询订单
func (m *OrderModule) GetOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	return m.orderRepo.GetByID(ctx, orderID)
}

// GetOrderByTrackingNo 根据运单号查询订单，不存在返回 nil
func (m *OrderModule) GetOrderByTrackingNo(ctx context.Context, trackingNo string) (*etorder.Order, error) {
	return m.orderRepo.GetByTrackingNo(ctx, trackingNo)
}

// UpdateOrder 保存订单变更
func (m *OrderModule) UpdateOrder(ctx context.Context, order *etorder.Order) error {
	return m.orderRepo.Update(ctx, order)
}

// DeleteOrder 删除订单（仅草稿，由服务层把关）
func (m *OrderModule) DeleteOrder(ctx context.Context, orderID string) error {
	return m.orderRepo.Delete(ctx, orderID)
}

// ListOrders 分页查询订单列表
func (m *OrderModule) ListOrders(ctx context.Context, q rporder.Query) ([]*etorder.Order, int64, error) {
	return m.orderRepo.List(ctx, q)
}

// ListUnsettledCOD 查询已签收且未结算的代收货款订单
func (m *OrderModule) ListUnsettledCOD(ctx context.Context, before time.Time) ([]*etorder.Order, error) {
	return m.orderRepo.ListUnsettledCOD(ctx, before)
}

// AccountExists 检查账号是否存在
func (m *OrderModule) AccountExists(ctx context.Context, accountID int64) (bool, error) {
	return m.accountRepo.Exists(ctx, accountID)
}
