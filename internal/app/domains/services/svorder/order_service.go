package svorder

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/policy"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rporder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/fees"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/errorx"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/idgen"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/logger"
)

// FeeQuoter 运费询价接口（实现为运费服务 HTTP 客户端）
type FeeQuoter interface {
	Quote(ctx context.Context, qr fees.QuoteRequest) (*fees.QuoteResult, error)
}

// EventNotifier 订单事件通知接口（实现为通知模块）
type EventNotifier interface {
	EnqueueOrderEventFanout(ctx context.Context, orderID, trackingNo, eventType string, partyIDs []int64) error
}

// OrderService 订单服务，负责订单业务编排
// 所有操作在入口按角色规则把关，policy 是唯一的权限判定来源
type OrderService struct {
	orderModule *mdorder.OrderModule
	feeQuoter   FeeQuoter
	notifier    EventNotifier
	log         logger.Logger
}

// NewOrderService 创建订单服务实例
func NewOrderService(orderModule *mdorder.OrderModule, feeQuoter FeeQuoter, notifier EventNotifier, log logger.Logger) *OrderService {
	return &OrderService{
		orderModule: orderModule,
		feeQuoter:   feeQuoter,
		notifier:    notifier,
		log:         log,
	}
}

// CreateOrderInput 创建订单入参
type CreateOrderInput struct {
	Sender      etorder.Contact
	Recipient   etorder.Contact
	WeightGram  int64
	ServiceType etorder.ServiceType
	PickupType  etorder.PickupType
	COD         int64
	OrderValue  int64
	Payer       etorder.Payer
	Notes       string
}

// CreateOrder 创建订单草稿（完整业务流程）
// 1. 验证 account 存在
// 2. 创建订单实体
// 3. 调用运费服务询价
// 4. 落库
func (s *OrderService) CreateOrder(ctx context.Context, accountID int64, creator etorder.CreatorType, in CreateOrderInput) (*etorder.Order, error) {
	exists, err := s.orderModule.AccountExists(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("check account exists failed: %w", err)
	}
	if !exists {
		return nil, errorx.ErrAccountNotFound
	}

	order, err := etorder.NewOrder(uuid.New().String(), accountID, creator, in.Sender, in.Recipient, in.WeightGram, in.ServiceType, in.PickupType)
	if err != nil {
		return nil, fmt.Errorf("create order entity failed: %w", err)
	}
	order.COD = in.COD
	order.OrderValue = in.OrderValue
	order.Notes = in.Notes
	if in.Payer != "" {
		order.Payer = in.Payer
	}

	quote, err := s.feeQuoter.Quote(ctx, fees.QuoteRequest{
		SenderCityCode:    in.Sender.Address.CityCode,
		RecipientCityCode: in.Recipient.Address.CityCode,
		WeightGram:        in.WeightGram,
		ServiceType:       string(in.ServiceType),
		COD:               in.COD,
		OrderValue:        in.OrderValue,
	})
	if err != nil {
		return nil, fmt.Errorf("quote fee failed: %w", err)
	}
	order.TotalFee = quote.TotalFee
	order.DiscountAmount = quote.DiscountAmount

	if err := s.orderModule.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order failed: %w", err)
	}

	return order, nil
}

// GetOrder 查询订单（网点侧、管理侧）
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	order, err := s.orderModule.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errorx.ErrOrderNotFound
	}
	return order, nil
}

// GetUserOrder 查询订单并校验归属
func (s *OrderService) GetUserOrder(ctx context.Context, accountID int64, orderID string) (*etorder.Order, error) {
	return s.getOwnedOrder(ctx, accountID, orderID)
}

// TrackOrder 按运单号查询订单（公开查件）
func (s *OrderService) TrackOrder(ctx context.Context, trackingNo string) (*etorder.Order, error) {
	order, err := s.orderModule.GetOrderByTrackingNo(ctx, trackingNo)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, errorx.ErrOrderNotFound
	}
	return order, nil
}

// PublishOrder 发布订单：草稿转待确认并分配运单号
func (s *OrderService) PublishOrder(ctx context.Context, accountID int64, orderID string) (*etorder.Order, error) {
	order, err := s.getOwnedOrder(ctx, accountID, orderID)
	if err != nil {
		return nil, err
	}
	if !policy.CanPublishUserOrder(order.Status) {
		return nil, errorx.ErrActionNotAllowed
	}

	if err := order.Publish(idgen.NextTrackingNumber()); err != nil {
		return nil, err
	}
	if err := s.orderModule.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order failed: %w", err)
	}

	s.fanout(ctx, order)
	return order, nil
}

// UpdateUserOrderFields 用户侧逐字段编辑
// 每个字段按当前状态独立判定，任一字段不可编辑则整体拒绝
func (s *OrderService) UpdateUserOrderFields(ctx context.Context, accountID int64, orderID string, fields map[string]interface{}) (*etorder.Order, error) {
	order, err := s.getOwnedOrder(ctx, accountID, orderID)
	if err != nil {
		return nil, err
	}
	return s.applyFields(ctx, order, fields, func(field string) bool {
		return policy.CanEditUserOrderField(field, order.Status)
	})
}

// UpdateManagerOrderFields 网点侧逐字段编辑（规则按下单来源区分）
func (s *OrderService) UpdateManagerOrderFields(ctx context.Context, orderID string, fields map[string]interface{}) (*etorder.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.applyFields(ctx, order, fields, func(field string) bool {
		return policy.CanManagerEditOrderField(field, order.Status, order.CreatorType)
	})
}

// UpdateAdminOrderFields 管理员侧逐字段编辑
func (s *OrderService) UpdateAdminOrderFields(ctx context.Context, orderID string, fields map[string]interface{}) (*etorder.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.applyFields(ctx, order, fields, func(field string) bool {
		return policy.CanAdminEditOrderField(field, order.Status)
	})
}

// CancelUserOrder 用户取消订单
func (s *OrderService) CancelUserOrder(ctx context.Context, accountID int64, orderID string) (*etorder.Order, error) {
	order, err := s.getOwnedOrder(ctx, accountID, orderID)
	if err != nil {
		return nil, err
	}
	if !policy.CanCancelUserOrder(order.Status) {
		return nil, errorx.ErrActionNotAllowed
	}
	return s.cancel(ctx, order)
}

// ManagerCancelOrder 网点取消订单（可取消范围比用户宽）
func (s *OrderService) ManagerCancelOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !policy.CanManagerCancelOrder(order.Status) {
		return nil, errorx.ErrActionNotAllowed
	}
	return s.cancel(ctx, order)
}

// DeleteUserOrder 删除订单（仅草稿）
func (s *OrderService) DeleteUserOrder(ctx context.Context, accountID int64, orderID string) error {
	order, err := s.getOwnedOrder(ctx, accountID, orderID)
	if err != nil {
		return err
	}
	if !policy.CanDeleteUserOrder(order.Status) {
		return errorx.ErrActionNotAllowed
	}
	return s.orderModule.DeleteOrder(ctx, order.ID)
}

// ConfirmOrder 网点确认订单
func (s *OrderService) ConfirmOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	return s.advance(ctx, orderID, policy.CanConfirmOrder, etorder.StatusConfirmed)
}

// MarkReady 网点标记待揽收
func (s *OrderService) MarkReady(ctx context.Context, orderID string) (*etorder.Order, error) {
	return s.advance(ctx, orderID, policy.CanMarkReady, etorder.StatusReadyForPickup)
}

// AssignShipper 指派揽收/派送快递员
func (s *OrderService) AssignShipper(ctx context.Context, orderID string, shipperID int64) (*etorder.Order, error) {
	return s.assign(ctx, orderID, shipperID, func(o *etorder.Order, id int64) { o.ShipperID = id })
}

// AssignDriver 指派干线司机
func (s *OrderService) AssignDriver(ctx context.Context, orderID string, driverID int64) (*etorder.Order, error) {
	return s.assign(ctx, orderID, driverID, func(o *etorder.Order, id int64) { o.DriverID = id })
}

// StartPickup 快递员开始揽收
func (s *OrderService) StartPickup(ctx context.Context, shipperID int64, orderID string) (*etorder.Order, error) {
	return s.advanceAssigned(ctx, orderID, shipperID, assigneeShipper, policy.CanStartPickup, etorder.StatusPickingUp)
}

// FinishPickup 快递员完成揽收
func (s *OrderService) FinishPickup(ctx context.Context, shipperID int64, orderID string) (*etorder.Order, error) {
	return s.advanceAssigned(ctx, orderID, shipperID, assigneeShipper, policy.CanFinishPickup, etorder.StatusPickedUp)
}

// ReceiveAtOrigin 网点入库
func (s *OrderService) ReceiveAtOrigin(ctx context.Context, orderID string) (*etorder.Order, error) {
	return s.advance(ctx, orderID, policy.CanReceiveAtOrigin, etorder.StatusAtOriginOffice)
}

// DepartOrigin 司机发车（干线运输开始）
func (s *OrderService) DepartOrigin(ctx context.Context, driverID int64, orderID string) (*etorder.Order, error) {
	return s.advanceAssigned(ctx, orderID, driverID, assigneeDriver, policy.CanDepartOrigin, etorder.StatusInTransit)
}

// ArriveDest 司机到达目的网点
func (s *OrderService) ArriveDest(ctx context.Context, driverID int64, orderID string) (*etorder.Order, error) {
	return s.advanceAssigned(ctx, orderID, driverID, assigneeDriver, policy.CanArriveDest, etorder.StatusAtDestOffice)
}

// StartDelivery 快递员开始派送
func (s *OrderService) StartDelivery(ctx context.Context, shipperID int64, orderID string) (*etorder.Order, error) {
	return s.advanceAssigned(ctx, orderID, shipperID, assigneeShipper, policy.CanStartDelivery, etorder.StatusDelivering)
}

// FinishDelivery 快递员签收，有代收货款的同时标记已代收
func (s *OrderService) FinishDelivery(ctx context.Context, shipperID int64, orderID string) (*etorder.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.ShipperID != shipperID {
		return nil, errorx.ErrNotAssignee
	}
	if !policy.CanFinishDelivery(order.Status) {
		return nil, errorx.ErrActionNotAllowed
	}
	if err := order.AdvanceTo(etorder.StatusDelivered); err != nil {
		return nil, err
	}
	if order.COD > 0 {
		order.MarkPaid()
	}
	if err := s.orderModule.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order failed: %w", err)
	}

	s.fanout(ctx, order)
	return order, nil
}

// FailDelivery 快递员标记派送失败
func (s *OrderService) FailDelivery(ctx context.Context, shipperID int64, orderID string) (*etorder.Order, error) {
	return s.advanceAssigned(ctx, orderID, shipperID, assigneeShipper, policy.CanFailDelivery, etorder.StatusFailedDelivery)
}

// RetryDelivery 派送失败后重新派送
func (s *OrderService) RetryDelivery(ctx context.Context, shipperID int64, orderID string) (*etorder.Order, error) {
	return s.advanceAssigned(ctx, orderID, shipperID, assigneeShipper, policy.CanRetryDelivery, etorder.StatusDelivering)
}

// ReturnOrder 退回寄件人（网点侧）
func (s *OrderService) ReturnOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	return s.advance(ctx, orderID, policy.CanReturnOrder, etorder.StatusReturned)
}

// GetPrintableOrder 查询可打印面单的订单
func (s *OrderService) GetPrintableOrder(ctx context.Context, orderID string) (*etorder.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !policy.CanPrintOrder(order.Status) {
		return nil, errorx.ErrActionNotAllowed
	}
	return order, nil
}

// ListOrders 分页查询订单列表（管理侧自由组合条件）
func (s *OrderService) ListOrders(ctx context.Context, q rporder.Query) ([]*etorder.Order, int64, error) {
	return s.orderModule.ListOrders(ctx, q)
}

// ListUserOrders 用户侧订单列表
func (s *OrderService) ListUserOrders(ctx context.Context, accountID int64, status etorder.Status, page, limit int) ([]*etorder.Order, int64, error) {
	return s.orderModule.ListOrders(ctx, rporder.Query{AccountID: accountID, Status: status, Page: page, Limit: limit})
}

// ListShipperOrders 快递员侧任务列表
func (s *OrderService) ListShipperOrders(ctx context.Context, shipperID int64, status etorder.Status, page, limit int) ([]*etorder.Order, int64, error) {
	return s.orderModule.ListOrders(ctx, rporder.Query{ShipperID: shipperID, Status: status, Page: page, Limit: limit})
}

// ListDriverOrders 司机侧任务列表
func (s *OrderService) ListDriverOrders(ctx context.Context, driverID int64, status etorder.Status, page, limit int) ([]*etorder.Order, int64, error) {
	return s.orderModule.ListOrders(ctx, rporder.Query{DriverID: driverID, Status: status, Page: page, Limit: limit})
}

// ---- 私有辅助 ----

type assignee int

const (
	assigneeShipper assignee = iota
	assigneeDriver
)

func (s *OrderService) getOwnedOrder(ctx context.Context, accountID int64, orderID string) (*etorder.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.AccountID != accountID {
		return nil, errorx.ErrNotOwner
	}
	return order, nil
}

// advance 通用状态推进：取单、判权、流转、落库、扩散
func (s *OrderService) advance(ctx context.Context, orderID string, allowed func(etorder.Status) bool, next etorder.Status) (*etorder.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !allowed(order.Status) {
		return nil, errorx.ErrActionNotAllowed
	}
	if err := order.AdvanceTo(next); err != nil {
		return nil, err
	}
	if err := s.orderModule.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order failed: %w", err)
	}

	s.fanout(ctx, order)
	return order, nil
}

// advanceAssigned 同 advance，但要求操作者是指派的快递员/司机
func (s *OrderService) advanceAssigned(ctx context.Context, orderID string, actorID int64, who assignee, allowed func(etorder.Status) bool, next etorder.Status) (*etorder.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	assignedID := order.ShipperID
	if who == assigneeDriver {
		assignedID = order.DriverID
	}
	if assignedID != actorID {
		return nil, errorx.ErrNotAssignee
	}
	if !allowed(order.Status) {
		return nil, errorx.ErrActionNotAllowed
	}
	if err := order.AdvanceTo(next); err != nil {
		return nil, err
	}
	if err := s.orderModule.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order failed: %w", err)
	}

	s.fanout(ctx, order)
	return order, nil
}

func (s *OrderService) cancel(ctx context.Context, order *etorder.Order) (*etorder.Order, error) {
	if err := order.Cancel(); err != nil {
		return nil, err
	}
	if err := s.orderModule.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order failed: %w", err)
	}

	s.fanout(ctx, order)
	return order, nil
}

func (s *OrderService) assign(ctx context.Context, orderID string, accountID int64, set func(*etorder.Order, int64)) (*etorder.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	exists, err := s.orderModule.AccountExists(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("check account exists failed: %w", err)
	}
	if !exists {
		return nil, errorx.ErrAccountNotFound
	}

	set(order, accountID)
	if err := s.orderModule.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order failed: %w", err)
	}
	return order, nil
}

// applyFields 逐字段判权并套用，任一字段被拒则不落库
func (s *OrderService) applyFields(ctx context.Context, order *etorder.Order, fields map[string]interface{}, allowed func(field string) bool) (*etorder.Order, error) {
	for field, value := range fields {
		if !allowed(field) {
			return nil, fmt.Errorf("%w: %s", errorx.ErrFieldNotEditable, field)
		}
		if err := applyOrderField(order, field, value); err != nil {
			return nil, err
		}
	}
	if err := s.orderModule.UpdateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("save order failed: %w", err)
	}
	return order, nil
}

// fanout 订单事件入队扩散，失败只记录日志不影响主流程
func (s *OrderService) fanout(ctx context.Context, order *etorder.Order) {
	if err := s.notifier.EnqueueOrderEventFanout(ctx, order.ID, order.TrackingNo, string(order.Status), order.Parties()); err != nil {
		s.log.Warnf(ctx, "enqueue order event fanout failed: order_id=%s, error=%v", order.ID, err)
	}
}
