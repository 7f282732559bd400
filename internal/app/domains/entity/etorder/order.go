package etorder

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidOrderID    = errors.New("order ID cannot be empty")
	ErrInvalidAccountID  = errors.New("invalid account ID")
	ErrInvalidContact    = errors.New("sender and recipient contact are required")
	ErrInvalidWeight     = errors.New("weight must be greater than zero")
	ErrNotDraft          = errors.New("order is not a draft")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Order 订单聚合根（领域对象）
type Order struct {
	ID          string      // 订单ID (UUID)
	TrackingNo  string      // 运单号（发布后分配，对外唯一标识）
	AccountID   int64       // 创建者账号ID
	CreatorType CreatorType // 下单来源
	Status      Status      // 订单状态

	Sender    Contact // 寄件人
	Recipient Contact // 收件人

	WeightGram  int64       // 重量（克）
	ServiceType ServiceType // 服务类型
	PickupType  PickupType  // 揽收方式

	// 金额字段统一为最小货币单位
	COD            int64 // 代收货款
	TotalFee       int64 // 运费合计
	OrderValue     int64 // 声明价值
	DiscountAmount int64 // 优惠金额

	Payer         Payer         // 付款方
	PaymentStatus PaymentStatus // 结算状态

	ShipperID int64 // 揽收/派送快递员账号ID（0 表示未分配）
	DriverID  int64 // 干线司机账号ID（0 表示未分配）

	Notes     string // 备注
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contact 联系人（值对象）
type Contact struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address Address `json:"address"`
}

// Address 地址（值对象），编码通过行政区划服务解析为名称
type Address struct {
	CityCode string `json:"cityCode"`
	WardCode string `json:"wardCode"`
	Detail   string `json:"detail"`
}

// NewOrder 创建订单草稿（工厂方法）
func NewOrder(id string, accountID int64, creator CreatorType, sender, recipient Contact, weightGram int64, service ServiceType, pickup PickupType) (*Order, error) {
	if id == "" {
		return nil, ErrInvalidOrderID
	}
	if accountID <= 0 {
		return nil, ErrInvalidAccountID
	}
	if sender.Name == "" || sender.Phone == "" || recipient.Name == "" || recipient.Phone == "" {
		return nil, ErrInvalidContact
	}
	if weightGram <= 0 {
		return nil, ErrInvalidWeight
	}

	now := time.Now()
	return &Order{
		ID:            id,
		AccountID:     accountID,
		CreatorType:   creator,
		Status:        StatusDraft,
		Sender:        sender,
		Recipient:     recipient,
		WeightGram:    weightGram,
		ServiceType:   service,
		PickupType:    pickup,
		Payer:         PayerSender,
		PaymentStatus: PaymentUnpaid,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Publish 发布订单（领域行为）：草稿转待确认并分配运单号
func (o *Order) Publish(trackingNo string) error {
	if o.Status != StatusDraft {
		return ErrNotDraft
	}
	if trackingNo == "" {
		return errors.New("tracking number cannot be empty")
	}
	o.TrackingNo = trackingNo
	o.Status = StatusPending
	o.UpdatedAt = time.Now()
	return nil
}

// AdvanceTo 按流转表推进状态（领域行为）
func (o *Order) AdvanceTo(next Status) error {
	if !CanTransition(o.Status, next) {
		return ErrInvalidTransition
	}
	o.Status = next
	o.UpdatedAt = time.Now()
	return nil
}

// Cancel 取消订单（领域行为）
// 取消不走正向流转表：草稿只能删除，终态不可取消，其余状态由 policy 按角色把关
func (o *Order) Cancel() error {
	if o.Status == StatusDraft || o.Status.IsTerminal() {
		return ErrInvalidTransition
	}
	o.Status = StatusCancelled
	o.UpdatedAt = time.Now()
	return nil
}

// MarkPaid 标记货款已代收（签收时收到代收货款）
func (o *Order) MarkPaid() {
	o.PaymentStatus = PaymentPaid
	o.UpdatedAt = time.Now()
}

// Parties 返回应接收该订单事件通知的账号（去重、去零）
func (o *Order) Parties() []int64 {
	seen := make(map[int64]bool, 3)
	parties := make([]int64, 0, 3)
	for _, id := range []int64{o.AccountID, o.ShipperID, o.DriverID} {
		if id > 0 && !seen[id] {
			seen[id] = true
			parties = append(parties, id)
		}
	}
	return parties
}
