package etorder

// CreatorType 下单来源类型
type CreatorType string

const (
	CreatorUser    CreatorType = "USER"
	CreatorManager CreatorType = "MANAGER"
	CreatorAdmin   CreatorType = "ADMIN"
)

// IsOffice 是否为网点侧创建（经理/管理员代客下单）
func (c CreatorType) IsOffice() bool {
	return c == CreatorManager || c == CreatorAdmin
}

// PaymentStatus 货款/运费结算状态
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "UNPAID"
	PaymentPaid    PaymentStatus = "PAID"
	PaymentSettled PaymentStatus = "SETTLED"
)

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentUnpaid:  "未支付",
	PaymentPaid:    "已支付",
	PaymentSettled: "已结算",
}

// Label 返回结算状态展示文案，未知值原样返回
func (p PaymentStatus) Label() string {
	if label, ok := paymentStatusLabels[p]; ok {
		return label
	}
	return string(p)
}

// Payer 付款方
type Payer string

const (
	PayerSender    Payer = "SENDER"
	PayerRecipient Payer = "RECIPIENT"
)

// PickupType 揽收方式：上门揽收 / 网点自寄
type PickupType string

const (
	PickupAtDoor  PickupType = "PICKUP"
	PickupDropOff PickupType = "DROP_OFF"
)

// ServiceType 服务类型码（由运费服务定义，这里仅透传）
type ServiceType string

const (
	ServiceStandard ServiceType = "STANDARD"
	ServiceExpress  ServiceType = "EXPRESS"
	ServiceEconomy  ServiceType = "ECONOMY"
)

var serviceTypeLabels = map[ServiceType]string{
	ServiceStandard: "标准快递",
	ServiceExpress:  "特快专递",
	ServiceEconomy:  "经济件",
}

// Label 返回服务类型展示文案，未知值原样返回
func (s ServiceType) Label() string {
	if label, ok := serviceTypeLabels[s]; ok {
		return label
	}
	return string(s)
}
