package etorder

// Status 订单状态（与后台约定的闭集枚举）
type Status string

const (
	StatusDraft          Status = "DRAFT"
	StatusPending        Status = "PENDING"
	StatusConfirmed      Status = "CONFIRMED"
	StatusReadyForPickup Status = "READY_FOR_PICKUP"
	StatusPickingUp      Status = "PICKING_UP"
	StatusPickedUp       Status = "PICKED_UP"
	StatusAtOriginOffice Status = "AT_ORIGIN_OFFICE"
	StatusInTransit      Status = "IN_TRANSIT"
	StatusAtDestOffice   Status = "AT_DEST_OFFICE"
	StatusDelivering     Status = "DELIVERING"
	StatusDelivered      Status = "DELIVERED"
	StatusFailedDelivery Status = "FAILED_DELIVERY"
	StatusCancelled      Status = "CANCELLED"
	StatusReturned       Status = "RETURNED"
)

// AllStatuses 全部订单状态（列表导出，供校验和前端下拉使用）
var AllStatuses = []Status{
	StatusDraft,
	StatusPending,
	StatusConfirmed,
	StatusReadyForPickup,
	StatusPickingUp,
	StatusPickedUp,
	StatusAtOriginOffice,
	StatusInTransit,
	StatusAtDestOffice,
	StatusDelivering,
	StatusDelivered,
	StatusFailedDelivery,
	StatusCancelled,
	StatusReturned,
}

// statusLabels 状态展示文案
var statusLabels = map[Status]string{
	StatusDraft:          "草稿",
	StatusPending:        "待确认",
	StatusConfirmed:      "已确认",
	StatusReadyForPickup: "待揽收",
	StatusPickingUp:      "揽收中",
	StatusPickedUp:       "已揽收",
	StatusAtOriginOffice: "到达始发网点",
	StatusInTransit:      "运输中",
	StatusAtDestOffice:   "到达目的网点",
	StatusDelivering:     "派送中",
	StatusDelivered:      "已签收",
	StatusFailedDelivery: "派送失败",
	StatusCancelled:      "已取消",
	StatusReturned:       "已退回",
}

// statusTags 状态展示标签分类
var statusTags = map[Status]string{
	StatusDraft:          "info",
	StatusPending:        "warning",
	StatusConfirmed:      "primary",
	StatusReadyForPickup: "warning",
	StatusPickingUp:      "primary",
	StatusPickedUp:       "primary",
	StatusAtOriginOffice: "primary",
	StatusInTransit:      "primary",
	StatusAtDestOffice:   "primary",
	StatusDelivering:     "primary",
	StatusDelivered:      "success",
	StatusFailedDelivery: "danger",
	StatusCancelled:      "info",
	StatusReturned:       "warning",
}

// Label 返回状态展示文案
// 未知状态码原样返回，保证对后台新增状态向前兼容
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Tag 返回状态展示标签分类，未知状态码归入 info
func (s Status) Tag() string {
	if tag, ok := statusTags[s]; ok {
		return tag
	}
	return "info"
}

// Valid 判断是否为已知状态
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// validNext 状态流转表（服务端为唯一裁决点）
var validNext = map[Status]map[Status]bool{
	StatusDraft:          {StatusPending: true},
	StatusPending:        {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed:      {StatusReadyForPickup: true, StatusCancelled: true},
	StatusReadyForPickup: {StatusPickingUp: true, StatusCancelled: true},
	StatusPickingUp:      {StatusPickedUp: true, StatusFailedDelivery: true},
	StatusPickedUp:       {StatusAtOriginOffice: true},
	StatusAtOriginOffice: {StatusInTransit: true, StatusCancelled: true},
	StatusInTransit:      {StatusAtDestOffice: true},
	StatusAtDestOffice:   {StatusDelivering: true},
	StatusDelivering:     {StatusDelivered: true, StatusFailedDelivery: true},
	StatusFailedDelivery: {StatusDelivering: true, StatusReturned: true},
	StatusDelivered:      {},
	StatusCancelled:      {},
	StatusReturned:       {},
}

// CanTransition 判断状态流转是否合法
func CanTransition(from, to Status) bool {
	return validNext[from][to]
}

// IsTerminal 判断是否终态
func (s Status) IsTerminal() bool {
	next, ok := validNext[s]
	return ok && len(next) == 0
}
