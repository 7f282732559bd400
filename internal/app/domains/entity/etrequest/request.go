package etrequest

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidRequestID = errors.New("request ID cannot be empty")
	ErrInvalidRequester = errors.New("requester contact is required")
	ErrInvalidType      = errors.New("unknown request type")
	ErrNotPending       = errors.New("request is not pending")
	ErrNotProcessing    = errors.New("request is not processing")
)

// Status 工单状态
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusResolved   Status = "RESOLVED"
	StatusRejected   Status = "REJECTED"
	StatusCancelled  Status = "CANCELLED"
)

var statusLabels = map[Status]string{
	StatusPending:    "待受理",
	StatusProcessing: "处理中",
	StatusResolved:   "已解决",
	StatusRejected:   "已驳回",
	StatusCancelled:  "已取消",
}

var statusTags = map[Status]string{
	StatusPending:    "warning",
	StatusProcessing: "primary",
	StatusResolved:   "success",
	StatusRejected:   "danger",
	StatusCancelled:  "info",
}

// Label 返回工单状态展示文案，未知值原样返回
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Tag 返回工单状态展示标签分类，未知值归入 info
func (s Status) Tag() string {
	if tag, ok := statusTags[s]; ok {
		return tag
	}
	return "info"
}

// Type 工单类型
type Type string

const (
	TypeComplaint     Type = "COMPLAINT"
	TypeInquiry       Type = "INQUIRY"
	TypeReturn        Type = "RETURN_REQUEST"
	TypeChangeAddress Type = "CHANGE_ADDRESS"
	TypeOther         Type = "OTHER"
)

var typeLabels = map[Type]string{
	TypeComplaint:     "投诉",
	TypeInquiry:       "咨询",
	TypeReturn:        "退件申请",
	TypeChangeAddress: "修改地址",
	TypeOther:         "其他",
}

// Label 返回工单类型展示文案，未知值原样返回
func (t Type) Label() string {
	if label, ok := typeLabels[t]; ok {
		return label
	}
	return string(t)
}

// Valid 判断是否为已知工单类型
func (t Type) Valid() bool {
	_, ok := typeLabels[t]
	return ok
}

// Attachment 附件元信息（文件本体存于外部存储服务）
type Attachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// ShippingRequest 运输支持工单实体
type ShippingRequest struct {
	ID          string // 工单ID (UUID)
	Code        string // 工单编号（对外展示）
	AccountID   int64  // 发起人账号ID
	Name        string // 发起人姓名
	Phone       string // 发起人电话
	TrackingNo  string // 关联运单号（可为空）
	RequestType Type
	Status      Status
	Content     string       // 工单内容
	Response    string       // 处理回复
	HandlerID   int64        // 受理人账号ID
	Attachments []Attachment // 工单侧附件
	Responses   []Attachment // 回复侧附件
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewShippingRequest 创建工单（工厂方法）
func NewShippingRequest(id, code string, accountID int64, name, phone, trackingNo string, reqType Type, content string, attachments []Attachment) (*ShippingRequest, error) {
	if id == "" {
		return nil, ErrInvalidRequestID
	}
	if name == "" || phone == "" {
		return nil, ErrInvalidRequester
	}
	if !reqType.Valid() {
		return nil, ErrInvalidType
	}

	now := time.Now()
	return &ShippingRequest{
		ID:          id,
		Code:        code,
		AccountID:   accountID,
		Name:        name,
		Phone:       phone,
		TrackingNo:  trackingNo,
		RequestType: reqType,
		Status:      StatusPending,
		Content:     content,
		Attachments: attachments,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Take 受理工单（领域行为）
func (r *ShippingRequest) Take(handlerID int64) error {
	if r.Status != StatusPending {
		return ErrNotPending
	}
	r.Status = StatusProcessing
	r.HandlerID = handlerID
	r.UpdatedAt = time.Now()
	return nil
}

// Resolve 解决工单（领域行为）
func (r *ShippingRequest) Resolve(response string, attachments []Attachment) error {
	if r.Status != StatusProcessing {
		return ErrNotProcessing
	}
	r.Status = StatusResolved
	r.Response = response
	r.Responses = attachments
	r.UpdatedAt = time.Now()
	return nil
}

// Reject 驳回工单（领域行为）
func (r *ShippingRequest) Reject(response string) error {
	if r.Status != StatusPending && r.Status != StatusProcessing {
		return ErrNotProcessing
	}
	r.Status = StatusRejected
	r.Response = response
	r.UpdatedAt = time.Now()
	return nil
}

// Cancel 取消工单（领域行为，仅待受理可取消）
func (r *ShippingRequest) Cancel() error {
	if r.Status != StatusPending {
		return ErrNotPending
	}
	r.Status = StatusCancelled
	r.UpdatedAt = time.Now()
	return nil
}
