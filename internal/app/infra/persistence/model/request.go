package model

import (
	"time"

	"gorm.io/datatypes"
)

// ShippingRequest 工单持久化模型
type ShippingRequest struct {
	ID          string `gorm:"column:id;primaryKey;type:varchar(64)"`
	Code        string `gorm:"column:code;type:varchar(32);not null;uniqueIndex:uk_request_code"`
	AccountID   int64  `gorm:"column:account_id;not null;index:idx_request_account"`
	Name        string `gorm:"column:name;type:varchar(128);not null"`
	Phone       string `gorm:"column:phone;type:varchar(32);not null"`
	TrackingNo  string `gorm:"column:tracking_no;type:varchar(32);index:idx_request_tracking"`
	RequestType string `gorm:"column:request_type;type:varchar(24);not null"`
	Status      string `gorm:"column:status;type:varchar(16);not null;default:'PENDING';index:idx_request_status"`
	Content     string `gorm:"column:content;type:text"`
	Response    string `gorm:"column:response;type:text"`
	HandlerID   int64  `gorm:"column:handler_id;not null;default:0"`

	// 附件元信息（文件本体在外部存储）
	Attachments datatypes.JSON `gorm:"column:attachments;type:json"`
	Responses   datatypes.JSON `gorm:"column:responses;type:json"`

	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_request_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (ShippingRequest) TableName() string {
	return "shipping_requests"
}
