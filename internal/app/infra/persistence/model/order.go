package model

import (
	"time"

	"gorm.io/datatypes"
)

// Order 订单持久化模型
// 联系人/地址以 JSON 存储，参与查询与对账的金额、状态保留标量列
type Order struct {
	// 基础字段
	ID          string `gorm:"column:id;primaryKey;type:varchar(64)"`
	TrackingNo  string `gorm:"column:tracking_no;type:varchar(32);uniqueIndex:uk_tracking_no"`
	AccountID   int64  `gorm:"column:account_id;not null;index:idx_account_status"`
	CreatorType string `gorm:"column:creator_type;type:varchar(16);not null"`
	Status      string `gorm:"column:status;type:varchar(24);not null;default:'DRAFT';index:idx_account_status"`

	// 联系人
	Sender    datatypes.JSON `gorm:"column:sender;type:json;not null"`
	Recipient datatypes.JSON `gorm:"column:recipient;type:json;not null"`

	// 货件与服务
	WeightGram  int64  `gorm:"column:weight_gram;not null"`
	ServiceType string `gorm:"column:service_type;type:varchar(16);not null"`
	PickupType  string `gorm:"column:pickup_type;type:varchar(16);not null"`

	// 金额（最小货币单位）
	COD            int64 `gorm:"column:cod;not null;default:0"`
	TotalFee       int64 `gorm:"column:total_fee;not null;default:0"`
	OrderValue     int64 `gorm:"column:order_value;not null;default:0"`
	DiscountAmount int64 `gorm:"column:discount_amount;not null;default:0"`

	Payer         string `gorm:"column:payer;type:varchar(16);not null"`
	PaymentStatus string `gorm:"column:payment_status;type:varchar(16);not null;default:'UNPAID';index:idx_payment_status"`

	// 履约分配
	ShipperID int64 `gorm:"column:shipper_id;not null;default:0;index:idx_shipper"`
	DriverID  int64 `gorm:"column:driver_id;not null;default:0;index:idx_driver"`

	Notes string `gorm:"column:notes;type:varchar(512)"`

	// 时间戳
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
