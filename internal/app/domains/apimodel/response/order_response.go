package response

import "time"

// OrderResponse 订单响应（DTO）
// 状态附带展示文案与标签分类，金额为最小货币单位
type OrderResponse struct {
	ID          string `json:"id"`
	TrackingNo  string `json:"trackingNo,omitempty"`
	AccountID   int64  `json:"accountId"`
	CreatorType string `json:"creatorType"`

	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	StatusTag   string `json:"statusTag"`

	Sender    *ContactView `json:"sender"`
	Recipient *ContactView `json:"recipient"`

	WeightGram  int64  `json:"weightGram"`
	ServiceType string `json:"serviceType"`
	PickupType  string `json:"pickupType"`

	COD            int64 `json:"cod"`
	TotalFee       int64 `json:"totalFee"`
	OrderValue     int64 `json:"orderValue"`
	DiscountAmount int64 `json:"discountAmount"`

	Payer              string `json:"payer"`
	PaymentStatus      string `json:"paymentStatus"`
	PaymentStatusLabel string `json:"paymentStatusLabel"`

	ShipperID int64 `json:"shipperId,omitempty"`
	DriverID  int64 `json:"driverId,omitempty"`

	Notes         string `json:"notes,omitempty"`
	DirectionsURL string `json:"directionsUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactView 联系人视图
// 行政区划名称按需解析填充，解析失败时只返回编码
type ContactView struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	CityCode string `json:"cityCode"`
	CityName string `json:"cityName,omitempty"`
	WardCode string `json:"wardCode,omitempty"`
	WardName string `json:"wardName,omitempty"`
	Detail   string `json:"detail,omitempty"`
}
