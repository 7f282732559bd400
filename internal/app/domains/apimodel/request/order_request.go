package request

// CreateOrderRequest 创建订单请求
type CreateOrderRequest struct {
	Sender      *ContactPayload `json:"sender" binding:"required"`
	Recipient   *ContactPayload `json:"recipient" binding:"required"`
	WeightGram  int64           `json:"weightGram" binding:"required,gt=0" example:"1500"`
	ServiceType string          `json:"serviceType" binding:"required" example:"STANDARD"`
	PickupType  string          `json:"pickupType" binding:"required" example:"PICKUP"`
	COD         int64           `json:"cod" binding:"gte=0" example:"200000"`
	OrderValue  int64           `json:"orderValue" binding:"gte=0" example:"500000"`
	Payer       string          `json:"payer" example:"SENDER"`
	Notes       string          `json:"notes"`
}

// ContactPayload 联系人信息
type ContactPayload struct {
	Name     string `json:"name" binding:"required" example:"Nguyen Van A"`
	Phone    string `json:"phone" binding:"required" example:"0901234567"`
	CityCode string `json:"cityCode" binding:"required" example:"79"`
	WardCode string `json:"wardCode" example:"26740"`
	Detail   string `json:"detail" example:"12 Nguyen Hue"`
}

// UpdateOrderRequest 逐字段编辑请求
// 键为字段名，值为新值，服务端按状态逐字段判定可编辑性
type UpdateOrderRequest struct {
	Fields map[string]interface{} `json:"fields" binding:"required"`
}

// AssignRequest 指派快递员/司机请求
type AssignRequest struct {
	AccountID int64 `json:"accountId" binding:"required,gt=0"`
}
