package request

// CreateShippingRequestRequest 创建运输工单请求
type CreateShippingRequestRequest struct {
	Name        string              `json:"name" binding:"required"`
	Phone       string              `json:"phone" binding:"required"`
	TrackingNo  string              `json:"trackingNo"`
	RequestType string              `json:"requestType" binding:"required" example:"COMPLAINT"`
	Content     string              `json:"content" binding:"required"`
	Attachments []AttachmentPayload `json:"attachments"`
}

// HandleShippingRequestRequest 工单处理（解决/驳回）请求
type HandleShippingRequestRequest struct {
	Response    string              `json:"response" binding:"required"`
	Attachments []AttachmentPayload `json:"attachments"`
}

// AttachmentPayload 附件元信息
type AttachmentPayload struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
	Size int64  `json:"size"`
}
