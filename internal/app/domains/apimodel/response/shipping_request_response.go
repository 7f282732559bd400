package response

import "time"

// ShippingRequestResponse 运输工单响应（DTO）
type ShippingRequestResponse struct {
	ID         string `json:"id"`
	Code       string `json:"code"`
	AccountID  int64  `json:"accountId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	TrackingNo string `json:"trackingNo,omitempty"`

	RequestType      string `json:"requestType"`
	RequestTypeLabel string `json:"requestTypeLabel"`
	Status           string `json:"status"`
	StatusLabel      string `json:"statusLabel"`
	StatusTag        string `json:"statusTag"`

	Content   string `json:"content"`
	Response  string `json:"response,omitempty"`
	HandlerID int64  `json:"handlerId,omitempty"`

	Attachments []AttachmentView `json:"attachments,omitempty"`
	Responses   []AttachmentView `json:"responses,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AttachmentView 附件视图
type AttachmentView struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size int64  `json:"size"`
}
