package request

import (
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/services/svorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/services/svrequest"
)

// ToCreateOrderInput 转换为创建订单入参
func (r *CreateOrderRequest) ToCreateOrderInput() svorder.CreateOrderInput {
	return svorder.CreateOrderInput{
		Sender:      r.Sender.toContact(),
		Recipient:   r.Recipient.toContact(),
		WeightGram:  r.WeightGram,
		ServiceType: etorder.ServiceType(r.ServiceType),
		PickupType:  etorder.PickupType(r.PickupType),
		COD:         r.COD,
		OrderValue:  r.OrderValue,
		Payer:       etorder.Payer(r.Payer),
		Notes:       r.Notes,
	}
}

func (p *ContactPayload) toContact() etorder.Contact {
	return etorder.Contact{
		Name:  p.Name,
		Phone: p.Phone,
		Address: etorder.Address{
			CityCode: p.CityCode,
			WardCode: p.WardCode,
			Detail:   p.Detail,
		},
	}
}

// ToCreateRequestInput 转换为创建工单入参
func (r *CreateShippingRequestRequest) ToCreateRequestInput() svrequest.CreateRequestInput {
	return svrequest.CreateRequestInput{
		Name:        r.Name,
		Phone:       r.Phone,
		TrackingNo:  r.TrackingNo,
		RequestType: etrequest.Type(r.RequestType),
		Content:     r.Content,
		Attachments: toAttachments(r.Attachments),
	}
}

// ToAttachments 转换附件列表
func (r *HandleShippingRequestRequest) ToAttachments() []etrequest.Attachment {
	return toAttachments(r.Attachments)
}

func toAttachments(payloads []AttachmentPayload) []etrequest.Attachment {
	if len(payloads) == 0 {
		return nil
	}
	attachments := make([]etrequest.Attachment, 0, len(payloads))
	for _, p := range payloads {
		attachments = append(attachments, etrequest.Attachment{
			Name: p.Name,
			URL:  p.URL,
			Size: p.Size,
		})
	}
	return attachments
}
