package response

import (
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etsettle"
)

// FromOrderEntity 从领域对象转换为响应 DTO
func FromOrderEntity(order *etorder.Order) *OrderResponse {
	return &OrderResponse{
		ID:          order.ID,
		TrackingNo:  order.TrackingNo,
		AccountID:   order.AccountID,
		CreatorType: string(order.CreatorType),

		Status:      string(order.Status),
		StatusLabel: order.Status.Label(),
		StatusTag:   order.Status.Tag(),

		Sender:    fromContact(order.Sender),
		Recipient: fromContact(order.Recipient),

		WeightGram:  order.WeightGram,
		ServiceType: string(order.ServiceType),
		PickupType:  string(order.PickupType),

		COD:            order.COD,
		TotalFee:       order.TotalFee,
		OrderValue:     order.OrderValue,
		DiscountAmount: order.DiscountAmount,

		Payer:              string(order.Payer),
		PaymentStatus:      string(order.PaymentStatus),
		PaymentStatusLabel: order.PaymentStatus.Label(),

		ShipperID: order.ShipperID,
		DriverID:  order.DriverID,

		Notes:     order.Notes,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}

// FromOrderEntities 批量转换订单列表
func FromOrderEntities(orders []*etorder.Order) []*OrderResponse {
	resps := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		resps = append(resps, FromOrderEntity(o))
	}
	return resps
}

func fromContact(c etorder.Contact) *ContactView {
	return &ContactView{
		Name:     c.Name,
		Phone:    c.Phone,
		CityCode: c.Address.CityCode,
		WardCode: c.Address.WardCode,
		Detail:   c.Address.Detail,
	}
}

// FromAccountEntity 从领域对象转换为响应 DTO
func FromAccountEntity(account *etaccount.Account) *AccountResponse {
	return &AccountResponse{
		ID:        account.ID,
		Name:      account.Name,
		Phone:     account.Phone,
		Email:     account.Email,
		Role:      string(account.Role),
		CreatedAt: account.CreatedAt,
	}
}

// FromAccountEntities 批量转换账号列表
func FromAccountEntities(accounts []*etaccount.Account) []*AccountResponse {
	resps := make([]*AccountResponse, 0, len(accounts))
	for _, a := range accounts {
		resps = append(resps, FromAccountEntity(a))
	}
	return resps
}

// FromRequestEntity 从领域对象转换为响应 DTO
func FromRequestEntity(req *etrequest.ShippingRequest) *ShippingRequestResponse {
	return &ShippingRequestResponse{
		ID:         req.ID,
		Code:       req.Code,
		AccountID:  req.AccountID,
		Name:       req.Name,
		Phone:      req.Phone,
		TrackingNo: req.TrackingNo,

		RequestType:      string(req.RequestType),
		RequestTypeLabel: req.RequestType.Label(),
		Status:           string(req.Status),
		StatusLabel:      req.Status.Label(),
		StatusTag:        req.Status.Tag(),

		Content:   req.Content,
		Response:  req.Response,
		HandlerID: req.HandlerID,

		Attachments: fromAttachments(req.Attachments),
		Responses:   fromAttachments(req.Responses),

		CreatedAt: req.CreatedAt,
		UpdatedAt: req.UpdatedAt,
	}
}

// FromRequestEntities 批量转换工单列表
func FromRequestEntities(reqs []*etrequest.ShippingRequest) []*ShippingRequestResponse {
	resps := make([]*ShippingRequestResponse, 0, len(reqs))
	for _, r := range reqs {
		resps = append(resps, FromRequestEntity(r))
	}
	return resps
}

func fromAttachments(attachments []etrequest.Attachment) []AttachmentView {
	if len(attachments) == 0 {
		return nil
	}
	views := make([]AttachmentView, 0, len(attachments))
	for _, a := range attachments {
		views = append(views, AttachmentView{Name: a.Name, URL: a.URL, Size: a.Size})
	}
	return views
}

// FromBatchEntity 从领域对象转换为响应 DTO
func FromBatchEntity(batch *etsettle.Batch) *SettlementBatchResponse {
	return &SettlementBatchResponse{
		ID:          batch.ID,
		AccountID:   batch.AccountID,
		Status:      string(batch.Status),
		StatusLabel: batch.Status.Label(),

		TotalCOD: batch.TotalCOD,
		TotalFee: batch.TotalFee,
		TotalNet: batch.TotalNet,
		TxCount:  batch.TxCount,

		PeriodStart:   batch.PeriodStart,
		PeriodEnd:     batch.PeriodEnd,
		CreatedAt:     batch.CreatedAt,
		TransferredAt: batch.TransferredAt,
	}
}

// FromBatchEntities 批量转换批次列表
func FromBatchEntities(batches []*etsettle.Batch) []*SettlementBatchResponse {
	resps := make([]*SettlementBatchResponse, 0, len(batches))
	for _, b := range batches {
		resps = append(resps, FromBatchEntity(b))
	}
	return resps
}

// FromTransactionEntities 批量转换流水列表
func FromTransactionEntities(txs []*etsettle.Transaction) []*SettlementTransactionResponse {
	resps := make([]*SettlementTransactionResponse, 0, len(txs))
	for _, t := range txs {
		resps = append(resps, &SettlementTransactionResponse{
			ID:         t.ID,
			OrderID:    t.OrderID,
			TrackingNo: t.TrackingNo,
			COD:        t.COD,
			Fee:        t.Fee,
			Net:        t.Net,
			CreatedAt:  t.CreatedAt,
		})
	}
	return resps
}
