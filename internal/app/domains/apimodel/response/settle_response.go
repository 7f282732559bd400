package response

import "time"

// SettlementBatchResponse 结算批次响应（DTO）
type SettlementBatchResponse struct {
	ID          string `json:"id"`
	AccountID   int64  `json:"accountId"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`

	TotalCOD int64 `json:"totalCod"`
	TotalFee int64 `json:"totalFee"`
	TotalNet int64 `json:"totalNet"`
	TxCount  int   `json:"txCount"`

	PeriodStart   time.Time  `json:"periodStart"`
	PeriodEnd     time.Time  `json:"periodEnd"`
	CreatedAt     time.Time  `json:"createdAt"`
	TransferredAt *time.Time `json:"transferredAt,omitempty"`
}

// SettlementTransactionResponse 结算流水响应（DTO）
type SettlementTransactionResponse struct {
	ID         string    `json:"id"`
	OrderID    string    `json:"orderId"`
	TrackingNo string    `json:"trackingNo"`
	COD        int64     `json:"cod"`
	Fee        int64     `json:"fee"`
	Net        int64     `json:"net"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SettlementBatchDetailResponse 批次详情（含流水）
type SettlementBatchDetailResponse struct {
	Batch        *SettlementBatchResponse         `json:"batch"`
	Transactions []*SettlementTransactionResponse `json:"transactions"`
}
