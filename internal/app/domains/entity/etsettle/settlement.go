package etsettle

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidBatchID = errors.New("batch ID cannot be empty")
	ErrEmptyBatch     = errors.New("settlement batch has no transactions")
	ErrNotOpen        = errors.New("settlement batch is not open")
)

// BatchStatus 结算批次状态
type BatchStatus string

const (
	BatchOpen        BatchStatus = "OPEN"
	BatchTransferred BatchStatus = "TRANSFERRED"
)

var batchStatusLabels = map[BatchStatus]string{
	BatchOpen:        "待打款",
	BatchTransferred: "已打款",
}

// Label 返回批次状态展示文案，未知值原样返回
func (s BatchStatus) Label() string {
	if label, ok := batchStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Transaction 结算流水：单笔订单的代收货款与运费轧差记录
type Transaction struct {
	ID         string // 流水ID (UUID)
	BatchID    string // 所属批次ID
	OrderID    string // 订单ID
	TrackingNo string // 运单号
	COD        int64  // 代收货款
	Fee        int64  // 平台应收运费
	Net        int64  // 应付商家净额 = COD - Fee
	CreatedAt  time.Time
}

// Batch 结算批次：按商家账号周期性归集的打款单
type Batch struct {
	ID            string // 批次ID (UUID)
	AccountID     int64  // 商家账号ID
	Status        BatchStatus
	TotalCOD      int64 // 批次代收货款合计
	TotalFee      int64 // 批次运费合计
	TotalNet      int64 // 批次应付净额合计
	TxCount       int   // 流水笔数
	PeriodStart   time.Time
	PeriodEnd     time.Time
	CreatedAt     time.Time
	TransferredAt *time.Time
}

// NewBatch 创建结算批次并计算合计（工厂方法）
func NewBatch(id string, accountID int64, periodStart, periodEnd time.Time, txs []*Transaction) (*Batch, error) {
	if id == "" {
		return nil, ErrInvalidBatchID
	}
	if len(txs) == 0 {
		return nil, ErrEmptyBatch
	}

	b := &Batch{
		ID:          id,
		AccountID:   accountID,
		Status:      BatchOpen,
		TxCount:     len(txs),
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		CreatedAt:   time.Now(),
	}
	for _, tx := range txs {
		tx.BatchID = id
		tx.Net = tx.COD - tx.Fee
		b.TotalCOD += tx.COD
		b.TotalFee += tx.Fee
		b.TotalNet += tx.Net
	}
	return b, nil
}

// MarkTransferred 标记批次已打款（领域行为）
func (b *Batch) MarkTransferred() error {
	if b.Status != BatchOpen {
		return ErrNotOpen
	}
	now := time.Now()
	b.Status = BatchTransferred
	b.TransferredAt = &now
	return nil
}
