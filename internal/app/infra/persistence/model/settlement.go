package model

import "time"

// SettlementBatch 结算批次持久化模型
type SettlementBatch struct {
	ID            string     `gorm:"column:id;primaryKey;type:varchar(64)"`
	AccountID     int64      `gorm:"column:account_id;not null;index:idx_batch_account"`
	Status        string     `gorm:"column:status;type:varchar(16);not null;default:'OPEN'"`
	TotalCOD      int64      `gorm:"column:total_cod;not null;default:0"`
	TotalFee      int64      `gorm:"column:total_fee;not null;default:0"`
	TotalNet      int64      `gorm:"column:total_net;not null;default:0"`
	TxCount       int        `gorm:"column:tx_count;not null;default:0"`
	PeriodStart   time.Time  `gorm:"column:period_start;not null"`
	PeriodEnd     time.Time  `gorm:"column:period_end;not null"`
	CreatedAt     time.Time  `gorm:"column:created_at;not null;index:idx_batch_created_at"`
	TransferredAt *time.Time `gorm:"column:transferred_at"`
}

// TableName 指定表名
func (SettlementBatch) TableName() string {
	return "settlement_batches"
}

// SettlementTransaction 结算流水持久化模型
type SettlementTransaction struct {
	ID         string    `gorm:"column:id;primaryKey;type:varchar(64)"`
	BatchID    string    `gorm:"column:batch_id;type:varchar(64);not null;index:idx_tx_batch"`
	OrderID    string    `gorm:"column:order_id;type:varchar(64);not null;uniqueIndex:uk_tx_order"`
	TrackingNo string    `gorm:"column:tracking_no;type:varchar(32);not null"`
	COD        int64     `gorm:"column:cod;not null;default:0"`
	Fee        int64     `gorm:"column:fee;not null;default:0"`
	Net        int64     `gorm:"column:net;not null;default:0"`
	CreatedAt  time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (SettlementTransaction) TableName() string {
	return "settlement_transactions"
}
