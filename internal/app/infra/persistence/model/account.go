package model

import "time"

// Account 账号持久化模型
type Account struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;type:varchar(128);not null"`
	Phone        string    `gorm:"column:phone;type:varchar(32);not null;uniqueIndex:uk_account_phone"`
	Email        string    `gorm:"column:email;type:varchar(128)"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(128);not null"`
	Role         string    `gorm:"column:role;type:varchar(16);not null;default:'USER'"`
	OfficeCode   string    `gorm:"column:office_code;type:varchar(32)"`
	CreatedAt    time.Time `gorm:"column:created_at;not null"`
}

// TableName 指定表名
func (Account) TableName() string {
	return "accounts"
}
