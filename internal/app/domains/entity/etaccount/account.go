package etaccount

import (
	"errors"
	"time"
)

// 错误定义
var (
	ErrInvalidAccountID = errors.New("invalid account ID")
	ErrInvalidName      = errors.New("account name cannot be empty")
	ErrInvalidPhone     = errors.New("account phone cannot be empty")
	ErrInvalidRole      = errors.New("unknown account role")
)

// Role 账号角色
type Role string

const (
	RoleUser    Role = "USER"
	RoleManager Role = "MANAGER"
	RoleAdmin   Role = "ADMIN"
	RoleShipper Role = "SHIPPER"
	RoleDriver  Role = "DRIVER"
)

// ParseRole 解析角色字符串
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleManager, RoleAdmin, RoleShipper, RoleDriver:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// Account 账号实体
type Account struct {
	ID           int64  // 账号ID
	Name         string // 姓名/店铺名
	Phone        string // 手机号（登录凭证）
	Email        string // 邮箱
	PasswordHash string // 密码哈希
	Role         Role   // 角色
	OfficeCode   string // 所属网点编码（网点侧角色使用）
	CreatedAt    time.Time
}

// NewAccount 创建账号（工厂方法）
// id 为 0 表示新建账号，ID 由数据库生成
func NewAccount(id int64, name, phone, email, passwordHash string, role Role) (*Account, error) {
	if id < 0 {
		return nil, ErrInvalidAccountID
	}
	if name == "" {
		return nil, ErrInvalidName
	}
	if phone == "" {
		return nil, ErrInvalidPhone
	}
	if _, err := ParseRole(string(role)); err != nil {
		return nil, err
	}

	return &Account{
		ID:           id,
		Name:         name,
		Phone:        phone,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}, nil
}
