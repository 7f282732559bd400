package svaccount

import (
	"context"
	"fmt"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/auth"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/errorx"
)

// AccountService 账号服务，负责注册、登录与账号查询
type AccountService struct {
	accountModule *mdaccount.AccountModule
	tokenIssuer   *auth.TokenIssuer
}

// NewAccountService 创建账号服务实例
func NewAccountService(accountModule *mdaccount.AccountModule, tokenIssuer *auth.TokenIssuer) *AccountService {
	return &AccountService{
		accountModule: accountModule,
		tokenIssuer:   tokenIssuer,
	}
}

// Register 注册账号
// 1. 校验角色合法
// 2. 手机号查重
// 3. 密码哈希后落库
func (s *AccountService) Register(ctx context.Context, name, phone, email, password, role string) (*etaccount.Account, error) {
	parsedRole, err := etaccount.ParseRole(role)
	if err != nil {
		return nil, err
	}

	existing, err := s.accountModule.GetAccountByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("check account duplicate failed: %w", err)
	}
	if existing != nil {
		return nil, errorx.ErrAccountExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	account, err := etaccount.NewAccount(0, name, phone, email, hash, parsedRole)
	if err != nil {
		return nil, err
	}

	id, err := s.accountModule.CreateAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("save account failed: %w", err)
	}
	account.ID = id

	return account, nil
}

// Login 登录，成功返回 JWT 令牌与账号信息
func (s *AccountService) Login(ctx context.Context, phone, password string) (string, *etaccount.Account, error) {
	account, err := s.accountModule.GetAccountByPhone(ctx, phone)
	if err != nil {
		return "", nil, fmt.Errorf("query account failed: %w", err)
	}
	if account == nil || !auth.CheckPassword(account.PasswordHash, password) {
		// 账号不存在与密码错误返回同一错误，避免账号枚举
		return "", nil, errorx.ErrInvalidCredentials
	}

	token, err := s.tokenIssuer.Issue(account.ID, string(account.Role))
	if err != nil {
		return "", nil, fmt.Errorf("issue token failed: %w", err)
	}

	return token, account, nil
}

// GetAccount 查询账号信息
func (s *AccountService) GetAccount(ctx context.Context, accountID int64) (*etaccount.Account, error) {
	account, err := s.accountModule.GetAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, errorx.ErrAccountNotFound
	}
	return account, nil
}

// ListAccounts 按角色分页查询账号（管理端）
func (s *AccountService) ListAccounts(ctx context.Context, role etaccount.Role, page, limit int) ([]*etaccount.Account, int64, error) {
	return s.accountModule.ListAccounts(ctx, role, page, limit)
}
