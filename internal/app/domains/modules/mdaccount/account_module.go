package mdaccount

import (
	"context"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rpaccount"
)

// AccountModule 账号模块
type AccountModule struct {
	accountRepo rpaccount.AccountRepository
}

// NewAccountModule 创建账号模块
func NewAccountModule(accountRepo rpaccount.AccountRepository) *AccountModule {
	return &AccountModule{
		accountRepo: accountRepo,
	}
}

// CreateAccount 创建账号（数据操作）
func (m *AccountModule) CreateAccount(ctx context.Context, account *etaccount.Account) (int64, error) {
	return m.accountRepo.Create(ctx, account)
}

// GetAccount 查询账号
func (m *AccountModule) GetAccount(ctx context.Context, accountID int64) (*etaccount.Account, error) {
	return m.accountRepo.GetByID(ctx, accountID)
}

// GetAccountByPhone 根据手机号查询账号（检查重复、登录）
func (m *AccountModule) GetAccountByPhone(ctx context.Context, phone string) (*etaccount.Account, error) {
	return m.accountRepo.GetByPhone(ctx, phone)
}

// AccountExists 检查账号是否存在
func (m *AccountModule) AccountExists(ctx context.Context, accountID int64) (bool, error) {
	return m.accountRepo.Exists(ctx, accountID)
}

// ListAccounts 按角色分页查询账号
func (m *AccountModule) ListAccounts(ctx context.Context, role etaccount.Role, page, limit int) ([]*etaccount.Account, int64, error) {
	return m.accountRepo.List(ctx, role, page, limit)
}
