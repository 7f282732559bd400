package rpaccount

import (
	"context"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etaccount"
)

// AccountRepository 账号仓储接口
type AccountRepository interface {
	// Create 创建账号，返回数据库生成的ID
	Create(ctx context.Context, account *etaccount.Account) (int64, error)

	// GetByID 根据ID查询账号，不存在返回 nil
	GetByID(ctx context.Context, accountID int64) (*etaccount.Account, error)

	// GetByPhone 根据手机号查询账号，不存在返回 nil
	GetByPhone(ctx context.Context, phone string) (*etaccount.Account, error)

	// Exists 检查账号是否存在
	Exists(ctx context.Context, accountID int64) (bool, error)

	// List 按角色分页查询账号
	List(ctx context.Context, role etaccount.Role, page, limit int) ([]*etaccount.Account, int64, error)
}
