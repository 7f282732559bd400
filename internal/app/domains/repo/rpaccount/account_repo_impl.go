package rpaccount

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/persistence/model"
)

// AccountRepositoryImpl 账号仓储实现（MySQL）
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// NewAccountRepository 创建账号仓储实例
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create 创建账号，返回数据库生成的ID
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *etaccount.Account) (int64, error) {
	po := toGormModel(account)
	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		return 0, err
	}
	return po.ID, nil
}

// GetByID 根据ID查询账号，不存在返回 nil
func (r *AccountRepositoryImpl) GetByID(ctx context.Context, accountID int64) (*etaccount.Account, error) {
	var po model.Account
	err := r.db.WithContext(ctx).Where("id = ?", accountID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainModel(&po), nil
}

// GetByPhone 根据手机号查询账号，不存在返回 nil
func (r *AccountRepositoryImpl) GetByPhone(ctx context.Context, phone string) (*etaccount.Account, error) {
	var po model.Account
	err := r.db.WithContext(ctx).Where("phone = ?", phone).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomainModel(&po), nil
}

// Exists 检查账号是否存在
func (r *AccountRepositoryImpl) Exists(ctx context.Context, accountID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", accountID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// List 按角色分页查询账号
func (r *AccountRepositoryImpl) List(ctx context.Context, role etaccount.Role, page, limit int) ([]*etaccount.Account, int64, error) {
	var total int64
	var pos []model.Account

	query := r.db.WithContext(ctx).Model(&model.Account{})
	if role != "" {
		query = query.Where("role = ?", string(role))
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	offset := (page - 1) * limit
	if err := query.Offset(offset).Limit(limit).Order("created_at DESC").Find(&pos).Error; err != nil {
		return nil, 0, err
	}

	accounts := make([]*etaccount.Account, 0, len(pos))
	for i := range pos {
		accounts = append(accounts, toDomainModel(&pos[i]))
	}
	return accounts, total, nil
}

// toGormModel 领域对象转换为 GORM 模型
func toGormModel(account *etaccount.Account) *model.Account {
	return &model.Account{
		ID:           account.ID,
		Name:         account.Name,
		Phone:        account.Phone,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Role:         string(account.Role),
		OfficeCode:   account.OfficeCode,
		CreatedAt:    account.CreatedAt,
	}
}

// toDomainModel GORM 模型转换为领域对象
func toDomainModel(po *model.Account) *etaccount.Account {
	return &etaccount.Account{
		ID:           po.ID,
		Name:         po.Name,
		Phone:        po.Phone,
		Email:        po.Email,
		PasswordHash: po.PasswordHash,
		Role:         etaccount.Role(po.Role),
		OfficeCode:   po.OfficeCode,
		CreatedAt:    po.CreatedAt,
	}
}
