package svaccount

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/auth"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/errorx"
)

type fakeAccountRepo struct {
	nextID   int64
	accounts map[int64]*etaccount.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{nextID: 1, accounts: make(map[int64]*etaccount.Account)}
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *etaccount.Account) (int64, error) {
	id := r.nextID
	r.nextID++
	stored := *account
	stored.ID = id
	r.accounts[id] = &stored
	return id, nil
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, accountID int64) (*etaccount.Account, error) {
	return r.accounts[accountID], nil
}

func (r *fakeAccountRepo) GetByPhone(ctx context.Context, phone string) (*etaccount.Account, error) {
	for _, a := range r.accounts {
		if a.Phone == phone {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Exists(ctx context.Context, accountID int64) (bool, error) {
	_, ok := r.accounts[accountID]
	return ok, nil
}

func (r *fakeAccountRepo) List(ctx context.Context, role etaccount.Role, page, limit int) ([]*etaccount.Account, int64, error) {
	out := make([]*etaccount.Account, 0)
	for _, a := range r.accounts {
		if role == "" || a.Role == role {
			out = append(out, a)
		}
	}
	return out, int64(len(out)), nil
}

func newTestService() *AccountService {
	repo := newFakeAccountRepo()
	module := mdaccount.NewAccountModule(repo)
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	return NewAccountService(module, issuer)
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	account, err := svc.Register(ctx, "Shop ABC", "0900000001", "abc@example.com", "s3cret!", "USER")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if account.ID == 0 {
		t.Error("registered account should carry a generated ID")
	}
	if account.PasswordHash == "s3cret!" {
		t.Error("password must not be stored in plain text")
	}

	token, logged, err := svc.Login(ctx, "0900000001", "s3cret!")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Error("login should return a token")
	}
	if logged.ID != account.ID {
		t.Errorf("logged account ID = %d, want %d", logged.ID, account.ID)
	}
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Shop ABC", "0900000001", "", "pw", "USER"); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	_, err := svc.Register(ctx, "Shop XYZ", "0900000001", "", "pw2", "USER")
	if !errors.Is(err, errorx.ErrAccountExists) {
		t.Errorf("duplicate register error = %v, want ErrAccountExists", err)
	}
}

func TestRegisterUnknownRole(t *testing.T) {
	svc := newTestService()

	_, err := svc.Register(context.Background(), "X", "0900000002", "", "pw", "SUPERVISOR")
	if !errors.Is(err, etaccount.ErrInvalidRole) {
		t.Errorf("Register() error = %v, want ErrInvalidRole", err)
	}
}

// 密码错误与账号不存在必须同错，避免枚举
func TestLoginInvalidCredentials(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	svc.Register(ctx, "Shop ABC", "0900000001", "", "right-pw", "USER")

	if _, _, err := svc.Login(ctx, "0900000001", "wrong-pw"); !errors.Is(err, errorx.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(ctx, "0988888888", "right-pw"); !errors.Is(err, errorx.ErrInvalidCredentials) {
		t.Errorf("unknown phone error = %v, want ErrInvalidCredentials", err)
	}
}

func TestGetAccountNotFound(t *testing.T) {
	svc := newTestService()

	if _, err := svc.GetAccount(context.Background(), 42); !errors.Is(err, errorx.ErrAccountNotFound) {
		t.Errorf("GetAccount() error = %v, want ErrAccountNotFound", err)
	}
}
