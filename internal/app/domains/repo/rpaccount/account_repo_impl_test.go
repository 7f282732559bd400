package rpaccount

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ---- 测试替身：任何查询都返回空结果集的 SQL 驱动 ----

type emptyDriver struct{}

func (emptyDriver) Open(name string) (driver.Conn, error) { return emptyConn{}, nil }

type emptyConn struct{}

func (emptyConn) Prepare(query string) (driver.Stmt, error) { return emptyStmt{}, nil }
func (emptyConn) Close() error                              { return nil }
func (emptyConn) Begin() (driver.Tx, error)                 { return nil, driver.ErrSkip }

type emptyStmt struct{}

func (emptyStmt) Close() error  { return nil }
func (emptyStmt) NumInput() int { return -1 }
func (emptyStmt) Exec(args []driver.Value) (driver.Result, error) {
	return driver.RowsAffected(0), nil
}
func (emptyStmt) Query(args []driver.Value) (driver.Rows, error) { return emptyRows{}, nil }

type emptyRows struct{}

func (emptyRows) Columns() []string              { return []string{"id"} }
func (emptyRows) Close() error                   { return nil }
func (emptyRows) Next(dest []driver.Value) error { return io.EOF }

func init() { sql.Register("rpaccount-empty", emptyDriver{}) }

func newEmptyResultDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("rpaccount-empty", "empty")
	if err != nil {
		t.Fatalf("open fake db failed: %v", err)
	}
	db, err := gorm.Open(
		mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}),
		&gorm.Config{DisableAutomaticPing: true},
	)
	if err != nil {
		t.Fatalf("open gorm failed: %v", err)
	}
	return db
}

// 行不存在时查询方法统一返回 nil, nil，由服务层映射为业务错误
func TestGetMissingRowReturnsNil(t *testing.T) {
	repo := NewAccountRepository(newEmptyResultDB(t))

	account, err := repo.GetByID(context.Background(), 404)
	if err != nil {
		t.Fatalf("GetByID() error = %v, want nil on missing row", err)
	}
	if account != nil {
		t.Errorf("GetByID() = %+v, want nil", account)
	}

	account, err = repo.GetByPhone(context.Background(), "0900000000")
	if err != nil {
		t.Fatalf("GetByPhone() error = %v, want nil on missing row", err)
	}
	if account != nil {
		t.Errorf("GetByPhone() = %+v, want nil", account)
	}
}
