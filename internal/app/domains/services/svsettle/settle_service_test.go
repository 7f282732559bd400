package svsettle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdsettle"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rporder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/errorx"
)

// ---- 测试替身 ----

type fakeSettleRepo struct {
	batches   map[string]*etsettle.Batch
	txs       map[string][]*etsettle.Transaction
	settled   map[string]bool
	createErr error
}

func newFakeSettleRepo() *fakeSettleRepo {
	return &fakeSettleRepo{
		batches: make(map[string]*etsettle.Batch),
		txs:     make(map[string][]*etsettle.Transaction),
		settled: make(map[string]bool),
	}
}

// 批次落库与订单标记同一事务：失败时两者都不生效
func (r *fakeSettleRepo) CreateBatch(ctx context.Context, batch *etsettle.Batch, txs []*etsettle.Transaction, orderIDs []string) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.batches[batch.ID] = batch
	r.txs[batch.ID] = txs
	for _, id := range orderIDs {
		r.settled[id] = true
	}
	return nil
}

func (r *fakeSettleRepo) GetBatch(ctx context.Context, batchID string) (*etsettle.Batch, error) {
	return r.batches[batchID], nil
}

func (r *fakeSettleRepo) ListBatches(ctx context.Context, accountID int64, page, limit int) ([]*etsettle.Batch, int64, error) {
	out := make([]*etsettle.Batch, 0)
	for _, b := range r.batches {
		if accountID == 0 || b.AccountID == accountID {
			out = append(out, b)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeSettleRepo) ListTransactions(ctx context.Context, batchID string) ([]*etsettle.Transaction, error) {
	return r.txs[batchID], nil
}

func (r *fakeSettleRepo) UpdateBatch(ctx context.Context, batch *etsettle.Batch) error {
	r.batches[batch.ID] = batch
	return nil
}

type fakeOrderRepo struct {
	unsettled []*etorder.Order
	settled   map[string]bool
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *etorder.Order) error { return nil }
func (r *fakeOrderRepo) GetByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepo) GetByTrackingNo(ctx context.Context, trackingNo string) (*etorder.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepo) Update(ctx context.Context, order *etorder.Order) error { return nil }
func (r *fakeOrderRepo) Delete(ctx context.Context, orderID string) error       { return nil }
func (r *fakeOrderRepo) List(ctx context.Context, q rporder.Query) ([]*etorder.Order, int64, error) {
	return nil, 0, nil
}

func (r *fakeOrderRepo) ListUnsettledCOD(ctx context.Context, before time.Time) ([]*etorder.Order, error) {
	out := make([]*etorder.Order, 0)
	for _, o := range r.unsettled {
		if !r.settled[o.ID] && o.CreatedAt.Before(before) {
			out = append(out, o)
		}
	}
	return out, nil
}

type fakeAccountRepo struct{}

func (fakeAccountRepo) Create(ctx context.Context, account *etaccount.Account) (int64, error) {
	return 0, nil
}
func (fakeAccountRepo) GetByID(ctx context.Context, accountID int64) (*etaccount.Account, error) {
	return nil, nil
}
func (fakeAccountRepo) GetByPhone(ctx context.Context, phone string) (*etaccount.Account, error) {
	return nil, nil
}
func (fakeAccountRepo) Exists(ctx context.Context, accountID int64) (bool, error) { return true, nil }
func (fakeAccountRepo) List(ctx context.Context, role etaccount.Role, page, limit int) ([]*etaccount.Account, int64, error) {
	return nil, 0, nil
}

type fakeEnqueuer struct {
	calls int
}

func (e *fakeEnqueuer) EnqueueSettlementReconcile(ctx context.Context, before time.Time) error {
	e.calls++
	return nil
}

type nopLogger struct{}

func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Sync() error                                                    { return nil }

func codOrder(id string, accountID, cod, fee int64, createdAt time.Time) *etorder.Order {
	return &etorder.Order{
		ID:            id,
		TrackingNo:    "LG" + id,
		AccountID:     accountID,
		Status:        etorder.StatusDelivered,
		COD:           cod,
		TotalFee:      fee,
		PaymentStatus: etorder.PaymentPaid,
		CreatedAt:     createdAt,
	}
}

func newTestService(unsettled []*etorder.Order) (*SettleService, *fakeSettleRepo, *fakeOrderRepo, *fakeEnqueuer) {
	settleRepo := newFakeSettleRepo()
	orderRepo := &fakeOrderRepo{unsettled: unsettled, settled: settleRepo.settled}
	enqueuer := &fakeEnqueuer{}
	svc := NewSettleService(
		mdsettle.NewSettleModule(settleRepo),
		mdorder.NewOrderModule(orderRepo, fakeAccountRepo{}),
		enqueuer,
		nopLogger{},
	)
	return svc, settleRepo, orderRepo, enqueuer
}

// ---- 用例 ----

func TestReconcileGroupsByAccount(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	orders := []*etorder.Order{
		codOrder("o1", 1, 200000, 30000, base),
		codOrder("o2", 1, 100000, 25000, base.Add(24*time.Hour)),
		codOrder("o3", 2, 500000, 40000, base.Add(48*time.Hour)),
	}
	svc, settleRepo, orderRepo, _ := newTestService(orders)

	batches, err := svc.ReconcileCOD(context.Background(), base.Add(30*24*time.Hour))
	if err != nil {
		t.Fatalf("ReconcileCOD() error = %v", err)
	}
	if len(batches) != 2 {
		t.Fatalf("batch count = %d, want 2", len(batches))
	}

	first := batches[0]
	if first.AccountID != 1 {
		t.Errorf("first batch account = %d, want 1", first.AccountID)
	}
	if first.TotalCOD != 300000 || first.TotalFee != 55000 || first.TotalNet != 245000 {
		t.Errorf("first batch totals = %d/%d/%d, want 300000/55000/245000",
			first.TotalCOD, first.TotalFee, first.TotalNet)
	}
	if first.TxCount != 2 {
		t.Errorf("first batch tx count = %d, want 2", first.TxCount)
	}
	if !first.PeriodStart.Equal(base) {
		t.Errorf("period start = %v, want %v", first.PeriodStart, base)
	}

	for _, id := range []string{"o1", "o2", "o3"} {
		if !orderRepo.settled[id] {
			t.Errorf("order %s should be marked settled", id)
		}
	}
	if len(settleRepo.batches) != 2 {
		t.Errorf("persisted batches = %d, want 2", len(settleRepo.batches))
	}

	// 再次对账无可结算订单
	again, err := svc.ReconcileCOD(context.Background(), base.Add(30*24*time.Hour))
	if err != nil {
		t.Fatalf("second ReconcileCOD() error = %v", err)
	}
	if len(again) != 0 {
		t.Errorf("second reconcile batch count = %d, want 0", len(again))
	}
}

func TestReconcileRespectsCutoff(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	orders := []*etorder.Order{
		codOrder("o1", 1, 200000, 30000, base),
		codOrder("o2", 1, 100000, 25000, base.Add(72*time.Hour)),
	}
	svc, _, orderRepo, _ := newTestService(orders)

	batches, err := svc.ReconcileCOD(context.Background(), base.Add(24*time.Hour))
	if err != nil {
		t.Fatalf("ReconcileCOD() error = %v", err)
	}
	if len(batches) != 1 || batches[0].TxCount != 1 {
		t.Fatalf("expected a single batch with one transaction, got %+v", batches)
	}
	if orderRepo.settled["o2"] {
		t.Error("order after cutoff must stay unsettled")
	}
}

func TestReconcileFailureLeavesOrdersUnsettled(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	orders := []*etorder.Order{codOrder("o1", 1, 200000, 30000, base)}
	svc, settleRepo, orderRepo, _ := newTestService(orders)

	settleRepo.createErr = errors.New("db down")
	if _, err := svc.ReconcileCOD(context.Background(), base.Add(time.Hour)); err == nil {
		t.Fatal("ReconcileCOD() expected error when batch save fails")
	}
	if orderRepo.settled["o1"] {
		t.Error("order must stay unsettled when the batch did not commit")
	}

	// 恢复后重试：同一订单重新入批，且只产生一个批次
	settleRepo.createErr = nil
	batches, err := svc.ReconcileCOD(context.Background(), base.Add(time.Hour))
	if err != nil {
		t.Fatalf("retry ReconcileCOD() error = %v", err)
	}
	if len(batches) != 1 || batches[0].TxCount != 1 {
		t.Fatalf("retry batches = %+v, want a single batch with one transaction", batches)
	}
	if len(settleRepo.batches) != 1 {
		t.Errorf("persisted batches = %d, want 1", len(settleRepo.batches))
	}
	if !orderRepo.settled["o1"] {
		t.Error("order should be settled after the batch commits")
	}
}

func TestBatchDetailAndTransfer(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	svc, _, _, _ := newTestService([]*etorder.Order{codOrder("o1", 1, 200000, 30000, base)})

	batches, _ := svc.ReconcileCOD(context.Background(), base.Add(time.Hour))
	batchID := batches[0].ID

	batch, txs, err := svc.GetBatchDetail(context.Background(), batchID)
	if err != nil {
		t.Fatalf("GetBatchDetail() error = %v", err)
	}
	if batch.Status != etsettle.BatchOpen {
		t.Errorf("batch status = %s, want %s", batch.Status, etsettle.BatchOpen)
	}
	if len(txs) != 1 || txs[0].Net != 170000 {
		t.Errorf("txs = %+v, want one tx with net 170000", txs)
	}

	transferred, err := svc.MarkBatchTransferred(context.Background(), batchID)
	if err != nil {
		t.Fatalf("MarkBatchTransferred() error = %v", err)
	}
	if transferred.Status != etsettle.BatchTransferred || transferred.TransferredAt == nil {
		t.Errorf("batch after transfer = %+v, want TRANSFERRED with timestamp", transferred)
	}

	// 重复打款拒绝
	if _, err := svc.MarkBatchTransferred(context.Background(), batchID); !errors.Is(err, etsettle.ErrNotOpen) {
		t.Errorf("double transfer error = %v, want ErrNotOpen", err)
	}
}

func TestBatchNotFound(t *testing.T) {
	svc, _, _, _ := newTestService(nil)

	if _, _, err := svc.GetBatchDetail(context.Background(), "nope"); !errors.Is(err, errorx.ErrBatchNotFound) {
		t.Errorf("GetBatchDetail() error = %v, want ErrBatchNotFound", err)
	}
	if _, err := svc.MarkBatchTransferred(context.Background(), "nope"); !errors.Is(err, errorx.ErrBatchNotFound) {
		t.Errorf("MarkBatchTransferred() error = %v, want ErrBatchNotFound", err)
	}
}

func TestEnqueueReconcileDelegates(t *testing.T) {
	svc, _, _, enqueuer := newTestService(nil)

	if err := svc.EnqueueReconcile(context.Background(), time.Now()); err != nil {
		t.Fatalf("EnqueueReconcile() error = %v", err)
	}
	if enqueuer.calls != 1 {
		t.Errorf("enqueuer calls = %d, want 1", enqueuer.calls)
	}
}
