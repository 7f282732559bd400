package svrequest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdrequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rporder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rprequest"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/errorx"
)

// ---- 测试替身 ----

type fakeRequestRepo struct {
	requests map[string]*etrequest.ShippingRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]*etrequest.ShippingRequest)}
}

func (r *fakeRequestRepo) Create(ctx context.Context, req *etrequest.ShippingRequest) error {
	r.requests[req.ID] = req
	return nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, requestID string) (*etrequest.ShippingRequest, error) {
	return r.requests[requestID], nil
}

func (r *fakeRequestRepo) Update(ctx context.Context, req *etrequest.ShippingRequest) error {
	r.requests[req.ID] = req
	return nil
}

func (r *fakeRequestRepo) List(ctx context.Context, q rprequest.Query) ([]*etrequest.ShippingRequest, int64, error) {
	return nil, 0, nil
}

type fakeOrderRepo struct {
	byTrackingNo map[string]*etorder.Order
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *etorder.Order) error { return nil }
func (r *fakeOrderRepo) GetByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	return nil, nil
}
func (r *fakeOrderRepo) GetByTrackingNo(ctx context.Context, trackingNo string) (*etorder.Order, error) {
	return r.byTrackingNo[trackingNo], nil
}
func (r *fakeOrderRepo) Update(ctx context.Context, order *etorder.Order) error { return nil }
func (r *fakeOrderRepo) Delete(ctx context.Context, orderID string) error       { return nil }
func (r *fakeOrderRepo) List(ctx context.Context, q rporder.Query) ([]*etorder.Order, int64, error) {
	return nil, 0, nil
}
func (r *fakeOrderRepo) ListUnsettledCOD(ctx context.Context, before time.Time) ([]*etorder.Order, error) {
	return nil, nil
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

func newTestService() (*RequestService, *fakeOrderRepo) {
	orderRepo := &fakeOrderRepo{byTrackingNo: map[string]*etorder.Order{
		"LG0000000001": {ID: "o1", TrackingNo: "LG0000000001", AccountID: 1},
	}}
	svc := NewRequestService(
		mdrequest.NewRequestModule(newFakeRequestRepo()),
		mdorder.NewOrderModule(orderRepo, fakeAccountRepo{}),
	)
	return svc, orderRepo
}

func validInput() CreateRequestInput {
	return CreateRequestInput{
		Name:        "Nguyen Van A",
		Phone:       "0900000001",
		TrackingNo:  "LG0000000001",
		RequestType: etrequest.TypeComplaint,
		Content:     "Package damaged on arrival",
	}
}

// ---- 用例 ----

func TestCreateRequest(t *testing.T) {
	svc, _ := newTestService()

	req, err := svc.CreateRequest(context.Background(), 1, validInput())
	if err != nil {
		t.Fatalf("CreateRequest() error = %v", err)
	}
	if req.Status != etrequest.StatusPending {
		t.Errorf("status = %s, want %s", req.Status, etrequest.StatusPending)
	}
	if !strings.HasPrefix(req.Code, "RQ") {
		t.Errorf("code = %q, want RQ prefix", req.Code)
	}
}

func TestCreateRequestUnknownTrackingNo(t *testing.T) {
	svc, _ := newTestService()

	in := validInput()
	in.TrackingNo = "LG9999999999"
	if _, err := svc.CreateRequest(context.Background(), 1, in); !errors.Is(err, errorx.ErrOrderNotFound) {
		t.Errorf("CreateRequest() error = %v, want ErrOrderNotFound", err)
	}

	// 不关联运单号则不校验
	in.TrackingNo = ""
	if _, err := svc.CreateRequest(context.Background(), 1, in); err != nil {
		t.Errorf("CreateRequest() without tracking number error = %v", err)
	}
}

func TestRequestLifecycle(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req, _ := svc.CreateRequest(ctx, 1, validInput())

	// 受理
	taken, err := svc.TakeRequest(ctx, 5, req.ID)
	if err != nil {
		t.Fatalf("TakeRequest() error = %v", err)
	}
	if taken.Status != etrequest.StatusProcessing || taken.HandlerID != 5 {
		t.Errorf("taken = %+v, want PROCESSING handled by 5", taken)
	}

	// 已受理不可再受理
	if _, err := svc.TakeRequest(ctx, 6, req.ID); !errors.Is(err, errorx.ErrActionNotAllowed) {
		t.Errorf("second take error = %v, want ErrActionNotAllowed", err)
	}

	// 非受理人不可解决
	if _, err := svc.ResolveRequest(ctx, 6, req.ID, "done", nil); !errors.Is(err, errorx.ErrNotAssignee) {
		t.Errorf("resolve by stranger error = %v, want ErrNotAssignee", err)
	}

	resolved, err := svc.ResolveRequest(ctx, 5, req.ID, "refunded", nil)
	if err != nil {
		t.Fatalf("ResolveRequest() error = %v", err)
	}
	if resolved.Status != etrequest.StatusResolved || resolved.Response != "refunded" {
		t.Errorf("resolved = %+v, want RESOLVED with response", resolved)
	}
}

func TestRejectRules(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	// 待受理可直接驳回
	req, _ := svc.CreateRequest(ctx, 1, validInput())
	rejected, err := svc.RejectRequest(ctx, 5, req.ID, "out of scope")
	if err != nil {
		t.Fatalf("RejectRequest() error = %v", err)
	}
	if rejected.Status != etrequest.StatusRejected {
		t.Errorf("status = %s, want %s", rejected.Status, etrequest.StatusRejected)
	}

	// 处理中只有受理人可驳回
	other, _ := svc.CreateRequest(ctx, 1, validInput())
	svc.TakeRequest(ctx, 5, other.ID)
	if _, err := svc.RejectRequest(ctx, 6, other.ID, "no"); !errors.Is(err, errorx.ErrNotAssignee) {
		t.Errorf("reject by stranger error = %v, want ErrNotAssignee", err)
	}
	if _, err := svc.RejectRequest(ctx, 5, other.ID, "no"); err != nil {
		t.Errorf("reject by handler error = %v", err)
	}
}

func TestCancelOnlyPendingAndOwner(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req, _ := svc.CreateRequest(ctx, 1, validInput())

	if _, err := svc.CancelRequest(ctx, 2, req.ID); !errors.Is(err, errorx.ErrNotOwner) {
		t.Errorf("cancel by non-owner error = %v, want ErrNotOwner", err)
	}

	cancelled, err := svc.CancelRequest(ctx, 1, req.ID)
	if err != nil {
		t.Fatalf("CancelRequest() error = %v", err)
	}
	if cancelled.Status != etrequest.StatusCancelled {
		t.Errorf("status = %s, want %s", cancelled.Status, etrequest.StatusCancelled)
	}

	// 已受理的不可取消
	taken, _ := svc.CreateRequest(ctx, 1, validInput())
	svc.TakeRequest(ctx, 5, taken.ID)
	if _, err := svc.CancelRequest(ctx, 1, taken.ID); !errors.Is(err, errorx.ErrActionNotAllowed) {
		t.Errorf("cancel processing error = %v, want ErrActionNotAllowed", err)
	}
}

func TestGetRequestNotFound(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.GetRequest(context.Background(), "nope"); !errors.Is(err, errorx.ErrRequestNotFound) {
		t.Errorf("GetRequest() error = %v, want ErrRequestNotFound", err)
	}
}
