package svorder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etaccount"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/modules/mdorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/repo/rporder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/fees"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/errorx"
)

// ---- 测试替身 ----

type fakeOrderRepo struct {
	orders map[string]*etorder.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*etorder.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *etorder.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, orderID string) (*etorder.Order, error) {
	return r.orders[orderID], nil
}

func (r *fakeOrderRepo) GetByTrackingNo(ctx context.Context, trackingNo string) (*etorder.Order, error) {
	for _, o := range r.orders {
		if o.TrackingNo == trackingNo {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) Update(ctx context.Context, order *etorder.Order) error {
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, orderID string) error {
	delete(r.orders, orderID)
	return nil
}

func (r *fakeOrderRepo) List(ctx context.Context, q rporder.Query) ([]*etorder.Order, int64, error) {
	return nil, 0, nil
}

func (r *fakeOrderRepo) ListUnsettledCOD(ctx context.Context, before time.Time) ([]*etorder.Order, error) {
	return nil, nil
}

type fakeAccountRepo struct {
	ids map[int64]bool
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *etaccount.Account) (int64, error) {
	return 0, errors.New("not implemented")
}

func (r *fakeAccountRepo) GetByID(ctx context.Context, accountID int64) (*etaccount.Account, error) {
	return nil, nil
}

func (r *fakeAccountRepo) GetByPhone(ctx context.Context, phone string) (*etaccount.Account, error) {
	return nil, nil
}

func (r *fakeAccountRepo) Exists(ctx context.Context, accountID int64) (bool, error) {
	return r.ids[accountID], nil
}

func (r *fakeAccountRepo) List(ctx context.Context, role etaccount.Role, page, limit int) ([]*etaccount.Account, int64, error) {
	return nil, 0, nil
}

type fakeQuoter struct {
	totalFee int64
	discount int64
	err      error
}

func (q *fakeQuoter) Quote(ctx context.Context, qr fees.QuoteRequest) (*fees.QuoteResult, error) {
	if q.err != nil {
		return nil, q.err
	}
	return &fees.QuoteResult{TotalFee: q.totalFee, DiscountAmount: q.discount}, nil
}

type fakeNotifier struct {
	events []string
}

func (n *fakeNotifier) EnqueueOrderEventFanout(ctx context.Context, orderID, trackingNo, eventType string, partyIDs []int64) error {
	n.events = append(n.events, eventType)
	return nil
}

type nopLogger struct{}

func (nopLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...interface{}) {}
func (nopLogger) Sync() error                                                    { return nil }

func newTestService(t *testing.T) (*OrderService, *fakeOrderRepo, *fakeNotifier) {
	t.Helper()
	orderRepo := newFakeOrderRepo()
	accountRepo := &fakeAccountRepo{ids: map[int64]bool{1: true, 2: true, 7: true, 9: true}}
	notifier := &fakeNotifier{}
	module := mdorder.NewOrderModule(orderRepo, accountRepo)
	svc := NewOrderService(module, &fakeQuoter{totalFee: 3500, discount: 500}, notifier, nopLogger{})
	return svc, orderRepo, notifier
}

func validInput() CreateOrderInput {
	return CreateOrderInput{
		Sender: etorder.Contact{
			Name:    "Nguyen Van A",
			Phone:   "0900000001",
			Address: etorder.Address{CityCode: "01", WardCode: "00101", Detail: "12 Hang Bac"},
		},
		Recipient: etorder.Contact{
			Name:    "Tran Thi B",
			Phone:   "0900000002",
			Address: etorder.Address{CityCode: "79", WardCode: "79001", Detail: "45 Le Loi"},
		},
		WeightGram:  1200,
		ServiceType: etorder.ServiceStandard,
		PickupType:  etorder.PickupAtDoor,
		COD:         200000,
		OrderValue:  500000,
	}
}

// ---- 用例 ----

func TestCreateOrderQuotesFee(t *testing.T) {
	svc, _, _ := newTestService(t)

	order, err := svc.CreateOrder(context.Background(), 1, etorder.CreatorUser, validInput())
	if err != nil {
		t.Fatalf("CreateOrder() error = %v", err)
	}
	if order.Status != etorder.StatusDraft {
		t.Errorf("new order status = %s, want %s", order.Status, etorder.StatusDraft)
	}
	if order.TotalFee != 3500 || order.DiscountAmount != 500 {
		t.Errorf("fee = %d/%d, want 3500/500", order.TotalFee, order.DiscountAmount)
	}
	if order.TrackingNo != "" {
		t.Errorf("draft should not carry a tracking number, got %q", order.TrackingNo)
	}
}

func TestCreateOrderUnknownAccount(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateOrder(context.Background(), 999, etorder.CreatorUser, validInput())
	if !errors.Is(err, errorx.ErrAccountNotFound) {
		t.Errorf("CreateOrder() error = %v, want ErrAccountNotFound", err)
	}
}

func TestPublishAssignsTrackingNumber(t *testing.T) {
	svc, _, notifier := newTestService(t)

	order, _ := svc.CreateOrder(context.Background(), 1, etorder.CreatorUser, validInput())

	published, err := svc.PublishOrder(context.Background(), 1, order.ID)
	if err != nil {
		t.Fatalf("PublishOrder() error = %v", err)
	}
	if published.Status != etorder.StatusPending {
		t.Errorf("status = %s, want %s", published.Status, etorder.StatusPending)
	}
	if published.TrackingNo == "" {
		t.Error("published order must carry a tracking number")
	}
	if len(notifier.events) != 1 || notifier.events[0] != string(etorder.StatusPending) {
		t.Errorf("fanout events = %v, want [PENDING]", notifier.events)
	}

	// 重复发布应被拒绝
	if _, err := svc.PublishOrder(context.Background(), 1, order.ID); !errors.Is(err, errorx.ErrActionNotAllowed) {
		t.Errorf("second publish error = %v, want ErrActionNotAllowed", err)
	}
}

func TestPublishRejectsForeignOrder(t *testing.T) {
	svc, _, _ := newTestService(t)

	order, _ := svc.CreateOrder(context.Background(), 1, etorder.CreatorUser, validInput())

	if _, err := svc.PublishOrder(context.Background(), 2, order.ID); !errors.Is(err, errorx.ErrNotOwner) {
		t.Errorf("PublishOrder() by non-owner error = %v, want ErrNotOwner", err)
	}
}

func TestUserFieldEditRules(t *testing.T) {
	svc, repo, _ := newTestService(t)

	order, _ := svc.CreateOrder(context.Background(), 1, etorder.CreatorUser, validInput())
	svc.PublishOrder(context.Background(), 1, order.ID)

	// 待确认阶段用户仍可改收件人和重量
	updated, err := svc.UpdateUserOrderFields(context.Background(), 1, order.ID, map[string]interface{}{
		"recipientName": "Le Van C",
		"weight":        1500,
	})
	if err != nil {
		t.Fatalf("UpdateUserOrderFields() error = %v", err)
	}
	if updated.Recipient.Name != "Le Van C" {
		t.Errorf("recipient name = %q, want %q", updated.Recipient.Name, "Le Van C")
	}
	if updated.WeightGram != 1500 {
		t.Errorf("weight = %d, want 1500", updated.WeightGram)
	}

	// 确认后重量锁定，收件人仍可改
	repo.orders[order.ID].Status = etorder.StatusConfirmed
	_, err = svc.UpdateUserOrderFields(context.Background(), 1, order.ID, map[string]interface{}{
		"weight": 2000,
	})
	if !errors.Is(err, errorx.ErrFieldNotEditable) {
		t.Errorf("edit weight after confirm error = %v, want ErrFieldNotEditable", err)
	}
	if _, err := svc.UpdateUserOrderFields(context.Background(), 1, order.ID, map[string]interface{}{
		"recipientPhone": "0900000009",
	}); err != nil {
		t.Errorf("edit recipient phone after confirm error = %v, want nil", err)
	}

	// 寄件人身份任何状态都不可改
	if _, err := svc.UpdateUserOrderFields(context.Background(), 1, order.ID, map[string]interface{}{
		"senderName": "Someone Else",
	}); !errors.Is(err, errorx.ErrFieldNotEditable) {
		t.Errorf("edit sender name error = %v, want ErrFieldNotEditable", err)
	}
}

func TestShipperFlowRequiresAssignment(t *testing.T) {
	svc, repo, _ := newTestService(t)

	order, _ := svc.CreateOrder(context.Background(), 1, etorder.CreatorUser, validInput())
	svc.PublishOrder(context.Background(), 1, order.ID)
	repo.orders[order.ID].Status = etorder.StatusReadyForPickup

	// 未指派时快递员不能揽收
	if _, err := svc.StartPickup(context.Background(), 7, order.ID); !errors.Is(err, errorx.ErrNotAssignee) {
		t.Errorf("StartPickup() without assignment error = %v, want ErrNotAssignee", err)
	}

	if _, err := svc.AssignShipper(context.Background(), order.ID, 7); err != nil {
		t.Fatalf("AssignShipper() error = %v", err)
	}

	if _, err := svc.StartPickup(context.Background(), 7, order.ID); err != nil {
		t.Fatalf("StartPickup() error = %v", err)
	}
	if got := repo.orders[order.ID].Status; got != etorder.StatusPickingUp {
		t.Errorf("status = %s, want %s", got, etorder.StatusPickingUp)
	}

	// 其他快递员不能接手
	if _, err := svc.FinishPickup(context.Background(), 9, order.ID); !errors.Is(err, errorx.ErrNotAssignee) {
		t.Errorf("FinishPickup() by stranger error = %v, want ErrNotAssignee", err)
	}
}

func TestFinishDeliveryMarksCODPaid(t *testing.T) {
	svc, repo, _ := newTestService(t)

	order, _ := svc.CreateOrder(context.Background(), 1, etorder.CreatorUser, validInput())
	svc.PublishOrder(context.Background(), 1, order.ID)
	repo.orders[order.ID].Status = etorder.StatusDelivering
	repo.orders[order.ID].ShipperID = 7

	done, err := svc.FinishDelivery(context.Background(), 7, order.ID)
	if err != nil {
		t.Fatalf("FinishDelivery() error = %v", err)
	}
	if done.Status != etorder.StatusDelivered {
		t.Errorf("status = %s, want %s", done.Status, etorder.StatusDelivered)
	}
	if done.PaymentStatus != etorder.PaymentPaid {
		t.Errorf("payment status = %s, want %s", done.PaymentStatus, etorder.PaymentPaid)
	}
}

func TestCancelRules(t *testing.T) {
	svc, repo, _ := newTestService(t)

	order, _ := svc.CreateOrder(context.Background(), 1, etorder.CreatorUser, validInput())

	// 草稿不可取消，只可删除
	if _, err := svc.CancelUserOrder(context.Background(), 1, order.ID); !errors.Is(err, errorx.ErrActionNotAllowed) {
		t.Errorf("cancel draft error = %v, want ErrActionNotAllowed", err)
	}

	svc.PublishOrder(context.Background(), 1, order.ID)
	if _, err := svc.CancelUserOrder(context.Background(), 1, order.ID); err != nil {
		t.Fatalf("CancelUserOrder() error = %v", err)
	}
	if got := repo.orders[order.ID].Status; got != etorder.StatusCancelled {
		t.Errorf("status = %s, want %s", got, etorder.StatusCancelled)
	}

	// 揽收中用户不能取消，网点可以
	other, _ := svc.CreateOrder(context.Background(), 1, etorder.CreatorUser, validInput())
	svc.PublishOrder(context.Background(), 1, other.ID)
	repo.orders[other.ID].Status = etorder.StatusPickingUp

	if _, err := svc.CancelUserOrder(context.Background(), 1, other.ID); !errors.Is(err, errorx.ErrActionNotAllowed) {
		t.Errorf("user cancel while picking up error = %v, want ErrActionNotAllowed", err)
	}
	if _, err := svc.ManagerCancelOrder(context.Background(), other.ID); err != nil {
		t.Fatalf("ManagerCancelOrder() error = %v", err)
	}
}

func TestDeleteOnlyDraft(t *testing.T) {
	svc, repo, _ := newTestService(t)

	order, _ := svc.CreateOrder(context.Background(), 1, etorder.CreatorUser, validInput())
	svc.PublishOrder(context.Background(), 1, order.ID)

	if err := svc.DeleteUserOrder(context.Background(), 1, order.ID); !errors.Is(err, errorx.ErrActionNotAllowed) {
		t.Errorf("delete published order error = %v, want ErrActionNotAllowed", err)
	}

	draft, _ := svc.CreateOrder(context.Background(), 1, etorder.CreatorUser, validInput())
	if err := svc.DeleteUserOrder(context.Background(), 1, draft.ID); err != nil {
		t.Fatalf("DeleteUserOrder() error = %v", err)
	}
	if _, ok := repo.orders[draft.ID]; ok {
		t.Error("draft should be gone after delete")
	}
}

func TestGetOrderNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	if _, err := svc.GetOrder(context.Background(), "no-such-id"); !errors.Is(err, errorx.ErrOrderNotFound) {
		t.Errorf("GetOrder() error = %v, want ErrOrderNotFound", err)
	}
	if _, err := svc.TrackOrder(context.Background(), "LG0000000000"); !errors.Is(err, errorx.ErrOrderNotFound) {
		t.Errorf("TrackOrder() error = %v, want ErrOrderNotFound", err)
	}
}
