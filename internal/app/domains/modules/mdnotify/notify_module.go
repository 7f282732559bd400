package mdnotify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/mq/lmstfy"
	redisx "github.com/KieuLinh0701/Logistics-System-sub001/internal/app/infra/persistence/redis"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/common/model"
)

// NotifyModule 通知模块
// 职责：
// 1. 组装 Lmstfy 和 Redis 客户端
// 2. 包含通知相关的业务逻辑（消息格式构造、频道命名规则）
type NotifyModule struct {
	lmstfyClient *lmstfy.Client
	redisClient  *redisx.PubSubClient
	queueName    string
}

// NewNotifyModule 创建通知模块实例
func NewNotifyModule(lmstfyClient *lmstfy.Client, redisClient *redisx.PubSubClient, queueName string) *NotifyModule {
	return &NotifyModule{
		lmstfyClient: lmstfyClient,
		redisClient:  redisClient,
		queueName:    queueName,
	}
}

// EnqueueOrderEventFanout 发布订单事件扩散任务到队列
// 扩散到各参与方的通知频道由 worker 执行，apiserver 只负责入队
func (m *NotifyModule) EnqueueOrderEventFanout(ctx context.Context, orderID, trackingNo, eventType string, partyIDs []int64) error {
	job := model.Job{
		Payload: &model.JobPayload{
			Data: &model.JobPayloadData{
				RequestID:  uuid.New().String(),
				ActionType: model.ActionOrderEventFanout,
				ID:         orderID,
				Data: model.OrderEventData{
					OrderID:    orderID,
					TrackingNo: trackingNo,
					EventType:  eventType,
					PartyIDs:   partyIDs,
				},
			},
		},
	}
	return m.lmstfyClient.Publish(ctx, m.queueName, job)
}

// EnqueueSettlementReconcile 发布结算对账任务到队列
func (m *NotifyModule) EnqueueSettlementReconcile(ctx context.Context, before time.Time) error {
	job := model.Job{
		Payload: &model.JobPayload{
			Data: &model.JobPayloadData{
				RequestID:  uuid.New().String(),
				ActionType: model.ActionSettlementReconcile,
				ID:         uuid.New().String(),
				Data: model.SettlementReconcileData{
					Before: before.Format(time.RFC3339),
				},
			},
		},
	}
	return m.lmstfyClient.Publish(ctx, m.queueName, job)
}

// PublishNotification 直接推送通知到账号频道（同步场景）
func (m *NotifyModule) PublishNotification(ctx context.Context, accountID int64, n model.OrderNotification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return m.redisClient.Publish(ctx, model.NotifyChannel(accountID), string(payload))
}

// WaitForNotification 等待账号频道的下一条通知（长轮询）
func (m *NotifyModule) WaitForNotification(ctx context.Context, accountID int64, timeout time.Duration) (*model.OrderNotification, error) {
	payload, err := m.redisClient.Subscribe(ctx, model.NotifyChannel(accountID), timeout)
	if err != nil {
		return nil, err
	}

	var n model.OrderNotification
	if err := json.Unmarshal([]byte(payload), &n); err != nil {
		return nil, err
	}
	return &n, nil
}
