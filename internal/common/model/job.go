package model

// 任务类型（HandlerMap 路由键）
const (
	ActionSettlementReconcile = "settlement_reconcile"
	ActionOrderEventFanout    = "order_event_fanout"
)

// Job 标准 Job 结构
// apiserver 发布、worker 消费的统一消息格式
type Job struct {
	Payload *JobPayload `json:"payload"`
}

// JobPayload Job 负载
type JobPayload struct {
	Data *JobPayloadData `json:"data"`
}

// JobPayloadData Job 数据
type JobPayloadData struct {
	// 元信息
	RequestID  string `json:"request_id"`  // 请求 ID（TraceID）
	ActionType string `json:"action_type"` // 动作类型（路由键）
	ID         string `json:"id"`          // 业务 ID

	// 业务数据
	Data interface{} `json:"data"`
}

// Meta 元数据
type Meta struct {
	RequestID  string // 请求 ID
	ActionType string // 动作类型
	ID         string // 业务 ID
}

// OrderEventData 订单事件业务数据（order_event_fanout）
type OrderEventData struct {
	OrderID    string  `json:"order_id"`
	TrackingNo string  `json:"tracking_no"`
	EventType  string  `json:"event_type"` // 状态码，如 DELIVERED
	PartyIDs   []int64 `json:"party_ids"`  // 通知目标账号
}

// SettlementReconcileData 结算对账业务数据（settlement_reconcile）
type SettlementReconcileData struct {
	Before string `json:"before"` // RFC3339，统计该时间点之前签收的订单
}
