package model

import "fmt"

// OrderNotification 订单事件通知（Redis 频道消息）
type OrderNotification struct {
	Type       string `json:"type"`       // 事件类型（订单状态码）
	TrackingNo string `json:"trackingNo"` // 运单号
}

// NotifyChannel 按账号约定的通知频道名
func NotifyChannel(accountID int64) string {
	return fmt.Sprintf("notify:user:%d", accountID)
}
