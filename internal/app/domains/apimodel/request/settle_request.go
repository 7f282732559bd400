package request

// ReconcileRequest 触发结算对账请求
// Before 为空时取当前时间
type ReconcileRequest struct {
	Before string `json:"before" example:"2026-08-30T00:00:00Z"`
}
