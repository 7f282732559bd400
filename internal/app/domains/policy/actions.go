package policy

import (
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etrequest"
)

// 操作许可：每个操作一个独立的状态集合成员判定。
// 集合只描述"按钮是否可用"的口径，状态流转合法性由 etorder.CanTransition 另行把关。

// userCancelableStatuses 用户可自助取消的状态
var userCancelableStatuses = []etorder.Status{
	etorder.StatusPending,
	etorder.StatusConfirmed,
	etorder.StatusReadyForPickup,
}

// managerCancelableStatuses 经理可取消的状态（覆盖履约中段）
var managerCancelableStatuses = []etorder.Status{
	etorder.StatusPending,
	etorder.StatusConfirmed,
	etorder.StatusReadyForPickup,
	etorder.StatusPickingUp,
	etorder.StatusPickedUp,
	etorder.StatusAtOriginOffice,
	etorder.StatusInTransit,
	etorder.StatusAtDestOffice,
	etorder.StatusDelivering,
}

// userEditableStatuses 用户可进入编辑表单的状态
var userEditableStatuses = []etorder.Status{
	etorder.StatusDraft,
	etorder.StatusPending,
	etorder.StatusConfirmed,
}

// printableExcluded 不可打印面单的状态
var printableExcluded = []etorder.Status{
	etorder.StatusDraft,
	etorder.StatusPending,
	etorder.StatusCancelled,
}

// CanCancelUserOrder 用户是否可取消订单
func CanCancelUserOrder(status etorder.Status) bool {
	return in(status, userCancelableStatuses)
}

// CanDeleteUserOrder 用户是否可删除订单（仅草稿）
func CanDeleteUserOrder(status etorder.Status) bool {
	return status == etorder.StatusDraft
}

// CanPublishUserOrder 用户是否可发布订单（仅草稿）
func CanPublishUserOrder(status etorder.Status) bool {
	return status == etorder.StatusDraft
}

// CanEditUserOrder 用户是否可进入编辑表单
func CanEditUserOrder(status etorder.Status) bool {
	return in(status, userEditableStatuses)
}

// CanManagerCancelOrder 经理是否可取消订单
func CanManagerCancelOrder(status etorder.Status) bool {
	return in(status, managerCancelableStatuses)
}

// CanConfirmOrder 经理是否可确认订单
func CanConfirmOrder(status etorder.Status) bool {
	return status == etorder.StatusPending
}

// CanMarkReady 经理是否可标记待揽收
func CanMarkReady(status etorder.Status) bool {
	return status == etorder.StatusConfirmed
}

// CanPrintOrder 是否可打印面单（确认后、未取消）
func CanPrintOrder(status etorder.Status) bool {
	return status.Valid() && !in(status, printableExcluded)
}

// CanStartPickup 快递员是否可开始揽收
func CanStartPickup(status etorder.Status) bool {
	return status == etorder.StatusReadyForPickup
}

// CanFinishPickup 快递员是否可完成揽收
func CanFinishPickup(status etorder.Status) bool {
	return status == etorder.StatusPickingUp
}

// CanStartDelivery 快递员是否可开始派送
func CanStartDelivery(status etorder.Status) bool {
	return status == etorder.StatusAtDestOffice
}

// CanFinishDelivery 快递员是否可签收
func CanFinishDelivery(status etorder.Status) bool {
	return status == etorder.StatusDelivering
}

// CanFailDelivery 快递员是否可上报失败
func CanFailDelivery(status etorder.Status) bool {
	return status == etorder.StatusPickingUp || status == etorder.StatusDelivering
}

// CanRetryDelivery 是否可对失败件再次派送
func CanRetryDelivery(status etorder.Status) bool {
	return status == etorder.StatusFailedDelivery
}

// CanReturnOrder 是否可对失败件发起退回
func CanReturnOrder(status etorder.Status) bool {
	return status == etorder.StatusFailedDelivery
}

// CanReceiveAtOrigin 司机是否可入始发网点
func CanReceiveAtOrigin(status etorder.Status) bool {
	return status == etorder.StatusPickedUp
}

// CanDepartOrigin 司机是否可发运
func CanDepartOrigin(status etorder.Status) bool {
	return status == etorder.StatusAtOriginOffice
}

// CanArriveDest 司机是否可入目的网点
func CanArriveDest(status etorder.Status) bool {
	return status == etorder.StatusInTransit
}

// CanCancelRequest 发起人是否可取消工单
func CanCancelRequest(status etrequest.Status) bool {
	return status == etrequest.StatusPending
}

// CanTakeRequest 经理是否可受理工单
func CanTakeRequest(status etrequest.Status) bool {
	return status == etrequest.StatusPending
}

// CanResolveRequest 经理是否可解决/驳回工单
func CanResolveRequest(status etrequest.Status) bool {
	return status == etrequest.StatusProcessing
}
