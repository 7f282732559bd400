// Package policy 收敛订单/工单的字段编辑规则与操作许可判定。
// 规则以数据表形式维护，服务端在每次写操作前查表裁决，
// 前端仅用同一份语义决定控件是否可用。
package policy

import (
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
)

// FieldRule 字段编辑规则
// Editable 与 NotEditable 二选一：
//   - Editable 非 nil：仅当状态在列表内可编辑（空列表表示任何状态都不可编辑）
//   - NotEditable 非 nil：仅当状态不在列表内可编辑
//
// 两者同时配置视为表定义错误，由测试兜底
type FieldRule struct {
	Editable    []etorder.Status
	NotEditable []etorder.Status
}

// allows 判定规则在给定状态下是否允许编辑
func (r FieldRule) allows(status etorder.Status) bool {
	if r.Editable != nil {
		return in(status, r.Editable)
	}
	if r.NotEditable != nil {
		return !in(status, r.NotEditable)
	}
	// 未配置任何列表，保守拒绝
	return false
}

func in(s etorder.Status, set []etorder.Status) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// userFinalStatuses 用户视角的终局状态：订单进入后用户不再能改动收件信息
var userFinalStatuses = []etorder.Status{
	etorder.StatusDelivered,
	etorder.StatusFailedDelivery,
	etorder.StatusCancelled,
	etorder.StatusReturned,
}

// preShipStatuses 揽收前的状态集合
var preShipStatuses = []etorder.Status{
	etorder.StatusDraft,
	etorder.StatusPending,
}

// officeEditableStatuses 网点单在途前可整单修改的状态集合
var officeEditableStatuses = []etorder.Status{
	etorder.StatusDraft,
	etorder.StatusPending,
	etorder.StatusConfirmed,
	etorder.StatusReadyForPickup,
	etorder.StatusPickingUp,
	etorder.StatusPickedUp,
	etorder.StatusAtOriginOffice,
}

// officeSenderStatuses 网点单寄件人信息可修改的状态集合
var officeSenderStatuses = []etorder.Status{
	etorder.StatusDraft,
	etorder.StatusPending,
	etorder.StatusConfirmed,
	etorder.StatusReadyForPickup,
	etorder.StatusAtOriginOffice,
}

// userOrderFieldRules 用户编辑自建订单的字段规则
// 寄件人身份在任何状态下不可改（空允许列表），创建后即定死
var userOrderFieldRules = map[string]FieldRule{
	"senderName":  {Editable: []etorder.Status{}},
	"senderPhone": {Editable: []etorder.Status{}},

	"senderCityCode":      {Editable: []etorder.Status{etorder.StatusDraft}},
	"senderWardCode":      {Editable: []etorder.Status{etorder.StatusDraft}},
	"senderAddressDetail": {Editable: []etorder.Status{etorder.StatusDraft}},

	"recipientName":          {NotEditable: userFinalStatuses},
	"recipientPhone":         {NotEditable: userFinalStatuses},
	"recipientCityCode":      {NotEditable: userFinalStatuses},
	"recipientWardCode":      {NotEditable: userFinalStatuses},
	"recipientAddressDetail": {NotEditable: userFinalStatuses},

	"weight":      {Editable: preShipStatuses},
	"serviceType": {Editable: preShipStatuses},
	"cod":         {Editable: preShipStatuses},
	"orderValue":  {Editable: preShipStatuses},
	"payer":       {Editable: preShipStatuses},
	"pickupType":  {Editable: preShipStatuses},

	"notes": {NotEditable: []etorder.Status{
		etorder.StatusDelivered,
		etorder.StatusCancelled,
		etorder.StatusReturned,
	}},
}

// managerUserOrderFieldRules 经理编辑用户自建订单的字段规则
// 刻意窄于网点单：用户单的寄件人信息经理不可触碰（查无此键即拒绝）
var managerUserOrderFieldRules = map[string]FieldRule{
	"weight":      {Editable: []etorder.Status{etorder.StatusAtOriginOffice}},
	"serviceType": {Editable: []etorder.Status{etorder.StatusAtOriginOffice}},
	"totalFee":    {Editable: []etorder.Status{etorder.StatusAtOriginOffice}},

	"recipientPhone": {Editable: []etorder.Status{etorder.StatusAtDestOffice}},

	"notes": {NotEditable: []etorder.Status{
		etorder.StatusDelivered,
		etorder.StatusCancelled,
		etorder.StatusReturned,
	}},
}

// managerOfficeOrderFieldRules 经理编辑网点单（经理/管理员代客创建）的字段规则
// senderCityCode 永不可编辑而 senderWardCode 可编辑，为既有对账口径，调整前需与业务确认
var managerOfficeOrderFieldRules = map[string]FieldRule{
	"senderName":          {Editable: officeSenderStatuses},
	"senderPhone":         {Editable: officeSenderStatuses},
	"senderCityCode":      {Editable: []etorder.Status{}},
	"senderWardCode":      {Editable: officeSenderStatuses},
	"senderAddressDetail": {Editable: officeSenderStatuses},

	"recipientName": {NotEditable: []etorder.Status{
		etorder.StatusDelivering,
		etorder.StatusDelivered,
		etorder.StatusCancelled,
		etorder.StatusReturned,
	}},
	"recipientPhone": {NotEditable: []etorder.Status{
		etorder.StatusDelivering,
		etorder.StatusDelivered,
		etorder.StatusCancelled,
		etorder.StatusReturned,
	}},
	"recipientCityCode": {NotEditable: []etorder.Status{
		etorder.StatusDelivering,
		etorder.StatusDelivered,
		etorder.StatusCancelled,
		etorder.StatusReturned,
	}},
	"recipientWardCode": {NotEditable: []etorder.Status{
		etorder.StatusDelivering,
		etorder.StatusDelivered,
		etorder.StatusCancelled,
		etorder.StatusReturned,
	}},
	"recipientAddressDetail": {NotEditable: []etorder.Status{
		etorder.StatusDelivering,
		etorder.StatusDelivered,
		etorder.StatusCancelled,
		etorder.StatusReturned,
	}},

	"weight":         {Editable: officeEditableStatuses},
	"serviceType":    {Editable: officeEditableStatuses},
	"cod":            {Editable: officeEditableStatuses},
	"orderValue":     {Editable: officeEditableStatuses},
	"payer":          {Editable: officeEditableStatuses},
	"pickupType":     {Editable: officeEditableStatuses},
	"discountAmount": {Editable: officeEditableStatuses},

	"totalFee": {Editable: []etorder.Status{etorder.StatusAtOriginOffice}},

	"notes": {NotEditable: []etorder.Status{etorder.StatusCancelled}},
}

// adminOrderFieldRules 管理员的字段规则（跨网点纠错入口，终态不可改）
var adminOrderFieldRules = map[string]FieldRule{
	"cod":            {NotEditable: userFinalStatuses},
	"totalFee":       {NotEditable: userFinalStatuses},
	"discountAmount": {NotEditable: userFinalStatuses},
	"paymentStatus":  {NotEditable: []etorder.Status{etorder.StatusCancelled}},
	"notes":          {NotEditable: []etorder.Status{}},
}

// lookup 查表判定，未知字段一律拒绝
func lookup(table map[string]FieldRule, field string, status etorder.Status) bool {
	rule, ok := table[field]
	if !ok {
		return false
	}
	return rule.allows(status)
}

// CanEditUserOrderField 用户是否可编辑自建订单的某字段
func CanEditUserOrderField(field string, status etorder.Status) bool {
	return lookup(userOrderFieldRules, field, status)
}

// CanManagerEditOrderField 经理是否可编辑订单的某字段
// 按订单创建来源分表：用户自建单与网点单的可编辑面不同
func CanManagerEditOrderField(field string, status etorder.Status, creator etorder.CreatorType) bool {
	if creator.IsOffice() {
		return lookup(managerOfficeOrderFieldRules, field, status)
	}
	return lookup(managerUserOrderFieldRules, field, status)
}

// CanAdminEditOrderField 管理员是否可编辑订单的某字段
func CanAdminEditOrderField(field string, status etorder.Status) bool {
	return lookup(adminOrderFieldRules, field, status)
}
