package policy

import (
	"testing"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
)

// allTables 全部字段规则表（表名 → 表）
var allTables = map[string]map[string]FieldRule{
	"user":           userOrderFieldRules,
	"manager_user":   managerUserOrderFieldRules,
	"manager_office": managerOfficeOrderFieldRules,
	"admin":          adminOrderFieldRules,
}

// TestFieldRulesExclusive 每个字段规则只能配置允许列表或禁止列表之一
func TestFieldRulesExclusive(t *testing.T) {
	for tableName, table := range allTables {
		for field, rule := range table {
			if rule.Editable != nil && rule.NotEditable != nil {
				t.Errorf("table %s field %s: both Editable and NotEditable configured", tableName, field)
			}
			if rule.Editable == nil && rule.NotEditable == nil {
				t.Errorf("table %s field %s: no list configured", tableName, field)
			}
		}
	}
}

// TestFieldLookupTotal 全字段 × 全状态查表必须返回确定结果且与配置一致
func TestFieldLookupTotal(t *testing.T) {
	for tableName, table := range allTables {
		for field, rule := range table {
			for _, status := range etorder.AllStatuses {
				got := lookup(table, field, status)
				var want bool
				if rule.Editable != nil {
					want = in(status, rule.Editable)
				} else {
					want = !in(status, rule.NotEditable)
				}
				if got != want {
					t.Errorf("table %s field %s status %s: got %v, want %v", tableName, field, status, got, want)
				}
			}
		}
	}
}

// TestEmptyAllowListNeverEditable 空允许列表在任何状态下都不可编辑
func TestEmptyAllowListNeverEditable(t *testing.T) {
	for _, status := range etorder.AllStatuses {
		if CanEditUserOrderField("senderName", status) {
			t.Errorf("senderName should never be editable by user, status=%s", status)
		}
		if CanEditUserOrderField("senderPhone", status) {
			t.Errorf("senderPhone should never be editable by user, status=%s", status)
		}
		if CanManagerEditOrderField("senderCityCode", status, etorder.CreatorManager) {
			t.Errorf("senderCityCode should never be editable on office orders, status=%s", status)
		}
	}
}

// TestUnknownFieldFailClosed 未知字段一律不可编辑且不 panic
func TestUnknownFieldFailClosed(t *testing.T) {
	for _, status := range etorder.AllStatuses {
		if CanEditUserOrderField("noSuchField", status) {
			t.Errorf("unknown field should not be editable, status=%s", status)
		}
		if CanManagerEditOrderField("noSuchField", status, etorder.CreatorUser) {
			t.Errorf("unknown field should not be editable (manager), status=%s", status)
		}
		if CanAdminEditOrderField("noSuchField", status) {
			t.Errorf("unknown field should not be editable (admin), status=%s", status)
		}
	}
	// 未知状态同样拒绝
	if CanEditUserOrderField("noSuchField", etorder.Status("NO_SUCH_STATUS")) {
		t.Error("unknown field + unknown status should not be editable")
	}
}

// TestUserRecipientNameLifecycle 用户单收件人姓名：草稿可编辑，取消后不可编辑
func TestUserRecipientNameLifecycle(t *testing.T) {
	if !CanEditUserOrderField("recipientName", etorder.StatusDraft) {
		t.Error("recipientName should be editable in DRAFT")
	}
	if CanEditUserOrderField("recipientName", etorder.StatusCancelled) {
		t.Error("recipientName should not be editable in CANCELLED")
	}
}

// TestManagerCreatorTypeSplit 经理规则按订单来源分表
func TestManagerCreatorTypeSplit(t *testing.T) {
	// 网点单到达始发网点后寄件人姓名仍可修改
	if !CanManagerEditOrderField("senderName", etorder.StatusAtOriginOffice, etorder.CreatorManager) {
		t.Error("senderName should be editable on office order at AT_ORIGIN_OFFICE")
	}
	if !CanManagerEditOrderField("senderName", etorder.StatusAtOriginOffice, etorder.CreatorAdmin) {
		t.Error("senderName should be editable on admin-created order at AT_ORIGIN_OFFICE")
	}
	// 用户自建单的寄件人信息经理不可触碰
	if CanManagerEditOrderField("senderName", etorder.StatusAtOriginOffice, etorder.CreatorUser) {
		t.Error("senderName should not be editable on user-created order")
	}

	// 用户单窄表中存在的字段
	if !CanManagerEditOrderField("weight", etorder.StatusAtOriginOffice, etorder.CreatorUser) {
		t.Error("weight should be editable on user-created order at AT_ORIGIN_OFFICE")
	}
	if CanManagerEditOrderField("weight", etorder.StatusInTransit, etorder.CreatorUser) {
		t.Error("weight should not be editable on user-created order in IN_TRANSIT")
	}
}
