package svorder

import (
	"fmt"
	"time"

	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/domains/entity/etorder"
	"github.com/KieuLinh0701/Logistics-System-sub001/internal/app/pkg/errorx"
)

// applyOrderField 按字段名套用新值
// 字段名集合与编辑规则表一致，未知字段拒绝
func applyOrderField(o *etorder.Order, field string, value interface{}) error {
	switch field {
	case "senderName":
		return setString(&o.Sender.Name, field, value, o)
	case "senderPhone":
		return setString(&o.Sender.Phone, field, value, o)
	case "senderCityCode":
		return setString(&o.Sender.Address.CityCode, field, value, o)
	case "senderWardCode":
		return setString(&o.Sender.Address.WardCode, field, value, o)
	case "senderAddressDetail":
		return setString(&o.Sender.Address.Detail, field, value, o)
	case "recipientName":
		return setString(&o.Recipient.Name, field, value, o)
	case "recipientPhone":
		return setString(&o.Recipient.Phone, field, value, o)
	case "recipientCityCode":
		return setString(&o.Recipient.Address.CityCode, field, value, o)
	case "recipientWardCode":
		return setString(&o.Recipient.Address.WardCode, field, value, o)
	case "recipientAddressDetail":
		return setString(&o.Recipient.Address.Detail, field, value, o)
	case "weight":
		return setInt64(&o.WeightGram, field, value, o)
	case "cod":
		return setInt64(&o.COD, field, value, o)
	case "orderValue":
		return setInt64(&o.OrderValue, field, value, o)
	case "totalFee":
		return setInt64(&o.TotalFee, field, value, o)
	case "discountAmount":
		return setInt64(&o.DiscountAmount, field, value, o)
	case "notes":
		return setString(&o.Notes, field, value, o)
	case "serviceType":
		str, err := asString(field, value)
		if err != nil {
			return err
		}
		o.ServiceType = etorder.ServiceType(str)
	case "pickupType":
		str, err := asString(field, value)
		if err != nil {
			return err
		}
		o.PickupType = etorder.PickupType(str)
	case "payer":
		str, err := asString(field, value)
		if err != nil {
			return err
		}
		o.Payer = etorder.Payer(str)
	case "paymentStatus":
		str, err := asString(field, value)
		if err != nil {
			return err
		}
		o.PaymentStatus = etorder.PaymentStatus(str)
	default:
		return fmt.Errorf("%w: %s", errorx.ErrFieldNotEditable, field)
	}
	o.UpdatedAt = time.Now()
	return nil
}

func setString(dst *string, field string, value interface{}, o *etorder.Order) error {
	str, err := asString(field, value)
	if err != nil {
		return err
	}
	*dst = str
	o.UpdatedAt = time.Now()
	return nil
}

func setInt64(dst *int64, field string, value interface{}, o *etorder.Order) error {
	n, err := asInt64(field, value)
	if err != nil {
		return err
	}
	*dst = n
	o.UpdatedAt = time.Now()
	return nil
}

func asString(field string, value interface{}) (string, error) {
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %s expects a string value", field)
	}
	return str, nil
}

// asInt64 JSON 数值统一解码为 float64，这里收敛到 int64
func asInt64(field string, value interface{}) (int64, error) {
	switch v := value.(type) {
	case float64:
		return int64(v), nil
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	default:
		return 0, fmt.Errorf("field %s expects a numeric value", field)
	}
}
