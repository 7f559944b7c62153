package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// StringList stores a []string as a jsonb column.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}

	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal string list")
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil

		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported type for StringList: %T", src)
	}

	return errors.Wrap(json.Unmarshal(data, (*[]string)(l)), "failed to unmarshal string list")
}

// GormDataType tells GORM which column type to use.
func (StringList) GormDataType() string {
	return "jsonb"
}

// ShippingAddressJSON stores the structured shipping address as a jsonb column.
type ShippingAddressJSON struct {
	FullName string `json:"full_name"`
	Street   string `json:"street"`
	City     string `json:"city"`
	PostCode string `json:"post_code"`
	Country  string `json:"country"`
	Phone    string `json:"phone,omitempty"`
}

// Value implements driver.Valuer.
func (a ShippingAddressJSON) Value() (driver.Value, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal shipping address")
	}

	return string(data), nil
}

// Scan implements sql.Scanner.
func (a *ShippingAddressJSON) Scan(src any) error {
	if src == nil {
		*a = ShippingAddressJSON{}

		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported type for ShippingAddressJSON: %T", src)
	}

	return errors.Wrap(json.Unmarshal(data, a), "failed to unmarshal shipping address")
}

// GormDataType tells GORM which column type to use.
func (ShippingAddressJSON) GormDataType() string {
	return "jsonb"
}
