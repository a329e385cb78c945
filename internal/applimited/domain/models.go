package domain

import (
	"encoding/json"

	"github.com/ukripo/sisindex/internal/objtype"
	"gorm.io/datatypes"
)

// AppLimited marks an application as limited for publication. Settings
// holds per-field visibility overrides; an absent or empty settings blob
// means every restrictable field falls back to its policy default.
type AppLimited struct {
	ID        int64          `gorm:"primaryKey;column:id" json:"id"`
	AppNumber string         `gorm:"column:app_number;index" json:"app_number"`
	ObjTypeID objtype.ID     `gorm:"column:obj_type_id" json:"obj_type_id"`
	Cancelled int            `gorm:"column:cancelled" json:"cancelled"`
	Settings  datatypes.JSON `gorm:"column:settings" json:"settings,omitempty"`
}

func (AppLimited) TableName() string { return "app_limited" }

// FieldSetting is a single visibility override: a plain boolean for most
// fields, or a nested map for sections that filter sub-fields
// (LicenseeDetails/LicensorDetails carry Address/Name switches).
type FieldSetting struct {
	Visible  bool
	Nested   map[string]bool
	IsNested bool
}

// AllowList is the parsed form of the settings JSON.
type AllowList map[string]FieldSetting

// ParseAllowList decodes the raw settings blob. A nil or empty blob yields
// an empty allow-list, which leaves every field at its policy default.
func ParseAllowList(raw datatypes.JSON) (AllowList, error) {
	out := AllowList{}
	if len(raw) == 0 {
		return out, nil
	}

	var settings map[string]json.RawMessage
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, err
	}

	for field, value := range settings {
		var visible bool
		if err := json.Unmarshal(value, &visible); err == nil {
			out[field] = FieldSetting{Visible: visible}
			continue
		}
		var nested map[string]bool
		if err := json.Unmarshal(value, &nested); err != nil {
			return nil, err
		}
		out[field] = FieldSetting{Nested: nested, IsNested: true}
	}
	return out, nil
}

// Visible resolves a field against the allow-list, falling back to the
// given policy default when no override is present.
func (l AllowList) Visible(field string, def bool) bool {
	setting, ok := l[field]
	if !ok {
		return def
	}
	if setting.IsNested {
		// A nested override keeps the section; sub-fields are resolved
		// individually via SubVisible.
		return true
	}
	return setting.Visible
}

// SubVisible resolves a nested sub-field (e.g. LicenseeDetails → Address).
func (l AllowList) SubVisible(field, sub string, def bool) bool {
	setting, ok := l[field]
	if !ok || !setting.IsNested {
		return l.Visible(field, def)
	}
	visible, ok := setting.Nested[sub]
	if !ok {
		return def
	}
	return visible
}
