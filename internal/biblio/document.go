package biblio

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/ukripo/sisindex/internal/objtype"
)

// FlexInt decodes from either a JSON number or a numeric string; legacy
// exports are inconsistent about status codes.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(raw []byte) error {
	raw = bytes.Trim(raw, `"`)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*f = 0
		return nil
	}
	parsed, err := strconv.Atoi(string(raw))
	if err != nil {
		return err
	}
	*f = FlexInt(parsed)
	return nil
}

func (f FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(f))
}

// Document carries the application metadata the export attaches next to
// the bibliographic sections.
type Document struct {
	IDObjType                   objtype.ID `json:"idObjType,omitempty"`
	FilesPath                   string     `json:"filesPath,omitempty"`
	IsLimited                   bool       `json:"is_limited,omitempty"`
	RegistrationStatus          string     `json:"RegistrationStatus,omitempty"`
	MarkCurrentStatusCodeType   FlexInt    `json:"MarkCurrentStatusCodeType,omitempty"`
	DesignCurrentStatusCodeType FlexInt    `json:"DesignCurrentStatusCodeType,omitempty"`
}
