package models

import (
	"bytes"

	"github.com/goccy/go-json"
)

// FlexString accepts both quoted and bare JSON scalars. The backend is not
// consistent about quoting ids and decimal amounts.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		*f = ""
	case trimmed[0] == '"':
		var value string
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return err
		}
		*f = FlexString(value)
	default:
		*f = FlexString(trimmed)
	}
	return nil
}

func (f FlexString) String() string {
	return string(f)
}
