package aobject

import (
	"bytes"
	"encoding/json"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
)

func (r *Property) UnmarshalJSON(bs []byte) error {
	raw := struct {
		Name  string          `json:"name"`
		Type  string          `json:"type"`
		Index *int            `json:"index"`
		Value json.RawMessage `json:"value"`
	}{}
	if err := json.Unmarshal(bs, &raw); err != nil {
		return errors.Wrap(err, "aobject.Property.UnmarshalJSON error")
	}
	value, err := DecodeValue(raw.Value)
	if err != nil {
		return errors.Wrapf(err, `aobject.Property.UnmarshalJSON error decoding value of "%s"`, raw.Name)
	}

	r.Name = raw.Name
	r.Type = raw.Type
	r.Index = raw.Index
	r.Value = value
	return nil
}

// DecodeValue decodes a property value. Objects become *orderedmap.OrderedMap
// so nested struct properties keep the key order of the save file.
func DecodeValue(bs json.RawMessage) (any, error) {
	trimmed := bytes.TrimSpace(bs)
	if len(trimmed) == 0 {
		return nil, nil
	}

	switch trimmed[0] {
	case '{':
		lhm := orderedmap.New()
		if err := json.Unmarshal(trimmed, lhm); err != nil {
			return nil, errors.Wrap(err, "aobject.DecodeValue error decoding object")
		}
		return lhm, nil
	case '[':
		items := make([]json.RawMessage, 0)
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, errors.Wrap(err, "aobject.DecodeValue error decoding array")
		}
		values := make([]any, 0, len(items))
		for _, item := range items {
			value, err := DecodeValue(item)
			if err != nil {
				return nil, err
			}
			values = append(values, value)
		}
		return values, nil
	default:
		var value any
		if err := json.Unmarshal(trimmed, &value); err != nil {
			return nil, errors.Wrap(err, "aobject.DecodeValue error decoding scalar")
		}
		return value, nil
	}
}
