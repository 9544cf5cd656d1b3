package aobject

import (
	"encoding/json"
	"strconv"

	"github.com/iancoleman/orderedmap"
)

// Find returns the first property named name. Later properties with the
// same name are not visible.
func Find(properties []Property, name string) (Property, bool) {
	for _, property := range properties {
		if property.Name == name {
			return property, true
		}
	}
	return Property{}, false
}

// FindAt returns the first property named name on the given stat axis.
func FindAt(properties []Property, name string, index int) (Property, bool) {
	for _, property := range properties {
		if property.Name == name && property.AxisIndex() == index {
			return property, true
		}
	}
	return Property{}, false
}

func (r Property) AxisIndex() int {
	if r.Index == nil {
		return 0
	}
	return *r.Index
}

func (r Property) Bool() (bool, bool) {
	value, ok := r.Value.(bool)
	return value, ok
}

func (r Property) Float() (float64, bool) {
	switch value := r.Value.(type) {
	case float64:
		return value, true
	case bool:
		if value {
			return 1, true
		}
		return 0, true
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		return parsed, err == nil
	}
	return 0, false
}

func (r Property) Int() (int64, bool) {
	value, ok := r.Float()
	return int64(value), ok
}

// IDs returns the object ids of an array property. Non-numeric entries are dropped.
func (r Property) IDs() []int64 {
	items, ok := r.Value.([]any)
	if !ok {
		return []int64{}
	}
	ids := make([]int64, 0, len(items))
	for _, item := range items {
		if id, ok := item.(float64); ok {
			ids = append(ids, int64(id))
		}
	}
	return ids
}

// Truthy reports whether the value is neither absent, false, zero nor empty.
func (r Property) Truthy() bool {
	switch value := r.Value.(type) {
	case nil:
		return false
	case bool:
		return value
	case float64:
		return value != 0
	case string:
		return value != ""
	case []any:
		return len(value) > 0
	}
	return true
}

// Text renders a value the way it appears in the reports. Nested values
// render as compact JSON in the key order of the save file.
func (r Property) Text() string {
	switch value := r.Value.(type) {
	case nil:
		return ""
	case string:
		return value
	case bool:
		if value {
			return "True"
		}
		return "False"
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case *orderedmap.OrderedMap, []any:
		bs, err := json.Marshal(value)
		if err != nil {
			return ""
		}
		return string(bs)
	}
	return ""
}

func (r GameObject) Property(name string) (Property, bool) {
	return Find(r.Properties, name)
}

func (r GameObject) PropertyAt(name string, index int) (Property, bool) {
	return FindAt(r.Properties, name, index)
}

// Text returns the rendered value of the named property, or "" when absent.
func (r GameObject) Text(name string) string {
	property, ok := r.Property(name)
	if !ok {
		return ""
	}
	return property.Text()
}

// Flag returns the boolean value of the named property. ok is false when the
// property is absent or not a boolean.
func (r GameObject) Flag(name string) (value bool, ok bool) {
	property, found := r.Property(name)
	if !found {
		return false, false
	}
	return property.Bool()
}

func (r GameObject) Float(name string, fallback float64) float64 {
	property, ok := r.Property(name)
	if !ok {
		return fallback
	}
	value, ok := property.Float()
	if !ok {
		return fallback
	}
	return value
}

func (r GameObject) FloatAt(name string, index int, fallback float64) float64 {
	property, ok := r.PropertyAt(name, index)
	if !ok {
		return fallback
	}
	value, ok := property.Float()
	if !ok {
		return fallback
	}
	return value
}

// Ref returns the object id referenced by the named property.
func (r GameObject) Ref(name string) (int64, bool) {
	property, ok := r.Property(name)
	if !ok || !property.Truthy() {
		return 0, false
	}
	return property.Int()
}

func (r GameObject) IDs(name string) []int64 {
	property, ok := r.Property(name)
	if !ok {
		return []int64{}
	}
	return property.IDs()
}

func (r GameObject) Loc() Location {
	if r.Location == nil {
		return Location{}
	}
	return *r.Location
}
