package aobject

import (
	"encoding/json"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeObject(t *testing.T, jsonStr string) GameObject {
	obj := GameObject{}
	require.NoError(t, json.Unmarshal([]byte(jsonStr), &obj))
	return obj
}

func TestDecode_GameObject(t *testing.T) {
	obj := decodeObject(t, `
{
  "id": 17,
  "class": "Raptor_Character_BP_C",
  "names": ["Raptor_Character_BP_C_2"],
  "location": {"x": 1.5, "y": -2, "z": 300.25, "pitch": 0},
  "properties": [
    {"name": "TamedName", "type": "StrProperty", "value": "Blue"},
    {"name": "MyInventoryComponent", "type": "ObjectProperty", "value": 42},
    {"name": "CustomData", "type": "StructProperty", "value": {"b": 1, "a": {"z": 2, "y": 3}}},
    {"name": "InventoryItems", "type": "ArrayProperty", "value": [3, 4, 5]}
  ]
}
`)
	assert.Equal(t, int64(17), obj.ID)
	assert.Equal(t, Location{X: 1.5, Y: -2, Z: 300.25}, obj.Loc())
	assert.Equal(t, "Blue", obj.Text("TamedName"))

	id, ok := obj.Ref("MyInventoryComponent")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, []int64{3, 4, 5}, obj.IDs("InventoryItems"))

	custom, ok := obj.Property("CustomData")
	require.True(t, ok)
	lhm, ok := custom.Value.(*orderedmap.OrderedMap)
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, lhm.Keys())
	assert.Equal(t, `{"b":1,"a":{"z":2,"y":3}}`, obj.Text("CustomData"))
	assert.Equal(t, "[3,4,5]", obj.Text("InventoryItems"))
}

func TestDecode_MissingOptionalFields(t *testing.T) {
	obj := decodeObject(t, `{"id": 3, "class": "Something_C"}`)

	assert.Equal(t, Location{}, obj.Loc())
	assert.Equal(t, "", obj.Text("OwnerName"))
	assert.Equal(t, []int64{}, obj.IDs("InventoryItems"))
	_, ok := obj.Ref("MyInventoryComponent")
	assert.False(t, ok)
}

func TestFind_FirstMatchWins(t *testing.T) {
	obj := decodeObject(t, `
{
  "id": 1,
  "class": "X",
  "properties": [
    {"name": "TribeName", "value": "first"},
    {"name": "TribeName", "value": "second"}
  ]
}
`)
	assert.Equal(t, "first", obj.Text("TribeName"))
}

func TestFindAt(t *testing.T) {
	obj := decodeObject(t, `
{
  "id": 1,
  "class": "DinoCharacterStatusComponent_BP_C",
  "properties": [
    {"name": "NumberOfLevelUpPointsApplied", "value": 11},
    {"name": "NumberOfLevelUpPointsApplied", "index": 4, "value": 29},
    {"name": "NumberOfLevelUpPointsApplied", "index": 4, "value": 99},
    {"name": "CurrentStatusValues", "index": 4, "value": 1234.5}
  ]
}
`)
	tests := map[int]float64{
		0: 11,
		4: 29,
		7: -1,
	}
	for index, expected := range tests {
		assert.Equal(t, expected, obj.FloatAt("NumberOfLevelUpPointsApplied", index, -1))
	}
	assert.Equal(t, 1234.5, obj.FloatAt("CurrentStatusValues", 4, 0))
	assert.Equal(t, 0.0, obj.FloatAt("CurrentStatusValues", 0, 0))
}

func TestProperty_TextAndTruthy(t *testing.T) {
	tests := map[string]struct {
		value  any
		text   string
		truthy bool
	}{
		"nil":          {nil, "", false},
		"true":         {true, "True", true},
		"false":        {false, "False", false},
		"zero":         {0.0, "0", false},
		"integer":      {12.0, "12", true},
		"fraction":     {0.25, "0.25", true},
		"empty string": {"", "", false},
		"string":       {"Bob", "Bob", true},
	}
	for name, test := range tests {
		property := Property{Name: name, Value: test.value}
		assert.Equal(t, test.text, property.Text(), name)
		assert.Equal(t, test.truthy, property.Truthy(), name)
	}
}

func TestGameObject_Flag(t *testing.T) {
	obj := decodeObject(t, `
{
  "id": 1,
  "class": "PrimalItemResource_Wood_C",
  "properties": [
    {"name": "bIsEngram", "value": true},
    {"name": "ItemQuantity", "value": 5}
  ]
}
`)
	value, ok := obj.Flag("bIsEngram")
	assert.True(t, ok)
	assert.True(t, value)

	_, ok = obj.Flag("ItemQuantity")
	assert.False(t, ok)

	_, ok = obj.Flag("bIsBlueprint")
	assert.False(t, ok)
}
