package aresolve

import (
	"io"
	"log/slog"
	"testing"

	"ark-savior/ark/aclass"
	"ark-savior/ark/aobject"
	"ark-savior/ark/aregistry"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createProperty(name string, value any) aobject.Property {
	return aobject.Property{Name: name, Value: value}
}

func createIndexedProperty(name string, index int, value any) aobject.Property {
	return aobject.Property{Name: name, Index: &index, Value: value}
}

func createIDs(ids ...int64) []any {
	return lo.Map(ids, func(id int64, _ int) any { return float64(id) })
}

func createRegistry(objects ...aobject.GameObject) *aregistry.Registry {
	registry := aregistry.New(aclass.Default())
	for _, obj := range objects {
		registry.Register(obj)
	}
	return registry
}

func inventoryFixture() []aobject.GameObject {
	return []aobject.GameObject{
		{
			ID:       1,
			Class:    "StorageBox_Small_C",
			Location: &aobject.Location{X: 10.5, Y: -20, Z: 30},
			Properties: []aobject.Property{
				createProperty("MyInventoryComponent", 10.0),
				createProperty(PropertyOwnerName, "Storage Box"),
				createProperty(PropertyOwningPlayerName, "Alice"),
				createProperty(PropertyTribeName, "Tribe of Alice"),
			},
		},
		{
			// a serialization duplicate of the box above
			ID:    2,
			Class: "StorageBox_Small_C",
			Properties: []aobject.Property{
				createProperty("MyInventoryComponent", 10.0),
				createProperty(PropertyOwnerName, "Duplicate"),
			},
		},
		{
			ID:         3,
			Class:      "Leash_C",
			Properties: []aobject.Property{createProperty("MyInventoryComponent", 20.0)},
		},
		{
			ID:         4,
			Class:      "PlayerPawnTest_Female_C",
			Properties: []aobject.Property{createProperty("MyInventoryComponent", 30.0), createProperty(PropertyPlayerName, "Bob")},
		},
		{
			ID:         10,
			Class:      "PrimalInventoryBP_StorageBox_Small_C",
			Properties: []aobject.Property{createProperty(PropertyInventoryItems, createIDs(100, 101, 102, 103, 104, 999))},
		},
		{
			ID:    30,
			Class: "PrimalInventoryBP_PlayerInventory_C",
		},
		{
			ID:    100,
			Class: "PrimalItemResource_Wood_C",
			Properties: []aobject.Property{
				createProperty("OwnerInventory", 10.0),
				createProperty(PropertyItemQuantity, 50.0),
			},
		},
		{
			ID:    101,
			Class: "PrimalItem_EngramStoneHatchet_C",
			Properties: []aobject.Property{
				createProperty(PropertyIsEngram, true),
			},
		},
		{
			// classified by its OwnerInventory property, but still an engram
			ID:    102,
			Class: "EngramHolder_C",
			Properties: []aobject.Property{
				createProperty("OwnerInventory", 10.0),
				createProperty(PropertyIsEngram, true),
			},
		},
		{
			ID:    103,
			Class: "PrimalItem_Implant_C",
			Properties: []aobject.Property{
				createProperty(PropertyAllowRemoval, false),
			},
		},
		{
			ID:    104,
			Class: "PrimalItem_WeaponStoneHatchet_C",
			Properties: []aobject.Property{
				createProperty(PropertyItemQuantity, 0.0),
				createProperty(PropertyIsBlueprint, true),
				createProperty(PropertyAllowRemoval, true),
			},
		},
	}
}

func TestInventories(t *testing.T) {
	registry := createRegistry(inventoryFixture()...)
	rows := Inventories(registry, discardLogger())

	owner := InventoryRow{
		OwnerID:        1,
		OwnerClass:     "StorageBox_Small",
		OwnerLocation:  aobject.Location{X: 10.5, Y: -20, Z: 30},
		OwnerName:      "Storage Box",
		PlayerName:     "Alice",
		TribeName:      "Tribe of Alice",
		InventoryID:    10,
		InventoryClass: "StorageBox_Small",
	}
	wood := owner
	wood.ItemType = "Wood"
	wood.Quantity = 50
	hatchet := owner
	hatchet.ItemType = "WeaponStoneHatchet"
	hatchet.Quantity = 1
	hatchet.Blueprint = true

	assert.Equal(t, []InventoryRow{wood, hatchet}, rows)
}

func TestInventories_Idempotent(t *testing.T) {
	registry := createRegistry(inventoryFixture()...)
	assert.Equal(
		t,
		Inventories(registry, discardLogger()),
		Inventories(registry, discardLogger()),
	)
}

func TestInventories_OrphanOnly(t *testing.T) {
	registry := createRegistry(
		aobject.GameObject{
			ID:         3,
			Class:      "Leash_C",
			Properties: []aobject.Property{createProperty("MyInventoryComponent", 20.0)},
		},
	)
	require.Equal(t, []int64{20}, registry.InventoryOwners.Keys())
	assert.Empty(t, Inventories(registry, discardLogger()))
}

func TestStacks(t *testing.T) {
	registry := createRegistry(inventoryFixture()...)
	inventory, ok := registry.Inventories.Get(10)
	require.True(t, ok)

	ids := lo.Map(
		Stacks(registry, *inventory),
		func(stack *aobject.GameObject, _ int) int64 { return stack.ID },
	)
	assert.Equal(t, []int64{100, 104}, ids)
}

func TestQuantity(t *testing.T) {
	tests := map[string]struct {
		properties []aobject.Property
		expected   int64
	}{
		"absent": {nil, 1},
		"zero":   {[]aobject.Property{createProperty(PropertyItemQuantity, 0.0)}, 1},
		"set":    {[]aobject.Property{createProperty(PropertyItemQuantity, 12.0)}, 12},
	}
	for name, test := range tests {
		stack := aobject.GameObject{Properties: test.properties}
		assert.Equal(t, test.expected, Quantity(stack), name)
	}
}

func TestIsSpecial(t *testing.T) {
	assert.True(t, IsSpecial(aobject.GameObject{Properties: []aobject.Property{createProperty(PropertyAllowRemoval, false)}}))
	assert.False(t, IsSpecial(aobject.GameObject{Properties: []aobject.Property{createProperty(PropertyAllowRemoval, true)}}))
	assert.False(t, IsSpecial(aobject.GameObject{}))
}
