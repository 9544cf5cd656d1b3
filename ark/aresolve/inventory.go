package aresolve

import (
	"log/slog"

	"ark-savior/ark/aclass"
	"ark-savior/ark/aobject"
	"ark-savior/ark/aregistry"
	"github.com/samber/lo"
)

// IsEngram reports whether the stack is an engram rather than a physical item.
func IsEngram(stack aobject.GameObject) bool {
	isEngram, ok := stack.Flag(PropertyIsEngram)
	return ok && isEngram
}

// IsSpecial reports whether the stack may not be removed from its inventory.
// Such items (default blueprints, implants) are hidden from listings.
func IsSpecial(stack aobject.GameObject) bool {
	allowRemoval, ok := stack.Flag(PropertyAllowRemoval)
	return ok && !allowRemoval
}

// Quantity returns the stack size; absent or zero quantities count as 1.
func Quantity(stack aobject.GameObject) int64 {
	property, ok := stack.Property(PropertyItemQuantity)
	if !ok || !property.Truthy() {
		return 1
	}
	quantity, ok := property.Int()
	if !ok {
		return 1
	}
	return quantity
}

// Stacks resolves the item stacks listed by an inventory, dropping unknown
// ids, engrams and special items.
func Stacks(registry *aregistry.Registry, inventory aobject.GameObject) []*aobject.GameObject {
	return lo.FilterMap(
		inventory.IDs(PropertyInventoryItems),
		func(stackID int64, _ int) (*aobject.GameObject, bool) {
			stack, ok := registry.ItemStacks.Get(stackID)
			if !ok {
				return nil, false
			}
			return stack, !IsEngram(*stack) && !IsSpecial(*stack)
		},
	)
}

func NewInventoryRow(owner aobject.GameObject, inventory aobject.GameObject, stack aobject.GameObject) InventoryRow {
	isBlueprint, _ := stack.Flag(PropertyIsBlueprint)
	return InventoryRow{
		OwnerID:        owner.ID,
		OwnerClass:     aclass.SimplifyClassName(owner.Class),
		OwnerLocation:  owner.Loc(),
		OwnerName:      owner.Text(PropertyOwnerName),
		PlayerName:     owner.Text(PropertyOwningPlayerName) + owner.Text(PropertyPlayerName),
		TameName:       owner.Text(PropertyTameName),
		TribeName:      owner.Text(PropertyTribeName),
		InventoryID:    inventory.ID,
		InventoryClass: aclass.SimplifyClassName(inventory.Class),
		ItemType:       aclass.SimplifyClassName(stack.Class),
		Quantity:       Quantity(stack),
		Blueprint:      isBlueprint,
	}
}

// Inventories denormalizes every owned inventory into one row per surviving
// item stack. The first-registered owner of an inventory represents it;
// references to unknown inventories are skipped.
func Inventories(registry *aregistry.Registry, logger *slog.Logger) []InventoryRow {
	rows := make([]InventoryRow, 0)
	orphans := 0
	for _, inventoryID := range registry.InventoryOwners.Keys() {
		inventory, ok := registry.Inventories.Get(inventoryID)
		if !ok {
			orphans++
			continue
		}
		ownerIDs, _ := registry.InventoryOwners.Get(inventoryID)
		owner, ok := registry.Owners.Get(ownerIDs[0])
		if !ok {
			continue
		}
		for _, stack := range Stacks(registry, *inventory) {
			rows = append(rows, NewInventoryRow(*owner, *inventory, *stack))
		}
	}
	if orphans > 0 {
		logger.Debug("skipped inventory references without an inventory object", "count", orphans)
	}
	return rows
}
