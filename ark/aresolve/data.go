package aresolve

import (
	"ark-savior/ark/aobject"
)

type (
	// InventoryRow is one (owner, inventory, item stack) triple.
	InventoryRow struct {
		OwnerID        int64
		OwnerClass     string
		OwnerLocation  aobject.Location
		OwnerName      string
		PlayerName     string
		TameName       string
		TribeName      string
		InventoryID    int64
		InventoryClass string
		ItemType       string
		Quantity       int64
		Blueprint      bool
	}
	// TameRow carries the food status of one tamed creature.
	TameRow struct {
		ID               int64
		Class            string
		Names            []string
		Level            int
		TamedName        string
		Location         aobject.Location
		FoodLevelsWild   int
		FoodLevelsTamed  int
		FoodCurrent      float64
		FoodTotal        float64
		FoodPercent      float64
		TamerString      string
		OwningPlayerName string
		TribeName        string
	}
)

const (
	PropertyInventoryItems             = "InventoryItems"
	PropertyIsEngram                   = "bIsEngram"
	PropertyAllowRemoval               = "bAllowRemovalFromInventory"
	PropertyItemQuantity               = "ItemQuantity"
	PropertyIsBlueprint                = "bIsBlueprint"
	PropertyOwnerName                  = "OwnerName"
	PropertyOwningPlayerName           = "OwningPlayerName"
	PropertyPlayerName                 = "PlayerName"
	PropertyTameName                   = "TameName"
	PropertyTamedName                  = "TamedName"
	PropertyTribeName                  = "TribeName"
	PropertyTamerString                = "TamerString"
	PropertyMyCharacterStatusComponent = "MyCharacterStatusComponent"
)
