package aregistry

import (
	"ark-savior/ark/aclass"
	"ark-savior/ark/aobject"
	"ark-savior/ds"
)

type (
	Objects = ds.LinkedHashMap[int64, *aobject.GameObject]
	// Registry holds the classified objects of one run. Every mapping keeps
	// registration order.
	Registry struct {
		classifier  *aclass.Classifier
		Owners      *Objects
		Inventories *Objects
		ItemStacks  *Objects
		TameDinos   *Objects
		DinoStatus  *Objects
		// InventoryOwners maps an inventory id to the ids of the owners that
		// reference it, first-registered first.
		InventoryOwners *ds.LinkedHashMap[int64, []int64]
		// Miscellaneous counts unclassified objects per class name.
		Miscellaneous *ds.LinkedHashMap[string, int]
		RoleCounts    *ds.LinkedHashMap[aclass.Role, int]
	}
)

const PropertyMyInventoryComponent = "MyInventoryComponent"
