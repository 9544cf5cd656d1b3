package areport

import (
	"io"
	"strconv"

	"ark-savior/ark/aresolve"
	"github.com/samber/lo"
)

var InventoryHeader = []string{
	"OwnerID",
	"InventoryOwnerClass",
	"x",
	"y",
	"z",
	"OwnerName",
	"OwningPlayerName",
	"OwningTameName",
	"TribeName",
	"InventoryID",
	"InventoryClass",
	"InventoryStackItemType",
	"StackQuantity",
	"Blueprint",
}

func InventoryFields(row aresolve.InventoryRow) []string {
	fields := []string{
		strconv.FormatInt(row.OwnerID, 10),
		row.OwnerClass,
	}
	fields = append(fields, FormatLocation(row.OwnerLocation)...)
	kind := "Item"
	if row.Blueprint {
		kind = "Blueprint"
	}
	return append(
		fields,
		row.OwnerName,
		row.PlayerName,
		row.TameName,
		row.TribeName,
		strconv.FormatInt(row.InventoryID, 10),
		row.InventoryClass,
		row.ItemType,
		strconv.FormatInt(row.Quantity, 10),
		kind,
	)
}

func WriteInventory(w io.Writer, rows []aresolve.InventoryRow) error {
	records := lo.Map(
		rows,
		func(row aresolve.InventoryRow, _ int) []string { return InventoryFields(row) },
	)
	return WriteTSV(w, InventoryHeader, records)
}
