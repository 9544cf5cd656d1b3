package areport

import (
	"io"
	"strconv"
	"strings"

	"ark-savior/ark/aclass"
	"ark-savior/ark/aresolve"
	"github.com/samber/lo"
)

// HungryThreshold is the food ratio from which a tame is no longer reported.
const HungryThreshold = 0.50

// VehicleClasses carry tame properties but are not creatures.
var VehicleClasses = []string{
	"Raft_BP_C",
	"MotorRaft_BP_C",
	"TekHoverSkiff_Character_BP_C",
}

// CryopodMarkers appear in the names of creatures stored in cryopods.
var CryopodMarkers = []string{
	"PrimalItem_WeaponEmptyCryopod",
}

var HungryTamesHeader = []string{
	"ID",
	"Class",
	"Level",
	"TamedName",
	"x",
	"y",
	"z",
	"FoodLevelsWild",
	"FoodLevelsTamed",
	"FoodCurrent",
	"FoodTotal",
	"FoodPercent",
	"TamerString",
	"OwningPlayerName",
	"TribeName",
}

func IsVehicle(row aresolve.TameRow) bool {
	return lo.Contains(VehicleClasses, row.Class)
}

func IsCryopodded(row aresolve.TameRow) bool {
	return lo.SomeBy(
		row.Names,
		func(name string) bool {
			return lo.SomeBy(
				CryopodMarkers,
				func(marker string) bool { return strings.Contains(name, marker) },
			)
		},
	)
}

func IsHungry(row aresolve.TameRow) bool {
	return !IsVehicle(row) && !IsCryopodded(row) && row.FoodPercent < HungryThreshold
}

func HungryTames(rows []aresolve.TameRow) []aresolve.TameRow {
	return lo.Filter(
		rows,
		func(row aresolve.TameRow, _ int) bool { return IsHungry(row) },
	)
}

func HungryTameFields(row aresolve.TameRow) []string {
	fields := []string{
		strconv.FormatInt(row.ID, 10),
		aclass.SimplifyClassName(row.Class),
		strconv.Itoa(row.Level),
		row.TamedName,
	}
	fields = append(fields, FormatLocation(row.Location)...)
	return append(
		fields,
		strconv.Itoa(row.FoodLevelsWild),
		strconv.Itoa(row.FoodLevelsTamed),
		FormatFloat(row.FoodCurrent),
		FormatFloat(row.FoodTotal),
		FormatFloat(row.FoodPercent),
		row.TamerString,
		row.OwningPlayerName,
		row.TribeName,
	)
}

// WriteHungryTames writes the tames from rows that need feeding.
func WriteHungryTames(w io.Writer, rows []aresolve.TameRow) error {
	records := lo.Map(
		HungryTames(rows),
		func(row aresolve.TameRow, _ int) []string { return HungryTameFields(row) },
	)
	return WriteTSV(w, HungryTamesHeader, records)
}
