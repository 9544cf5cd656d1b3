package aspecies

import (
	"ark-savior/ark/astat"
)

type (
	// Record is the reference data of one species. A nil row in FullStatsRaw
	// means the species does not use that axis.
	Record struct {
		Name          string
		BlueprintPath string
		FullStatsRaw  [][]float64
		// HealthMultiplier is TamedBaseHealthMultiplier, 1 when absent.
		HealthMultiplier float64
	}
	// Table maps creature class names to their species record.
	Table struct {
		byClass map[string]Record
		classes []string
	}
)

const (
	FileName = "values.json"
	// CoreNamespace is the blueprint path prefix of the base game's creatures.
	CoreNamespace = "/Game/PrimalEarth/"
	ClassSuffix   = "_C"
)

var _ astat.SpeciesStats = Record{}

func (r Record) Coefficients(axis astat.StatAxis) astat.Coefficients {
	if axis < 0 || int(axis) >= len(r.FullStatsRaw) {
		return astat.Coefficients{}
	}
	row := r.FullStatsRaw[axis]
	at := func(i int) float64 {
		if i >= len(row) {
			return 0
		}
		return row[i]
	}
	return astat.Coefficients{
		Base:                  at(0),
		IncreasePerWildLevel:  at(1),
		IncreasePerTamedLevel: at(2),
		TamingAdd:             at(3),
		TamingMultiply:        at(4),
	}
}

func (r Record) TamedBaseHealthMultiplier() float64 {
	return r.HealthMultiplier
}
