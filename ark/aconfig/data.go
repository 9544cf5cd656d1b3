package aconfig

import (
	"ark-savior/ark/astat"
)

type (
	// Multipliers are the server settings feeding the stat formula.
	// Every value defaults to 1.0.
	Multipliers struct {
		// PerLevelStatsMultiplier_DinoWild
		WildLevel [astat.AxisCount]float64
		// PerLevelStatsMultiplier_DinoTamed
		TamedLevel [astat.AxisCount]float64
		// PerLevelStatsMultiplier_DinoTamed_Add
		TamingAdd [astat.AxisCount]float64
		// PerLevelStatsMultiplier_DinoTamed_Affinity
		TamingAffinity [astat.AxisCount]float64
		// BabyImprintingStatScaleMultiplier
		ImprintingScale float64
	}
)

const (
	FileName    = "Game.ini"
	SectionName = "/script/shootergame.shootergamemode"

	KeyWildLevel       = "PerLevelStatsMultiplier_DinoWild"
	KeyTamedLevel      = "PerLevelStatsMultiplier_DinoTamed"
	KeyTamingAdd       = "PerLevelStatsMultiplier_DinoTamed_Add"
	KeyTamingAffinity  = "PerLevelStatsMultiplier_DinoTamed_Affinity"
	KeyImprintingScale = "BabyImprintingStatScaleMultiplier"
)

func Default() Multipliers {
	multipliers := Multipliers{ImprintingScale: 1}
	for i := range multipliers.WildLevel {
		multipliers.WildLevel[i] = 1
		multipliers.TamedLevel[i] = 1
		multipliers.TamingAdd[i] = 1
		multipliers.TamingAffinity[i] = 1
	}
	return multipliers
}

// ForAxis returns the multipliers of one stat axis.
func (r Multipliers) ForAxis(axis astat.StatAxis) astat.Multipliers {
	return astat.Multipliers{
		WildLevel:  r.WildLevel[axis],
		TamedLevel: r.TamedLevel[axis],
		TamingAdd:  r.TamingAdd[axis],
		TamingMult: r.TamingAffinity[axis],
		Imprinting: r.ImprintingScale,
	}
}
