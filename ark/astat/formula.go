package astat

import (
	"ark-savior/ark/aobject"
)

// Compute returns the stat value
//
//	V = (B * (1 + Lw*Iw*IwM) * TBHM * (1 + IB*0.2*IBM) + Ta*TaM) * (1 + TE*Tm*TmM) * (1 + Ld*Id*IdM)
func Compute(in Inputs) float64 {
	a := 1 + float64(in.LevelsWild)*in.IncreasePerWildLevel*in.Multipliers.WildLevel
	b := 1 + in.ImprintingQuality*ImprintingStatScale*in.Multipliers.Imprinting
	c := 1 + in.TamingEffectiveness*in.Coefficients.TamingMultiply*in.Multipliers.TamingMult
	d := 1 + float64(in.LevelsTamed)*in.IncreasePerTamedLevel*in.Multipliers.TamedLevel
	return ((in.Base * a * in.TamedBaseHealthMultiplier * b) + in.Coefficients.TamingAdd*in.Multipliers.TamingAdd) * c * d
}

// TamingEffectiveness converts the ineffectiveness modifier stored on a
// status component into a factor in (0, 1].
func TamingEffectiveness(ineffectivenessModifier float64) float64 {
	return 1 / (1 + ineffectivenessModifier)
}

// StatTotal returns the maximum value of axis for the creature owning status.
// The tamed base health multiplier only applies to the health axis.
func StatTotal(
	status aobject.GameObject,
	species SpeciesStats,
	axis StatAxis,
	levelsWild int,
	levelsTamed int,
	multipliers Multipliers,
) float64 {
	tbhm := 1.0
	if axis == AxisHealth {
		tbhm = species.TamedBaseHealthMultiplier()
	}
	return Compute(
		Inputs{
			Coefficients:              species.Coefficients(axis),
			Multipliers:               multipliers,
			LevelsWild:                levelsWild,
			LevelsTamed:               levelsTamed,
			TamingEffectiveness:       TamingEffectiveness(status.Float(PropertyTamedIneffectiveness, 0)),
			ImprintingQuality:         status.Float(PropertyImprintingQuality, 0),
			TamedBaseHealthMultiplier: tbhm,
		},
	)
}
