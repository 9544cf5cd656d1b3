// Package astat computes creature stat values from level-ups, species
// coefficients and server multipliers.
package astat

type (
	// StatAxis indexes the parallel-array stat properties of a status component.
	StatAxis int
	// Coefficients are the five raw stat values of one species on one axis.
	Coefficients struct {
		Base                  float64
		IncreasePerWildLevel  float64
		IncreasePerTamedLevel float64
		TamingAdd             float64
		TamingMultiply        float64
	}
	// Multipliers are the server-tunable multipliers of one axis.
	Multipliers struct {
		WildLevel  float64
		TamedLevel float64
		TamingAdd  float64
		TamingMult float64
		Imprinting float64
	}
	Inputs struct {
		Coefficients
		Multipliers
		LevelsWild                int
		LevelsTamed               int
		TamingEffectiveness       float64
		ImprintingQuality         float64
		TamedBaseHealthMultiplier float64
	}
	// SpeciesStats is the reference data of one species.
	SpeciesStats interface {
		Coefficients(axis StatAxis) Coefficients
		TamedBaseHealthMultiplier() float64
	}
)

const (
	AxisHealth StatAxis = iota
	AxisStamina
	AxisTorpidity
	AxisOxygen
	AxisFood
	AxisWater
	AxisTemperature
	AxisWeight
	AxisMeleeDamageMultiplier
	AxisSpeedMultiplier
	AxisTemperatureFortitude
	AxisCraftingSpeedMultiplier
	AxisCount
)

const (
	PropertyLevelsWild           = "NumberOfLevelUpPointsApplied"
	PropertyLevelsTamed          = "NumberOfLevelUpPointsAppliedTamed"
	PropertyCurrentValues        = "CurrentStatusValues"
	PropertyTamedIneffectiveness = "TamedIneffectivenessModifier"
	PropertyImprintingQuality    = "DinoImprintingQuality"
	PropertyBaseLevel            = "BaseCharacterLevel"
	PropertyExtraLevel           = "ExtraCharacterLevel"

	// ImprintingStatScale is the share of a stat an imprint of 1.0 adds.
	ImprintingStatScale = 0.2
)

func DefaultMultipliers() Multipliers {
	return Multipliers{
		WildLevel:  1,
		TamedLevel: 1,
		TamingAdd:  1,
		TamingMult: 1,
		Imprinting: 1,
	}
}

var axisNames = []string{
	"Health",
	"Stamina",
	"Torpidity",
	"Oxygen",
	"Food",
	"Water",
	"Temperature",
	"Weight",
	"MeleeDamageMultiplier",
	"SpeedMultiplier",
	"TemperatureFortitude",
	"CraftingSpeedMultiplier",
}

func (r StatAxis) String() string {
	if r < 0 || r >= AxisCount {
		return "Unknown"
	}
	return axisNames[r]
}
