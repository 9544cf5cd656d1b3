package astat

import (
	"ark-savior/ark/aobject"
	"ark-savior/ds"
	"github.com/samber/lo"
)

// Level returns the level-ups applied to axis according to property.
func Level(status aobject.GameObject, property string, axis StatAxis) int {
	return int(status.FloatAt(property, int(axis), 0))
}

// Levels returns the level-ups of every axis according to property.
func Levels(status aobject.GameObject, property string) []int {
	return lo.Map(
		ds.MakeRange(AxisHealth, AxisCount, 1),
		func(axis StatAxis, _ int) int {
			return Level(status, property, axis)
		},
	)
}

func CurrentValue(status aobject.GameObject, axis StatAxis) float64 {
	return status.FloatAt(PropertyCurrentValues, int(axis), 0)
}

// CharacterLevel returns base plus extra level. The converter omits a base
// level of 1.
func CharacterLevel(status aobject.GameObject) int {
	return int(status.Float(PropertyBaseLevel, 1)) + int(status.Float(PropertyExtraLevel, 0))
}
