package aresolve

import (
	"log/slog"

	"ark-savior/ark/aclass"
	"ark-savior/ark/aconfig"
	"ark-savior/ark/aobject"
	"ark-savior/ark/aregistry"
	"ark-savior/ark/aspecies"
	"ark-savior/ark/astat"
)

// MinKnownTotal is the smallest stat total treated as meaningful.
const MinKnownTotal = 1.0

type TameResolver struct {
	Registry    *aregistry.Registry
	Species     *aspecies.Table
	Multipliers aconfig.Multipliers
	Logger      *slog.Logger
	// warned holds the classes already reported as missing from Species.
	warned map[string]struct{}
}

// Tames resolves the food status of every registered tame in registration order.
func (r *TameResolver) Tames() []TameRow {
	rows := make([]TameRow, 0, r.Registry.TameDinos.Len())
	for _, tame := range r.Registry.TameDinos.Values() {
		rows = append(rows, r.Resolve(*tame))
	}
	return rows
}

func (r *TameResolver) Resolve(tame aobject.GameObject) TameRow {
	row := TameRow{
		ID:               tame.ID,
		Class:            tame.Class,
		Names:            tame.Names,
		TamedName:        tame.Text(PropertyTamedName),
		Location:         tame.Loc(),
		TamerString:      tame.Text(PropertyTamerString),
		OwningPlayerName: tame.Text(PropertyOwningPlayerName),
		TribeName:        tame.Text(PropertyTribeName),
	}

	status, ok := r.status(tame)
	if !ok {
		r.Logger.Warn(
			"tame has no status component; food total unknown",
			"id", tame.ID, "class", tame.Class,
		)
		return row
	}
	row.Level = astat.CharacterLevel(*status)
	levelsWild := astat.Levels(*status, astat.PropertyLevelsWild)
	levelsTamed := astat.Levels(*status, astat.PropertyLevelsTamed)
	r.Logger.Debug(
		"tame levels",
		"id", tame.ID, "wild", levelsWild, "tamed", levelsTamed,
	)
	row.FoodLevelsWild = levelsWild[astat.AxisFood]
	row.FoodLevelsTamed = levelsTamed[astat.AxisFood]
	row.FoodCurrent = astat.CurrentValue(*status, astat.AxisFood)

	record, ok := r.species(tame.Class)
	if ok {
		row.FoodTotal = astat.StatTotal(
			*status,
			record,
			astat.AxisFood,
			row.FoodLevelsWild,
			row.FoodLevelsTamed,
			r.Multipliers.ForAxis(astat.AxisFood),
		)
	}

	if row.FoodTotal < MinKnownTotal {
		// missing records were reported once per class already
		if ok {
			r.Logger.Warn(
				"food total below 1; reporting 0 percent",
				"id", tame.ID, "class", tame.Class, "total", row.FoodTotal,
			)
		}
		row.FoodPercent = 0
		return row
	}
	row.FoodPercent = row.FoodCurrent / row.FoodTotal
	return row
}

func (r *TameResolver) status(tame aobject.GameObject) (*aobject.GameObject, bool) {
	statusID, ok := tame.Ref(PropertyMyCharacterStatusComponent)
	if !ok {
		return nil, false
	}
	return r.Registry.DinoStatus.Get(statusID)
}

func (r *TameResolver) species(class string) (aspecies.Record, bool) {
	if r.Species != nil {
		if record, ok := r.Species.Lookup(class); ok {
			return record, true
		}
	}

	if r.warned == nil {
		r.warned = map[string]struct{}{}
	}
	if _, ok := r.warned[class]; ok {
		return aspecies.Record{}, false
	}
	r.warned[class] = struct{}{}

	attrs := []any{"class", class, "simplified", aclass.SimplifyClassName(class)}
	if r.Species != nil {
		if suggestion, ok := r.Species.Suggest(class); ok {
			attrs = append(attrs, "closest", suggestion)
		}
	}
	r.Logger.Warn("no species record for class; food total unknown", attrs...)
	return aspecies.Record{}, false
}
