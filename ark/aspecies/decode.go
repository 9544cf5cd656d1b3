package aspecies

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// ClassKey derives the creature class name from a blueprint path, e.g.
// "/Game/PrimalEarth/Dinos/Rex/Rex_Character_BP.Rex_Character_BP" gives
// "Rex_Character_BP_C". Paths outside CoreNamespace are rejected.
func ClassKey(blueprintPath string) (string, bool) {
	if !strings.HasPrefix(blueprintPath, CoreNamespace) {
		return "", false
	}
	dot := strings.LastIndex(blueprintPath, ".")
	if dot < 0 || dot == len(blueprintPath)-1 {
		return "", false
	}
	return blueprintPath[dot+1:] + ClassSuffix, true
}

func DecodeRecord(value gjson.Result) Record {
	record := Record{
		Name:             value.Get("name").String(),
		BlueprintPath:    value.Get("blueprintPath").String(),
		FullStatsRaw:     [][]float64{},
		HealthMultiplier: 1,
	}
	if tbhm := value.Get("TamedBaseHealthMultiplier"); tbhm.Exists() && tbhm.Type == gjson.Number {
		record.HealthMultiplier = tbhm.Float()
	}
	value.Get("fullStatsRaw").ForEach(
		func(_, row gjson.Result) bool {
			if !row.IsArray() {
				record.FullStatsRaw = append(record.FullStatsRaw, nil)
				return true
			}
			coefficients := make([]float64, 0, 5)
			row.ForEach(
				func(_, coefficient gjson.Result) bool {
					coefficients = append(coefficients, coefficient.Float())
					return true
				},
			)
			record.FullStatsRaw = append(record.FullStatsRaw, coefficients)
			return true
		},
	)
	return record
}

// Decode builds a lookup table from the species list of a reference dataset.
// Only species under CoreNamespace are kept; a later duplicate replaces an
// earlier one.
func Decode(bs []byte) (*Table, error) {
	if !gjson.ValidBytes(bs) {
		return nil, fmt.Errorf("aspecies.Decode error: invalid JSON document")
	}
	species := gjson.GetBytes(bs, "species")
	if !species.IsArray() {
		return nil, fmt.Errorf(`aspecies.Decode error: missing "species" array`)
	}

	table := &Table{
		byClass: map[string]Record{},
		classes: []string{},
	}
	species.ForEach(
		func(_, value gjson.Result) bool {
			record := DecodeRecord(value)
			key, ok := ClassKey(record.BlueprintPath)
			if !ok {
				return true
			}
			if _, existed := table.byClass[key]; !existed {
				table.classes = append(table.classes, key)
			}
			table.byClass[key] = record
			return true
		},
	)
	return table, nil
}

func Load(path string) (*Table, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, `aspecies.Load error reading "%s"`, path)
	}
	table, err := Decode(bs)
	if err != nil {
		return nil, errors.Wrapf(err, `aspecies.Load error decoding "%s"`, path)
	}
	return table, nil
}
