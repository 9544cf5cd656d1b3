package aconfig

import (
	"fmt"
	"os"

	"ark-savior/ark/astat"
	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// Decode reads server multipliers from the contents of a Game.ini file.
// Keys that are absent or unparsable keep their default.
func Decode(source any) (Multipliers, error) {
	multipliers := Default()
	cfg, err := ini.LoadSources(
		ini.LoadOptions{
			AllowShadows:        true,
			IgnoreInlineComment: true,
		},
		source,
	)
	if err != nil {
		return multipliers, errors.Wrap(err, "aconfig.Decode error")
	}
	if !cfg.HasSection(SectionName) {
		return multipliers, nil
	}
	section := cfg.Section(SectionName)

	readAxes := func(key string, values *[astat.AxisCount]float64) {
		for axis := range values {
			name := fmt.Sprintf("%s[%d]", key, axis)
			if section.HasKey(name) {
				values[axis] = section.Key(name).MustFloat64(values[axis])
			}
		}
	}
	readAxes(KeyWildLevel, &multipliers.WildLevel)
	readAxes(KeyTamedLevel, &multipliers.TamedLevel)
	readAxes(KeyTamingAdd, &multipliers.TamingAdd)
	readAxes(KeyTamingAffinity, &multipliers.TamingAffinity)
	if section.HasKey(KeyImprintingScale) {
		multipliers.ImprintingScale = section.Key(KeyImprintingScale).MustFloat64(multipliers.ImprintingScale)
	}

	return multipliers, nil
}

// Load reads path, falling back to the defaults when the file does not exist.
func Load(path string) (Multipliers, bool, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), false, nil
	}
	multipliers, err := Decode(path)
	if err != nil {
		return multipliers, true, errors.Wrapf(err, `aconfig.Load error reading "%s"`, path)
	}
	return multipliers, true, nil
}
