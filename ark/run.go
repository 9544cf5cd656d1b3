// Package ark analyzes one save file: it converts the save to JSON, classifies
// its objects and writes the inventory and hungry tames reports.
package ark

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"ark-savior/ark/aclass"
	"ark-savior/ark/aconfig"
	"ark-savior/ark/aconvert"
	"ark-savior/ark/aregistry"
	"ark-savior/ark/areport"
	"ark-savior/ark/aresolve"
	"ark-savior/ark/aspecies"
	"ark-savior/ark/astream"
	"github.com/pkg/errors"
)

const TopMiscellaneousCount = 10

type (
	// Run holds everything one analysis needs. Nothing is shared between runs.
	Run struct {
		Paths      Paths
		Converter  aconvert.Converter
		Classifier *aclass.Classifier
		Registry   *aregistry.Registry
		Logger     *slog.Logger
		// Progress receives the user-facing step lines.
		Progress io.Writer
	}
	Summary struct {
		Objects       int
		InventoryRows int
		Tames         int
		HungryTames   int
		// SpeciesMissing is set when no reference dataset was found; every
		// food total in the hungry tames report is then 0.
		SpeciesMissing bool
	}
)

func NewRun(input string, logger *slog.Logger, progress io.Writer) *Run {
	classifier := aclass.Default()
	return &Run{
		Paths:      NewPaths(input),
		Converter:  aconvert.New(aconvert.DefaultPath),
		Classifier: classifier,
		Registry:   aregistry.New(classifier),
		Logger:     logger,
		Progress:   progress,
	}
}

func (r *Run) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.Progress, format+"\n", args...)
}

// Analyze runs the four steps in order and stops at the first fatal error.
func (r *Run) Analyze() (Summary, error) {
	summary := Summary{}

	if err := r.convert(); err != nil {
		return summary, err
	}

	objects, err := r.register()
	if err != nil {
		return summary, err
	}
	summary.Objects = objects

	inventoryRows := aresolve.Inventories(r.Registry, r.Logger)
	summary.InventoryRows = len(inventoryRows)
	r.printf("3/4 Reporting inventories...")
	err = areport.WriteFile(
		r.Paths.Inventory,
		func(w io.Writer) error { return areport.WriteInventory(w, inventoryRows) },
	)
	if err != nil {
		return summary, errors.Wrap(err, "ark.Run.Analyze error")
	}
	r.printf("3/4 Wrote %s\n", r.Paths.Inventory)

	r.printf("4/4 Reporting hungry tames...")
	species, found, err := r.loadSpecies()
	if err != nil {
		return summary, err
	}
	if !found {
		summary.SpeciesMissing = true
		r.Logger.Warn(
			"no reference dataset found; food totals unknown",
			"searched", r.Paths.Species,
		)
	}
	multipliers, configFound, err := aconfig.Load(r.Paths.Config)
	if err != nil {
		return summary, errors.Wrap(err, "ark.Run.Analyze error")
	}
	if configFound {
		r.Logger.Info("using server multipliers", "path", r.Paths.Config)
	}

	resolver := aresolve.TameResolver{
		Registry:    r.Registry,
		Species:     species,
		Multipliers: multipliers,
		Logger:      r.Logger,
	}
	tameRows := resolver.Tames()
	summary.Tames = len(tameRows)
	summary.HungryTames = len(areport.HungryTames(tameRows))
	err = areport.WriteFile(
		r.Paths.HungryTames,
		func(w io.Writer) error { return areport.WriteHungryTames(w, tameRows) },
	)
	if err != nil {
		return summary, errors.Wrap(err, "ark.Run.Analyze error")
	}
	r.printf("4/4 Wrote %s\n", r.Paths.HungryTames)
	r.printf("Complete.")
	return summary, nil
}

func (r *Run) convert() error {
	if r.Paths.Converted {
		r.printf("1/4 %s is already converted; skipping conversion\n", r.Paths.Input)
		return nil
	}
	r.printf("1/4 Converting %s from binary to json; this takes a minute...", r.Paths.Input)
	output, err := r.Converter.Convert(r.Paths.Input, r.Paths.JSON)
	if err != nil {
		return errors.Wrap(err, "ark.Run.convert error")
	}
	if output != "" {
		r.printf("%s", aconvert.IndentOutput(output))
	}
	r.printf("1/4 Wrote %s\n", r.Paths.JSON)
	return nil
}

func (r *Run) register() (int, error) {
	r.printf("2/4 Processing game objects from %s; this takes the longest time...", r.Paths.JSON)
	reader, err := astream.Open(r.Paths.JSON)
	if err != nil {
		return 0, errors.Wrap(err, "ark.Run.register error")
	}
	defer func() { _ = reader.Close() }()

	count, err := r.Registry.RegisterAll(reader)
	if err != nil {
		return count, errors.Wrap(err, "ark.Run.register error")
	}

	roles, err := r.Registry.RoleCounts.MarshalJSON()
	if err != nil {
		return count, errors.Wrap(err, "ark.Run.register error")
	}
	r.Logger.Debug("registered objects", "roles", string(roles))
	for _, classCount := range r.Registry.TopMiscellaneous(TopMiscellaneousCount) {
		r.Logger.Debug("unclassified objects", "class", classCount.Class, "count", classCount.Count)
	}
	r.printf("2/4 Processed %d game objects\n", count)
	return count, nil
}

// loadSpecies reads the first reference dataset found in Paths.Species.
func (r *Run) loadSpecies() (*aspecies.Table, bool, error) {
	for _, path := range r.Paths.Species {
		_, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		table, err := aspecies.Load(path)
		if err != nil {
			return nil, true, errors.Wrap(err, "ark.Run.loadSpecies error")
		}
		r.Logger.Info("loaded reference dataset", "path", path, "species", table.Len())
		return table, true, nil
	}
	return nil, false, nil
}
