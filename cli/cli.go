package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"ark-savior/ark"
	"ark-savior/ark/aconvert"
	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
)

type (
	Args struct {
		Input string `arg:"positional,required" help:"path to a save file (.ark), or its converted .json / .json.zst" placeholder:"INPUT"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Reports what is stored where in an ARK save, and which tames need feeding.\n",
			"Writes <name>_inventory.txt and <name>_hungry_tames.txt next to the input.",
			"Reads values.json and Game.ini from the input's folder when present.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// Analyze runs one analysis of input and returns the process exit code.
func Analyze(input string) int {
	if !CheckExistence(input) {
		println("Input file does not exist: " + input)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	run := ark.NewRun(input, logger, os.Stdout)

	summary, err := run.Analyze()
	failed := aconvert.ErrConverterFailed{}
	if errors.As(err, &failed) {
		fmt.Printf("Converting failed with exit status %d:\n%s\n", failed.ExitCode, aconvert.IndentOutput(failed.Output))
		return 1
	}
	if err != nil {
		fmt.Printf("Error happened: %v\n", err)
		return 1
	}
	logger.Info(
		"analysis finished",
		"objects", summary.Objects,
		"inventory_rows", summary.InventoryRows,
		"tames", summary.Tames,
		"hungry_tames", summary.HungryTames,
	)
	return 0
}

func Start() {
	args := Args{}
	arg.MustParse(&args)
	os.Exit(Analyze(args.Input))
}
