// Package areport renders resolved rows as tab-separated reports.
package areport

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"ark-savior/ark/aobject"
	"github.com/pkg/errors"
)

func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FormatCoordinate is FormatFloat with a ".0" kept on whole numbers, the way
// the converter's float coordinates print.
func FormatCoordinate(f float64) string {
	text := FormatFloat(f)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.Contains(text, ".") {
		return text
	}
	return text + ".0"
}

func FormatLocation(location aobject.Location) []string {
	return []string{
		FormatCoordinate(location.X),
		FormatCoordinate(location.Y),
		FormatCoordinate(location.Z),
	}
}

// WriteTSV writes header then records, one tab-joined line each.
func WriteTSV(w io.Writer, header []string, records [][]string) error {
	buffered := bufio.NewWriter(w)
	lines := append([][]string{header}, records...)
	for i, line := range lines {
		if _, err := buffered.WriteString(strings.Join(line, "\t") + "\n"); err != nil {
			return errors.Wrapf(err, "areport.WriteTSV error writing line %d", i)
		}
	}
	if err := buffered.Flush(); err != nil {
		return errors.Wrap(err, "areport.WriteTSV error flushing")
	}
	return nil
}

// WriteFile creates path and hands it to write.
func WriteFile(path string, write func(io.Writer) error) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, `areport.WriteFile error creating "%s"`, path)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return errors.Wrapf(err, `areport.WriteFile error writing "%s"`, path)
	}
	if err := file.Close(); err != nil {
		return errors.Wrapf(err, `areport.WriteFile error closing "%s"`, path)
	}
	return nil
}
