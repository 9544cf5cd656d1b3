// Package aconvert runs the external tool that turns a binary save file into JSON.
package aconvert

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

type (
	Converter struct {
		Path string
	}
	// ErrConverterFailed reports a non-zero exit of the converter together
	// with everything it printed.
	ErrConverterFailed struct {
		ExitCode int
		Output   string
	}
)

const DefaultPath = "./ArkBinaryToJsonConvertor.exe"

func (r ErrConverterFailed) Error() string {
	return fmt.Sprintf("converter exited with status %d:\n%s", r.ExitCode, IndentOutput(r.Output))
}

func New(path string) Converter {
	if path == "" {
		path = DefaultPath
	}
	return Converter{Path: path}
}

// Convert writes the JSON rendition of inputPath to outputPath and returns
// the converter's output. The converter refuses to write over an existing
// file, so a stale outputPath is removed first.
func (r Converter) Convert(inputPath string, outputPath string) (string, error) {
	if _, err := os.Stat(inputPath); err != nil {
		return "", errors.Wrapf(err, `aconvert.Convert error: input "%s"`, inputPath)
	}
	if err := os.Remove(outputPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return "", errors.Wrapf(err, `aconvert.Convert error removing stale "%s"`, outputPath)
	}

	cmd := exec.Command(r.Path, inputPath, outputPath)
	outputBytes, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(outputBytes))
	if err != nil {
		exitErr := &exec.ExitError{}
		if errors.As(err, &exitErr) {
			return output, ErrConverterFailed{
				ExitCode: exitErr.ExitCode(),
				Output:   output,
			}
		}
		return output, errors.Wrapf(err, `aconvert.Convert error running "%s"`, r.Path)
	}
	return output, nil
}

// IndentOutput prefixes every line of output with four spaces.
func IndentOutput(output string) string {
	if output == "" {
		return ""
	}
	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}
