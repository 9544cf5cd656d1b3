package ark

import (
	"path/filepath"
	"strings"

	"ark-savior/ark/aconfig"
	"ark-savior/ark/aspecies"
	"github.com/samber/lo"
)

const (
	ExtensionSave           = ".ark"
	ExtensionJSON           = ".json"
	ExtensionCompressedJSON = ".json.zst"

	SuffixInventory   = "_inventory.txt"
	SuffixHungryTames = "_hungry_tames.txt"
)

type Paths struct {
	Input string
	// JSON is the converter's output, or Input itself when it is already JSON.
	JSON        string
	Converted   bool
	Inventory   string
	HungryTames string
	Config      string
	// Species lists the reference dataset locations, most specific first.
	Species []string
}

// TrimExtension strips a known save extension from path and reports whether
// path already holds converted JSON.
func TrimExtension(path string) (string, bool) {
	lower := strings.ToLower(path)
	for _, extension := range []string{ExtensionCompressedJSON, ExtensionJSON} {
		if strings.HasSuffix(lower, extension) {
			return path[:len(path)-len(extension)], true
		}
	}
	if strings.HasSuffix(lower, ExtensionSave) {
		return path[:len(path)-len(ExtensionSave)], false
	}
	return path, false
}

func NewPaths(input string) Paths {
	stem, converted := TrimExtension(input)
	dir := filepath.Dir(input)

	jsonPath := input
	if !converted {
		jsonPath = stem + ExtensionJSON
	}
	return Paths{
		Input:       input,
		JSON:        jsonPath,
		Converted:   converted,
		Inventory:   stem + SuffixInventory,
		HungryTames: stem + SuffixHungryTames,
		Config:      filepath.Join(dir, aconfig.FileName),
		Species: lo.Uniq(
			[]string{
				filepath.Join(dir, aspecies.FileName),
				aspecies.FileName,
			},
		),
	}
}
