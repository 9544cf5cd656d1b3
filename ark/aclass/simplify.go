package aclass

import (
	"strings"
)

// ClassNamePrefixes are stripped in order, so longer prefixes come before
// their own prefixes.
var ClassNamePrefixes = []string{
	"PrimalInventoryBP_",
	"PrimalItemResource_",
	"PrimalItemConsumable_",
	"PrimalItem_",
	"PrimalItem",
}

const ClassSuffix = "_C"

// SimplifyClassName turns e.g. "PrimalItemResource_Wood_C" into "Wood".
func SimplifyClassName(raw string) string {
	simplified := raw
	for _, prefix := range ClassNamePrefixes {
		simplified = strings.TrimPrefix(simplified, prefix)
	}
	return strings.TrimSuffix(simplified, ClassSuffix)
}
