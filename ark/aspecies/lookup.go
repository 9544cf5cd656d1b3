package aspecies

import (
	"github.com/agnivade/levenshtein"
)

func (r *Table) Lookup(class string) (Record, bool) {
	record, ok := r.byClass[class]
	return record, ok
}

func (r *Table) Len() int {
	return len(r.classes)
}

// Suggest returns the known class name closest to class, if any is close enough
// to be a plausible typo or variant.
func (r *Table) Suggest(class string) (string, bool) {
	best := ""
	bestDistance := suggestLimit(len(class)) + 1
	for _, candidate := range r.classes {
		distance := levenshtein.ComputeDistance(class, candidate)
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}
	return best, best != ""
}

func suggestLimit(length int) int {
	switch {
	case length <= 8:
		return 1
	case length <= 20:
		return 2
	default:
		return 4
	}
}
