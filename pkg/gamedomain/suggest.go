package gamedomain

import (
	"sort"

	"github.com/hbollon/go-edlib"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a suggestion.
// Below this the candidate is more likely noise than a typo.
const suggestThreshold = 0.8

// Suggest finds the closest known game domain for an unrecognized name.
// Uses Jaro-Winkler similarity, which favors shared prefixes and works well
// for the truncated and concatenated spellings manifests contain.
func (t *Table) Suggest(name string) (slug string, ok bool) {
	key := Normalize(name)
	if key == "" {
		return "", false
	}

	// Sorted iteration so ties between equally scored aliases break the
	// same way on every run.
	candidates := make([]string, 0, len(t.aliases))
	for alias := range t.aliases {
		candidates = append(candidates, alias)
	}
	sort.Strings(candidates)

	best := ""
	bestScore := 0.0
	for _, alias := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(key, alias))
		if score > bestScore {
			best = t.aliases[alias]
			bestScore = score
		}
	}

	if bestScore < suggestThreshold {
		return "", false
	}
	return best, true
}
