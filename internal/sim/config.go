package sim

import "github.com/progracyd/debugblocker/internal/token"

// GenerateConfigs produces the ordered family of field subsets
// evaluated by the aggregator, starting from fieldList and contracting
// one field at a time along the most-skewed path, emitting every
// single-field removal of the current working set at each size level.
// Grounded on GenerateRecomLists.cpp's generate_config.
//
// lSize and rSize must be positive; callers are expected to reject the
// division-by-zero case up front.
func GenerateConfigs(fieldList []int, sumL, sumR token.TokenSums, rho float64, lSize, rSize int) [][]int {
	current := append([]int(nil), fieldList...)
	configs := [][]int{append([]int(nil), current...)}

	for len(current) > 1 {
		var sumLcur, sumRcur int
		for _, f := range current {
			sumLcur += sumL[f]
			sumRcur += sumR[f]
		}

		avgL := float64(sumLcur) / float64(lSize)
		avgR := float64(sumRcur) / float64(rSize)
		ratio := 1 - (float64(len(current)-1))*rho/(1+rho)*maxFloat(avgL, avgR)/(avgL+avgR)

		drop := -1
		for i, f := range current {
			if float64(sumL[f]) > float64(sumLcur)*ratio || float64(sumR[f]) > float64(sumRcur)*ratio {
				drop = i
				break
			}
		}
		if drop < 0 {
			drop = len(current) - 1
		}

		if withoutDrop := removeAt(current, drop); len(withoutDrop) > 0 {
			configs = append(configs, withoutDrop)
		}
		for i := range current {
			if i == drop {
				continue
			}
			if reduced := removeAt(current, i); len(reduced) > 0 {
				configs = append(configs, reduced)
			}
		}

		current = removeAt(current, drop)
	}

	return configs
}

func removeAt(s []int, i int) []int {
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// SortConfigsBySize resequences a configuration family the way the
// original implementation's sort_config does (GenerateRecomLists.cpp):
// the first config is kept in place; each later config whose size
// matches its immediate predecessor's size is deferred to the end of
// the list (preserving relative order among deferred configs), while
// configs whose size differs from their predecessor stay where they
// are. This is a presentation-only resequencing: it is not applied by
// GenerateConfigs or Recommend, only by callers that want the family
// printed in this resequenced order. The result is not fully sorted by
// size.
func SortConfigsBySize(configs [][]int) [][]int {
	if len(configs) == 0 {
		return configs
	}

	sorted := make([][]int, 0, len(configs))
	var deferred [][]int
	sorted = append(sorted, configs[0])

	for i := 1; i < len(configs); i++ {
		if len(configs[i]) == len(configs[i-1]) {
			deferred = append(deferred, configs[i])
		} else {
			sorted = append(sorted, configs[i])
		}
	}

	return append(sorted, deferred...)
}
