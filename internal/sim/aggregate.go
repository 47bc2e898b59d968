package sim

import "sort"

// pairKey identifies a scored (left, right) record pair.
type pairKey struct {
	l, r int
}

// RecPair is one fused recommendation: a record pair and its median
// rank across all evaluated configurations.
type RecPair struct {
	LRec int
	RRec int
	Rank int
}

// RankList maps a pair to its 1-based rank within one configuration's
// TopK output.
type RankList map[pairKey]int

// rankListFromTopK converts a single configuration's TopK result into
// a RankList by assigning ranks 1..N in heap-pop order: results are
// already in that order coming out of TopK.
func rankListFromTopK(pairs []TopPair) RankList {
	ranks := make(RankList, len(pairs))
	for i, p := range pairs {
		ranks[pairKey{l: p.LRec, r: p.RRec}] = i + 1
	}
	return ranks
}

// AggregateRanks fuses per-configuration rank lists into one list by
// per-pair rank median, using the first list's length as N (the
// nominal output_size) for padding pairs absent from a given
// configuration's list. Grounded on GenerateRecomLists.cpp's
// merge_topk_lists.
func AggregateRanks(lists []RankList) []RecPair {
	if len(lists) == 0 {
		return nil
	}

	n := len(lists[0])

	union := make(map[pairKey]struct{})
	for _, list := range lists {
		for k := range list {
			union[k] = struct{}{}
		}
	}

	out := make([]RecPair, 0, len(union))
	for k := range union {
		ranks := make([]int, len(lists))
		for i, list := range lists {
			if r, ok := list[k]; ok {
				ranks[i] = r
			} else {
				ranks[i] = n + 1
			}
		}
		sort.Ints(ranks)

		var median int
		m := len(ranks)
		if m%2 == 1 {
			median = ranks[m/2]
		} else {
			median = (ranks[m/2-1] + ranks[m/2]) / 2
		}

		out = append(out, RecPair{LRec: k.l, RRec: k.r, Rank: median})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		if out[i].LRec != out[j].LRec {
			return out[i].LRec < out[j].LRec
		}
		return out[i].RRec < out[j].RRec
	})

	return out
}
