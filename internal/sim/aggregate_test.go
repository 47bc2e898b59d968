package sim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestAggregateRanks_MedianFusion covers two configurations of equal
// list size (N=2) producing overlapping but not identical rank lists;
// missing pairs are padded to N+1, and even-length medians use floor
// division.
func TestAggregateRanks_MedianFusion(t *testing.T) {
	config1 := RankList{
		{l: 0, r: 0}: 1,
		{l: 0, r: 1}: 2,
	}
	config2 := RankList{
		{l: 0, r: 1}: 1,
		{l: 0, r: 2}: 2,
	}

	out := AggregateRanks([]RankList{config1, config2})

	byPair := make(map[pairKey]RecPair, len(out))
	for _, p := range out {
		byPair[pairKey{l: p.LRec, r: p.RRec}] = p
	}

	require.Equal(t, 2, byPair[pairKey{0, 0}].Rank)
	require.Equal(t, 1, byPair[pairKey{0, 1}].Rank)
	require.Equal(t, 2, byPair[pairKey{0, 2}].Rank)

	require.Equal(t, 0, out[0].LRec)
	require.Equal(t, 1, out[0].RRec)
	require.Equal(t, 1, out[0].Rank)
}

func TestAggregateRanks_SingleList(t *testing.T) {
	list := RankList{
		{l: 1, r: 1}: 1,
		{l: 2, r: 2}: 2,
	}

	out := AggregateRanks([]RankList{list})

	require.Len(t, out, 2)
	require.Equal(t, 1, out[0].Rank)
	require.Equal(t, 2, out[1].Rank)
}

func TestAggregateRanks_Empty(t *testing.T) {
	require.Nil(t, AggregateRanks(nil))
}

func TestAggregateRanks_OutputSortedAscendingByRank(t *testing.T) {
	config1 := RankList{{l: 0, r: 0}: 3, {l: 0, r: 1}: 1, {l: 0, r: 2}: 2}
	config2 := RankList{{l: 0, r: 0}: 3, {l: 0, r: 1}: 1, {l: 0, r: 2}: 2}

	out := AggregateRanks([]RankList{config1, config2})

	for i := 1; i < len(out); i++ {
		require.LessOrEqual(t, out[i-1].Rank, out[i].Rank)
	}
}

func TestRankListFromTopK_PreservesPopOrderAsRank(t *testing.T) {
	pairs := []TopPair{
		{Sim: 0.2, LRec: 0, RRec: 0},
		{Sim: 0.5, LRec: 1, RRec: 1},
		{Sim: 0.9, LRec: 2, RRec: 2},
	}

	ranks := rankListFromTopK(pairs)

	require.Equal(t, 1, ranks[pairKey{l: 0, r: 0}])
	require.Equal(t, 2, ranks[pairKey{l: 1, r: 1}])
	require.Equal(t, 3, ranks[pairKey{l: 2, r: 2}])
}
