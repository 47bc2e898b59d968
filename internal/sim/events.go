package sim

import "container/heap"

// Side tags which table a prefix event or inverted-index entry belongs
// to.
type Side int

const (
	// SideL identifies the left table.
	SideL Side = iota
	// SideR identifies the right table.
	SideR
)

// prefixEvent is one (threshold, side, rec, pos) announcement: the
// pos-th token of record rec on the given side becomes prefix-filter
// eligible once all events of strictly greater threshold have been
// processed.
type prefixEvent struct {
	threshold float64
	side      Side
	rec       int
	pos       int
}

// eventHeap is a max-heap on threshold: the event with the largest
// threshold is popped first. Ties are broken by (side, rec, pos) so
// that two runs over the same input produce the same pop order.
type eventHeap []prefixEvent

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].threshold != h[j].threshold {
		return h[i].threshold > h[j].threshold
	}
	if h[i].side != h[j].side {
		return h[i].side < h[j].side
	}
	if h[i].rec != h[j].rec {
		return h[i].rec < h[j].rec
	}
	return h[i].pos < h[j].pos
}
func (h eventHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *eventHeap) Push(x any)        { *h = append(*h, x.(prefixEvent)) }
func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// newEventHeap builds the merged, threshold-descending event queue for
// both tables: one event per (rec, pos) with threshold = 1 -
// pos/len(rec), grounded on TopkHeader.cpp's
// original_generate_prefix_events*.
func newEventHeap(l, r [][]int) *eventHeap {
	h := &eventHeap{}
	pushTableEvents(h, l, SideL)
	pushTableEvents(h, r, SideR)
	heap.Init(h)
	return h
}

func pushTableEvents(h *eventHeap, table [][]int, side Side) {
	for rec, toks := range table {
		n := len(toks)
		if n == 0 {
			continue
		}
		for pos := 0; pos < n; pos++ {
			*h = append(*h, prefixEvent{
				threshold: 1 - float64(pos)/float64(n),
				side:      side,
				rec:       rec,
				pos:       pos,
			})
		}
	}
}

// topPair is one scored candidate pair.
type topPair struct {
	sim  float64
	lRec int
	rRec int
}

// TopPair is the externally visible form of topPair.
type TopPair struct {
	Sim  float64
	LRec int
	RRec int
}

// topPairHeap is a min-heap on sim: the worst retained pair sits at
// the top and is the one evicted when a better candidate arrives. Ties
// are broken by (lRec, rRec) for determinism.
type topPairHeap []topPair

func (h topPairHeap) Len() int { return len(h) }
func (h topPairHeap) Less(i, j int) bool {
	if h[i].sim != h[j].sim {
		return h[i].sim < h[j].sim
	}
	if h[i].lRec != h[j].lRec {
		return h[i].lRec > h[j].lRec
	}
	return h[i].rRec > h[j].rRec
}
func (h topPairHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *topPairHeap) Push(x any)   { *h = append(*h, x.(topPair)) }
func (h *topPairHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
