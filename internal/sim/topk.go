package sim

import (
	"container/heap"
	"math"

	"github.com/progracyd/debugblocker/internal/token"
)

// terminationEpsilon is the tolerance used by the top-k join's
// termination test. Without it, float jitter between an exact heap
// threshold and an exact event threshold can force the loop to consume
// extra events with no change to the output.
const terminationEpsilon = 1e-6

// invertedPos is one indexed position: the pos-th token of record rec
// satisfied the index-insertion threshold at the time it was seen.
type invertedPos struct {
	rec int
	pos int
}

// joinState carries everything owned by a single TopK call: both
// inverted indices and the already-compared set. Nothing here crosses
// calls, so concurrent TopK calls never share mutable state.
type joinState struct {
	l, r     token.Table
	cand     token.CandidateSet
	k        int
	topHeap  *topPairHeap
	ixL      map[int][]invertedPos
	ixR      map[int][]invertedPos
	compared map[int]map[int]struct{}

	eventsProcessed int
	pairsScored     int
}

// Stats reports how much work a single TopK call did, for the
// orchestrator to fold into its metrics.
type Stats struct {
	EventsProcessed int
	PairsScored     int
}

func (s *joinState) isCompared(lRec, rRec int) bool {
	rs, ok := s.compared[lRec]
	if !ok {
		return false
	}
	_, ok = rs[rRec]
	return ok
}

func (s *joinState) markCompared(lRec, rRec int) {
	rs, ok := s.compared[lRec]
	if !ok {
		rs = make(map[int]struct{})
		s.compared[lRec] = rs
	}
	rs[rRec] = struct{}{}
}

func (s *joinState) heapFull() bool { return s.topHeap.Len() == s.k }

func (s *joinState) heapTopSim() float64 {
	if s.topHeap.Len() == 0 {
		return 0
	}
	return (*s.topHeap)[0].sim
}

// TopK runs the prefix-filtering top-k Jaccard join: a merged,
// threshold-descending event stream drives two inverted indices and a
// bounded min-heap of the best pairs seen so far. It returns at most k
// TopPairs, none of which is a member of cand, in heap-pop order:
// ascending by similarity, so the first element is the least similar
// of the retained top-k and the last is the most similar.
// rankListFromTopK assigns ranks in this same pop order, matching
// OriginalTopkPlain.cpp's own rank assignment rather than re-sorting
// into a more intuitive best-first order.
func TopK(l, r token.Table, cand token.CandidateSet, k int) ([]TopPair, Stats) {
	if k <= 0 {
		return nil, Stats{}
	}

	s := &joinState{
		l: l, r: r, cand: cand, k: k,
		topHeap:  &topPairHeap{},
		ixL:      make(map[int][]invertedPos),
		ixR:      make(map[int][]invertedPos),
		compared: make(map[int]map[int]struct{}),
	}

	events := newEventHeap(l, r)
	for events.Len() > 0 {
		if s.heapFull() {
			top := s.heapTopSim()
			next := (*events)[0].threshold
			if top >= next || math.Abs(top-next) <= terminationEpsilon {
				break
			}
		}

		event := heap.Pop(events).(prefixEvent)
		s.eventsProcessed++
		if event.side == SideL {
			s.processLeftEvent(event.rec, event.pos)
		} else {
			s.processRightEvent(event.rec, event.pos)
		}
	}

	out := make([]TopPair, 0, s.topHeap.Len())
	for s.topHeap.Len() > 0 {
		p := heap.Pop(s.topHeap).(topPair)
		out = append(out, TopPair{Sim: p.sim, LRec: p.lRec, RRec: p.rRec})
	}
	return out, Stats{EventsProcessed: s.eventsProcessed, PairsScored: s.pairsScored}
}

// processLeftEvent handles a left-side prefix event: probe the right
// inverted index for the event's token, score every match, then decide
// whether this (rec, pos) is itself worth indexing on the left.
func (s *joinState) processLeftEvent(lRec, lPos int) {
	tok := s.l[lRec][lPos]
	lLen := len(s.l[lRec])

	for _, pos := range s.ixR[tok] {
		rRec := pos.rec
		rLen := len(s.r[rRec])
		s.scorePair(lRec, rRec, lLen, rLen)
	}

	s.indexPosition(s.ixL, tok, lRec, lPos, lLen)
}

// processRightEvent is the mirror of processLeftEvent for a right-side
// prefix event.
func (s *joinState) processRightEvent(rRec, rPos int) {
	tok := s.r[rRec][rPos]
	rLen := len(s.r[rRec])

	for _, pos := range s.ixL[tok] {
		lRec := pos.rec
		lLen := len(s.l[lRec])
		s.scorePair(lRec, rRec, lLen, rLen)
	}

	s.indexPosition(s.ixR, tok, rRec, rPos, rLen)
}

// scorePair applies the length filter, candidate-set filter and dedup
// filter, scores the pair if it survives, and updates the heap.
func (s *joinState) scorePair(lRec, rRec, lLen, rLen int) {
	if s.heapFull() {
		tau := s.heapTopSim()
		if float64(lLen) < tau*float64(rLen) || float64(lLen) > float64(rLen)/tau {
			return
		}
	}

	if s.cand.Has(lRec, rRec) {
		return
	}
	if s.isCompared(lRec, rRec) {
		return
	}

	s.pairsScored++
	ov := overlap(s.l[lRec], s.r[rRec])
	sim := float64(ov) / float64(lLen+rLen-ov)

	if s.heapFull() {
		if s.heapTopSim() < sim {
			heap.Pop(s.topHeap)
			heap.Push(s.topHeap, topPair{sim: sim, lRec: lRec, rRec: rRec})
		}
	} else {
		heap.Push(s.topHeap, topPair{sim: sim, lRec: lRec, rRec: rRec})
	}
	s.markCompared(lRec, rRec)
}

// indexPosition inserts (rec, pos) into the side's inverted index only
// if its positional bound still dominates the current heap threshold.
func (s *joinState) indexPosition(index map[int][]invertedPos, tok, rec, pos, length int) {
	tau := 0.0
	if s.heapFull() {
		tau = s.heapTopSim()
	}

	indexThreshold := 1.0
	denom := length + pos
	if denom > 0 {
		indexThreshold = float64(length-pos) / float64(denom)
	}

	if indexThreshold >= tau {
		index[tok] = append(index[tok], invertedPos{rec: rec, pos: pos})
	}
}
