// Package train implements the write-only training accumulator:
// trigram tuple counting over a sliding window, a bounded top-K
// sieve, and the rollup into a queryable Engine.
package train

import (
	"container/heap"

	"github.com/mengyao/hanyin/internal/config"
	"github.com/mengyao/hanyin/internal/model"
)

// epsilon is the "no/unknown predecessor" sentinel used in tuple
// slots.
const epsilon = ""

// Tuple is a sliding-window trigram key (w-2, w-1, w0).
type Tuple struct {
	W2, W1, W0 string
}

// Store accumulates trigram tuple counts. It is exclusively owned by
// the training job until Extract consumes it.
type Store struct {
	counts map[Tuple]int64
}

// New returns an empty Store.
func New() *Store {
	return &Store{counts: make(map[Tuple]int64)}
}

// AddTuple normalizes and inserts one sliding-window tuple:
//   - if w0 is epsilon, the tuple is discarded (nothing to predict);
//   - if w1 is epsilon, w2 is forced to epsilon too (no trigram
//     context when the immediate predecessor is missing);
//   - otherwise the tuple is inserted as-is and its count incremented.
func (s *Store) AddTuple(w2, w1, w0 string) {
	if w0 == epsilon {
		return
	}
	if w1 == epsilon {
		w2 = epsilon
	}
	s.counts[Tuple{W2: w2, W1: w1, W0: w0}]++
}

// Merge folds other's counts into s, for combining per-worker shards
// produced by parallel corpus ingestion.
func (s *Store) Merge(other *Store) {
	for t, c := range other.counts {
		s.counts[t] += c
	}
}

// Len reports the number of distinct tuples currently accumulated.
func (s *Store) Len() int {
	return len(s.counts)
}

// sieveItem is one entry in the bounded min-heap used to keep the
// top-K most frequent tuples by count.
type sieveItem struct {
	tuple Tuple
	count int64
}

// sieveHeap is a min-heap ordered by count, so the least-frequent kept
// tuple is always the one evicted when the heap exceeds capacity.
type sieveHeap []sieveItem

func (h sieveHeap) Len() int            { return len(h) }
func (h sieveHeap) Less(i, j int) bool  { return h[i].count < h[j].count }
func (h sieveHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *sieveHeap) Push(x interface{}) { *h = append(*h, x.(sieveItem)) }
func (h *sieveHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Extract keeps the top-K most frequent trigrams by count (K =
// scoring.SieveSize) using a bounded min-heap sieve, then rolls them
// up into a new Engine:
//
//	three_gram[w2][w1][w0] = c
//	two_gram[w1][w0]      += c
//	counter[w1]           += c
//	total                 += c
//
// Note the counter rollup tallies mass on w1 (the middle word of the
// trigram slot), not w0. Counter is a "frequency as immediate
// predictor context" table, not a unigram distribution.
func (s *Store) Extract(scoring config.Scoring) *model.Engine {
	h := &sieveHeap{}
	heap.Init(h)
	for t, c := range s.counts {
		heap.Push(h, sieveItem{tuple: t, count: c})
		if h.Len() > scoring.SieveSize {
			heap.Pop(h)
		}
	}

	eng := model.New(scoring)
	for h.Len() > 0 {
		item := heap.Pop(h).(sieveItem)
		w2, w1, w0, c := item.tuple.W2, item.tuple.W1, item.tuple.W0, item.count

		mid, ok := eng.ThreeGram[w2]
		if !ok {
			mid = make(map[string]map[string]int64)
			eng.ThreeGram[w2] = mid
		}
		leaf, ok := mid[w1]
		if !ok {
			leaf = make(map[string]int64)
			mid[w1] = leaf
		}
		leaf[w0] = c

		twoBucket, ok := eng.TwoGram[w1]
		if !ok {
			twoBucket = make(map[string]int64)
			eng.TwoGram[w1] = twoBucket
		}
		twoBucket[w0] += c

		eng.Counter[w1] += c
		eng.Total += c
	}

	eng.InitTrie()
	return eng
}
