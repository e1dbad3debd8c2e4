package search

import "container/heap"

// Frontier is the open list of a best-first search, ordered by Score.
//
// In Dedup mode an index from key to heap entry allows the stale entry of a
// key to be removed in O(log n) when a strictly better node arrives.
type Frontier[N any, K comparable] struct {
	mode  Mode
	items itemHeap[N, K]
	byKey map[K]*item[N, K] // Dedup only
	count map[K]int         // Duplicates only
}

// NewFrontier returns an empty frontier in the given mode.
func NewFrontier[N any, K comparable](mode Mode) *Frontier[N, K] {
	f := &Frontier[N, K]{mode: mode}
	if mode == Dedup {
		f.byKey = make(map[K]*item[N, K])
	} else {
		f.count = make(map[K]int)
	}

	return f
}

// Push inserts node n under key with score s and reports whether it was kept.
// In Dedup mode a node whose key already has an entry with F not strictly
// greater than s.F is discarded.
// Complexity: O(log n).
func (f *Frontier[N, K]) Push(n N, key K, s Score) bool {
	if f.mode == Dedup {
		if old, ok := f.byKey[key]; ok {
			if s.F >= old.score.F {
				return false
			}
			heap.Remove(&f.items, old.index)
		}
	}

	it := &item[N, K]{node: n, key: key, score: s}
	heap.Push(&f.items, it)
	if f.mode == Dedup {
		f.byKey[key] = it
	} else {
		f.count[key]++
	}

	return true
}

// Pop removes and returns the best node. ok is false when the frontier is empty.
// Complexity: O(log n).
func (f *Frontier[N, K]) Pop() (n N, ok bool) {
	if len(f.items) == 0 {
		return n, false
	}
	it := heap.Pop(&f.items).(*item[N, K])
	if f.mode == Dedup {
		delete(f.byKey, it.key)
	} else {
		f.count[it.key]--
		if f.count[it.key] == 0 {
			delete(f.count, it.key)
		}
	}

	return it.node, true
}

// Peek returns the best node without removing it.
func (f *Frontier[N, K]) Peek() (n N, ok bool) {
	if len(f.items) == 0 {
		return n, false
	}

	return f.items[0].node, true
}

// Len returns the number of entries.
func (f *Frontier[N, K]) Len() int { return len(f.items) }

// Contains reports whether at least one entry with key is present.
func (f *Frontier[N, K]) Contains(key K) bool {
	if f.mode == Dedup {
		_, ok := f.byKey[key]
		return ok
	}

	return f.count[key] > 0
}

// Nodes returns the open nodes in heap order (not sorted). Used for rendering.
func (f *Frontier[N, K]) Nodes() []N {
	out := make([]N, len(f.items))
	for i, it := range f.items {
		out[i] = it.node
	}

	return out
}

// item is a heap entry; index is maintained by Swap for heap.Remove.
type item[N any, K comparable] struct {
	node  N
	key   K
	score Score
	index int
}

// itemHeap is a min-heap of *item ordered by Score.Less.
type itemHeap[N any, K comparable] []*item[N, K]

func (h itemHeap[N, K]) Len() int           { return len(h) }
func (h itemHeap[N, K]) Less(i, j int) bool { return h[i].score.Less(h[j].score) }
func (h itemHeap[N, K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap[N, K]) Push(x any) {
	it := x.(*item[N, K])
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap[N, K]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]

	return it
}
