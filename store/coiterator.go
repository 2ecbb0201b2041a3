package store

import (
	"container/heap"
	"fmt"
)

// coItem keys one pending entry: (begin, end, position of its type name in
// the caller's list). The type order position breaks (begin, end) ties, so
// the caller decides which type wins on overlap.
type coItem struct {
	begin int
	end   int
	order int
}

type coHeap []coItem

func (h coHeap) Len() int { return len(h) }

func (h coHeap) Less(i, j int) bool {
	if h[i].begin != h[j].begin {
		return h[i].begin < h[j].begin
	}
	if h[i].end != h[j].end {
		return h[i].end < h[j].end
	}
	return h[i].order < h[j].order
}

func (h coHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *coHeap) Push(x any) { *h = append(*h, x.(coItem)) }

func (h *coHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// CoIterate merges the interval entry lists of typeNames into one traversal
// globally ordered by (begin, end, type order). A k-way merge over a min
// heap: O(M log N) for N lists of average length M. Every named list must
// exist and have at least one entry to seed the merge.
func (s *Store) CoIterate(typeNames []string, f func(record *Record) bool) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	lists := make([]*entryList, len(typeNames))
	for i, typeName := range typeNames {
		list, exists := s.elements[typeName]
		if !exists {
			return fmt.Errorf("%w: '%s' has no entry list, available: %v", ErrorUnknownType, typeName, s.order)
		}
		if len(list.records) == 0 {
			return fmt.Errorf("%w: '%s' has no entries to seed the iteration", ErrorEmptyType, typeName)
		}
		lists[i] = list
	}

	// pointers[i] is the index of the next entry of the (i)th list
	pointers := make([]int, len(typeNames))

	h := &coHeap{}
	for i, list := range lists {
		first := list.records[0]
		heap.Push(h, coItem{begin: first.Begin, end: first.End, order: i})
	}

	for h.Len() > 0 {
		item := heap.Pop(h).(coItem)
		list := lists[item.order]
		record := list.records[pointers[item.order]]

		if pointers[item.order]+1 < len(list.records) {
			pointers[item.order]++
			next := list.records[pointers[item.order]]
			heap.Push(h, coItem{begin: next.Begin, end: next.End, order: item.order})
		}

		if !f(record) {
			return nil
		}
	}

	return nil
}
