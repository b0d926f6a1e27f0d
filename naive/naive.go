package naive

import (
	"container/heap"

	"github.com/katalvlaran/covertree/metric"
)

// Result is one entry of a kNN result, matching cover.Result[T]'s shape so
// the two can be compared directly in tests.
type Result[T any] struct {
	Point    T
	Distance float64
}

// KNN returns the min(k, len(points)) entries of points closest to query
// under distance, ordered ascending by distance, computed by a plain
// linear scan — no pruning, no tree structure. A k <= 0 or an empty
// points slice yields an empty result.
func KNN[T any](points []T, distance metric.Func[T], k int, query T) []Result[T] {
	if k <= 0 || len(points) == 0 {
		return nil
	}

	h := &boundedMaxHeap[T]{items: make([]item[T], 0, k+1)}
	for _, p := range points {
		heap.Push(h, item[T]{point: p, dist: distance(query, p)})
		if h.Len() > k {
			heap.Pop(h)
		}
	}

	n := h.Len()
	out := make([]Result[T], n)
	for i := n - 1; i >= 0; i-- {
		top := heap.Pop(h).(item[T])
		out[i] = Result[T]{Point: top.point, Distance: top.dist}
	}

	return out
}

type item[T any] struct {
	point T
	dist  float64
}

// boundedMaxHeap keeps at most k items, evicting the current largest once
// it grows past k — the same pattern cover/heap.go uses, reimplemented
// here since naive must not depend on cover's unexported internals.
type boundedMaxHeap[T any] struct {
	items []item[T]
}

func (h *boundedMaxHeap[T]) Len() int           { return len(h.items) }
func (h *boundedMaxHeap[T]) Less(i, j int) bool { return h.items[i].dist > h.items[j].dist }
func (h *boundedMaxHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *boundedMaxHeap[T]) Push(x interface{}) { h.items = append(h.items, x.(item[T])) }
func (h *boundedMaxHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]

	return it
}
