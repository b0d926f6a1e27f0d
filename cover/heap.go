package cover

import "container/heap"

// boundedMaxHeap keeps at most the k candidates with the smallest distance,
// by always evicting the current largest once it grows past k. The root
// (index 0) is therefore the largest among the retained candidates — the
// k-th smallest distance overall once the heap has seen k or more items.
// A container/heap max-heap: Less is inverted from the usual min-heap
// convention so Pop discards the worst candidate instead of the best one.
type boundedMaxHeap[T any] struct {
	items []candidate[T]
}

func (h *boundedMaxHeap[T]) Len() int            { return len(h.items) }
func (h *boundedMaxHeap[T]) Less(i, j int) bool  { return h.items[i].dist > h.items[j].dist }
func (h *boundedMaxHeap[T]) Swap(i, j int)       { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *boundedMaxHeap[T]) Push(x interface{})  { h.items = append(h.items, x.(candidate[T])) }
func (h *boundedMaxHeap[T]) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	h.items = old[:n-1]

	return item
}

// kthSmallest returns the k-th smallest distance in q, or the largest
// distance in q if len(q) < k — a not-yet-full cover set falls back to
// its current worst distance as the bound.
func kthSmallest[T any](q []candidate[T], k int) float64 {
	h := &boundedMaxHeap[T]{items: make([]candidate[T], 0, k+1)}
	for _, c := range q {
		heap.Push(h, c)
		if h.Len() > k {
			heap.Pop(h)
		}
	}
	if h.Len() == 0 {
		return 0
	}

	return h.items[0].dist
}

// Result is one entry of a kNN result: a point and its distance to the
// query point that produced the result.
type Result[T any] struct {
	Point    T
	Distance float64
}

// topK returns the min(k, len(q)) candidates of q with the smallest
// distance, sorted ascending by distance. Ties among equal distances are
// returned in no particular order, per spec.
func topK[T any](q []candidate[T], k int) []Result[T] {
	h := &boundedMaxHeap[T]{items: make([]candidate[T], 0, k+1)}
	for _, c := range q {
		heap.Push(h, c)
		if h.Len() > k {
			heap.Pop(h)
		}
	}

	n := h.Len()
	out := make([]Result[T], n)
	for i := n - 1; i >= 0; i-- {
		top := heap.Pop(h).(candidate[T])
		out[i] = Result[T]{Point: top.node.Point, Distance: top.dist}
	}

	return out
}
