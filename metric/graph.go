// Package metric: ShortestPath and HopCount, two adapters that let a
// cover.Tree[string] index the vertex set of a graph and answer "k nearest
// vertices by shortest-path distance" or "by hop count" queries.
//
// Graph itself is read-only adjacency, deliberately far smaller than a full
// mutable multigraph type: no directed/undirected edge kinds, no loops
// toggle, no builder — just enough structure for Dijkstra-style relaxation
// and BFS layer counting to run against it.
package metric

import (
	"container/heap"
	"math"
)

// Graph is a read-only weighted (or unweighted) adjacency list keyed by
// vertex ID. Build one with NewGraph and AddEdge, then never mutate it
// again while a ShortestPath/HopCount adapter built over it is in use.
type Graph struct {
	weighted bool
	adj      map[string]map[string]float64
}

// NewGraph constructs an empty Graph. weighted controls whether AddEdge
// requires a meaningful weight: unweighted graphs store a weight of 1 per
// edge, so ShortestPaths over them yields hop counts too. HopCounts itself
// ignores weights and walks the graph breadth-first.
func NewGraph(weighted bool) *Graph {
	return &Graph{weighted: weighted, adj: make(map[string]map[string]float64)}
}

// AddEdge adds an undirected edge between a and b with the given weight
// (ignored, stored as 1, when the graph is unweighted). Vertices are
// created on first mention.
func (g *Graph) AddEdge(a, b string, weight float64) {
	if !g.weighted {
		weight = 1
	}
	g.ensureVertex(a)
	g.ensureVertex(b)
	g.adj[a][b] = weight
	g.adj[b][a] = weight
}

// AddVertex registers an isolated vertex with no edges, if not already
// present.
func (g *Graph) AddVertex(id string) {
	g.ensureVertex(id)
}

func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]float64)
	}
}

// HasVertex reports whether id has been registered via AddEdge or AddVertex.
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.adj[id]

	return ok
}

// Vertices returns every registered vertex ID, in no particular order.
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.adj))
	for v := range g.adj {
		out = append(out, v)
	}

	return out
}

// ShortestPaths computes the shortest-path distance from source to every
// reachable vertex, using a lazy-deletion min-heap priority queue for the
// relaxation step (push duplicates, skip stale pops via a visited set).
// Unreachable vertices are absent from the returned map. Returns
// ErrVertexNotFound if source is not registered.
func (g *Graph) ShortestPaths(source string) (map[string]float64, error) {
	if !g.HasVertex(source) {
		return nil, ErrVertexNotFound
	}

	dist := map[string]float64{source: 0}
	visited := make(map[string]bool, len(g.adj))

	pq := make(graphPQ, 0, len(g.adj))
	heap.Init(&pq)
	heap.Push(&pq, &graphItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*graphItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true

		for v, w := range g.adj[u] {
			newDist := dist[u] + w
			if existing, ok := dist[v]; ok && existing <= newDist {
				continue
			}
			dist[v] = newDist
			heap.Push(&pq, &graphItem{id: v, dist: newDist})
		}
	}

	return dist, nil
}

// HopCounts computes the hop distance (edge count, ignoring weight) from
// source to every reachable vertex via a breadth-first walk of a
// read-only adjacency list. Returns ErrVertexNotFound if source is not
// registered.
func (g *Graph) HopCounts(source string) (map[string]int, error) {
	if !g.HasVertex(source) {
		return nil, ErrVertexNotFound
	}

	dist := map[string]int{source: 0}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := range g.adj[u] {
			if _, seen := dist[v]; seen {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}

	return dist, nil
}

// NewShortestPath returns a Func[string] computing the weighted
// shortest-path distance between two vertex IDs in g, memoizing the full
// single-source computation per distinct "from" vertex seen — a cover-tree
// descent issues many distance(p, x) calls sharing the same p, so this
// amortizes to one Dijkstra run per query point rather than one per call.
// An unknown "from" or "to" vertex yields +Inf, never an error, since
// Func[T] carries no error return; call g.ShortestPaths directly to
// validate a vertex up front.
func NewShortestPath(g *Graph) Func[string] {
	memo := make(map[string]map[string]float64)

	return func(a, b string) float64 {
		dist, ok := memo[a]
		if !ok {
			computed, err := g.ShortestPaths(a)
			if err != nil {
				computed = map[string]float64{}
			}
			memo[a] = computed
			dist = computed
		}
		if d, ok := dist[b]; ok {
			return d
		}

		return math.Inf(1)
	}
}

// NewHopCount returns a Func[string] computing the hop-count distance
// between two vertex IDs in g, memoized the same way as NewShortestPath.
func NewHopCount(g *Graph) Func[string] {
	memo := make(map[string]map[string]int)

	return func(a, b string) float64 {
		dist, ok := memo[a]
		if !ok {
			computed, err := g.HopCounts(a)
			if err != nil {
				computed = map[string]int{}
			}
			memo[a] = computed
			dist = computed
		}
		if d, ok := dist[b]; ok {
			return float64(d)
		}

		return math.Inf(1)
	}
}

// graphItem is a (vertex, distance) pair ordered by distance ascending.
type graphItem struct {
	id   string
	dist float64
}

// graphPQ is a min-heap of *graphItem.
type graphPQ []*graphItem

func (pq graphPQ) Len() int            { return len(pq) }
func (pq graphPQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq graphPQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *graphPQ) Push(x interface{}) { *pq = append(*pq, x.(*graphItem)) }
func (pq *graphPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
