package dijkstra

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvheap/core"
	"github.com/katalvlaran/lvheap/fibheap"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in g. It accepts functional options to customize
// behavior (ReturnPath, MaxDistance, InfEdgeThreshold, Logger).
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable).
//   - prev: optional predecessor map if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     For unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O(E + V log V): every vertex is inserted into the Fibonacci heap
//     at most once and extracted at most once; every improving relaxation is
//     an O(1) amortized DecreaseKey.
//   - Space: O(V)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	// 1) Build Options
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs, cheapest checks first.
	if cfg.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// 3) Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	vertices := g.Vertices()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, len(vertices)),
		visited: make(map[string]bool, len(vertices)),
		queued:  make(map[string]fibheap.Handle, len(vertices)),
		owner:   make(map[fibheap.Handle]string, len(vertices)),
		pq: fibheap.New[int64](
			fibheap.WithLogger(cfg.Logger),
			fibheap.WithCapacity(len(vertices)),
		),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]string, len(vertices))
	}

	// 4) Initialize state and run the main loop.
	r.init(vertices)
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	st := r.pq.Stats()
	cfg.Logger.Debug("dijkstra finished",
		zap.String("source", cfg.Source),
		zap.Int("vertices", len(vertices)),
		zap.Int("settled", r.settled),
		zap.Uint64("decrease_keys", st.DecreaseKeys),
		zap.Uint64("cuts", st.Cuts))

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64  // vertex ID → best known distance from Source
	prev    map[string]string // vertex ID → predecessor; nil unless ReturnPath
	visited map[string]bool   // distance finalized

	pq      *fibheap.Heap[int64]
	queued  map[string]fibheap.Handle // vertices currently in pq
	owner   map[fibheap.Handle]string // inverse of queued
	settled int
}

// init sets dist to +∞ everywhere and queues Source at distance 0.
func (r *runner) init(vertices []string) {
	for _, v := range vertices {
		r.dist[v] = math.MaxInt64
		if r.prev != nil {
			r.prev[v] = ""
		}
	}
	src := r.options.Source
	r.dist[src] = 0
	hd := r.pq.Insert(0)
	r.queued[src], r.owner[hd] = hd, src
}

// enqueue inserts v at distance d, or lowers its key when v is already queued.
func (r *runner) enqueue(v string, d int64) error {
	if hd, ok := r.queued[v]; ok {
		return r.pq.DecreaseKey(hd, d)
	}
	hd := r.pq.Insert(d)
	r.queued[v] = hd
	r.owner[hd] = v

	return nil
}

// process repeatedly settles the closest queued vertex and relaxes its edges.
// It stops when the queue is empty or the closest distance exceeds MaxDistance.
func (r *runner) process() error {
	for {
		hd, d, ok := r.pq.ExtractMin()
		if !ok {
			return nil
		}
		u := r.owner[hd]
		delete(r.owner, hd)
		delete(r.queued, u)

		if d > r.options.MaxDistance {
			return nil
		}
		r.visited[u] = true
		r.settled++

		if err := r.relax(u); err != nil {
			return err
		}
	}
}

// relax examines each edge outgoing from u and improves neighbor distances.
// Edges with weight ≥ InfEdgeThreshold are impassable.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %q: %w", u, err)
	}

	for _, e := range neighbors {
		v, w := e.To, e.Weight
		if r.visited[v] || w >= r.options.InfEdgeThreshold {
			continue
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, u, v, w)
		}

		// dist[u] + w would overflow int64.
		if w > math.MaxInt64-r.dist[u] {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		if err := r.enqueue(v, newDist); err != nil {
			return fmt.Errorf("dijkstra: requeue %q: %w", v, err)
		}
	}

	return nil
}
