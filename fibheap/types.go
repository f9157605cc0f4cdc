package fibheap

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Heap operations.
var (
	// ErrInvalidKey indicates that DecreaseKey received a key that is not
	// strictly lower than the node's current key, or a NaN.
	ErrInvalidKey = errors.New("fibheap: new key must be strictly lower than current key")

	// ErrStaleHandle indicates that a Handle does not refer to a live node:
	// it is the zero Handle, its node was extracted or deleted, the heap was
	// cleared, or it belongs to another heap.
	ErrStaleHandle = errors.New("fibheap: handle does not refer to a live node")

	// ErrCorrupt is returned by Validate when a structural invariant is broken.
	ErrCorrupt = errors.New("fibheap: structural invariant violated")

	// ErrBadCapacity indicates a negative capacity passed to WithCapacity.
	ErrBadCapacity = errors.New("fibheap: capacity must be non-negative")
)

// Key is the set of key types a Heap can order.
type Key interface {
	constraints.Integer | constraints.Float
}

// none marks an absent parent, child or min reference.
const none = -1

// Handle identifies a node inserted into a Heap.
//
// The zero Handle never refers to a node. A Handle is comparable and can be
// used as a map key. It carries the id of the heap that issued it, so a
// Handle is never live in any other heap.
type Handle struct {
	heap  uint64
	index int
	seq   uint64
}

// IsZero reports whether h is the zero Handle (used for "no node").
func (h Handle) IsZero() bool { return h.seq == 0 }

// String renders the handle as "#index.seq", or "#-" for the zero Handle.
func (h Handle) String() string {
	if h.IsZero() {
		return "#-"
	}

	return fmt.Sprintf("#%d.%d", h.index, h.seq)
}

// Bound selects how the consolidation scratch array is sized.
type Bound int

const (
	// BoundLogPhi sizes the array by floor(log_phi(n)) + 2, the tight degree bound.
	BoundLogPhi Bound = iota

	// BoundConservative sizes the array by the live element count n.
	// Always safe, costs O(n) per consolidation.
	BoundConservative
)

// String returns the option name of b.
func (b Bound) String() string {
	switch b {
	case BoundLogPhi:
		return "logphi"
	case BoundConservative:
		return "conservative"
	default:
		return fmt.Sprintf("Bound(%d)", int(b))
	}
}

// Options configures a Heap.
type Options struct {
	Logger   *zap.Logger // Debug-level structural events; never nil after DefaultOptions
	Bound    Bound       // consolidation scratch sizing
	Capacity int         // arena slots to preallocate
}

// Option represents a functional option for configuring a Heap.
type Option func(*Options)

// WithLogger installs a zap logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithConsolidationBound selects the consolidation scratch sizing.
func WithConsolidationBound(b Bound) Option {
	return func(o *Options) {
		o.Bound = b
	}
}

// WithCapacity preallocates room for n nodes.
// Panics with ErrBadCapacity if n < 0.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// DefaultOptions returns the configuration used when no Option is given:
// a no-op logger, BoundLogPhi, and no preallocation.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		Bound:    BoundLogPhi,
		Capacity: 0,
	}
}

// Stats counts structural work done by a Heap since it was created.
// Counters are monotonic and survive Clear.
type Stats struct {
	Inserts        uint64 // successful Insert calls
	Extractions    uint64 // nodes removed by ExtractMin
	Deletions      uint64 // nodes removed by Delete
	DecreaseKeys   uint64 // successful DecreaseKey calls
	Rejections     uint64 // DecreaseKey/Delete calls that failed validation
	Cuts           uint64 // nodes moved to the root list by cut
	CascadingCuts  uint64 // cuts performed while cascading up marked ancestors
	Marks          uint64 // nodes marked after losing their first child
	Links          uint64 // roots linked under another root during consolidation
	Consolidations uint64 // consolidation passes
	Clears         uint64 // Clear calls
}

// NodeInfo is a read-only snapshot of one node, as seen by Inspect and Walk.
// Related nodes are reported as Handles; the zero Handle means "none".
type NodeInfo[K Key] struct {
	Handle Handle
	Key    K
	Parent Handle
	Child  Handle
	Left   Handle
	Right  Handle
	Degree int
	Marked bool
	Depth  int // 0 for roots
}

// IsRoot reports whether the node has no parent.
func (n NodeInfo[K]) IsRoot() bool { return n.Parent.IsZero() }
