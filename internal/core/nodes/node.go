package nodes

import (
	"sync"

	"github.com/zeusync/arscene/internal/core/native"
)

// State is the lifecycle state of a node. StateDestroyed is terminal.
type State uint8

const (
	StateAlive State = iota
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateAlive:
		return "alive"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// DelegateHooks allocate and release the engine-side delegate of a node of kind N.
type DelegateHooks[N, D native.Kind] struct {
	Create  func(native.Handle[N]) (native.Handle[D], error)
	Destroy func(native.Handle[D])
}

// Node owns one engine object of kind N and its delegate of kind D.
//
// The delegate is allocated after the object and released before it.
// Once destroyed, a node forwards nothing and every operation reports
// ErrNodeDestroyed.
type Node[N, D native.Kind] struct {
	mu       sync.Mutex
	state    State
	ref      native.Handle[N]
	delegate native.Handle[D]
	hooks    DelegateHooks[N, D]
	release  func(native.Handle[N])
}

// NewNode takes ownership of ref and allocates its delegate. If the delegate
// cannot be allocated, ref is released and the hook's error is returned as is.
func NewNode[N, D native.Kind](ref native.Handle[N], hooks DelegateHooks[N, D], release func(native.Handle[N])) (*Node[N, D], error) {
	delegate, err := hooks.Create(ref)
	if err != nil {
		release(ref)
		return nil, err
	}
	return &Node[N, D]{
		state:    StateAlive,
		ref:      ref,
		delegate: delegate,
		hooks:    hooks,
		release:  release,
	}, nil
}

func (n *Node[N, D]) State() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Destroy releases the delegate, then the object.
func (n *Node[N, D]) Destroy() error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state == StateDestroyed {
		return ErrNodeDestroyed
	}
	n.state = StateDestroyed

	n.hooks.Destroy(n.delegate)
	n.release(n.ref)

	n.delegate = native.Handle[D]{}
	n.ref = native.Handle[N]{}
	return nil
}

// With runs fn against the object handle while the node is alive.
func (n *Node[N, D]) With(fn func(native.Handle[N])) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.state == StateDestroyed {
		return ErrNodeDestroyed
	}
	fn(n.ref)
	return nil
}
