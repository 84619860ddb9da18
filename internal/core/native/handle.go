package native

import "fmt"

// Kind tags the engine object a Handle refers to.
type Kind interface {
	Plane | PlaneDelegate
	kindName() string
}

type (
	// Plane is a plane node object owned by the engine.
	Plane struct{}
	// PlaneDelegate is the engine-side companion that bridges plane events.
	PlaneDelegate struct{}
)

func (Plane) kindName() string         { return "plane" }
func (PlaneDelegate) kindName() string { return "plane-delegate" }

// Handle is an opaque reference to an engine object of kind K.
// Handles of different kinds are distinct types. The zero Handle is invalid.
type Handle[K Kind] struct {
	ref uint64
}

// NewHandle wraps an engine reference. Only engine implementations mint handles.
func NewHandle[K Kind](ref uint64) Handle[K] {
	return Handle[K]{ref: ref}
}

func (h Handle[K]) Ref() uint64 { return h.ref }

func (h Handle[K]) IsValid() bool { return h.ref != 0 }

func (h Handle[K]) String() string {
	var k K
	return fmt.Sprintf("%s#%d", k.kindName(), h.ref)
}
