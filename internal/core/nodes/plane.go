package nodes

import (
	"github.com/google/uuid"

	"github.com/zeusync/arscene/internal/core/native"
	"github.com/zeusync/arscene/internal/core/observability/log"
)

// Plane fronts one engine plane object and its delegate.
// Dimensions are forwarded as given and never cached here.
type Plane struct {
	id     uuid.UUID
	engine native.PlaneEngine
	node   *Node[native.Plane, native.PlaneDelegate]
	logger log.Log
}

type planeOptions struct {
	id     uuid.UUID
	logger log.Log
}

type PlaneOption func(*planeOptions)

func WithLogger(logger log.Log) PlaneOption {
	return func(o *planeOptions) { o.logger = logger }
}

func WithID(id uuid.UUID) PlaneOption {
	return func(o *planeOptions) { o.id = id }
}

func planeDelegateHooks(engine native.PlaneEngine) DelegateHooks[native.Plane, native.PlaneDelegate] {
	return DelegateHooks[native.Plane, native.PlaneDelegate]{
		Create:  engine.CreatePlaneDelegate,
		Destroy: engine.DestroyPlaneDelegate,
	}
}

// NewPlane allocates a plane with the given minimum dimensions and then its
// delegate. Engine errors are returned unchanged.
func NewPlane(engine native.PlaneEngine, minWidth, minHeight float32, opts ...PlaneOption) (*Plane, error) {
	o := planeOptions{logger: log.Provide()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}

	ref, err := engine.CreatePlane(minWidth, minHeight)
	if err != nil {
		return nil, err
	}
	node, err := NewNode(ref, planeDelegateHooks(engine), engine.DestroyPlane)
	if err != nil {
		return nil, err
	}

	p := &Plane{
		id:     o.id,
		engine: engine,
		node:   node,
		logger: o.logger.With(log.Stringer("plane_id", o.id)),
	}
	p.logger.Debug("plane created", log.Float32("min_width", minWidth), log.Float32("min_height", minHeight))
	return p, nil
}

func (p *Plane) ID() uuid.UUID { return p.id }

func (p *Plane) State() State { return p.node.State() }

// Destroy releases the delegate and then the plane. Calling it again
// forwards nothing and returns ErrNodeDestroyed.
func (p *Plane) Destroy() error {
	if err := p.node.Destroy(); err != nil {
		p.logger.Warn("plane destroyed twice")
		return err
	}
	p.logger.Debug("plane destroyed")
	return nil
}

func (p *Plane) SetMinWidth(minWidth float32) error {
	return p.node.With(func(ref native.Handle[native.Plane]) {
		p.engine.SetMinWidth(ref, minWidth)
	})
}

func (p *Plane) SetMinHeight(minHeight float32) error {
	return p.node.With(func(ref native.Handle[native.Plane]) {
		p.engine.SetMinHeight(ref, minHeight)
	})
}
