// Package memory implements native.PlaneEngine in process.
//
// Objects live in an arena keyed by reference. References start at 1 and
// are never reused, so a stale handle can always be told apart from a live one.
// Misuse (unknown handles, destroying a plane whose delegate is still alive)
// is logged and counted, never fatal.
package memory

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/arscene/internal/core/native"
	"github.com/zeusync/arscene/internal/core/observability/log"
)

var ErrEngineFull = errors.New("engine object limit reached")

var _ native.PlaneEngine = (*Engine)(nil)

type planeObject struct {
	minWidth  float32
	minHeight float32
	delegate  uint64
}

type delegateObject struct {
	plane uint64
}

// Stats is a snapshot of engine counters.
type Stats struct {
	LivePlanes     int
	LiveDelegates  int
	PlanesCreated  uint64
	PlanesReleased uint64
	Violations     uint64
}

type Engine struct {
	mu        sync.RWMutex
	next      uint64
	limit     int
	planes    map[uint64]*planeObject
	delegates map[uint64]*delegateObject
	stats     Stats
	logger    log.Log
}

type Option func(*Engine)

func WithLogger(logger log.Log) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithLimit caps the number of live objects; 0 means unlimited.
func WithLimit(limit int) Option {
	return func(e *Engine) { e.limit = limit }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		planes:    make(map[uint64]*planeObject),
		delegates: make(map[uint64]*delegateObject),
		logger:    log.Provide(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) CreatePlane(minWidth, minHeight float32) (native.Handle[native.Plane], error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.fullLocked() {
		return native.Handle[native.Plane]{}, fmt.Errorf("create plane: %w", ErrEngineFull)
	}
	ref := e.allocLocked()
	e.planes[ref] = &planeObject{minWidth: minWidth, minHeight: minHeight}
	e.stats.PlanesCreated++

	h := native.NewHandle[native.Plane](ref)
	e.logger.Debug("plane allocated",
		log.Stringer("handle", h),
		log.Float32("min_width", minWidth),
		log.Float32("min_height", minHeight),
	)
	return h, nil
}

func (e *Engine) DestroyPlane(plane native.Handle[native.Plane]) {
	e.mu.Lock()
	defer e.mu.Unlock()

	obj, ok := e.planes[plane.Ref()]
	if !ok {
		e.violationLocked("destroy of unknown plane", plane)
		return
	}
	if obj.delegate != 0 {
		// The delegate may still reference the plane; drop it with the plane.
		e.violationLocked("plane destroyed before its delegate", plane)
		delete(e.delegates, obj.delegate)
	}
	delete(e.planes, plane.Ref())
	e.stats.PlanesReleased++
	e.logger.Debug("plane released", log.Stringer("handle", plane))
}

func (e *Engine) CreatePlaneDelegate(plane native.Handle[native.Plane]) (native.Handle[native.PlaneDelegate], error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	obj, ok := e.planes[plane.Ref()]
	if !ok {
		e.violationLocked("delegate requested for unknown plane", plane)
		return native.Handle[native.PlaneDelegate]{}, fmt.Errorf("create delegate for %s: unknown plane", plane)
	}
	if e.fullLocked() {
		return native.Handle[native.PlaneDelegate]{}, fmt.Errorf("create delegate for %s: %w", plane, ErrEngineFull)
	}
	if obj.delegate != 0 {
		e.violationLocked("plane already has a delegate", plane)
		delete(e.delegates, obj.delegate)
	}

	ref := e.allocLocked()
	e.delegates[ref] = &delegateObject{plane: plane.Ref()}
	obj.delegate = ref

	h := native.NewHandle[native.PlaneDelegate](ref)
	e.logger.Debug("plane delegate allocated", log.Stringer("handle", h), log.Stringer("plane", plane))
	return h, nil
}

func (e *Engine) DestroyPlaneDelegate(delegate native.Handle[native.PlaneDelegate]) {
	e.mu.Lock()
	defer e.mu.Unlock()

	obj, ok := e.delegates[delegate.Ref()]
	if !ok {
		e.violationLocked("destroy of unknown plane delegate", delegate)
		return
	}
	if p, ok := e.planes[obj.plane]; ok && p.delegate == delegate.Ref() {
		p.delegate = 0
	}
	delete(e.delegates, delegate.Ref())
	e.logger.Debug("plane delegate released", log.Stringer("handle", delegate))
}

func (e *Engine) SetMinWidth(plane native.Handle[native.Plane], minWidth float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	obj, ok := e.planes[plane.Ref()]
	if !ok {
		e.violationLocked("min width set on unknown plane", plane)
		return
	}
	obj.minWidth = minWidth
}

func (e *Engine) SetMinHeight(plane native.Handle[native.Plane], minHeight float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	obj, ok := e.planes[plane.Ref()]
	if !ok {
		e.violationLocked("min height set on unknown plane", plane)
		return
	}
	obj.minHeight = minHeight
}

// PlaneDimensions reports the current minimum dimensions of a live plane.
func (e *Engine) PlaneDimensions(plane native.Handle[native.Plane]) (minWidth, minHeight float32, ok bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	obj, ok := e.planes[plane.Ref()]
	if !ok {
		return 0, 0, false
	}
	return obj.minWidth, obj.minHeight, true
}

// DelegateOf reports the live delegate bound to plane, if any.
func (e *Engine) DelegateOf(plane native.Handle[native.Plane]) (native.Handle[native.PlaneDelegate], bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	obj, ok := e.planes[plane.Ref()]
	if !ok || obj.delegate == 0 {
		return native.Handle[native.PlaneDelegate]{}, false
	}
	return native.NewHandle[native.PlaneDelegate](obj.delegate), true
}

func (e *Engine) Stats() Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s := e.stats
	s.LivePlanes = len(e.planes)
	s.LiveDelegates = len(e.delegates)
	return s
}

// Digest hashes the live objects in reference order. Engines holding the
// same objects with the same dimensions produce the same digest.
func (e *Engine) Digest() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	refs := make([]uint64, 0, len(e.planes)+len(e.delegates))
	for ref := range e.planes {
		refs = append(refs, ref)
	}
	for ref := range e.delegates {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })

	d := xxhash.New()
	buf := make([]byte, 0, 64)
	for _, ref := range refs {
		buf = buf[:0]
		if p, ok := e.planes[ref]; ok {
			buf = append(buf, "plane "...)
			buf = strconv.AppendUint(buf, ref, 10)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, float64(p.minWidth), 'g', -1, 32)
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, float64(p.minHeight), 'g', -1, 32)
		} else {
			buf = append(buf, "delegate "...)
			buf = strconv.AppendUint(buf, ref, 10)
			buf = append(buf, " plane="...)
			buf = strconv.AppendUint(buf, e.delegates[ref].plane, 10)
		}
		buf = append(buf, '\n')
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

func (e *Engine) allocLocked() uint64 {
	e.next++
	return e.next
}

func (e *Engine) fullLocked() bool {
	return e.limit > 0 && len(e.planes)+len(e.delegates) >= e.limit
}

func (e *Engine) violationLocked(msg string, h fmt.Stringer) {
	e.stats.Violations++
	e.logger.Error(msg, log.Stringer("handle", h))
}
