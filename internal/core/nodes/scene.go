package nodes

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/zeusync/arscene/internal/core/events/bus"
	"github.com/zeusync/arscene/internal/core/native"
	"github.com/zeusync/arscene/internal/core/observability/log"
)

// Event types published by a Scene.
const (
	EventNodeCreated   = "node.created"
	EventNodeDestroyed = "node.destroyed"
	EventNodeMinWidth  = "node.min_width"
	EventNodeMinHeight = "node.min_height"
)

const sceneEventSource = "scene"

// NodeEvent is the payload of every Scene event. Value is set for dimension changes.
type NodeEvent struct {
	Name  string
	ID    uuid.UUID
	Value float32
}

// Scene keeps named planes alive on a single engine.
type Scene struct {
	mu      sync.RWMutex
	engine  native.PlaneEngine
	planes  map[string]*Plane
	events  bus.EventBus
	logger  log.Log
	workers int
}

type SceneOption func(*Scene)

func WithSceneLogger(logger log.Log) SceneOption {
	return func(s *Scene) { s.logger = logger }
}

func WithEventBus(b bus.EventBus) SceneOption {
	return func(s *Scene) { s.events = b }
}

// WithTeardownWorkers bounds the parallelism of DestroyAll; 0 means unbounded.
func WithTeardownWorkers(n int) SceneOption {
	return func(s *Scene) { s.workers = n }
}

func NewScene(engine native.PlaneEngine, opts ...SceneOption) *Scene {
	s := &Scene{
		engine: engine,
		planes: make(map[string]*Plane),
		logger: log.Provide(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.events == nil {
		s.events = bus.New()
	}
	return s
}

func (s *Scene) Events() bus.EventBus { return s.events }

func (s *Scene) AddPlane(name string, minWidth, minHeight float32) (*Plane, error) {
	s.mu.Lock()
	if _, exists := s.planes[name]; exists {
		s.mu.Unlock()
		return nil, fmt.Errorf("add plane %q: %w", name, ErrNodeExists)
	}
	p, err := NewPlane(s.engine, minWidth, minHeight, WithLogger(s.logger.With(log.String("node", name))))
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("add plane %q: %w", name, err)
	}
	s.planes[name] = p
	s.mu.Unlock()

	s.publish(EventNodeCreated, NodeEvent{Name: name, ID: p.ID()})
	return p, nil
}

func (s *Scene) Plane(name string) (*Plane, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.planes[name]
	if !ok {
		return nil, fmt.Errorf("plane %q: %w", name, ErrNodeNotFound)
	}
	return p, nil
}

// Names returns the plane names in sorted order.
func (s *Scene) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.planes))
	for name := range s.planes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.planes)
}

func (s *Scene) SetMinWidth(name string, minWidth float32) error {
	p, err := s.Plane(name)
	if err != nil {
		return err
	}
	if err = p.SetMinWidth(minWidth); err != nil {
		return fmt.Errorf("plane %q: %w", name, err)
	}
	s.publish(EventNodeMinWidth, NodeEvent{Name: name, ID: p.ID(), Value: minWidth})
	return nil
}

func (s *Scene) SetMinHeight(name string, minHeight float32) error {
	p, err := s.Plane(name)
	if err != nil {
		return err
	}
	if err = p.SetMinHeight(minHeight); err != nil {
		return fmt.Errorf("plane %q: %w", name, err)
	}
	s.publish(EventNodeMinHeight, NodeEvent{Name: name, ID: p.ID(), Value: minHeight})
	return nil
}

// RemovePlane destroys the named plane and forgets it.
func (s *Scene) RemovePlane(name string) error {
	s.mu.Lock()
	p, ok := s.planes[name]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("remove plane %q: %w", name, ErrNodeNotFound)
	}
	delete(s.planes, name)
	s.mu.Unlock()

	return s.destroy(name, p)
}

// DestroyAll destroys every plane in parallel. Planes that were not reached
// because ctx was cancelled stay in the scene.
func (s *Scene) DestroyAll(ctx context.Context) error {
	s.mu.RLock()
	pending := make(map[string]*Plane, len(s.planes))
	for name, p := range s.planes {
		pending[name] = p
	}
	s.mu.RUnlock()

	g, gctx := errgroup.WithContext(ctx)
	if s.workers > 0 {
		g.SetLimit(s.workers)
	}
	for name, p := range pending {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s.mu.Lock()
			if s.planes[name] != p {
				s.mu.Unlock()
				return nil
			}
			delete(s.planes, name)
			s.mu.Unlock()
			return s.destroy(name, p)
		})
	}
	return g.Wait()
}

func (s *Scene) destroy(name string, p *Plane) error {
	err := p.Destroy()
	if errors.Is(err, ErrNodeDestroyed) {
		// Destroyed directly by its owner; nothing left to release.
		return nil
	}
	if err != nil {
		return fmt.Errorf("destroy plane %q: %w", name, err)
	}
	s.publish(EventNodeDestroyed, NodeEvent{Name: name, ID: p.ID()})
	return nil
}

func (s *Scene) publish(eventType string, payload NodeEvent) {
	if err := s.events.Publish(bus.NewEvent(eventType, sceneEventSource, payload)); err != nil {
		s.logger.Warn("scene event handler failed",
			log.String("event", eventType),
			log.String("node", payload.Name),
			log.Err(err),
		)
	}
}
