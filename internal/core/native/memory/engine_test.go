package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/arscene/internal/core/native"
	"github.com/zeusync/arscene/internal/core/observability/log"
)

func newTestEngine(opts ...Option) *Engine {
	return New(append([]Option{WithLogger(log.NewNop())}, opts...)...)
}

func TestEngine_PlaneLifecycle(t *testing.T) {
	e := newTestEngine()

	p, err := e.CreatePlane(0.5, 0.75)
	require.NoError(t, err)
	require.True(t, p.IsValid())

	d, err := e.CreatePlaneDelegate(p)
	require.NoError(t, err)
	assert.NotEqual(t, p.Ref(), d.Ref())

	bound, ok := e.DelegateOf(p)
	require.True(t, ok)
	assert.Equal(t, d, bound)

	e.SetMinWidth(p, 2)
	e.SetMinHeight(p, 3)
	w, h, ok := e.PlaneDimensions(p)
	require.True(t, ok)
	assert.Equal(t, float32(2), w)
	assert.Equal(t, float32(3), h)

	e.DestroyPlaneDelegate(d)
	e.DestroyPlane(p)

	s := e.Stats()
	assert.Zero(t, s.LivePlanes)
	assert.Zero(t, s.LiveDelegates)
	assert.Equal(t, uint64(1), s.PlanesCreated)
	assert.Equal(t, uint64(1), s.PlanesReleased)
	assert.Zero(t, s.Violations)
}

func TestEngine_RefsNeverReused(t *testing.T) {
	e := newTestEngine()

	p1, err := e.CreatePlane(1, 1)
	require.NoError(t, err)
	e.DestroyPlane(p1)

	p2, err := e.CreatePlane(1, 1)
	require.NoError(t, err)
	assert.Greater(t, p2.Ref(), p1.Ref())

	_, _, ok := e.PlaneDimensions(p1)
	assert.False(t, ok)
}

func TestEngine_Violations(t *testing.T) {
	tests := []struct {
		name string
		run  func(e *Engine)
	}{
		{"destroy unknown plane", func(e *Engine) {
			e.DestroyPlane(native.NewHandle[native.Plane](42))
		}},
		{"destroy unknown delegate", func(e *Engine) {
			e.DestroyPlaneDelegate(native.NewHandle[native.PlaneDelegate](42))
		}},
		{"double destroy", func(e *Engine) {
			p, _ := e.CreatePlane(1, 1)
			e.DestroyPlane(p)
			e.DestroyPlane(p)
		}},
		{"plane before delegate", func(e *Engine) {
			p, _ := e.CreatePlane(1, 1)
			_, _ = e.CreatePlaneDelegate(p)
			e.DestroyPlane(p)
		}},
		{"setter on released plane", func(e *Engine) {
			p, _ := e.CreatePlane(1, 1)
			e.DestroyPlane(p)
			e.SetMinWidth(p, 3)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			tt.run(e)
			assert.Equal(t, uint64(1), e.Stats().Violations)
		})
	}
}

func TestEngine_PlaneBeforeDelegateDropsDelegate(t *testing.T) {
	e := newTestEngine()
	p, _ := e.CreatePlane(1, 1)
	_, err := e.CreatePlaneDelegate(p)
	require.NoError(t, err)

	e.DestroyPlane(p)
	assert.Zero(t, e.Stats().LiveDelegates)
}

func TestEngine_DelegateForUnknownPlane(t *testing.T) {
	e := newTestEngine()
	d, err := e.CreatePlaneDelegate(native.NewHandle[native.Plane](5))
	assert.Error(t, err)
	assert.False(t, d.IsValid())
}

func TestEngine_Limit(t *testing.T) {
	e := newTestEngine(WithLimit(1))

	p, err := e.CreatePlane(1, 1)
	require.NoError(t, err)

	_, err = e.CreatePlaneDelegate(p)
	assert.ErrorIs(t, err, ErrEngineFull)
	_, err = e.CreatePlane(1, 1)
	assert.ErrorIs(t, err, ErrEngineFull)
}

func TestEngine_Digest(t *testing.T) {
	empty := newTestEngine().Digest()

	build := func() *Engine {
		e := newTestEngine()
		p, _ := e.CreatePlane(0.5, 0.5)
		_, _ = e.CreatePlaneDelegate(p)
		e.SetMinWidth(p, 1)
		return e
	}
	a, b := build(), build()
	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, empty, a.Digest())

	p := native.NewHandle[native.Plane](1)
	b.SetMinHeight(p, 9)
	assert.NotEqual(t, a.Digest(), b.Digest())

	d, ok := a.DelegateOf(p)
	require.True(t, ok)
	a.DestroyPlaneDelegate(d)
	a.DestroyPlane(p)
	assert.Equal(t, empty, a.Digest())
}

func TestEngine_ConcurrentPlanes(t *testing.T) {
	e := newTestEngine()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := e.CreatePlane(1, 1)
			if err != nil {
				return
			}
			d, err := e.CreatePlaneDelegate(p)
			if err != nil {
				return
			}
			e.SetMinWidth(p, 2)
			e.DestroyPlaneDelegate(d)
			e.DestroyPlane(p)
		}()
	}
	wg.Wait()

	s := e.Stats()
	assert.Equal(t, uint64(32), s.PlanesCreated)
	assert.Zero(t, s.LivePlanes)
	assert.Zero(t, s.Violations)
}
