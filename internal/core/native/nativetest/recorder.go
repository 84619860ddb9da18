// Package nativetest provides a recording PlaneEngine for tests and dry runs.
package nativetest

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/zeusync/arscene/internal/core/native"
)

// Op names a PlaneEngine operation.
type Op string

const (
	OpCreatePlane          Op = "create-plane"
	OpDestroyPlane         Op = "destroy-plane"
	OpCreatePlaneDelegate  Op = "create-plane-delegate"
	OpDestroyPlaneDelegate Op = "destroy-plane-delegate"
	OpSetMinWidth          Op = "set-min-width"
	OpSetMinHeight         Op = "set-min-height"
)

// Call is one recorded engine call. Ref is the handle the call returned or
// targeted; Values holds the float arguments in order.
type Call struct {
	Op     Op
	Ref    uint64
	Values []float32
}

func (c Call) String() string {
	var b strings.Builder
	b.WriteString(string(c.Op))
	b.WriteString(" ref=")
	b.WriteString(strconv.FormatUint(c.Ref, 10))
	for _, v := range c.Values {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
	return b.String()
}

var _ native.PlaneEngine = (*Recorder)(nil)

// Recorder hands out sequential references starting at 1 and records every call.
type Recorder struct {
	mu    sync.Mutex
	next  uint64
	calls []Call

	// FailCreatePlane, when set, is returned by CreatePlane.
	FailCreatePlane error
	// FailCreateDelegate, when set, is returned by CreatePlaneDelegate.
	FailCreateDelegate error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) CreatePlane(minWidth, minHeight float32) (native.Handle[native.Plane], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreatePlane != nil {
		r.calls = append(r.calls, Call{Op: OpCreatePlane, Values: []float32{minWidth, minHeight}})
		return native.Handle[native.Plane]{}, r.FailCreatePlane
	}
	ref := r.allocLocked()
	r.calls = append(r.calls, Call{Op: OpCreatePlane, Ref: ref, Values: []float32{minWidth, minHeight}})
	return native.NewHandle[native.Plane](ref), nil
}

func (r *Recorder) DestroyPlane(plane native.Handle[native.Plane]) {
	r.record(Call{Op: OpDestroyPlane, Ref: plane.Ref()})
}

func (r *Recorder) CreatePlaneDelegate(plane native.Handle[native.Plane]) (native.Handle[native.PlaneDelegate], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailCreateDelegate != nil {
		r.calls = append(r.calls, Call{Op: OpCreatePlaneDelegate, Ref: plane.Ref()})
		return native.Handle[native.PlaneDelegate]{}, r.FailCreateDelegate
	}
	ref := r.allocLocked()
	r.calls = append(r.calls, Call{Op: OpCreatePlaneDelegate, Ref: ref})
	return native.NewHandle[native.PlaneDelegate](ref), nil
}

func (r *Recorder) DestroyPlaneDelegate(delegate native.Handle[native.PlaneDelegate]) {
	r.record(Call{Op: OpDestroyPlaneDelegate, Ref: delegate.Ref()})
}

func (r *Recorder) SetMinWidth(plane native.Handle[native.Plane], minWidth float32) {
	r.record(Call{Op: OpSetMinWidth, Ref: plane.Ref(), Values: []float32{minWidth}})
}

func (r *Recorder) SetMinHeight(plane native.Handle[native.Plane], minHeight float32) {
	r.record(Call{Op: OpSetMinHeight, Ref: plane.Ref(), Values: []float32{minHeight}})
}

// Calls returns a copy of the recorded calls.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Call, len(r.calls))
	copy(out, r.calls)
	return out
}

// Ops returns only the operation names, in call order.
func (r *Recorder) Ops() []Op {
	calls := r.Calls()
	out := make([]Op, len(calls))
	for i, c := range calls {
		out[i] = c.Op
	}
	return out
}

// Count returns how many times op was called.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls() {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Trace renders the calls one per line.
func (r *Recorder) Trace() string {
	var b strings.Builder
	for i, c := range r.Calls() {
		fmt.Fprintf(&b, "%02d %s\n", i+1, c)
	}
	return b.String()
}

// Reset forgets recorded calls. Reference numbering continues.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.calls = nil
	r.mu.Unlock()
}

func (r *Recorder) record(c Call) {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()
}

func (r *Recorder) allocLocked() uint64 {
	r.next++
	return r.next
}
