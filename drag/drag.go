// Package drag provides bounded, inertial drag-and-release interaction for
// rectangular targets. The Binder interface is the capability surface; the
// PointerBinder implementation is driven by per-frame pointer samples so it
// has no dependency on any input backend.
package drag

import "fmt"

// Axis constrains the direction a target may move while dragged.
type Axis int

const (
	AxisBoth Axis = iota
	AxisHorizontal
	AxisVertical
)

func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "horizontal"
	case AxisVertical:
		return "vertical"
	default:
		return "both"
	}
}

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Inside reports whether the inner rectangle lies entirely within r.
func (r Rect) Inside(inner Rect) bool {
	return inner.X >= r.X && inner.Y >= r.Y &&
		inner.X+inner.W <= r.X+r.W && inner.Y+inner.H <= r.Y+r.H
}

// ClampPoint returns the top-left position nearest to (x, y) that keeps a box
// of the given size inside r.
func (r Rect) ClampPoint(x, y, w, h float64) (float64, float64) {
	if x < r.X {
		x = r.X
	}
	if max := r.X + r.W - w; x > max {
		x = max
	}
	if y < r.Y {
		y = r.Y
	}
	if max := r.Y + r.H - h; y > max {
		y = max
	}
	return x, y
}

// Target is the draggable element. The binder reads its rectangle for hit
// testing and writes its position while a drag or glide is active.
type Target interface {
	Rect() Rect
	SetPosition(x, y float64)
}

// MoveResolver is an optional Target extension. A target backed by collision
// geometry returns the largest portion of a glide step (dx, dy) it can take
// without overlapping anything. Targets without it are clamped to the
// binding's bounds instead.
type MoveResolver interface {
	ResolveMove(dx, dy float64) (float64, float64)
}

// Options configures a single binding.
type Options struct {
	Axis Axis

	// EdgeResistance scales displacement past the bounds: 0 lets the target
	// move freely outside, 1 pins it to the edge.
	EdgeResistance float64

	// Inertia keeps the target gliding after release, its velocity decaying
	// by Friction per tick until it drops below StopSpeed.
	Inertia       bool
	Friction      float64
	StopSpeed     float64
	MaxFlingSpeed float64

	// SmoothingAlpha weights the newest pointer delta when tracking release
	// velocity. Zero falls back to the raw per-tick delta.
	SmoothingAlpha float64

	// OnDragStart fires when a press lands on the target, OnDragEnd when the
	// pointer is released or the binding is disposed mid-gesture. Cancellation
	// is not distinguished from release.
	OnDragStart func()
	OnDragEnd   func()
}

// Handle detaches one binding. Dispose is idempotent.
type Handle interface {
	Dispose()
}

// Binder is the drag capability: it makes a target draggable within bounds
// and returns a handle that tears the binding down.
type Binder interface {
	MakeDraggable(t Target, bounds Rect, opts Options) (Handle, error)
}

// ErrNilTarget is returned when MakeDraggable is called without a target.
var ErrNilTarget = fmt.Errorf("drag: nil target")
