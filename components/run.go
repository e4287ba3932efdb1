package components

import (
	"github.com/hollowlog/dragtext/drag"
	"github.com/yohamta/donburi"
)

// RunData is the singleton draggable text run: the input parameters plus the
// bookkeeping each pass (measure, layout, bind) uses to decide whether it has
// work to do. Glyph entities are rebuilt wholesale whenever the layout inputs
// change; there is no incremental diff.
type RunData struct {
	Text           string
	Spacing        float64 // pixels between adjacent glyph boxes
	Direction      drag.Axis
	VerticalCenter bool

	// Drag lifecycle callbacks, invoked with the glyph's rune and index.
	// Replace via SetCallbacks so rebinding can detect the change.
	OnDragStart func(r rune, index int)
	OnDragEnd   func(r rune, index int)
	CallbackID  uint64

	// Measurement pass output
	MeasuredText string
	Widths       []float64

	// Layout pass bookkeeping
	LayoutGen   int // bumped on every committed layout
	LaidText    string
	LaidSpacing float64
	LaidVCenter bool

	// Bind pass bookkeeping
	BoundGen        int
	BoundDirection  drag.Axis
	BoundCallbackID uint64
}

// SetCallbacks replaces both drag callbacks. Functions are not comparable, so
// an identity counter stands in for them when the bind pass checks staleness.
func (r *RunData) SetCallbacks(onStart, onEnd func(r rune, index int)) {
	r.OnDragStart = onStart
	r.OnDragEnd = onEnd
	r.CallbackID++
}

func (r *RunData) NeedsMeasure() bool {
	return r.MeasuredText != r.Text
}

func (r *RunData) NeedsLayout() bool {
	return r.LaidText != r.Text || r.LaidSpacing != r.Spacing || r.LaidVCenter != r.VerticalCenter
}

func (r *RunData) NeedsBind() bool {
	return r.BoundGen != r.LayoutGen ||
		r.BoundDirection != r.Direction ||
		r.BoundCallbackID != r.CallbackID
}

var Run = donburi.NewComponentType[RunData]()
