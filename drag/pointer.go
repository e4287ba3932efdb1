package drag

import "math"

// Pointer is one frame's pointer sample.
type Pointer struct {
	X, Y    float64
	Pressed bool
}

type bindingPhase int

const (
	phaseIdle bindingPhase = iota
	phaseDragging
	phaseGliding
)

// PointerBinder implements Binder for a single pointer. Call Update once per
// tick with the current pointer sample; all attached bindings advance
// together. Not safe for concurrent use.
type PointerBinder struct {
	bindings []*binding
	prev     Pointer
}

type binding struct {
	owner  *PointerBinder
	target Target
	bounds Rect
	opts   Options

	phase          bindingPhase
	grabDX, grabDY float64 // pointer offset from the rect's top-left at grab
	lockX, lockY   float64 // position held fixed by axis locking
	velX, velY     float64
	disposed       bool
}

func NewPointerBinder() *PointerBinder {
	return &PointerBinder{}
}

func (pb *PointerBinder) MakeDraggable(t Target, bounds Rect, opts Options) (Handle, error) {
	if t == nil {
		return nil, ErrNilTarget
	}
	b := &binding{owner: pb, target: t, bounds: bounds, opts: opts}
	pb.bindings = append(pb.bindings, b)
	return b, nil
}

// BoundCount returns the number of live bindings.
func (pb *PointerBinder) BoundCount() int {
	n := 0
	for _, b := range pb.bindings {
		if !b.disposed {
			n++
		}
	}
	return n
}

// DraggingCount returns the number of bindings with an active drag session.
func (pb *PointerBinder) DraggingCount() int {
	n := 0
	for _, b := range pb.bindings {
		if !b.disposed && b.phase == phaseDragging {
			n++
		}
	}
	return n
}

// Update advances every binding one tick against the given pointer sample.
func (pb *PointerBinder) Update(p Pointer) {
	pb.compact()

	justPressed := p.Pressed && !pb.prev.Pressed
	released := !p.Pressed && pb.prev.Pressed

	if justPressed {
		// Later bindings draw on top, so they win the hit test.
		for i := len(pb.bindings) - 1; i >= 0; i-- {
			b := pb.bindings[i]
			if b.disposed || b.phase != phaseIdle {
				continue
			}
			if b.target.Rect().Contains(p.X, p.Y) {
				b.beginDrag(p)
				break
			}
		}
	}

	for _, b := range pb.bindings {
		if b.disposed {
			continue
		}
		switch b.phase {
		case phaseDragging:
			if p.Pressed {
				b.follow(p)
			}
			if released {
				b.endDrag()
			}
		case phaseGliding:
			b.glide()
		}
	}

	pb.prev = p
}

func (pb *PointerBinder) compact() {
	live := pb.bindings[:0]
	for _, b := range pb.bindings {
		if !b.disposed {
			live = append(live, b)
		}
	}
	pb.bindings = live
}

// Dispose releases the binding. A binding disposed mid-gesture delivers its
// OnDragEnd exactly once; disposing again is a no-op.
func (b *binding) Dispose() {
	if b.disposed {
		return
	}
	if b.phase == phaseDragging && b.opts.OnDragEnd != nil {
		b.opts.OnDragEnd()
	}
	b.phase = phaseIdle
	b.disposed = true
}

func (b *binding) beginDrag(p Pointer) {
	r := b.target.Rect()
	b.phase = phaseDragging
	b.grabDX = p.X - r.X
	b.grabDY = p.Y - r.Y
	b.lockX = r.X
	b.lockY = r.Y
	b.velX = 0
	b.velY = 0
	if b.opts.OnDragStart != nil {
		b.opts.OnDragStart()
	}
}

func (b *binding) follow(p Pointer) {
	r := b.target.Rect()

	x := p.X - b.grabDX
	y := p.Y - b.grabDY
	switch b.opts.Axis {
	case AxisHorizontal:
		y = b.lockY
	case AxisVertical:
		x = b.lockX
	}

	x = resist(x, b.bounds.X, b.bounds.X+b.bounds.W-r.W, b.opts.EdgeResistance)
	y = resist(y, b.bounds.Y, b.bounds.Y+b.bounds.H-r.H, b.opts.EdgeResistance)

	alpha := b.opts.SmoothingAlpha
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}
	b.velX = alpha*(x-r.X) + (1-alpha)*b.velX
	b.velY = alpha*(y-r.Y) + (1-alpha)*b.velY

	b.target.SetPosition(x, y)
}

func (b *binding) endDrag() {
	b.phase = phaseIdle
	if b.opts.OnDragEnd != nil {
		b.opts.OnDragEnd()
	}

	if !b.opts.Inertia {
		return
	}
	// A target released past the edge is the caller's problem (snap-back);
	// gliding only starts from inside the bounds.
	if !b.bounds.Inside(b.target.Rect()) {
		return
	}

	speed := math.Hypot(b.velX, b.velY)
	if speed < b.opts.StopSpeed || speed == 0 {
		return
	}
	if max := b.opts.MaxFlingSpeed; max > 0 && speed > max {
		scale := max / speed
		b.velX *= scale
		b.velY *= scale
	}
	b.phase = phaseGliding
}

func (b *binding) glide() {
	r := b.target.Rect()

	if mr, ok := b.target.(MoveResolver); ok {
		dx, dy := mr.ResolveMove(b.velX, b.velY)
		if dx != b.velX {
			b.velX = 0
		}
		if dy != b.velY {
			b.velY = 0
		}
		b.target.SetPosition(r.X+dx, r.Y+dy)
	} else {
		x := r.X + b.velX
		y := r.Y + b.velY
		cx, cy := b.bounds.ClampPoint(x, y, r.W, r.H)
		if cx != x {
			b.velX = 0
		}
		if cy != y {
			b.velY = 0
		}
		b.target.SetPosition(cx, cy)
	}

	b.velX *= 1 - b.opts.Friction
	b.velY *= 1 - b.opts.Friction
	if math.Hypot(b.velX, b.velY) < b.opts.StopSpeed {
		b.velX = 0
		b.velY = 0
		b.phase = phaseIdle
	}
}

// resist scales displacement past [min, max] by (1 - resistance).
func resist(v, min, max, resistance float64) float64 {
	if resistance <= 0 {
		return v
	}
	if resistance > 1 {
		resistance = 1
	}
	if v < min {
		return min - (min-v)*(1-resistance)
	}
	if v > max {
		return max + (v-max)*(1-resistance)
	}
	return v
}
