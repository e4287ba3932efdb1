package drag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}

	assert.True(t, r.Contains(10, 10))
	assert.True(t, r.Contains(29, 29))
	assert.False(t, r.Contains(30, 10)) // right/bottom edges are exclusive
	assert.False(t, r.Contains(9, 15))
}

func TestRectInside(t *testing.T) {
	outer := Rect{X: 0, Y: 0, W: 100, H: 100}

	assert.True(t, outer.Inside(Rect{X: 0, Y: 0, W: 100, H: 100}))
	assert.True(t, outer.Inside(Rect{X: 40, Y: 40, W: 10, H: 10}))
	assert.False(t, outer.Inside(Rect{X: 95, Y: 40, W: 10, H: 10}))
	assert.False(t, outer.Inside(Rect{X: -1, Y: 0, W: 10, H: 10}))
}

func TestRectClampPoint(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 100, H: 100}

	x, y := r.ClampPoint(120, -30, 10, 10)
	assert.Equal(t, 90.0, x)
	assert.Equal(t, 0.0, y)

	x, y = r.ClampPoint(45, 45, 10, 10)
	assert.Equal(t, 45.0, x)
	assert.Equal(t, 45.0, y)
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "both", AxisBoth.String())
	assert.Equal(t, "horizontal", AxisHorizontal.String())
	assert.Equal(t, "vertical", AxisVertical.String())
}
