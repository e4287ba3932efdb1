package systems

import (
	"os"
	"testing"

	"github.com/golang/freetype/truetype"
	"github.com/hollowlog/dragtext/fonts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

func TestMain(m *testing.M) {
	fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, 16)
	fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 11)
	fonts.LoadFontWithSize(fonts.Title, goregular.TTF, 32)
	fonts.LoadFontWithSize(fonts.Glyph, goregular.TTF, 48)
	os.Exit(m.Run())
}

func testFace(t *testing.T) font.Face {
	t.Helper()
	fontData, err := truetype.Parse(goregular.TTF)
	require.NoError(t, err)
	return truetype.NewFace(fontData, &truetype.Options{Size: 48})
}

func TestMeasureRunWidthsCount(t *testing.T) {
	face := testFace(t)

	for _, s := range []string{"", "A", "AB", "drag me", "HOLLOWLOG"} {
		widths := MeasureRunWidths(face, s)
		assert.Len(t, widths, len([]rune(s)), "text %q", s)
	}
}

func TestMeasureRunWidthsVisibleGlyphs(t *testing.T) {
	face := testFace(t)

	widths := MeasureRunWidths(face, "AB")
	require.Len(t, widths, 2)
	assert.Greater(t, widths[0], 0.0)
	assert.Greater(t, widths[1], 0.0)
}

func TestMeasureRunWidthsSpaceIsZero(t *testing.T) {
	face := testFace(t)

	widths := MeasureRunWidths(face, "a b")
	require.Len(t, widths, 3)
	assert.Equal(t, 0.0, widths[1])
}

func TestMeasureRunWidthsDeterministic(t *testing.T) {
	face := testFace(t)

	first := MeasureRunWidths(face, "gravity optional")
	second := MeasureRunWidths(face, "gravity optional")
	assert.Equal(t, first, second)
}
