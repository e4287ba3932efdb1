package systems

import (
	"testing"

	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/drag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSettings(t *testing.T) {
	payload := []byte(`{"text":"LOOSE TYPE","spacing":20,"direction":1,"verticalCenter":false}`)

	s, err := DecodeSettings(payload)
	require.NoError(t, err)
	assert.Equal(t, "LOOSE TYPE", s.Text)
	assert.Equal(t, 20.0, s.Spacing)
	assert.Equal(t, int(drag.AxisHorizontal), s.Direction)
	assert.False(t, s.VerticalCenter)
}

func TestDecodeSettingsCorrupt(t *testing.T) {
	_, err := DecodeSettings([]byte(`{"text":`))
	assert.Error(t, err)
}

func TestApplySavedSettingsGlobal(t *testing.T) {
	savedText := cfg.Text
	savedDir := SavedDirection
	defer func() {
		cfg.Text = savedText
		SavedDirection = savedDir
	}()

	ApplySavedSettingsGlobal(&SavedSettings{
		Text:           "drag me",
		Spacing:        30,
		Direction:      int(drag.AxisVertical),
		VerticalCenter: false,
	})

	assert.Equal(t, "drag me", cfg.Text.DefaultText)
	assert.Equal(t, 30.0, cfg.Text.Spacing)
	assert.Equal(t, drag.AxisVertical, SavedDirection)
	assert.False(t, cfg.Text.VerticalCenter)
}

func TestApplySavedSettingsGlobalOutOfRange(t *testing.T) {
	savedText := cfg.Text
	savedDir := SavedDirection
	defer func() {
		cfg.Text = savedText
		SavedDirection = savedDir
	}()

	defaultSpacing := cfg.Text.Spacing
	defaultText := cfg.Text.DefaultText

	ApplySavedSettingsGlobal(&SavedSettings{
		Text:           "",
		Spacing:        cfg.Text.MaxSpacing + 100,
		Direction:      42,
		VerticalCenter: true,
	})

	// Out-of-range values fall back to the defaults instead of failing.
	assert.Equal(t, defaultText, cfg.Text.DefaultText)
	assert.Equal(t, defaultSpacing, cfg.Text.Spacing)
	assert.Equal(t, savedDir, SavedDirection)
	assert.True(t, cfg.Text.VerticalCenter)
}

func TestApplySavedSettingsGlobalNil(t *testing.T) {
	savedText := cfg.Text
	defer func() { cfg.Text = savedText }()

	ApplySavedSettingsGlobal(nil)
	assert.Equal(t, savedText, cfg.Text)
}
