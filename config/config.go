package config

import "image/color"

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// TextConfig contains the draggable text run configuration
type TextConfig struct {
	DefaultText    string
	Spacing        float64 // pixels between adjacent glyph boxes
	SpacingStep    float64 // increment used by the settings panel
	MinSpacing     float64
	MaxSpacing     float64
	VerticalCenter bool
	GlyphHeight    float64 // assumed glyph box height for layout and hit testing
	TopOffset      float64 // fixed top position when not vertically centering

	// Container rectangle, inset from the window edges
	ContainerInset float64

	Presets []string

	GlyphColor   color.RGBA
	GrabbedColor color.RGBA
	BorderColor  color.RGBA
	FillColor    color.RGBA
}

// DragConfig contains drag interaction tuning
type DragConfig struct {
	EdgeResistance float64 // 0 = none, 1 = hard stop at the container edge
	Inertia        bool
	Friction       float64 // fraction of glide velocity lost per tick
	StopSpeed      float64 // glide ends below this speed (px/tick)
	MaxFlingSpeed  float64 // release velocity clamp (px/tick)
	SmoothingAlpha float64 // weight of the newest pointer delta in velocity tracking

	SnapBackSeconds float32 // duration of the out-of-bounds snap-back tween
	ResetSeconds    float32 // duration of the reset-to-home tween
	FlashFrames     int     // grab feedback flash duration
}

// MenuConfig contains main menu screen configuration
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to the playground
	Overlay  bool // Draw glyph and bounds rectangles (toggled with F1)
}

// Global configuration instances
var C *Config
var Text TextConfig
var Drag DragConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Text = TextConfig{
		DefaultText:    "HOLLOWLOG",
		Spacing:        12,
		SpacingStep:    2,
		MinSpacing:     0,
		MaxSpacing:     48,
		VerticalCenter: true,
		GlyphHeight:    56,
		TopOffset:      64,
		ContainerInset: 48,
		Presets: []string{
			"HOLLOWLOG",
			"drag me",
			"LOOSE TYPE",
			"gravity optional",
		},
		GlyphColor:   White,
		GrabbedColor: Yellow,
		BorderColor:  color.RGBA{R: 90, G: 90, B: 110, A: 255},
		FillColor:    color.RGBA{R: 24, G: 24, B: 32, A: 255},
	}

	Drag = DragConfig{
		EdgeResistance:  0.85,
		Inertia:         true,
		Friction:        0.08,
		StopSpeed:       0.15,
		MaxFlingSpeed:   24,
		SmoothingAlpha:  0.4,
		SnapBackSeconds: 0.35,
		ResetSeconds:    0.5,
		FlashFrames:     12,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 16, G: 16, B: 24, A: 255},
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "DRAGTEXT",
		TitleY:            120,
		MenuStartY:        200,
		MenuItemHeight:    24,
		MenuItemGap:       8,
	}

	Debug = DebugConfig{
		SkipMenu: false,
		Overlay:  false,
	}
}
