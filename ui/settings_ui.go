package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hollowlog/dragtext/components"
	cfg "github.com/hollowlog/dragtext/config"
	"github.com/hollowlog/dragtext/drag"
	"golang.org/x/image/font/gofont/goregular"
)

// SettingsUI holds the ebitenui panel for the playground settings
type SettingsUI struct {
	UI  *ebitenui.UI
	Run *components.RunData

	// Callbacks
	OnChanged func() // any run parameter was edited
	OnReset   func() // "Reset letters" was clicked

	// Widget references for updates
	spacingLabel  *widget.Label
	axisButton    *widget.Button
	vcenterButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
}

// NewSettingsUI creates the settings panel bound to the given run
func NewSettingsUI(run *components.RunData, onChanged, onReset func()) *SettingsUI {
	sui := &SettingsUI{
		Run:       run,
		OnChanged: onChanged,
		OnReset:   onReset,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SettingsUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (sui *SettingsUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 240})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SETTINGS", &sui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	panel.AddChild(titleLabel)

	panel.AddChild(sui.buildSpacingRow())
	panel.AddChild(sui.buildAxisButton())
	panel.AddChild(sui.buildVCenterButton())
	panel.AddChild(sui.buildPresetRows())
	panel.AddChild(sui.buildResetButton())

	rootContainer.AddChild(panel)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *SettingsUI) buildSpacingRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	minus := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(24, 20)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("-", &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.adjustSpacing(-cfg.Text.SpacingStep)
		}),
	)
	row.AddChild(minus)

	sui.spacingLabel = widget.NewLabel(
		widget.LabelOpts.Text(sui.spacingText(), &sui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	row.AddChild(sui.spacingLabel)

	plus := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(24, 20)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("+", &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.adjustSpacing(cfg.Text.SpacingStep)
		}),
	)
	row.AddChild(plus)

	return row
}

func (sui *SettingsUI) buildAxisButton() *widget.Button {
	sui.axisButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 20)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(sui.axisText(), &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			switch sui.Run.Direction {
			case drag.AxisBoth:
				sui.Run.Direction = drag.AxisHorizontal
			case drag.AxisHorizontal:
				sui.Run.Direction = drag.AxisVertical
			default:
				sui.Run.Direction = drag.AxisBoth
			}
			sui.changed()
		}),
	)
	return sui.axisButton
}

func (sui *SettingsUI) buildVCenterButton() *widget.Button {
	sui.vcenterButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 20)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(sui.vcenterText(), &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Run.VerticalCenter = !sui.Run.VerticalCenter
			sui.changed()
		}),
	)
	return sui.vcenterButton
}

func (sui *SettingsUI) buildPresetRows() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)

	for _, preset := range cfg.Text.Presets {
		preset := preset // Capture for closure
		button := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 20)),
			widget.ButtonOpts.Image(sui.buttonImage()),
			widget.ButtonOpts.Text(preset, &sui.normalFace, sui.buttonTextColor()),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				sui.Run.Text = preset
				sui.changed()
			}),
		)
		container.AddChild(button)
	}

	return container
}

func (sui *SettingsUI) buildResetButton() *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 20)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text("Reset letters", &sui.normalFace, sui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnReset != nil {
				sui.OnReset()
			}
		}),
	)
}

func (sui *SettingsUI) adjustSpacing(delta float64) {
	spacing := sui.Run.Spacing + delta
	if spacing < cfg.Text.MinSpacing {
		spacing = cfg.Text.MinSpacing
	}
	if spacing > cfg.Text.MaxSpacing {
		spacing = cfg.Text.MaxSpacing
	}
	sui.Run.Spacing = spacing
	sui.changed()
}

func (sui *SettingsUI) changed() {
	sui.UpdateUI()
	if sui.OnChanged != nil {
		sui.OnChanged()
	}
}

func (sui *SettingsUI) spacingText() string {
	return fmt.Sprintf("Spacing: %.0f", sui.Run.Spacing)
}

func (sui *SettingsUI) axisText() string {
	return "Axis: " + sui.Run.Direction.String()
}

func (sui *SettingsUI) vcenterText() string {
	if sui.Run.VerticalCenter {
		return "Vertical center: on"
	}
	return "Vertical center: off"
}

func (sui *SettingsUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SettingsUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{255, 255, 200, 255},
		Pressed: color.RGBA{200, 200, 200, 255},
	}
}

// UpdateUI refreshes widget labels from the run state
func (sui *SettingsUI) UpdateUI() {
	if sui.spacingLabel != nil {
		sui.spacingLabel.Label = sui.spacingText()
	}
	if sui.axisButton != nil {
		if textWidget := sui.axisButton.Text(); textWidget != nil {
			textWidget.Label = sui.axisText()
		}
	}
	if sui.vcenterButton != nil {
		if textWidget := sui.vcenterButton.Text(); textWidget != nil {
			textWidget.Label = sui.vcenterText()
		}
	}
}

// Update advances the ebitenui widget tree
func (sui *SettingsUI) Update() {
	sui.UI.Update()
}
