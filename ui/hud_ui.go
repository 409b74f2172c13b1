package ui

import (
	"github.com/automoto/hillshot/components"
	cfg "github.com/automoto/hillshot/config"
	"github.com/automoto/hillshot/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const depletedText = "OUT OF STAMINA"

// HUDUI shows the HUD text lines with ebitenui labels.
type HUDUI struct {
	UI *ebitenui.UI

	// Widget references for updates
	healthLabel    *widget.Label
	countdownLabel *widget.Label
	depletedLabel  *widget.Label
	noticeLabel    *widget.Label
	pauseLabel     *widget.Label
	pauseHintLabel *widget.Label

	// Fonts (stored as interface for ebitenui compatibility)
	normalFace text.Face
	largeFace  text.Face
}

// NewHUDUI builds the HUD. Fonts must be loaded first.
func NewHUDUI() *HUDUI {
	hui := &HUDUI{
		normalFace: text.NewGoXFace(fonts.HUD.Get()),
		largeFace:  text.NewGoXFace(fonts.HUDLarge.Get()),
	}
	hui.buildUI()
	return hui
}

func (hui *HUDUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Status lines stacked in the top-left corner
	margin := widget.NewInsetsSimple(cfg.HUD.Margin)
	lines := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(margin),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	hui.countdownLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &hui.normalFace, &widget.LabelColor{
			Idle: cfg.HUD.CountdownColor,
		}),
	)
	lines.AddChild(hui.countdownLabel)

	hui.healthLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &hui.normalFace, &widget.LabelColor{
			Idle: cfg.HUD.HealthColor,
		}),
	)
	lines.AddChild(hui.healthLabel)
	rootContainer.AddChild(lines)

	// Depleted banner, centered
	banner := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	hui.depletedLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &hui.largeFace, &widget.LabelColor{
			Idle: cfg.HUD.DepletedColor,
		}),
	)
	banner.AddChild(hui.depletedLabel)

	hui.pauseLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &hui.largeFace, &widget.LabelColor{
			Idle: cfg.Pause.TextColor,
		}),
	)
	banner.AddChild(hui.pauseLabel)
	hui.pauseHintLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &hui.normalFace, &widget.LabelColor{
			Idle: cfg.Pause.TextColor,
		}),
	)
	banner.AddChild(hui.pauseHintLabel)
	rootContainer.AddChild(banner)

	// Notices, top center
	notice := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Padding(margin),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	hui.noticeLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &hui.normalFace, &widget.LabelColor{
			Idle: cfg.Message.TextColor,
		}),
	)
	notice.AddChild(hui.noticeLabel)
	rootContainer.AddChild(notice)

	hui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// Sync copies the HUD text into the labels.
func (hui *HUDUI) Sync(hud *components.HUDData) {
	hui.countdownLabel.Label = hud.Countdown
	hui.healthLabel.Label = hud.Health
	hui.noticeLabel.Label = hud.Notice
	if hud.Depleted {
		hui.depletedLabel.Label = depletedText
	} else {
		hui.depletedLabel.Label = ""
	}
	if hud.Paused {
		hui.pauseLabel.Label = cfg.Pause.Title
		hui.pauseHintLabel.Label = hud.PauseHint
	} else {
		hui.pauseLabel.Label = ""
		hui.pauseHintLabel.Label = ""
	}
}

// Update processes ebitenui input and layout.
func (hui *HUDUI) Update() {
	hui.UI.Update()
}

// Draw renders the HUD labels.
func (hui *HUDUI) Draw(screen *ebiten.Image) {
	hui.UI.Draw(screen)
}
