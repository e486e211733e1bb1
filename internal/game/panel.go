package game

import (
	"fmt"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/interaction"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/log"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// TuningRow is one editable selector property on the panel.
type TuningRow struct {
	Prop     string
	Label    string
	Min, Max float32
	Toggle   bool
	Integer  bool
}

var tuningRows = []TuningRow{
	{Prop: "enabled", Label: "Enabled", Toggle: true},
	{Prop: "scanInterval", Label: "Scan interval", Min: 0.02, Max: 1},
	{Prop: "maxScanDistance", Label: "Max distance", Min: 100, Max: 10000},
	{Prop: "maxCandidatesToScore", Label: "Max candidates", Min: 1, Max: 64, Integer: true},
	{Prop: "minForwardDot", Label: "Min forward dot", Min: -1, Max: 1},
	{Prop: "screenCenterMaxNormalizedDistance", Label: "Center radius", Min: 0.01, Max: 1},
	{Prop: "minSwitchScoreDelta", Label: "Switch margin", Min: 0, Max: 100},
	{Prop: "requireLineOfSight", Label: "Line of sight", Toggle: true},
	{Prop: "rejectOffScreenInPawnForwardMode", Label: "Reject off screen", Toggle: true},
	{Prop: "debugScoring", Label: "Log scoring", Toggle: true},
	{Prop: "debugDraw", Label: "Draw labels", Toggle: true},
}

var positionModes = []string{
	interaction.ScreenCenter.String(),
	interaction.PawnForward.String(),
}

// Panel edits a selector's properties through the script applier, so every
// edit goes through the same validation as scene loading.
type Panel struct {
	sel      *interaction.IconSelector
	rejected string
}

func NewPanel(sel *interaction.IconSelector) *Panel {
	return &Panel{sel: sel}
}

// Rows returns the editable properties in display order.
func (p *Panel) Rows() []TuningRow {
	return tuningRows
}

// Value reads a row's current value as a slider position, or as a toggle.
func (p *Panel) Value(row TuningRow) (float32, bool) {
	_, props, ok := engine.SerializeScript(p.sel)
	if !ok {
		return 0, false
	}
	switch v := props[row.Prop].(type) {
	case bool:
		return 0, v
	case float32:
		return v, false
	case float64:
		return float32(v), false
	case int:
		return float32(v), false
	}
	return 0, false
}

// Apply pushes an edited value to the selector. Rejected edits are kept for
// display and leave the selector untouched.
func (p *Panel) Apply(row TuningRow, value any) bool {
	if row.Integer {
		if f, ok := value.(float32); ok {
			value = int(f + 0.5)
		}
	}
	if f, ok := value.(float32); ok {
		value = float64(f)
	}
	if !engine.ApplyScriptProperty(p.sel, row.Prop, value) {
		p.rejected = row.Label
		log.Warn("tuning edit rejected", "prop", row.Prop, "value", value)
		return false
	}
	p.rejected = ""
	return true
}

// CyclePositionMode switches to the next position scoring mode.
func (p *Panel) CyclePositionMode() bool {
	current := p.sel.Config.PositionScoreMode.String()
	next := positionModes[0]
	for i, m := range positionModes {
		if m == current {
			next = positionModes[(i+1)%len(positionModes)]
		}
	}
	return p.Apply(TuningRow{Prop: "positionScoreMode", Label: "Position mode"}, next)
}

func (p *Panel) Draw(bounds rl.Rectangle) {
	rl.DrawRectangleRec(bounds, colorBgPanel)
	rl.DrawRectangleLinesEx(bounds, 1, colorBorderLight)

	x := bounds.X + 12
	y := bounds.Y + 12
	rl.DrawText("Icon Selector", int32(x), int32(y), 18, colorTextPrimary)
	y += 30

	const (
		labelW = 130
		fieldH = 20
	)
	fieldW := bounds.Width - labelW - 24

	for _, row := range tuningRows {
		value, on := p.Value(row)
		if row.Toggle {
			box := rl.Rectangle{X: x, Y: y, Width: fieldH, Height: fieldH}
			if next := gui.CheckBox(box, row.Label, on); next != on {
				p.Apply(row, next)
			}
		} else {
			rl.DrawText(row.Label, int32(x), int32(y)+4, 14, colorTextMuted)
			slider := rl.Rectangle{X: x + labelW, Y: y, Width: fieldW, Height: fieldH}
			text := fmt.Sprintf("%.2f", value)
			if row.Integer {
				text = fmt.Sprintf("%d", int(value))
			}
			if next := gui.Slider(slider, "", text, value, row.Min, row.Max); next != value {
				p.Apply(row, next)
			}
		}
		y += fieldH + 8
	}

	modeBtn := rl.Rectangle{X: x, Y: y, Width: bounds.Width - 24, Height: fieldH + 4}
	if gui.Button(modeBtn, "Mode: "+p.sel.Config.PositionScoreMode.String()) {
		p.CyclePositionMode()
	}
	y += fieldH + 14

	if p.rejected != "" {
		rl.DrawText("rejected: "+p.rejected, int32(x), int32(y), 14, colorRejected)
	}
}
