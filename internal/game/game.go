package game

import (
	"fmt"
	"time"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/audio"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/components"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/interaction"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/log"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/scripts"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/world"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// MoveSpeed is the walking speed in world units per second
	MoveSpeed = 400

	panelWidth = 300
)

// Options configures a demo session.
type Options struct {
	ScenePath  string
	ConfigPath string // optional selector YAML, overrides the scene
	Observer   string
}

type Game struct {
	Player    *engine.GameObject
	World     *world.World
	Selector  *interaction.IconSelector
	DebugMode bool

	scenePath string
	look      *components.LookController
	panel     *Panel
	cursorOn  bool
	status    string
	cues      *audio.Player

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New loads the scene and finds (or equips) the observer. It does not open a
// window, so it is safe to call from tests.
func New(opts Options) (*Game, error) {
	if opts.Observer == "" {
		opts.Observer = "Player"
	}
	w := world.New()
	if err := w.LoadScene(opts.ScenePath); err != nil {
		return nil, err
	}

	player := w.Scene.FindByName(opts.Observer)
	if player == nil {
		return nil, fmt.Errorf("observer %q not found in %s", opts.Observer, opts.ScenePath)
	}
	sel := engine.GetComponent[*interaction.IconSelector](player)
	if sel == nil {
		sel = interaction.NewIconSelector(interaction.DefaultConfig())
		player.AddComponent(sel)
	}
	if opts.ConfigPath != "" {
		cfg, err := interaction.LoadConfig(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		sel.Config = cfg
	}
	sel.Logger = log.With("observer", player.Name)

	look := engine.GetComponent[*components.LookController](player)
	if look == nil {
		look = components.NewLookController()
		player.AddComponent(look)
	}

	g := &Game{
		Player:    player,
		World:     w,
		Selector:  sel,
		scenePath: opts.ScenePath,
		look:      look,
		panel:     NewPanel(sel),
	}
	sel.OnSelectionChanged.AddListener(func(c interaction.SelectionChange) {
		g.status = fmt.Sprintf("selected %s (%.1f)", nameOf(c.Current), c.Score)
		g.playCue(c)
	})
	return g, nil
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagWindowResizable)
	rl.InitWindow(world.DefaultViewportWidth, world.DefaultViewportHeight, "Interactable Icon Selector")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()
	initRayguiStyle()
	g.cues = audio.NewPlayer()

	g.World.Start()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	updateStart := time.Now()
	deltaTime := rl.GetFrameTime()

	g.World.SetViewportSize(float32(rl.GetRenderWidth()), float32(rl.GetRenderHeight()))

	if rl.IsKeyPressed(rl.KeyTab) {
		g.cursorOn = !g.cursorOn
		if g.cursorOn {
			rl.EnableCursor()
		} else {
			rl.DisableCursor()
		}
	}

	// Panel owns the mouse while the cursor is shown
	if !g.cursorOn {
		g.look.ApplyMouseDelta(rl.GetMouseDelta())
	}
	forward, right := g.look.GetDirections()
	in := MoveInput{
		Forward: axis(rl.IsKeyDown(rl.KeyW), rl.IsKeyDown(rl.KeyS)),
		Right:   axis(rl.IsKeyDown(rl.KeyD), rl.IsKeyDown(rl.KeyA)),
	}
	g.Player.Transform.Position = rl.Vector3Add(g.Player.Transform.Position,
		MoveDelta(forward, right, in, MoveSpeed, deltaTime))

	g.World.Update(deltaTime)

	if rl.IsKeyPressed(rl.KeyE) {
		g.interact()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.DebugMode = !g.DebugMode
	}
	if rl.IsKeyPressed(rl.KeyF2) {
		g.Selector.ForceScan()
	}
	if rl.IsKeyPressed(rl.KeyF5) {
		g.saveScene()
	}

	g.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// interact collects the pickup on the selected candidate, then rescans so the
// next candidate's icon shows without waiting for the timer.
func (g *Game) interact() bool {
	best := g.Selector.CurrentBest()
	if best == nil {
		return false
	}
	pickup := engine.GetComponent[*scripts.Pickup](best)
	if pickup == nil || !pickup.Collect() {
		return false
	}
	g.status = "collected " + pickup.Item
	g.Selector.ForceScan()
	return true
}

// cueRange is how far away a selection cue can still be heard
const cueRange = 3000

func (g *Game) playCue(c interaction.SelectionChange) {
	if g.cues == nil {
		return
	}
	cue, target := audio.SelectCue, c.Current
	if target == nil {
		cue, target = audio.DeselectCue, c.Previous
	}
	if target == nil {
		return
	}
	forward, right := g.look.GetDirections()
	eye := g.Player.WorldPosition()
	eye.Y += g.look.GetEyeHeight()
	volume, pan := audio.Spatialize(audio.Listener{Position: eye, Forward: forward, Right: right},
		target.WorldPosition(), 0.4, cueRange)
	g.cues.Play(cue, volume, pan)
}

func (g *Game) saveScene() {
	if err := g.World.SaveScene(g.scenePath); err != nil {
		log.Error("save scene failed", "path", g.scenePath, "err", err)
		g.status = "save failed"
		return
	}
	log.Info("scene saved", "path", g.scenePath)
	g.status = "saved " + g.scenePath
}

func (g *Game) Draw() {
	cam := engine.GetComponent[*components.Camera](g.Player)
	if cam == nil {
		return
	}
	camera := cam.GetRaylibCamera()
	frustum, haveFrustum := g.World.CameraFrustum()
	best := g.Selector.CurrentBest()

	rl.BeginDrawing()
	rl.ClearBackground(colorBgDark)

	drawStart := time.Now()
	rl.BeginMode3D(camera)
	rl.DrawGrid(40, 100)
	for _, obj := range g.World.Scene.GameObjects {
		if haveFrustum && !visibleIn(&frustum, obj) {
			continue
		}
		drawColliders(obj, obj == best)
	}
	rl.EndMode3D()
	g.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	g.drawIcon(best)
	if g.Selector.Config.Debug.Draw {
		g.drawDebugLabels()
	}
	g.DrawUI()
	rl.EndDrawing()
}

// drawIcon marks the selected candidate's icon in screen space.
func (g *Game) drawIcon(best *engine.GameObject) {
	if best == nil {
		return
	}
	anchor, ok := g.Selector.CurrentIconLocation()
	if !ok {
		return
	}
	pos, onScreen := g.World.WorldToScreen(anchor)
	if !onScreen {
		return
	}
	rl.DrawCircleV(pos, 10, colorIcon)
	rl.DrawCircleLines(int32(pos.X), int32(pos.Y), 14, colorTextPrimary)
	rl.DrawText(best.Name, int32(pos.X)+18, int32(pos.Y)-8, 16, colorTextPrimary)
}

func (g *Game) drawDebugLabels() {
	for _, l := range g.Selector.DebugLabels() {
		pos, ok := g.World.WorldToScreen(l.Position)
		if !ok {
			continue
		}
		color := colorRejected
		if l.Accepted {
			color = colorAccepted
		}
		rl.DrawText(l.Text, int32(pos.X), int32(pos.Y), 12, color)
	}
}

func (g *Game) DrawUI() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())

	// Crosshair
	cx, cy := screenW/2, screenH/2
	rl.DrawLine(cx-8, cy, cx+8, cy, colorTextSecondary)
	rl.DrawLine(cx, cy-8, cx, cy+8, colorTextSecondary)

	rl.DrawText("WASD to move, Mouse to look, Tab for the tuning panel", 10, 10, 20, colorTextMuted)
	rl.DrawText("E interact, F1 debug view, F2 force scan, F5 save scene", 10, 35, 20, colorTextMuted)
	rl.DrawFPS(10, 60)

	best := g.Selector.CurrentBest()
	rl.DrawText(fmt.Sprintf("%s  best: %s (%.1f)", g.Selector.State(), nameOf(best), g.Selector.CurrentBestScore()),
		10, screenH-30, 20, colorAccentLight)
	if g.status != "" {
		rl.DrawText(g.status, 10, screenH-55, 16, colorTextSecondary)
	}

	if g.DebugMode {
		pos := g.Player.Transform.Position
		rl.DrawText(fmt.Sprintf("Position: (%.0f, %.0f, %.0f)", pos.X, pos.Y, pos.Z), 10, 85, 16, colorAccepted)
		rl.DrawText(fmt.Sprintf("Yaw/Pitch: %.1f / %.1f", g.look.Yaw, g.look.Pitch), 10, 105, 16, colorAccepted)
		if r := g.Selector.LastReport(); r != nil {
			rl.DrawText(fmt.Sprintf("Scan %d: %d candidates", r.Seq, len(r.Candidates)), 10, 125, 16, colorAccepted)
		}
		rl.DrawText(fmt.Sprintf("Update: %.2f ms", g.updateMs), 10, 145, 16, colorAccepted)
		rl.DrawText(fmt.Sprintf("Draw:   %.2f ms", g.drawMs), 10, 165, 16, colorAccepted)
	}

	if g.cursorOn {
		g.panel.Draw(rl.Rectangle{X: float32(screenW - panelWidth - 10), Y: 10, Width: panelWidth, Height: float32(screenH - 20)})
	}
}

func visibleIn(f *world.Frustum, obj *engine.GameObject) bool {
	if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
		min, max := box.GetBounds()
		return f.ContainsBox(min, max)
	}
	if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
		return f.ContainsSphere(sphere.GetCenter(), sphere.GetWorldRadius())
	}
	return f.ContainsPoint(obj.WorldPosition())
}

func drawColliders(obj *engine.GameObject, selected bool) {
	fill, wire := colorObject, colorBorderLight
	if selected {
		fill, wire = rl.Gold, rl.Orange
	}
	if box := engine.GetComponent[*components.BoxCollider](obj); box != nil {
		size := box.GetWorldSize()
		rl.DrawCubeV(box.GetCenter(), size, fill)
		rl.DrawCubeWiresV(box.GetCenter(), size, wire)
	}
	if sphere := engine.GetComponent[*components.SphereCollider](obj); sphere != nil {
		rl.DrawSphere(sphere.GetCenter(), sphere.GetWorldRadius(), fill)
		rl.DrawSphereWires(sphere.GetCenter(), sphere.GetWorldRadius(), 8, 8, wire)
	}
}

func nameOf(g *engine.GameObject) string {
	if g == nil {
		return "<none>"
	}
	return g.Name
}
