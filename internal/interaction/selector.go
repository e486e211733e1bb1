package interaction

import (
	"log/slog"
	"math"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/log"
	"github.com/google/uuid"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// tieTolerance treats scores this close as equal; the closer candidate wins.
const tieTolerance = 0.001

type SelectorState int

const (
	StateDisabled SelectorState = iota
	// StateIdle is enabled but without an armed timer (owner not locally controlled yet).
	StateIdle
	StateScanning
)

func (s SelectorState) String() string {
	switch s {
	case StateDisabled:
		return "Disabled"
	case StateIdle:
		return "Idle"
	case StateScanning:
		return "Scanning"
	}
	return "Unknown"
}

// LocallyControlled is implemented by owner components that know whether the
// local player drives the object. Owners without one count as local.
type LocallyControlled interface {
	IsLocallyControlled() bool
}

// SelectionChange is published whenever the shown candidate changes.
type SelectionChange struct {
	Previous *engine.GameObject
	Current  *engine.GameObject
	Score    float32
}

// tracked is a candidate held across scans by weak reference.
type tracked struct {
	ref     engine.GameObjectRef
	binding Binding
}

// IconSelector periodically scans for interactables around its owner and
// keeps exactly one icon visible: the best scoring candidate.
type IconSelector struct {
	engine.BaseComponent
	Config Config
	Filter Filter // nil builds one from Config.Filter
	Logger *slog.Logger

	OnSelectionChanged engine.EventWithArg[SelectionChange]
	OnScan             engine.EventWithArg[*ScanReport]

	id       uuid.UUID
	enabled  bool
	timer    engine.TimerHandle
	interval float32
	scanning bool
	scans    uint64

	currentBest          tracked
	currentBestScore     float32
	previouslyConsidered []tracked

	builtFilter Filter
	builtFrom   FilterConfig

	lastReport *ScanReport
	labels     []DebugLabel
}

func NewIconSelector(cfg Config) *IconSelector {
	cfg.Sanitize()
	return &IconSelector{
		Config:           cfg,
		id:               uuid.New(),
		enabled:          true,
		currentBestScore: Rejected,
	}
}

// ID identifies this selector in logs and telemetry.
func (s *IconSelector) ID() uuid.UUID {
	return s.id
}

func (s *IconSelector) Start() {
	s.startTimerIfNeeded()
}

func (s *IconSelector) Update(deltaTime float32) {
	s.ageLabels(deltaTime)
}

func (s *IconSelector) OnEnable() {
	s.SetEnabled(true)
}

func (s *IconSelector) OnDisable() {
	s.SetEnabled(false)
}

// OnDestroy stops scanning and hides the shown icon.
func (s *IconSelector) OnDestroy() {
	s.stopTimer()
	s.reset()
}

// SetEnabled turns scanning on (arming the timer and scanning immediately)
// or off (hiding the current icon and clearing all selection state).
func (s *IconSelector) SetEnabled(enabled bool) {
	s.enabled = enabled
	if enabled {
		s.startTimerIfNeeded()
		s.ForceScan()
		return
	}
	s.stopTimer()
	s.reset()
}

func (s *IconSelector) Enabled() bool {
	return s.enabled
}

func (s *IconSelector) State() SelectorState {
	if !s.enabled {
		return StateDisabled
	}
	if s.timerActive() {
		return StateScanning
	}
	return StateIdle
}

// ForceScan runs one scan immediately, outside the timer cadence.
func (s *IconSelector) ForceScan() {
	s.scan()
}

// SetScanInterval changes the interval and re-arms a running timer.
func (s *IconSelector) SetScanInterval(interval float32) {
	s.Config.ScanInterval = interval
	s.Config.Sanitize()
	if s.timerActive() && s.interval != s.Config.ScanInterval {
		s.stopTimer()
		s.startTimerIfNeeded()
	}
}

// CurrentBest returns the shown candidate, or nil if none is shown or it left the scene.
func (s *IconSelector) CurrentBest() *engine.GameObject {
	return s.currentBest.ref.Get(s.scene())
}

func (s *IconSelector) CurrentBestScore() float32 {
	return s.currentBestScore
}

// CurrentIconLocation returns where the shown icon is anchored.
func (s *IconSelector) CurrentIconLocation() (rl.Vector3, bool) {
	if s.CurrentBest() == nil {
		return rl.Vector3{}, false
	}
	return s.currentBest.binding.IconLocation(), true
}

// LastReport returns the report of the last completed scan.
func (s *IconSelector) LastReport() *ScanReport {
	return s.lastReport
}

// IsLocallyControlled is false without an owner, true for owners without a
// LocallyControlled component.
func (s *IconSelector) IsLocallyControlled() bool {
	owner := s.GetGameObject()
	if owner == nil {
		return false
	}
	lc := engine.FindComponent[LocallyControlled](owner)
	if lc == nil {
		return true
	}
	return lc.IsLocallyControlled()
}

func (s *IconSelector) scene() *engine.Scene {
	owner := s.GetGameObject()
	if owner == nil {
		return nil
	}
	return owner.Scene
}

func (s *IconSelector) timers() *engine.TimerManager {
	scene := s.scene()
	if scene == nil {
		return nil
	}
	return scene.Timers
}

func (s *IconSelector) timerActive() bool {
	tm := s.timers()
	return tm != nil && tm.IsTimerActive(s.timer)
}

func (s *IconSelector) startTimerIfNeeded() {
	if !s.enabled || !s.IsLocallyControlled() {
		return
	}
	tm := s.timers()
	if tm == nil || tm.IsTimerActive(s.timer) {
		return
	}
	s.interval = s.Config.ScanInterval
	s.timer = tm.SetTimer(s.interval, true, s.scan)
}

func (s *IconSelector) stopTimer() {
	if tm := s.timers(); tm != nil {
		tm.ClearTimer(&s.timer)
	}
	s.timer.Invalidate()
}

// reset hides the shown icon and forgets every tracked candidate.
func (s *IconSelector) reset() {
	previous := s.CurrentBest()
	if previous != nil {
		s.currentBest.binding.SetVisible(false, 0)
	}
	s.currentBest = tracked{}
	s.currentBestScore = Rejected
	s.previouslyConsidered = nil
	if previous != nil {
		s.OnSelectionChanged.Invoke(SelectionChange{Previous: previous})
	}
}

func (s *IconSelector) filter() Filter {
	if s.Filter != nil {
		return s.Filter
	}
	if s.builtFilter == nil || s.builtFrom != s.Config.Filter {
		s.builtFilter = NewFilter(s.Config.Filter)
		s.builtFrom = s.Config.Filter
	}
	return s.builtFilter
}

func (s *IconSelector) logger() *slog.Logger {
	if s.Logger == nil {
		s.Logger = log.With("component", "IconSelector", "selector", s.id.String())
	}
	return s.Logger
}

// candidate is one scored entry of the current scan.
type candidate struct {
	binding  Binding
	eval     Evaluation
	distance float32
}

// scan is one complete selection pass. It never runs re-entrantly.
func (s *IconSelector) scan() {
	if s.scanning {
		return
	}
	s.scanning = true
	defer func() { s.scanning = false }()

	if !s.enabled || !s.IsLocallyControlled() {
		return
	}
	owner := s.GetGameObject()
	scene := s.scene()
	if scene == nil || scene.World == nil {
		return
	}
	world := scene.World

	view, ok := ResolveView(owner, world)
	if !ok {
		return
	}

	s.scans++
	report := &ScanReport{
		Selector: s.id.String(),
		Seq:      s.scans,
		View:     view,
	}

	bindings := s.queryCandidates(world, owner, view, report)

	scorer := Scorer{Config: s.Config, Filter: s.filter(), World: world, Owner: owner}
	hidden := make(map[uint64]bool)
	hide := func(b Binding) {
		if b.Object == nil || hidden[b.Object.UID] {
			return
		}
		hidden[b.Object.UID] = true
		report.Hidden++
		b.SetVisible(false, 0)
	}

	var considered []candidate
	best := -1
	bestScore := Rejected
	bestDistance := float32(math.MaxFloat32)

	for _, b := range bindings {
		eval := scorer.ScoreBinding(b, view)
		report.add(b.Object, eval)

		if eval.IsRejected() {
			hide(b)
			continue
		}

		c := candidate{binding: b, eval: eval, distance: rl.Vector3Distance(view.Location, b.IconLocation())}
		considered = append(considered, c)

		if outranks(eval.Score, c.distance, bestScore, bestDistance) {
			best = len(considered) - 1
			bestScore = eval.Score
			bestDistance = c.distance
		}
	}
	report.Considered = len(considered)

	// Hysteresis: keep the previous best unless the newcomer beats its score by the margin.
	previous := s.CurrentBest()
	if previous != nil && best >= 0 && considered[best].binding.Object != previous {
		if prevIdx := indexOf(considered, previous); prevIdx >= 0 &&
			bestScore < s.currentBestScore+s.Config.MinSwitchScoreDelta {
			best = prevIdx
			bestScore = considered[prevIdx].eval.Score
			report.Retained = true
		}
	}

	var winner *engine.GameObject
	if best >= 0 {
		winner = considered[best].binding.Object
	}

	// Show the winner, hide every other considered candidate.
	for i, c := range considered {
		if i == best {
			c.binding.SetVisible(true, c.distance)
			continue
		}
		hide(c.binding)
	}
	if previous != nil && previous != winner {
		hide(s.currentBest.binding)
	}

	// Hide candidates from the last scan that are no longer considered.
	for _, prev := range s.previouslyConsidered {
		if !prev.ref.Alive(scene) || containsRef(considered, prev.ref) {
			continue
		}
		hide(prev.binding)
	}

	s.previouslyConsidered = s.previouslyConsidered[:0]
	for _, c := range considered {
		s.previouslyConsidered = append(s.previouslyConsidered, tracked{ref: engine.RefTo(c.binding.Object), binding: c.binding})
	}
	if winner != nil {
		s.currentBest = tracked{ref: engine.RefTo(winner), binding: considered[best].binding}
		s.currentBestScore = bestScore
	} else {
		s.currentBest = tracked{}
		s.currentBestScore = Rejected
	}

	report.setBest(winner, s.currentBestScore)
	report.Changed = previous != winner
	s.lastReport = report
	s.debugReport(report)

	if report.Changed {
		s.OnSelectionChanged.Invoke(SelectionChange{Previous: previous, Current: winner, Score: s.currentBestScore})
	}
	s.OnScan.Invoke(report)
}

// queryCandidates gathers interactables within range, capped at MaxCandidatesToScore.
func (s *IconSelector) queryCandidates(world engine.WorldAccess, owner *engine.GameObject, view View, report *ScanReport) []Binding {
	overlapped := world.OverlapSphere(view.Location, s.Config.MaxScanDistance, owner)
	report.Overlapped = len(overlapped)

	filter := s.filter()
	bindings := make([]Binding, 0, min(len(overlapped), s.Config.MaxCandidatesToScore))
	for _, obj := range overlapped {
		if obj == nil || obj == owner {
			continue
		}
		b, ok := filter.Resolve(obj)
		if !ok {
			report.FilteredOut++
			if s.Config.Debug.Scoring {
				s.logger().Info("reject candidate", "name", obj.Name, "reason", ReasonNotInteractable)
			}
			continue
		}
		bindings = append(bindings, b)
		if len(bindings) >= s.Config.MaxCandidatesToScore {
			break
		}
	}
	return bindings
}

func indexOf(cs []candidate, g *engine.GameObject) int {
	for i, c := range cs {
		if c.binding.Object == g {
			return i
		}
	}
	return -1
}

func containsRef(cs []candidate, ref engine.GameObjectRef) bool {
	for _, c := range cs {
		if ref.Is(c.binding.Object) {
			return true
		}
	}
	return false
}

// outranks reports whether a candidate beats the running best. Scores within
// tieTolerance are a tie whichever is higher, and the closer one wins.
func outranks(score, distance, bestScore, bestDistance float32) bool {
	if nearlyEqual(score, bestScore) {
		return distance < bestDistance
	}
	return score > bestScore
}

func nearlyEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tieTolerance
}
