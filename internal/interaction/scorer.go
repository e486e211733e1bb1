package interaction

import (
	"fmt"
	"math"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rejected is the score of every candidate that fails a check.
const Rejected float32 = -1

// minCandidateDistance guards against candidates overlapping the observer.
const minCandidateDistance float32 = 1

// Reject reasons reported in Evaluation.Reason. Some carry a formatted detail suffix.
const (
	ReasonNullCandidate    = "NullCandidate"
	ReasonNotInteractable  = "NotInteractable"
	ReasonDistTooSmall     = "DistTooSmall"
	ReasonBeyondMaxDist    = "BeyondMaxScanDistance"
	ReasonBelowMinDist     = "BelowMinDist"
	ReasonForwardDotLow    = "ForwardDotTooLow"
	ReasonNoLineOfSight    = "NoLineOfSight"
	ReasonNoWorld          = "NoWorld"
	ReasonProjectFail      = "ProjectFailOrBadViewport"
	ReasonOffScreen        = "OffScreen"
	ReasonTooFarFromCenter = "TooFarFromCenter"
)

// Evaluation is the outcome of scoring one candidate.
type Evaluation struct {
	Score      float32
	Visible    bool
	Reason     string
	Distance   float32
	ForwardDot float32
	Target     rl.Vector3
	Screen     rl.Vector2
	Projected  bool
}

func (e Evaluation) IsRejected() bool {
	return e.Score < 0
}

// Scorer rates candidates against one view.
type Scorer struct {
	Config Config
	Filter Filter
	World  engine.WorldAccess
	Owner  *engine.GameObject // ignored by line-of-sight traces
}

func (s Scorer) reject(e Evaluation, reason string) Evaluation {
	e.Score = Rejected
	e.Reason = reason
	return e
}

// Score resolves candidate through the filter and evaluates it.
func (s Scorer) Score(candidate *engine.GameObject, view View) (Evaluation, Binding) {
	if candidate == nil {
		return s.reject(Evaluation{Visible: true}, ReasonNullCandidate), Binding{}
	}
	filter := s.Filter
	if filter == nil {
		filter = InterfaceFilter{}
	}
	b, ok := filter.Resolve(candidate)
	if !ok {
		return s.reject(Evaluation{Visible: true}, ReasonNotInteractable), Binding{}
	}
	return s.ScoreBinding(b, view), b
}

// ScoreBinding evaluates an already resolved candidate. Checks run in a fixed
// order and the first failing check rejects the candidate.
func (s Scorer) ScoreBinding(b Binding, view View) Evaluation {
	e := Evaluation{Visible: true}
	cfg := s.Config

	if b.Object == nil {
		return s.reject(e, ReasonNullCandidate)
	}

	target := b.IconLocation()
	toTarget := rl.Vector3Subtract(target, view.Location)
	dist := rl.Vector3Length(toTarget)
	e.Target = target
	e.Distance = dist

	minDist := b.MinimumDistance()
	if dist <= minCandidateDistance {
		return s.reject(e, ReasonDistTooSmall)
	}
	if dist > cfg.MaxScanDistance {
		return s.reject(e, ReasonBeyondMaxDist)
	}
	if dist < minDist {
		return s.reject(e, fmt.Sprintf("%s(%.1f<%.1f)", ReasonBelowMinDist, dist, minDist))
	}

	dir := rl.Vector3Scale(toTarget, 1/dist)
	forwardDot := rl.Vector3DotProduct(view.Forward, dir)
	e.ForwardDot = forwardDot
	if forwardDot < cfg.MinForwardDotToConsider {
		return s.reject(e, fmt.Sprintf("%s(%.3f<%.3f)", ReasonForwardDotLow, forwardDot, cfg.MinForwardDotToConsider))
	}

	distanceScore := 1 - clampf(dist/float32(math.Max(float64(cfg.MaxScanDistance), 1)), 0, 1)

	e.Visible = s.HasLineOfSight(b.Object, view.Location, target)
	if cfg.RequireLineOfSight && !e.Visible {
		return s.reject(e, ReasonNoLineOfSight)
	}

	var positionScore float32
	if cfg.PositionScoreMode == PawnForward {
		if cfg.RejectOffScreenInPawnForwardMode {
			if reason, ok := s.project(&e, view); !ok {
				return s.reject(e, reason)
			}
		}
		positionScore = (forwardDot + 1) * 0.5
	} else {
		reason, ok := s.project(&e, view)
		if !ok {
			return s.reject(e, reason)
		}

		distToCenter := rl.Vector2Distance(e.Screen, view.ViewportCenter)
		halfDiag := 0.5 * float32(math.Hypot(float64(view.ViewportSize.X), float64(view.ViewportSize.Y)))
		normalized := float32(1)
		if halfDiag > 0 {
			normalized = clampf(distToCenter/halfDiag, 0, 1)
		}
		if normalized > cfg.ScreenCenterMaxNormalizedDistance {
			return s.reject(e, fmt.Sprintf("%s(%.3f>%.3f)", ReasonTooFarFromCenter, normalized, cfg.ScreenCenterMaxNormalizedDistance))
		}
		positionScore = 1 - normalized
	}

	var visibilityTerm float32
	if e.Visible {
		visibilityTerm = cfg.Weights.Visibility
	}
	e.Score = visibilityTerm + positionScore*cfg.Weights.Position + distanceScore*cfg.Weights.Distance
	return e
}

// project fills the screen position and reports why projection failed, if it did.
func (s Scorer) project(e *Evaluation, view View) (string, bool) {
	if s.World == nil {
		return ReasonNoWorld, false
	}
	e.Screen, e.Projected = s.World.WorldToScreen(e.Target)
	size := view.ViewportSize
	if !e.Projected || size.X <= 0 || size.Y <= 0 {
		return fmt.Sprintf("%s(Projected=%d VP=%.0fx%.0f)", ReasonProjectFail, boolInt(e.Projected), size.X, size.Y), false
	}
	onScreen := e.Screen.X >= 0 && e.Screen.X <= size.X && e.Screen.Y >= 0 && e.Screen.Y <= size.Y
	if !onScreen {
		return fmt.Sprintf("%s(Screen=%.0f,%.0f VP=%.0f,%.0f)", ReasonOffScreen, e.Screen.X, e.Screen.Y, size.X, size.Y), false
	}
	return "", true
}

// HasLineOfSight traces from the observer to the target. The path is clear if
// nothing is hit or the hit belongs to the candidate itself.
func (s Scorer) HasLineOfSight(candidate *engine.GameObject, from, to rl.Vector3) bool {
	if s.World == nil || candidate == nil {
		return false
	}
	hit, blocked := s.World.LineTrace(from, to, s.Owner)
	if !blocked || hit.GameObject == nil {
		return true
	}
	return hit.GameObject == candidate || hit.GameObject.IsDescendantOf(candidate)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
