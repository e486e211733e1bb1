package interaction

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// labelLift raises debug labels above the icon anchor.
const labelLift float32 = 30

// DebugLabel is a scoring annotation drawn in world space for a short time.
type DebugLabel struct {
	Position  rl.Vector3
	Text      string
	Accepted  bool
	Remaining float32
}

// DebugLabels returns the labels that have not expired yet.
func (s *IconSelector) DebugLabels() []DebugLabel {
	return append([]DebugLabel(nil), s.labels...)
}

func (s *IconSelector) ageLabels(deltaTime float32) {
	kept := s.labels[:0]
	for _, l := range s.labels {
		l.Remaining -= deltaTime
		if l.Remaining > 0 {
			kept = append(kept, l)
		}
	}
	s.labels = kept
}

// debugReport logs and labels the first DebugMaxCandidatesToLog candidates.
func (s *IconSelector) debugReport(r *ScanReport) {
	dbg := s.Config.Debug
	if !dbg.Scoring {
		return
	}
	l := s.logger()

	l.Info("overlap",
		"count", r.Overlapped,
		"origin", fmtVec(r.View.Location),
		"radius", s.Config.MaxScanDistance)

	for i, c := range r.Candidates {
		if i >= dbg.MaxCandidatesToLog {
			break
		}
		l.Info("candidate",
			"name", c.Name,
			"score", c.Score,
			"visible", c.Visible,
			"reason", c.Reason,
			"dist", c.Distance,
			"screen", fmt.Sprintf("(%.0f,%.0f)", c.Screen.X, c.Screen.Y),
			"projected", c.Projected)

		if dbg.Draw && dbg.DrawDuration > 0 {
			s.labels = append(s.labels, DebugLabel{
				Position:  rl.Vector3Add(c.Target, rl.Vector3{Y: labelLift}),
				Text:      fmt.Sprintf("%s\nS=%.1f V=%d\n%s", c.Name, c.Score, boolInt(c.Visible), c.Reason),
				Accepted:  c.Score >= 0,
				Remaining: dbg.DrawDuration,
			})
		}
	}

	l.Info("best",
		"name", r.Best,
		"score", r.BestScore,
		"considered", r.Considered,
		"candidates", len(r.Candidates),
		"retained", r.Retained)
}

func fmtVec(v rl.Vector3) string {
	return fmt.Sprintf("(%.1f,%.1f,%.1f)", v.X, v.Y, v.Z)
}
