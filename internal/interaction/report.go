package interaction

import (
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CandidateReport is the scoring outcome of one candidate in a scan.
type CandidateReport struct {
	Name      string     `json:"name"`
	UID       uint64     `json:"uid"`
	Score     float32    `json:"score"`
	Visible   bool       `json:"visible"`
	Reason    string     `json:"reason,omitempty"`
	Distance  float32    `json:"distance"`
	Target    rl.Vector3 `json:"target"`
	Screen    rl.Vector2 `json:"screen"`
	Projected bool       `json:"projected"`
}

// ScanReport is a diagnostic snapshot of one scan. It is never consulted for selection.
type ScanReport struct {
	Selector    string            `json:"selector"`
	Seq         uint64            `json:"seq"`
	View        View              `json:"view"`
	Overlapped  int               `json:"overlapped"`
	FilteredOut int               `json:"filteredOut"`
	Considered  int               `json:"considered"`
	Candidates  []CandidateReport `json:"candidates"`
	Best        string            `json:"best,omitempty"`
	BestUID     uint64            `json:"bestUid,omitempty"`
	BestScore   float32           `json:"bestScore"`
	Retained    bool              `json:"retained"` // hysteresis kept the previous best
	Changed     bool              `json:"changed"`
	Hidden      int               `json:"hidden"` // hide calls issued
}

func (r *ScanReport) add(g *engine.GameObject, e Evaluation) {
	c := CandidateReport{
		Score:     e.Score,
		Visible:   e.Visible,
		Reason:    e.Reason,
		Distance:  e.Distance,
		Target:    e.Target,
		Screen:    e.Screen,
		Projected: e.Projected,
	}
	if g != nil {
		c.Name = g.Name
		c.UID = g.UID
	}
	r.Candidates = append(r.Candidates, c)
}

func (r *ScanReport) setBest(g *engine.GameObject, score float32) {
	r.BestScore = score
	if g == nil {
		r.Best = ""
		r.BestUID = 0
		return
	}
	r.Best = g.Name
	r.BestUID = g.UID
}

// Candidate looks up a candidate entry by UID.
func (r *ScanReport) Candidate(uid uint64) (CandidateReport, bool) {
	for _, c := range r.Candidates {
		if c.UID == uid {
			return c, true
		}
	}
	return CandidateReport{}, false
}
