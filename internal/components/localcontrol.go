package components

import "github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"

// LocalControl marks who drives the owning object. Objects without it are
// treated as standalone, which always counts as local.
type LocalControl struct {
	engine.BaseComponent
	Local bool
}

func NewLocalControl(local bool) *LocalControl {
	return &LocalControl{Local: local}
}

func (l *LocalControl) IsLocallyControlled() bool {
	return l.Local
}
