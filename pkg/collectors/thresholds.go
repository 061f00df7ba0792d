package collectors

import (
	"fmt"

	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// Thresholds maps a percentage to a state. Values at or above Critical are
// critical, at or above Warning are warnings, everything else is idle.
type Thresholds struct {
	Warning  float64
	Critical float64
}

// DefaultThresholds are used by blocks that configure none.
var DefaultThresholds = Thresholds{Warning: 80, Critical: 95}

// With returns t with the non-nil overrides applied.
func (t Thresholds) With(warning, critical *float64) (Thresholds, error) {
	if warning != nil {
		t.Warning = *warning
	}
	if critical != nil {
		t.Critical = *critical
	}
	if t.Warning > t.Critical {
		return t, fmt.Errorf("collectors: warning threshold %v above critical %v", t.Warning, t.Critical)
	}
	return t, nil
}

// State classifies pct.
func (t Thresholds) State(pct float64) value.State {
	switch {
	case pct >= t.Critical:
		return value.StateCritical
	case pct >= t.Warning:
		return value.StateWarning
	default:
		return value.StateIdle
	}
}

// Percent returns pct as a percentage value carrying its state.
func (t Thresholds) Percent(pct float64) value.Value {
	return value.Number(pct, value.UnitPercent).WithState(t.State(pct))
}
