package ui

import (
	"math"
	"strconv"

	"percolate/internal/core"
)

// adjustedValue returns the value one step away from current in direction
// and whether that move is allowed. Values are clamped to the control bounds;
// a move that cannot change the value is refused.
func adjustedValue(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	var target float64
	switch ctrl.Type {
	case core.ParamTypeInt:
		step := math.Round(ctrl.Step)
		if step <= 0 {
			step = 1
		}
		target = math.Round(current) + float64(direction)*step
	case core.ParamTypeFloat:
		step := ctrl.Step
		if step <= 0 {
			step = 0.05
		}
		// Snap to the step grid so repeated clicks do not accumulate drift.
		target = math.Round((current+float64(direction)*step)/step) * step
	default:
		return current, false
	}
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	if math.Abs(target-current) < 1e-9 {
		return current, false
	}
	return target, true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
