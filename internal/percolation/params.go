package percolation

import (
	"strconv"
	"time"

	"percolate/internal/core"
)

// Parameters reports the pending configuration and the state of the
// current run for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	e.mu.Lock()
	cfg := e.cfg
	active := e.active
	generation := e.generation
	run := e.run
	e.mu.Unlock()

	state, processed, pending, bottom := Idle, 0, 0, false
	if run != nil {
		state = run.State()
		processed = run.Processed()
		pending = run.Pending()
		bottom = run.ReachedBottom()
	}

	groups := []core.ParameterGroup{
		{
			Name: "Slab",
			Params: []core.Parameter{
				intParam("n", "Size", cfg.Size),
				floatParam("p", "Erosion", cfg.Erosion),
				intParam("speed_ms", "Step delay (ms)", int(cfg.Speed/time.Millisecond)),
			},
			Summary: "applied on reset",
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				textParam("state", "State", state.String()),
				int64Param("seed", "Seed", active.Seed),
				intParam("generation", "Generation", int(generation)),
				intParam("processed", "Processed", processed),
				intParam("pending", "Frontier", pending),
				boolParam("bottom", "Reached bottom", bottom),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "n", Label: "Size", Type: core.ParamTypeInt, Step: 10, Min: 1, Max: 600, HasMin: true, HasMax: true},
		{Key: "p", Label: "Erosion", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "speed_ms", Label: "Delay ms", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 250, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates the size or step delay used by the next reset.
func (e *Engine) SetIntParameter(key string, value int) bool {
	cfg := e.Config()
	switch key {
	case "n":
		cfg.Size = value
	case "speed_ms":
		cfg.Speed = time.Duration(value) * time.Millisecond
	default:
		return false
	}
	return e.Configure(cfg.Size, cfg.Erosion, cfg.Speed) == nil
}

// SetFloatParameter updates the erosion probability used by the next reset.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	if key != "p" {
		return false
	}
	cfg := e.Config()
	return e.Configure(cfg.Size, value, cfg.Speed) == nil
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func textParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeText,
		Value: value,
	}
}
