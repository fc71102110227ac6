package life

import "mad-life/internal/core"

// Parameters reports the grid settings and population for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.w),
				core.IntParam("h", "Height", l.h),
				core.StringParam("edge", "Edges", l.policy.String()),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				core.IntParam("generation", "Step", l.generation),
				core.IntParam("alive", "Alive", l.Alive()),
				core.FloatParam("density", "Reset density", l.density),
			},
		},
	}}
}

// ParameterControls lists the values adjustable from the HUD.
func (l *Life) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{{
		Key:    "density",
		Label:  "Reset density",
		Type:   core.ParamTypeFloat,
		Step:   0.05,
		Min:    0,
		Max:    1,
		HasMin: true,
		HasMax: true,
	}}
}

// SetFloatParameter updates the density used by Reset.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "density":
		l.density = clampDensity(value)
		return true
	default:
		return false
	}
}
