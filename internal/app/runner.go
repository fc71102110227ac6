package app

import (
	"errors"
	"log/slog"
	"time"

	"mad-life/internal/core"
	"mad-life/internal/logging"
)

var errNotEditable = errors.New("app: simulation does not support editing")

// Runner owns the run/stop state of a simulation and steps it on a fixed
// delay. It is toolkit-agnostic: front-ends feed it clock ticks and input.
type Runner struct {
	sim      core.Sim
	ticker   *core.Ticker
	running  bool
	log      *slog.Logger
	onChange func()
}

// NewRunner constructs a stopped Runner. A nil logger discards records.
func NewRunner(sim core.Sim, delay time.Duration, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	r := &Runner{sim: sim, ticker: core.NewTicker(DefaultDelay), log: logger}
	r.SetDelay(delay)
	return r
}

// Sim returns the driven simulation.
func (r *Runner) Sim() core.Sim { return r.sim }

// OnChange registers a callback invoked after every step or edit.
func (r *Runner) OnChange(fn func()) { r.onChange = fn }

// Running reports whether automatic stepping is active.
func (r *Runner) Running() bool { return r.running }

// Start begins automatic stepping. The first tick fires immediately.
func (r *Runner) Start() {
	if r.running {
		return
	}
	r.running = true
	r.ticker.Restart()
	r.log.Info("run started", slog.Int("generation", r.sim.Generation()), slog.Duration("delay", r.Delay()))
}

// Stop halts automatic stepping.
func (r *Runner) Stop() {
	if !r.running {
		return
	}
	r.running = false
	r.log.Info("run stopped", slog.Int("generation", r.sim.Generation()))
}

// StepOnce advances a single generation and reports whether it was static.
func (r *Runner) StepOnce() bool {
	static := r.sim.Step()
	r.notify()
	return static
}

// Tick steps the simulation when running and the delay has elapsed. A static
// generation ends the run. It reports whether a step happened.
func (r *Runner) Tick(now time.Time) bool {
	if !r.running || !r.ticker.Due(now) {
		return false
	}
	if r.StepOnce() {
		r.log.Info("reached static configuration", slog.Int("generation", r.sim.Generation()))
		r.Stop()
	}
	return true
}

// Toggle flips one cell of an editable simulation.
func (r *Runner) Toggle(x, y int) error {
	ed, ok := r.sim.(core.Editor)
	if !ok {
		return errNotEditable
	}
	if err := ed.Toggle(x, y); err != nil {
		return err
	}
	r.log.Debug("cell toggled", slog.Int("x", x), slog.Int("y", y))
	r.notify()
	return nil
}

// Clear kills every cell and stops the run.
func (r *Runner) Clear() {
	r.Stop()
	if ed, ok := r.sim.(core.Editor); ok {
		ed.Clear()
		r.log.Info("grid cleared")
	}
	r.notify()
}

// Reset stops the run and reseeds the simulation.
func (r *Runner) Reset(seed int64) {
	r.Stop()
	r.sim.Reset(seed)
	r.log.Info("grid reseeded", slog.Int64("seed", seed))
	r.notify()
}

// Delay returns the pause between automatic steps.
func (r *Runner) Delay() time.Duration { return r.ticker.Interval() }

// SetDelay clamps d to [MinDelay, MaxDelay], rounds it to DelayStep and
// applies it. The effective delay is returned.
func (r *Runner) SetDelay(d time.Duration) time.Duration {
	d = d.Round(DelayStep)
	if d < MinDelay {
		d = MinDelay
	}
	if d > MaxDelay {
		d = MaxDelay
	}
	r.ticker.SetInterval(d)
	return d
}

// Parameters reports run state followed by the simulation's own values.
func (r *Runner) Parameters() core.ParameterSnapshot {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Run",
		Params: []core.Parameter{
			core.BoolParam("running", "Running", r.running),
			core.IntParam("delay_ms", "Delay (ms)", int(r.Delay()/time.Millisecond)),
			core.IntParam("generation", "Step", r.sim.Generation()),
		},
	}}}
	if p, ok := r.sim.(core.ParameterProvider); ok {
		for _, g := range p.Parameters().Groups {
			// The run group already reports the step counter.
			params := make([]core.Parameter, 0, len(g.Params))
			for _, param := range g.Params {
				if param.Key != "generation" {
					params = append(params, param)
				}
			}
			snap.Groups = append(snap.Groups, core.ParameterGroup{Name: g.Name, Params: params})
		}
	}
	return snap
}

// ParameterControls lists the delay control plus any simulation controls.
func (r *Runner) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{{
		Key:    "delay_ms",
		Label:  "Delay (ms)",
		Type:   core.ParamTypeInt,
		Step:   float64(DelayStep / time.Millisecond),
		Min:    float64(MinDelay / time.Millisecond),
		Max:    float64(MaxDelay / time.Millisecond),
		HasMin: true,
		HasMax: true,
	}}
	if p, ok := r.sim.(core.ParameterControlsProvider); ok {
		controls = append(controls, p.ParameterControls()...)
	}
	return controls
}

// SetIntParameter updates the delay or forwards to the simulation.
func (r *Runner) SetIntParameter(key string, value int) bool {
	if key == "delay_ms" {
		d := r.SetDelay(time.Duration(value) * time.Millisecond)
		r.log.Debug("delay changed", slog.Duration("delay", d))
		return true
	}
	if s, ok := r.sim.(core.IntParameterSetter); ok {
		return s.SetIntParameter(key, value)
	}
	return false
}

// SetFloatParameter forwards to the simulation.
func (r *Runner) SetFloatParameter(key string, value float64) bool {
	if s, ok := r.sim.(core.FloatParameterSetter); ok {
		return s.SetFloatParameter(key, value)
	}
	return false
}

func (r *Runner) notify() {
	if r.onChange != nil {
		r.onChange()
	}
}
