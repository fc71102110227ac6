// Package term draws a simulation on a character terminal and maps keys and
// mouse clicks onto a Runner.
package term

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/logging"

	"github.com/gdamore/tcell/v2"
)

// CellWidth is the number of terminal columns used per grid cell, which keeps
// cells roughly square.
const CellWidth = 2

var (
	aliveStyle  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorWhiteSmoke).Foreground(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// View renders a Runner's simulation onto a tcell screen.
type View struct {
	screen tcell.Screen
	runner *app.Runner
	log    *slog.Logger

	buttons tcell.ButtonMask
}

// NewView binds a screen to a runner. A nil logger discards records.
func NewView(screen tcell.Screen, runner *app.Runner, logger *slog.Logger) *View {
	if logger == nil {
		logger = logging.Discard()
	}
	return &View{screen: screen, runner: runner, log: logger}
}

// Run processes input and clock ticks until the user quits or ctx ends. The
// runner is only touched from this goroutine.
func (v *View) Run(ctx context.Context, frame time.Duration) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go v.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case now := <-ticker.C:
			if v.runner.Tick(now) {
				v.Draw()
			}
		}
	}
}

// HandleEvent applies one input event. It reports whether the user asked to quit.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKey(ev)
	case *tcell.EventMouse:
		v.handleMouse(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return false
}

func (v *View) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		v.runner.Start()
		return false
	case tcell.KeyUp:
		v.runner.SetDelay(v.runner.Delay() - app.DelayStep)
		return false
	case tcell.KeyDown:
		v.runner.SetDelay(v.runner.Delay() + app.DelayStep)
		return false
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		if v.runner.Running() {
			v.runner.Stop()
		} else {
			v.runner.Start()
		}
	case 'n':
		v.runner.Stop()
		v.runner.StepOnce()
	case 'c':
		v.runner.Clear()
	case 'r':
		v.runner.Reset(time.Now().UnixNano())
	case '+':
		v.runner.SetDelay(v.runner.Delay() - app.DelayStep)
	case '-':
		v.runner.SetDelay(v.runner.Delay() + app.DelayStep)
	}
	return false
}

// handleMouse toggles the clicked cell on button press, ignoring drags.
func (v *View) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && v.buttons&tcell.Button1 == 0
	v.buttons = buttons
	if !pressed {
		return
	}
	px, py := ev.Position()
	size := v.runner.Sim().Size()
	x, y := px/CellWidth, py
	if x >= size.W || y >= size.H {
		return
	}
	if err := v.runner.Toggle(x, y); err != nil {
		v.log.Warn("toggle failed", slog.Any("err", err))
	}
}

// Draw paints the grid and a status line below it.
func (v *View) Draw() {
	sim := v.runner.Sim()
	size := sim.Size()
	cells := sim.Cells()

	v.screen.Clear()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style := deadStyle
			if cells[y*size.W+x] != 0 {
				style = aliveStyle
			}
			for c := 0; c < CellWidth; c++ {
				v.screen.SetContent(x*CellWidth+c, y, ' ', nil, style)
			}
		}
	}
	v.drawText(0, size.H, statusStyle, v.status())
	v.drawText(0, size.H+1, statusStyle, "enter run  space pause  n step  c clear  r reseed  +/- speed  q quit")
	v.screen.Show()
}

func (v *View) status() string {
	state := "stopped"
	if v.runner.Running() {
		state = "running"
	}
	return fmt.Sprintf("Step: %07d  %s  delay %v", v.runner.Sim().Generation(), state, v.runner.Delay())
}

func (v *View) drawText(x, y int, style tcell.Style, s string) {
	for i, r := range s {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
