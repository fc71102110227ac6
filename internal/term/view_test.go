package term

import (
	"context"
	"strings"
	"testing"
	"time"

	"mad-life/internal/app"
	"mad-life/internal/life"

	"github.com/gdamore/tcell/v2"
)

func newTestView(t *testing.T) (*View, tcell.SimulationScreen, *life.Life) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 12)

	sim, err := life.New(6, 5, nil, life.Wrapping)
	if err != nil {
		t.Fatal(err)
	}
	runner := app.NewRunner(sim, 100*time.Millisecond, nil)
	return NewView(screen, runner, nil), screen, sim
}

func background(screen tcell.SimulationScreen, x, y int) tcell.Color {
	cells, w, _ := screen.GetContents()
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg
}

func TestDrawPaintsAliveCells(t *testing.T) {
	view, screen, sim := newTestView(t)
	if err := sim.SetCell(2, 1, true); err != nil {
		t.Fatal(err)
	}
	view.Draw()

	aliveBg := tcell.ColorBlack
	for c := 0; c < CellWidth; c++ {
		if got := background(screen, 2*CellWidth+c, 1); got != aliveBg {
			t.Fatalf("column %d of alive cell has background %v", c, got)
		}
	}
	if got := background(screen, 0, 0); got == aliveBg {
		t.Fatal("dead cell drawn as alive")
	}

	cells, w, _ := screen.GetContents()
	var line strings.Builder
	for x := 0; x < w; x++ {
		if runes := cells[5*w+x].Runes; len(runes) > 0 {
			line.WriteRune(runes[0])
		}
	}
	if !strings.HasPrefix(line.String(), "Step: 0000000  stopped") {
		t.Fatalf("unexpected status line %q", line.String())
	}
}

func TestMouseClickTogglesOncePerPress(t *testing.T) {
	view, _, sim := newTestView(t)

	view.HandleEvent(tcell.NewEventMouse(5, 3, tcell.Button1, tcell.ModNone))
	if alive, _ := sim.Cell(2, 3); !alive {
		t.Fatal("click should revive cell (2,3)")
	}
	// Holding the button while moving must not toggle again.
	view.HandleEvent(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone))
	if alive, _ := sim.Cell(2, 3); !alive {
		t.Fatal("drag toggled the cell back")
	}
	view.HandleEvent(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone))
	view.HandleEvent(tcell.NewEventMouse(4, 3, tcell.Button1, tcell.ModNone))
	if alive, _ := sim.Cell(2, 3); alive {
		t.Fatal("second press should kill the cell")
	}

	view.HandleEvent(tcell.NewEventMouse(4, 3, tcell.ButtonNone, tcell.ModNone))
	view.HandleEvent(tcell.NewEventMouse(40, 9, tcell.Button1, tcell.ModNone))
	if sim.Alive() != 0 {
		t.Fatal("click outside the grid must not edit cells")
	}
}

func TestKeysDriveRunner(t *testing.T) {
	view, _, sim := newTestView(t)
	for _, p := range [][2]int{{1, 2}, {2, 2}, {3, 2}} {
		_ = sim.SetCell(p[0], p[1], true)
	}

	if view.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone)) {
		t.Fatal("n should not quit")
	}
	if sim.Generation() != 1 {
		t.Fatalf("n should step once, generation=%d", sim.Generation())
	}

	view.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if !view.runner.Running() {
		t.Fatal("space should start the run")
	}
	view.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone))
	if view.runner.Running() || sim.Alive() != 0 {
		t.Fatal("c should stop and clear")
	}

	before := view.runner.Delay()
	view.HandleEvent(tcell.NewEventKey(tcell.KeyRune, '-', tcell.ModNone))
	if view.runner.Delay() != before+app.DelayStep {
		t.Fatalf("- should slow down, delay=%v", view.runner.Delay())
	}

	if !view.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Fatal("q should quit")
	}
	if !view.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("escape should quit")
	}
}

func TestRunReturnsOnQuitKey(t *testing.T) {
	view, screen, _ := newTestView(t)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := view.Run(ctx, 10*time.Millisecond); err != nil {
		t.Fatalf("expected clean quit, got %v", err)
	}
}
