package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/egghunt/internal/capture"
	"github.com/abhisek/egghunt/internal/catalog"
	"github.com/abhisek/egghunt/internal/engine"
	"github.com/abhisek/egghunt/internal/perfmon"
	"github.com/abhisek/egghunt/internal/screens/home"
	"github.com/abhisek/egghunt/internal/screens/hunt"
)

func testModel(t *testing.T) (AppModel, home.Deps) {
	t.Helper()
	eng, err := engine.New(engine.Options{Items: catalog.Builtin()})
	if err != nil {
		t.Fatalf("engine.New: %v", err)
	}
	deps := home.Deps{
		Engine:  eng,
		Capture: capture.New(engine.ModeHigh),
		Monitor: perfmon.New(),
	}
	m := newAppModel(deps)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel), deps
}

func TestViewRequestsMouseReportingOnHuntOnly(t *testing.T) {
	m, deps := testModel(t)

	if v := m.View(); v.MouseMode == tea.MouseModeAllMotion {
		t.Error("home screen requested all-motion mouse reporting")
	}

	hs := hunt.New(deps.Engine, deps.Capture, deps.Monitor, deps.Caps, false)
	m.router.Push(hs)
	defer hs.Close()

	if v := m.View(); v.MouseMode != tea.MouseModeAllMotion {
		t.Error("hunt screen did not request all-motion mouse reporting")
	}
}
