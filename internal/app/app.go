package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/egghunt/internal/capture"
	"github.com/abhisek/egghunt/internal/catalog"
	"github.com/abhisek/egghunt/internal/config"
	"github.com/abhisek/egghunt/internal/device"
	"github.com/abhisek/egghunt/internal/engine"
	"github.com/abhisek/egghunt/internal/perfmon"
	"github.com/abhisek/egghunt/internal/router"
	"github.com/abhisek/egghunt/internal/screens/home"
	"github.com/abhisek/egghunt/internal/screens/hunt"
	"github.com/abhisek/egghunt/internal/store"
	"github.com/abhisek/egghunt/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	eng    *engine.Engine
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(deps home.Deps) AppModel {
	return AppModel{
		router: router.New(home.New(deps)),
		eng:    deps.Engine,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		// Screens own esc so the vault can use it to leave its filter.
		if msg.String() == "ctrl+c" {
			m.closeActive()
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// closeActive tells a hunt screen to end its session before navigating
// away.
func (m AppModel) closeActive() {
	if hs, ok := m.router.Active().(*hunt.HuntScreen); ok {
		hs.Close()
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// All-motion reporting only while hunting; the other screens have no
	// use for pointer events.
	if _, ok := active.(*hunt.HuntScreen); ok {
		v.MouseMode = tea.MouseModeAllMotion
	}

	found := 0
	items := m.eng.Items()
	for _, item := range items {
		if m.eng.IsDiscovered(item.ID) {
			found++
		}
	}
	header := layout.RenderHeader(title, found, len(items), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(interface{ KeyHints() []layout.KeyHint }); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Options configures Run.
type Options struct {
	Config *config.Config
	DBPath string
}

// Run wires the engine to its catalog and store and starts the Bubble Tea
// program.
func Run(opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	items := buildCatalog(cfg)

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = cfg.Storage.DBPath
	}
	var err error
	if dbPath == "" {
		dbPath, err = store.DefaultDBPath()
		if err != nil {
			return fmt.Errorf("resolve db path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return fmt.Errorf("create db directory: %w", err)
	}

	var events store.EventRepo
	var snapshots store.SnapshotRepo
	st, err := store.Open(dbPath)
	if err != nil {
		// The hunt still works without persistence; discoveries just
		// won't survive the process.
		fmt.Fprintln(os.Stderr, "Warning: opening store:", err)
	} else {
		defer func() { _ = st.Close() }()
		events = st.EventRepo()
		snapshots = st.SnapshotRepo()
	}

	caps := device.Detect(nil)
	if cfg.UI.ReducedMotion {
		caps.ReducedMotion = true
	}

	maxHints := cfg.Hints.Max
	if !cfg.Hints.Enabled {
		maxHints = -1
	}

	eng, err := engine.New(engine.Options{
		Items:     items,
		Events:    events,
		Snapshots: snapshots,
		MaxHints:  maxHints,
		Warn: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
		},
	})
	if err != nil {
		return fmt.Errorf("build engine: %w", err)
	}
	eng.LoadState(context.Background())

	mode := engine.Mode(cfg.Performance.Mode)
	if mode == "" {
		mode = engine.ModeHigh
	}
	eng.SetPerformanceMode(mode)
	eng.SetAccessibilityMode(cfg.UI.Accessibility)

	deps := home.Deps{
		Engine:        eng,
		Capture:       capture.New(mode),
		Monitor:       perfmon.New(),
		Events:        events,
		Caps:          caps,
		Notifications: cfg.UI.Notifications,
	}

	p := tea.NewProgram(newAppModel(deps))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

// buildCatalog assembles the egg set: builtins plus any user catalogs.
// A broken user catalog is reported and skipped rather than blocking the
// hunt.
func buildCatalog(cfg *config.Config) []catalog.Item {
	var items []catalog.Item
	if cfg.Catalog.Builtin {
		items = catalog.Builtin()
	}
	for _, dir := range cfg.Catalog.Dirs {
		loaded, err := catalog.LoadDir(dir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: loading catalog %s: %v\n", dir, err)
			continue
		}
		items = append(items, loaded...)
	}
	return items
}
