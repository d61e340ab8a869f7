package term

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/overlay/draw"
	"github.com/go-theft-auto/overlay/input"
	"github.com/go-theft-auto/overlay/internal/app"
)

type tickMsg time.Time

// Model is the bubbletea model driving an app.App.
type Model struct {
	ctx      context.Context
	app      *app.App
	grid     *Grid
	interval time.Duration
	last     time.Time
	frameErr error
}

// New creates a Model that runs a frame fps times per second.
func New(ctx context.Context, a *app.App, fps int) *Model {
	if fps <= 0 {
		fps = 30
	}
	return &Model{
		ctx:      ctx,
		app:      a,
		grid:     NewGrid(80, 24),
		interval: time.Second / time.Duration(fps),
	}
}

// Run starts a full-screen program and blocks until it quits.
func Run(ctx context.Context, a *app.App, fps int) error {
	p := tea.NewProgram(New(ctx, a, fps),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}

// Grid returns the raster of the last frame.
func (m *Model) Grid() *Grid { return m.grid }

// LastError returns the error of the last frame, if any.
func (m *Model) LastError() error { return m.frameErr }

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	in := m.app.Input
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.grid.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.app.Quit()
			return m, tea.Quit
		}
		if k, ok := keyFor(msg); ok {
			// Terminals report presses only.
			in.SetKey(k, true)
			in.SetKey(k, false)
		}
		return m, nil

	case tea.MouseMsg:
		x := float32(msg.X)*cellW + cellW/2
		y := float32(msg.Y)*cellH + cellH/2
		btn, ok := mouseButton(msg.Button)
		switch {
		case msg.Action == tea.MouseActionPress && ok:
			in.SetMousePos(x, y)
			in.SetMouseButton(btn, true)
		case msg.Action == tea.MouseActionRelease:
			in.SetMousePos(x, y)
			for b := range input.MouseButtonCount {
				in.SetMouseButton(b, false)
			}
		default:
			in.SetMousePos(x, y)
		}
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		dt := float32(m.interval.Seconds())
		if !m.last.IsZero() {
			dt = float32(now.Sub(m.last).Seconds())
		}
		m.last = now
		m.frame(dt)
		if m.app.Done() {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) frame(dt float32) {
	dl := draw.Acquire()
	defer draw.Release(dl)
	m.frameErr = m.app.Frame(m.ctx, dl, m.grid.PixelSize(), dt)
	m.grid.Raster(dl)
}

func (m *Model) View() string {
	return m.grid.Render()
}

func keyFor(msg tea.KeyMsg) (input.Key, bool) {
	switch msg.Type {
	case tea.KeyEsc:
		return input.KeyEscape, true
	case tea.KeyTab:
		return input.KeyTab, true
	case tea.KeyEnter:
		return input.KeyEnter, true
	case tea.KeySpace:
		return input.KeySpace, true
	case tea.KeyBackspace:
		return input.KeyBackspace, true
	case tea.KeyUp:
		return input.KeyUp, true
	case tea.KeyDown:
		return input.KeyDown, true
	}
	return input.ParseKey(msg.String())
}

func mouseButton(b tea.MouseButton) (input.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return input.MouseButtonLeft, true
	case tea.MouseButtonRight:
		return input.MouseButtonRight, true
	case tea.MouseButtonMiddle:
		return input.MouseButtonMiddle, true
	}
	return 0, false
}
