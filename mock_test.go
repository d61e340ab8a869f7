package overlay_test

import "github.com/go-theft-auto/overlay"

// surface records which panels drew in a frame.
type surface struct {
	drawn []string
}

// appState is the shared context handed to mock panels.
type appState struct {
	events []string
	ready  map[string]bool
}

func newAppState() *appState {
	return &appState{ready: make(map[string]bool)}
}

// mockPanel is a configurable test panel.
type mockPanel struct {
	name string

	setupCalls   int
	drawCalls    int
	discardCalls int
	drawnEarly   bool // drawn before setup ran

	closeOnDraw bool            // write false to open during Draw
	toggle      func(bool) bool // OnToggleOpen override, identity when nil
}

func newMockPanel(name string) *mockPanel {
	return &mockPanel{name: name}
}

func (p *mockPanel) Name() string { return p.name }

func (p *mockPanel) Setup(ctx *appState) {
	p.setupCalls++
	ctx.ready[p.name] = true
	ctx.events = append(ctx.events, "setup:"+p.name)
}

func (p *mockPanel) Draw(s *surface, ctx *appState, open *bool) {
	p.drawCalls++
	if !ctx.ready[p.name] {
		p.drawnEarly = true
	}
	s.drawn = append(s.drawn, p.name)
	ctx.events = append(ctx.events, "draw:"+p.name)
	if p.closeOnDraw {
		*open = false
	}
}

func (p *mockPanel) OnToggleOpen(requested bool) bool {
	if p.toggle != nil {
		return p.toggle(requested)
	}
	return requested
}

func (p *mockPanel) Discard() { p.discardCalls++ }

// plainPanel implements only the required methods.
type plainPanel struct {
	name  string
	draws int
}

func (p *plainPanel) Name() string { return p.name }

func (p *plainPanel) Draw(s *surface, _ *appState, _ *bool) {
	p.draws++
	s.drawn = append(s.drawn, p.name)
}

type testRegistry = overlay.Registry[*surface, *appState]

func newRegistry() *testRegistry {
	return overlay.New[*surface, *appState]()
}

// frame runs one draw pass and returns the names drawn, in order.
func frame(r *testRegistry, ctx *appState) []string {
	s := &surface{}
	r.DrawAll(s, ctx)
	return s.drawn
}
