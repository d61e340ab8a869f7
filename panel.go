package overlay

// Panel is the contract every drawable overlay panel satisfies.
//
// S is the drawing surface handed out for one frame and C is the shared
// application state. The registry passes both through untouched; it never
// inspects either.
type Panel[S, C any] interface {
	// Name returns the stable identity of the panel. It must return the
	// same non-empty value on every call and is used as the registry key.
	Name() string

	// Draw renders the panel for one frame. It is only called while the
	// panel is open. Writing false to open requests closure, which the
	// registry persists after the call returns.
	//
	// Draw must not block and must not panic on missing resources; render
	// nothing or a placeholder instead so the frame loop stays alive.
	Draw(surface S, ctx C, open *bool)
}

// Setupper is implemented by panels that need one-time initialization
// against the shared application state before their first Draw.
type Setupper[C any] interface {
	Setup(ctx C)
}

// Toggler is implemented by panels that want a say in explicit open/close
// requests made through Registry.Open and Registry.Hide. The returned value
// is what the registry stores as the new open state.
type Toggler interface {
	OnToggleOpen(requested bool) bool
}

// Discarder is implemented by panels that hold resources outside the
// registry. Discard is called when a later registration with the same name
// replaces the panel.
type Discarder interface {
	Discard()
}

// PanelFunc adapts a plain draw function into a Panel.
// Useful for small panels that carry no state of their own.
type PanelFunc[S, C any] struct {
	ID string
	Fn func(surface S, ctx C, open *bool)
}

// Name implements Panel.
func (p PanelFunc[S, C]) Name() string { return p.ID }

// Draw implements Panel.
func (p PanelFunc[S, C]) Draw(surface S, ctx C, open *bool) {
	if p.Fn != nil {
		p.Fn(surface, ctx, open)
	}
}
