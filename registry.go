package overlay

import (
	"log/slog"
	"reflect"
	"slices"
)

// PanelID identifies a registry entry. IDs are assigned in registration
// order from a per-registry counter and are never reused.
type PanelID uint32

// Entry is a read-only snapshot of one registered panel.
type Entry struct {
	ID   PanelID
	Name string
	Open bool
}

// entry wraps exactly one panel. The registry owns it exclusively.
type entry[S, C any] struct {
	id    PanelID
	name  string
	panel Panel[S, C]
	open  bool
	setUp bool
}

// Registry owns a collection of named panels, drives their setup pass and
// per-frame draw pass, and opens or hides them by name.
//
// Usage:
//
//	reg := overlay.New[*draw.List, *world.World]().
//	    Register(panels.NewStats(), true).
//	    Register(panels.NewConsole(64), false).
//	    Finalize(w)
//
//	// Every frame:
//	reg.DrawAll(dl, w)
//
// A Registry is not safe for concurrent use. The host serializes all calls
// on its frame loop.
type Registry[S, C any] struct {
	entries map[string]*entry[S, C]
	order   []*entry[S, C] // ascending id, draw order
	scratch []*entry[S, C] // open set of the current draw pass
	nextID  PanelID
	passes  int // completed Finalize calls
	logger  *slog.Logger
}

// New creates an empty registry.
func New[S, C any](opts ...Option) *Registry[S, C] {
	o := applyOptions(opts)
	return &Registry[S, C]{
		entries: make(map[string]*entry[S, C], 8),
		order:   make([]*entry[S, C], 0, 8),
		logger:  o.logger,
	}
}

// Register adds panel with the given initial open state and returns the
// registry so calls can be chained.
//
// A panel whose name is already registered replaces the existing entry.
// The replacement gets a fresh PanelID, and the old panel is dropped after
// its Discard hook (if any) has run. Registration never fails; a nil panel,
// including a typed nil pointer, is ignored.
func (r *Registry[S, C]) Register(panel Panel[S, C], open bool) *Registry[S, C] {
	if isNil(panel) {
		r.logger.Warn("overlay: ignoring nil panel registration")
		return r
	}

	name := panel.Name()
	if name == "" {
		r.logger.Warn("overlay: registering panel with empty name")
	}

	if old, ok := r.entries[name]; ok {
		r.logger.Warn("overlay: replacing panel", "name", name, "old_id", old.id)
		r.remove(old)
		if d, ok := old.panel.(Discarder); ok {
			d.Discard()
		}
	}

	e := &entry[S, C]{
		id:    r.nextID,
		name:  name,
		panel: panel,
		open:  open,
	}
	r.nextID++
	r.entries[name] = e
	r.order = append(r.order, e)

	r.logger.Debug("overlay: registered panel", "name", name, "id", e.id, "open", open)
	return r
}

func isNil(panel any) bool {
	if panel == nil {
		return true
	}
	v := reflect.ValueOf(panel)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// remove drops e from both the ordered slice and the name index.
func (r *Registry[S, C]) remove(e *entry[S, C]) {
	if i := slices.Index(r.order, e); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	delete(r.entries, e.name)
}

// Finalize runs Setup on every registered panel and returns the registry.
// Call it once after all Register calls and before the first DrawAll.
// Calling it again re-runs Setup on every panel.
func (r *Registry[S, C]) Finalize(ctx C) *Registry[S, C] {
	if r.passes > 0 {
		r.logger.Debug("overlay: re-running setup", "pass", r.passes+1, "panels", len(r.order))
	}
	for _, e := range r.order {
		r.setup(e, ctx)
	}
	r.passes++
	r.logger.Debug("overlay: setup complete", "panels", len(r.order))
	return r
}

func (r *Registry[S, C]) setup(e *entry[S, C], ctx C) {
	if s, ok := e.panel.(Setupper[C]); ok {
		s.Setup(ctx)
	}
	e.setUp = true
}

// DrawAll draws every open panel once, in ascending id order, and stores
// back whatever open state each panel left behind. Closed panels are
// skipped entirely.
//
// Panels that have not been set up yet (registered after Finalize, or
// Finalize never called) are set up here before anything is drawn, so no
// panel is ever drawn ahead of its Setup.
//
// Panels must not call Open, Hide or Toggle on this registry from Draw.
// Push requests onto a Queue instead and Apply it after DrawAll returns.
// A direct Hide of a panel in the current pass still sticks: the panel is
// drawn this frame and stays closed afterwards.
func (r *Registry[S, C]) DrawAll(surface S, ctx C) {
	for _, e := range r.order {
		if !e.setUp {
			r.logger.Debug("overlay: late setup", "name", e.name, "id", e.id)
			r.setup(e, ctx)
		}
	}

	// The open set is fixed before the first Draw so a flag flipped
	// mid-pass only takes effect next frame.
	r.scratch = r.scratch[:0]
	for _, e := range r.order {
		if e.open {
			r.scratch = append(r.scratch, e)
		}
	}

	for _, e := range r.scratch {
		open := true
		e.panel.Draw(surface, ctx, &open)
		if !open {
			r.logger.Debug("overlay: panel closed itself", "name", e.name)
		}
		// A Hide issued mid-pass wins over the flag the panel left behind.
		e.open = e.open && open
	}
	clear(r.scratch)
}

// Open asks the named panel to open. The panel's Toggler, if any, decides
// the stored state.
func (r *Registry[S, C]) Open(name string) error {
	_, err := r.request(name, true)
	return err
}

// Hide asks the named panel to close. The panel's Toggler, if any, decides
// the stored state. Hiding a closed panel is not an error.
func (r *Registry[S, C]) Hide(name string) error {
	_, err := r.request(name, false)
	return err
}

// Toggle opens the named panel if it is closed and hides it otherwise.
// Returns the state that was stored.
func (r *Registry[S, C]) Toggle(name string) (bool, error) {
	e, ok := r.entries[name]
	if !ok {
		r.logger.Debug("overlay: toggle of unknown panel", "name", name)
		return false, &PanelNotFoundError{Name: name}
	}
	return r.request(name, !e.open)
}

func (r *Registry[S, C]) request(name string, open bool) (bool, error) {
	e, ok := r.entries[name]
	if !ok {
		r.logger.Debug("overlay: request for unknown panel", "name", name, "open", open)
		return false, &PanelNotFoundError{Name: name}
	}

	return r.set(e, open), nil
}

// set stores the state e's Toggler, if any, chooses for a request.
func (r *Registry[S, C]) set(e *entry[S, C], open bool) bool {
	stored := open
	if t, ok := e.panel.(Toggler); ok {
		stored = t.OnToggleOpen(open)
	}
	if stored != open {
		r.logger.Debug("overlay: panel overrode request", "name", e.name, "requested", open, "stored", stored)
	}
	e.open = stored
	return stored
}

// HideAll asks every panel to close. Panels may veto through Toggler.
func (r *Registry[S, C]) HideAll() {
	for _, e := range r.order {
		r.set(e, false)
	}
}

// IsOpen returns the open state of the named panel. ok is false if no such
// panel is registered.
func (r *Registry[S, C]) IsOpen(name string) (open, ok bool) {
	e, ok := r.entries[name]
	if !ok {
		return false, false
	}
	return e.open, true
}

// IsAnyOpen returns true if any panel is currently open.
func (r *Registry[S, C]) IsAnyOpen() bool {
	for _, e := range r.order {
		if e.open {
			return true
		}
	}
	return false
}

// Lookup returns a snapshot of the named entry.
func (r *Registry[S, C]) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	if !ok {
		return Entry{}, false
	}
	return e.snapshot(), true
}

// Panel returns the named panel, or nil if not registered.
func (r *Registry[S, C]) Panel(name string) Panel[S, C] {
	if e, ok := r.entries[name]; ok {
		return e.panel
	}
	return nil
}

// Entries returns snapshots of all entries in id order (for inspection/debugging).
func (r *Registry[S, C]) Entries() []Entry {
	out := make([]Entry, 0, len(r.order))
	for _, e := range r.order {
		out = append(out, e.snapshot())
	}
	return out
}

// Names returns registered panel names in id order.
func (r *Registry[S, C]) Names() []string {
	out := make([]string, 0, len(r.order))
	for _, e := range r.order {
		out = append(out, e.name)
	}
	return out
}

// Len returns the number of registered panels.
func (r *Registry[S, C]) Len() int {
	return len(r.order)
}

func (e *entry[S, C]) snapshot() Entry {
	return Entry{ID: e.id, Name: e.name, Open: e.open}
}
