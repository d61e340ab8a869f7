/*
Package overlay provides a named-panel registry for immediate-mode GUI
overlays.

# Overview

An overlay is a set of independently written panels (a stats readout, a
console, a launcher) that are redrawn from scratch every frame. Each panel
has a stable name and its own open/closed state. The Registry owns the
panels, runs their one-time setup, draws the open ones each frame, and
opens or hides them by name.

The registry is generic over two types it never looks inside:

	S  the drawing surface handed to panels for one frame
	C  the shared application state, owned by the host

The bundled packages instantiate it as Registry[*draw.List, *world.World],
but any surface and context work.

# Quick Start

	w := world.New()
	reg := overlay.New[*draw.List, *world.World]().
	    Register(panels.NewStats(), true).
	    Register(panels.NewConsole(128), false).
	    Finalize(w)

	// Frame loop
	for running {
	    dl := draw.Acquire()
	    reg.DrawAll(dl, w)
	    renderer.Render(dl)
	    draw.Release(dl)
	}

# Panel Lifecycle

Every entry is either Open or Closed. It starts in the state given to
Register. It becomes Open through Registry.Open, and Closed through
Registry.Hide or by the panel writing false to its open flag during Draw
(the usual "user clicked the close box" path). A closed panel is not drawn,
so it cannot reopen itself.

Panels may implement the optional interfaces Setupper, Toggler and
Discarder to hook setup, veto open/close requests, and release resources
when replaced by a panel of the same name.

# Commands From Panels

Panels that need to open or hide other panels push requests onto a Queue
kept in the shared state. The host calls Registry.Apply after DrawAll, so
the registry is never mutated while a draw pass is running.

# Errors

Open, Hide and Toggle return a *PanelNotFoundError for unknown names;
errors.Is(err, ErrPanelNotFound) matches it. Setup and Draw have no error
channel: panels handle their own failures.
*/
package overlay
