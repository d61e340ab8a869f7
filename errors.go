package overlay

import (
	"errors"
	"fmt"
)

// ErrPanelNotFound matches every *PanelNotFoundError via errors.Is.
var ErrPanelNotFound = errors.New("overlay: panel not found")

// PanelNotFoundError is returned when an operation names a panel that is
// not registered.
type PanelNotFoundError struct {
	Name string
}

func (e *PanelNotFoundError) Error() string {
	return fmt.Sprintf("overlay: panel %q not found", e.Name)
}

// Is reports whether target is ErrPanelNotFound.
func (e *PanelNotFoundError) Is(target error) bool {
	return target == ErrPanelNotFound
}
