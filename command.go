package overlay

import "errors"

// RequestKind says what a queued Request asks for.
type RequestKind uint8

const (
	RequestOpen RequestKind = iota
	RequestHide
	RequestToggle
)

func (k RequestKind) String() string {
	switch k {
	case RequestOpen:
		return "open"
	case RequestHide:
		return "hide"
	case RequestToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Request is one deferred open/hide/toggle command.
type Request struct {
	Kind RequestKind
	Name string
}

// Queue collects open/hide requests issued while a frame is being drawn.
// Panels reach it through the shared application state; the host applies
// it with Registry.Apply once DrawAll has returned, so no registry state
// changes underneath a running draw pass.
type Queue struct {
	pending []Request
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{pending: make([]Request, 0, 4)}
}

// RequestOpen queues an Open for name.
func (q *Queue) RequestOpen(name string) {
	q.pending = append(q.pending, Request{Kind: RequestOpen, Name: name})
}

// RequestHide queues a Hide for name.
func (q *Queue) RequestHide(name string) {
	q.pending = append(q.pending, Request{Kind: RequestHide, Name: name})
}

// RequestToggle queues a Toggle for name.
func (q *Queue) RequestToggle(name string) {
	q.pending = append(q.pending, Request{Kind: RequestToggle, Name: name})
}

// Len returns the number of pending requests.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Drain returns the pending requests in issue order and empties the queue.
func (q *Queue) Drain() []Request {
	if len(q.pending) == 0 {
		return nil
	}
	out := make([]Request, len(q.pending))
	copy(out, q.pending)
	q.pending = q.pending[:0]
	return out
}

// Apply drains q and executes every request in order. A request naming an
// unknown panel does not stop the rest; all failures are joined into the
// returned error.
func (r *Registry[S, C]) Apply(q *Queue) error {
	if q == nil {
		return nil
	}
	var errs []error
	for _, req := range q.Drain() {
		var err error
		switch req.Kind {
		case RequestOpen:
			err = r.Open(req.Name)
		case RequestHide:
			err = r.Hide(req.Name)
		case RequestToggle:
			_, err = r.Toggle(req.Name)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
