package logging

import "sync"

// Kind classifies a diagnostic event.
type Kind string

const (
	// KindInfo reports an operation that was carried out as requested.
	KindInfo Kind = "info"

	// KindWarning reports an anomaly that was recovered by substituting a
	// fallback (whole image, pass-through filter, placeholder image) or by
	// skipping the operation.
	KindWarning Kind = "warning"
)

// Diagnostic is a single structured event emitted by a background operation.
type Diagnostic struct {
	Kind    Kind                   `json:"kind"`
	Op      string                 `json:"op"`
	Message string                 `json:"message"`
	Image   string                 `json:"image"`
	Fields  map[string]interface{} `json:"fields,omitempty"`
}

// Reporter receives diagnostics.
type Reporter interface {
	Report(d Diagnostic)
}

// Discard is a Reporter that drops every event.
type Discard struct{}

// Report implements Reporter.
func (Discard) Report(Diagnostic) {}

// Recorder keeps every reported event in memory and optionally forwards it.
// It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Diagnostic
	next   Reporter
}

// NewRecorder creates a recorder forwarding to next, which may be nil.
func NewRecorder(next Reporter) *Recorder {
	return &Recorder{next: next}
}

// Report implements Reporter.
func (r *Recorder) Report(d Diagnostic) {
	r.mu.Lock()
	r.events = append(r.events, d)
	r.mu.Unlock()

	if r.next != nil {
		r.next.Report(d)
	}
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.events))
	copy(out, r.events)
	return out
}

// Warnings returns the recorded events of KindWarning.
func (r *Recorder) Warnings() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Diagnostic
	for _, d := range r.events {
		if d.Kind == KindWarning {
			out = append(out, d)
		}
	}
	return out
}

// Drain returns the recorded events and clears the recorder.
func (r *Recorder) Drain() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.events
	r.events = nil
	return out
}
