// Package notify carries unlock events from the orchestrator to
// whatever presentation layer is attached. The core only decides when
// to raise an event; rendering is the sink's problem.
package notify

// Kind of event; presentation may pick an accent per kind.
const (
	KindAchievement = "achievement"
)

// Event is one user-facing notification.
type Event struct {
	Title   string
	Message string
	Icon    string
	Kind    string
}

// Sink receives events. Implementations must not block on user input.
type Sink interface {
	Notify(Event)
}

// Func adapts a function to a Sink.
type Func func(Event)

func (f Func) Notify(ev Event) { f(ev) }

// Discard drops every event.
var Discard Sink = Func(func(Event) {})

// Memory records events for inspection in tests.
type Memory struct {
	Events []Event
}

func (m *Memory) Notify(ev Event) { m.Events = append(m.Events, ev) }
