package provision

// EventType classifies provisioning events.
type EventType string

const (
	// EventResourceCreating indicates a resource is being created.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource was created successfully.
	EventResourceCreated EventType = "resource.created"
	// EventResourceExists indicates a resource already exists and is reused.
	EventResourceExists EventType = "resource.exists"
	// EventResourceFailed indicates resource creation failed.
	EventResourceFailed EventType = "resource.failed"
)

// Event is a single step notification emitted while provisioning runs.
type Event struct {
	Type     EventType
	Resource string
	Message  string
}

// Observer receives provisioning events as they happen.
type Observer interface {
	Publish(Event)
}

// NoopObserver discards all events.
type NoopObserver struct{}

// Publish implements Observer.
func (NoopObserver) Publish(Event) {}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Publish implements Observer.
func (f ObserverFunc) Publish(e Event) { f(e) }
