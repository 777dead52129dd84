package event

type (
	EventType int

	Event struct {
		Message interface{}
		Err     error
	}

	// DocChange is the message of a collection change event.
	DocChange struct {
		Type EventType
		Id   string
	}

	EventWChannel chan<- Event
)

const (
	DbDocAdded EventType = iota
	DbDocChanged
	DbDocDeleted
)

func (t EventType) String() string {
	switch t {
	case DbDocAdded:
		return "added"
	case DbDocChanged:
		return "changed"
	case DbDocDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}
