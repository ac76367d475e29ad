package todo

// Kind tags an action.
type Kind string

const (
	KindAdd    Kind = "add-todo"
	KindToggle Kind = "toggle-todo"
	KindDelete Kind = "delete-todo"
)

// Action is a request to change the list. The reducer knows Add, Toggle and
// Delete; anything else is left alone.
type Action interface {
	Kind() Kind
}

// Add appends a new record named Name.
type Add struct {
	Name string
}

// Toggle flips Complete on the record with the given ID.
type Toggle struct {
	ID ID
}

// Delete removes the record with the given ID.
type Delete struct {
	ID ID
}

func (Add) Kind() Kind    { return KindAdd }
func (Toggle) Kind() Kind { return KindToggle }
func (Delete) Kind() Kind { return KindDelete }
