package todo

// Reducer computes the next list from the current one and an action.
// It has no state of its own besides the id source it mints new ids from.
type Reducer struct {
	ids IDSource
}

func NewReducer(ids IDSource) Reducer {
	if ids == nil {
		ids = NewUUIDSource()
	}
	return Reducer{ids: ids}
}

// Reduce never modifies todos. When an action has nothing to do (unknown
// kind, id not found) the input list is returned as is.
func (r Reducer) Reduce(todos List, a Action) List {
	switch a := a.(type) {
	case Add:
		next := make(List, len(todos), len(todos)+1)
		copy(next, todos)
		return append(next, Todo{ID: r.ids.NextID(), Name: a.Name})

	case Toggle:
		i := todos.Index(a.ID)
		if i < 0 {
			return todos
		}
		next := make(List, len(todos))
		copy(next, todos)
		next[i].Complete = !next[i].Complete
		return next

	case Delete:
		i := todos.Index(a.ID)
		if i < 0 {
			return todos
		}
		next := make(List, 0, len(todos)-1)
		next = append(next, todos[:i]...)
		return append(next, todos[i+1:]...)

	default:
		return todos
	}
}
