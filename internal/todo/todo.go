package todo

// ID identifies a record. It is assigned once, on add, and never changes.
type ID string

// Todo is a single entry in the list.
type Todo struct {
	ID       ID     `json:"id"`
	Name     string `json:"name"`
	Complete bool   `json:"complete"`
}

// List is the ordered state the reducer works on.
type List []Todo

// Find returns the record with the given id.
func (l List) Find(id ID) (Todo, bool) {
	for _, t := range l {
		if t.ID == id {
			return t, true
		}
	}
	return Todo{}, false
}

// Index returns the position of id in the list, or -1.
func (l List) Index(id ID) int {
	for i, t := range l {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Stats counts complete and pending records.
func (l List) Stats() (done, pending int) {
	for _, t := range l {
		if t.Complete {
			done++
		} else {
			pending++
		}
	}
	return
}
