package todo

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Dispatcher is the capability to submit an action.
type Dispatcher interface {
	Dispatch(a Action)
}

// DispatchFunc adapts a plain function to Dispatcher.
type DispatchFunc func(a Action)

func (f DispatchFunc) Dispatch(a Action) { f(a) }

// Store holds the current list and applies actions to it through a Reducer.
// It belongs to whoever created it; there is no locking.
type Store struct {
	reducer Reducer
	todos   List
	logger  zerolog.Logger
}

type StoreOption func(*Store)

// WithLogger overrides the global zerolog logger.
func WithLogger(l zerolog.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

func NewStore(r Reducer, opts ...StoreOption) *Store {
	s := &Store{
		reducer: r,
		todos:   List{},
		logger:  log.Logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Store) Dispatch(a Action) {
	if a == nil {
		return
	}
	s.todos = s.reducer.Reduce(s.todos, a)

	ev := s.logger.Debug().Str("kind", string(a.Kind()))
	switch a := a.(type) {
	case Toggle:
		ev = ev.Str("id", string(a.ID))
	case Delete:
		ev = ev.Str("id", string(a.ID))
	}
	ev.Int("len", len(s.todos)).Msg("dispatch")
}

// Todos returns the current list. Callers must not modify it.
func (s *Store) Todos() List { return s.todos }
