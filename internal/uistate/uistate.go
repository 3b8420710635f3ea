// Package uistate models the four-phase result of an operation driven from a
// user-facing surface: idle, loading, success with a value, or error with a
// message. Consumers match all four variants exhaustively.
package uistate

// Kind discriminates the four variants of State.
type Kind int

const (
	KindIdle Kind = iota
	KindLoading
	KindSuccess
	KindError
)

// State is a tagged union. The zero value is Idle.
type State[T any] struct {
	kind  Kind
	value T
	err   string
}

func Idle[T any]() State[T]    { return State[T]{kind: KindIdle} }
func Loading[T any]() State[T] { return State[T]{kind: KindLoading} }

func Success[T any](v T) State[T] { return State[T]{kind: KindSuccess, value: v} }

func Error[T any](mensaje string) State[T] { return State[T]{kind: KindError, err: mensaje} }

func (s State[T]) Kind() Kind { return s.kind }

// Value returns the success payload; valid only when Kind is KindSuccess.
func (s State[T]) Value() T { return s.value }

// Mensaje returns the error message; valid only when Kind is KindError.
func (s State[T]) Mensaje() string { return s.err }

// Match dispatches on the variant, forcing callers to handle all four.
func (s State[T]) Match(onIdle, onLoading func(), onSuccess func(T), onError func(string)) {
	switch s.kind {
	case KindIdle:
		onIdle()
	case KindLoading:
		onLoading()
	case KindSuccess:
		onSuccess(s.value)
	case KindError:
		onError(s.err)
	}
}
