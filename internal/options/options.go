// Package options is the functional-options building block shared by this
// module's configurable internals (currently intern.Cache's capacity
// knob). It stays generic on purpose: a second configurable internal
// should reuse it rather than hand-roll another WithXxx pattern.
package options

// Option configures a target of type T, failing if the configuration it
// carries is invalid (e.g. a non-positive cache capacity).
type Option[T any] interface {
	apply(T) error
}

// Func wraps a plain function as an Option.
type Func[T any] struct {
	applyFunc func(T) error
}

func (f *Func[T]) apply(target T) error {
	return f.applyFunc(target)
}

// New builds an Option from a function that can reject its input.
func New[T any](fn func(T) error) *Func[T] {
	return &Func[T]{applyFunc: fn}
}

// Apply runs opts against target in order, stopping at the first error.
func Apply[T any](target T, opts ...Option[T]) error {
	for _, opt := range opts {
		if err := opt.apply(target); err != nil {
			return err
		}
	}

	return nil
}

// NoError builds an Option from a function that cannot fail, for the
// common case of a configuration knob with no invalid values.
func NoError[T any](fn func(T)) *Func[T] {
	return &Func[T]{
		applyFunc: func(target T) error {
			fn(target)
			return nil
		},
	}
}
