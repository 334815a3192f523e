package models

// Optional carries a value that may be absent. The zero value is absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding v
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Present reports whether a value is held
func (o Optional[T]) Present() bool {
	return o.present
}

// Get returns the held value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the held value, or fallback when absent
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}
