package techlib

// Optional is an explicit nullable wrapper, replacing a sentinel-float
// (-1 for "not set") convention.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns a set Optional wrapping v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, set: true} }

// None returns an unset Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns (value, true) if set, or the zero value and false otherwise.
func (o Optional[T]) Get() (T, bool) { return o.value, o.set }

// IsSet reports whether the optional carries a value.
func (o Optional[T]) IsSet() bool { return o.set }

// Or returns the wrapped value if set, else fallback.
func (o Optional[T]) Or(fallback T) T {
	if o.set {
		return o.value
	}
	return fallback
}
