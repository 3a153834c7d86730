package encoding

// Optional is a value that may be absent.
//
// Every type the Writer encodes has an absent form that reuses the type's tag
// with a zero nibble. Absent signed integers are written under the positive
// integer tag, so a reader detects "no value" without knowing the sign.
type Optional[T any] struct {
	value T
	ok    bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// OptionalOf returns None for a nil pointer and Some(*p) otherwise.
func OptionalOf[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// Get returns the held value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool {
	return o.ok
}
