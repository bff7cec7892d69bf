package optional

// Map returns an Optional holding the result of applying fn to the contained value, or an
// empty Optional if there is none. The mapper is not invoked on an empty Optional.
//
// The mapper's result passes through the same nil boundary as OfNillable: a mapper that
// returns nil collapses the result to an empty Optional.
//
// Map is a package-level function rather than a method because Go methods cannot
// introduce the second type parameter; the same goes for FlatMap and MapOr.
func Map[T, U any](o Optional[T], fn func(T) U) Optional[U] {
	if !o.present {
		return Optional[U]{}
	}

	return OfNillable(fn(o.value))
}

// FlatMap returns the Optional produced by applying fn to the contained value. The
// mapper's Optional is returned as is, with no additional wrapping. An empty Optional
// short-circuits: fn is not invoked and an empty Optional[U] is returned.
func FlatMap[T, U any](o Optional[T], fn func(T) Optional[U]) Optional[U] {
	if !o.present {
		return Optional[U]{}
	}

	return fn(o.value)
}

// MapOr returns the result of applying fn to the contained value, or fallback if the
// Optional is empty. The mapper is not invoked on an empty Optional.
func MapOr[T, U any](o Optional[T], fallback U, fn func(T) U) U {
	if !o.present {
		return fallback
	}

	return fn(o.value)
}
