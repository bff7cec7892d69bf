// Package optional provides a generic container for values that may or may not be present.
//
// An Optional either holds exactly one value (it is present) or holds nothing (it is empty).
// It replaces nil sentinels and ad-hoc (value, ok) pairs at API boundaries with a type that
// forces callers to handle absence, and it offers combinators (Filter, Map, FlatMap, the
// OrElse family) for working with such values without manual presence checks.
//
// The zero value of Optional is empty and ready to use. Nil coalescing happens only at the
// construction boundary (Of, OfNillable, OfPtr, OfOK and the unmarshalers): a present
// Optional never holds a nil value, so extracting from a present Optional cannot observe
// absence.
package optional

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNilValue is the error Of panics with when it is called with a nil value.
//
// Receiving a nil value where one is required is a contract violation on the caller's side,
// so it surfaces as a panic rather than an error return. The recovered value satisfies
// errors.Is(err, ErrNilValue).
var ErrNilValue = errors.New("optional: nil value")

// ErrNoValue is returned by Get (and panicked by MustGet) when no value is present.
//
// It signals that the caller should have checked IsPresent first, or should have used one
// of the fallback methods instead. Use errors.Is to distinguish it from other failures.
var ErrNoValue = errors.New("optional: no value present")

// Optional is an immutable container that either holds exactly one value of type T
// (present) or holds nothing (empty).
//
// The zero value is empty. Instances are values: combinators never modify the Optional they
// are called on, they return new ones. An Optional is comparable with == whenever T is,
// and immutability makes sharing an instance between goroutines safe without
// synchronization.
type Optional[T any] struct {
	value   T
	present bool
}

// Of returns an Optional holding the given value.
//
// The value must not be nil: a nil pointer, map, slice, function, channel or interface
// (including a typed nil stored in an interface) panics with ErrNilValue.
// Use OfNillable to turn nil into an empty Optional instead.
func Of[T any](value T) Optional[T] {
	if isNil(value) {
		panic(ErrNilValue)
	}

	return Optional[T]{value: value, present: true}
}

// OfNillable returns an Optional holding the given value, or an empty Optional if the
// value is nil. It never fails: OfNillable is the boundary where Go's nil sentinel is
// coalesced into an explicit empty.
func OfNillable[T any](value T) Optional[T] {
	if isNil(value) {
		return Optional[T]{}
	}

	return Optional[T]{value: value, present: true}
}

// OfPtr returns an Optional holding the value the given pointer points to, or an empty
// Optional if the pointer is nil. A pointed-to value that is itself nil (eg. a *map that
// points to a nil map) is coalesced the same way OfNillable coalesces it.
func OfPtr[T any](value *T) Optional[T] {
	if value == nil {
		return Optional[T]{}
	}

	return OfNillable(*value)
}

// OfOK returns an Optional holding the given value if ok is true, or an empty Optional
// otherwise. It adapts Go's comma-ok idiom:
//
//	user, ok := users[id]
//
//	return optional.OfOK(user, ok)
//
// It also bridges the database/sql null types: optional.OfOK(n.String, n.Valid).
func OfOK[T any](value T, ok bool) Optional[T] {
	if !ok {
		return Optional[T]{}
	}

	return OfNillable(value)
}

// Empty returns an empty Optional: one that holds no value.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether a value is present.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsEmpty reports whether the Optional is empty. It is always the negation of IsPresent.
func (o Optional[T]) IsEmpty() bool {
	return !o.present
}

// Get returns the contained value.
//
// It returns ErrNoValue if the Optional is empty. Callers that have already checked
// IsPresent may prefer MustGet; callers with a fallback should use OrElse or OrElseGet.
func (o Optional[T]) Get() (T, error) {
	if !o.present {
		var zero T

		return zero, ErrNoValue
	}

	return o.value, nil
}

// MustGet returns the contained value, panicking with ErrNoValue if the Optional is
// empty. It is the unchecked counterpart of Get, intended for call sites where presence
// is guaranteed.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic(ErrNoValue)
	}

	return o.value
}

// IfPresent invokes fn with the contained value if one is present.
// It does nothing on an empty Optional.
func (o Optional[T]) IfPresent(fn func(T)) {
	if o.present {
		fn(o.value)
	}
}

// IfPresentOrElse invokes fn with the contained value if one is present, otherwise it
// invokes emptyFn. Exactly one of the two callbacks runs, exactly once, before
// IfPresentOrElse returns.
func (o Optional[T]) IfPresentOrElse(fn func(T), emptyFn func()) {
	if o.present {
		fn(o.value)
	} else {
		emptyFn()
	}
}

// Filter returns the Optional unchanged if it holds a value the predicate accepts, and an
// empty Optional otherwise. The predicate is never invoked on an empty Optional.
func (o Optional[T]) Filter(predicate func(T) bool) Optional[T] {
	if !o.present || predicate(o.value) {
		return o
	}

	return Optional[T]{}
}

// Or returns the Optional itself if it holds a value, otherwise the Optional produced by
// supplier. The supplier is not invoked when a value is present.
func (o Optional[T]) Or(supplier func() Optional[T]) Optional[T] {
	if o.present {
		return o
	}

	return supplier()
}

// OrElse returns the contained value if present, otherwise other.
//
// The fallback is evaluated by the caller regardless of presence; use OrElseGet when
// producing it is expensive.
func (o Optional[T]) OrElse(other T) T {
	if o.present {
		return o.value
	}

	return other
}

// OrElseGet returns the contained value if present, otherwise the value produced by
// supplier. The supplier is not invoked when a value is present.
func (o Optional[T]) OrElseGet(supplier func() T) T {
	if o.present {
		return o.value
	}

	return supplier()
}

// OrElseErr returns the contained value if present. Otherwise it returns the zero value
// of T and the error produced by supplier, exactly as the supplier returned it (no
// wrapping). The supplier is not invoked when a value is present.
func (o Optional[T]) OrElseErr(supplier func() error) (T, error) {
	if o.present {
		return o.value, nil
	}

	var zero T

	return zero, supplier()
}

// OrZero returns the contained value if present, otherwise the zero value of T.
func (o Optional[T]) OrZero() T {
	if o.present {
		return o.value
	}

	var zero T

	return zero
}

// Ptr returns a pointer to a copy of the contained value, or nil if the Optional is
// empty. It is the inverse of OfPtr, for API boundaries that represent absence with nil
// pointers. The pointee is a copy: writing through the pointer does not modify the
// Optional.
func (o Optional[T]) Ptr() *T {
	if !o.present {
		return nil
	}

	value := o.value

	return &value
}

// String implements fmt.Stringer. It is a debugging aid, not a serialization format.
func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}

	return fmt.Sprintf("Optional[%v]", o.value)
}

// isNil reports whether value is nil of any nilable kind, including a typed nil stored in
// an interface. Non-nilable kinds (numbers, strings, structs, ...) are never nil.
func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}

	return false
}

var _ fmt.Stringer = Optional[string]{}
