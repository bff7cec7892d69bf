package optional

import (
	"bytes"
	"encoding/json"
)

var jsonNull = []byte("null")

// MarshalJSON implements json.Marshaler. An empty Optional marshals to null, a present
// one marshals to whatever its value marshals to.
//
// Note that encoding/json's omitempty never considers a struct empty, so an empty
// Optional field is emitted as an explicit null rather than dropped from the object.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return jsonNull, nil
	}

	return json.Marshal(o.value)
}

// UnmarshalJSON implements json.Unmarshaler. JSON null unmarshals to an empty Optional;
// any other value is decoded into a T and becomes present. A decoded value that is itself
// nil (eg. null decoded into a pointer payload by a custom unmarshaler) is coalesced to
// empty, keeping the present-is-never-nil invariant.
//
// A key that is absent from a JSON object never reaches UnmarshalJSON at all: the zero
// Optional the field already holds is empty.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, jsonNull) {
		*o = Optional[T]{}

		return nil
	}

	var value T

	err := json.Unmarshal(data, &value)
	if err != nil {
		return err
	}

	*o = OfNillable(value)

	return nil
}

var (
	_ json.Marshaler   = Optional[string]{}
	_ json.Unmarshaler = (*Optional[string])(nil)
)
