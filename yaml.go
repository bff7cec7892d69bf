package optional

import (
	"gopkg.in/yaml.v3"
)

// nullTag is the resolved tag yaml.v3 assigns to explicit nulls (null, ~, empty scalar).
const nullTag = "!!null"

// MarshalYAML implements yaml.Marshaler. An empty Optional marshals to a YAML null, a
// present one marshals to its value.
func (o Optional[T]) MarshalYAML() (interface{}, error) {
	if !o.present {
		return nil, nil
	}

	return o.value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A YAML null (explicit null, ~ or an empty
// scalar) unmarshals to an empty Optional; any other node is decoded into a T and becomes
// present, with nil decode results coalesced to empty the same way UnmarshalJSON
// coalesces them.
//
// A key that is absent from the document never reaches UnmarshalYAML: the zero Optional
// the field already holds is empty.
func (o *Optional[T]) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == nullTag {
		*o = Optional[T]{}

		return nil
	}

	var v T

	err := value.Decode(&v)
	if err != nil {
		return err
	}

	*o = OfNillable(v)

	return nil
}

var (
	_ yaml.Marshaler   = Optional[string]{}
	_ yaml.Unmarshaler = (*Optional[string])(nil)
)
