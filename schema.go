package optional

import (
	"reflect"

	"github.com/gorilla/schema"
)

// RegisterConverter registers a converter for Optional[T] on the given schema decoder,
// letting optional query and form parameters decode directly into Optional[T] struct
// fields. parse turns the raw parameter into a T; a parse failure is reported by the
// decoder as a schema.ConversionError for the field.
//
// A parameter that is absent from the request never reaches the converter: the zero
// Optional the field already holds is empty.
//
//	decoder := schema.NewDecoder()
//	optional.RegisterConverter(decoder, strconv.Atoi)
//	optional.RegisterConverter(decoder, func(s string) (string, error) { return s, nil })
func RegisterConverter[T any](decoder *schema.Decoder, parse func(string) (T, error)) {
	decoder.RegisterConverter(Optional[T]{}, func(s string) reflect.Value {
		value, err := parse(s)
		if err != nil {
			return reflect.Value{}
		}

		return reflect.ValueOf(OfNillable(value))
	})
}
