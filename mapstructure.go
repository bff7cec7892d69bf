package optional

import (
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// rawDecoder is implemented by *Optional[T] for every T, letting DecodeHookFunc discover
// Optional targets without knowing their payload type.
type rawDecoder interface {
	decodeRaw(raw any, hook mapstructure.DecodeHookFunc) error
}

// decodeRaw decodes an arbitrary raw value (the kind produced by decoding yaml or json
// into interface{}) into the Optional. The payload goes through mapstructure itself with
// the given hook, so struct payloads and nested Optional fields keep working.
func (o *Optional[T]) decodeRaw(raw any, hook mapstructure.DecodeHookFunc) error {
	if isNil(raw) {
		*o = Optional[T]{}

		return nil
	}

	var value T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &value,
		DecodeHook: hook,
	})
	if err != nil {
		return err
	}

	err = decoder.Decode(raw)
	if err != nil {
		return err
	}

	*o = OfNillable(value)

	return nil
}

// DecodeHookFunc returns a mapstructure decode hook that decodes raw values into
// Optional fields: nil decodes to empty, anything else to a present payload. A key that
// is missing from the input never reaches the hook, so the zero Optional the field
// already holds stays empty.
//
// Any additional hooks are applied when decoding the payload as well, so conversions
// like mapstructure.StringToTimeDurationHookFunc reach into Optional fields:
//
//	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
//		Result:     &config,
//		DecodeHook: optional.DecodeHookFunc(mapstructure.StringToTimeDurationHookFunc()),
//	})
func DecodeHookFunc(hooks ...mapstructure.DecodeHookFunc) mapstructure.DecodeHookFunc {
	// The full chain is fed back into payload decoding, which is what makes hooks reach
	// inside Optional fields.
	var composed mapstructure.DecodeHookFunc

	optionalHook := mapstructure.DecodeHookFuncValue(func(from reflect.Value, to reflect.Value) (interface{}, error) {
		if from.Type() == to.Type() {
			return from.Interface(), nil
		}

		target, ok := reflect.New(to.Type()).Interface().(rawDecoder)
		if !ok {
			return from.Interface(), nil
		}

		err := target.decodeRaw(from.Interface(), composed)
		if err != nil {
			return nil, err
		}

		return reflect.ValueOf(target).Elem().Interface(), nil
	})

	if len(hooks) == 0 {
		composed = optionalHook

		return composed
	}

	combined := make([]mapstructure.DecodeHookFunc, 0, len(hooks)+1)
	combined = append(combined, hooks...)
	combined = append(combined, optionalHook)

	composed = mapstructure.ComposeDecodeHookFunc(combined...)

	return composed
}
