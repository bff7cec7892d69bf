package optional

import "go.uber.org/zap"

// ZapField returns a zap field that logs the contained value under the given key, or a
// no-op field (zap.Skip) when the Optional is empty, so optional values can be logged
// without a presence check:
//
//	logger.Info("user created", optional.ZapField("email", user.Email))
func ZapField[T any](key string, o Optional[T]) zap.Field {
	if !o.present {
		return zap.Skip()
	}

	return zap.Any(key, o.value)
}
