package optional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/distribution-auth/optional"
)

func TestZapField(t *testing.T) {
	t.Run("Present", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		logger := zap.New(core)

		logger.Info("user created", optional.ZapField("email", optional.Of("user@example.com")))

		entries := logs.All()
		require.Len(t, entries, 1)

		assert.Equal(t, map[string]interface{}{"email": "user@example.com"}, entries[0].ContextMap())
	})

	t.Run("Empty", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		logger := zap.New(core)

		logger.Info("user created", optional.ZapField("email", optional.Empty[string]()))

		entries := logs.All()
		require.Len(t, entries, 1)

		assert.Empty(t, entries[0].ContextMap())
	})
}
