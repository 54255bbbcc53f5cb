package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplaceRestoresPreviousLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := Replace(zap.New(core))

	InfoCtx(context.Background(), "ingest finished", zap.Int("inserted", 2))
	WarnCtx(context.Background(), "orphaned nft")
	Error(errors.New("mint failed"))
	Error(nil)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "ingest finished", entries[0].Message)
	assert.Equal(t, int64(2), entries[0].ContextMap()["inserted"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "mint failed", entries[2].Message)
	assert.Equal(t, "error occurred", entries[3].Message)

	restore()
	Info("dropped")
	assert.Equal(t, 4, logs.Len())
}

func TestSentryTags(t *testing.T) {
	tags := sentryTags(Config{
		Service:     "eva-nft-api",
		Environment: "staging",
		Tags:        map[string]string{"region": "eu"},
	})

	assert.Equal(t, map[string]string{
		"region":      "eu",
		"service":     "eva-nft-api",
		"environment": "staging",
	}, tags)
}

func TestInitializeWithoutSentry(t *testing.T) {
	restore := Replace(Default())
	defer restore()

	require.NoError(t, Initialize(Config{Service: "eva-nft-api"}))
	assert.NotNil(t, Default())
}
