package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	logger, err := NewLogger("debug")
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger("loud")
	require.Error(t, err)
}

func TestCheckError(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	require.False(t, CheckError(nil, logger, "nothing"))
	require.Equal(t, 0, logs.Len())

	require.True(t, ErrorBook(logger, errors.New("boom"), "failed", GetBook, "req-1", "book-1"))
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	require.Equal(t, "failed", entry.Message)
	require.Equal(t, zapcore.ErrorLevel, entry.Level)
	fields := entry.ContextMap()
	require.Equal(t, "req-1", fields["request_id"])
	require.Equal(t, "book-1", fields["book_id"])
	require.Equal(t, GetBook, fields["action"])
}

func TestNilLoggerIsTolerated(t *testing.T) {
	t.Parallel()

	require.True(t, ErrorLibrary(nil, errors.New("boom"), "failed", ListBooks, "req-1"))
	InfoBook(nil, "ok", GetBook, "req-1", "book-1")
}
