package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func newUUID(t *testing.T) uuid.UUID {
	t.Helper()
	return uuid.New()
}

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}
