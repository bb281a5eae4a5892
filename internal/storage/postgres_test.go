package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestLikePattern(t *testing.T) {
	require.Equal(t, "%doe%", likePattern("doe"))
	require.Equal(t, "%%", likePattern(""))
}

func TestIsInvalidID(t *testing.T) {
	invalid := &pgconn.PgError{Code: pgerrcode.InvalidTextRepresentation}

	require.True(t, isInvalidID(invalid))
	require.True(t, isInvalidID(fmt.Errorf("exec: %w", invalid)))
	require.False(t, isInvalidID(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	require.False(t, isInvalidID(errors.New("connection refused")))
}

func TestIsUUID(t *testing.T) {
	require.True(t, isUUID("3958dc9e-712f-4377-85e9-fec4b6a6442a"))
	require.False(t, isUUID("5"))
	require.False(t, isUUID(""))
}
