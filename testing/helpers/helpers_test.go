package helpers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCancelAfter(t *testing.T) {
	ctx := CancelAfter(2)
	require.NoError(t, ctx.Err())
	require.NoError(t, ctx.Err())
	require.ErrorIs(t, ctx.Err(), context.Canceled)
	require.ErrorIs(t, ctx.Err(), context.Canceled)

	require.ErrorIs(t, CancelAfter(0).Err(), context.Canceled)
}
