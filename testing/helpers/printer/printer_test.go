package printer

import (
	"testing"

	"github.com/storacha/go-hashfn/core/value"
	"github.com/stretchr/testify/require"
)

func TestSprintValue(t *testing.T) {
	v := value.New(0x23, []byte{0xde, 0xad}, 16)
	s := SprintValue(v)
	require.Contains(t, s, "code")
	require.Contains(t, s, "bitLength")
	require.Contains(t, s, "16")
	PrintValue(t, "deadbeef", v)
}

func TestSprintBytes(t *testing.T) {
	require.Equal(t, "512 B", SprintBytes(512))
	require.Equal(t, "1.0 KiB", SprintBytes(1024))
	require.Equal(t, "3.0 MiB", SprintBytes(3*1024*1024))
}
