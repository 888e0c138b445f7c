//go:build linux

package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLinuxJiffyClock_StartsNearZero(t *testing.T) {
	c, err := NewLinuxJiffyClock()
	require.NoError(t, err)
	// Immediately after construction the delta against its own base should
	// be small; it should never go negative (CurrentTick is unsigned).
	require.GreaterOrEqual(t, uint64(c.CurrentTick()), uint64(0))
	// "Small" here means less than one second's worth of aggregate jiffies.
	require.Less(t, uint64(c.CurrentTick()), uint64(c.TicksPerSecond()*runtime.NumCPU()))
}

func TestLinuxJiffyClock_TicksPerSecond_Default(t *testing.T) {
	t.Setenv("CLK_TCK", "")
	c := &LinuxJiffyClock{}
	require.Equal(t, 100, c.TicksPerSecond())
}

func TestLinuxJiffyClock_TicksPerSecond_EnvOverride(t *testing.T) {
	t.Setenv("CLK_TCK", "250")
	c := &LinuxJiffyClock{}
	require.Equal(t, 250, c.TicksPerSecond())
}
