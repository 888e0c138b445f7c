//go:build !linux

package platform

import "errors"

// ErrHostClockUnsupported is returned by NewLinuxJiffyClock on non-Linux
// hosts, where /proc/stat does not exist.
var ErrHostClockUnsupported = errors.New("platform: host jiffy clock is only available on linux")

// LinuxJiffyClock is unavailable outside Linux; this stub keeps callers
// that select a clock mode at runtime (cmd/kernelcore's --clock flag)
// buildable on every platform.
type LinuxJiffyClock struct{}

func NewLinuxJiffyClock() (*LinuxJiffyClock, error) { return nil, ErrHostClockUnsupported }

func (c *LinuxJiffyClock) CurrentTick() Tick { return 0 }

func (c *LinuxJiffyClock) TicksPerSecond() int { return 100 }
