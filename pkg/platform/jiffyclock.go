//go:build linux

package platform

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eduos/kernelcore/pkg/system/util"
)

// LinuxJiffyClock derives Tick values from the host kernel's own aggregate
// CPU jiffy counter (/proc/stat), so a demo run can be driven by a real
// monotonic kernel counter instead of the simulated one: a monotonically
// increasing counter the host kernel maintains, the same shape as
// current_tick(), just sourced from outside the simulated kernel rather
// than inside it.
type LinuxJiffyClock struct {
	base uint64 // first observed total-jiffy reading, so Tick starts near 0
}

// NewLinuxJiffyClock opens /proc/stat once to establish a base reading.
func NewLinuxJiffyClock() (*LinuxJiffyClock, error) {
	_, total, err := readAggregateCPU()
	if err != nil {
		return nil, fmt.Errorf("platform: jiffy clock: %w", err)
	}
	return &LinuxJiffyClock{base: total}, nil
}

func (c *LinuxJiffyClock) CurrentTick() Tick {
	_, total, err := readAggregateCPU()
	if err != nil {
		return 0
	}
	return Tick(util.DeltaU64(total, c.base))
}

// TicksPerSecond reports the host's jiffies-per-second, for callers that
// want to render a Tick delta as wall-clock seconds.
func (c *LinuxJiffyClock) TicksPerSecond() int { return clockTicks() }

// clockTicks returns jiffies-per-second, honoring CLK_TCK for tests.
func clockTicks() int {
	if v, _ := strconv.Atoi(os.Getenv("CLK_TCK")); v > 0 {
		return v
	}
	return 100
}

// readAggregateCPU parses /proc/stat's "cpu" line: active = user+nice+system+
// irq+softirq+steal, total = active+idle+iowait.
func readAggregateCPU() (active, total uint64, err error) {
	f, err := os.Open("/proc/stat")
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || fields[0] != "cpu" {
			continue
		}
		if len(fields) < 9 {
			return 0, 0, errShortCPULine
		}
		vals := make([]uint64, 0, len(fields)-1)
		for _, s := range fields[1:] {
			v, _ := strconv.ParseUint(s, 10, 64)
			vals = append(vals, v)
		}
		active = vals[0] + vals[1] + vals[2] + vals[5] + vals[6] + vals[7]
		total = active + vals[3] + vals[4]
		return active, total, nil
	}
	return 0, 0, errNoCPULine
}
