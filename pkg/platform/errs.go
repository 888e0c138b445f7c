//go:build linux

package platform

import "errors"

var (
	// errNoCPULine indicates /proc/stat had no aggregate "cpu" line.
	errNoCPULine = errors.New("platform: no cpu line in /proc/stat")

	// errShortCPULine indicates the aggregate "cpu" line had fewer fields
	// than expected.
	errShortCPULine = errors.New("platform: short cpu line in /proc/stat")
)
