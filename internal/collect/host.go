package collect

import (
	"fmt"
	"os"
	"runtime"

	"hostsnap/internal/model"
)

// collectHost fills host identity, OS description, and uptime. The
// identity query is static platform data; a failed uptime reads as 0.
func (c *Collector) collectHost(snap *model.Snapshot) {
	if hostname, err := os.Hostname(); err == nil {
		snap.Host = hostname
	}
	info, err := c.hostInfo()
	if err != nil {
		// Identity never goes empty; fall back to the compile target.
		snap.OS = runtime.GOOS
		return
	}
	if snap.Host == "" {
		snap.Host = info.Hostname
	}
	snap.OS = fmt.Sprintf("%s %s (%s %s)", info.OS, info.KernelVersion, info.Platform, info.PlatformVersion)
	snap.UptimeSeconds = info.Uptime
}

// collectLoad returns the 1/5/15 load triple, or nil where the platform
// has no such concept.
func (c *Collector) collectLoad() *model.LoadAvg {
	avg, err := c.loadAvg()
	if err != nil {
		return nil
	}
	return &model.LoadAvg{Load1: avg.Load1, Load5: avg.Load5, Load15: avg.Load15}
}
