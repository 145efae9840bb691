package model

// Memory captures RAM usage in bytes. Used is total minus the kernel's
// availability estimate, so reclaimable caches count as used capacity
// rather than free memory.
type Memory struct {
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	Free        uint64  `json:"free"`
	UsedPercent float64 `json:"percent"`
}

// DiskUsage is one mounted filesystem's capacity numbers.
type DiskUsage struct {
	Mount       string  `json:"mount"`
	Total       uint64  `json:"total"`
	Used        uint64  `json:"used"`
	Free        uint64  `json:"free"`
	UsedPercent float64 `json:"percent"`
}

// Disks holds the per-mount rows plus the derived TOTAL aggregate.
type Disks struct {
	PerMount []DiskUsage `json:"per_mount"`
	Overall  DiskUsage   `json:"overall"`
}

// ProcessInfo is a lightweight top entry. Name carries the full process
// name; the renderer truncates for display.
type ProcessInfo struct {
	PID      int32   `json:"pid"`
	Name     string  `json:"name"`
	CPU      float64 `json:"cpu"`
	MemBytes uint64  `json:"mem_bytes"`
}

// GpuDevice is one structured GPU row from vendor tooling.
type GpuDevice struct {
	ID          string  `json:"id"`
	Model       string  `json:"model"`
	GpuUtil     float64 `json:"gpu_util"`
	MemUtil     float64 `json:"mem_util"`
	MemUsedMiB  float64 `json:"mem_used_mib"`
	MemTotalMiB float64 `json:"mem_total_mib"`
	TempC       float64 `json:"temp_c"`
}

// GpuReport carries either structured devices (NVIDIA tooling) or an
// unparsed raw blob (AMD tooling).
type GpuReport struct {
	Vendor string      `json:"vendor"`
	Gpus   []GpuDevice `json:"gpus,omitempty"`
	Raw    string      `json:"raw,omitempty"`
}

// TempReading is one sensor reading under a chip.
type TempReading struct {
	Label   string  `json:"label"`
	Current float64 `json:"current"`
}

// LoadAvg is the classic 1/5/15 minute triple.
type LoadAvg struct {
	Load1  float64 `json:"load1"`
	Load5  float64 `json:"load5"`
	Load15 float64 `json:"load15"`
}

// Snapshot is the complete point-in-time report produced by one run.
// Environment-dependent fields are pointers (or nilable collections) with
// no omitempty: absent sources serialize as explicit nulls so the JSON
// shape is identical on every host.
type Snapshot struct {
	Host          string                   `json:"host"`
	OS            string                   `json:"os"`
	UptimeSeconds uint64                   `json:"uptime_seconds"`
	LoadAvg       *LoadAvg                 `json:"load_avg"`
	CPUPercent    float64                  `json:"cpu_usage_percent"`
	Memory        Memory                   `json:"memory"`
	Disks         Disks                    `json:"disks"`
	TopCPU        []ProcessInfo            `json:"top_cpu"`
	TopMem        []ProcessInfo            `json:"top_mem"`
	Users         []string                 `json:"users"`
	FailedLogins  *int                     `json:"failed_logins"`
	Gpu           *GpuReport               `json:"gpu"`
	Temperatures  map[string][]TempReading `json:"temperatures"`
}
