package collect

import (
	"sort"

	"github.com/shirou/gopsutil/v3/process"

	"hostsnap/internal/model"
)

// procEntry is the narrow process-handle surface the collector needs;
// tests substitute in-memory fakes.
type procEntry interface {
	ID() int32
	Name() (string, error)
	CPUPercent() (float64, error)
	MemoryInfo() (*process.MemoryInfoStat, error)
}

type sysProc struct{ *process.Process }

func (p sysProc) ID() int32 { return p.Pid }

func listProcesses() ([]procEntry, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}
	entries := make([]procEntry, 0, len(procs))
	for _, p := range procs {
		entries = append(entries, sysProc{p})
	}
	return entries, nil
}

// topProcesses samples per-process CPU over one window and returns the
// top entries by CPU and by resident memory. The first CPUPercent call
// primes each process's counter; the second, after the window elapses,
// reads the committed delta. Processes that vanish or deny access during
// either pass are dropped.
func (c *Collector) topProcesses() (topCPU, topMem []model.ProcessInfo) {
	procs, err := c.processes()
	if err != nil {
		return nil, nil
	}

	for _, p := range procs {
		_, _ = p.CPUPercent()
	}
	c.sleep(c.opts.SampleWindow())

	entries := make([]model.ProcessInfo, 0, len(procs))
	for _, p := range procs {
		cpuPct, err := p.CPUPercent()
		if err != nil {
			continue
		}
		name, err := p.Name()
		if err != nil {
			continue
		}
		if name == "" {
			name = "?"
		}
		var rss uint64
		if mi, err := p.MemoryInfo(); err == nil && mi != nil {
			rss = mi.RSS
		}
		entries = append(entries, model.ProcessInfo{
			PID:      p.ID(),
			Name:     name,
			CPU:      cpuPct,
			MemBytes: rss,
		})
	}

	topCPU = topN(entries, c.opts.TopN, func(a, b model.ProcessInfo) bool { return a.CPU > b.CPU })
	topMem = topN(entries, c.opts.TopN, func(a, b model.ProcessInfo) bool { return a.MemBytes > b.MemBytes })
	return topCPU, topMem
}

// topN sorts a copy with a stable sort, so equal keys keep enumeration
// order, and truncates to n.
func topN(entries []model.ProcessInfo, n int, less func(a, b model.ProcessInfo) bool) []model.ProcessInfo {
	out := make([]model.ProcessInfo, len(entries))
	copy(out, entries)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
