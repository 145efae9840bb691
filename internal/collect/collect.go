// Package collect gathers one point-in-time health snapshot from the
// host. Every data source is wrapped by an adapter that resolves to an
// absent value on failure; only virtual-memory stats are required.
package collect

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"hostsnap/internal/config"
	"hostsnap/internal/model"
)

// Collector fans out to the per-source adapters and assembles a Snapshot.
// The function fields default to the real OS-backed implementations; tests
// swap in fakes.
type Collector struct {
	opts config.Options

	hostInfo      func() (*host.InfoStat, error)
	loadAvg       func() (*load.AvgStat, error)
	cpuPercent    func(time.Duration, bool) ([]float64, error)
	virtualMemory func() (*mem.VirtualMemoryStat, error)
	partitions    func(bool) ([]disk.PartitionStat, error)
	diskUsage     func(string) (*disk.UsageStat, error)
	processes     func() ([]procEntry, error)
	users         func() ([]host.UserStat, error)
	sensors       func() ([]host.TemperatureStat, error)
	lookPath      func(string) (string, error)
	runCmd        func(context.Context, time.Duration, string, ...string) (string, error)
	readFile      func(string) ([]byte, error)
	sleep         func(time.Duration)
}

func New(opts config.Options) *Collector {
	c := &Collector{
		opts:          opts,
		hostInfo:      host.Info,
		loadAvg:       load.Avg,
		cpuPercent:    cpu.Percent,
		virtualMemory: mem.VirtualMemory,
		partitions:    disk.Partitions,
		diskUsage:     disk.Usage,
		processes:     listProcesses,
		users:         host.Users,
		sensors:       host.SensorsTemperatures,
		lookPath:      exec.LookPath,
		runCmd:        runCmd,
		readFile:      os.ReadFile,
		sleep:         time.Sleep,
	}
	return c
}

// Snapshot runs every adapter and merges the results. The two
// sampling-window adapters (CPU percent and top processes) run
// concurrently so the whole call takes roughly one window, not two. Only
// a virtual-memory failure is returned as an error; everything else
// degrades to an absent field.
func (c *Collector) Snapshot(ctx context.Context) (model.Snapshot, error) {
	var snap model.Snapshot

	vm, err := c.virtualMemory()
	if err != nil {
		return snap, fmt.Errorf("virtual memory stats unavailable: %w", err)
	}
	snap.Memory = model.Memory{
		Total:       vm.Total,
		Used:        vm.Total - vm.Available,
		Free:        vm.Available,
		UsedPercent: vm.UsedPercent,
	}

	c.collectHost(&snap)
	snap.LoadAvg = c.collectLoad()

	var wg sync.WaitGroup
	var topCPU, topMem []model.ProcessInfo
	wg.Add(2)
	go func() {
		defer wg.Done()
		snap.CPUPercent = c.collectCPU()
	}()
	go func() {
		defer wg.Done()
		topCPU, topMem = c.topProcesses()
	}()
	wg.Wait()
	snap.TopCPU, snap.TopMem = topCPU, topMem

	snap.Disks = c.collectDisks()
	snap.Users = c.loggedInUsers()
	snap.FailedLogins = c.failedLogins(ctx)
	snap.Gpu = c.collectGPU(ctx)
	snap.Temperatures = c.collectTemperatures()

	return snap, nil
}
