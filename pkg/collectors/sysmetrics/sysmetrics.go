// Package sysmetrics provides cross-platform system metric sources for
// pulsebar. It uses gopsutil to gather CPU, memory, disk, load, and uptime
// data on both Darwin and Linux without /proc dependencies.
package sysmetrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/load"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/greshake/i3status-rust-sub000/pkg/collectors"
)

// Config controls the collector behaviour.
type Config struct {
	// FastInterval is the polling rate for CPU, RAM and load (default 2s).
	FastInterval time.Duration

	// SlowInterval is the polling rate for disk and uptime (default 60s).
	SlowInterval time.Duration

	// Mount is the mount point reported by the disk source (default "/").
	Mount string

	Thresholds collectors.Thresholds
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		FastInterval: 2 * time.Second,
		SlowInterval: 60 * time.Second,
		Mount:        "/",
		Thresholds:   collectors.DefaultThresholds,
	}
}

// --- Metric data types ---

// CPUMetrics holds aggregate CPU utilisation.
type CPUMetrics struct {
	// Total is the overall CPU usage percentage (0-100).
	Total float64

	// Count is the number of logical CPUs.
	Count int
}

// MemoryMetrics holds physical and swap memory statistics.
type MemoryMetrics struct {
	Total           uint64
	Used            uint64
	Available       uint64
	SwapTotal       uint64
	SwapUsed        uint64
	UsedPercent     float64
	SwapUsedPercent float64
}

// DiskMetrics holds usage data for a single mount point.
type DiskMetrics struct {
	Path        string
	Total       uint64
	Used        uint64
	Free        uint64
	UsedPercent float64
}

// LoadMetrics holds system load averages.
type LoadMetrics struct {
	Load1  float64
	Load5  float64
	Load15 float64
}

// Metrics is the aggregate snapshot one collection produces. Parts that
// were not requested or failed stay zero.
type Metrics struct {
	CPU    CPUMetrics
	Memory MemoryMetrics
	Disk   DiskMetrics
	Load   LoadMetrics
	Uptime time.Duration
}

// part selects which sub-collectors a view runs.
type part uint8

const (
	partCPU part = 1 << iota
	partMemory
	partDisk
	partLoad
	partUptime

	partAll = partCPU | partMemory | partDisk | partLoad | partUptime
)

// sample gathers the requested parts via gopsutil and reports which of them
// succeeded. If individual sub-collectors fail it still returns as much data
// as possible; errors are aggregated.
func sample(ctx context.Context, parts part, mount string) (Metrics, part, error) {
	var (
		m    Metrics
		ok   part
		errs []string
		runs int
	)
	// Load states are relative to the core count, so load needs CPU too.
	if parts&partLoad != 0 {
		parts |= partCPU
	}
	run := func(p part, name string, fn func() error) {
		if parts&p == 0 {
			return
		}
		runs++
		if err := fn(); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", name, err))
			return
		}
		ok |= p
	}

	run(partCPU, "cpu", func() error { return collectCPU(ctx, &m) })
	run(partMemory, "memory", func() error { return collectMemory(ctx, &m) })
	run(partDisk, "disk", func() error { return collectDisk(ctx, mount, &m) })
	run(partLoad, "load", func() error { return collectLoad(ctx, &m) })
	run(partUptime, "uptime", func() error { return collectUptime(ctx, &m) })

	if len(errs) == 0 {
		return m, ok, nil
	}
	if len(errs) == runs {
		return m, ok, fmt.Errorf("sysmetrics: all sub-collectors failed: %s", strings.Join(errs, "; "))
	}
	return m, ok, fmt.Errorf("sysmetrics: partial errors: %s", strings.Join(errs, "; "))
}

// --- sub-collectors ---

func collectCPU(ctx context.Context, m *Metrics) error {
	// interval=0 compares against the previous call.
	total, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return err
	}
	count, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		return err
	}
	m.CPU.Count = count
	if len(total) > 0 {
		m.CPU.Total = total[0]
	}
	return nil
}

func collectMemory(ctx context.Context, m *Metrics) error {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return err
	}
	m.Memory.Total = vm.Total
	m.Memory.Used = vm.Used
	m.Memory.Available = vm.Available
	m.Memory.UsedPercent = vm.UsedPercent

	sw, err := mem.SwapMemoryWithContext(ctx)
	if err != nil {
		// Swap might not be available; treat as non-fatal within memory.
		return nil
	}
	m.Memory.SwapTotal = sw.Total
	m.Memory.SwapUsed = sw.Used
	if sw.Total > 0 {
		m.Memory.SwapUsedPercent = sw.UsedPercent
	}
	return nil
}

func collectDisk(ctx context.Context, mount string, m *Metrics) error {
	usage, err := disk.UsageWithContext(ctx, mount)
	if err != nil {
		return err
	}
	m.Disk = DiskMetrics{
		Path:        usage.Path,
		Total:       usage.Total,
		Used:        usage.Used,
		Free:        usage.Free,
		UsedPercent: usage.UsedPercent,
	}
	return nil
}

func collectLoad(ctx context.Context, m *Metrics) error {
	avg, err := load.AvgWithContext(ctx)
	if err != nil {
		return err
	}
	m.Load.Load1 = avg.Load1
	m.Load.Load5 = avg.Load5
	m.Load.Load15 = avg.Load15
	return nil
}

func collectUptime(ctx context.Context, m *Metrics) error {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return err
	}
	m.Uptime = time.Duration(secs) * time.Second
	return nil
}
