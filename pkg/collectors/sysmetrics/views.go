package sysmetrics

import (
	"github.com/greshake/i3status-rust-sub000/pkg/collectors"
	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// view is one source: the parts it samples, the values it publishes and
// how it is shown by default.
type view struct {
	name   string
	parts  part
	format string
	slow   bool
	groups []group
}

// group publishes the values backed by one part. A group whose part failed
// is left out so templates fall back instead of showing zeros.
type group struct {
	part   part
	values func(m Metrics, th collectors.Thresholds) value.Values
}

// values merges the groups whose part succeeded. Later groups win on
// shared keys such as "icon".
func (v view) values(m Metrics, ok part, th collectors.Thresholds) value.Values {
	out := make(value.Values)
	for _, g := range v.groups {
		if ok&g.part == 0 {
			continue
		}
		for k, val := range g.values(m, th) {
			out[k] = val
		}
	}
	return out
}

var views = map[string]view{
	"cpu": {
		name:   "cpu",
		parts:  partCPU,
		format: " $icon $cpu_utilization.eng(w:2) ",
		groups: []group{{partCPU, cpuValues}},
	},
	"memory": {
		name:   "memory",
		parts:  partMemory,
		format: " $icon $mem_used.eng(w:3)/$mem_total.eng(w:3) ",
		groups: []group{{partMemory, memoryValues}},
	},
	"swap": {
		name:   "swap",
		parts:  partMemory,
		format: " $icon {$swap_used_percents.eng(w:2)|$swap_used.eng(w:3)} ",
		groups: []group{{partMemory, swapValues}},
	},
	"disk": {
		name:   "disk",
		parts:  partDisk,
		format: " $icon $disk_avail.eng(w:2) ",
		slow:   true,
		groups: []group{{partDisk, diskValues}},
	},
	"load": {
		name:   "load",
		parts:  partLoad,
		format: " $icon $load_1m.eng(w:4) ",
		groups: []group{{partLoad, loadValues}},
	},
	"uptime": {
		name:   "uptime",
		parts:  partUptime,
		format: " $icon $uptime.dur(max_unit:d, units:2) ",
		slow:   true,
		groups: []group{{partUptime, uptimeValues}},
	},
	"sysmetrics": {
		name:   "sysmetrics",
		parts:  partAll,
		format: " $icon $cpu_utilization.eng(w:2) $mem_used_percents.eng(w:2) $load_1m.eng(w:4) ",
		groups: []group{
			{partUptime, uptimeValues},
			{partLoad, loadValues},
			{partDisk, diskValues},
			{partMemory, swapValues},
			{partMemory, memoryValues},
			{partCPU, cpuValues},
		},
	},
}

func bytes(n uint64) value.Value {
	return value.Number(float64(n), value.UnitBytes)
}

func cpuValues(m Metrics, th collectors.Thresholds) value.Values {
	return value.Values{
		"icon":            value.IconProgress("cpu", m.CPU.Total/100),
		"cpu_utilization": th.Percent(m.CPU.Total),
		"cpu_count":       value.Number(float64(m.CPU.Count), value.UnitNone),
	}
}

func memoryValues(m Metrics, th collectors.Thresholds) value.Values {
	state := th.State(m.Memory.UsedPercent)
	return value.Values{
		"icon":              value.IconProgress("memory", m.Memory.UsedPercent/100),
		"mem_total":         bytes(m.Memory.Total),
		"mem_used":          bytes(m.Memory.Used).WithState(state),
		"mem_avail":         bytes(m.Memory.Available),
		"mem_used_percents": th.Percent(m.Memory.UsedPercent),
	}
}

func swapValues(m Metrics, th collectors.Thresholds) value.Values {
	vs := value.Values{
		"icon":       value.Icon("swap"),
		"swap_total": bytes(m.Memory.SwapTotal),
		"swap_used":  bytes(m.Memory.SwapUsed),
	}
	// Without swap there is no meaningful percentage.
	if m.Memory.SwapTotal > 0 {
		vs["swap_used_percents"] = th.Percent(m.Memory.SwapUsedPercent)
	}
	return vs
}

func diskValues(m Metrics, th collectors.Thresholds) value.Values {
	return value.Values{
		"icon":               value.IconProgress("disk", m.Disk.UsedPercent/100),
		"disk_path":          value.Text(m.Disk.Path),
		"disk_total":         bytes(m.Disk.Total),
		"disk_used":          bytes(m.Disk.Used),
		"disk_avail":         bytes(m.Disk.Free).WithState(th.State(m.Disk.UsedPercent)),
		"disk_used_percents": th.Percent(m.Disk.UsedPercent),
	}
}

// loadValues colors by the one minute load per core. Without a core count
// the load stays idle.
func loadValues(m Metrics, th collectors.Thresholds) value.Values {
	state := value.StateIdle
	if m.CPU.Count > 0 {
		state = th.State(m.Load.Load1 / float64(m.CPU.Count) * 100)
	}
	return value.Values{
		"icon":     value.Icon("load"),
		"load_1m":  value.Number(m.Load.Load1, value.UnitNone).WithState(state),
		"load_5m":  value.Number(m.Load.Load5, value.UnitNone),
		"load_15m": value.Number(m.Load.Load15, value.UnitNone),
	}
}

func uptimeValues(m Metrics, _ collectors.Thresholds) value.Values {
	return value.Values{
		"icon":   value.Icon("uptime"),
		"uptime": value.Duration(m.Uptime),
	}
}
