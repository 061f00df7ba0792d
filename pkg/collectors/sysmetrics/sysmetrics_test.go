package sysmetrics

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/collectors"
	"github.com/greshake/i3status-rust-sub000/pkg/format"
	"github.com/greshake/i3status-rust-sub000/pkg/icons"
	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

var fixture = Metrics{
	CPU:    CPUMetrics{Total: 93, Count: 4},
	Memory: MemoryMetrics{Total: 16 << 30, Used: 4 << 30, Available: 12 << 30, UsedPercent: 25},
	Disk:   DiskMetrics{Path: "/", Total: 500e9, Used: 450e9, Free: 50e9, UsedPercent: 90},
	Load:   LoadMetrics{Load1: 3.6, Load5: 1, Load15: 0.5},
	Uptime: 26*time.Hour + 3*time.Minute,
}

func fake(t *testing.T, source string, m Metrics, ok part, err error) *Collector {
	t.Helper()
	c, e := New(source, Config{})
	if e != nil {
		t.Fatalf("New(%q): %v", source, e)
	}
	c.sample = func(context.Context, part, string) (Metrics, part, error) { return m, ok, err }
	return c
}

// --- Interface method tests ---

func TestNew(t *testing.T) {
	if _, err := New("gpu", Config{}); err == nil {
		t.Error("New(gpu) should fail")
	}
	for _, s := range []string{"cpu", "disk", "load", "memory", "swap", "sysmetrics", "uptime"} {
		if !slices.Contains(Sources(), s) {
			t.Errorf("Sources() lacks %q", s)
		}
	}
}

func TestIntervals(t *testing.T) {
	tests := []struct {
		source string
		cfg    Config
		want   time.Duration
	}{
		{"cpu", Config{}, 2 * time.Second},
		{"cpu", Config{FastInterval: 5 * time.Second}, 5 * time.Second},
		{"disk", Config{}, 60 * time.Second},
		{"uptime", Config{SlowInterval: time.Minute}, time.Minute},
	}
	for _, tt := range tests {
		c, err := New(tt.source, tt.cfg)
		if err != nil {
			t.Fatal(err)
		}
		if got := c.Interval(); got != tt.want {
			t.Errorf("%s Interval() = %v, want %v", tt.source, got, tt.want)
		}
	}
}

func TestFactory(t *testing.T) {
	c, err := Factory("disk")(collectors.Options{
		Interval:   10 * time.Second,
		Thresholds: collectors.Thresholds{Warning: 1, Critical: 2},
		Values:     map[string]string{"mount": "/home"},
	})
	if err != nil {
		t.Fatal(err)
	}
	sc := c.(*Collector)
	if sc.Interval() != 10*time.Second || sc.cfg.Mount != "/home" || sc.cfg.Thresholds.Critical != 2 {
		t.Errorf("factory config = %+v", sc.cfg)
	}
}

func TestDefaultFormatsCompile(t *testing.T) {
	set, _ := icons.Get("awesome6")
	for _, source := range Sources() {
		c := fake(t, source, fixture, partAll, nil)
		tmpl, err := format.New(c.DefaultFormat())
		if err != nil {
			t.Errorf("%s: %v", source, err)
			continue
		}
		vs, err := c.Collect(context.Background())
		if err != nil {
			t.Fatalf("%s: Collect: %v", source, err)
		}
		if _, err := tmpl.Render(vs, set); err != nil {
			t.Errorf("%s: Render: %v", source, err)
		}
	}
}

func TestValues(t *testing.T) {
	all := fake(t, "sysmetrics", fixture, partAll, nil)
	vs, err := all.Collect(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		key   string
		num   float64
		unit  value.Unit
		state value.State
	}{
		{"cpu_utilization", 93, value.UnitPercent, value.StateWarning},
		{"mem_used_percents", 25, value.UnitPercent, value.StateIdle},
		{"mem_total", 16 << 30, value.UnitBytes, value.StateIdle},
		{"disk_used_percents", 90, value.UnitPercent, value.StateWarning},
		{"load_1m", 3.6, value.UnitNone, value.StateWarning},
		{"load_15m", 0.5, value.UnitNone, value.StateIdle},
	}
	for _, tt := range tests {
		v, ok := vs[tt.key]
		if !ok {
			t.Errorf("missing %q", tt.key)
			continue
		}
		n, u := v.Number()
		if n != tt.num || u != tt.unit || v.Meta.State != tt.state {
			t.Errorf("%s = %v %v %v, want %v %v %v", tt.key, n, u, v.Meta.State, tt.num, tt.unit, tt.state)
		}
	}
	if vs["uptime"].Duration() != fixture.Uptime {
		t.Errorf("uptime = %v", vs["uptime"].Duration())
	}
	if _, ok := vs["swap_used_percents"]; ok {
		t.Error("swap percentage published without swap")
	}
	if vs["icon"].String() != "cpu" {
		t.Errorf("icon = %q, want cpu", vs["icon"].String())
	}
}

func TestCollectPartialAndFailure(t *testing.T) {
	boom := errors.New("boom")
	partial := fake(t, "sysmetrics", Metrics{Memory: MemoryMetrics{Total: 1}}, partMemory, boom)
	vs, err := partial.Collect(context.Background())
	if !errors.Is(err, boom) || vs == nil {
		t.Errorf("partial: %v, %v", vs, err)
	}
	if _, ok := vs["cpu_utilization"]; ok {
		t.Error("partial: failed cpu part published")
	}

	failed := fake(t, "memory", Metrics{}, partCPU, boom)
	if vs, err := failed.Collect(context.Background()); vs != nil || err == nil {
		t.Errorf("failed: %v, %v", vs, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := fake(t, "cpu", fixture, partAll, nil).Collect(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled: %v", err)
	}
}

func TestCollectFailedPartFallsBack(t *testing.T) {
	set, _ := icons.Get("awesome6")
	m := Metrics{CPU: CPUMetrics{Total: 12, Count: 4}}
	c := fake(t, "sysmetrics", m, partAll&^partDisk, errors.New("disk: no such mount"))
	vs, err := c.Collect(context.Background())
	if err == nil || vs == nil {
		t.Fatalf("Collect() = %v, %v; want values and an error", vs, err)
	}
	for _, key := range []string{"disk_used_percents", "disk_avail", "disk_path"} {
		if _, ok := vs[key]; ok {
			t.Errorf("%s published for a failed disk sample", key)
		}
	}

	tmpl, err := format.New("{$disk_used_percents.eng(w:2)|no disk} $cpu_utilization.eng(w:2)")
	if err != nil {
		t.Fatal(err)
	}
	frags, err := tmpl.Render(vs, set)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	var got strings.Builder
	for _, f := range frags {
		got.WriteString(f.Text)
	}
	if got.String() != "no disk 12%" {
		t.Errorf("Render() = %q, want %q", got.String(), "no disk 12%")
	}
}

func TestLoadWithoutCPU(t *testing.T) {
	m := Metrics{Load: LoadMetrics{Load1: 3.6}}
	c := fake(t, "load", m, partLoad, errors.New("cpu: unavailable"))
	vs, err := c.Collect(context.Background())
	if err == nil || vs == nil {
		t.Fatalf("Collect() = %v, %v; want values and an error", vs, err)
	}
	v := vs["load_1m"]
	if n, _ := v.Number(); n != 3.6 || v.Meta.State != value.StateIdle {
		t.Errorf("load_1m = %v %v, want 3.6 idle", n, v.Meta.State)
	}
}

// --- Integration tests (run on actual host) ---

func TestCollectHost(t *testing.T) {
	if testing.Short() {
		t.Skip("host metrics")
	}
	c, err := New("sysmetrics", Config{})
	if err != nil {
		t.Fatal(err)
	}
	vs, err := c.Collect(context.Background())
	if vs == nil {
		t.Fatalf("Collect() returned no values: %v", err)
	}
	if n, _ := vs["cpu_utilization"].Number(); n < 0 || n > 100 {
		t.Errorf("cpu_utilization = %v, want 0-100", n)
	}
	if n, _ := vs["mem_total"].Number(); err == nil && n <= 0 {
		t.Errorf("mem_total = %v, want > 0", n)
	}
}
