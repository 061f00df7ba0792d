// Package bar builds blocks from configuration and renders them.
//
// Each block pairs a collector with a compiled format template. Values are
// collected when a block's interval has elapsed and cached in between, while
// templates are re-rendered on every tick so time-driven formatters (text
// rotation, clocks) keep moving.
package bar

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/greshake/i3status-rust-sub000/pkg/collectors"
	"github.com/greshake/i3status-rust-sub000/pkg/config"
	"github.com/greshake/i3status-rust-sub000/pkg/format"
	"github.com/greshake/i3status-rust-sub000/pkg/value"
)

// idleTick is how often a bar whose blocks never change still wakes up.
const idleTick = 5 * time.Second

// BlockOutput is one block's rendered output. Err is set when the block
// could not collect or render; Fragments then hold a short error text.
type BlockOutput struct {
	Name      string
	Fragments []format.Fragment
	Err       error
}

type block struct {
	name     string
	source   string
	tmpl     *format.Template
	interval time.Duration

	mu        sync.Mutex
	values    value.Values
	collected time.Time
	lastErr   error
}

// Bar is a configured set of blocks.
type Bar struct {
	reg    *collectors.Registry
	shared *config.Shared
	blocks []*block
	tick   time.Duration
	now    func() time.Time
}

// New resolves the theme and icons of cfg, builds a collector per block from
// reg and compiles each block's template. A block without a format uses its
// collector's default.
func New(cfg *config.Config, reg *collectors.Registry) (*Bar, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	shared, err := cfg.Resolve()
	if err != nil {
		return nil, err
	}
	b := &Bar{reg: reg, shared: shared, now: time.Now}
	for _, bc := range cfg.Blocks {
		blk, err := newBlock(bc, reg)
		if err != nil {
			return nil, fmt.Errorf("block %q: %w", bc.BlockName(), err)
		}
		b.blocks = append(b.blocks, blk)
	}
	b.tick = b.computeTick()
	return b, nil
}

func newBlock(bc config.BlockConfig, reg *collectors.Registry) (*block, error) {
	th, err := collectors.DefaultThresholds.With(bc.Warning, bc.Critical)
	if err != nil {
		return nil, err
	}
	c, err := reg.Build(bc.BlockName(), bc.Source, collectors.Options{
		Interval:   bc.Interval.Duration,
		Thresholds: th,
		Values:     bc.Values,
	})
	if err != nil {
		return nil, err
	}
	src := bc.Format
	if src == "" {
		src = c.DefaultFormat()
	}
	tmpl, err := format.New(src)
	if err != nil {
		reg.Unregister(bc.BlockName())
		return nil, err
	}
	return &block{
		name:     bc.BlockName(),
		source:   bc.Source,
		tmpl:     tmpl,
		interval: c.Interval(),
	}, nil
}

// computeTick is the shortest of all collector and template intervals.
func (b *Bar) computeTick() time.Duration {
	var tick time.Duration
	consider := func(d time.Duration) {
		if d > 0 && (tick == 0 || d < tick) {
			tick = d
		}
	}
	for _, blk := range b.blocks {
		consider(blk.interval)
		if d, ok := blk.tmpl.MinInterval(); ok {
			consider(d)
		}
	}
	if tick == 0 {
		tick = idleTick
	}
	return tick
}

// Tick returns how often Run re-renders.
func (b *Bar) Tick() time.Duration { return b.tick }

// Shared returns the resolved theme and icons.
func (b *Bar) Shared() *config.Shared { return b.shared }

// Names lists the block names in bar order.
func (b *Bar) Names() []string {
	names := make([]string, len(b.blocks))
	for i, blk := range b.blocks {
		names[i] = blk.name
	}
	return names
}

// Render collects every block whose interval has elapsed, then renders all
// blocks. Collection runs concurrently; the outputs keep bar order.
func (b *Bar) Render(ctx context.Context) []BlockOutput {
	now := b.now()
	var wg sync.WaitGroup
	for _, blk := range b.blocks {
		if !blk.due(now) {
			continue
		}
		wg.Add(1)
		go func(blk *block) {
			defer wg.Done()
			b.collect(ctx, blk, now)
		}(blk)
	}
	wg.Wait()

	out := make([]BlockOutput, len(b.blocks))
	for i, blk := range b.blocks {
		out[i] = b.render(blk)
	}
	return out
}

func (blk *block) due(now time.Time) bool {
	blk.mu.Lock()
	defer blk.mu.Unlock()
	if blk.collected.IsZero() {
		return true
	}
	return blk.interval > 0 && now.Sub(blk.collected) >= blk.interval
}

func (b *Bar) collect(ctx context.Context, blk *block, now time.Time) {
	vs, err := b.reg.Collect(ctx, blk.name)
	if err != nil {
		slog.Warn("collect failed", "block", blk.name, "source", blk.source, "err", err)
	}

	blk.mu.Lock()
	defer blk.mu.Unlock()
	blk.collected = now
	blk.lastErr = err
	// Keep the previous values when nothing came back.
	if vs != nil {
		blk.values = vs
	}
}

func (b *Bar) render(blk *block) BlockOutput {
	blk.mu.Lock()
	vs, collectErr := blk.values, blk.lastErr
	blk.mu.Unlock()

	if vs == nil && collectErr != nil {
		return errorOutput(blk.name, collectErr)
	}
	frags, err := blk.tmpl.Render(vs, b.shared)
	if err != nil {
		slog.Debug("render failed", "block", blk.name, "err", err)
		return errorOutput(blk.name, err)
	}
	return BlockOutput{Name: blk.name, Fragments: frags}
}

func errorOutput(name string, err error) BlockOutput {
	return BlockOutput{
		Name: name,
		Fragments: []format.Fragment{{
			Text:     " " + name + ": error ",
			Metadata: value.Metadata{State: value.StateCritical},
		}},
		Err: err,
	}
}

// Run renders immediately and then on every tick, passing each result to fn,
// until ctx is done.
func (b *Bar) Run(ctx context.Context, fn func([]BlockOutput)) error {
	fn(b.Render(ctx))

	ticker := time.NewTicker(b.tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fn(b.Render(ctx))
		}
	}
}
