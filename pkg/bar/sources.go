package bar

import (
	"github.com/greshake/i3status-rust-sub000/pkg/collectors"
	"github.com/greshake/i3status-rust-sub000/pkg/collectors/clock"
	"github.com/greshake/i3status-rust-sub000/pkg/collectors/sysmetrics"
)

// DefaultRegistry returns a registry with every built-in source: static,
// time and the sysmetrics views.
func DefaultRegistry() *collectors.Registry {
	r := collectors.NewRegistry()
	mustRegister(r, "static", collectors.StaticFactory)
	mustRegister(r, "time", clock.Factory)
	for _, name := range sysmetrics.Sources() {
		mustRegister(r, name, sysmetrics.Factory(name))
	}
	return r
}

func mustRegister(r *collectors.Registry, name string, f collectors.Factory) {
	if err := r.RegisterSource(name, f); err != nil {
		panic(err)
	}
}
