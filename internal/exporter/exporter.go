package exporter

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Antonboom/ppl-compile-opts/options"
)

const namespace = "ppl_compile_opts"

type l = prometheus.Labels

// Field is a single numeric option addressed by its TOML table and key.
type Field struct {
	Table string
	Key   string
	Value float64
}

// Fields flattens the numeric part of opts. System paths are not numeric and are skipped.
func Fields(opts options.Options) []Field {
	c, et, d := opts.Clock, opts.EventTiming, opts.Dac

	return []Field{
		{"clock", "clock_period_ns", float64(c.ClockPeriodNS)},
		{"clock", "min_rf_clocks_per_sample", float64(c.MinRFClocksPerSample)},
		{"clock", "min_grad_clocks_per_sample", float64(c.MinGradClocksPerSample)},
		{"clock", "min_delay_clocks", float64(c.MinDelayClocks)},

		{"event_timing", "rf_schedule_delay_clocks", float64(et.RFScheduleDelayClocks)},
		{"event_timing", "rf_lag_clocks", float64(et.RFLagClocks)},
		{"event_timing", "rf_return_delay_clocks", float64(et.RFReturnDelayClocks)},
		{"event_timing", "grad_sched_delay_clocks", float64(et.GradSchedDelayClocks)},
		{"event_timing", "grad_ret_delay_clocks", float64(et.GradRetDelayClocks)},
		{"event_timing", "acq_sched_delay_clocks", float64(et.AcqSchedDelayClocks)},
		{"event_timing", "acq_lag_clocks", float64(et.AcqLagClocks)},
		{"event_timing", "acq_return_delay_clocks_1", float64(et.AcqReturnDelayClocks1)},
		{"event_timing", "acq_return_delay_clocks_2", float64(et.AcqReturnDelayClocks2)},

		{"dac", "dac_rf_max", float64(d.RFMax)},
		{"dac", "dac_grad_max", float64(d.GradMax)},
		{"dac", "dac_phase_res_deg", d.PhaseResDeg},

		{"limits", "max_lut_i16_entries", float64(opts.Limits.MaxLUTi16Entries)},
	}
}

// Register publishes opts, loaded from source, on reg.
func Register(reg prometheus.Registerer, source string, opts options.Options) error {
	values := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "value",
		Help:      "Loaded pulse-program compiler option",
	}, []string{"table", "key"})

	info := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "info",
		Help:      "Source of the loaded pulse-program compiler options",
	}, []string{"source"})

	for _, f := range Fields(opts) {
		values.With(l{"table": f.Table, "key": f.Key}).Set(f.Value)
	}
	info.With(l{"source": source}).Set(1)

	if err := reg.Register(values); err != nil {
		return fmt.Errorf("register values: %v", err)
	}
	if err := reg.Register(info); err != nil {
		return fmt.Errorf("register info: %v", err)
	}
	return nil
}
