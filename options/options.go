// Package options declares the pulse-program compiler options schema and loads it from TOML.
package options

// DefaultMaxLUTi16Entries is the lookup-table ceiling used when [limits] is absent.
const DefaultMaxLUTi16Entries = 196095

type Options struct {
	Clock       Clock       `toml:"clock" json:"clock" yaml:"clock"`
	EventTiming EventTiming `toml:"event_timing" json:"event_timing" yaml:"event_timing"`
	Dac         Dac         `toml:"dac" json:"dac" yaml:"dac"`
	SystemVars  SystemVars  `toml:"system_vars" json:"system_vars" yaml:"system_vars"`
	Limits      Limits      `toml:"limits" json:"limits" yaml:"limits"`
}

// Clock holds the time base of the pulse program, in clock ticks unless stated otherwise.
type Clock struct {
	// Master pulse program time base.
	ClockPeriodNS uint `toml:"clock_period_ns" json:"clock_period_ns" yaml:"clock_period_ns" validate:"gt=0"`
	// Minimum clocks per RF sample.
	MinRFClocksPerSample uint `toml:"min_rf_clocks_per_sample" json:"min_rf_clocks_per_sample" yaml:"min_rf_clocks_per_sample" validate:"gt=0"`
	// Minimum clocks per gradient sample.
	MinGradClocksPerSample uint `toml:"min_grad_clocks_per_sample" json:"min_grad_clocks_per_sample" yaml:"min_grad_clocks_per_sample" validate:"gt=0"`
	// Minimum valid delay.
	MinDelayClocks uint `toml:"min_delay_clocks" json:"min_delay_clocks" yaml:"min_delay_clocks" validate:"gt=0"`
}

func DefaultClock() Clock {
	return Clock{
		ClockPeriodNS:          100,
		MinRFClocksPerSample:   20,
		MinGradClocksPerSample: 20,
		MinDelayClocks:         20,
	}
}

// EventTiming holds scheduling delays between events and the return of control, in clock ticks.
type EventTiming struct {
	// Total delay between event start and RF pulse.
	RFScheduleDelayClocks uint `toml:"rf_schedule_delay_clocks" json:"rf_schedule_delay_clocks" yaml:"rf_schedule_delay_clocks"`
	// Part of RFScheduleDelayClocks spent in the rfstart command itself.
	RFLagClocks uint `toml:"rf_lag_clocks" json:"rf_lag_clocks" yaml:"rf_lag_clocks" validate:"ltefield=RFScheduleDelayClocks"`
	// Delay after the RF pulse concludes before control is returned.
	RFReturnDelayClocks uint `toml:"rf_return_delay_clocks" json:"rf_return_delay_clocks" yaml:"rf_return_delay_clocks"`
	// Delay before the start of the gradient ramp.
	GradSchedDelayClocks uint `toml:"grad_sched_delay_clocks" json:"grad_sched_delay_clocks" yaml:"grad_sched_delay_clocks"`
	// Time for control to return after the grad start command.
	GradRetDelayClocks uint `toml:"grad_ret_delay_clocks" json:"grad_ret_delay_clocks" yaml:"grad_ret_delay_clocks"`
	// Total delay before the start of sample acquisition.
	AcqSchedDelayClocks uint `toml:"acq_sched_delay_clocks" json:"acq_sched_delay_clocks" yaml:"acq_sched_delay_clocks"`
	// Part of AcqSchedDelayClocks spent in the call to acquire.
	AcqLagClocks uint `toml:"acq_lag_clocks" json:"acq_lag_clocks" yaml:"acq_lag_clocks" validate:"ltefield=AcqSchedDelayClocks"`
	// Delays between the last sample and control return.
	AcqReturnDelayClocks1 uint `toml:"acq_return_delay_clocks_1" json:"acq_return_delay_clocks_1" yaml:"acq_return_delay_clocks_1"`
	AcqReturnDelayClocks2 uint `toml:"acq_return_delay_clocks_2" json:"acq_return_delay_clocks_2" yaml:"acq_return_delay_clocks_2"`
}

func DefaultEventTiming() EventTiming {
	return EventTiming{
		RFScheduleDelayClocks: 1300,
		RFLagClocks:           500,
		RFReturnDelayClocks:   50,
		GradSchedDelayClocks:  50,
		GradRetDelayClocks:    50,
		AcqSchedDelayClocks:   1000,
		AcqLagClocks:          880,
		AcqReturnDelayClocks1: 600,
		AcqReturnDelayClocks2: 600,
	}
}

type Dac struct {
	// Max DAC code of RF power.
	RFMax int32 `toml:"dac_rf_max" json:"dac_rf_max" yaml:"dac_rf_max" validate:"gt=0,lte=32767"`
	// Max DAC code of gradients.
	GradMax int32 `toml:"dac_grad_max" json:"dac_grad_max" yaml:"dac_grad_max" validate:"gt=0,lte=32767"`
	// Converts degrees to DAC codes.
	PhaseResDeg float64 `toml:"dac_phase_res_deg" json:"dac_phase_res_deg" yaml:"dac_phase_res_deg" validate:"gt=0"`
}

// SystemVars points at cooperating executables and templates. Paths are not checked for existence.
type SystemVars struct {
	ParfilioPath       string `toml:"parfilio_path" json:"parfilio_path" yaml:"parfilio_path"`
	SeqGenPath         string `toml:"seq_gen_path" json:"seq_gen_path" yaml:"seq_gen_path"`
	PPLCompilerPath    string `toml:"ppl_compiler_path" json:"ppl_compiler_path" yaml:"ppl_compiler_path"`
	SeqGenRFTemplate   string `toml:"seq_gen_rf_template" json:"seq_gen_rf_template" yaml:"seq_gen_rf_template"`
	SeqGenGradTemplate string `toml:"seq_gen_grad_template" json:"seq_gen_grad_template" yaml:"seq_gen_grad_template"`
}

type Limits struct {
	MaxLUTi16Entries uint `toml:"max_lut_i16_entries" json:"max_lut_i16_entries" yaml:"max_lut_i16_entries" validate:"gt=0"`
}

func DefaultLimits() Limits {
	return Limits{MaxLUTi16Entries: DefaultMaxLUTi16Entries}
}
