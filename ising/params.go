// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ising

// MaxGridLength is the largest grid length L this simulator accepts
// (spec.md 6).
const MaxGridLength = 2000

// MaxSweepsPerTemperature is the largest N_sweeps this simulator accepts
// (spec.md 6).
const MaxSweepsPerTemperature = 10_000_000

// Parameters is the full parameter set for one Binder-cumulant run,
// gathered either from interactive prompts or a hardcoded preset
// (spec.md 6). It doubles as the struct saved into the result-file
// header by ResultStore.Save.
type Parameters struct {
	L             uint32  `desc:"grid length, L x L sites, L <= 2000" mapstructure:"l" yaml:"l"`
	BetaStart     float64 `desc:"starting inverse temperature, > 0" mapstructure:"beta_start" yaml:"beta_start"`
	BetaEnd       float64 `desc:"ending inverse temperature, < BetaStart" mapstructure:"beta_end" yaml:"beta_end"`
	BetaDecrement float64 `desc:"decrement applied to beta after each temperature, > 0, <= BetaStart-BetaEnd" mapstructure:"beta_decrement" yaml:"beta_decrement"`
	NumSweeps     uint32  `desc:"number of sweeps per temperature, <= 1e7" mapstructure:"num_sweeps" yaml:"num_sweeps"`
	BurnIn        uint32  `desc:"number of sweeps to discard before sampling starts, < NumSweeps" mapstructure:"burn_in" yaml:"burn_in"`
	SamplePeriod  uint32  `desc:"number of sweeps between consecutive samples after the burn-in, <= NumSweeps-BurnIn" mapstructure:"sample_period" yaml:"sample_period"`
	Backend       string  `desc:"GPU or CPU, recorded in the output file" mapstructure:"backend" yaml:"backend"`
	Quench        bool    `desc:"if true, reset the lattice to all-up between beta-steps instead of annealing (carry-over)" mapstructure:"quench" yaml:"quench"`
	FlushInterval uint32  `desc:"GPU path only: sweeps between periodic command-buffer flushes" mapstructure:"flush_interval" yaml:"flush_interval"`
}

// Validate checks every bound named in spec.md 6, returning the first
// violation found as a *ParameterError. A parameter violation aborts the
// process before any run is attempted -- these are programmer/user
// errors, not recoverable conditions.
func (p *Parameters) Validate() error {
	switch {
	case p.L < 1 || p.L > MaxGridLength:
		return &ParameterError{"L", "must be in [1, 2000]"}
	case p.BetaStart <= 0:
		return &ParameterError{"BetaStart", "must be > 0"}
	case p.BetaEnd >= p.BetaStart:
		return &ParameterError{"BetaEnd", "must be < BetaStart"}
	case p.BetaEnd <= 0:
		return &ParameterError{"BetaEnd", "must be > 0"}
	case p.BetaDecrement <= 0 || p.BetaDecrement > p.BetaStart-p.BetaEnd:
		return &ParameterError{"BetaDecrement", "must be > 0 and <= BetaStart-BetaEnd"}
	case p.NumSweeps > MaxSweepsPerTemperature:
		return &ParameterError{"NumSweeps", "must be <= 10000000"}
	case p.BurnIn >= p.NumSweeps:
		return &ParameterError{"BurnIn", "must be < NumSweeps"}
	case p.SamplePeriod == 0 || p.SamplePeriod > p.NumSweeps-p.BurnIn:
		return &ParameterError{"SamplePeriod", "must be > 0 and <= NumSweeps-BurnIn"}
	case p.Backend != "GPU" && p.Backend != "CPU":
		return &ParameterError{"Backend", `must be "GPU" or "CPU"`}
	}
	return nil
}

// N returns L*L, the number of sites in the lattice.
func (p *Parameters) N() uint32 {
	return p.L * p.L
}
