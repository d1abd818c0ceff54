// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/emer/isingcumulant/ising"
)

// promptParameters builds a Parameters by prompting on sc (normally a
// scanner wrapping os.Stdin, shared with any later prompts so input
// isn't double-buffered across two Scanners) for every field not
// already supplied by a flag, in the same field order as
// IsingGPUUserInputRun/IsingCPUUserInputRun's std::cin chain: grid
// length, start beta, end beta, beta decrement, number of sweeps,
// burn-in sweeps, sample period.
func promptParameters(sc *bufio.Scanner, w io.Writer, backend string) (ising.Parameters, error) {
	p := ising.Parameters{Backend: backend, Quench: flagQuench}

	var err error
	if p.L, err = promptUint32(sc, w, "Enter the grid length: ", flagL); err != nil {
		return p, err
	}
	if p.BetaStart, err = promptFloat64(sc, w, "Enter the start value of beta: ", flagBetaStart); err != nil {
		return p, err
	}
	if p.BetaEnd, err = promptFloat64(sc, w, "Enter the end value of beta (should be lower than the start value): ", flagBetaEnd); err != nil {
		return p, err
	}
	if p.BetaDecrement, err = promptFloat64(sc, w, "Enter how much the value of beta is decremented for every set of sweeps: ", flagBetaDecrement); err != nil {
		return p, err
	}
	if p.NumSweeps, err = promptUint32(sc, w, "Enter the number of sweeps for every value of beta: ", flagNumSweeps); err != nil {
		return p, err
	}
	if p.BurnIn, err = promptUint32(sc, w, "Enter how many sweeps to wait for every value of beta before spin sum sampling starts: ", flagBurnIn); err != nil {
		return p, err
	}
	if p.SamplePeriod, err = promptUint32(sc, w, "Enter how many sweeps should happen per sample after the wait: ", flagSamplePeriod); err != nil {
		return p, err
	}

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

// promptUint32 returns override if it is nonzero (the flag was set),
// otherwise prints prompt to w and reads one uint32 from sc.
func promptUint32(sc *bufio.Scanner, w io.Writer, prompt string, override uint32) (uint32, error) {
	if override != 0 {
		return override, nil
	}
	fmt.Fprint(w, prompt)
	if !sc.Scan() {
		return 0, fmt.Errorf("cmd: unexpected end of input reading %q", strings.TrimSpace(prompt))
	}
	v, err := strconv.ParseUint(strings.TrimSpace(sc.Text()), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("cmd: invalid integer for %q: %w", strings.TrimSpace(prompt), err)
	}
	return uint32(v), nil
}

// promptFloat64 returns override if it is nonzero, otherwise prints
// prompt to w and reads one float64 from sc.
func promptFloat64(sc *bufio.Scanner, w io.Writer, prompt string, override float64) (float64, error) {
	if override != 0 {
		return override, nil
	}
	fmt.Fprint(w, prompt)
	if !sc.Scan() {
		return 0, fmt.Errorf("cmd: unexpected end of input reading %q", strings.TrimSpace(prompt))
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 64)
	if err != nil {
		return 0, fmt.Errorf("cmd: invalid number for %q: %w", strings.TrimSpace(prompt), err)
	}
	return v, nil
}

// promptFilename prompts for a filename, returning override unchanged
// if the flag was already set.
func promptFilename(sc *bufio.Scanner, w io.Writer, prompt string, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	fmt.Fprint(w, prompt)
	if !sc.Scan() {
		return "", fmt.Errorf("cmd: unexpected end of input reading filename")
	}
	return strings.TrimSpace(sc.Text()), nil
}

// promptSaveOrNot asks the Y/n question IsingGPUUserInputRun and its
// siblings ask after every interactive run, returning true for 'Y' or
// 'y' exactly as the original's `saveDataOrNotUserInput == 89 || == 121`
// check does.
func promptSaveOrNot(sc *bufio.Scanner, w io.Writer) bool {
	fmt.Fprint(w, "\nSave data before displaying plot (Y/n)?\n")
	if !sc.Scan() {
		return false
	}
	answer := strings.TrimSpace(sc.Text())
	return answer == "Y" || answer == "y"
}
