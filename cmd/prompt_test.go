// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	flagL, flagBetaStart, flagBetaEnd, flagBetaDecrement = 0, 0, 0, 0
	flagNumSweeps, flagBurnIn, flagSamplePeriod = 0, 0, 0
	flagQuench = false
	flagOutputFile = ""
}

func TestPromptParametersReadsEveryFieldInOrder(t *testing.T) {
	resetFlags()
	in := strings.NewReader("20\n1.0\n0.2\n0.1\n10000\n100\n2\n")
	sc := bufio.NewScanner(in)
	var out bytes.Buffer

	p, err := promptParameters(sc, &out, "CPU")
	require.NoError(t, err)
	assert.EqualValues(t, 20, p.L)
	assert.InDelta(t, 1.0, p.BetaStart, 1e-12)
	assert.InDelta(t, 0.2, p.BetaEnd, 1e-12)
	assert.InDelta(t, 0.1, p.BetaDecrement, 1e-12)
	assert.EqualValues(t, 10000, p.NumSweeps)
	assert.EqualValues(t, 100, p.BurnIn)
	assert.EqualValues(t, 2, p.SamplePeriod)
	assert.Equal(t, "CPU", p.Backend)
}

func TestPromptParametersFlagsOverridePrompts(t *testing.T) {
	resetFlags()
	flagL = 32
	defer resetFlags()

	// Grid length is supplied by flag, so only the remaining six values
	// need to come from stdin.
	in := strings.NewReader("1.0\n0.2\n0.1\n10000\n100\n2\n")
	sc := bufio.NewScanner(in)
	var out bytes.Buffer

	p, err := promptParameters(sc, &out, "CPU")
	require.NoError(t, err)
	assert.EqualValues(t, 32, p.L)
}

func TestPromptParametersRejectsInvalidResult(t *testing.T) {
	resetFlags()
	// BetaEnd >= BetaStart fails Validate.
	in := strings.NewReader("20\n0.2\n1.0\n0.1\n10000\n100\n2\n")
	sc := bufio.NewScanner(in)
	var out bytes.Buffer

	_, err := promptParameters(sc, &out, "CPU")
	assert.Error(t, err)
}

func TestPromptSaveOrNot(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, promptSaveOrNot(bufio.NewScanner(strings.NewReader("Y\n")), &out))
	assert.True(t, promptSaveOrNot(bufio.NewScanner(strings.NewReader("y\n")), &out))
	assert.False(t, promptSaveOrNot(bufio.NewScanner(strings.NewReader("n\n")), &out))
}
