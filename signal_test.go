// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tlsim

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignalWriteMasksToWidth(t *testing.T) {
	k := NewKernel()
	sig := k.NewSignal("a", 4)

	k.Write(sig, 0x1F)
	require.EqualValues(t, 0x0F, sig.Read(), "P1: write(0x1F) on a 4-bit signal must read back as 0x0F")
}

func TestSignalWriteWidth64Unmasked(t *testing.T) {
	k := NewKernel()
	sig := k.NewSignal("w", 64)

	k.Write(sig, ^uint64(0))
	require.EqualValues(t, ^uint64(0), sig.Read())
}

func TestNoChangeWriteProducesNoWakeUp(t *testing.T) {
	k := NewKernel()
	sig := k.NewSignal("s", 4)

	fired := 0
	k.RegisterContinuous(func() { fired++ }, []*Signal{sig})
	k.Run()
	require.Equal(t, 1, fired, "register_continuous schedules its callback once at time 0")

	fired = 0
	k.Write(sig, 0) // already 0: masked value equals current value
	k.Run()
	require.Equal(t, 0, fired, "P2: a write equal to the current value wakes nobody")
}

func TestTruncatedWriteThatEqualsCurrentValueIsStillANoOp(t *testing.T) {
	// S4: a 4-bit signal holding 0, written 0x10 (== 0 mod 16), wakes nobody.
	k := NewKernel()
	sig := k.NewSignal("s", 4)

	fired := 0
	k.RegisterContinuous(func() { fired++ }, []*Signal{sig})
	k.Run()
	fired = 0

	k.Write(sig, 0x10)
	k.Run()
	require.Equal(t, 0, fired)

	k.Write(sig, 0x1F) // == 0x0F mod 16, a real change from 0
	k.Run()
	require.Equal(t, 1, fired)
	require.EqualValues(t, 0x0F, sig.Read())
}

func TestZeroWidthSignalClampsToOne(t *testing.T) {
	k := NewKernel()
	sig := k.NewSignal("z", 0)
	require.EqualValues(t, 1, sig.Width())
}
