// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package tlsim

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonitorFormatSpecifiers(t *testing.T) {
	var buf bytes.Buffer
	k := NewKernel(WithOutput(&buf))
	a := k.NewSignal("a", 8)
	flags := k.NewSignal("flags", 4)

	k.Write(a, 10)
	k.Write(flags, 0x5)

	k.RegisterMonitor("a=%d flags=%b hex=%h lit=%% tail", []MonitorArg{
		SignalArg(a), SignalArg(flags), SignalArg(flags),
	})
	k.Run()

	require.Equal(t, "a=10 flags=0101 hex=5 lit=% tail\n", buf.String())
}

func TestMonitorTimeSpecifier(t *testing.T) {
	var buf bytes.Buffer
	k := NewKernel(WithOutput(&buf))
	k.currentTime = 40

	k.RegisterMonitor("t=%0t", []MonitorArg{Time()})
	k.Run()

	require.Equal(t, "t=40\n", buf.String())
}

func TestMonitorUnknownSpecifierPassesThroughVerbatim(t *testing.T) {
	var buf bytes.Buffer
	k := NewKernel(WithOutput(&buf))
	sig := k.NewSignal("s", 4)
	k.Write(sig, 3)

	k.RegisterMonitor("v=%q rest=%d", []MonitorArg{SignalArg(sig), SignalArg(sig)})
	k.Run()

	require.Equal(t, "v=%q rest=3\n", buf.String())
}

func TestMonitorCoalescesMultipleChangesInOneDeltaCycle(t *testing.T) {
	// P5: a driver process that writes two monitored signals within the
	// same delta cycle wakes the monitor exactly once, not once per write.
	var buf bytes.Buffer
	k := NewKernel(WithOutput(&buf))
	a := k.NewSignal("a", 8)
	b := k.NewSignal("b", 8)

	k.RegisterMonitor("a=%d b=%d", []MonitorArg{SignalArg(a), SignalArg(b)})
	k.RegisterContinuous(func() {
		k.Write(a, 1)
		k.Write(b, 2)
	}, nil)
	k.Run()

	lines := splitLinesForTest(buf.String())
	require.Equal(t, []string{"a=0 b=0", "a=1 b=2"}, lines,
		"registration prints once at t0, then the driver's two writes coalesce into a single second line")
}

func splitLinesForTest(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
