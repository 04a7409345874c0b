// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package tlsimtest provides shared test scaffolding for exercising a
// tlsim.Kernel, playing the role hwtest plays for hwsim: code every
// package's _test.go files can import instead of duplicating it. Where
// hwtest compares two parts' truth tables, tlsimtest captures a kernel's
// monitor output so tests can assert on it directly.
package tlsimtest

import (
	"bytes"
	"testing"

	"tlsim"
	"tlsim/design"
)

// Run builds top on a fresh Kernel, runs it to completion, and returns
// every monitor line it printed along with the Kernel itself (so callers
// can inspect final signal values).
func Run(t *testing.T, top *design.Instance) (lines []string, k *tlsim.Kernel) {
	t.Helper()

	var buf bytes.Buffer
	k = tlsim.NewKernel(tlsim.WithOutput(&buf))
	if err := k.Build(top); err != nil {
		t.Fatalf("Build: %v", err)
	}
	k.Run()

	return splitLines(buf.String()), k
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		out = append(out, s[start:])
	}
	return out
}
