// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

package raster

import "testing"

func TestDispatchConsistency(t *testing.T) {
	level := CurrentLevel()
	t.Logf("dispatch level: %s, width: %d bytes", level, CurrentWidth())

	if Accelerated() != (level > DispatchScalar) {
		t.Errorf("Accelerated() = %v inconsistent with level %s", Accelerated(), level)
	}
	if CurrentWidth() < 16 {
		t.Errorf("CurrentWidth() = %d, want >= 16", CurrentWidth())
	}
}

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
