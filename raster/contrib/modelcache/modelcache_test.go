// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

package modelcache

import (
	"os"
	"path/filepath"
	"testing"
)

func TestModelVersion(t *testing.T) {
	tests := []struct {
		path   string
		want   string
		wantOK bool
	}{
		{"edge_detection_v1.0.0.onnx", "1.0.0", true},
		{"color_optimizer_v2.1.3.onnx", "2.1.3", true},
		{"/models/deep/edge_detection_v1.0.0.onnx", "1.0.0", true},
		{"no_version.onnx", "", false},
		{"model.onnx", "", false},
	}
	for _, tt := range tests {
		got, ok := ModelVersion(tt.path)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ModelVersion(%q) = (%q, %v), want (%q, %v)", tt.path, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestModelExists(t *testing.T) {
	if ModelExists("nonexistent_model.onnx") {
		t.Error("ModelExists reported a missing file as present")
	}

	path := filepath.Join(t.TempDir(), "m_v1.onnx")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !ModelExists(path) {
		t.Error("ModelExists reported an existing file as missing")
	}
}

func TestCacheLifecycle(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "edges_v2.onnx")
	if err := os.WriteFile(present, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	absent := filepath.Join(dir, "missing.onnx")

	c := New()
	c.Init()
	if c.Len() != 0 {
		t.Fatalf("Len after Init = %d, want 0", c.Len())
	}

	if !c.Check(present) {
		t.Error("Check(present) = false")
	}
	if c.Check(absent) {
		t.Error("Check(absent) = true")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1 (only present models memoized)", c.Len())
	}

	// Memoized answer survives file removal until Clear.
	if err := os.Remove(present); err != nil {
		t.Fatal(err)
	}
	if !c.Check(present) {
		t.Error("Check(present) = false after removal, want memoized true")
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", c.Len())
	}
	if c.Check(present) {
		t.Error("Check(present) = true after Clear and removal")
	}
}

// A model dropped in after a negative check is picked up without Clear.
func TestCacheSeesLateModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "late_v3.onnx")

	c := New()
	if c.Check(path) {
		t.Fatal("Check = true before the file exists")
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !c.Check(path) {
		t.Error("Check = false after the file appeared")
	}
}

func TestCacheZeroValue(t *testing.T) {
	var c Cache
	if c.Check("nope.onnx") {
		t.Error("zero-value cache Check = true for missing file")
	}
	c.Clear()
}
