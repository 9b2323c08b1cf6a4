// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

// Package modelcache answers "is this model file available" without loading
// or running any model. The edge-detection policy branches on the answer;
// inference itself lives outside this module.
//
// The cache is an explicit object with caller-managed lifetime
// (init → populate on first check → clear on demand), not ambient process
// state.
package modelcache

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Cache memoizes model-presence checks keyed by model path.
// The zero value is usable; Init is an optional explicit warm-up.
// Safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]bool
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{}
}

// Init allocates the backing table. Check does this lazily, so Init exists
// for callers that want the population phase to start from a known-empty
// state at a chosen point in their lifecycle.
func (c *Cache) Init() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries == nil {
		c.entries = make(map[string]bool)
	}
}

// Check reports whether the model at path exists. Present models are
// memoized; absent ones are re-checked on every call so a model dropped in
// later is picked up without clearing.
func (c *Cache) Check(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.entries == nil {
		c.entries = make(map[string]bool)
	}
	if ok := c.entries[path]; ok {
		return true
	}

	exists := ModelExists(path)
	if exists {
		c.entries[path] = true
	}
	return exists
}

// Clear drops all memoized entries, e.g. after a model update.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// ModelExists reports whether a model file is present at path.
func ModelExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ModelVersion extracts the version from a filename following the
// name_v<version>.<ext> pattern, e.g. "edge_detection_v1.0.0.onnx" → "1.0.0".
// The second return is false when the pattern is absent.
func ModelVersion(path string) (string, bool) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	i := strings.LastIndex(stem, "_v")
	if i < 0 {
		return "", false
	}
	return stem[i+2:], true
}
