// Copyright 2026 The go-raster Authors. SPDX-License-Identifier: Apache-2.0

// Package kmeans implements the perceptual k-means clusterer shared by
// quantization, segmentation and saliency-adjacent callers. It clusters
// Vec3 samples — LAB triples for perceptual runs, raw RGB triples for the
// non-perceptual quantizer — under the Euclidean metric.
//
// Seeding is deterministic: centroids are taken by striding through the
// sample sequence, never randomly, so repeated runs over the same input
// produce identical centroids and assignments.
package kmeans

import (
	"fmt"

	"github.com/rasterlab/go-raster/raster"
	"github.com/rasterlab/go-raster/raster/contrib/workerpool"
)

// minParallelSamples is the cutoff below which assignment runs sequentially;
// pool dispatch overhead dominates for tiny sample sets.
const minParallelSamples = 4096

// Result holds the output of one clustering run. Centroids has exactly k
// entries; Assignments has one cluster index in [0,k) per input sample, in
// input order. Both are owned by the caller once returned.
type Result struct {
	Centroids   []raster.Vec3
	Assignments []int
}

// Run clusters points into k groups over maxIter iterations.
//
// The iteration count is fixed: there is no convergence early-exit, so a run
// is fully determined by (points, k, maxIter). Empty clusters keep their
// previous centroid. When k exceeds the number of available samples the
// remaining centroid slots duplicate the first sample; the degenerate
// centroids attract no unique pixels beyond ties and are intentional.
//
// k == 0 and an empty sample set fail fast with ErrInvalidParameter.
// pool may be nil to force sequential assignment.
func Run(points []raster.Vec3, k, maxIter int, pool *workerpool.Pool) (*Result, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: k must be at least 1, got %d", raster.ErrInvalidParameter, k)
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: empty sample set", raster.ErrInvalidParameter)
	}
	if maxIter < 0 {
		return nil, fmt.Errorf("%w: negative iteration count %d", raster.ErrInvalidParameter, maxIter)
	}

	centroids := seed(points, k)
	assignments := make([]int, len(points))

	for range maxIter {
		Assign(points, centroids, assignments, pool)
		update(points, centroids, assignments)
	}

	return &Result{Centroids: centroids, Assignments: assignments}, nil
}

// seed picks initial centroids by striding through the samples:
// stride = max(1, n/k), every stride-th sample until k are collected.
// Short inputs pad with the first sample.
func seed(points []raster.Vec3, k int) []raster.Vec3 {
	stride := max(1, len(points)/k)

	centroids := make([]raster.Vec3, 0, k)
	for i := 0; i < len(points) && len(centroids) < k; i += stride {
		centroids = append(centroids, points[i])
	}
	for len(centroids) < k {
		centroids = append(centroids, points[0])
	}
	return centroids
}

// Assign writes the index of the nearest centroid for every point. Ties
// resolve to the lowest centroid index. Each slot of assignments is owned by
// exactly one worker, so the fan-out needs no locking; centroids are not
// mutated during the call.
//
// Exported because the LAB quantizer re-runs nearest-centroid search per
// pixel after clustering completes, independent of the stored assignments.
func Assign(points, centroids []raster.Vec3, assignments []int, pool *workerpool.Pool) {
	n := min(len(points), len(assignments))
	if n == 0 || len(centroids) == 0 {
		return
	}

	if pool == nil || n < minParallelSamples {
		assignRange(points[:n], centroids, assignments[:n])
		return
	}

	pool.ParallelFor(n, func(start, end int) {
		assignRange(points[start:end], centroids, assignments[start:end])
	})
}

// assignRange is the clustering hot path: one DistanceBatch sweep per
// centroid, then a running minimum. Strict less-than keeps the first
// smallest centroid on ties.
func assignRange(points, centroids []raster.Vec3, assignments []int) {
	best := make([]float32, len(points))
	cur := make([]float32, len(points))

	raster.DistanceBatch(points, centroids[0], best)
	for i := range assignments {
		assignments[i] = 0
	}

	for ci := 1; ci < len(centroids); ci++ {
		raster.DistanceBatch(points, centroids[ci], cur)
		for i, d := range cur {
			if d < best[i] {
				best[i] = d
				assignments[i] = ci
			}
		}
	}
}

// update recomputes each centroid as the componentwise mean of its members.
// The reduction runs sequentially after the parallel assignment phase. A
// cluster with no members keeps its previous centroid; there is no
// reseeding and no division by a zero count.
func update(points, centroids []raster.Vec3, assignments []int) {
	k := len(centroids)
	sums := make([]raster.Vec3, k)
	counts := make([]int, k)

	for i, p := range points {
		ci := assignments[i]
		sums[ci][0] += p[0]
		sums[ci][1] += p[1]
		sums[ci][2] += p[2]
		counts[ci]++
	}

	for ci := range k {
		if counts[ci] == 0 {
			continue
		}
		n := float32(counts[ci])
		centroids[ci] = raster.Vec3{sums[ci][0] / n, sums[ci][1] / n, sums[ci][2] / n}
	}
}
