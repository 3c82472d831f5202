// Package kmeans performs seeded k-means clustering with restarts.
package kmeans

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/viterin/vek"
)

var ErrBadPartition = errors.New("cannot partition points as requested")

const maxLloydIter = 300

// Cluster groups the rows of points into k clusters and returns one label per
// point. Centers are seeded with k-means++ from a PCG stream derived from
// seed, Lloyd iterations run to convergence, and the best of nInit restarts
// (lowest inertia) wins. Labels are canonicalized by order of first
// appearance, so the label values themselves are reproducible for a fixed
// seed, not just the partition.
func Cluster(points [][]float64, k int, seed uint64, nInit int) ([]int, error) {
	if k < 1 || k > len(points) {
		return nil, fmt.Errorf("%w: %d points into %d clusters", ErrBadPartition, len(points), k)
	}
	if nInit < 1 {
		return nil, fmt.Errorf("%w: %d restarts", ErrBadPartition, nInit)
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	bestInertia := math.Inf(1)
	var bestLabels []int
	for range nInit {
		centers := seedCenters(points, k, rng)
		labels, inertia := lloyd(points, centers, k)
		if inertia < bestInertia {
			bestInertia = inertia
			bestLabels = labels
		}
	}
	return canonicalize(bestLabels, k), nil
}

// seedCenters picks k initial centers with k-means++ weighting: each next
// center is drawn with probability proportional to the squared distance from
// the nearest center chosen so far.
func seedCenters(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centers := make([][]float64, 0, k)
	centers = append(centers, clone(points[rng.IntN(len(points))]))
	dist2 := make([]float64, len(points))
	for i, p := range points {
		d := vek.Distance(p, centers[0])
		dist2[i] = d * d
	}
	for len(centers) < k {
		var total float64
		for _, v := range dist2 {
			total += v
		}
		idx := 0
		if total == 0 {
			// all remaining points coincide with a center
			idx = rng.IntN(len(points))
		} else {
			target := rng.Float64() * total
			var cum float64
			for i, v := range dist2 {
				if v == 0 {
					continue
				}
				cum += v
				idx = i
				if cum >= target {
					break
				}
			}
		}
		centers = append(centers, clone(points[idx]))
		last := centers[len(centers)-1]
		for i, p := range points {
			if d := vek.Distance(p, last); d*d < dist2[i] {
				dist2[i] = d * d
			}
		}
	}
	return centers
}

// lloyd alternates assignment and center updates until the largest center
// movement stabilizes within tolerance. An emptied cluster is reseeded at the
// point farthest from its assigned center.
func lloyd(points [][]float64, centers [][]float64, k int) ([]int, float64) {
	labels := make([]int, len(points))
	etol := math.Pow10(-9)
	for range maxLloydIter {
		for i, p := range points {
			labels[i] = nearest(p, centers)
		}
		accs := make([]accumulator, k)
		for c := range k {
			accs[c].init(len(points[0]))
		}
		for i, p := range points {
			accs[labels[i]].Add(p)
		}
		var shift float64
		for c := range k {
			if accs[c].Count() == 0 {
				centers[c] = clone(points[farthest(points, centers, labels)])
				shift = math.Inf(1)
				continue
			}
			next := accs[c].Mean()
			if d := vek.Distance(centers[c], next); d > shift {
				shift = d
			}
			centers[c] = next
		}
		if shift < etol {
			break
		}
	}
	var inertia float64
	for i, p := range points {
		labels[i] = nearest(p, centers)
		d := vek.Distance(p, centers[labels[i]])
		inertia += d * d
	}
	return labels, inertia
}

func nearest(p []float64, centers [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for c, center := range centers {
		if d := vek.Distance(p, center); d < bestDist {
			bestDist, best = d, c
		}
	}
	return best
}

func farthest(points [][]float64, centers [][]float64, labels []int) int {
	idx, worst := 0, -1.0
	for i, p := range points {
		if d := vek.Distance(p, centers[labels[i]]); d > worst {
			worst, idx = d, i
		}
	}
	return idx
}

// canonicalize renumbers labels by order of first appearance.
func canonicalize(labels []int, k int) []int {
	remap := make([]int, k)
	for i := range remap {
		remap[i] = -1
	}
	next := 0
	out := make([]int, len(labels))
	for i, l := range labels {
		if remap[l] == -1 {
			remap[l] = next
			next++
		}
		out[i] = remap[l]
	}
	return out
}

func clone(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)
	return out
}
