// Package spectral implements the Dhillon and Kluger spectral biclustering
// drivers: candidate singular-vector selection, projection clustering, and
// label assembly inputs.
package spectral

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/yyyoichi/spectral_bicluster/internal/kmeans"
)

var ErrTooFewCandidates = errors.New("fewer candidate vectors than requested")

// FitBestPiecewise ranks each candidate vector by how well a
// piecewise-constant function approximates it: the vector's values are
// clustered into nClusters groups and the residual sum of squares against the
// per-group means is the score. The k candidates with the lowest residual are
// returned, keeping their original relative order.
func FitBestPiecewise(vectors [][]float64, k, nClusters int, seed uint64, nInit int) ([][]float64, error) {
	if len(vectors) < k {
		return nil, fmt.Errorf("%w: have %d, want %d", ErrTooFewCandidates, len(vectors), k)
	}
	type scored struct {
		idx int
		rss float64
	}
	scores := make([]scored, len(vectors))
	for i, vec := range vectors {
		points := make([][]float64, len(vec))
		for j, v := range vec {
			points[j] = []float64{v}
		}
		labels, err := kmeans.Cluster(points, nClusters, seed, nInit)
		if err != nil {
			return nil, err
		}
		sums := make([]float64, nClusters)
		counts := make([]int, nClusters)
		for j, l := range labels {
			sums[l] += vec[j]
			counts[l]++
		}
		var rss float64
		for j, l := range labels {
			d := vec[j] - sums[l]/float64(counts[l])
			rss += d * d
		}
		scores[i] = scored{idx: i, rss: rss}
	}
	slices.SortStableFunc(scores, func(a, b scored) int {
		return cmp.Compare(a.rss, b.rss)
	})
	idx := make([]int, k)
	for i := range k {
		idx[i] = scores[i].idx
	}
	slices.Sort(idx)
	best := make([][]float64, k)
	for i, j := range idx {
		best[i] = vectors[j]
	}
	return best, nil
}
