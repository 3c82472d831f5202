// Package bicluster implements spectral biclustering: simultaneous
// partitioning of the rows and columns of a data matrix into co-clusters.
// Two families are supported, Dhillon's spectral co-clustering
// (block-diagonal structure, each row and column in exactly one bicluster)
// and Kluger's checkerboard methods (independent row and column partitions
// combined by Cartesian product).
package bicluster

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/yyyoichi/spectral_bicluster/internal/kmeans"
	"github.com/yyyoichi/spectral_bicluster/internal/spectral"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNumerical       = errors.New("numerical error")
)

// Method selects the biclustering variant. MethodDhillon yields a joint
// partition; the other three are Kluger checkerboard methods differing only
// in how the matrix is normalized before decomposition.
type Method int

const (
	MethodDhillon Method = iota
	MethodScale
	MethodBistochastic
	MethodLog
)

func (m Method) String() string {
	switch m {
	case MethodDhillon:
		return "dhillon"
	case MethodScale:
		return "scale"
	case MethodBistochastic:
		return "bistochastic"
	case MethodLog:
		return "log"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Fit runs a biclustering fit with the specified options.
// This is a convenience function that creates a Biclusterer and calls its Fit method.
func Fit(data *mat.Dense, opts ...Option) (*Result, error) {
	b, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return b.Fit(data)
}

type Biclusterer struct {
	method                   Method
	clusters                 int
	rowClusters, colClusters int
	scalarSet, gridSet       bool
	components, best         int
	seed                     uint64
	restarts                 int
}

// New initializes a biclusterer.
// The method, cluster counts, spectral hyperparameters, seed and k-means
// restart count can be optionally specified; the defaults are MethodDhillon,
// 3 clusters (a 3x3 grid for the checkerboard methods), 6 components, 3 best
// vectors, seed 0 and 10 restarts, as documented on the individual options.
func New(opts ...Option) (*Biclusterer, error) {
	b := new(Biclusterer)
	if err := b.init(opts...); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Biclusterer) init(opts ...Option) error {
	b.method = MethodDhillon
	b.clusters = 3
	b.rowClusters, b.colClusters = 3, 3
	b.components = 6
	b.best = 3
	b.restarts = 10
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return err
		}
	}
	if b.scalarSet && b.method != MethodDhillon {
		return fmt.Errorf("%w: method %s takes a (rows, cols) cluster pair, not a single count", ErrInvalidArgument, b.method)
	}
	if b.gridSet && b.method == MethodDhillon {
		return fmt.Errorf("%w: method dhillon takes a single cluster count, not a (rows, cols) pair", ErrInvalidArgument)
	}
	if b.best > b.components {
		return fmt.Errorf("%w: best vector count %d exceeds component count %d", ErrInvalidArgument, b.best, b.components)
	}
	return nil
}

// Fit derives the bicluster structure of data.
//
// Process:
//  1. Validates the input against the configured method.
//  2. Normalizes the matrix to remove row/column bias.
//  3. Extracts singular vectors of the normalized matrix.
//  4. Selects candidate vectors and clusters the projected rows and columns.
//  5. Assembles binary membership matrices from the labels.
//
// The fit is deterministic for a fixed seed and either fully succeeds or
// returns an error with no partial result.
func (b *Biclusterer) Fit(data *mat.Dense) (*Result, error) {
	if data == nil {
		return nil, fmt.Errorf("%w: nil data matrix", ErrInvalidArgument)
	}
	r, c := data.Dims()
	for i := range r {
		for j := range c {
			if v := data.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: entry (%d,%d) is not finite", ErrNumerical, i, j)
			}
		}
	}
	switch b.method {
	case MethodDhillon:
		k := b.clusters
		if k > r || k > c {
			return nil, fmt.Errorf("%w: %d clusters exceed a %dx%d matrix", ErrInvalidArgument, k, r, c)
		}
		if nSV := 1 + int(math.Ceil(math.Log2(float64(k)))); nSV > min(r, c) {
			return nil, fmt.Errorf("%w: %d clusters need %d singular vectors from a %dx%d matrix", ErrInvalidArgument, k, nSV, r, c)
		}
		rowLabels, colLabels, err := spectral.Dhillon(data, k, b.seed, b.restarts)
		if err != nil {
			return nil, classify(err)
		}
		return newJointResult(rowLabels, colLabels, k), nil
	case MethodScale, MethodBistochastic, MethodLog:
		rowK, colK := b.rowClusters, b.colClusters
		if rowK > r || colK > c {
			return nil, fmt.Errorf("%w: (%d, %d) clusters exceed a %dx%d matrix", ErrInvalidArgument, rowK, colK, r, c)
		}
		needed := b.components
		if b.method != MethodLog {
			needed++
		}
		if needed > min(r, c) {
			return nil, fmt.Errorf("%w: %d singular vectors requested from a %dx%d matrix", ErrInvalidArgument, needed, r, c)
		}
		var norm spectral.Normalization
		switch b.method {
		case MethodScale:
			norm = spectral.NormScale
		case MethodBistochastic:
			norm = spectral.NormBistochastic
		case MethodLog:
			norm = spectral.NormLog
		}
		rowLabels, colLabels, err := spectral.Checkerboard(data, norm, rowK, colK, b.components, b.best, b.seed, b.restarts)
		if err != nil {
			return nil, classify(err)
		}
		return newGridResult(rowLabels, colLabels, rowK, colK), nil
	default:
		return nil, fmt.Errorf("%w: unknown method %s", ErrInvalidArgument, b.method)
	}
}

// classify folds internal failures into the two public error kinds.
func classify(err error) error {
	if errors.Is(err, spectral.ErrTooFewCandidates) || errors.Is(err, kmeans.ErrBadPartition) {
		return fmt.Errorf("%w:%w", ErrInvalidArgument, err)
	}
	return fmt.Errorf("%w:%w", ErrNumerical, err)
}
