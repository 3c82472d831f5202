package bicluster

import "fmt"

type Option func(*Biclusterer) error

// WithMethod selects the biclustering variant. MethodDhillon (the default)
// requires a scalar cluster count set via WithClusters; the checkerboard
// methods require a (rows, cols) pair set via WithClusterGrid.
func WithMethod(m Method) Option {
	return func(b *Biclusterer) error {
		switch m {
		case MethodDhillon, MethodScale, MethodBistochastic, MethodLog:
			b.method = m
			return nil
		default:
			return fmt.Errorf("%w: unknown method %s", ErrInvalidArgument, m)
		}
	}
}

// WithClusters sets the joint cluster count for MethodDhillon. Default 3.
func WithClusters(k int) Option {
	return func(b *Biclusterer) error {
		if k < 1 {
			return fmt.Errorf("%w: cluster count %d", ErrInvalidArgument, k)
		}
		b.clusters = k
		b.scalarSet = true
		return nil
	}
}

// WithClusterGrid sets the row and column cluster counts for the
// checkerboard methods. The fit produces rows*cols biclusters. Default (3, 3).
func WithClusterGrid(rows, cols int) Option {
	return func(b *Biclusterer) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("%w: cluster grid (%d, %d)", ErrInvalidArgument, rows, cols)
		}
		b.rowClusters, b.colClusters = rows, cols
		b.gridSet = true
		return nil
	}
}

// WithComponents sets how many singular vector pairs the checkerboard
// methods compute as selection candidates. Default 6.
func WithComponents(n int) Option {
	return func(b *Biclusterer) error {
		if n < 1 {
			return fmt.Errorf("%w: component count %d", ErrInvalidArgument, n)
		}
		b.components = n
		return nil
	}
}

// WithBest sets how many of the candidate singular vectors the piecewise
// fitter keeps on each side. Must not exceed the component count. Default 3.
func WithBest(n int) Option {
	return func(b *Biclusterer) error {
		if n < 1 {
			return fmt.Errorf("%w: best vector count %d", ErrInvalidArgument, n)
		}
		b.best = n
		return nil
	}
}

// WithSeed sets the seed for every randomized step of the fit. Fits with the
// same seed on the same input are bit-identical. Default 0.
func WithSeed(seed uint64) Option {
	return func(b *Biclusterer) error {
		b.seed = seed
		return nil
	}
}

// WithRestarts sets how many times each k-means run is restarted from fresh
// centers, keeping the lowest-inertia result. Default 10.
func WithRestarts(n int) Option {
	return func(b *Biclusterer) error {
		if n < 1 {
			return fmt.Errorf("%w: restart count %d", ErrInvalidArgument, n)
		}
		b.restarts = n
		return nil
	}
}
