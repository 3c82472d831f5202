// Package preprocess normalizes a data matrix before spectral decomposition,
// removing additive and multiplicative row/column effects.
package preprocess

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	ErrZeroSum     = errors.New("row or column has a non-positive sum")
	ErrNonPositive = errors.New("log normalization requires strictly positive entries")
)

const (
	bistochasticTol     = 1e-5
	bistochasticMaxIter = 1000
)

// Scale normalizes x in a single closed-form pass,
//
//	an = diag(1/sqrt(rowSum)) * x * diag(1/sqrt(colSum)),
//
// after which all row sums agree with each other and all column sums agree
// with each other (the two constants need not coincide). The returned rowDiag
// and colDiag hold the applied scale factors 1/sqrt(rowSum) and 1/sqrt(colSum).
func Scale(x *mat.Dense) (an *mat.Dense, rowDiag, colDiag []float64, err error) {
	r, c := x.Dims()
	rowDiag = make([]float64, r)
	colDiag = make([]float64, c)
	for i := range r {
		sum := floats.Sum(x.RawRowView(i))
		if sum <= 0 {
			return nil, nil, nil, fmt.Errorf("%w: row %d sums to %v", ErrZeroSum, i, sum)
		}
		rowDiag[i] = 1 / math.Sqrt(sum)
	}
	for j := range c {
		var sum float64
		for i := range r {
			sum += x.At(i, j)
		}
		if sum <= 0 {
			return nil, nil, nil, fmt.Errorf("%w: column %d sums to %v", ErrZeroSum, j, sum)
		}
		colDiag[j] = 1 / math.Sqrt(sum)
	}
	an = mat.NewDense(r, c, nil)
	for i := range r {
		for j := range c {
			an.Set(i, j, rowDiag[i]*x.At(i, j)*colDiag[j])
		}
	}
	return an, rowDiag, colDiag, nil
}

// Bistochastic iterates Scale to a fixed point so that every row sum and
// every column sum converges to the same constant. Iteration stops when the
// Frobenius distance between successive iterates falls below 1e-5, capped at
// 1000 rounds.
func Bistochastic(x *mat.Dense) (*mat.Dense, error) {
	scaled := mat.DenseCopyOf(x)
	for range bistochasticMaxIter {
		next, _, _, err := Scale(scaled)
		if err != nil {
			return nil, err
		}
		var diff mat.Dense
		diff.Sub(scaled, next)
		dist := mat.Norm(&diff, 2)
		scaled = next
		if dist < bistochasticTol {
			break
		}
	}
	return scaled, nil
}

// Log applies an elementwise logarithm followed by double centering,
//
//	out = L - rowMean - colMean + grandMean,
//
// so that adding any constant to the result yields a matrix whose row and
// column sums are all equal.
func Log(x *mat.Dense) (*mat.Dense, error) {
	r, c := x.Dims()
	l := mat.NewDense(r, c, nil)
	for i := range r {
		for j := range c {
			v := x.At(i, j)
			if v <= 0 {
				return nil, fmt.Errorf("%w: entry (%d,%d) is %v", ErrNonPositive, i, j, v)
			}
			l.Set(i, j, math.Log(v))
		}
	}
	rowMean := make([]float64, r)
	colMean := make([]float64, c)
	var grandMean float64
	for i := range r {
		rowMean[i] = floats.Sum(l.RawRowView(i)) / float64(c)
		grandMean += rowMean[i]
	}
	grandMean /= float64(r)
	for j := range c {
		var sum float64
		for i := range r {
			sum += l.At(i, j)
		}
		colMean[j] = sum / float64(r)
	}
	out := mat.NewDense(r, c, nil)
	for i := range r {
		for j := range c {
			out.Set(i, j, l.At(i, j)-rowMean[i]-colMean[j]+grandMean)
		}
	}
	return out, nil
}
