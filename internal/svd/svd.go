// Package svd extracts leading singular vectors with gonum.
package svd

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var ErrFactorize = errors.New("cannot factorize")

// Decompose returns columns [discard, n) of the left and right singular
// vector matrices of a. Gonum orders singular values descending, so column k
// pairs with the (k+1)-th largest singular value.
func Decompose(a *mat.Dense, n, discard int) (u, v *mat.Dense, err error) {
	r, c := a.Dims()
	if n > min(r, c) || discard < 0 || discard >= n {
		return nil, nil, fmt.Errorf("cannot take singular vectors [%d, %d) of a %dx%d matrix", discard, n, r, c)
	}
	var result mat.SVD
	if ok := result.Factorize(a, mat.SVDThin); !ok {
		return nil, nil, ErrFactorize
	}
	var fu, fv mat.Dense
	result.UTo(&fu)
	result.VTo(&fv)
	u = mat.DenseCopyOf(fu.Slice(0, r, discard, n))
	v = mat.DenseCopyOf(fv.Slice(0, c, discard, n))
	return u, v, nil
}
