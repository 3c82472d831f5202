package spectral

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/yyyoichi/spectral_bicluster/internal/preprocess"
	"github.com/yyyoichi/spectral_bicluster/internal/svd"
)

// Normalization selects the preprocessing strategy for the checkerboard
// method.
type Normalization int

const (
	NormScale Normalization = iota
	NormBistochastic
	NormLog
)

// Checkerboard runs Kluger's spectral biclustering: normalize per the chosen
// strategy, compute nComponents singular vector pairs (discarding the leading
// pair except under log normalization), keep the nBest vectors on each side
// whose values best fit a piecewise-constant function, then cluster rows and
// columns independently. Row labels come from projecting x onto the selected
// right vectors, column labels from projecting xᵀ onto the selected left
// vectors; biclusters are the Cartesian product of the two partitions.
func Checkerboard(x *mat.Dense, norm Normalization, rowK, colK, nComponents, nBest int, seed uint64, nInit int) (rowLabels, colLabels []int, err error) {
	var normalized *mat.Dense
	discard := 1
	switch norm {
	case NormScale:
		normalized, _, _, err = preprocess.Scale(x)
	case NormBistochastic:
		normalized, err = preprocess.Bistochastic(x)
	case NormLog:
		normalized, err = preprocess.Log(x)
		discard = 0
	default:
		return nil, nil, fmt.Errorf("unknown normalization %d", norm)
	}
	if err != nil {
		return nil, nil, err
	}
	u, v, err := svd.Decompose(normalized, nComponents+discard, discard)
	if err != nil {
		return nil, nil, err
	}
	bestUT, err := FitBestPiecewise(asRows(u), nBest, rowK, seed, nInit)
	if err != nil {
		return nil, nil, err
	}
	bestVT, err := FitBestPiecewise(asRows(v), nBest, colK, seed, nInit)
	if err != nil {
		return nil, nil, err
	}
	rowLabels, err = ProjectAndCluster(x, asColumns(bestVT), rowK, seed, nInit)
	if err != nil {
		return nil, nil, err
	}
	colLabels, err = ProjectAndCluster(x.T(), asColumns(bestUT), colK, seed, nInit)
	if err != nil {
		return nil, nil, err
	}
	return rowLabels, colLabels, nil
}
