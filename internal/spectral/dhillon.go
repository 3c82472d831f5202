package spectral

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/yyyoichi/spectral_bicluster/internal/kmeans"
	"github.com/yyyoichi/spectral_bicluster/internal/preprocess"
	"github.com/yyyoichi/spectral_bicluster/internal/svd"
)

// Dhillon runs Dhillon's spectral co-clustering: scale-normalize, take the
// 1+ceil(log2 k) leading singular vector pairs discarding the first, stack
// the scale-weighted row and column embeddings into one point set, and run a
// single joint k-means so every row and column lands in exactly one of the k
// biclusters.
func Dhillon(x *mat.Dense, k int, seed uint64, nInit int) (rowLabels, colLabels []int, err error) {
	r, c := x.Dims()
	if k == 1 {
		return make([]int, r), make([]int, c), nil
	}
	an, rowDiag, colDiag, err := preprocess.Scale(x)
	if err != nil {
		return nil, nil, err
	}
	nSV := 1 + int(math.Ceil(math.Log2(float64(k))))
	u, v, err := svd.Decompose(an, nSV, 1)
	if err != nil {
		return nil, nil, err
	}
	_, dims := u.Dims()
	points := make([][]float64, 0, r+c)
	for i := range r {
		p := make([]float64, dims)
		for j := range dims {
			p[j] = rowDiag[i] * u.At(i, j)
		}
		points = append(points, p)
	}
	for i := range c {
		p := make([]float64, dims)
		for j := range dims {
			p[j] = colDiag[i] * v.At(i, j)
		}
		points = append(points, p)
	}
	labels, err := kmeans.Cluster(points, k, seed, nInit)
	if err != nil {
		return nil, nil, err
	}
	return labels[:r], labels[r:], nil
}
