package spectral

import (
	"gonum.org/v1/gonum/mat"

	"github.com/yyyoichi/spectral_bicluster/internal/kmeans"
)

// ProjectAndCluster projects each row of data onto the subspace spanned by
// vectors (given as columns) and clusters the projected points into k groups.
func ProjectAndCluster(data, vectors mat.Matrix, k int, seed uint64, nInit int) ([]int, error) {
	var projected mat.Dense
	projected.Mul(data, vectors)
	n, _ := projected.Dims()
	points := make([][]float64, n)
	for i := range n {
		points[i] = projected.RawRowView(i)
	}
	return kmeans.Cluster(points, k, seed, nInit)
}

// asColumns lays the given vectors out as the columns of a dense matrix.
func asColumns(vectors [][]float64) *mat.Dense {
	rows := len(vectors[0])
	m := mat.NewDense(rows, len(vectors), nil)
	for j, vec := range vectors {
		m.SetCol(j, vec)
	}
	return m
}

// asRows returns the columns of m as a slice of vectors, one per column.
func asRows(m *mat.Dense) [][]float64 {
	r, c := m.Dims()
	vectors := make([][]float64, c)
	for j := range c {
		vec := make([]float64, r)
		mat.Col(vec, j, m)
		vectors[j] = vec
	}
	return vectors
}
