package bicluster_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	bicluster "github.com/yyyoichi/spectral_bicluster"
)

func Example_bicluster() {
	// Create a matrix with two blocks on the diagonal
	data := mat.NewDense(6, 6, nil)
	for i := range 3 {
		for j := range 3 {
			data.Set(i, j, 1)
			data.Set(i+3, j+3, 2)
		}
	}

	// Recover the blocks with Dhillon's spectral co-clustering
	res, err := bicluster.Fit(data,
		bicluster.WithMethod(bicluster.MethodDhillon),
		bicluster.WithClusters(2),
	)
	if err != nil {
		fmt.Printf("Error fitting biclusters: %v\n", err)
		return
	}

	fmt.Println(res.RowLabels)
	fmt.Println(res.ColumnLabels)

	// Output:
	// [0 0 0 1 1 1]
	// [0 0 0 1 1 1]
}
