package bicluster

import "gonum.org/v1/gonum/mat"

// Result holds the bicluster structure of a fitted matrix.
//
// Rows has shape (nBiclusters, nRows) and Columns (nBiclusters, nCols); entry
// (b, i) is 1 when row/column i belongs to bicluster b, else 0. Under
// MethodDhillon every row and column belongs to exactly one bicluster. Under
// the checkerboard methods bicluster b pairs row group b/cols with column
// group b%cols, so each row belongs to as many biclusters as there are column
// groups and vice versa.
type Result struct {
	Rows    *mat.Dense
	Columns *mat.Dense

	// RowLabels and ColumnLabels assign each row/column its group index,
	// a contiguous range starting at 0.
	RowLabels    []int
	ColumnLabels []int
}

func newJointResult(rowLabels, colLabels []int, k int) *Result {
	return &Result{
		Rows:         assemble(rowLabels, k, func(b int) int { return b }),
		Columns:      assemble(colLabels, k, func(b int) int { return b }),
		RowLabels:    rowLabels,
		ColumnLabels: colLabels,
	}
}

func newGridResult(rowLabels, colLabels []int, rowK, colK int) *Result {
	n := rowK * colK
	return &Result{
		Rows:         assemble(rowLabels, n, func(b int) int { return b / colK }),
		Columns:      assemble(colLabels, n, func(b int) int { return b % colK }),
		RowLabels:    rowLabels,
		ColumnLabels: colLabels,
	}
}

// assemble builds a binary membership matrix: row b marks the labels equal to
// groupOf(b).
func assemble(labels []int, nBiclusters int, groupOf func(int) int) *mat.Dense {
	m := mat.NewDense(nBiclusters, len(labels), nil)
	for b := range nBiclusters {
		g := groupOf(b)
		for i, l := range labels {
			if l == g {
				m.Set(b, i, 1)
			}
		}
	}
	return m
}

// NumBiclusters returns how many biclusters the fit produced.
func (r *Result) NumBiclusters() int {
	n, _ := r.Rows.Dims()
	return n
}

// Bicluster returns the row and column index sets of bicluster i.
// It panics if i is out of range.
func (r *Result) Bicluster(i int) (rows, cols []int) {
	nb, nr := r.Rows.Dims()
	if i < 0 || i >= nb {
		panic("bicluster: index out of range")
	}
	for j := range nr {
		if r.Rows.At(i, j) == 1 {
			rows = append(rows, j)
		}
	}
	_, nc := r.Columns.Dims()
	for j := range nc {
		if r.Columns.At(i, j) == 1 {
			cols = append(cols, j)
		}
	}
	return rows, cols
}

// Shape returns the dimensions of bicluster i's submatrix.
func (r *Result) Shape(i int) (nrows, ncols int) {
	rows, cols := r.Bicluster(i)
	return len(rows), len(cols)
}

// Submatrix extracts bicluster i's submatrix from data, which must have the
// shape of the fitted matrix. It returns nil when the bicluster is empty on
// either dimension.
func (r *Result) Submatrix(i int, data mat.Matrix) *mat.Dense {
	rows, cols := r.Bicluster(i)
	if len(rows) == 0 || len(cols) == 0 {
		return nil
	}
	sub := mat.NewDense(len(rows), len(cols), nil)
	for a, row := range rows {
		for b, col := range cols {
			sub.Set(a, b, data.At(row, col))
		}
	}
	return sub
}
