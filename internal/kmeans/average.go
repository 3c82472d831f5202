package kmeans

import "github.com/viterin/vek"

// accumulator builds the running sum of the points assigned to one cluster.
type accumulator struct {
	sum   []float64
	count int
}

func (a *accumulator) init(dim int) {
	a.sum = make([]float64, dim)
	a.count = 0
}

func (a *accumulator) Add(point []float64) {
	vek.Add_Inplace(a.sum, point)
	a.count++
}

func (a *accumulator) Count() int { return a.count }

func (a *accumulator) Mean() []float64 {
	mean := clone(a.sum)
	vek.DivNumber_Inplace(mean, float64(a.count))
	return mean
}
