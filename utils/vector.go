package utils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(N int, dataO ...[]float64) (v Vector) {
	var d *mat.VecDense
	if len(dataO) != 0 && len(dataO[0]) != N {
		err := fmt.Errorf("mismatch in allocation: NewVector N = %v, len(data[0]) = %v\n", N, len(dataO[0]))
		panic(err)
	}
	switch {
	case N == 0:
		// gonum rejects zero-length allocation, the empty VecDense is fine
		d = &mat.VecDense{}
	case len(dataO) != 0:
		d = mat.NewVecDense(N, dataO[0])
	default:
		d = mat.NewVecDense(N, make([]float64, N))
	}
	return Vector{d}
}

func NewVectorConst(N int, val float64) (v Vector) {
	var (
		d = make([]float64, N)
	)
	for i := 0; i < N; i++ {
		d[i] = val
	}
	return NewVector(N, d)
}

// NewVectorRange produces [rmin, rmin+1, ..., rmax] as floats, inclusive.
func NewVectorRange(rmin, rmax int) (v Vector) {
	var (
		N = rmax - rmin + 1
		d = make([]float64, N)
	)
	for i := 0; i < N; i++ {
		d[i] = float64(i + rmin)
	}
	return NewVector(N, d)
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

func (v Vector) DataP() []float64 { return v.V.RawVector().Data }

func (v Vector) Copy() (r Vector) {
	var (
		dataR = make([]float64, v.Len())
	)
	copy(dataR, v.DataP())
	return NewVector(v.Len(), dataR)
}

// Chainable methods (change the receiver)
func (v Vector) Set(i int, val float64) Vector {
	v.V.SetVec(i, val)
	return v
}

func (v Vector) Scale(a float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) AddScalar(a float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] += a
	}
	return v
}

func (v Vector) Add(a Vector) Vector {
	v.V.AddVec(v.V, a.V)
	return v
}

func (v Vector) Subtract(a Vector) Vector {
	v.V.SubVec(v.V, a.V)
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

// Non-mutating methods
func (v Vector) Subset(I Index) (r Vector) {
	var (
		d = make([]float64, len(I))
	)
	for i, ind := range I {
		d[i] = v.AtVec(ind)
	}
	return NewVector(len(I), d)
}

func (v Vector) Concat(a Vector) (r Vector) {
	var (
		N = v.Len() + a.Len()
		d = make([]float64, N)
	)
	copy(d, v.DataP())
	copy(d[v.Len():], a.DataP())
	return NewVector(N, d)
}

func (v Vector) Sum() (sum float64) {
	for _, val := range v.DataP() {
		sum += val
	}
	return
}

func (v Vector) Min() (min float64) {
	var (
		data = v.V.RawVector().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) Near(a Vector, tol float64) bool {
	if v.Len() != a.Len() {
		return false
	}
	for i, val := range v.DataP() {
		if math.Abs(val-a.AtVec(i)) > tol {
			return false
		}
	}
	return true
}
