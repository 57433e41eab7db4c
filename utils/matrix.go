package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 && len(dataO[0]) != nr*nc {
		err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
		panic(err)
	}
	switch {
	case nr*nc == 0:
		m = &mat.Dense{}
	case len(dataO) != 0:
		m = mat.NewDense(nr, nc, dataO[0])
	default:
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	return Matrix{m}
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.M.RawMatrix().Data
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	return NewMatrix(nr, nc, dataR)
}

func (m Matrix) Row(i int) (v Vector) { // Does not change receiver
	var (
		_, nc = m.Dims()
		d     = make([]float64, nc)
	)
	copy(d, m.M.RawRowView(i))
	return NewVector(nc, d)
}

func (m Matrix) Col(j int) (v Vector) { // Does not change receiver
	var (
		nr, _ = m.Dims()
		d     = make([]float64, nr)
	)
	for i := 0; i < nr; i++ {
		d[i] = m.At(i, j)
	}
	return NewVector(nr, d)
}

// Chainable methods (change the receiver)
func (m Matrix) Set(i, j int, val float64) Matrix {
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Scale(a float64) Matrix {
	var (
		data = m.M.RawMatrix().Data
	)
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) SetCol(j int, data []float64) Matrix {
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) Sum() (sum float64) {
	for _, val := range m.M.RawMatrix().Data {
		sum += val
	}
	return
}
