package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	// Range construction
	{
		V := NewVectorRange(0, 3)
		assert.Equal(t, 4, V.Len())
		assert.Equal(t, []float64{0, 1, 2, 3}, V.DataP())
	}
	// Chainable arithmetic
	{
		V := NewVectorRange(0, 2).AddScalar(0.5).Scale(2)
		assert.Equal(t, []float64{1, 3, 5}, V.DataP())
	}
	// Copy does not alias
	{
		V := NewVectorConst(3, 1)
		W := V.Copy().Scale(10)
		assert.Equal(t, []float64{1, 1, 1}, V.DataP())
		assert.Equal(t, []float64{10, 10, 10}, W.DataP())
	}
	// Subset and Concat
	{
		V := NewVector(4, []float64{5, 6, 7, 8})
		S := V.Subset(Index{3, 0})
		assert.Equal(t, []float64{8, 5}, S.DataP())
		C := S.Concat(NewVectorConst(1, 9))
		assert.Equal(t, []float64{8, 5, 9}, C.DataP())
	}
	// Sum, Min, Max
	{
		V := NewVector(3, []float64{-1, 4, 0.5})
		assert.Equal(t, 3.5, V.Sum())
		assert.Equal(t, -1., V.Min())
		assert.Equal(t, 4., V.Max())
	}
	// Near
	{
		V := NewVector(2, []float64{1, 2})
		W := NewVector(2, []float64{1 + 1.e-14, 2})
		assert.True(t, V.Near(W, 1.e-12))
		assert.False(t, V.Near(W.Copy().AddScalar(1), 1.e-12))
	}
}

func TestMatrix(t *testing.T) {
	// Row and Col extraction
	{
		M := NewMatrix(2, 3, []float64{
			1, 2, 3,
			4, 5, 6,
		})
		assert.Equal(t, []float64{4, 5, 6}, M.Row(1).DataP())
		assert.Equal(t, []float64{2, 5}, M.Col(1).DataP())
	}
	// Scale on a copy leaves the source unchanged
	{
		M := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		A := M.Copy().Scale(2)
		assert.Equal(t, 1., M.At(0, 0))
		assert.Equal(t, 2., A.At(0, 0))
		assert.Equal(t, 20., A.Sum())
	}
}

func TestIndex(t *testing.T) {
	{
		I := NewRange(1, 3)
		assert.Equal(t, Index{1, 2, 3}, I)
		assert.Equal(t, Index{2, 3, 4}, I.Add(1))
		assert.True(t, I.Contains(2))
		assert.False(t, I.Contains(0))
	}
	// empty range
	{
		assert.Equal(t, 0, len(NewRange(1, 0)))
	}
	{
		I := NewIndexConst(2, 7).Apply(func(val int) int { return val * val })
		assert.Equal(t, Index{49, 49}, I)
	}
}
