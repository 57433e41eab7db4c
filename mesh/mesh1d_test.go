package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fvgeom/fvgeom/utils"
)

// explicit construction of the same grid the closed-form engine produces
// must agree on every quantity of the contract
func TestMesh1DMatchesUniform(t *testing.T) {
	g, err := NewUniformGrid1D(0.4, 3, -0.2)
	assert.NoError(t, err)
	m, err := g.Explicit()
	assert.NoError(t, err)

	assert.Equal(t, g.NumberOfVertices(), m.NumberOfVertices())
	assert.Equal(t, g.NumberOfFaces(), m.NumberOfFaces())
	assert.Equal(t, g.NumberOfCells(), m.NumberOfCells())
	assert.Equal(t, g.ExteriorFaceIDs(), m.ExteriorFaceIDs())
	assert.Equal(t, g.InteriorFaceIDs(), m.InteriorFaceIDs())

	assert.True(t, m.CellCenters().Near(g.CellCenters(), 1.e-14))
	assert.True(t, m.FaceCenters().Near(g.FaceCenters(), 1.e-14))
	assert.True(t, m.CellVolumes().Near(g.CellVolumes(), 1.e-14))
	assert.True(t, m.FaceNormals().Near(g.FaceNormals(), 0))
	assert.True(t, m.CellDistances().Near(g.CellDistances(), 1.e-14))
	assert.True(t, m.FaceToCellDistanceRatio().Near(g.FaceToCellDistanceRatio(), 1.e-14))

	gc1, gc2 := g.FaceCellIDs()
	mc1, mc2 := m.FaceCellIDs()
	assert.Equal(t, gc1, mc1)
	assert.Equal(t, gc2, mc2)

	// compare masks and defined entries; values under a mask are undefined
	gp, gn := g.CellToCellIDs()
	mp, mn := m.CellToCellIDs()
	self := func(i int) int { return i }
	assert.Equal(t, gp.Mask, mp.Mask)
	assert.Equal(t, gn.Mask, mn.Mask)
	assert.Equal(t, gp.Filled(self), mp.Filled(self))
	assert.Equal(t, gn.Filled(self), mn.Filled(self))

	assert.Equal(t, g.CellFaceOrientations(), m.CellFaceOrientations())
	assert.Equal(t, g.CellNormals(), m.CellNormals())
	for c := 0; c < g.NumberOfCells(); c++ {
		assert.True(t, near(g.CellToCellDistances().At(c, 0), m.CellToCellDistances().At(c, 0)))
		assert.True(t, near(g.CellToCellDistances().At(c, 1), m.CellToCellDistances().At(c, 1)))
	}
}

func TestMesh1DNonUniform(t *testing.T) {
	// three cells of widths 1, 2, 4 on [0, 7]
	m, err := NewMesh1D(
		utils.NewVector(4, []float64{0, 1, 3, 7}),
		utils.Index{0, 1, 2, 3},
		utils.Index{0, 1, 2},
		utils.Index{1, 2, 3})
	assert.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4}, m.CellVolumes().DataP())
	assert.Equal(t, []float64{0.5, 2, 5}, m.CellCenters().DataP())
	// boundary faces sit a half-width from their cell, interior faces
	// between unequal cells are off-center
	assert.Equal(t, []float64{0.5, 1.5, 3, 2}, m.CellDistances().DataP())
	r := m.FaceToCellDistanceRatio()
	assert.Equal(t, 1., r.AtVec(0))
	assert.True(t, near(r.AtVec(1), 0.5/1.5))
	assert.True(t, near(r.AtVec(2), 1./3.))
	assert.Equal(t, 1., r.AtVec(3))
}

func TestMesh1DInvalidConstruction(t *testing.T) {
	var ip *InvalidMeshParametersError
	// vertex reference out of range
	{
		_, err := NewMesh1D(utils.NewVector(2, []float64{0, 1}),
			utils.Index{0, 2}, utils.Index{0}, utils.Index{1})
		assert.ErrorAs(t, err, &ip)
	}
	// face reference out of range
	{
		_, err := NewMesh1D(utils.NewVector(2, []float64{0, 1}),
			utils.Index{0, 1}, utils.Index{0}, utils.Index{5})
		assert.ErrorAs(t, err, &ip)
	}
	// degenerate cell
	{
		_, err := NewMesh1D(utils.NewVector(2, []float64{0, 1}),
			utils.Index{0, 1}, utils.Index{0}, utils.Index{0})
		assert.ErrorAs(t, err, &ip)
	}
	// a face bounding three cells is not a valid 1D mesh
	{
		_, err := NewMesh1D(utils.NewVector(4, []float64{0, 1, 2, 3}),
			utils.Index{0, 1, 2, 3},
			utils.Index{0, 1, 1}, utils.Index{1, 2, 3})
		assert.ErrorAs(t, err, &ip)
	}
}

func TestConcatenate(t *testing.T) {
	// [0,3] in unit cells joined with [3,5]: junction face merges
	left, err := NewUniformGrid1D(1, 3, 0)
	assert.NoError(t, err)
	right, err := NewUniformGrid1D(1, 2, 3)
	assert.NoError(t, err)

	joined, err := left.Concatenate(right, 1.e-12)
	assert.NoError(t, err)
	assert.Equal(t, 5, joined.NumberOfCells())
	assert.Equal(t, 6, joined.NumberOfFaces())
	assert.Equal(t, 6, joined.NumberOfVertices())
	assert.InDelta(t, 5, joined.CellVolumes().Sum(), 1.e-12)
	// junction face is interior now
	assert.Equal(t, utils.Index{0, 5}, joined.ExteriorFaceIDs())
	assert.Equal(t, 4, len(joined.InteriorFaceIDs()))
	// left cells keep their IDs, right cells append
	centers := joined.CellCenters()
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3.5, 4.5}, centers.DataP())
	// the junction cells see each other as neighbors
	prev, next := joined.CellToCellIDs()
	v, ok := next.At(2)
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	v, ok = prev.At(3)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	assert.True(t, prev.IsMasked(0))
	assert.True(t, next.IsMasked(4))
}

func TestConcatenateMismatchedSpacing(t *testing.T) {
	// coarse cells after fine cells: the result is a valid non-uniform mesh
	fine, _ := NewUniformGrid1D(0.5, 4, 0)
	coarse, _ := NewUniformGrid1D(1, 2, 2)
	joined, err := fine.Concatenate(coarse, 1.e-12)
	assert.NoError(t, err)
	assert.Equal(t, 6, joined.NumberOfCells())
	assert.InDelta(t, 4, joined.CellVolumes().Sum(), 1.e-12)
	d := joined.CellDistances()
	// junction face distance is the average of the two cell widths
	assert.True(t, near(d.AtVec(4), 0.75))
}

func TestConcatenateIncompatible(t *testing.T) {
	g, _ := NewUniformGrid1D(1, 2, 0)
	var mc *MeshCompatibilityError
	_, err := g.Concatenate(nil, 1.e-12)
	assert.Error(t, err)
	assert.ErrorAs(t, err, &mc)

	// fully overlapping partner collapses onto existing faces
	same, _ := NewUniformGrid1D(1, 2, 0)
	_, err = g.Concatenate(same, 1.e-12)
	assert.Error(t, err)
	assert.ErrorAs(t, err, &mc)
}

func TestMesh1DString(t *testing.T) {
	g, _ := NewUniformGrid1D(1, 3, 0)
	m, _ := g.Explicit()
	assert.Equal(t, "Mesh1D(vertices = 4, cells = 3)", m.String())
}
