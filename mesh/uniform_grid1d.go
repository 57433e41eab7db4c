package mesh

import (
	"fmt"
	"math"

	"github.com/fvgeom/fvgeom/utils"
)

// UniformGrid1D is a structured 1D finite volume grid with uniform cell
// spacing. Every topological and geometric quantity is produced in closed
// form from (Dx, Nx, Origin) instead of by the combinatorial construction
// Mesh1D performs, so queries are cheap enough to recompute on demand.
//
// The grid is immutable after construction. Transformations return new
// instances.
type UniformGrid1D struct {
	Dx, Origin float64
	Nx         int
	scale      float64
}

// NewUniformGrid1D constructs a uniform grid of Nx cells of width dx with
// the leftmost face at origin.
func NewUniformGrid1D(dx float64, nx int, origin float64) (g *UniformGrid1D, err error) {
	switch {
	case math.IsNaN(dx) || math.IsInf(dx, 0):
		err = invalidParams("spacing must be finite, dx = %v", dx)
		return
	case dx <= 0:
		err = invalidParams("spacing must be positive, dx = %v", dx)
		return
	case nx < 0:
		err = invalidParams("cell count must be non-negative, nx = %v", nx)
		return
	}
	g = &UniformGrid1D{
		Dx:     dx,
		Nx:     nx,
		Origin: origin,
		scale:  1,
	}
	return
}

// NewUniformGrid1DDimensioned normalizes a dimensioned spacing and origin to
// dimensionless values. The spacing unit defines the grid's length scale;
// the origin is converted into that unit.
func NewUniformGrid1DDimensioned(dx Dimensioned, nx int, origin Dimensioned) (g *UniformGrid1D, err error) {
	var (
		dxScale, originScale float64
	)
	if dxScale, err = ResolveLengthUnit(dx.Unit); err != nil {
		return
	}
	if originScale, err = ResolveLengthUnit(origin.Unit); err != nil {
		return
	}
	if g, err = NewUniformGrid1D(dx.Value, nx, origin.Value*originScale/dxScale); err != nil {
		return
	}
	g.scale = dxScale
	return
}

func (g *UniformGrid1D) String() string {
	return fmt.Sprintf("UniformGrid1D(dx = %v, nx = %d)", g.Dx, g.Nx)
}

// LengthScale is the factor that restores physical units on coordinates,
// 1 for dimensionless construction.
func (g *UniformGrid1D) LengthScale() float64 { return g.scale }

func (g *UniformGrid1D) Dims() int { return 1 }

// Topology

func (g *UniformGrid1D) NumberOfVertices() int { return g.Nx + 1 }
func (g *UniformGrid1D) NumberOfFaces() int    { return g.Nx + 1 }
func (g *UniformGrid1D) NumberOfCells() int    { return g.Nx }
func (g *UniformGrid1D) MaxFacesPerCell() int  { return 2 }

func (g *UniformGrid1D) ExteriorFaceIDs() utils.Index {
	return utils.Index{0, g.Nx}
}

func (g *UniformGrid1D) InteriorFaceIDs() utils.Index {
	return utils.NewRange(1, g.Nx-1)
}

// FaceCellIDs returns the bordering cell pair per face: interior face i
// borders cells (i-1, i). The first slot of face 0 holds cell 0 and its
// second slot is masked; the last face holds cell Nx-1 with the second
// slot masked.
func (g *UniformGrid1D) FaceCellIDs() (c1, c2 MaskedIndex) {
	var (
		nF = g.NumberOfFaces()
	)
	c1 = NewMaskedIndex(utils.NewRange(-1, nF-2))
	c2 = NewMaskedIndex(utils.NewRange(0, nF-1))
	if g.Nx == 0 {
		c1 = c1.SetMasked(0)
		c2 = c2.SetMasked(0)
		return
	}
	c1.Values[0] = 0
	c2 = c2.SetMasked(0)
	c2.Values[nF-1] = g.Nx - 1
	c2 = c2.SetMasked(nF - 1)
	return
}

// AdjacentCellIDs is the unmasked form: boundary faces repeat their one
// real neighbor on the missing side.
func (g *UniformGrid1D) AdjacentCellIDs() (lo, hi utils.Index) {
	var (
		nF = g.NumberOfFaces()
	)
	lo = utils.NewRange(-1, nF-2)
	hi = utils.NewRange(0, nF-1)
	lo[0] = hi[0]
	hi[nF-1] = lo[nF-1]
	return
}

func (g *UniformGrid1D) CellToCellIDs() (prev, next MaskedIndex) {
	var (
		nC = g.NumberOfCells()
	)
	prev = NewMaskedIndex(utils.NewRange(-1, nC-2))
	next = NewMaskedIndex(utils.NewRange(1, nC))
	if nC > 0 {
		prev = prev.SetMasked(0)
		next = next.SetMasked(nC - 1)
	}
	return
}

func (g *UniformGrid1D) CellToCellIDsFilled() (prev, next utils.Index) {
	mPrev, mNext := g.CellToCellIDs()
	prev = mPrev.Filled(func(i int) int { return i })
	next = mNext.Filled(func(i int) int { return i })
	return
}

func (g *UniformGrid1D) CellFaceIDs() (lo, hi utils.Index) {
	var (
		nC = g.NumberOfCells()
	)
	lo = utils.NewRange(0, nC-1)
	hi = utils.NewRange(1, nC)
	return
}

// CellVertexIDs lists each cell's vertices ordered (upper, lower).
func (g *UniformGrid1D) CellVertexIDs() (hi, lo utils.Index) {
	var (
		nC = g.NumberOfCells()
	)
	hi = utils.NewRange(1, nC)
	lo = utils.NewRange(0, nC-1)
	return
}

// FaceVertexIDs maps each face to its single vertex; in 1D they coincide.
func (g *UniformGrid1D) FaceVertexIDs() utils.Index {
	return utils.NewRange(0, g.NumberOfFaces()-1)
}

// Geometry

func (g *UniformGrid1D) VertexCoords() utils.Vector {
	return g.FaceCenters()
}

func (g *UniformGrid1D) FaceCenters() utils.Vector {
	return utils.NewVectorRange(0, g.Nx).Scale(g.Dx).AddScalar(g.Origin)
}

func (g *UniformGrid1D) CellCenters() utils.Vector {
	return utils.NewVectorRange(0, g.Nx-1).AddScalar(0.5).Scale(g.Dx).AddScalar(g.Origin)
}

func (g *UniformGrid1D) FaceAreas() utils.Vector {
	return utils.NewVectorConst(g.NumberOfFaces(), 1)
}

// FaceNormals are a uniform +1 except the leftmost boundary face, which is
// negated so that its flux still points out of the domain. The consuming
// operators assume exactly this convention.
func (g *UniformGrid1D) FaceNormals() utils.Vector {
	return utils.NewVectorConst(g.NumberOfFaces(), 1).Set(0, -1)
}

func (g *UniformGrid1D) OrientedFaceNormals() utils.Vector { return g.FaceNormals() }

// AreaProjections degenerate to the face normals in 1D: unit areas times
// the ±1 normal.
func (g *UniformGrid1D) AreaProjections() utils.Vector         { return g.FaceNormals() }
func (g *UniformGrid1D) OrientedAreaProjections() utils.Vector { return g.AreaProjections() }

// No tangential direction exists in 1D.
func (g *UniformGrid1D) FaceTangents1() utils.Vector {
	return utils.NewVector(g.NumberOfFaces())
}

func (g *UniformGrid1D) FaceTangents2() utils.Vector {
	return utils.NewVector(g.NumberOfFaces())
}

func (g *UniformGrid1D) CellVolumes() utils.Vector {
	return utils.NewVectorConst(g.NumberOfCells(), g.Dx)
}

// CellDistances is Dx between interior cell-center pairs and Dx/2 at the
// two boundary faces, which sit half a cell-width from their one neighbor.
func (g *UniformGrid1D) CellDistances() (d utils.Vector) {
	var (
		nF = g.NumberOfFaces()
	)
	d = utils.NewVectorConst(nF, g.Dx)
	d.Set(0, 0.5*g.Dx)
	d.Set(nF-1, 0.5*g.Dx)
	return
}

// FaceToCellDistanceRatio is 0.5 on interior faces (equidistant between
// neighbor centers) and 1 on boundary faces (full weight to the one cell).
func (g *UniformGrid1D) FaceToCellDistanceRatio() (r utils.Vector) {
	var (
		nF = g.NumberOfFaces()
	)
	r = utils.NewVectorConst(nF, 0.5)
	r.Set(0, 1)
	r.Set(nF-1, 1)
	return
}

func (g *UniformGrid1D) FaceAspectRatios() utils.Vector {
	return g.CellDistances().Apply(func(d float64) float64 { return 1 / d })
}

func (g *UniformGrid1D) CellToCellDistances() (d utils.Matrix) {
	var (
		nC = g.NumberOfCells()
	)
	d = utils.NewMatrix(nC, 2)
	if nC == 0 {
		return
	}
	for i := 0; i < nC; i++ {
		d.Set(i, 0, g.Dx)
		d.Set(i, 1, g.Dx)
	}
	d.Set(0, 0, 0.5*g.Dx)
	d.Set(nC-1, 1, 0.5*g.Dx)
	return
}

// CellFaceOrientations holds the ±1 each cell multiplies its stored face
// normals by to make them outward. Column 0 (lower face) is -1 except for
// cell 0, whose lower face normal is itself flipped.
func (g *UniformGrid1D) CellFaceOrientations() (o utils.Matrix) {
	var (
		nC = g.NumberOfCells()
	)
	o = utils.NewMatrix(nC, 2)
	if nC == 0 {
		return
	}
	for i := 0; i < nC; i++ {
		o.Set(i, 0, -1)
		o.Set(i, 1, 1)
	}
	o.Set(0, 0, 1)
	return
}

// CellNormals are the outward normals per (cell, local face): -1 on the
// lower side, +1 on the upper, for every cell.
func (g *UniformGrid1D) CellNormals() (n utils.Matrix) {
	var (
		nC = g.NumberOfCells()
	)
	n = utils.NewMatrix(nC, 2)
	for i := 0; i < nC; i++ {
		n.Set(i, 0, -1)
		n.Set(i, 1, 1)
	}
	return
}

func (g *UniformGrid1D) CellAreas() (a utils.Matrix) {
	var (
		nC = g.NumberOfCells()
	)
	a = utils.NewMatrix(nC, 2)
	for i := 0; i < nC; i++ {
		a.Set(i, 0, 1)
		a.Set(i, 1, 1)
	}
	return
}

func (g *UniformGrid1D) CellAreaProjections() utils.Matrix {
	return g.CellNormals()
}

// Transformations

// Translate returns a new grid with the origin shifted by v.
func (g *UniformGrid1D) Translate(v float64) *UniformGrid1D {
	return &UniformGrid1D{
		Dx:     g.Dx,
		Nx:     g.Nx,
		Origin: g.Origin + v,
		scale:  g.scale,
	}
}

// Scale returns a new grid with spacing and origin multiplied by factor.
func (g *UniformGrid1D) Scale(factor float64) (r *UniformGrid1D, err error) {
	if r, err = NewUniformGrid1D(g.Dx*factor, g.Nx, g.Origin*factor); err != nil {
		return
	}
	r.scale = g.scale
	return
}

// Explicit converts the closed-form grid to the equivalent explicit
// representation: vertex coordinates plus face-vertex and cell-face
// incidence.
func (g *UniformGrid1D) Explicit() (m *Mesh1D, err error) {
	lo, hi := g.CellFaceIDs()
	return NewMesh1D(g.VertexCoords(), g.FaceVertexIDs(), lo, hi)
}

// Concatenate joins this grid with another mesh of the same family. Two
// uniform grids joined end to end are not generally uniform, so the result
// is an explicit Mesh1D built by delegation.
func (g *UniformGrid1D) Concatenate(other Grid, tol float64) (m *Mesh1D, err error) {
	if m, err = g.Explicit(); err != nil {
		return
	}
	return m.Concatenate(other, tol)
}
