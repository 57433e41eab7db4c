package mesh

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"

	"github.com/fvgeom/fvgeom/utils"
)

// Mesh1D is an explicit 1D finite volume mesh built from raw vertex
// coordinates and incidence lists. Cell widths need not be uniform, so it
// serves as the general sibling of UniformGrid1D under the same Grid
// contract and as the target representation when uniform grids are
// concatenated.
type Mesh1D struct {
	vertexCoords  utils.Vector
	faceVertexIDs utils.Index
	cellFaceLo    utils.Index
	cellFaceHi    utils.Index

	// adjacency derived once at construction
	faceC1, faceC2 MaskedIndex
	prev, next     MaskedIndex
}

// NewMesh1D validates the incidence lists and derives all adjacency. The
// first cell referencing a face becomes its owner (slot 1); a face
// referenced by one cell is a boundary face with slot 2 masked.
func NewMesh1D(vertexCoords utils.Vector, faceVertexIDs utils.Index, cellFaceLo, cellFaceHi utils.Index) (m *Mesh1D, err error) {
	var (
		nV = vertexCoords.Len()
		nF = len(faceVertexIDs)
		nC = len(cellFaceLo)
	)
	if len(cellFaceHi) != nC {
		err = invalidParams("cell face incidence columns differ in length: %d vs %d", nC, len(cellFaceHi))
		return
	}
	for f, v := range faceVertexIDs {
		if v < 0 || v >= nV {
			err = invalidParams("face %d references vertex %d, have %d vertices", f, v, nV)
			return
		}
	}
	for c := 0; c < nC; c++ {
		for _, f := range []int{cellFaceLo[c], cellFaceHi[c]} {
			if f < 0 || f >= nF {
				err = invalidParams("cell %d references face %d, have %d faces", c, f, nF)
				return
			}
		}
		if cellFaceLo[c] == cellFaceHi[c] {
			err = invalidParams("cell %d is degenerate, both faces are %d", c, cellFaceLo[c])
			return
		}
	}
	m = &Mesh1D{
		vertexCoords:  vertexCoords.Copy(),
		faceVertexIDs: faceVertexIDs.Copy(),
		cellFaceLo:    cellFaceLo.Copy(),
		cellFaceHi:    cellFaceHi.Copy(),
	}
	if err = m.connect(); err != nil {
		m = nil
	}
	return
}

// connect builds face-to-cell adjacency by scanning the incidence lists and
// cell-to-cell adjacency from the sparse product of the cell-face incidence
// matrix with its transpose: an off-diagonal entry marks a shared face.
func (m *Mesh1D) connect() (err error) {
	var (
		nF = m.NumberOfFaces()
		nC = m.NumberOfCells()
	)
	m.faceC1 = NewMaskedIndex(utils.NewIndex(nF))
	m.faceC2 = NewMaskedIndex(utils.NewIndex(nF))
	seen := utils.NewIndex(nF) // cells referencing each face so far
	for c := 0; c < nC; c++ {
		for _, f := range []int{m.cellFaceLo[c], m.cellFaceHi[c]} {
			switch seen[f] {
			case 0:
				m.faceC1.Values[f] = c
			case 1:
				m.faceC2.Values[f] = c
			default:
				err = invalidParams("face %d bounds more than two cells", f)
				return
			}
			seen[f]++
		}
	}
	for f := 0; f < nF; f++ {
		switch seen[f] {
		case 0:
			err = invalidParams("face %d bounds no cell", f)
			return
		case 1:
			// boundary face: mirror the owner into slot 2, then mask it
			m.faceC2.Values[f] = m.faceC1.Values[f]
			m.faceC2 = m.faceC2.SetMasked(f)
		}
	}
	if nC == 0 {
		m.prev = NewMaskedIndex(utils.Index{})
		m.next = NewMaskedIndex(utils.Index{})
		return
	}

	incidence := sparse.NewDOK(nC, nF)
	for c := 0; c < nC; c++ {
		incidence.Set(c, m.cellFaceLo[c], 1)
		incidence.Set(c, m.cellFaceHi[c], 1)
	}
	shared := sparse.NewCSR(nC, nC, nil, nil, nil)
	csr := incidence.ToCSR()
	shared.Mul(csr, csr.T())

	centers := m.CellCenters()
	m.prev = NewMaskedIndex(utils.NewIndex(nC))
	m.next = NewMaskedIndex(utils.NewIndex(nC))
	for c := 0; c < nC; c++ {
		m.prev = m.prev.SetMasked(c)
		m.next = m.next.SetMasked(c)
	}
	shared.DoNonZero(func(i, j int, v float64) {
		if i == j {
			return
		}
		if centers.AtVec(j) < centers.AtVec(i) {
			m.prev.Values[i] = j
			m.prev.Mask[i] = false
		} else {
			m.next.Values[i] = j
			m.next.Mask[i] = false
		}
	})
	return
}

func (m *Mesh1D) String() string {
	return fmt.Sprintf("Mesh1D(vertices = %d, cells = %d)", m.NumberOfVertices(), m.NumberOfCells())
}

func (m *Mesh1D) Dims() int { return 1 }

// Topology

func (m *Mesh1D) NumberOfVertices() int { return m.vertexCoords.Len() }
func (m *Mesh1D) NumberOfFaces() int    { return len(m.faceVertexIDs) }
func (m *Mesh1D) NumberOfCells() int    { return len(m.cellFaceLo) }
func (m *Mesh1D) MaxFacesPerCell() int  { return 2 }

func (m *Mesh1D) ExteriorFaceIDs() (r utils.Index) {
	for f := 0; f < m.NumberOfFaces(); f++ {
		if m.faceC2.IsMasked(f) {
			r = append(r, f)
		}
	}
	return
}

func (m *Mesh1D) InteriorFaceIDs() (r utils.Index) {
	for f := 0; f < m.NumberOfFaces(); f++ {
		if !m.faceC2.IsMasked(f) {
			r = append(r, f)
		}
	}
	return
}

func (m *Mesh1D) FaceCellIDs() (c1, c2 MaskedIndex) {
	return m.faceC1.Copy(), m.faceC2.Copy()
}

func (m *Mesh1D) AdjacentCellIDs() (lo, hi utils.Index) {
	lo = m.faceC1.Values.Copy()
	hi = m.faceC2.Filled(func(f int) int { return m.faceC1.Values[f] })
	return
}

func (m *Mesh1D) CellToCellIDs() (prev, next MaskedIndex) {
	return m.prev.Copy(), m.next.Copy()
}

func (m *Mesh1D) CellToCellIDsFilled() (prev, next utils.Index) {
	prev = m.prev.Filled(func(i int) int { return i })
	next = m.next.Filled(func(i int) int { return i })
	return
}

func (m *Mesh1D) CellFaceIDs() (lo, hi utils.Index) {
	return m.cellFaceLo.Copy(), m.cellFaceHi.Copy()
}

func (m *Mesh1D) CellVertexIDs() (hi, lo utils.Index) {
	lo = m.cellFaceLo.Apply(func(f int) int { return m.faceVertexIDs[f] })
	hi = m.cellFaceHi.Apply(func(f int) int { return m.faceVertexIDs[f] })
	return
}

func (m *Mesh1D) FaceVertexIDs() utils.Index {
	return m.faceVertexIDs.Copy()
}

// Geometry

func (m *Mesh1D) VertexCoords() utils.Vector {
	return m.vertexCoords.Copy()
}

func (m *Mesh1D) FaceCenters() utils.Vector {
	return m.vertexCoords.Subset(m.faceVertexIDs)
}

func (m *Mesh1D) CellCenters() (c utils.Vector) {
	var (
		nC    = m.NumberOfCells()
		faceX = m.FaceCenters()
	)
	c = utils.NewVector(nC)
	for i := 0; i < nC; i++ {
		c.Set(i, 0.5*(faceX.AtVec(m.cellFaceLo[i])+faceX.AtVec(m.cellFaceHi[i])))
	}
	return
}

func (m *Mesh1D) FaceAreas() utils.Vector {
	return utils.NewVectorConst(m.NumberOfFaces(), 1)
}

// FaceNormals point from each face's owner cell (slot 1) outward across the
// face. This reproduces the uniform grid convention: +1 everywhere except a
// leftmost boundary face, whose owner lies to its right.
func (m *Mesh1D) FaceNormals() (n utils.Vector) {
	var (
		nF      = m.NumberOfFaces()
		faceX   = m.FaceCenters()
		centers = m.CellCenters()
	)
	n = utils.NewVector(nF)
	for f := 0; f < nF; f++ {
		owner := m.faceC1.Values[f]
		if faceX.AtVec(f) >= centers.AtVec(owner) {
			n.Set(f, 1)
		} else {
			n.Set(f, -1)
		}
	}
	return
}

func (m *Mesh1D) OrientedFaceNormals() utils.Vector     { return m.FaceNormals() }
func (m *Mesh1D) AreaProjections() utils.Vector         { return m.FaceNormals() }
func (m *Mesh1D) OrientedAreaProjections() utils.Vector { return m.FaceNormals() }

func (m *Mesh1D) FaceTangents1() utils.Vector {
	return utils.NewVector(m.NumberOfFaces())
}

func (m *Mesh1D) FaceTangents2() utils.Vector {
	return utils.NewVector(m.NumberOfFaces())
}

func (m *Mesh1D) CellVolumes() (v utils.Vector) {
	var (
		nC    = m.NumberOfCells()
		faceX = m.FaceCenters()
	)
	v = utils.NewVector(nC)
	for i := 0; i < nC; i++ {
		v.Set(i, math.Abs(faceX.AtVec(m.cellFaceHi[i])-faceX.AtVec(m.cellFaceLo[i])))
	}
	return
}

func (m *Mesh1D) CellDistances() (d utils.Vector) {
	var (
		nF      = m.NumberOfFaces()
		faceX   = m.FaceCenters()
		centers = m.CellCenters()
	)
	d = utils.NewVector(nF)
	for f := 0; f < nF; f++ {
		c1 := m.faceC1.Values[f]
		if c2, ok := m.faceC2.At(f); ok {
			d.Set(f, math.Abs(centers.AtVec(c2)-centers.AtVec(c1)))
		} else {
			d.Set(f, math.Abs(faceX.AtVec(f)-centers.AtVec(c1)))
		}
	}
	return
}

func (m *Mesh1D) FaceToCellDistanceRatio() (r utils.Vector) {
	var (
		nF       = m.NumberOfFaces()
		faceX    = m.FaceCenters()
		centers  = m.CellCenters()
		cellDist = m.CellDistances()
	)
	r = utils.NewVector(nF)
	for f := 0; f < nF; f++ {
		c1 := m.faceC1.Values[f]
		r.Set(f, math.Abs(faceX.AtVec(f)-centers.AtVec(c1))/cellDist.AtVec(f))
	}
	return
}

func (m *Mesh1D) FaceAspectRatios() utils.Vector {
	return m.CellDistances().Apply(func(d float64) float64 { return 1 / d })
}

func (m *Mesh1D) CellToCellDistances() (d utils.Matrix) {
	var (
		nC      = m.NumberOfCells()
		faceX   = m.FaceCenters()
		centers = m.CellCenters()
	)
	d = utils.NewMatrix(nC, 2)
	for c := 0; c < nC; c++ {
		if p, ok := m.prev.At(c); ok {
			d.Set(c, 0, math.Abs(centers.AtVec(c)-centers.AtVec(p)))
		} else {
			d.Set(c, 0, math.Abs(centers.AtVec(c)-faceX.AtVec(m.cellFaceLo[c])))
		}
		if n, ok := m.next.At(c); ok {
			d.Set(c, 1, math.Abs(centers.AtVec(n)-centers.AtVec(c)))
		} else {
			d.Set(c, 1, math.Abs(faceX.AtVec(m.cellFaceHi[c])-centers.AtVec(c)))
		}
	}
	return
}

// CellFaceOrientations is the ±1 multiplier that turns each stored face
// normal into the outward normal of the given cell.
func (m *Mesh1D) CellFaceOrientations() (o utils.Matrix) {
	var (
		nC      = m.NumberOfCells()
		faceX   = m.FaceCenters()
		centers = m.CellCenters()
		normals = m.FaceNormals()
	)
	o = utils.NewMatrix(nC, 2)
	for c := 0; c < nC; c++ {
		for j, f := range []int{m.cellFaceLo[c], m.cellFaceHi[c]} {
			outward := 1.
			if faceX.AtVec(f) < centers.AtVec(c) {
				outward = -1
			}
			o.Set(c, j, outward*normals.AtVec(f))
		}
	}
	return
}

func (m *Mesh1D) CellNormals() (n utils.Matrix) {
	var (
		nC = m.NumberOfCells()
	)
	n = utils.NewMatrix(nC, 2)
	for c := 0; c < nC; c++ {
		n.Set(c, 0, -1)
		n.Set(c, 1, 1)
	}
	return
}

func (m *Mesh1D) CellAreas() (a utils.Matrix) {
	var (
		nC = m.NumberOfCells()
	)
	a = utils.NewMatrix(nC, 2)
	for c := 0; c < nC; c++ {
		a.Set(c, 0, 1)
		a.Set(c, 1, 1)
	}
	return
}

func (m *Mesh1D) CellAreaProjections() utils.Matrix {
	return m.CellNormals()
}

// Concatenate joins this mesh with another under the same Grid contract.
// Vertices of the partner closer than tol to an existing vertex are merged,
// which also merges the coincident faces, so two grids laid end to end
// share their junction face. Entity IDs of the receiver are preserved;
// unmerged partner entities are appended in partner order.
func (m *Mesh1D) Concatenate(other Grid, tol float64) (r *Mesh1D, err error) {
	if other == nil {
		err = incompatible("concatenation partner is nil")
		return
	}
	if other.Dims() != m.Dims() {
		err = incompatible("dimensionality mismatch: %dD vs %dD", m.Dims(), other.Dims())
		return
	}
	var (
		coords    = m.vertexCoords.Copy()
		otherV    = other.VertexCoords()
		vertexMap = utils.NewIndex(otherV.Len())
	)
	for i := 0; i < otherV.Len(); i++ {
		vertexMap[i] = -1
		for j := 0; j < m.vertexCoords.Len(); j++ {
			if math.Abs(otherV.AtVec(i)-m.vertexCoords.AtVec(j)) <= tol {
				vertexMap[i] = j
				break
			}
		}
		if vertexMap[i] == -1 {
			vertexMap[i] = coords.Len()
			coords = coords.Concat(utils.NewVectorConst(1, otherV.AtVec(i)))
		}
	}

	// in 1D a face is identified by its single vertex, so merged vertices
	// merge the faces sitting on them
	var (
		faceVertex  = m.faceVertexIDs.Copy()
		vertexFace  = map[int]int{}
		otherFaceVs = other.FaceVertexIDs()
		faceMap     = utils.NewIndex(len(otherFaceVs))
	)
	for f, v := range faceVertex {
		vertexFace[v] = f
	}
	for f, v := range otherFaceVs {
		mapped := vertexMap[v]
		if existing, ok := vertexFace[mapped]; ok {
			faceMap[f] = existing
			continue
		}
		faceMap[f] = len(faceVertex)
		vertexFace[mapped] = len(faceVertex)
		faceVertex = append(faceVertex, mapped)
	}

	otherLo, otherHi := other.CellFaceIDs()
	lo := append(m.cellFaceLo.Copy(), otherLo.Apply(func(f int) int { return faceMap[f] })...)
	hi := append(m.cellFaceHi.Copy(), otherHi.Apply(func(f int) int { return faceMap[f] })...)

	if r, err = NewMesh1D(coords, faceVertex, lo, hi); err != nil {
		// a merge that collapses the partner onto this mesh shows up as an
		// over-shared face
		err = incompatible("concatenation produced an invalid mesh: %v", err)
	}
	return
}
