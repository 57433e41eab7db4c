package mesh

import "github.com/fvgeom/fvgeom/utils"

// Grid is the query contract a mesh exposes to discretization operators.
// Both the closed-form uniform grid and the explicit Mesh1D satisfy it, so
// operators are indifferent to which concrete representation backs them.
//
// All returned arrays are fresh copies indexed by entity ID (faces 0..nF-1,
// cells 0..nC-1) and may be mutated freely by the caller. Every method is a
// pure function of construction state: concurrent queries need no
// synchronization and repeated queries return identical results.
type Grid interface {
	Dims() int

	// Topology
	NumberOfVertices() int
	NumberOfFaces() int
	NumberOfCells() int
	MaxFacesPerCell() int
	ExteriorFaceIDs() utils.Index
	InteriorFaceIDs() utils.Index
	// FaceCellIDs returns, per face, the bordering cell pair. The second
	// slot is masked on boundary faces, which touch exactly one cell.
	FaceCellIDs() (c1, c2 MaskedIndex)
	// AdjacentCellIDs is the unmasked variant: on boundary faces the
	// missing side repeats the one real neighbor.
	AdjacentCellIDs() (lo, hi utils.Index)
	CellToCellIDs() (prev, next MaskedIndex)
	// CellToCellIDsFilled substitutes the cell's own ID on the missing
	// side, for schemes that tolerate a zero-length one-sided term.
	CellToCellIDsFilled() (prev, next utils.Index)
	CellFaceIDs() (lo, hi utils.Index)
	CellVertexIDs() (hi, lo utils.Index)
	FaceVertexIDs() utils.Index

	// Geometry
	VertexCoords() utils.Vector
	FaceCenters() utils.Vector
	CellCenters() utils.Vector
	FaceAreas() utils.Vector
	FaceNormals() utils.Vector
	OrientedFaceNormals() utils.Vector
	AreaProjections() utils.Vector
	OrientedAreaProjections() utils.Vector
	FaceTangents1() utils.Vector
	FaceTangents2() utils.Vector
	CellVolumes() utils.Vector
	// CellDistances is the per-face distance a diffusive flux gradient
	// divides by: between the two adjacent cell centers on interior faces,
	// and from the face to its one cell center on boundary faces.
	CellDistances() utils.Vector
	FaceToCellDistanceRatio() utils.Vector
	FaceAspectRatios() utils.Vector
	CellToCellDistances() utils.Matrix
	CellFaceOrientations() utils.Matrix
	CellNormals() utils.Matrix
	CellAreas() utils.Matrix
	CellAreaProjections() utils.Matrix
}

var (
	_ Grid = (*UniformGrid1D)(nil)
	_ Grid = (*Mesh1D)(nil)
)
