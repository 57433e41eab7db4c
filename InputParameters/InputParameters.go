package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/fvgeom/fvgeom/mesh"
)

// Parameters obtained from the YAML input file
type GridParameters1D struct {
	Title  string  `yaml:"Title"`
	Dx     float64 `yaml:"Dx"`
	Nx     int     `yaml:"Nx"`
	Origin float64 `yaml:"Origin"`
	Unit   string  `yaml:"Unit"` // optional length unit for Dx and Origin
}

func (gp *GridParameters1D) Parse(data []byte) error {
	return yaml.Unmarshal(data, gp)
}

func (gp *GridParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", gp.Title)
	fmt.Printf("%8.5f\t\t= Dx\n", gp.Dx)
	fmt.Printf("[%d]\t\t\t= Nx\n", gp.Nx)
	fmt.Printf("%8.5f\t\t= Origin\n", gp.Origin)
	if gp.Unit != "" {
		fmt.Printf("[%s]\t\t\t= Unit\n", gp.Unit)
	}
}

// Grid constructs the uniform grid these parameters describe.
func (gp *GridParameters1D) Grid() (*mesh.UniformGrid1D, error) {
	if gp.Unit != "" {
		return mesh.NewUniformGrid1DDimensioned(
			mesh.Dimensioned{Value: gp.Dx, Unit: gp.Unit}, gp.Nx,
			mesh.Dimensioned{Value: gp.Origin, Unit: gp.Unit})
	}
	return mesh.NewUniformGrid1D(gp.Dx, gp.Nx, gp.Origin)
}
