/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/fvgeom/fvgeom/InputParameters"
	"github.com/fvgeom/fvgeom/mesh"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Construct a uniform 1D grid and print its geometry",
	Long: `
Constructs a uniform 1D finite volume grid from a YAML definition file or
from flags and prints the counts, adjacency and geometry arrays,

fvgeom describe -f grid.yaml
fvgeom describe --dx 0.5 --nx 10 --origin -2.5`,
	Run: func(cmd *cobra.Command, args []string) {
		d := &DescribeArgs{}
		d.GridFile, _ = cmd.Flags().GetString("gridFile")
		d.Dx, _ = cmd.Flags().GetFloat64("dx")
		d.Nx, _ = cmd.Flags().GetInt("nx")
		d.Origin, _ = cmd.Flags().GetFloat64("origin")
		d.Verbose, _ = cmd.Flags().GetBool("verbose")
		d.Profile, _ = cmd.Flags().GetBool("profile")
		RunDescribe(d)
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringP("gridFile", "f", "", "YAML grid definition file")
	describeCmd.Flags().Float64("dx", 1, "cell spacing")
	describeCmd.Flags().IntP("nx", "n", 10, "number of cells")
	describeCmd.Flags().Float64("origin", 0, "coordinate of the leftmost face")
	describeCmd.Flags().BoolP("verbose", "v", false, "print the full per-entity arrays")
	describeCmd.Flags().Bool("profile", false, "write a CPU profile of grid construction")
}

type DescribeArgs struct {
	GridFile   string
	Dx, Origin float64
	Nx         int
	Verbose    bool
	Profile    bool
}

func RunDescribe(d *DescribeArgs) {
	var (
		gp  InputParameters.GridParameters1D
		err error
	)
	if d.GridFile != "" {
		var data []byte
		if data, err = ioutil.ReadFile(d.GridFile); err != nil {
			fmt.Printf("unable to read grid file [%s]: %v\n", d.GridFile, err)
			os.Exit(1)
		}
		if err = gp.Parse(data); err != nil {
			fmt.Printf("unable to parse grid file [%s]: %v\n", d.GridFile, err)
			os.Exit(1)
		}
	} else {
		gp = InputParameters.GridParameters1D{Dx: d.Dx, Nx: d.Nx, Origin: d.Origin}
	}
	gp.Print()

	if d.Profile {
		defer profile.Start().Stop()
	}

	g, err := gp.Grid()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	printGrid(g, d.Verbose)
}

func printGrid(g mesh.Grid, verbose bool) {
	fmt.Printf("%v\n", g)
	fmt.Printf("[%d]\t\t\t= Vertices\n", g.NumberOfVertices())
	fmt.Printf("[%d]\t\t\t= Faces\n", g.NumberOfFaces())
	fmt.Printf("[%d]\t\t\t= Cells\n", g.NumberOfCells())
	fmt.Printf("%v\t\t\t= Exterior Faces\n", g.ExteriorFaceIDs())
	fmt.Printf("%8.5f\t\t= Domain Length\n", g.CellVolumes().Sum())
	if !verbose {
		return
	}
	fmt.Printf("Face Centers = %v\n", g.FaceCenters().DataP())
	fmt.Printf("Cell Centers = %v\n", g.CellCenters().DataP())
	fmt.Printf("Cell Volumes = %v\n", g.CellVolumes().DataP())
	fmt.Printf("Face Normals = %v\n", g.FaceNormals().DataP())
	fmt.Printf("Cell Distances = %v\n", g.CellDistances().DataP())
	c1, c2 := g.FaceCellIDs()
	for f := 0; f < g.NumberOfFaces(); f++ {
		v1, _ := c1.At(f)
		if v2, ok := c2.At(f); ok {
			fmt.Printf("face %d: cells (%d, %d)\n", f, v1, v2)
		} else {
			fmt.Printf("face %d: cells (%d, --)\n", f, v1)
		}
	}
}
