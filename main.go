package main

import "github.com/fvgeom/fvgeom/cmd"

func main() {
	cmd.Execute()
}
