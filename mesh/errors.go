package mesh

import "fmt"

// InvalidMeshParametersError is returned when a grid constructor is given
// parameters that can not describe a valid mesh. It is never produced by
// query methods on a constructed grid.
type InvalidMeshParametersError struct {
	Reason string
}

func (e *InvalidMeshParametersError) Error() string {
	return fmt.Sprintf("invalid mesh parameters: %s", e.Reason)
}

func invalidParams(format string, args ...interface{}) error {
	return &InvalidMeshParametersError{Reason: fmt.Sprintf(format, args...)}
}

// MeshCompatibilityError is returned when two meshes can not be combined,
// for instance a concatenation between different dimensionalities.
type MeshCompatibilityError struct {
	Reason string
}

func (e *MeshCompatibilityError) Error() string {
	return fmt.Sprintf("incompatible meshes: %s", e.Reason)
}

func incompatible(format string, args ...interface{}) error {
	return &MeshCompatibilityError{Reason: fmt.Sprintf(format, args...)}
}
