package mesh

// Dimensioned is a scalar carrying a length unit. Constructors reduce it to
// a dimensionless value plus a single scale factor, so all derived geometry
// stays unit-free and the scale is recoverable from the grid.
type Dimensioned struct {
	Value float64
	Unit  string
}

// Length scales relative to the meter. The resolver only runs at
// construction time.
var lengthScales = map[string]float64{
	"":   1,
	"m":  1,
	"km": 1.e+3,
	"dm": 1.e-1,
	"cm": 1.e-2,
	"mm": 1.e-3,
	"um": 1.e-6,
	"nm": 1.e-9,
}

// ResolveLengthUnit reduces a unit name to its scale factor in meters.
func ResolveLengthUnit(unit string) (scale float64, err error) {
	var ok bool
	if scale, ok = lengthScales[unit]; !ok {
		err = invalidParams("unknown length unit %q", unit)
	}
	return
}
