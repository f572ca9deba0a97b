// Package units provides conversion between measurement units within a
// physical-quantity family. Each family has one canonical unit that the
// emission factor tables are keyed against, and every conversion is computed
// from the unit's base factor so repeated calls never accumulate error.
package units

import (
	"errors"
	"fmt"
)

// Family identifies a physical-quantity family. Conversions are only defined
// between units of the same family.
type Family string

const (
	Mass     Family = "mass"
	Volume   Family = "volume"
	Area     Family = "area"
	Energy   Family = "energy"
	Distance Family = "distance"
)

// Unit is a measurement unit identifier (e.g. "kWh", "gallon", "mile").
type Unit string

// Supported units. The first unit listed per family is the canonical unit.
const (
	// Mass (canonical: kg)
	Kilogram  Unit = "kg"
	Gram      Unit = "g"
	Pound     Unit = "lb"
	MetricTon Unit = "tonne"

	// Volume (canonical: US gallon)
	Gallon         Unit = "gallon"
	Liter          Unit = "liter"
	ImperialGallon Unit = "imperial-gallon"

	// Area (canonical: square foot)
	SquareFoot  Unit = "sqft"
	SquareMeter Unit = "sqm"

	// Energy (canonical: kWh)
	KilowattHour Unit = "kWh"
	MegawattHour Unit = "MWh"
	Therm        Unit = "therm"
	Gigajoule    Unit = "GJ"

	// Distance (canonical: statute mile)
	Mile         Unit = "mile"
	Kilometer    Unit = "km"
	NauticalMile Unit = "nmi"
)

// ErrUnsupportedConversion is returned when a conversion crosses families or
// references an unknown unit.
var ErrUnsupportedConversion = errors.New("unsupported unit conversion")

// unitSpec describes one unit: its family and the multiplier from one of this
// unit to the family's canonical unit.
type unitSpec struct {
	family      Family
	toCanonical float64
}

var unitTable = map[Unit]unitSpec{
	// Mass
	Kilogram:  {Mass, 1},
	Gram:      {Mass, 0.001},
	Pound:     {Mass, 0.45359237},
	MetricTon: {Mass, 1000},

	// Volume
	Gallon:         {Volume, 1},
	Liter:          {Volume, 0.2641720524},
	ImperialGallon: {Volume, 1.2009499255},

	// Area
	SquareFoot:  {Area, 1},
	SquareMeter: {Area, 10.7639104167},

	// Energy
	KilowattHour: {Energy, 1},
	MegawattHour: {Energy, 1000},
	Therm:        {Energy, 29.3071},
	Gigajoule:    {Energy, 277.7778},

	// Distance
	Mile:         {Distance, 1},
	Kilometer:    {Distance, 0.6213711922},
	NauticalMile: {Distance, 1.150779448},
}

// canonicalUnits maps each family to its canonical unit.
var canonicalUnits = map[Family]Unit{
	Mass:     Kilogram,
	Volume:   Gallon,
	Area:     SquareFoot,
	Energy:   KilowattHour,
	Distance: Mile,
}

// CanonicalUnit returns the canonical unit for a family.
func CanonicalUnit(f Family) Unit {
	return canonicalUnits[f]
}

// FamilyOf returns the family a unit belongs to.
// Returns ("", false) for unknown units.
func FamilyOf(u Unit) (Family, bool) {
	spec, ok := unitTable[u]
	if !ok {
		return "", false
	}
	return spec.family, true
}

// Convert converts value from one unit to another within the same family.
// Returns ErrUnsupportedConversion (wrapped with both unit names) when either
// unit is unknown or the units belong to different families.
func Convert(value float64, from, to Unit) (float64, error) {
	fromSpec, ok := unitTable[from]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrUnsupportedConversion, from)
	}
	toSpec, ok := unitTable[to]
	if !ok {
		return 0, fmt.Errorf("%w: unknown unit %q", ErrUnsupportedConversion, to)
	}
	if fromSpec.family != toSpec.family {
		return 0, fmt.Errorf("%w: %q (%s) to %q (%s)",
			ErrUnsupportedConversion, from, fromSpec.family, to, toSpec.family)
	}
	return value * fromSpec.toCanonical / toSpec.toCanonical, nil
}

// ToCanonical converts value to the canonical unit of its family and reports
// which unit that is.
func ToCanonical(value float64, from Unit) (float64, Unit, error) {
	spec, ok := unitTable[from]
	if !ok {
		return 0, "", fmt.Errorf("%w: unknown unit %q", ErrUnsupportedConversion, from)
	}
	return value * spec.toCanonical, canonicalUnits[spec.family], nil
}
