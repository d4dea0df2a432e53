package shipment

import (
	"fmt"

	"backoffice/internal/pkg/errs"
)

// Dimensions are in centimeters. A zero side is treated as not provided.
type Dimensions struct {
	Height float64
	Length float64
	Width  float64
}

func (d Dimensions) missing() []string {
	var out []string
	if d.Height <= 0 {
		out = append(out, "height")
	}
	if d.Length <= 0 {
		out = append(out, "length")
	}
	if d.Width <= 0 {
		out = append(out, "width")
	}
	return out
}

func (d Dimensions) Volume() float64 {
	return d.Height * d.Length * d.Width
}

// Package is one physical parcel of a shipment. Weight is in kilograms.
type Package struct {
	weight           float64
	dimensions       Dimensions
	chargeableWeight float64
}

func NewPackage(weight float64, dims Dimensions) (Package, error) {
	if weight <= 0 {
		return Package{}, errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	if dims.Height < 0 || dims.Length < 0 || dims.Width < 0 {
		return Package{}, errs.NewValueIsInvalidErrorWithCause("dimensions", fmt.Errorf("%+v has a negative side", dims))
	}
	return Package{weight: weight, dimensions: dims, chargeableWeight: weight}, nil
}

// RestorePackage rebuilds a stored package without re-running validation.
func RestorePackage(weight float64, dims Dimensions, chargeableWeight float64) Package {
	if chargeableWeight <= 0 {
		chargeableWeight = weight
	}
	return Package{weight: weight, dimensions: dims, chargeableWeight: chargeableWeight}
}

func (p Package) Weight() float64           { return p.weight }
func (p Package) Dimensions() Dimensions    { return p.dimensions }
func (p Package) ChargeableWeight() float64 { return p.chargeableWeight }

func (p Package) withDefaults(d Dimensions) Package {
	if p.dimensions.Height <= 0 {
		p.dimensions.Height = d.Height
	}
	if p.dimensions.Length <= 0 {
		p.dimensions.Length = d.Length
	}
	if p.dimensions.Width <= 0 {
		p.dimensions.Width = d.Width
	}
	return p
}
