package shipment

import "math"

const DefaultVolumetricDivisor = 5000

// Rater returns the weight a package is billed at.
type Rater interface {
	ChargeableWeight(p Package) float64
}

// VolumetricRater bills the greater of actual and volumetric weight,
// where volumetric weight is volume in cm3 divided by Divisor.
type VolumetricRater struct {
	Divisor float64
}

func NewVolumetricRater(divisor float64) VolumetricRater {
	if divisor <= 0 {
		divisor = DefaultVolumetricDivisor
	}
	return VolumetricRater{Divisor: divisor}
}

func (r VolumetricRater) ChargeableWeight(p Package) float64 {
	divisor := r.Divisor
	if divisor <= 0 {
		divisor = DefaultVolumetricDivisor
	}
	return roundWeight(math.Max(p.Weight(), p.Dimensions().Volume()/divisor))
}

func roundWeight(w float64) float64 {
	return math.Round(w*1000) / 1000
}
