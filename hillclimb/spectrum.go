package hillclimb

import (
	"fmt"
	"math"
	"sort"
)

// Spectrum maps an integer frequency to a clarity in [0, 100].
type Spectrum interface {
	Clarity(freq int) float64
	Edges() (left, right int)
}

type band struct {
	left, right int
}

func (b band) Edges() (int, int) { return b.left, b.right }

func (b band) outside(f int) bool { return f < b.left || f > b.right }

type triangle struct{ band }

// Triangle returns a single-station spectrum rising linearly to a peak of 100
// at frequency 100.
func Triangle() Spectrum { return triangle{band{50, 150}} }

func (t triangle) Clarity(f int) float64 {
	if t.outside(f) {
		return 0
	}
	if f < 100 {
		return float64(f)
	}
	return float64(200 - f)
}

type doubleSin struct{ band }

// DoubleSin returns a two-station spectrum: two sine periods stretched over
// 50..150.
func DoubleSin() Spectrum { return doubleSin{band{50, 150}} }

func (d doubleSin) Clarity(f int) float64 {
	if d.outside(f) {
		return 0
	}
	return 25*math.Sin(2*(float64(f)-112.5)*2*math.Pi/100) + 75
}

type tripleSin struct{ band }

// TripleSin returns a three-station spectrum: three sine periods stretched
// over 1000..1600.
func TripleSin() Spectrum { return tripleSin{band{1000, 1600}} }

func (t tripleSin) Clarity(f int) float64 {
	if t.outside(f) {
		return 0
	}
	return 25*math.Sin(3*(float64(f)-1050)*2*math.Pi/600) + 75
}

var spectra = map[string]func() Spectrum{
	"triangle":   Triangle,
	"double-sin": DoubleSin,
	"triple-sin": TripleSin,
}

// SpectrumNames lists the names accepted by SpectrumByName, sorted.
func SpectrumNames() []string {
	names := make([]string, 0, len(spectra))
	for n := range spectra {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SpectrumByName returns the named spectrum or ErrUnknownSpectrum.
func SpectrumByName(name string) (Spectrum, error) {
	fn, ok := spectra[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpectrum, name)
	}
	return fn(), nil
}
