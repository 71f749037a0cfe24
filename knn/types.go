package knn

import (
	"errors"
	"fmt"
)

// Sentinel errors for prediction.
var (
	ErrEmptyDataset = errors.New("knn: dataset is empty")
	ErrBadK         = errors.New("knn: k must be at least 1")
	ErrBadSize      = errors.New("knn: dataset size must be positive")
)

// Size is a bicycle frame size.
type Size int

const (
	XS Size = iota
	S
	M
	L
	XL
)

// NumSizes is the number of frame sizes.
const NumSizes = 5

// Sizes lists every size from smallest to largest.
func Sizes() []Size { return []Size{XS, S, M, L, XL} }

func (s Size) String() string {
	switch s {
	case XS:
		return "XS"
	case S:
		return "S"
	case M:
		return "M"
	case L:
		return "L"
	case XL:
		return "XL"
	default:
		return fmt.Sprintf("Size(%d)", int(s))
	}
}

// Cyclist holds body measurements in centimetres.
type Cyclist struct {
	Height    float64
	LegLength float64
	ArmLength float64
}

// Sample is a cyclist labelled with the size that fits them.
type Sample struct {
	Cyclist
	Size Size
}
