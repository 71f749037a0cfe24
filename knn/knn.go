package knn

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/aiworkshop/internal/rng"
)

// Dataset generation constants.
const (
	minHeight = 150.0
	maxHeight = 200.0
)

// Generate returns n cyclists whose heights rise evenly from 150 to 200 cm
// with noise, labelled with sizes XS..XL in equal bands. deviationScale
// multiplies every standard deviation; seed 0 means rng.DefaultSeed.
func Generate(n int, deviationScale float64, seed int64) ([]Sample, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSize, n)
	}
	r := rng.FromSeed(seed)
	out := make([]Sample, n)
	for i := range out {
		base := minHeight + (maxHeight-minHeight)*float64(i)/float64(n)
		h := rng.Normal(r, base, 3.5*deviationScale)
		out[i] = Sample{
			Cyclist: Cyclist{
				Height:    h,
				LegLength: rng.Normal(r, 0.5*h, 2*deviationScale),
				ArmLength: rng.Normal(r, 0.4*h, 2*deviationScale),
			},
			Size: Size(i * NumSizes / n),
		}
	}
	return out, nil
}

// Distance is the Euclidean distance between two cyclists.
func Distance(a, b Cyclist) float64 {
	dh := a.Height - b.Height
	dl := a.LegLength - b.LegLength
	da := a.ArmLength - b.ArmLength
	return math.Sqrt(dh*dh + dl*dl + da*da)
}

// Predict returns the majority size among the k samples nearest to c.
// k larger than the dataset is capped to its length.
func Predict(dataset []Sample, k int, c Cyclist) (Size, error) {
	if len(dataset) == 0 {
		return 0, ErrEmptyDataset
	}
	if k < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadK, k)
	}
	return vote(byDistance(dataset, c), k), nil
}

// PredictAll returns the prediction for c with every k from 1 to
// len(dataset), in order.
func PredictAll(dataset []Sample, c Cyclist) ([]Size, error) {
	if len(dataset) == 0 {
		return nil, ErrEmptyDataset
	}
	sorted := byDistance(dataset, c)
	out := make([]Size, len(dataset))
	for k := 1; k <= len(dataset); k++ {
		out[k-1] = vote(sorted, k)
	}
	return out, nil
}

// BestK evaluates every k from 1 to len(dataset) with leave-one-out
// cross-validation and returns the smallest k with the highest accuracy,
// together with the accuracy (percent) of each k.
func BestK(dataset []Sample) (int, []float64, error) {
	n := len(dataset)
	if n < 2 {
		return 0, nil, fmt.Errorf("%w: leave-one-out needs at least 2 samples, got %d", ErrEmptyDataset, n)
	}
	// neighbours of each held-out sample never change with k
	sorted := make([][]Sample, n)
	rest := make([]Sample, 0, n-1)
	for i := range dataset {
		rest = append(rest[:0], dataset[:i]...)
		rest = append(rest, dataset[i+1:]...)
		sorted[i] = byDistance(rest, dataset[i].Cyclist)
	}

	accuracy := make([]float64, n)
	best, bestAcc := 1, -1.0
	for k := 1; k <= n; k++ {
		correct := 0
		for i, s := range dataset {
			if vote(sorted[i], k) == s.Size {
				correct++
			}
		}
		accuracy[k-1] = float64(correct) * 100 / float64(n)
		if accuracy[k-1] > bestAcc {
			best, bestAcc = k, accuracy[k-1]
		}
	}
	return best, accuracy, nil
}

// byDistance returns a copy of dataset sorted stably by distance to c.
func byDistance(dataset []Sample, c Cyclist) []Sample {
	out := append([]Sample(nil), dataset...)
	sort.SliceStable(out, func(i, j int) bool {
		return Distance(out[i].Cyclist, c) < Distance(out[j].Cyclist, c)
	})
	return out
}

// vote counts sizes among the first k of sorted; ties go to the smallest.
func vote(sorted []Sample, k int) Size {
	k = min(k, len(sorted))
	var counts [NumSizes]int
	for _, s := range sorted[:k] {
		if s.Size >= 0 && int(s.Size) < NumSizes {
			counts[s.Size]++
		}
	}
	best := XS
	for sz := XS; sz <= XL; sz++ {
		if counts[sz] > counts[best] {
			best = sz
		}
	}
	return best
}
