package kmeans

import (
	"fmt"
	"math"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aiworkshop/internal/rng"
)

// Fit clusters data into k groups, keeping the best of tries restarts.
func Fit(data [][]float64, k, tries int, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	dim, err := validate(data, k, tries)
	if err != nil {
		return nil, err
	}
	lo, hi := bounds(data, dim)
	if o.HasInitRange {
		for i := range lo {
			lo[i], hi[i] = o.InitLo, o.InitHi
		}
	}

	type outcome struct {
		centroids [][]float64
		variation float64
		iters     int
	}
	outcomes := make([]outcome, tries)

	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for t := 0; t < tries; t++ {
		g.Go(func() error {
			r := rand.New(rand.NewSource(rng.DeriveSeed(o.Seed, uint64(t))))
			c := initCentroids(r, k, lo, hi)
			iters := 0
			for iters < o.MaxIter {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}
				next := step(data, c)
				iters++
				if equal(next, c) {
					break
				}
				c = next
			}
			outcomes[t] = outcome{centroids: c, variation: Variation(data, c), iters: iters}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{
		Variations: make([]float64, tries),
		Iterations: make([]int, tries),
	}
	for t, out := range outcomes {
		res.Variations[t] = out.variation
		res.Iterations[t] = out.iters
		if t == 0 || out.variation < res.Variation {
			res.Best, res.Variation, res.Centroids = t, out.variation, out.centroids
		}
	}
	return res, nil
}

// Elbow fits every k in [minK, maxK] and returns the winning variations in
// order, the data of the elbow plot.
func Elbow(data [][]float64, minK, maxK, tries int, opts ...Option) ([]float64, error) {
	if minK < 1 || maxK < minK {
		return nil, fmt.Errorf("%w: range [%d, %d]", ErrBadK, minK, maxK)
	}
	out := make([]float64, 0, maxK-minK+1)
	for k := minK; k <= maxK; k++ {
		res, err := Fit(data, k, tries, opts...)
		if err != nil {
			return nil, fmt.Errorf("kmeans: elbow at k=%d: %w", k, err)
		}
		out = append(out, res.Variation)
	}
	return out, nil
}

// Nearest returns the index of the centroid closest to p. Ties go to the
// lowest index.
func Nearest(p []float64, centroids [][]float64) int {
	best, bestD := 0, math.Inf(1)
	for i, c := range centroids {
		if d := sqDist(p, c); d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

// Variation returns the sum of squared distances from each point to its
// nearest centroid.
func Variation(data [][]float64, centroids [][]float64) float64 {
	var v float64
	for _, p := range data {
		v += sqDist(p, centroids[Nearest(p, centroids)])
	}
	return v
}

// step performs one Lloyd iteration: assign, then recompute means.
func step(data [][]float64, centroids [][]float64) [][]float64 {
	k, dim := len(centroids), len(centroids[0])
	sums := make([][]float64, k)
	for i := range sums {
		sums[i] = make([]float64, dim)
	}
	counts := make([]int, k)
	for _, p := range data {
		c := Nearest(p, centroids)
		counts[c]++
		for d, x := range p {
			sums[c][d] += x
		}
	}
	next := make([][]float64, k)
	for i := range next {
		if counts[i] == 0 {
			next[i] = append([]float64(nil), centroids[i]...)
			continue
		}
		next[i] = sums[i]
		for d := range next[i] {
			next[i][d] /= float64(counts[i])
		}
	}
	return next
}

func initCentroids(r *rand.Rand, k int, lo, hi []float64) [][]float64 {
	c := make([][]float64, k)
	for i := range c {
		c[i] = make([]float64, len(lo))
		for d := range lo {
			c[i][d] = rng.Uniform(r, lo[d], hi[d])
		}
	}
	return c
}

func validate(data [][]float64, k, tries int) (int, error) {
	if len(data) == 0 {
		return 0, ErrEmptyDataset
	}
	if k < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadK, k)
	}
	if tries < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadTries, tries)
	}
	dim := len(data[0])
	if dim == 0 {
		return 0, ErrDimensionMismatch
	}
	for i, p := range data {
		if len(p) != dim {
			return 0, fmt.Errorf("%w: point %d has %d coordinates, want %d", ErrDimensionMismatch, i, len(p), dim)
		}
	}
	return dim, nil
}

func bounds(data [][]float64, dim int) (lo, hi []float64) {
	lo = append([]float64(nil), data[0]...)
	hi = append([]float64(nil), data[0]...)
	for _, p := range data[1:] {
		for d := 0; d < dim; d++ {
			lo[d] = math.Min(lo[d], p[d])
			hi[d] = math.Max(hi[d], p[d])
		}
	}
	return lo, hi
}

func sqDist(a, b []float64) float64 {
	var s float64
	for i := range a {
		d := a[i] - b[i]
		s += d * d
	}
	return s
}

func equal(a, b [][]float64) bool {
	for i := range a {
		for d := range a[i] {
			if a[i][d] != b[i][d] {
				return false
			}
		}
	}
	return true
}
