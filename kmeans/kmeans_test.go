package kmeans_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/aiworkshop/kmeans"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// blobs returns two tight squares far apart.
func blobs() [][]float64 {
	return [][]float64{
		{0, 0}, {0, 1}, {1, 0}, {1, 1},
		{10, 10}, {10, 11}, {11, 10}, {11, 11},
	}
}

func TestFit_Validation(t *testing.T) {
	cases := []struct {
		name  string
		data  [][]float64
		k     int
		tries int
		opts  []kmeans.Option
		want  error
	}{
		{"Empty", nil, 2, 1, nil, kmeans.ErrEmptyDataset},
		{"ZeroK", blobs(), 0, 1, nil, kmeans.ErrBadK},
		{"ZeroTries", blobs(), 2, 0, nil, kmeans.ErrBadTries},
		{"ZeroDim", [][]float64{{}}, 1, 1, nil, kmeans.ErrDimensionMismatch},
		{"Ragged", [][]float64{{1, 2}, {3}}, 1, 1, nil, kmeans.ErrDimensionMismatch},
		{"BadMaxIter", blobs(), 2, 1, []kmeans.Option{kmeans.WithMaxIter(0)}, kmeans.ErrOptionViolation},
		{"BadWorkers", blobs(), 2, 1, []kmeans.Option{kmeans.WithWorkers(0)}, kmeans.ErrOptionViolation},
		{"BadRange", blobs(), 2, 1, []kmeans.Option{kmeans.WithInitRange(5, 1)}, kmeans.ErrOptionViolation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kmeans.Fit(tc.data, tc.k, tc.tries, tc.opts...)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestFit_SeparatesBlobs(t *testing.T) {
	res, err := kmeans.Fit(blobs(), 2, 20, kmeans.WithSeed(7))
	require.NoError(t, err)
	require.InDelta(t, 4.0, res.Variation, 1e-9)

	c := res.Centroids
	sort.Slice(c, func(i, j int) bool { return c[i][0] < c[j][0] })
	require.InDeltaSlice(t, []float64{0.5, 0.5}, c[0], 1e-9)
	require.InDeltaSlice(t, []float64{10.5, 10.5}, c[1], 1e-9)
}

func TestFit_SingleCluster(t *testing.T) {
	data := [][]float64{{1, 2}, {3, 4}, {5, 0}}
	res, err := kmeans.Fit(data, 1, 3)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{3, 2}, res.Centroids[0], 1e-12)
	// (4+0)+(0+4)+(4+4)
	require.InDelta(t, 16.0, res.Variation, 1e-12)
	require.Equal(t, []int{2, 2, 2}, res.Iterations)
	require.Zero(t, res.Best)
}

// All centroids start on the same spot, so cluster 0 wins every tie and
// cluster 1 never gets a point; it must stay where it started.
func TestFit_EmptyClusterKeepsCentroid(t *testing.T) {
	data := [][]float64{{0, 0}, {2, 2}}
	res, err := kmeans.Fit(data, 2, 1, kmeans.WithInitRange(100, 100))
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 1}, {100, 100}}, res.Centroids)
	require.Equal(t, []int{2}, res.Iterations)
}

func TestFit_DeterministicAcrossWorkers(t *testing.T) {
	serial, err := kmeans.Fit(blobs(), 3, 8, kmeans.WithSeed(42), kmeans.WithWorkers(1))
	require.NoError(t, err)
	parallel, err := kmeans.Fit(blobs(), 3, 8, kmeans.WithSeed(42), kmeans.WithWorkers(8))
	require.NoError(t, err)
	require.Equal(t, serial, parallel)

	other, err := kmeans.Fit(blobs(), 3, 8, kmeans.WithSeed(43))
	require.NoError(t, err)
	require.NotEqual(t, serial.Variations, other.Variations)
}

func TestFit_BestIsLowestVariation(t *testing.T) {
	res, err := kmeans.Fit(blobs(), 2, 10, kmeans.WithSeed(3))
	require.NoError(t, err)
	require.Len(t, res.Variations, 10)
	require.Len(t, res.Iterations, 10)
	for i, v := range res.Variations {
		require.GreaterOrEqual(t, v, res.Variation)
		if i < res.Best {
			require.Greater(t, v, res.Variation, "earlier try %d ties the winner", i)
		}
	}
	require.Equal(t, res.Variations[res.Best], res.Variation)
}

func TestFit_MaxIter(t *testing.T) {
	res, err := kmeans.Fit(blobs(), 2, 4, kmeans.WithMaxIter(1))
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 1, 1}, res.Iterations)
}

func TestFit_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := kmeans.Fit(blobs(), 2, 4, kmeans.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestElbow(t *testing.T) {
	vs, err := kmeans.Elbow(blobs(), 1, 4, 10)
	require.NoError(t, err)
	require.Len(t, vs, 4)
	// one cluster over both blobs: every point is ~7.07 units off in each axis
	require.InDelta(t, 8*(5*5+5*5+0.5), vs[0], 1e-9)
	require.Less(t, vs[1], vs[0])

	_, err = kmeans.Elbow(blobs(), 3, 2, 1)
	require.ErrorIs(t, err, kmeans.ErrBadK)
	_, err = kmeans.Elbow(blobs(), 0, 2, 1)
	require.ErrorIs(t, err, kmeans.ErrBadK)
}

func TestNearest(t *testing.T) {
	c := [][]float64{{0, 0}, {4, 0}, {4, 0}}
	require.Equal(t, 0, kmeans.Nearest([]float64{1, 0}, c))
	require.Equal(t, 1, kmeans.Nearest([]float64{3, 0}, c), "tie goes to lowest index")
	require.Equal(t, 0, kmeans.Nearest([]float64{2, 0}, c), "equidistant from 0 and 1")
}
