package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecorderCreation(t *testing.T) {
	Convey("Given recorder creation", t, func() {
		Convey("When creating with default options", func() {
			r := NewRecorder()

			Convey("Then it should own a private registry", func() {
				So(r.registry, ShouldNotBeNil)
				So(r.namespace, ShouldEqual, "workshop")
			})
		})

		Convey("When creating with custom options", func() {
			registry := prometheus.NewRegistry()
			r := NewRecorder(
				WithNamespace("lab"),
				WithHistogramBuckets([]float64{0.1, 1}),
				WithRegistry(registry),
			)

			Convey("Then the options should be applied", func() {
				So(r.registry, ShouldEqual, registry)
				So(r.namespace, ShouldEqual, "lab")
				So(r.buckets, ShouldResemble, []float64{0.1, 1})
			})
		})

		Convey("When options carry empty values", func() {
			r := NewRecorder(WithNamespace(""), WithHistogramBuckets(nil), WithRegistry(nil))

			Convey("Then the defaults should be kept", func() {
				So(r.namespace, ShouldEqual, "workshop")
				So(r.buckets, ShouldNotBeEmpty)
				So(r.registry, ShouldNotBeNil)
			})
		})
	})
}

func TestRecorderObserveRun(t *testing.T) {
	Convey("Given a recorder", t, func() {
		r := NewRecorder()

		Convey("When runs are observed", func() {
			r.ObserveRun("closest-tree", 12, 5*time.Millisecond, nil)
			r.ObserveRun("closest-tree", 3, time.Millisecond, nil)
			r.ObserveRun("castle-path", 0, time.Millisecond, errors.New("no path"))

			Convey("Then counters should be split by exercise", func() {
				So(testutil.ToFloat64(r.runs.WithLabelValues("closest-tree")), ShouldEqual, 2)
				So(testutil.ToFloat64(r.runs.WithLabelValues("castle-path")), ShouldEqual, 1)
				So(testutil.ToFloat64(r.expanded.WithLabelValues("closest-tree")), ShouldEqual, 15)
				So(testutil.ToFloat64(r.failures.WithLabelValues("castle-path")), ShouldEqual, 1)
			})

			Convey("Then one histogram series per exercise should exist", func() {
				So(testutil.CollectAndCount(r.duration), ShouldEqual, 2)
			})
		})

		Convey("When a run is timed", func() {
			err := r.Time("bike-size", func() (int, error) { return 100, nil })

			Convey("Then it should be recorded", func() {
				So(err, ShouldBeNil)
				So(testutil.ToFloat64(r.runs.WithLabelValues("bike-size")), ShouldEqual, 1)
				So(testutil.ToFloat64(r.expanded.WithLabelValues("bike-size")), ShouldEqual, 100)
			})
		})

		Convey("When a timed run fails", func() {
			boom := errors.New("boom")
			err := r.Time("quantize", func() (int, error) { return 0, boom })

			Convey("Then the error should pass through and count as a failure", func() {
				So(errors.Is(err, boom), ShouldBeTrue)
				So(testutil.ToFloat64(r.failures.WithLabelValues("quantize")), ShouldEqual, 1)
			})
		})
	})
}

func TestRecorderWriteTextfile(t *testing.T) {
	Convey("Given a recorder with one run", t, func() {
		r := NewRecorder()
		r.ObserveRun("trajectory", 42, time.Millisecond, nil)

		Convey("When writing a textfile", func() {
			path := filepath.Join(t.TempDir(), "workshop.prom")
			err := r.WriteTextfile(path)

			Convey("Then the file should hold the metrics", func() {
				So(err, ShouldBeNil)
				data, readErr := os.ReadFile(path)
				So(readErr, ShouldBeNil)
				So(string(data), ShouldContainSubstring, `workshop_runs_total{exercise="trajectory"} 1`)
				So(string(data), ShouldContainSubstring, `workshop_expanded_nodes_total{exercise="trajectory"} 42`)
			})
		})

		Convey("When the directory does not exist", func() {
			err := r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "workshop.prom"))

			Convey("Then it should return a write error", func() {
				So(errors.Is(err, ErrWriteFailed), ShouldBeTrue)
			})
		})

		Convey("When gathering directly", func() {
			families, err := r.Gatherer().Gather()

			Convey("Then only workshop metrics should be present", func() {
				So(err, ShouldBeNil)
				for _, mf := range families {
					So(strings.HasPrefix(mf.GetName(), "workshop_"), ShouldBeTrue)
				}
			})
		})
	})
}
