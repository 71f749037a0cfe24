package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aiworkshop/internal/render"
	"github.com/katalvlaran/aiworkshop/internal/rng"
	"github.com/katalvlaran/aiworkshop/kmeans"
	"github.com/katalvlaran/aiworkshop/knn"
)

var (
	imagePath  string
	outputPath string
	cyclist    knn.Cyclist
)

// quantizeCmd is exercise 09
var quantizeCmd = &cobra.Command{
	Use:   "quantize",
	Short: "09: reduce an image's colours with k-means",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		q := cfg.Quantize
		if cmd.Flags().Changed("image") {
			q.Image = imagePath
		}
		if cmd.Flags().Changed("output") {
			q.Output = outputPath
		}
		if q.Image == "" {
			return fmt.Errorf("no image given: use --image or quantize.image")
		}
		img, err := decodeImage(q.Image)
		if err != nil {
			return err
		}

		return runExercise("quantize", func(l *zap.Logger) (int, error) {
			data := kmeans.Pixels(img, q.DatasetHeight)
			opts := []kmeans.Option{
				kmeans.WithContext(cmd.Context()),
				kmeans.WithSeed(cfg.Seed),
				kmeans.WithMaxIter(q.MaxIter),
				kmeans.WithInitRange(0, 255),
			}
			if q.Workers > 0 {
				opts = append(opts, kmeans.WithWorkers(q.Workers))
			}

			out := cmd.OutOrStdout()
			variations := make([]float64, 0, q.MaxK-q.MinK+1)
			iterations := 0
			var last *kmeans.Result
			for k := q.MinK; k <= q.MaxK; k++ {
				res, err := kmeans.Fit(data, k, q.Tries, opts...)
				if err != nil {
					return iterations, err
				}
				for _, n := range res.Iterations {
					iterations += n
				}
				variations = append(variations, res.Variation)
				l.Debug("Clustered", zap.Int("k", k), zap.Float64("variation", res.Variation), zap.Int("best_try", res.Best))

				fmt.Fprintln(out, styles.Title.Render(fmt.Sprintf("k = %d", k)))
				fmt.Fprint(out, render.Swatches(kmeans.Palette(res.Centroids)))
				last = res
			}

			fmt.Fprint(out, render.Plot(render.Series{
				Title:  "Variation vs number of clusters",
				XLabel: "k",
				YLabel: "variation",
				X0:     q.MinK,
				Values: variations,
			}, len(variations), 10, styles))

			if q.Output != "" && last != nil {
				if err := writePNG(q.Output, kmeans.Quantize(img, last.Centroids)); err != nil {
					return iterations, err
				}
				fmt.Fprintf(out, "Quantized image (k=%d) written to %s\n", q.MaxK, q.Output)
			}
			return iterations, nil
		})
	},
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// bikeSizeCmd is exercise 10
var bikeSizeCmd = &cobra.Command{
	Use:   "bike-size",
	Short: "10: recommend a bicycle size with k-nearest neighbours",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bs := cfg.BikeSize
		c := knn.Cyclist{Height: bs.Height, LegLength: bs.LegLength, ArmLength: bs.ArmLength}
		if cmd.Flags().Changed("height") {
			c.Height = cyclist.Height
		}
		if cmd.Flags().Changed("leg") {
			c.LegLength = cyclist.LegLength
		}
		if cmd.Flags().Changed("arm") {
			c.ArmLength = cyclist.ArmLength
		}

		return runExercise("bike-size", func(l *zap.Logger) (int, error) {
			out := cmd.OutOrStdout()
			dataset, err := knn.Generate(bs.Samples, bs.Deviation, cfg.Seed)
			if err != nil {
				return 0, err
			}
			predicted, err := knn.PredictAll(dataset, c)
			if err != nil {
				return 0, err
			}

			sizes := make([]float64, len(predicted))
			counts := make([]int, knn.NumSizes)
			for i, s := range predicted {
				sizes[i] = float64(s)
				counts[s]++
			}
			fmt.Fprint(out, render.Plot(render.Series{
				Title:  "Predicted bicycle size per k (0=XS … 4=XL)",
				XLabel: "k",
				YLabel: "size",
				X0:     1,
				Values: sizes,
			}, 100, int(knn.NumSizes), styles))

			labels := make([]string, 0, knn.NumSizes)
			for _, s := range knn.Sizes() {
				labels = append(labels, s.String())
			}
			fmt.Fprint(out, render.BarChart("Predicted bicycle sizes", labels, counts, 40, styles))

			best, accuracy, err := knn.BestK(dataset)
			if err != nil {
				return len(dataset), err
			}
			fmt.Fprint(out, render.Plot(render.Series{
				Title:  fmt.Sprintf("Correct predictions per k (best k = %d)", best),
				XLabel: "k",
				YLabel: "correct %",
				X0:     1,
				Values: accuracy,
				Marks:  []int{best - 1},
			}, 100, 10, styles))
			recommended, err := knn.Predict(dataset, best, c)
			if err != nil {
				return len(dataset), err
			}
			fmt.Fprintf(out, "Recommended size for %.0f/%.0f/%.0f cm: %s (k = %d, %.0f%% correct)\n\n",
				c.Height, c.LegLength, c.ArmLength, recommended, best, accuracy[best-1])

			t := render.NewTable("Best k per deviation scale", "scale", "best k", "correct %", "size")
			for i, scale := range bs.Scales {
				ds, err := knn.Generate(bs.Samples, scale, rng.DeriveSeed(cfg.Seed, uint64(i)))
				if err != nil {
					return len(dataset), err
				}
				k, acc, err := knn.BestK(ds)
				if err != nil {
					return len(dataset), err
				}
				size, err := knn.Predict(ds, k, c)
				if err != nil {
					return len(dataset), err
				}
				t.AddRow(strconv.FormatFloat(scale, 'g', -1, 64), strconv.Itoa(k), fmt.Sprintf("%.0f", acc[k-1]), size.String())
			}
			fmt.Fprint(out, t.View(styles))
			l.Debug("Bike size recommended", zap.Stringer("size", recommended), zap.Int("k", best))
			return len(dataset), nil
		})
	},
}

func init() {
	quantizeCmd.Flags().StringVar(&imagePath, "image", "", "Image to quantize (PNG, JPEG or GIF)")
	quantizeCmd.Flags().StringVar(&outputPath, "output", "", "Write the image quantized with the largest k as PNG")

	bikeSizeCmd.Flags().Float64Var(&cyclist.Height, "height", 0, "Cyclist height in cm")
	bikeSizeCmd.Flags().Float64Var(&cyclist.LegLength, "leg", 0, "Leg length in cm")
	bikeSizeCmd.Flags().Float64Var(&cyclist.ArmLength, "arm", 0, "Arm length in cm")

	rootCmd.AddCommand(quantizeCmd)
	rootCmd.AddCommand(bikeSizeCmd)
}
