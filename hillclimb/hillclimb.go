package hillclimb

import "fmt"

// Finetune returns the frequency of the local clarity maximum reached from
// initial. It is Climb without limits or path recording.
func Finetune(initial int, clarity func(int) float64) int {
	best := initial
	bestClarity := clarity(best)
	for {
		left, right := clarity(best-1), clarity(best+1)
		if bestClarity >= left && bestClarity >= right {
			return best
		}
		if left > right {
			best--
			bestClarity = left
		} else {
			best++
			bestClarity = right
		}
	}
}

// Climb runs the same ascent as Finetune, recording the path and honouring
// MaxSteps.
func Climb(initial int, clarity func(int) float64, opts ...Option) (*Result, error) {
	if clarity == nil {
		return nil, ErrNilClarity
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{Frequency: initial, Clarity: clarity(initial), Path: []int{initial}}
	for steps := 0; ; steps++ {
		left, right := clarity(res.Frequency-1), clarity(res.Frequency+1)
		if res.Clarity >= left && res.Clarity >= right {
			return res, nil
		}
		if o.MaxSteps > 0 && steps >= o.MaxSteps {
			return res, fmt.Errorf("%w: stopped at %d after %d steps", ErrMaxSteps, res.Frequency, steps)
		}
		if left > right {
			res.Frequency--
			res.Clarity = left
		} else {
			res.Frequency++
			res.Clarity = right
		}
		res.Path = append(res.Path, res.Frequency)
		o.OnStep(res.Frequency, res.Clarity)
	}
}

// Sweep finetunes every step-th frequency across the spectrum and returns
// pairs of (initial, finetuned). step < 1 is treated as 1.
func Sweep(s Spectrum, step int) [][2]int {
	if step < 1 {
		step = 1
	}
	left, right := s.Edges()
	out := make([][2]int, 0, (right-left)/step+1)
	for f := left; f <= right; f += step {
		out = append(out, [2]int{f, Finetune(f, s.Clarity)})
	}
	return out
}
