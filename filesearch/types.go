package filesearch

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for file search.
var (
	ErrNotFound        = errors.New("filesearch: not found")
	ErrEmptySubpath    = errors.New("filesearch: subpath must have at least one element")
	ErrBadName         = errors.New("filesearch: names must be non-empty and must not contain '/'")
	ErrOptionViolation = errors.New("filesearch: invalid option supplied")
)

// Option configures a search.
type Option func(*Options)

// Options holds search hooks and limits.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is called for each directory before its entries
	// are examined. Returning an error aborts the search with that error.
	OnVisit func(dir string, depth int) error

	// MaxDepth, if non-negative, stops descending below that depth.
	// Default is -1 (no limit).
	MaxDepth int

	err error
}

// DefaultOptions returns Options with a background context, no hook and no
// depth limit.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order directory hook.
func WithOnVisit(fn func(dir string, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithMaxDepth limits the search depth. 0 searches only root; -1 removes
// the limit; other negative values are rejected.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		if limit < -1 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be %d", ErrOptionViolation, limit)
			return
		}
		o.MaxDepth = limit
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
