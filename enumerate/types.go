package enumerate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/b3jones/braid"
	"github.com/katalvlaran/b3jones/bracket"
	"github.com/katalvlaran/b3jones/poly"
)

// Sentinel errors for Enumerate.
var (
	// ErrNegativeLength is returned when the length bound is below zero.
	ErrNegativeLength = errors.New("enumerate: negative length bound")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("enumerate: invalid option supplied")
)

// Record is the reduced result kept for every visited word.
type Record struct {
	Word  braid.Word
	Jones poly.Poly
}

// Option configures Enumerate via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters and callbacks for Enumerate.
type Options struct {
	// Ctx is checked once per generation and once per parent.
	Ctx context.Context

	// Workers is the number of goroutines expanding one generation.
	// 1 runs sequentially.
	Workers int

	// SignMode is passed to the bracket engine.
	SignMode bracket.SignMode

	// OnGeneration is called after generation gen has been built.
	OnGeneration func(gen, size int)

	// OnRecord is called for every record in output order. A returned
	// error aborts the walk.
	OnRecord func(Record) error

	// Logger receives one debug line per generation.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns sequential settings with no-op hooks, ParitySign
// and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		Workers:      1,
		SignMode:     bracket.ParitySign,
		OnGeneration: func(int, int) {},
		OnRecord:     func(Record) error { return nil },
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the per-generation parallelism.
//
//	k >= 1: use k goroutines (1 = sequential)
//	k < 1:  invalid option → ErrOptionViolation
func WithWorkers(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, k)
			return
		}
		o.Workers = k
	}
}

// WithSignMode selects the writhe-correction sign.
func WithSignMode(m bracket.SignMode) Option {
	return func(o *Options) {
		o.SignMode = m
	}
}

// WithOnGeneration registers a callback run after each generation.
func WithOnGeneration(fn func(gen, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGeneration = fn
		}
	}
}

// WithOnRecord registers a callback run for every record.
func WithOnRecord(fn func(Record) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRecord = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
