package bracket

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/b3jones/braid"
	"github.com/katalvlaran/b3jones/poly"
)

// ErrOptionViolation is returned by NewEngine when an invalid Option is supplied.
var ErrOptionViolation = errors.New("bracket: invalid option supplied")

// SignMode selects how the writhe-correction sign is computed.
type SignMode int

const (
	// ParitySign uses (−1)^writhe.
	ParitySign SignMode = iota

	// RemainderSign uses 1 − 2·(writhe % 2) with truncated remainder.
	RemainderSign
)

// String returns "parity" or "remainder".
func (m SignMode) String() string {
	switch m {
	case ParitySign:
		return "parity"
	case RemainderSign:
		return "remainder"
	default:
		return fmt.Sprintf("SignMode(%d)", int(m))
	}
}

// ParseSignMode parses the String form of a SignMode.
func ParseSignMode(s string) (SignMode, error) {
	switch s {
	case "parity", "":
		return ParitySign, nil
	case "remainder":
		return RemainderSign, nil
	default:
		return 0, fmt.Errorf("%w: unknown sign mode %q", ErrOptionViolation, s)
	}
}

// Annotation is the state carried per braid word.
type Annotation struct {
	Word braid.Word

	// Brackets of the five closures; A is the ordinary braid closure.
	A, B, C, D, E poly.Poly

	Writhe int64

	// Jones is derived from A and Writhe.
	Jones poly.Poly
}

// Option configures an Engine.
type Option func(*Options)

// Options holds the engine settings.
type Options struct {
	SignMode SignMode

	err error
}

// DefaultOptions returns ParitySign.
func DefaultOptions() Options {
	return Options{SignMode: ParitySign}
}

// WithSignMode selects the writhe-correction sign.
func WithSignMode(m SignMode) Option {
	return func(o *Options) {
		switch m {
		case ParitySign, RemainderSign:
			o.SignMode = m
		default:
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, m)
		}
	}
}

// Engine applies the bracket recurrence under fixed options.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	opts   Options
	unknot poly.Poly
}

// NewEngine resolves opts into an Engine.
func NewEngine(opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Engine{opts: o, unknot: Unknot()}, nil
}

// SignMode reports the engine's sign mode.
func (e *Engine) SignMode() SignMode {
	return e.opts.SignMode
}
