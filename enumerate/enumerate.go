package enumerate

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/b3jones/bracket"
)

// walker encapsulates the two-channel walk state.
type walker struct {
	eng      *bracket.Engine
	opts     Options
	ctx      context.Context
	frontier []bracket.Annotation
	records  []Record
}

// Enumerate returns a Record for every canonical word of length 0..n,
// ordered by length and then by production order.
// Returns ErrNegativeLength, ErrOptionViolation, ctx errors, or any
// OnRecord error.
func Enumerate(n int, opts ...Option) ([]Record, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	eng, err := bracket.NewEngine(bracket.WithSignMode(o.SignMode))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}

	w := &walker{
		eng:  eng,
		opts: o,
		ctx:  o.Ctx,
	}
	if err := w.seed(); err != nil {
		return nil, err
	}
	if err := w.loop(n); err != nil {
		return nil, err
	}
	return w.records, nil
}

// seed installs generation 0: the identity word.
func (w *walker) seed() error {
	id := w.eng.Identity()
	w.frontier = []bracket.Annotation{id}
	w.records = append(w.records, Record{Word: id.Word, Jones: id.Jones})
	if err := w.opts.OnRecord(w.records[0]); err != nil {
		return fmt.Errorf("enumerate: OnRecord error at %q: %w", id.Word, err)
	}
	w.opts.OnGeneration(0, 1)
	return nil
}

// loop advances the frontier until generation n.
func (w *walker) loop(n int) error {
	for gen := 1; gen <= n; gen++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		var (
			next []bracket.Annotation
			err  error
		)
		if w.opts.Workers > 1 {
			next, err = w.expandParallel()
		} else {
			next, err = w.expand()
		}
		if err != nil {
			return err
		}
		// the parents' annotations are not needed past this point
		w.frontier = next

		if err := w.collect(next); err != nil {
			return err
		}
		w.opts.OnGeneration(gen, len(next))
		w.opts.Logger.Debug("generation built",
			"gen", gen, "size", len(next), "records", len(w.records))
	}
	return nil
}

// expand annotates the children of every frontier word sequentially.
func (w *walker) expand() ([]bracket.Annotation, error) {
	next := make([]bracket.Annotation, 0, len(w.frontier)*3)
	for _, parent := range w.frontier {
		select {
		case <-w.ctx.Done():
			return nil, w.ctx.Err()
		default:
		}
		next = append(next, w.eng.Descendants(parent)...)
	}
	return next, nil
}

// expandParallel annotates the children of each parent in its own task and
// joins them in parent order after a single barrier.
func (w *walker) expandParallel() ([]bracket.Annotation, error) {
	slots := make([][]bracket.Annotation, len(w.frontier))
	g, ctx := errgroup.WithContext(w.ctx)
	g.SetLimit(w.opts.Workers)
	for i := range w.frontier {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			slots[i] = w.eng.Descendants(w.frontier[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, s := range slots {
		total += len(s)
	}
	next := make([]bracket.Annotation, 0, total)
	for _, s := range slots {
		next = append(next, s...)
	}
	return next, nil
}

// collect appends the reduced records of a generation, in order.
func (w *walker) collect(gen []bracket.Annotation) error {
	for _, a := range gen {
		rec := Record{Word: a.Word, Jones: a.Jones}
		w.records = append(w.records, rec)
		if err := w.opts.OnRecord(rec); err != nil {
			return fmt.Errorf("enumerate: OnRecord error at %q: %w", a.Word, err)
		}
	}
	return nil
}
