package plan

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"unsafe"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/fftwgo"
)

// Pair is one input/output buffer pair of a batch.
type Pair[T Complex] struct {
	In  []T
	Out []T
}

// ExecuteBatch executes p on every pair concurrently, running at most limit
// executions at a time (limit <= 0 means unlimited).
//
// Pairs must not share memory with each other; a pair may be in-place if the
// plan is. Overlapping pairs are rejected before anything runs. The first
// failing pair cancels the pairs that have not started yet.
func ExecuteBatch[T Complex](ctx context.Context, p *C2C[T], pairs []Pair[T], limit int) error {
	if err := checkDisjoint(pairs); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, pair := range pairs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := p.Execute(pair.In, pair.Out); err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			return nil
		})
	}
	return g.Wait()
}

type span struct {
	lo, hi uintptr
	pair   int
}

func spanOf[T Complex](s []T, pair int) (span, bool) {
	if len(s) == 0 {
		return span{}, false
	}
	var zero T
	lo := uintptr(unsafe.Pointer(&s[0]))
	return span{lo: lo, hi: lo + uintptr(len(s))*unsafe.Sizeof(zero), pair: pair}, true
}

func checkDisjoint[T Complex](pairs []Pair[T]) error {
	spans := make([]span, 0, 2*len(pairs))
	for i, pair := range pairs {
		in, ok := spanOf(pair.In, i)
		if ok {
			spans = append(spans, in)
		}
		if out, ok := spanOf(pair.Out, i); ok && (!sameArray(pair.In, pair.Out) || len(pair.In) != len(pair.Out)) {
			spans = append(spans, out)
		}
	}

	slices.SortFunc(spans, func(a, b span) int { return cmp.Compare(a.lo, b.lo) })
	for i := 1; i < len(spans); i++ {
		if spans[i].lo < spans[i-1].hi {
			return fmt.Errorf("%w: batch pairs %d and %d share memory",
				fftwgo.ErrInvalidPlan, spans[i-1].pair, spans[i].pair)
		}
	}
	return nil
}
