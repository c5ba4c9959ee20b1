package intset

import (
	"context"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/intset/internal/bitset"
)

// UnionAll returns a new set holding the elements of every input.
//
// Inputs are combined pairwise in parallel rounds. They are only read, but
// must not be modified until UnionAll returns. The context is checked
// before every merge.
func UnionAll(ctx context.Context, sets ...*IntSet) (*IntSet, error) {
	return fanIn(ctx, bitset.Or, sets)
}

// IntersectAll returns a new set holding the elements common to every
// input. With no inputs it returns an empty set.
func IntersectAll(ctx context.Context, sets ...*IntSet) (*IntSet, error) {
	return fanIn(ctx, bitset.And, sets)
}

// operand is a set in a reduction round. owned sets were produced by an
// earlier round and may be merged into directly.
type operand struct {
	set   *IntSet
	owned bool
}

func fanIn(ctx context.Context, op bitset.Op, sets []*IntSet) (*IntSet, error) {
	if len(sets) == 0 {
		return New(), nil
	}

	start := time.Now()
	opts := sets[0].opts
	if opts == nil {
		o := defaultOptions()
		opts = &o
	}
	result, err := reduce(ctx, op, sets)
	opts.metricsCollector.RecordFanIn(op.String(), len(sets), time.Since(start), err)
	opts.logger.LogFanIn(ctx, op.String(), len(sets), err)
	if err != nil {
		return nil, err
	}
	result.opts = opts
	return result, nil
}

func reduce(ctx context.Context, op bitset.Op, sets []*IntSet) (*IntSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	level := make([]operand, len(sets))
	for i, s := range sets {
		level[i] = operand{set: s}
	}

	for len(level) > 1 {
		next := make([]operand, (len(level)+1)/2)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i := 0; i+1 < len(level); i += 2 {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				dst, src := pickDestination(op, level[i], level[i+1])
				dst.merge(src, op)
				next[i/2] = operand{set: dst, owned: true}
				return nil
			})
		}
		if len(level)%2 == 1 {
			next[len(next)-1] = level[len(level)-1]
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		level = next
	}

	if level[0].owned {
		return level[0].set, nil
	}
	return level[0].set.Clone(), nil
}

// pickDestination chooses which operand of a commutative op to write into.
// An owned operand is reused; otherwise the one needing less reconciliation
// is cloned: the shorter for intersections, the longer for unions.
func pickDestination(op bitset.Op, a, b operand) (dst, src *IntSet) {
	switch {
	case a.owned:
		return a.set, b.set
	case b.owned:
		return b.set, a.set
	}

	aw, bw := a.set.bits.Words(), b.set.bits.Words()
	if (op == bitset.And && bw < aw) || (op != bitset.And && bw > aw) {
		a, b = b, a
	}
	return a.set.Clone(), b.set
}
