package avl

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"math/rand"

	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

var (
	ErrBadOptions      = errors.New("invalid check options")
	ErrNotOrdered      = errors.New("tree is not a binary search tree")
	ErrNotBalanced     = errors.New("tree is not balanced")
	ErrContentMismatch = errors.New("tree does not hold exactly the inserted keys")
	ErrTooTall         = errors.New("tree is taller than an AVL tree can be")
)

// BuildRandom builds a tree with num values.
// Values are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	values := make([]int, num)
	for i := 0; i < num; i++ {
		values[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		values[i], values[j] = values[j], values[i]
	})

	return FromSlice(values)
}

// IdealHeight returns the height of a complete tree holding num values,
// which no binary tree can beat.
func IdealHeight(num int) int {
	if num <= 0 {
		return 0
	}
	// ceil(log2(num+1))
	return bits.Len(uint(num))
}

// MaxHeight returns the largest height an AVL tree holding num values
// can have.
func MaxHeight(num int) int {
	// the fewest values an AVL tree of height h can hold is
	// least(h) = least(h-1) + least(h-2) + 1, with least(0) = 0
	h, prev, least := 0, 0, 0
	for {
		next := least + prev + 1
		if next > num {
			return h
		}
		h, prev, least = h+1, least, next
	}
}

// CheckOptions configures CheckShuffles.
type CheckOptions struct {
	// Num is the number of values in each tree.
	Num int
	// Rounds is the number of trees to build.
	Rounds int
	// Seed seeds the generator that picks each round's seed.
	Seed int64
	// Workers limits how many rounds run at once. 0 means no limit.
	Workers int
	// Progress, if not nil, is called after each round passes.
	// It is called from multiple goroutines at once.
	Progress func(round, height int)
}

// CheckReport summarises a successful CheckShuffles run.
type CheckReport struct {
	Rounds      int
	MinHeight   int
	MaxHeight   int
	IdealHeight int
}

// CheckShuffles builds opts.Rounds trees, each from a different random
// insert order of [0, opts.Num), and checks that every one of them
// validates, holds exactly the inserted values and is no taller than
// MaxHeight allows.
//
// Every round owns its own tree, so rounds run in parallel.
// The first failing round cancels the rest, and its error is returned,
// wrapping one of the Err* values in this package.
//
// Context cancellation: If the context is canceled, CheckShuffles stops
// starting new rounds, waits for running rounds to finish, then returns
// the context error.
func CheckShuffles(ctx context.Context, opts CheckOptions) (CheckReport, error) {
	if opts.Num < 0 || opts.Rounds < 0 {
		return CheckReport{}, fmt.Errorf("%w: num=%d rounds=%d",
			ErrBadOptions, opts.Num, opts.Rounds)
	}

	// seeds are drawn up front so that results do not depend
	// on the order in which the rounds get scheduled
	seedrd := rand.New(rand.NewSource(opts.Seed))
	seeds := make([]int64, opts.Rounds)
	for i := range seeds {
		seeds[i] = int64(seedrd.Uint64())
	}

	want := make([]int, opts.Num)
	for i := range want {
		want[i] = i
	}

	// each round only writes its own slot
	heights := make([]int, opts.Rounds)

	eg, egCtx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		eg.SetLimit(opts.Workers)
	}

	for i, seed := range seeds {
		if egCtx.Err() != nil {
			break
		}

		i, seed := i, seed
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			tr := BuildRandom(opts.Num, seed)
			h, err := checkRound(&tr, want)
			if err != nil {
				return fmt.Errorf("round %d (seed %d): %w", i, seed, err)
			}

			heights[i] = h
			if opts.Progress != nil {
				opts.Progress(i, h)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return CheckReport{}, err
	}

	// all started rounds passed, but some may never have started
	if err := ctx.Err(); err != nil {
		return CheckReport{}, err
	}

	report := CheckReport{
		Rounds:      opts.Rounds,
		IdealHeight: IdealHeight(opts.Num),
	}
	for i, h := range heights {
		if i == 0 || h < report.MinHeight {
			report.MinHeight = h
		}
		if h > report.MaxHeight {
			report.MaxHeight = h
		}
	}

	return report, nil
}

func checkRound(tr *Tree[int], want []int) (height int, err error) {
	if !tr.IsBST() {
		return 0, ErrNotOrdered
	}

	if !tr.IsBalanced() {
		return 0, ErrNotBalanced
	}

	if got := tr.Slice(); !slices.Equal(got, want) {
		return 0, fmt.Errorf("%w: got %d values, want %d",
			ErrContentMismatch, len(got), len(want))
	}

	height = tr.Height()
	if limit := MaxHeight(len(want)); height > limit {
		return 0, fmt.Errorf("%w: height %d, limit %d", ErrTooTall, height, limit)
	}

	return height, nil
}
