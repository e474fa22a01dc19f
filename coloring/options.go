// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options and the per-run seed policy.

package coloring

import (
	"context"
	"fmt"
	"math/rand"
)

// Option configures a colouring run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// entry point is invoked.
type Option func(*Options)

// Options holds the parameters and hooks of one run.
type Options struct {
	// Ctx allows cooperative cancellation; checked between vertices.
	Ctx context.Context

	// Interchange enables the depth-1 interchange optimizer.
	Interchange bool

	// Rand drives RandomSequential. Never shared across runs by the engine.
	Rand *rand.Rand

	// OnPrepared is called once the visitation order is known (for DSATUR,
	// once the saturation table is initialised) and before any colouring.
	OnPrepared func()

	// OnStep is called after each vertex is coloured.
	OnStep func(Step)

	err error
}

// DefaultOptions returns background context, interchange off, no RNG and
// no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnPrepared: func() {},
		OnStep:     func(Step) {},
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

// WithInterchange toggles the interchange optimizer.
func WithInterchange(enabled bool) Option {
	return func(o *Options) { o.Interchange = enabled }
}

// WithRand supplies the random source for RandomSequential.
// A nil source is recorded as ErrOptionViolation.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r == nil {
			o.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)
			return
		}
		o.Rand = r
	}
}

// WithSeed creates a fresh deterministic source from seed.
// Seed 0 is replaced by defaultSeed so that the zero value stays reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Rand = rngFromSeed(seed) }
}

// WithOnPrepared registers a hook fired after ordering and before colouring.
func WithOnPrepared(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrepared = fn
		}
	}
}

// WithOnStep registers a hook fired after each vertex is coloured.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

func resolveOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// defaultSeed replaces seed==0 in WithSeed.
const defaultSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into an independent
// 64-bit seed (SplitMix64 finalizer). Use it to give parallel runs their own
// reproducible streams.
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
