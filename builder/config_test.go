// Package builder contains unit tests for builderConfig and BuilderOption
// application order.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestIDSchemeOptions verifies that ID scheme options apply in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", newBuilderConfig().idFn(7))
	assert.Equal(t, "A", newBuilderConfig(WithSymbolIDs()).idFn(0))
	assert.Equal(t, "AB", newBuilderConfig(WithExcelColumnIDs()).idFn(27))
	assert.Equal(t, "3", newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).idFn(3))
	assert.Equal(t, "04", newBuilderConfig(WithPaddedIDs(2)).idFn(4))
}

// TestRandOptions verifies seed handling: no RNG by default, WithSeed is
// reproducible, and the last RNG option wins.
func TestRandOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	a := newBuilderConfig(WithSeed(42)).rng.Int63()
	b := newBuilderConfig(WithSeed(42)).rng.Int63()
	assert.Equal(t, a, b)

	custom := rand.New(rand.NewSource(1))
	cfg := newBuilderConfig(WithSeed(42), WithRand(custom))
	assert.Same(t, custom, cfg.rng)
}

// TestPartitionPrefixDefaults verifies that empty prefixes fall back to L/R.
func TestPartitionPrefixDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithPartitionPrefix("", "B"))
	assert.Equal(t, "L", cfg.leftPrefix)
	assert.Equal(t, "B", cfg.rightPrefix)
}
