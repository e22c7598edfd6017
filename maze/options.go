// SPDX-License-Identifier: MIT

package maze

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultExtraPathProbability is the chance that a finished carve frame
// opens one extra single-step passage.
const DefaultExtraPathProbability = 0.3

// GenerateOption customizes Generate by mutating a generatorConfig.
// Option constructors validate their input and panic on meaningless values;
// Generate itself never panics.
type GenerateOption func(*generatorConfig)

// generatorConfig is the resolved configuration of one Generate call.
type generatorConfig struct {
	rng       *rand.Rand
	extraProb float64
}

func defaultGeneratorConfig() generatorConfig {
	return generatorConfig{extraProb: DefaultExtraPathProbability}
}

// WithRand provides an explicit RNG; callers decide the seed policy.
// Panics on nil.
func WithRand(r *rand.Rand) GenerateOption {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *generatorConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed. Use this in tests
// and examples to lock outcomes.
func WithSeed(seed int64) GenerateOption {
	return func(c *generatorConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithExtraPathProbability overrides the extra-opening probability.
// Panics outside [0,1]. A probability of 0 yields a perfect maze (a tree).
func WithExtraPathProbability(p float64) GenerateOption {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("maze: WithExtraPathProbability(%v) outside [0,1]", p))
	}
	return func(c *generatorConfig) {
		c.extraProb = p
	}
}

// resolveRand returns the configured RNG or a fresh time-seeded one.
func (c *generatorConfig) resolveRand() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
