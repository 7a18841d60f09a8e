// Package heredity computes exact posterior probability distributions over
// gene copy counts and trait status for every member of a family pedigree.
// It enumerates all candidate assignments of hidden variables that are
// consistent with the observed trait evidence, scores each with a joint
// probability, and marginalizes the scores into per-person distributions.
package heredity

import (
	"fmt"
	"math"

	"github.com/carbocation/pfx"
)

// MaxCopies is the largest number of variant allele copies an individual
// can carry. The copy count domain is 0..MaxCopies inclusive.
const MaxCopies = 2

// Model holds the probability tables the inference is computed against.
// Models are passed explicitly rather than read from package state so that
// tests can substitute alternate tables.
type Model struct {
	// Gene[g] is the unconditional probability that a founder carries g
	// copies of the variant allele.
	Gene [MaxCopies + 1]float64

	// Trait[g][traitIndex(t)] is the probability of trait status t given g
	// copies. Index 0 is trait absent, index 1 is trait present.
	Trait [MaxCopies + 1][2]float64

	// Mutation is the probability an allele flips state when transmitted
	// from parent to child. Symmetric in both directions.
	Mutation float64
}

// DefaultModel carries the canonical published constants for the
// gene/trait template.
var DefaultModel = Model{
	Gene: [3]float64{0.96, 0.03, 0.01},
	Trait: [3][2]float64{
		{0.99, 0.01},
		{0.44, 0.56},
		{0.35, 0.65},
	},
	Mutation: 0.01,
}

const modelTolerance = 1e-9

// Validate confirms that the gene prior and every conditional trait row sum
// to 1, that no entry is negative, and that the mutation rate is a small
// positive probability.
func (m Model) Validate() error {
	sum := 0.0
	for g, p := range m.Gene {
		if p < 0 {
			return pfx.Err(fmt.Errorf("%w: gene prior for %d copies is negative", ErrDomain, g))
		}
		sum += p
	}
	if math.Abs(sum-1) > modelTolerance {
		return pfx.Err(fmt.Errorf("%w: gene prior sums to %g, expected 1", ErrDomain, sum))
	}

	for g := 0; g <= MaxCopies; g++ {
		row := m.Trait[g][0] + m.Trait[g][1]
		if m.Trait[g][0] < 0 || m.Trait[g][1] < 0 {
			return pfx.Err(fmt.Errorf("%w: trait table row for %d copies has a negative entry", ErrDomain, g))
		}
		if math.Abs(row-1) > modelTolerance {
			return pfx.Err(fmt.Errorf("%w: trait table row for %d copies sums to %g, expected 1", ErrDomain, g, row))
		}
	}

	if m.Mutation <= 0 || m.Mutation >= 0.5 {
		return pfx.Err(fmt.Errorf("%w: mutation rate %g outside (0, 0.5)", ErrDomain, m.Mutation))
	}

	return nil
}

// traitIndex converts a trait boolean into its index in the Trait table and
// in TraitDistribution.
func traitIndex(hasTrait bool) int {
	if hasTrait {
		return 1
	}
	return 0
}
