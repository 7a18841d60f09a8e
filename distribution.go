package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// GeneDistribution holds probability mass per copy count, indexed by the
// number of copies.
type GeneDistribution [MaxCopies + 1]float64

// TraitDistribution holds probability mass per trait status. Index 0 is
// trait absent, index 1 is trait present.
type TraitDistribution [2]float64

func (d *GeneDistribution) Sum() float64 {
	return d[0] + d[1] + d[2]
}

func (d *TraitDistribution) Sum() float64 {
	return d[0] + d[1]
}

// Normalize rescales the distribution so its entries sum to 1, preserving
// relative ratios. An all-zero distribution cannot be normalized.
func (d *GeneDistribution) Normalize() error {
	sum := d.Sum()
	if sum == 0 {
		return pfx.Err(ErrDegenerateDistribution)
	}
	for i := range d {
		d[i] /= sum
	}
	return nil
}

// Normalize rescales the distribution so its entries sum to 1, preserving
// relative ratios. An all-zero distribution cannot be normalized.
func (d *TraitDistribution) Normalize() error {
	sum := d.Sum()
	if sum == 0 {
		return pfx.Err(ErrDegenerateDistribution)
	}
	for i := range d {
		d[i] /= sum
	}
	return nil
}

// PersonResult is the accumulated (and, after inference completes,
// normalized) distribution pair for one person.
type PersonResult struct {
	Gene  GeneDistribution
	Trait TraitDistribution
}

// Results maps each person's name to their distribution pair.
type Results map[string]*PersonResult

func newResults(ped *Pedigree) Results {
	r := make(Results, ped.Len())
	for _, name := range ped.names {
		r[name] = &PersonResult{}
	}
	return r
}

// accumulate adds the joint probability p of world w into every person's
// running distributions.
func (r Results) accumulate(ped *Pedigree, w *World, p float64) {
	for i, name := range ped.names {
		pr := r[name]
		pr.Gene[w.Copies[i]] += p
		pr.Trait[traitIndex(w.HasTrait[i])] += p
	}
}

// add merges another tally into r entry by entry. Both tallies must cover
// the same persons.
func (r Results) add(other Results) {
	for name, o := range other {
		pr := r[name]
		for g := range pr.Gene {
			pr.Gene[g] += o.Gene[g]
		}
		for t := range pr.Trait {
			pr.Trait[t] += o.Trait[t]
		}
	}
}

// normalize finalizes each person's distributions independently.
func (r Results) normalize() error {
	for name, pr := range r {
		if err := pr.Gene.Normalize(); err != nil {
			return pfx.Err(fmt.Errorf("gene distribution for %q: %w", name, err))
		}
		if err := pr.Trait.Normalize(); err != nil {
			return pfx.Err(fmt.Errorf("trait distribution for %q: %w", name, err))
		}
	}
	return nil
}
