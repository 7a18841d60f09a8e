package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// JointProbability computes the probability of the exact joint assignment
// w: every person carrying their assigned copy count and exhibiting their
// assigned trait value, simultaneously.
//
// Each person contributes a gene factor (the founder prior, or the
// convolution of the two per-parent transmission probabilities) and a trait
// factor; the product over all persons is the joint probability. Per-parent
// transmission probabilities are computed once per world and reused across
// that parent's children.
func JointProbability(ped *Pedigree, m Model, w *World) (float64, error) {
	if len(w.Copies) != ped.Len() || len(w.HasTrait) != ped.Len() {
		return 0, pfx.Err(fmt.Errorf("%w: world covers %d persons, pedigree has %d", ErrDomain, len(w.Copies), ped.Len()))
	}

	// pass[i] caches PassProbability for person i's copy count in w.
	pass := make([]float64, ped.Len())
	passSet := make([]bool, ped.Len())
	passFor := func(i int) (float64, error) {
		if passSet[i] {
			return pass[i], nil
		}
		p, err := m.PassProbability(w.Copies[i])
		if err != nil {
			return 0, err
		}
		pass[i], passSet[i] = p, true
		return p, nil
	}

	joint := 1.0
	for i := 0; i < ped.Len(); i++ {
		person := ped.at(i)
		copies := w.Copies[i]
		if copies < 0 || copies > MaxCopies {
			return 0, pfx.Err(fmt.Errorf("%w: copy count %d for %q outside 0-%d", ErrDomain, copies, person.Name, MaxCopies))
		}

		var geneFactor float64
		if person.Founder() {
			geneFactor = m.Gene[copies]
		} else {
			if (person.Mother == "") != (person.Father == "") {
				return 0, pfx.Err(fmt.Errorf("%w: person %q has exactly one recorded parent", ErrInvalidPedigree, person.Name))
			}

			motherPass, err := passFor(ped.index[person.Mother])
			if err != nil {
				return 0, pfx.Err(err)
			}
			fatherPass, err := passFor(ped.index[person.Father])
			if err != nil {
				return 0, pfx.Err(err)
			}

			switch copies {
			case 0:
				geneFactor = (1 - motherPass) * (1 - fatherPass)
			case 1:
				geneFactor = motherPass*(1-fatherPass) + (1-motherPass)*fatherPass
			case 2:
				geneFactor = motherPass * fatherPass
			}
		}

		joint *= geneFactor * m.Trait[copies][traitIndex(w.HasTrait[i])]
	}

	return joint, nil
}
