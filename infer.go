package heredity

import (
	"github.com/carbocation/pfx"
)

// Infer computes, for every person in the pedigree, the posterior
// distribution over gene copy counts and over trait status, conditioned on
// the pedigree's trait evidence.
//
// Every candidate world consistent with the evidence is scored with
// JointProbability and its score is added into every person's running
// distributions; the marginals are then normalized person by person. The
// candidate space is the full Cartesian product, so running time is
// exponential in the number of persons. That is acceptable at the intended
// scale of tens of individuals.
func Infer(ped *Pedigree, m Model) (Results, error) {
	if err := m.Validate(); err != nil {
		return nil, pfx.Err(err)
	}

	res := newResults(ped)
	wr := ped.NewWorldReader()
	for w := wr.Read(); w != nil; w = wr.Read() {
		p, err := JointProbability(ped, m, w)
		if err != nil {
			return nil, pfx.Err(err)
		}
		res.accumulate(ped, w, p)
	}

	if err := res.normalize(); err != nil {
		return nil, pfx.Err(err)
	}

	return res, nil
}
