package heredity

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// PassProbability returns the probability that a parent carrying the given
// number of variant allele copies transmits the variant to a child.
//
// With zero copies the only route is a mutation. With two copies the
// variant is always transmitted unless it mutates away. With one copy the
// result is exactly 0.5: the mutation into and out of the variant state
// cancel under the standard formulation, so the value is not derived from
// the mutation rate.
func (m Model) PassProbability(copies int) (float64, error) {
	switch copies {
	case 0:
		return m.Mutation, nil
	case 1:
		return 0.5, nil
	case 2:
		return 1 - m.Mutation, nil
	}

	return 0, pfx.Err(fmt.Errorf("%w: parent copy count %d outside 0-%d", ErrDomain, copies, MaxCopies))
}
