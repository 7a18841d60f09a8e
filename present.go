package heredity

import (
	"fmt"
	"io"

	"github.com/carbocation/pfx"
)

// WriteResults renders the final distribution table to w, one block per
// person in pedigree order, with probabilities to four decimal places.
func WriteResults(w io.Writer, ped *Pedigree, res Results) error {
	for _, name := range ped.names {
		pr, ok := res[name]
		if !ok {
			return pfx.Err(fmt.Errorf("no result for person %q", name))
		}

		fmt.Fprintf(w, "%s:\n", name)
		fmt.Fprintf(w, "  Gene:\n")
		for g := MaxCopies; g >= 0; g-- {
			fmt.Fprintf(w, "    %d: %.4f\n", g, pr.Gene[g])
		}
		fmt.Fprintf(w, "  Trait:\n")
		fmt.Fprintf(w, "    true: %.4f\n", pr.Trait[1])
		fmt.Fprintf(w, "    false: %.4f\n", pr.Trait[0])
	}

	return nil
}
