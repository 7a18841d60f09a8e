package heredity

import (
	"sync"

	"github.com/carbocation/pfx"
)

// InferParallel is Infer with the candidate space sharded across worker
// goroutines. The space is partitioned by the first person's gene digit, so
// at most MaxCopies+1 shards exist; workers beyond that are not started.
// Each worker accumulates into a private tally and the shards are combined
// by a single additive merge before normalization, so no locking is needed
// and the result matches Infer up to floating-point summation order.
func InferParallel(ped *Pedigree, m Model, workers int) (Results, error) {
	if ped.Len() == 0 || workers <= 1 {
		return Infer(ped, m)
	}
	if err := m.Validate(); err != nil {
		return nil, pfx.Err(err)
	}
	if workers > MaxCopies+1 {
		workers = MaxCopies + 1
	}

	digits := make(chan int, MaxCopies+1)
	output := make(chan Results, MaxCopies+1)
	errs := make(chan error, MaxCopies+1)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for digit := range digits {
				tally := newResults(ped)
				wr := ped.newWorldReader(0, digit)
				for w := wr.Read(); w != nil; w = wr.Read() {
					p, err := JointProbability(ped, m, w)
					if err != nil {
						errs <- err
						return
					}
					tally.accumulate(ped, w, p)
				}
				output <- tally
			}
		}()
	}

	for digit := 0; digit <= MaxCopies; digit++ {
		digits <- digit
	}
	close(digits)

	wg.Wait()
	close(output)
	close(errs)

	if err := <-errs; err != nil {
		return nil, pfx.Err(err)
	}

	merged := newResults(ped)
	for tally := range output {
		merged.add(tally)
	}

	if err := merged.normalize(); err != nil {
		return nil, pfx.Err(err)
	}

	return merged, nil
}
