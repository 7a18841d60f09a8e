package heredity

// World is one fully specified candidate assignment: a gene copy count and
// a trait value for every person, indexed by the pedigree's fixed name
// order. Worlds returned by a WorldReader are only valid until the next
// Read call.
type World struct {
	Copies   []int
	HasTrait []bool
}

// WorldReader enumerates every candidate world consistent with the
// pedigree's trait evidence: gene copy counts range over 0..MaxCopies for
// every person, trait values are fixed for persons with observed evidence
// and range over both values otherwise.
type WorldReader struct {
	ped        *Pedigree
	world      World
	unknown    []int // positions whose trait evidence is unknown
	pinned     int   // position whose gene digit is held fixed, or -1
	WorldsSeen int
	started    bool
	done       bool
}

// NewWorldReader returns a reader over the full candidate space.
func (ped *Pedigree) NewWorldReader() *WorldReader {
	return ped.newWorldReader(-1, 0)
}

// newWorldReader optionally pins one position's gene digit, which partitions
// the candidate space into disjoint shards for parallel inference.
func (ped *Pedigree) newWorldReader(pinned, digit int) *WorldReader {
	wr := &WorldReader{
		ped: ped,
		world: World{
			Copies:   make([]int, ped.Len()),
			HasTrait: make([]bool, ped.Len()),
		},
		pinned: pinned,
	}

	for i := 0; i < ped.Len(); i++ {
		switch ped.at(i).Trait {
		case TraitPresent:
			wr.world.HasTrait[i] = true
		case TraitAbsent:
			// already false
		default:
			wr.unknown = append(wr.unknown, i)
		}
	}

	if pinned >= 0 {
		wr.world.Copies[pinned] = digit
	}

	return wr
}

// Read returns the next candidate world, or nil once the space is
// exhausted. The returned World aliases the reader's state; callers must
// finish with it before calling Read again.
func (wr *WorldReader) Read() *World {
	if wr.done {
		return nil
	}

	if !wr.started {
		wr.started = true
		wr.WorldsSeen++
		return &wr.world
	}

	// Advance the gene digits as a base-(MaxCopies+1) odometer, skipping
	// any pinned position.
	for i := range wr.world.Copies {
		if i == wr.pinned {
			continue
		}
		wr.world.Copies[i]++
		if wr.world.Copies[i] <= MaxCopies {
			wr.WorldsSeen++
			return &wr.world
		}
		wr.world.Copies[i] = 0
	}

	// Gene digits rolled over; advance the unknown trait bits.
	for _, i := range wr.unknown {
		wr.world.HasTrait[i] = !wr.world.HasTrait[i]
		if wr.world.HasTrait[i] {
			wr.WorldsSeen++
			return &wr.world
		}
	}

	wr.done = true
	return nil
}
