package heredity

// WorldCount returns the size of the candidate space for ped: (MaxCopies+1)
// gene digits per person, doubled for every person whose trait evidence is
// unknown.
func WorldCount(ped *Pedigree) uint64 {
	worlds := uint64(1)
	for i := 0; i < ped.Len(); i++ {
		worlds *= MaxCopies + 1
		if !ped.at(i).Trait.Known() {
			worlds *= 2
		}
	}

	return worlds
}

func WhichSQLiteDriver() string {
	return whichSQLiteDriver
}
