package heredity

import "testing"

func TestWorldReaderCoversCandidateSpace(t *testing.T) {
	ped, err := NewPedigree(potterFamily())
	if err != nil {
		t.Fatal(err)
	}

	// Three gene digits per person; only Harry's trait is unknown.
	expected := uint64(3 * 3 * 3 * 2)
	if got := WorldCount(ped); got != expected {
		t.Fatalf("WorldCount: got %d, expected %d", got, expected)
	}

	seen := make(map[[4]int]bool)
	wr := ped.NewWorldReader()
	for w := wr.Read(); w != nil; w = wr.Read() {
		key := [4]int{w.Copies[0], w.Copies[1], w.Copies[2], traitIndex(w.HasTrait[0])}
		if seen[key] {
			t.Fatalf("world %v enumerated twice", key)
		}
		seen[key] = true

		// Evidence-fixed traits must never vary.
		if !w.HasTrait[1] {
			t.Fatal("James's observed trait flipped to false during enumeration")
		}
		if w.HasTrait[2] {
			t.Fatal("Lily's observed trait flipped to true during enumeration")
		}
	}

	if uint64(len(seen)) != expected {
		t.Errorf("Got %d distinct worlds, expected %d", len(seen), expected)
	}
	if uint64(wr.WorldsSeen) != expected {
		t.Errorf("WorldsSeen is %d, expected %d", wr.WorldsSeen, expected)
	}
}

func TestWorldReaderShardsPartitionSpace(t *testing.T) {
	ped, err := NewPedigree(potterFamily())
	if err != nil {
		t.Fatal(err)
	}

	total := 0
	for digit := 0; digit <= MaxCopies; digit++ {
		wr := ped.newWorldReader(0, digit)
		for w := wr.Read(); w != nil; w = wr.Read() {
			if w.Copies[0] != digit {
				t.Fatalf("shard %d produced a world with leading digit %d", digit, w.Copies[0])
			}
			total++
		}
	}

	if expected := int(WorldCount(ped)); total != expected {
		t.Errorf("Shards produced %d worlds in total, expected %d", total, expected)
	}
}

func TestWorldReaderEmptyPedigree(t *testing.T) {
	ped, err := NewPedigree(nil)
	if err != nil {
		t.Fatal(err)
	}

	wr := ped.NewWorldReader()
	if w := wr.Read(); w == nil {
		t.Fatal("expected one empty world for an empty pedigree")
	}
	if w := wr.Read(); w != nil {
		t.Fatal("expected enumeration to end after the empty world")
	}
}
