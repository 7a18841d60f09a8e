package heredity

import (
	"errors"
	"testing"
)

// The worked example for the potter family: Harry with one copy, James with
// two, Lily with none, and only James showing the trait.
func TestJointProbabilityWorkedExample(t *testing.T) {
	ped, err := NewPedigree(potterFamily())
	if err != nil {
		t.Fatal(err)
	}

	// Index order is Harry, James, Lily.
	w := &World{
		Copies:   []int{1, 2, 0},
		HasTrait: []bool{false, true, false},
	}

	got, err := JointProbability(ped, DefaultModel, w)
	if err != nil {
		t.Fatal(err)
	}

	// James: 0.01 * 0.65; Lily: 0.96 * 0.99; Harry: one allele from
	// parents passing with 0.99 and 0.01, times P(no trait | 1 copy).
	expected := 0.0026643247488
	if !approx(got, expected, 1e-12) {
		t.Errorf("Got %.13g, expected %.13g", got, expected)
	}
}

func TestJointProbabilityFounderOnly(t *testing.T) {
	ped, err := NewPedigree([]Person{{Name: "Alice"}})
	if err != nil {
		t.Fatal(err)
	}

	for copies := 0; copies <= MaxCopies; copies++ {
		for _, hasTrait := range []bool{false, true} {
			w := &World{Copies: []int{copies}, HasTrait: []bool{hasTrait}}
			got, err := JointProbability(ped, DefaultModel, w)
			if err != nil {
				t.Fatal(err)
			}
			expected := DefaultModel.Gene[copies] * DefaultModel.Trait[copies][traitIndex(hasTrait)]
			if got != expected {
				t.Errorf("copies=%d trait=%v: got %g, expected %g", copies, hasTrait, got, expected)
			}
		}
	}
}

func TestJointProbabilityDomainErrors(t *testing.T) {
	ped, err := NewPedigree(potterFamily())
	if err != nil {
		t.Fatal(err)
	}

	w := &World{Copies: []int{3, 0, 0}, HasTrait: []bool{false, true, false}}
	if _, err := JointProbability(ped, DefaultModel, w); !errors.Is(err, ErrDomain) {
		t.Errorf("Got %v, expected ErrDomain for copy count 3", err)
	}

	w = &World{Copies: []int{0}, HasTrait: []bool{false}}
	if _, err := JointProbability(ped, DefaultModel, w); !errors.Is(err, ErrDomain) {
		t.Errorf("Got %v, expected ErrDomain for undersized world", err)
	}
}
