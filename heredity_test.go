package heredity

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func approx(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestDefaultModelValidates(t *testing.T) {
	if err := DefaultModel.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestModelValidateRejectsBadTables(t *testing.T) {
	m := DefaultModel
	m.Gene = [3]float64{0.5, 0.5, 0.5}
	if err := m.Validate(); !errors.Is(err, ErrDomain) {
		t.Errorf("Got %v, expected ErrDomain for gene prior not summing to 1", err)
	}

	m = DefaultModel
	m.Trait[1] = [2]float64{0.9, 0.2}
	if err := m.Validate(); !errors.Is(err, ErrDomain) {
		t.Errorf("Got %v, expected ErrDomain for trait row not summing to 1", err)
	}

	m = DefaultModel
	m.Mutation = 0
	if err := m.Validate(); !errors.Is(err, ErrDomain) {
		t.Errorf("Got %v, expected ErrDomain for zero mutation rate", err)
	}
}

func TestModelValidateReportsTraitRowSum(t *testing.T) {
	m := DefaultModel
	m.Trait[2] = [2]float64{0.75, 0.75}

	err := m.Validate()
	if !errors.Is(err, ErrDomain) {
		t.Fatalf("Got %v, expected ErrDomain", err)
	}
	if !strings.Contains(err.Error(), "sums to 1.5") {
		t.Errorf("error %q does not report the offending row sum", err)
	}
}

func TestPassProbability(t *testing.T) {
	tests := []struct {
		copies   int
		expected float64
	}{
		{0, 0.01},
		{1, 0.5},
		{2, 0.99},
	}

	for _, test := range tests {
		got, err := DefaultModel.PassProbability(test.copies)
		if err != nil {
			t.Fatal(err)
		}
		if got != test.expected {
			t.Errorf("PassProbability(%d): got %g, expected %g", test.copies, got, test.expected)
		}
	}
}

func TestPassProbabilityDomain(t *testing.T) {
	for _, copies := range []int{-1, 3, 10} {
		if _, err := DefaultModel.PassProbability(copies); !errors.Is(err, ErrDomain) {
			t.Errorf("PassProbability(%d): got %v, expected ErrDomain", copies, err)
		}
	}
}
