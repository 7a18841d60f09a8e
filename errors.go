package heredity

import "errors"

var (
	// ErrInvalidPedigree indicates a structurally malformed pedigree: a
	// person with exactly one recorded parent, a parent reference that does
	// not resolve, or a cycle in the parent links.
	ErrInvalidPedigree = errors.New("invalid pedigree")

	// ErrDomain indicates a gene copy count outside {0,1,2} or a trait
	// value outside its domain was passed internally. This is a programming
	// defect in the calling code, not a data problem.
	ErrDomain = errors.New("value outside domain")

	// ErrDegenerateDistribution indicates normalization was attempted on an
	// all-zero distribution, i.e. the evidence admits no consistent world.
	ErrDegenerateDistribution = errors.New("degenerate distribution")
)
