package heredity

// TraitStatus records what is known about a person's observable trait
// before inference runs.
type TraitStatus uint8

const (
	TraitUnknown TraitStatus = iota
	TraitAbsent
	TraitPresent
)

func (t TraitStatus) String() string {
	switch t {
	case TraitUnknown:
		return "unknown"
	case TraitAbsent:
		return "absent"
	case TraitPresent:
		return "present"

	default:
		return "illegal selection"
	}
}

// Known reports whether the trait was actually observed.
func (t TraitStatus) Known() bool {
	return t == TraitAbsent || t == TraitPresent
}
