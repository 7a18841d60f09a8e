package heredity

import (
	"fmt"
	"sort"

	"github.com/carbocation/pfx"
)

// Person is one individual in a pedigree. Mother and Father are either both
// empty (a founder) or both name other persons in the same pedigree.
// Persons are immutable once their pedigree has been built.
type Person struct {
	Name   string
	Mother string
	Father string
	Trait  TraitStatus

	founder bool
}

// Founder reports whether the person has no recorded parents. The tag is
// set once during pedigree validation.
func (p *Person) Founder() bool {
	return p.founder
}

// Pedigree is a validated collection of persons keyed by name. Iteration
// order is fixed (sorted by name) so that results and enumeration are
// deterministic.
type Pedigree struct {
	people map[string]*Person
	names  []string
	index  map[string]int
}

// NewPedigree validates persons and assembles them into a Pedigree. It
// rejects duplicate names, half-known parentage, dangling parent references
// and cycles in the parent links, and tags each person as founder or not.
func NewPedigree(persons []Person) (*Pedigree, error) {
	ped := &Pedigree{
		people: make(map[string]*Person, len(persons)),
		index:  make(map[string]int, len(persons)),
	}

	for i := range persons {
		p := persons[i]
		if p.Name == "" {
			return nil, pfx.Err(fmt.Errorf("%w: person with empty name", ErrInvalidPedigree))
		}
		if _, seen := ped.people[p.Name]; seen {
			return nil, pfx.Err(fmt.Errorf("%w: duplicate person %q", ErrInvalidPedigree, p.Name))
		}
		ped.people[p.Name] = &p
		ped.names = append(ped.names, p.Name)
	}

	sort.Strings(ped.names)
	for i, name := range ped.names {
		ped.index[name] = i
	}

	for _, p := range ped.people {
		if (p.Mother == "") != (p.Father == "") {
			return nil, pfx.Err(fmt.Errorf("%w: person %q has exactly one recorded parent", ErrInvalidPedigree, p.Name))
		}
		p.founder = p.Mother == ""
		if p.founder {
			continue
		}
		for _, parent := range []string{p.Mother, p.Father} {
			if _, ok := ped.people[parent]; !ok {
				return nil, pfx.Err(fmt.Errorf("%w: person %q references unknown parent %q", ErrInvalidPedigree, p.Name, parent))
			}
		}
	}

	if err := ped.checkAcyclic(); err != nil {
		return nil, pfx.Err(err)
	}

	return ped, nil
}

// checkAcyclic walks parent links depth-first and fails if any person is an
// ancestor of themselves.
func (ped *Pedigree) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)

	state := make(map[string]int, len(ped.people))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("%w: cycle through person %q", ErrInvalidPedigree, name)
		}
		state[name] = visiting

		p := ped.people[name]
		if !p.founder {
			if err := visit(p.Mother); err != nil {
				return err
			}
			if err := visit(p.Father); err != nil {
				return err
			}
		}

		state[name] = done
		return nil
	}

	for _, name := range ped.names {
		if err := visit(name); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of persons in the pedigree.
func (ped *Pedigree) Len() int {
	return len(ped.names)
}

// Names returns the persons' names in the pedigree's fixed iteration order.
func (ped *Pedigree) Names() []string {
	out := make([]string, len(ped.names))
	copy(out, ped.names)
	return out
}

// Person looks a person up by name.
func (ped *Pedigree) Person(name string) (*Person, bool) {
	p, ok := ped.people[name]
	return p, ok
}

func (ped *Pedigree) at(i int) *Person {
	return ped.people[ped.names[i]]
}
