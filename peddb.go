package heredity

import (
	"database/sql"
	"fmt"

	"github.com/carbocation/pfx"
	"github.com/jmoiron/sqlx"
)

// PedigreeDB is a pedigree stored in a SQLite database with a Person table
// and, in more recent files, a Metadata table.
type PedigreeDB struct {
	DB       *sqlx.DB
	Metadata *PedigreeMetadata
}

func (d *PedigreeDB) Close() error {
	return d.DB.Close()
}

// PersonRecord conforms to the data found in the rows of the SQLite table
// "Person", and can be easily parsed with sqlx. Blank mother/father fields
// mean the person is a founder; a NULL trait means the trait was not
// observed.
type PersonRecord struct {
	Name   string
	Mother string
	Father string
	Trait  sql.NullInt64
}

// PedigreeMetadata conforms to the data found in the rows of the SQLite
// table "Metadata" from more recent pedigree database files.
type PedigreeMetadata struct {
	Filename     string
	PersonCount  uint `db:"person_count"`
	CreationTime Time `db:"creation_time"`
}

// ReadPedigree loads every row of the Person table and assembles them into
// a validated Pedigree.
func (d *PedigreeDB) ReadPedigree() (*Pedigree, error) {
	var records []PersonRecord
	if err := d.DB.Select(&records, "SELECT name, mother, father, trait FROM Person"); err != nil {
		return nil, pfx.Err(err)
	}

	persons := make([]Person, 0, len(records))
	for _, rec := range records {
		trait := TraitUnknown
		if rec.Trait.Valid {
			switch rec.Trait.Int64 {
			case 1:
				trait = TraitPresent
			case 0:
				trait = TraitAbsent
			default:
				return nil, pfx.Err(fmt.Errorf("%w: person %q has trait value %d, expected 0, 1 or NULL", ErrInvalidPedigree, rec.Name, rec.Trait.Int64))
			}
		}

		persons = append(persons, Person{
			Name:   rec.Name,
			Mother: rec.Mother,
			Father: rec.Father,
			Trait:  trait,
		})
	}

	ped, err := NewPedigree(persons)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return ped, nil
}
