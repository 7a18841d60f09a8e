//go:build cgo

package heredity

// If cgo is enabled, we will use the mattn cgo sqlite3 driver. It is faster
// than the modernc sqlite driver.

import (
	"strings"

	"github.com/jmoiron/sqlx"

	_ "github.com/mattn/go-sqlite3"
)

const whichSQLiteDriver = "sqlite3"

// OpenPedigreeDB opens a pedigree database located at path. Missing
// metadata is not an error; older files do not carry a Metadata table.
func OpenPedigreeDB(path string) (*PedigreeDB, error) {
	d := &PedigreeDB{
		Metadata: &PedigreeMetadata{},
	}

	// URI filenames have to begin with 'file:'; see
	// https://www.sqlite.org/c3ref/open.html . It seems that sqlite3 permitted
	// URI filenames without the file: prefix, but that is not standard.
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}
	d.DB = db

	// Not all pedigree databases have metadata; ignore any error
	_ = d.DB.Get(d.Metadata, "SELECT * FROM Metadata LIMIT 1")

	return d, nil
}
