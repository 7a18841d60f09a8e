package heredity

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// OpenPedigree reads a pedigree from a CSV file at path. Files compressed
// with gzip or zstandard are decompressed transparently; the format is
// identified from the file's magic bytes rather than its extension.
func OpenPedigree(path string) (*Pedigree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	br := bufio.NewReader(f)
	magic, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, pfx.Err(err)
	}

	var r io.Reader = br
	switch sniffCompression(magic) {
	case CompressionGZIP:
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer gz.Close()
		r = gz
	case CompressionZStandard:
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, pfx.Err(err)
		}
		defer zr.Close()
		r = zr
	}

	ped, err := ReadPedigree(r)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	return ped, nil
}

// ReadPedigree parses pedigree CSV data with a header row naming the
// columns name, mother, father and trait. The mother and father fields must
// both be blank or both name other rows; trait is 1 (present), 0 (absent)
// or blank (unknown).
func ReadPedigree(r io.Reader) (*Pedigree, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, pfx.Err(fmt.Errorf("%w: empty pedigree file", ErrInvalidPedigree))
	}
	if err != nil {
		return nil, pfx.Err(err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{"name", "mother", "father", "trait"} {
		if _, ok := col[required]; !ok {
			return nil, pfx.Err(fmt.Errorf("%w: pedigree header is missing column %q", ErrInvalidPedigree, required))
		}
	}

	var persons []Person
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		trait, err := parseTrait(record[col["trait"]])
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("person %q: %w", record[col["name"]], err))
		}

		persons = append(persons, Person{
			Name:   record[col["name"]],
			Mother: record[col["mother"]],
			Father: record[col["father"]],
			Trait:  trait,
		})
	}

	ped, err := NewPedigree(persons)
	if err != nil {
		return nil, pfx.Err(err)
	}

	return ped, nil
}

func parseTrait(field string) (TraitStatus, error) {
	switch field {
	case "1":
		return TraitPresent, nil
	case "0":
		return TraitAbsent, nil
	case "":
		return TraitUnknown, nil
	}

	return TraitUnknown, fmt.Errorf("%w: trait value %q is not 1, 0 or blank", ErrInvalidPedigree, field)
}
