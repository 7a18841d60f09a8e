package heredity

import (
	"strings"
	"testing"
)

func TestWriteResults(t *testing.T) {
	ped, err := NewPedigree([]Person{{Name: "Alice"}})
	if err != nil {
		t.Fatal(err)
	}

	res, err := Infer(ped, DefaultModel)
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	if err := WriteResults(&sb, ped, res); err != nil {
		t.Fatal(err)
	}

	expected := "Alice:\n" +
		"  Gene:\n" +
		"    2: 0.0100\n" +
		"    1: 0.0300\n" +
		"    0: 0.9600\n" +
		"  Trait:\n" +
		"    true: 0.0329\n" +
		"    false: 0.9671\n"
	if got := sb.String(); got != expected {
		t.Errorf("Got:\n%s\nExpected:\n%s", got, expected)
	}
}

func TestWriteResultsMissingPerson(t *testing.T) {
	ped, err := NewPedigree([]Person{{Name: "Alice"}})
	if err != nil {
		t.Fatal(err)
	}

	var sb strings.Builder
	if err := WriteResults(&sb, ped, Results{}); err == nil {
		t.Error("expected an error for a result table missing a person")
	}
}
