package main

import (
	"flag"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/lineagelab/heredity"
)

func main() {
	path := flag.String("data", "", "Filename of the pedigree CSV to process (may be gzip or zstd compressed)")
	workers := flag.Int("workers", 1, "Number of goroutines to shard the candidate space across")
	flag.Parse()

	if *path == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree file found")
	}

	if strings.HasPrefix(*path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*path = filepath.Join(usr.HomeDir, (*path)[2:])
	}

	log.Println("Opening pedigree:", *path)
	ped, err := heredity.OpenPedigree(*path)
	if err != nil {
		log.Fatalln(err)
	}

	log.Println("Persons:", ped.Len(), "candidate worlds:", heredity.WorldCount(ped))

	var res heredity.Results
	if *workers > 1 {
		res, err = heredity.InferParallel(ped, heredity.DefaultModel, *workers)
	} else {
		res, err = heredity.Infer(ped, heredity.DefaultModel)
	}
	if err != nil {
		log.Fatalln(err)
	}

	if err := heredity.WriteResults(os.Stdout, ped, res); err != nil {
		log.Fatalln(err)
	}
}
