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
	dbPath := flag.String("db", "", "Filename of the pedigree SQLite database to process")
	flag.Parse()

	if *dbPath == "" {
		flag.PrintDefaults()
		log.Fatalln("No pedigree database found")
	}

	if strings.HasPrefix(*dbPath, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		*dbPath = filepath.Join(usr.HomeDir, (*dbPath)[2:])
	}

	log.Println("Opening pedigree database:", *dbPath, "via driver", heredity.WhichSQLiteDriver())
	db, err := heredity.OpenPedigreeDB(*dbPath)
	if err != nil {
		log.Fatalln(err)
	}
	defer db.Close()

	log.Printf("Metadata: %+v\n", db.Metadata)

	ped, err := db.ReadPedigree()
	if err != nil {
		log.Fatalln(err)
	}

	res, err := heredity.Infer(ped, heredity.DefaultModel)
	if err != nil {
		log.Fatalln(err)
	}

	if err := heredity.WriteResults(os.Stdout, ped, res); err != nil {
		log.Fatalln(err)
	}
}
