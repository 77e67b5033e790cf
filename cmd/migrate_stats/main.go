package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/arshith183/snake-io-game/pkg/config"
	"github.com/arshith183/snake-io-game/pkg/store"
)

// Moves stats kept by `snake -store file` into the sqlite database
func main() {
	from := flag.String("from", config.DefaultFilePath, "json stats file to read")
	to := flag.String("to", config.DefaultDBPath, "sqlite database to write")
	flag.Parse()

	if _, err := os.Stat(*from); errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("%s not found. Point -from at the stats file written by the file store.", *from)
	}

	src, err := store.OpenFile(*from)
	if err != nil {
		log.Fatal("Failed to read stats:", err)
	}

	db, err := store.OpenSQLite(*to)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer db.Close()

	log.Printf("Found %d sessions to migrate...", len(src.Sessions()))
	count, err := db.Import(src)
	if err != nil {
		log.Printf("Migration stopped early: %v", err)
	}

	fmt.Printf("✅ Migration complete! Imported %d sessions into %s\n", count, *to)
}
