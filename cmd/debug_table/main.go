package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"domain-checker/core/config"
	"domain-checker/core/grid"
	"domain-checker/core/storage"
)

// Prints how a table is parsed: tracked columns, rows and the cells the
// engine would probe. Nothing is probed or written.
func main() {
	if len(os.Args) != 2 {
		log.Fatal("usage: debug_table <path|s3://bucket/key>")
	}
	location := os.Args[1]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	var objects grid.Store
	if client, err := storage.NewClient(cfg.Storage); err == nil {
		objects = grid.NewObjectStore(client)
	}
	store := grid.NewRouter(objects)

	format, err := grid.FormatOf(location)
	if err != nil {
		log.Fatal(err)
	}
	codec, err := grid.CodecFor(format)
	if err != nil {
		log.Fatal(err)
	}

	data, err := store.Load(context.Background(), location)
	if err != nil {
		log.Fatal(err)
	}
	g, err := codec.Decode(data)
	if err != nil {
		log.Fatal(err)
	}

	rows, cols := g.Dimensions()
	fmt.Printf("Grid: %d rows x %d columns\n", rows, cols)

	m, err := grid.Load(g)
	if err != nil {
		log.Fatal(err)
	}

	resolved, unresolved := m.Counts()
	fmt.Printf("Tracked rows: %d, resolved cells: %d, unresolved cells: %d\n", m.Len(), resolved, unresolved)

	out, _ := json.MarshalIndent(m.Columns(), "", "  ")
	fmt.Printf("Columns:\n%s\n", string(out))

	fmt.Println("Pending:")
	for cell := range m.Unresolved() {
		fmt.Printf("  row %d col %d  %s\n", cell.Row+1, cell.Column+1, grid.ComposeName(cell.Domain, cell.Extension))
	}
}
