package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/raingarden/plantfill"
)

// Run executes the keys command.
// Existing keys are kept and reserved first so new keys never collide.
func (c *KeysCmd) Run(deps *Dependencies) error {
	table, err := readTable(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plantfill.ErrorMessage(err))
		return err
	}

	for _, rec := range table.Records {
		if key := rec.Get(plantfill.FieldKey); key != "" {
			deps.Keys.Reserve(key)
		}
	}

	assigned := 0
	for _, rec := range table.Records {
		if rec.Name() == "" || rec.Get(plantfill.FieldKey) != "" {
			continue
		}
		if rec.Set(plantfill.FieldKey, deps.Keys.Generate(rec.Name())) {
			assigned++
		}
	}

	out := outputPath(c.Input, c.Output)
	if err := writeTable(out, table); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", out, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Assigned %s keys\n", humanize.Comma(int64(assigned)))
	return nil
}
