package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/raingarden/plantfill"
	"github.com/raingarden/plantfill/csv"
)

// Run executes the merge command.
func (c *MergeCmd) Run(deps *Dependencies) error {
	table, err := readTable(c.Input)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plantfill.ErrorMessage(err))
		return err
	}

	inserted, updated, err := deps.Store.Upsert(deps.Ctx, table.Records)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plantfill.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Merged %s plants into the master list (%s new, %s updated)\n",
		humanize.Comma(int64(inserted+updated)),
		humanize.Comma(int64(inserted)),
		humanize.Comma(int64(updated)),
	)
	return nil
}

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	records, err := deps.Store.FindAll(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", plantfill.ErrorMessage(err))
		return err
	}

	table := &plantfill.Table{
		Header:  plantfill.KnownFields(),
		Records: records,
	}

	if c.Output == "" {
		return csv.WriteTable(deps.Stdout, table)
	}

	if err := writeTable(c.Output, table); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", c.Output, err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Exported %s plants to %s\n", humanize.Comma(int64(len(records))), c.Output)
	return nil
}
