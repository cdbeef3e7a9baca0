package main

import (
	"bytes"
	"os"

	"github.com/raingarden/plantfill"
	"github.com/raingarden/plantfill/csv"
	"github.com/raingarden/plantfill/fs"
)

// readTable loads the plant table at path.
func readTable(path string) (*plantfill.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, plantfill.Errorf(plantfill.EINVALID, "cannot open %s: %v", path, err)
	}
	defer f.Close()
	return csv.ReadTable(f)
}

// writeTable replaces the file at path with t. The write is atomic, so an
// interrupted run never leaves a truncated table behind.
func writeTable(path string, t *plantfill.Table) error {
	var buf bytes.Buffer
	if err := csv.WriteTable(&buf, t); err != nil {
		return err
	}
	return fs.WriteFileAtomic(path, buf.Bytes(), 0644)
}

// outputPath returns output, or input when no output was given.
func outputPath(input, output string) string {
	if output == "" {
		return input
	}
	return output
}
