package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/raingarden/plantfill"
	main "github.com/raingarden/plantfill/cmd/plantfill"
	"github.com/raingarden/plantfill/gnparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeysCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("assigns missing keys around existing ones", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, dir, "plants.csv",
			"Key,Botanical Name,Sun\n"+
				",Carex platyphylla,\n"+
				"CP,Carex pensylvanica,Part Shade\n"+
				",,\n")
		out := filepath.Join(dir, "keyed.csv")

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Keys:   gnparser.NewKeyGenerator(),
		}

		err := (&main.KeysCmd{Input: in, Output: out}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Assigned 1 keys\n", stdout.String())

		table := readTable(t, out)
		require.Len(t, table.Records, 3)
		assert.Equal(t, "CP1", table.Records[0].Get(plantfill.FieldKey))
		assert.Equal(t, "CP", table.Records[1].Get(plantfill.FieldKey))
		assert.Equal(t, "Part Shade", table.Records[1].Get(plantfill.FieldSun))
		assert.Empty(t, table.Records[2].Get(plantfill.FieldKey))
		assert.Equal(t, []plantfill.Field{"Key", "Botanical Name", "Sun"}, table.Header[:3])
	})

	t.Run("overwrites the input by default", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, t.TempDir(), "plants.csv", "Botanical Name\nAsclepias tuberosa\n")
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Keys:   gnparser.NewKeyGenerator(),
		}

		err := (&main.KeysCmd{Input: in}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "AT", readTable(t, in).Records[0].Get(plantfill.FieldKey))
	})

	t.Run("reports malformed tables", func(t *testing.T) {
		t.Parallel()

		in := writeFile(t, t.TempDir(), "plants.csv", "")
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Keys:   gnparser.NewKeyGenerator(),
		}

		err := (&main.KeysCmd{Input: in}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, plantfill.EINVALID, plantfill.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
