package csv_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/raingarden/plantfill"
	"github.com/raingarden/plantfill/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable(t *testing.T) {
	t.Parallel()

	t.Run("keeps header order and pre-creates known fields", func(t *testing.T) {
		t.Parallel()

		in := "Botanical Name,Sun,Nursery Notes\nAcer rubrum,Full Sun,order in fall\n"

		table, err := csv.ReadTable(strings.NewReader(in))

		require.NoError(t, err)
		assert.Equal(t, []plantfill.Field{plantfill.FieldBotanicalName, plantfill.FieldSun, "Nursery Notes"}, table.Header)
		require.Len(t, table.Records, 1)

		rec := table.Records[0]
		assert.Equal(t, "Acer rubrum", rec.Name())
		assert.Equal(t, "order in fall", rec.Get("Nursery Notes"))
		assert.True(t, rec.Has(plantfill.FieldBloomTime))
		assert.True(t, rec.Missing(plantfill.FieldBloomTime))
	})

	t.Run("pads short rows and strips byte order mark", func(t *testing.T) {
		t.Parallel()

		in := "\ufeffBotanical Name,Sun\nIlex glabra\n"

		table, err := csv.ReadTable(strings.NewReader(in))

		require.NoError(t, err)
		assert.Equal(t, plantfill.FieldBotanicalName, table.Header[0])
		assert.Equal(t, "Ilex glabra", table.Records[0].Name())
		assert.Empty(t, table.Records[0].Get(plantfill.FieldSun))
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := csv.ReadTable(strings.NewReader(""))

		require.Error(t, err)
		assert.Equal(t, plantfill.EINVALID, plantfill.ErrorCode(err))
	})

	t.Run("rejects duplicate columns", func(t *testing.T) {
		t.Parallel()

		_, err := csv.ReadTable(strings.NewReader("Sun,Sun\nFull Sun,Part Shade\n"))

		require.Error(t, err)
		assert.Equal(t, plantfill.EINVALID, plantfill.ErrorCode(err))
	})

	t.Run("rejects malformed quoting", func(t *testing.T) {
		t.Parallel()

		_, err := csv.ReadTable(strings.NewReader("Botanical Name\n\"Acer rubrum\n"))

		require.Error(t, err)
		assert.Equal(t, plantfill.EINVALID, plantfill.ErrorCode(err))
	})
}

func TestWriteTable(t *testing.T) {
	t.Parallel()

	t.Run("writes header columns first then filled fields", func(t *testing.T) {
		t.Parallel()

		table := &plantfill.Table{
			Header: []plantfill.Field{plantfill.FieldSun, plantfill.FieldBotanicalName},
			Records: []*plantfill.Record{
				plantfill.RecordFrom(map[plantfill.Field]string{
					plantfill.FieldBotanicalName: "Acer rubrum",
					plantfill.FieldSun:           "Full Sun",
					plantfill.FieldKey:           "AR",
				}),
				plantfill.RecordFrom(map[plantfill.Field]string{
					plantfill.FieldBotanicalName: "Ilex glabra, inkberry",
					plantfill.FieldSun:           "",
				}),
			},
		}

		var buf bytes.Buffer
		require.NoError(t, csv.WriteTable(&buf, table))

		assert.Equal(t, "Sun,Botanical Name,Key\nFull Sun,Acer rubrum,AR\n,\"Ilex glabra, inkberry\",\n", buf.String())
	})

	t.Run("round trips rows in order", func(t *testing.T) {
		t.Parallel()

		in := "Botanical Name,Bloom Time,Extra\nAcer rubrum,\"Mar, Apr\",x\nIlex glabra,,y\n"
		table, err := csv.ReadTable(strings.NewReader(in))
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, csv.WriteTable(&buf, table))

		again, err := csv.ReadTable(&buf)
		require.NoError(t, err)
		require.Len(t, again.Records, 2)
		assert.Equal(t, table.Records[0].Values(), again.Records[0].Values())
		assert.Equal(t, "Ilex glabra", again.Records[1].Name())
		assert.Equal(t, "y", again.Records[1].Get("Extra"))
		assert.Equal(t, csv.Columns(table), again.Header)
	})
}
