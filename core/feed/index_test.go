package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildIndex(t *testing.T) {
	records := []Record{
		{RawID: "00012748802600", StrippedID: "12748802600", PartNumber: "ABC-123"},
		{RawID: "555", StrippedID: "555", PartNumber: "XYZ-9"},
	}

	idx := BuildIndex(records)

	t.Run("identifier variants resolve to the same record", func(t *testing.T) {
		raw := idx.Lookup("00012748802600")
		assert.NotNil(t, raw)
		assert.Same(t, raw, idx.Lookup("12748802600"))
		assert.Same(t, raw, idx.Lookup("012748802600"))
		assert.Same(t, raw, idx.Lookup("0012748802600"))
	})

	t.Run("part number resolves", func(t *testing.T) {
		record := idx.Lookup("ABC-123")
		assert.NotNil(t, record)
		assert.Equal(t, "00012748802600", record.RawID)
	})

	t.Run("miss returns nil", func(t *testing.T) {
		assert.Nil(t, idx.Lookup("nope"))
		assert.Nil(t, idx.Lookup(""))
	})

	t.Run("records are preserved in feed order", func(t *testing.T) {
		all := idx.Records()
		assert.Len(t, all, 2)
		assert.Equal(t, "00012748802600", all[0].RawID)
		assert.Equal(t, "555", all[1].RawID)
	})
}

func TestBuildIndexFirstWriterWins(t *testing.T) {
	records := []Record{
		{RawID: "123", StrippedID: "123", PartNumber: "DUP"},
		{RawID: "456", StrippedID: "456", PartNumber: "DUP"},
	}

	idx := BuildIndex(records)

	// The first record that claims a key keeps it.
	record := idx.Lookup("DUP")
	assert.NotNil(t, record)
	assert.Equal(t, "123", record.RawID)

	// The loser is still reachable under its own identifier.
	assert.Equal(t, "456", idx.Lookup("456").RawID)
}

func TestNilIndexLookup(t *testing.T) {
	var idx *Index
	assert.Nil(t, idx.Lookup("anything"))
}
