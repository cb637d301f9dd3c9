package feed

// Index is a read-only multi-key lookup over normalized feed records. Several
// keys (identifier variants, part number) may resolve to the same record. An
// Index is never mutated after BuildIndex returns; refreshes replace it
// wholesale through the Cache.
type Index struct {
	byKey   map[string]*Record
	records []*Record
}

// BuildIndex registers every record under its identifier variants and part
// number. The first record to claim a key wins; later duplicates are dropped
// silently.
func BuildIndex(records []Record) *Index {
	idx := &Index{
		byKey:   make(map[string]*Record, len(records)*4),
		records: make([]*Record, 0, len(records)),
	}

	for i := range records {
		record := &records[i]
		idx.records = append(idx.records, record)

		for _, key := range KeyVariants(record.RawID) {
			idx.register(key, record)
		}
		if record.PartNumber != "" {
			idx.register(record.PartNumber, record)
		}
	}

	return idx
}

func (idx *Index) register(key string, record *Record) {
	if key == "" {
		return
	}
	if _, taken := idx.byKey[key]; taken {
		return
	}
	idx.byKey[key] = record
}

// Lookup returns the record registered under key, or nil.
func (idx *Index) Lookup(key string) *Record {
	if idx == nil || key == "" {
		return nil
	}
	return idx.byKey[key]
}

// Len returns the number of registered keys.
func (idx *Index) Len() int {
	return len(idx.byKey)
}

// Records returns all indexed records in feed order. Callers must treat the
// slice and its records as read-only.
func (idx *Index) Records() []*Record {
	return idx.records
}
