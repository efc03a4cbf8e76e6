package model

// Aggregator accumulates part counts keyed by exact part identity. It is
// owned by a single export run: insert-if-absent or increment, no
// eviction, no concurrent access.
type Aggregator struct {
	records map[PartKey]*PartRecord
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{records: make(map[PartKey]*PartRecord)}
}

// Observe registers one object for the given key. On first observation a
// PartRecord is created with count 1 and the key fields frozen as given;
// subsequent observations of the same key only increment the count.
func (a *Aggregator) Observe(key PartKey) {
	if rec, ok := a.records[key]; ok {
		rec.Count++
		return
	}
	a.records[key] = &PartRecord{Key: key, Count: 1}
}

// Len returns the number of distinct parts observed so far.
func (a *Aggregator) Len() int {
	return len(a.records)
}

// Records returns a snapshot of all accumulated records with no ordering
// guarantee. The export package applies the report sort.
func (a *Aggregator) Records() []PartRecord {
	out := make([]PartRecord, 0, len(a.records))
	for _, rec := range a.records {
		out = append(out, *rec)
	}
	return out
}
