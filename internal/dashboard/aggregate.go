package dashboard

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"airdash/internal/airport"
)

// Bar is one (key, count) pair of the chart input.
type Bar struct {
	Key   string
	Count int
}

// Aggregate counts ds records per key of mode, in domain order. Counts always
// cover the full dataset.
func Aggregate(ds *airport.Dataset, mode ChartMode) []Bar {
	counts := make(map[string]int)
	for _, r := range ds.Records {
		counts[mode.Key(r)]++
	}
	domain := mode.Domain(ds)
	bars := make([]Bar, len(domain))
	for i, k := range domain {
		bars[i] = Bar{Key: k, Count: counts[k]}
	}
	return bars
}

// DrillDown lists every record whose mode key equals key, sorted by name.
func DrillDown(ds *airport.Dataset, mode ChartMode, key string) []airport.Record {
	var out []airport.Record
	for _, r := range ds.Records {
		if mode.Key(r) == key {
			out = append(out, r)
		}
	}
	return SortByName(out)
}

// SortByName returns a copy of records ordered by name with locale-aware
// collation. Equal names keep their input order.
func SortByName(records []airport.Record) []airport.Record {
	out := make([]airport.Record, len(records))
	copy(out, records)
	c := collate.New(language.Und)
	sort.SliceStable(out, func(i, j int) bool {
		return c.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
