package airport

import (
	"sort"

	"airdash/internal/palette"
)

// Dataset is the loaded working set plus everything derived from it once.
// Nothing mutates a Dataset after NewDataset returns.
type Dataset struct {
	Source  string
	Records []Record
	// Dropped counts rows excluded for non-numeric coordinates.
	Dropped int

	Categories []string
	Regions    []string

	CategoryColors *palette.Ordinal
	RegionColors   *palette.Ordinal
}

// NewDataset derives the category and region sets and their colour
// assignments from records.
func NewDataset(records []Record) *Dataset {
	ds := &Dataset{Records: records}
	ds.Categories = distinct(records, func(r Record) string { return r.Type })
	ds.Regions = distinct(records, func(r Record) string { return r.Continent })
	ds.CategoryColors = palette.NewOrdinal(ds.Categories, nil)
	ds.RegionColors = palette.NewOrdinal(ds.Regions, nil)
	return ds
}

func distinct(records []Record, key func(Record) string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range records {
		k := key(r)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// CategoryColor is the colour of r's category.
func (ds *Dataset) CategoryColor(r Record) string { return ds.CategoryColors.Color(r.Type) }

// RegionColor is the colour of r's continent.
func (ds *Dataset) RegionColor(r Record) string { return ds.RegionColors.Color(r.Continent) }

// Len returns the size of the working set.
func (ds *Dataset) Len() int { return len(ds.Records) }
