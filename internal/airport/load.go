// Package airport loads the airport dataset and derives the category and
// region sets used by every view.
package airport

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// ErrMissingColumn is returned when the header lacks one of the required columns.
var ErrMissingColumn = errors.New("missing column")

// Columns is the header schema of the dataset, in Raw field order.
var Columns = []string{
	"id",
	"name",
	"type",
	"municipality",
	"iso_country",
	"iso_region",
	"continent",
	"iata_code",
	"latitude_deg",
	"longitude_deg",
}

// Load reads the dataset from a file path or an http(s) URL.
func Load(ctx context.Context, src string) (*Dataset, error) {
	rc, err := open(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src, err)
	}
	defer rc.Close()
	ds, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src, err)
	}
	ds.Source = src
	return ds, nil
}

func open(ctx context.Context, src string) (io.ReadCloser, error) {
	if !strings.HasPrefix(src, "http://") && !strings.HasPrefix(src, "https://") {
		return os.Open(src)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch: unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// Parse reads CSV with a header row. Rows whose coordinates do not parse are
// dropped and counted; a structurally broken file is an error.
func Parse(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty csv")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}
	var (
		records []Record
		dropped int
	)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		field := func(col int) string {
			i := idx[col]
			if i >= len(row) {
				return ""
			}
			return row[i]
		}
		rec, err := NewRecord(Raw{
			ID:        field(0),
			Name:      field(1),
			Type:      field(2),
			City:      field(3),
			Country:   field(4),
			Region:    field(5),
			Continent: field(6),
			IATA:      field(7),
			Lat:       field(8),
			Lon:       field(9),
		})
		if err != nil {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	ds := NewDataset(records)
	ds.Dropped = dropped
	return ds, nil
}

// columnIndex maps each of Columns to its position in header.
func columnIndex(header []string) ([]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, ok := pos[h]; !ok {
			pos[h] = i
		}
	}
	idx := make([]int, len(Columns))
	for c, name := range Columns {
		i, ok := pos[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
		idx[c] = i
	}
	return idx, nil
}
