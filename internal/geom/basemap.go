package geom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadBasemap loads an outline layer drawn under the map markers. The format
// follows the file extension: .geojson/.json or .wkt.
func LoadBasemap(path string) (Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return Data{}, err
	}
	defer f.Close()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".geojson", ".json":
		return ParseGeoJSON(f)
	case ".wkt":
		return ParseWKT(f)
	default:
		return Data{}, fmt.Errorf("unsupported basemap file: %s", ext)
	}
}
