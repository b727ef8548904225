package storage

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"bikeshare-explorer/models"
)

// DefaultCities maps the bundled city identifiers to their dataset files
var DefaultCities = map[string]string{
	"chicago":       "chicago.csv",
	"new york city": "new_york_city.csv",
	"washington":    "washington.csv",
}

// Registry resolves a city identifier to its dataset location
type Registry struct {
	dataDir string
	cities  map[string]string
}

// NewRegistry starts from DefaultCities and applies overrides on top
func NewRegistry(dataDir string, overrides map[string]string) *Registry {
	cities := make(map[string]string, len(DefaultCities)+len(overrides))
	for k, v := range DefaultCities {
		cities[k] = v
	}
	for k, v := range overrides {
		cities[normalizeCity(k)] = v
	}
	return &Registry{dataDir: dataDir, cities: cities}
}

// Lookup returns the dataset location for city.
// Relative file names are resolved against the data directory.
func (r *Registry) Lookup(city string) (string, error) {
	loc, ok := r.cities[normalizeCity(city)]
	if !ok {
		return "", fmt.Errorf("%w: %q", models.ErrUnknownCity, city)
	}
	if isPostgresURL(loc) || filepath.IsAbs(loc) {
		return loc, nil
	}
	return filepath.Join(r.dataDir, loc), nil
}

// Has reports whether city is a known identifier
func (r *Registry) Has(city string) bool {
	_, ok := r.cities[normalizeCity(city)]
	return ok
}

// Cities returns the known identifiers, sorted
func (r *Registry) Cities() []string {
	out := make([]string, 0, len(r.cities))
	for k := range r.cities {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}

func isPostgresURL(loc string) bool {
	return strings.HasPrefix(loc, "postgres://") || strings.HasPrefix(loc, "postgresql://")
}
