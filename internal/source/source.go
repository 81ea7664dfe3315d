// Package source loads raw trip tables for a city from CSV files or SQLite tables.
package source

import (
	"context"
	"errors"
	"fmt"
	"go-bikeshare/internal/model"
	"sort"
	"strings"
)

var (
	// ErrSourceNotFound means the backing file or table for a city does not exist
	ErrSourceNotFound = errors.New("source not found")
	// ErrMissingColumn means a required column is absent from the source header
	ErrMissingColumn = errors.New("missing required column")
	// ErrMalformedRow means a cell could not be converted to its column type
	ErrMalformedRow = errors.New("malformed row")
)

// Column names as they appear in the city CSV exports
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var requiredColumns = []string{ColStartTime, ColTripDuration, ColStartStation, ColEndStation, ColUserType}

// Table is the raw result of one load
type Table struct {
	Trips        []model.Trip
	Capabilities model.Capabilities
}

// Loader reads every trip of one source, in source order
type Loader interface {
	Load(ctx context.Context) (*Table, error)
	Describe() string
}

// NewLoader builds a loader for a configured source
func NewLoader(src model.Source) (Loader, error) {
	switch strings.ToLower(src.Type) {
	case "csv":
		return NewCSVSource(src.Path), nil
	case "sqlite", "sqlite3":
		if src.Table == "" {
			return nil, fmt.Errorf("sqlite source %s: table is required", src.Path)
		}
		return NewSQLiteSource(src.Path, src.Table), nil
	default:
		return nil, fmt.Errorf("unknown source type: %s", src.Type)
	}
}

// Registry maps each city to its loader
type Registry struct {
	loaders map[model.City]Loader
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{loaders: make(map[model.City]Loader)}
}

// BuildRegistry creates loaders for every configured city
func BuildRegistry(sources map[model.City]model.Source) (*Registry, error) {
	r := NewRegistry()
	cities := make([]string, 0, len(sources))
	for c := range sources {
		cities = append(cities, string(c))
	}
	sort.Strings(cities)

	for _, c := range cities {
		city := model.City(c)
		loader, err := NewLoader(sources[city])
		if err != nil {
			return nil, fmt.Errorf("city %s: %w", city, err)
		}
		r.Register(city, loader)
	}
	return r, nil
}

// Register sets the loader for a city, replacing any previous one
func (r *Registry) Register(city model.City, loader Loader) {
	r.loaders[city] = loader
}

// Load reads the full table for a city
func (r *Registry) Load(ctx context.Context, city model.City) (*Table, error) {
	loader, ok := r.loaders[city]
	if !ok {
		return nil, fmt.Errorf("%w: no source configured for %s", ErrSourceNotFound, city)
	}
	table, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", city, err)
	}
	return table, nil
}

// Describe returns a short description of a city's source, or "" if unconfigured
func (r *Registry) Describe(city model.City) string {
	if loader, ok := r.loaders[city]; ok {
		return loader.Describe()
	}
	return ""
}
