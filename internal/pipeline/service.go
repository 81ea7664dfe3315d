package pipeline

import (
	"context"
	"errors"
	"fmt"
	"go-bikeshare/internal/metrics"
	"go-bikeshare/internal/model"
	"go-bikeshare/internal/source"
	"log/slog"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CityLoader resolves a city to its raw trip table
type CityLoader interface {
	Load(ctx context.Context, city model.City) (*source.Table, error)
	Describe(city model.City) string
}

// Service runs queries: load → derive → filter → aggregate or paginate
type Service struct {
	loader    CityLoader
	cache     *lru.Cache[model.City, *model.Dataset]
	logger    *slog.Logger
	observers []Observer
}

// Option configures a Service
type Option func(*Service) error

// WithCache keeps up to size derived datasets in memory. Sources are
// static, so entries stay valid until the process exits.
func WithCache(size int) Option {
	return func(s *Service) error {
		if size <= 0 {
			s.cache = nil
			return nil
		}
		cache, err := lru.New[model.City, *model.Dataset](size)
		if err != nil {
			return fmt.Errorf("creating dataset cache: %w", err)
		}
		s.cache = cache
		return nil
	}
}

// WithLogger sets the service logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		s.logger = logger
		return nil
	}
}

// WithObserver adds an observer notified of every aggregate group timing
func WithObserver(o Observer) Option {
	return func(s *Service) error {
		s.observers = append(s.observers, o)
		return nil
	}
}

// NewService creates a query service over loader
func NewService(loader CityLoader, opts ...Option) (*Service, error) {
	s := &Service{loader: loader, logger: slog.Default()}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Dataset returns the derived dataset for a city, from cache when enabled.
// tracker may be nil.
func (s *Service) Dataset(ctx context.Context, city model.City, tracker *Tracker) (*model.Dataset, error) {
	if tracker == nil {
		tracker = NewTracker("", s.logger)
	}

	if s.cache != nil {
		if ds, ok := s.cache.Get(city); ok {
			metrics.RecordCacheLookup(true)
			return ds, nil
		}
		metrics.RecordCacheLookup(false)
	}

	tracker.StartStage(StageLoad)
	table, err := s.loader.Load(ctx, city)
	if err != nil {
		return nil, err
	}
	tracker.EndStage(StageLoad, len(table.Trips))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tracker.StartStage(StageDerive)
	rows := Derive(table.Trips)
	tracker.EndStage(StageDerive, len(rows))

	ds := &model.Dataset{
		City:         city,
		Source:       s.loader.Describe(city),
		Capabilities: table.Capabilities,
		Rows:         rows,
		LoadedAt:     time.Now().UTC(),
	}
	if s.cache != nil {
		s.cache.Add(city, ds)
	}

	s.logger.Info("dataset loaded",
		"city", city,
		"source", ds.Source,
		"rows", len(rows),
		"has_gender", ds.Capabilities.HasGender,
		"has_birth_year", ds.Capabilities.HasBirthYear,
	)
	return ds, nil
}

// Run computes every stat group for spec. When the filter excludes all
// rows the report is returned with Empty set and no groups.
func (s *Service) Run(ctx context.Context, spec model.FilterSpec) (*model.Report, error) {
	queryID := uuid.New().String()
	tracker := NewTracker(queryID, s.logger)

	ds, err := s.Dataset(ctx, spec.City, tracker)
	if err != nil {
		metrics.RecordQuery(string(spec.City), "error")
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tracker.StartStage(StageFilter)
	rows := Filter(ds.Rows, spec)
	tracker.EndStage(StageFilter, len(rows))

	report := &model.Report{
		QueryID:   queryID,
		Filter:    spec,
		Rows:      len(rows),
		Empty:     len(rows) == 0,
		CreatedAt: time.Now().UTC(),
	}

	if report.Empty {
		metrics.RecordQuery(string(spec.City), "empty")
	} else {
		observers := append([]Observer{tracker}, s.observers...)
		report.Groups = NewEngine(observers...).Aggregate(spec.City, ds.Capabilities, rows)
		metrics.RecordQuery(string(spec.City), "ok")
	}
	report.Stages = tracker.Stages()

	s.logger.Info("query completed",
		"query_id", queryID,
		"filter", spec.String(),
		"rows", report.Rows,
		"empty", report.Empty,
		"groups", len(report.Groups),
		"duration", tracker.Total(),
	)
	return report, nil
}

// Page returns one window of the filtered rows starting at cursor
func (s *Service) Page(ctx context.Context, spec model.FilterSpec, cursor int) (*model.Page, error) {
	tracker := NewTracker(uuid.New().String(), s.logger)

	ds, err := s.Dataset(ctx, spec.City, tracker)
	if err != nil {
		return nil, err
	}

	tracker.StartStage(StageFilter)
	rows := Filter(ds.Rows, spec)
	tracker.EndStage(StageFilter, len(rows))

	tracker.StartStage(StagePaginate)
	page := PageAt(rows, cursor)
	tracker.EndStage(StagePaginate, len(page.Rows))

	return &page, nil
}

// Cities lists every supported city with its source and capabilities.
// A city whose source is missing is reported unavailable, not as an error.
func (s *Service) Cities(ctx context.Context) ([]model.CityInfo, error) {
	infos := make([]model.CityInfo, 0, len(model.Cities))
	for _, city := range model.Cities {
		info := model.CityInfo{
			City:   city,
			Slug:   city.Slug(),
			Source: s.loader.Describe(city),
		}

		ds, err := s.Dataset(ctx, city, nil)
		switch {
		case err == nil:
			info.Available = true
			info.Rows = len(ds.Rows)
			info.Capabilities = ds.Capabilities
		case errors.Is(err, source.ErrSourceNotFound):
			info.Error = err.Error()
		case ctx.Err() != nil:
			return nil, ctx.Err()
		default:
			info.Error = err.Error()
		}
		infos = append(infos, info)
	}
	return infos, nil
}
