package pipeline

import (
	"go-bikeshare/internal/metrics"
	"go-bikeshare/internal/model"
	"log/slog"
	"time"
)

// Stage names recorded by the Tracker
const (
	StageLoad      = "load"
	StageDerive    = "derive"
	StageFilter    = "filter"
	StagePaginate  = "paginate"
	StageAggregate = "aggregate"
)

// Tracker records stage timings for one query. It is not safe for
// concurrent use; each query owns its own Tracker.
type Tracker struct {
	QueryID string
	stages  []model.StageMetrics
	started map[string]time.Time
	logger  *slog.Logger
	now     func() time.Time
}

// NewTracker creates a tracker for a query
func NewTracker(queryID string, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		QueryID: queryID,
		started: make(map[string]time.Time),
		logger:  logger,
		now:     time.Now,
	}
}

// StartStage marks the start of a stage
func (t *Tracker) StartStage(stage string) {
	t.started[stage] = t.now()
}

// EndStage closes a stage started with StartStage
func (t *Tracker) EndStage(stage string, recordsProcessed int) {
	start, ok := t.started[stage]
	if !ok {
		start = t.now()
	}
	delete(t.started, stage)
	end := t.now()
	t.add(model.StageMetrics{
		Stage:            stage,
		StartTime:        start,
		EndTime:          end,
		Duration:         end.Sub(start),
		RecordsProcessed: int64(recordsProcessed),
	})
}

// GroupComputed records an aggregate group as an "aggregate.<group>" stage
func (t *Tracker) GroupComputed(group string, elapsed time.Duration, rows int) {
	end := t.now()
	t.add(model.StageMetrics{
		Stage:            StageAggregate + "." + group,
		StartTime:        end.Add(-elapsed),
		EndTime:          end,
		Duration:         elapsed,
		RecordsProcessed: int64(rows),
	})
}

func (t *Tracker) add(m model.StageMetrics) {
	t.stages = append(t.stages, m)
	metrics.RecordStage(m.Stage, m.Duration, m.RecordsProcessed)
	t.logger.Debug("stage completed",
		"query_id", t.QueryID,
		"stage", m.Stage,
		"records", m.RecordsProcessed,
		"duration", m.Duration,
	)
}

// Stages returns the recorded stages in completion order
func (t *Tracker) Stages() []model.StageMetrics {
	out := make([]model.StageMetrics, len(t.stages))
	copy(out, t.stages)
	return out
}

// Total sums the duration of all recorded stages
func (t *Tracker) Total() time.Duration {
	var total time.Duration
	for _, s := range t.stages {
		total += s.Duration
	}
	return total
}
