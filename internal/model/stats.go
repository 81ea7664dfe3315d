package model

import "time"

// ValueCount is one entry of a frequency distribution
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// StatResult is one computed statistic. Exactly one of Value,
// Distribution or Unavailable is meaningful.
type StatResult struct {
	Label        string       `json:"label"`
	Value        interface{}  `json:"value,omitempty"`
	Distribution []ValueCount `json:"distribution,omitempty"`
	Unavailable  bool         `json:"unavailable,omitempty"`
	Note         string       `json:"note,omitempty"`
}

// StatGroup is the output of one aggregate computation, with its timing
type StatGroup struct {
	Name    string        `json:"name"`
	Title   string        `json:"title"`
	Results []StatResult  `json:"results"`
	Elapsed time.Duration `json:"elapsed"`
}

// Result finds a statistic by label
func (g StatGroup) Result(label string) (StatResult, bool) {
	for _, r := range g.Results {
		if r.Label == label {
			return r, true
		}
	}
	return StatResult{}, false
}

// StageMetrics tracks timing for one step of a query
type StageMetrics struct {
	Stage            string        `json:"stage"`
	StartTime        time.Time     `json:"start_time"`
	EndTime          time.Time     `json:"end_time"`
	Duration         time.Duration `json:"duration"`
	RecordsProcessed int64         `json:"records_processed"`
}

// Report is everything one query produced for the display layer
type Report struct {
	QueryID   string         `json:"query_id"`
	Filter    FilterSpec     `json:"filter"`
	Rows      int            `json:"rows"`
	Empty     bool           `json:"empty"`
	Groups    []StatGroup    `json:"groups,omitempty"`
	Stages    []StageMetrics `json:"stages"`
	CreatedAt time.Time      `json:"created_at"`
}

// Group finds a stat group by name
func (r *Report) Group(name string) (StatGroup, bool) {
	for _, g := range r.Groups {
		if g.Name == name {
			return g, true
		}
	}
	return StatGroup{}, false
}

// Page is one window of raw filtered rows
type Page struct {
	Rows   []DerivedTrip `json:"rows"`
	Cursor int           `json:"cursor"`
	Next   int           `json:"next_cursor"`
	Total  int           `json:"total"`
	Done   bool          `json:"done"`
}
