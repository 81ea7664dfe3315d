package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"go-bikeshare/internal/model"
	"go-bikeshare/pkg/utils"
	"io"
	"io/fs"
	"os"
)

// CSVSource reads one city export file
type CSVSource struct {
	Path string
}

// NewCSVSource creates a CSV loader for path
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Describe() string {
	return "csv:" + s.Path
}

// Load opens the file and parses every row
func (s *CSVSource) Load(ctx context.Context) (*Table, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.Path)
		}
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	return ReadCSV(ctx, file)
}

// columnIndex maps a known column name to its position; -1 when absent
type columnIndex map[string]int

func (c columnIndex) has(name string) bool {
	return c.pos(name) >= 0
}

func (c columnIndex) pos(name string) int {
	if i, ok := c[name]; ok {
		return i
	}
	return -1
}

func (c columnIndex) cell(rec []string, name string) string {
	if i := c.pos(name); i >= 0 && i < len(rec) {
		return rec[i]
	}
	return ""
}

// ReadCSV parses a trip export with a header row. Unknown columns, such
// as the unnamed index column pandas writes, are ignored.
func ReadCSV(ctx context.Context, r io.Reader) (*Table, error) {
	csvReader := csv.NewReader(r)
	csvReader.LazyQuotes = true

	headers, err := csvReader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(columnIndex, len(headers))
	for i, h := range headers {
		cols[utils.CleanHeader(h)] = i
	}
	for _, name := range requiredColumns {
		if !cols.has(name) {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	table := &Table{
		Capabilities: model.Capabilities{
			HasEndTime:   cols.has(ColEndTime),
			HasGender:    cols.has(ColGender),
			HasBirthYear: cols.has(ColBirthYear),
		},
	}

	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := csvReader.Read()
		if err == io.EOF {
			return table, nil
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}

		trip, err := parseCSVRecord(record, cols, table.Capabilities)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		table.Trips = append(table.Trips, trip)
	}
}

func parseCSVRecord(rec []string, cols columnIndex, caps model.Capabilities) (model.Trip, error) {
	start, err := model.ParseTimestamp(cols.cell(rec, ColStartTime))
	if err != nil {
		return model.Trip{}, err
	}

	duration, err := utils.ParseFloat(cols.cell(rec, ColTripDuration))
	if err != nil {
		return model.Trip{}, fmt.Errorf("%w: %s: %v", ErrMalformedRow, ColTripDuration, err)
	}

	trip := model.Trip{
		StartTime:    start,
		StartStation: utils.OptionalString(cols.cell(rec, ColStartStation)),
		EndStation:   utils.OptionalString(cols.cell(rec, ColEndStation)),
		TripDuration: duration,
		UserType:     utils.OptionalString(cols.cell(rec, ColUserType)),
	}

	if caps.HasEndTime {
		if raw := cols.cell(rec, ColEndTime); !utils.IsBlank(raw) {
			end, err := model.ParseTimestamp(raw)
			if err != nil {
				return model.Trip{}, err
			}
			trip.EndTime = &end
		}
	}
	if caps.HasGender {
		trip.Gender = utils.OptionalString(cols.cell(rec, ColGender))
	}
	if caps.HasBirthYear {
		year, err := utils.ParseOptionalInt(cols.cell(rec, ColBirthYear))
		if err != nil {
			return model.Trip{}, fmt.Errorf("%w: %s: %v", ErrMalformedRow, ColBirthYear, err)
		}
		trip.BirthYear = year
	}

	return trip, nil
}
