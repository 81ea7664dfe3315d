package source

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"go-bikeshare/internal/model"
	"io/fs"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite column names, one per CSV column
const (
	sqlStartTime    = "start_time"
	sqlEndTime      = "end_time"
	sqlTripDuration = "trip_duration"
	sqlStartStation = "start_station"
	sqlEndStation   = "end_station"
	sqlUserType     = "user_type"
	sqlGender       = "gender"
	sqlBirthYear    = "birth_year"
)

// SQLiteSource reads a city's trips from one table of a SQLite database.
// The database is opened read-only and closed after every load.
type SQLiteSource struct {
	Path  string
	Table string
}

// NewSQLiteSource creates a loader for table inside the database at path
func NewSQLiteSource(path, table string) *SQLiteSource {
	return &SQLiteSource{Path: path, Table: table}
}

func (s *SQLiteSource) Describe() string {
	return fmt.Sprintf("sqlite:%s#%s", s.Path, s.Table)
}

// Load selects every row of the table in rowid order
func (s *SQLiteSource) Load(ctx context.Context) (*Table, error) {
	// sqlite3 would silently create a missing file
	if _, err := os.Stat(s.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.Path)
		}
		return nil, err
	}

	db, err := sql.Open("sqlite3", "file:"+s.Path+"?mode=ro")
	if err != nil {
		return nil, err
	}
	defer db.Close()

	columns, err := tableColumns(ctx, db, s.Table)
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: table %s in %s", ErrSourceNotFound, s.Table, s.Path)
	}
	for _, name := range []string{sqlStartTime, sqlTripDuration, sqlStartStation, sqlEndStation, sqlUserType} {
		if !columns[name] {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	table := &Table{
		Capabilities: model.Capabilities{
			HasEndTime:   columns[sqlEndTime],
			HasGender:    columns[sqlGender],
			HasBirthYear: columns[sqlBirthYear],
		},
	}

	selected := []string{sqlStartTime, sqlTripDuration, sqlStartStation, sqlEndStation, sqlUserType}
	if table.Capabilities.HasEndTime {
		selected = append(selected, sqlEndTime)
	}
	if table.Capabilities.HasGender {
		selected = append(selected, sqlGender)
	}
	if table.Capabilities.HasBirthYear {
		selected = append(selected, sqlBirthYear)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY rowid`, strings.Join(selected, ", "), quoteIdent(s.Table))
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", s.Table, err)
	}
	defer rows.Close()

	rowNum := 0
	for rows.Next() {
		rowNum++
		trip, err := scanTrip(rows, table.Capabilities)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}
		table.Trips = append(table.Trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return table, nil
}

func scanTrip(rows *sql.Rows, caps model.Capabilities) (model.Trip, error) {
	var (
		startTime, startStation, endStation, userType sql.NullString
		endTime, gender                               sql.NullString
		duration, birthYear                           sql.NullFloat64
	)

	dest := []interface{}{&startTime, &duration, &startStation, &endStation, &userType}
	if caps.HasEndTime {
		dest = append(dest, &endTime)
	}
	if caps.HasGender {
		dest = append(dest, &gender)
	}
	if caps.HasBirthYear {
		dest = append(dest, &birthYear)
	}
	if err := rows.Scan(dest...); err != nil {
		return model.Trip{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	start, err := model.ParseTimestamp(startTime.String)
	if err != nil {
		return model.Trip{}, err
	}
	if !duration.Valid {
		return model.Trip{}, fmt.Errorf("%w: %s is NULL", ErrMalformedRow, sqlTripDuration)
	}

	trip := model.Trip{
		StartTime:    start,
		StartStation: strings.TrimSpace(startStation.String),
		EndStation:   strings.TrimSpace(endStation.String),
		TripDuration: duration.Float64,
		UserType:     strings.TrimSpace(userType.String),
		Gender:       strings.TrimSpace(gender.String),
	}
	if endTime.Valid && strings.TrimSpace(endTime.String) != "" {
		end, err := model.ParseTimestamp(endTime.String)
		if err != nil {
			return model.Trip{}, err
		}
		trip.EndTime = &end
	}
	if birthYear.Valid {
		year := int(birthYear.Float64)
		trip.BirthYear = &year
	}

	return trip, nil
}

// tableColumns returns the column names of table; empty when the table does not exist
func tableColumns(ctx context.Context, db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return nil, fmt.Errorf("reading schema of %s: %w", table, err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		columns[strings.ToLower(name)] = true
	}
	return columns, rows.Err()
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
