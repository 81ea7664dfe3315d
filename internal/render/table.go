// Package render prints reports, row pages and city listings as terminal tables
package render

import (
	"fmt"
	"go-bikeshare/internal/model"
	"go-bikeshare/internal/pipeline"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// EmptyMessage is printed instead of statistics when the filter matched nothing
const EmptyMessage = "No data available for the selected filters."

const timeLayout = "2006-01-02 15:04:05"

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := newTable(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// Report writes one table per stat group followed by its elapsed time
func Report(w io.Writer, report *model.Report) error {
	fmt.Fprintf(w, "Filters: %s, month %s, day %s\n", report.Filter.City.Title(), report.Filter.Month, report.Filter.Weekday)

	if report.Empty {
		fmt.Fprintln(w, EmptyMessage)
		return nil
	}

	fmt.Fprintf(w, "Trips: %d\n", report.Rows)
	for _, g := range report.Groups {
		fmt.Fprintf(w, "\nCalculating %s...\n\n", g.Title)

		var rows [][]string
		for _, r := range g.Results {
			rows = append(rows, resultRows(g.Name, r)...)
		}
		if err := renderTable(w, []string{"Statistic", "Value"}, rows); err != nil {
			return fmt.Errorf("rendering %s: %w", g.Name, err)
		}
		fmt.Fprintf(w, "\nThis took %s seconds.\n", seconds(g.Elapsed))
	}
	return nil
}

func resultRows(group string, r model.StatResult) [][]string {
	switch {
	case r.Unavailable:
		return [][]string{{r.Label, r.Note}}
	case r.Distribution != nil:
		rows := [][]string{{r.Label, ""}}
		for _, vc := range r.Distribution {
			rows = append(rows, []string{"  " + vc.Value, strconv.Itoa(vc.Count)})
		}
		return rows
	}

	value := FormatValue(r.Value)
	if group == pipeline.GroupDuration {
		value += " seconds"
	}
	return [][]string{{r.Label, value}}
}

// FormatValue renders a scalar statistic
func FormatValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', 2, 64)
	case time.Duration:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func seconds(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}

// Page writes one window of raw rows
func Page(w io.Writer, page *model.Page) error {
	if len(page.Rows) == 0 {
		fmt.Fprintln(w, "No more rows.")
		return nil
	}

	header := []string{"Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type", "Gender", "Birth Year"}
	rows := make([][]string, 0, len(page.Rows))
	for _, r := range page.Rows {
		end := ""
		if r.EndTime != nil {
			end = r.EndTime.Format(timeLayout)
		}
		birth := ""
		if r.BirthYear != nil {
			birth = strconv.Itoa(*r.BirthYear)
		}
		rows = append(rows, []string{
			r.StartTime.Format(timeLayout),
			end,
			FormatValue(r.TripDuration),
			r.StartStation,
			r.EndStation,
			r.UserType,
			r.Gender,
			birth,
		})
	}
	if err := renderTable(w, header, rows); err != nil {
		return err
	}
	fmt.Fprintf(w, "Rows %d-%d of %d\n", page.Cursor+1, page.Cursor+len(page.Rows), page.Total)
	return nil
}

// Cities writes the source and capabilities of every city
func Cities(w io.Writer, infos []model.CityInfo) error {
	rows := make([][]string, 0, len(infos))
	for _, c := range infos {
		status := "ok"
		if !c.Available {
			status = "unavailable"
		}
		rows = append(rows, []string{
			c.City.Title(),
			c.Source,
			status,
			strconv.Itoa(c.Rows),
			optionalColumns(c.Capabilities),
		})
	}
	return renderTable(w, []string{"City", "Source", "Status", "Rows", "Optional Columns"}, rows)
}

func optionalColumns(caps model.Capabilities) string {
	var cols []string
	if caps.HasEndTime {
		cols = append(cols, "end time")
	}
	if caps.HasGender {
		cols = append(cols, "gender")
	}
	if caps.HasBirthYear {
		cols = append(cols, "birth year")
	}
	if len(cols) == 0 {
		return "-"
	}
	return strings.Join(cols, ", ")
}
