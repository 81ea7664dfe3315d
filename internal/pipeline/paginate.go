package pipeline

import (
	"go-bikeshare/internal/model"
)

// PageSize is the number of raw rows shown per page
const PageSize = 5

// Paginate returns up to PageSize rows starting at cursor and the cursor of
// the following page. A cursor at or past the end yields an empty page and
// is returned unchanged. Negative cursors start from 0.
func Paginate(rows []model.DerivedTrip, cursor int) ([]model.DerivedTrip, int) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= len(rows) {
		return []model.DerivedTrip{}, cursor
	}
	end := min(cursor+PageSize, len(rows))
	return rows[cursor:end], end
}

// PageAt wraps Paginate into a model.Page
func PageAt(rows []model.DerivedTrip, cursor int) model.Page {
	if cursor < 0 {
		cursor = 0
	}
	page, next := Paginate(rows, cursor)
	return model.Page{
		Rows:   page,
		Cursor: cursor,
		Next:   next,
		Total:  len(rows),
		Done:   next >= len(rows),
	}
}
