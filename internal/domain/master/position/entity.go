package position

import "time"

type Position struct {
	ID       int64
	Title    string
	FromDate *time.Time
	ToDate   *time.Time
}

// TitleOf falls back to an empty string for unknown or missing ids
func TitleOf(id *int64, positions []Position) string {
	if id == nil {
		return ""
	}
	for _, p := range positions {
		if p.ID == *id {
			return p.Title
		}
	}
	return ""
}
