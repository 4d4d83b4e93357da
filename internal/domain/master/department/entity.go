package department

type Department struct {
	ID          int64
	Name        string
	Description string
}

// NameOf falls back to an empty string for unknown or missing ids
func NameOf(id *int64, departments []Department) string {
	if id == nil {
		return ""
	}
	for _, d := range departments {
		if d.ID == *id {
			return d.Name
		}
	}
	return ""
}
