package model

// InfoColumns is the header of the info-retrieval table, in output order.
var InfoColumns = []string{"Name", "Description", "Class"}

// InfoRow holds the fields extracted from one RawEntry.
// Description and Class are nil when the entry has no DESCRIPTION section.
type InfoRow struct {
	Name        string
	Description *string
	Class       *string
}

// Record renders the row as table fields. Nil fields become empty strings.
func (r InfoRow) Record() []string {
	return []string{r.Name, deref(r.Description), deref(r.Class)}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
