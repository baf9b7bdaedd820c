package keg

import (
	"cmp"
	"slices"
	"strings"
)

// JoinSep separates merged Classification and Description values.
const JoinSep = " | "

// Columns is the header of the grouped table, in output order.
var Columns = []string{"KO", "Group", "General Classification", "Description"}

// Entry is one KO record with its parent labels.
type Entry struct {
	Group          string
	Classification string
	KO             string
	Description    string
}

// GroupedRow merges every Entry sharing a (KO, Group) pair.
type GroupedRow struct {
	KO             string
	Group          string
	Classification string // distinct values joined by JoinSep
	Description    string // distinct values joined by JoinSep
}

// Record renders the row in Columns order.
func (r GroupedRow) Record() []string {
	return []string{r.KO, r.Group, r.Classification, r.Description}
}

// Group merges entries by (KO, Group). Distinct Classification and
// Description values are joined in first-seen order. Rows are sorted by
// KO, then Group.
func Group(entries []Entry) []GroupedRow {
	type key struct{ ko, group string }
	type merged struct {
		key     key
		classes distinct
		descs   distinct
	}

	var order []*merged
	index := make(map[key]*merged)
	for _, e := range entries {
		k := key{ko: e.KO, group: e.Group}
		m, ok := index[k]
		if !ok {
			m = &merged{key: k}
			index[k] = m
			order = append(order, m)
		}
		m.classes.add(e.Classification)
		m.descs.add(e.Description)
	}

	rows := make([]GroupedRow, 0, len(order))
	for _, m := range order {
		rows = append(rows, GroupedRow{
			KO:             m.key.ko,
			Group:          m.key.group,
			Classification: strings.Join(m.classes.values, JoinSep),
			Description:    strings.Join(m.descs.values, JoinSep),
		})
	}
	slices.SortStableFunc(rows, func(a, b GroupedRow) int {
		if c := cmp.Compare(a.KO, b.KO); c != 0 {
			return c
		}
		return cmp.Compare(a.Group, b.Group)
	})
	return rows
}

// distinct is an insertion-ordered string set.
type distinct struct {
	values []string
	seen   map[string]struct{}
}

func (d *distinct) add(v string) {
	if d.seen == nil {
		d.seen = make(map[string]struct{})
	}
	if _, ok := d.seen[v]; ok {
		return
	}
	d.seen[v] = struct{}{}
	d.values = append(d.values, v)
}
