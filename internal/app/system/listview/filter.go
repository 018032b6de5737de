// internal/app/system/listview/filter.go
package listview

import (
	"strings"

	"golang.org/x/text/cases"
)

// All is the categorical filter value that disables the predicate.
const All = "all"

// FilterState is the set of active predicate values for one render.
// Categories maps a category name to its selected value.
type FilterState struct {
	Search     string
	Categories map[string]string
}

// Value returns the selected value for a category, or All when unset.
func (st FilterState) Value(name string) string {
	if v, ok := st.Categories[name]; ok && v != "" {
		return v
	}
	return All
}

// IsZero reports whether no predicate is active.
func (st FilterState) IsZero() bool {
	if strings.TrimSpace(st.Search) != "" {
		return false
	}
	for _, v := range st.Categories {
		if v != "" && v != All {
			return false
		}
	}
	return true
}

// Option is one selectable value of a category filter.
type Option struct {
	Value string
	Label string
}

// Category is a categorical equality filter over one field.
type Category[T any] struct {
	Name    string // query parameter name
	Label   string // label of the "all" option
	Options []Option
	Value   func(T) string
}

// Filters describes how a page filters its collection.
// Search matches when any SearchFields value contains the term,
// ignoring case only: accents and other marks must match. Every category
// must match exactly.
type Filters[T any] struct {
	SearchFields []func(T) string
	Categories   []Category[T]
}

// Apply returns the records of items that satisfy every active predicate
// in st, in their original order. It does not modify items.
func (f Filters[T]) Apply(items []T, st FilterState) []T {
	// A Caser is stateful, so each Apply gets its own.
	fold := cases.Fold()
	term := fold.String(strings.TrimSpace(st.Search))

	type active struct {
		want  string
		value func(T) string
	}
	var cats []active
	for _, c := range f.Categories {
		v := st.Value(c.Name)
		if v == All {
			continue
		}
		cats = append(cats, active{want: v, value: c.Value})
	}

	out := make([]T, 0, len(items))
	for _, rec := range items {
		if term != "" && !f.matchesSearch(rec, term, fold) {
			continue
		}
		ok := true
		for _, c := range cats {
			if c.value(rec) != c.want {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, rec)
		}
	}
	return out
}

func (f Filters[T]) matchesSearch(rec T, folded string, fold cases.Caser) bool {
	for _, field := range f.SearchFields {
		if strings.Contains(fold.String(field(rec)), folded) {
			return true
		}
	}
	return false
}
