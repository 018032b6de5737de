// internal/app/system/listview/stats.go
package listview

// Aggregate is one named reduction over a collection.
type Aggregate[T any] struct {
	Name string
	step func(acc float64, rec T) float64
}

// CountWhere counts the records for which pred is true.
func CountWhere[T any](name string, pred func(T) bool) Aggregate[T] {
	return Aggregate[T]{
		Name: name,
		step: func(acc float64, rec T) float64 {
			if pred(rec) {
				return acc + 1
			}
			return acc
		},
	}
}

// CountEq counts the records whose field equals want.
func CountEq[T any](name string, field func(T) string, want string) Aggregate[T] {
	return CountWhere(name, func(rec T) bool { return field(rec) == want })
}

// Sum adds up value over all records.
func Sum[T any](name string, value func(T) float64) Aggregate[T] {
	return Aggregate[T]{
		Name: name,
		step: func(acc float64, rec T) float64 { return acc + value(rec) },
	}
}

// SumWhere adds up value over the records for which pred is true.
func SumWhere[T any](name string, pred func(T) bool, value func(T) float64) Aggregate[T] {
	return Aggregate[T]{
		Name: name,
		step: func(acc float64, rec T) float64 {
			if pred(rec) {
				return acc + value(rec)
			}
			return acc
		},
	}
}

// Stats holds the aggregates computed over one collection.
// Unknown names read as zero.
type Stats struct {
	Count  int
	values map[string]float64
}

// Int returns a named aggregate truncated to an int.
func (s Stats) Int(name string) int { return int(s.values[name]) }

// Float returns a named aggregate.
func (s Stats) Float(name string) float64 { return s.values[name] }

// Compute reduces items with every aggregate in one pass.
// It is defined on an empty collection, where every aggregate is zero.
func Compute[T any](items []T, aggs ...Aggregate[T]) Stats {
	vals := make(map[string]float64, len(aggs))
	for _, a := range aggs {
		vals[a.Name] = 0
	}
	for _, rec := range items {
		for _, a := range aggs {
			vals[a.Name] = a.step(vals[a.Name], rec)
		}
	}
	return Stats{Count: len(items), values: vals}
}
