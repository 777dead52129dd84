package filter

import "cloud.google.com/go/firestore"

type Where struct {
	Path  string
	Op    string
	Value interface{}
}

type OrderBy struct {
	Path      string
	Direction firestore.Direction
}

func Apply(query firestore.Query, where []Where, orderBy []OrderBy) firestore.Query {
	for _, w := range where {
		query = query.Where(w.Path, w.Op, w.Value)
	}
	for _, o := range orderBy {
		query = query.OrderBy(o.Path, o.Direction)
	}
	return query
}
