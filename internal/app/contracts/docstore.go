package contracts

import (
	"context"
	"mindcare-service/internal/app/models"
	"strings"
)

type FilterOperator string

const (
	FilterOpEqual          FilterOperator = "=="
	FilterOpGreaterOrEqual FilterOperator = ">="
	FilterOpIn             FilterOperator = "in"
	FilterOpArrayContains  FilterOperator = "array-contains"
)

type Filter struct {
	Field string
	Op    FilterOperator
	Value interface{}
}

type Order struct {
	Field      string
	Descending bool
}

// Query addresses a collection by path. Sub-collections use three segments,
// e.g. ["chats", chatID, "messages"]. A zero Limit means unbounded.
type Query struct {
	Path    []string
	Filters []Filter
	OrderBy []Order
	Limit   int
}

func (q Query) PathString() string {
	return strings.Join(q.Path, "/")
}

type DocumentStore interface {
	Find(ctx context.Context, query Query) ([]models.Document, error)
	// SupportsCompoundOrder reports whether multi-field ordering combined
	// with range filters can be served by the store.
	SupportsCompoundOrder() bool
}
