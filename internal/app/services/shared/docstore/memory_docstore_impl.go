package docstore

import (
	"context"
	"errors"
	"mindcare-service/internal/app/contracts"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"
	"sort"
	"sync"
)

var errCompoundOrderUnsupported = errors.New("compound ordering is not supported by this store")

// MemoryDocumentStore keeps collections in process. Ordering follows the
// managed store: documents missing an ordered field are left out of ordered
// results.
type MemoryDocumentStore struct {
	mu                    sync.RWMutex
	collections           map[string][]models.Document
	supportsCompoundOrder bool
}

func NewMemoryDocumentStore(supportsCompoundOrder bool) *MemoryDocumentStore {
	return &MemoryDocumentStore{
		collections:           make(map[string][]models.Document),
		supportsCompoundOrder: supportsCompoundOrder,
	}
}

func (s *MemoryDocumentStore) SupportsCompoundOrder() bool {
	return s.supportsCompoundOrder
}

// Put inserts doc into the collection at path, replacing a document with the
// same id.
func (s *MemoryDocumentStore) Put(path []string, doc models.Document) error {
	query := contracts.Query{Path: path}
	if err := validatePath(path); err != nil {
		return exceptions.ErrDocstoreInvalidPath(err, query.PathString())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := query.PathString()
	docs := s.collections[key]
	for i := range docs {
		if docs[i].ID == doc.ID {
			docs[i] = copyDocument(doc)
			return nil
		}
	}
	s.collections[key] = append(docs, copyDocument(doc))
	return nil
}

func (s *MemoryDocumentStore) Find(ctx context.Context, query contracts.Query) ([]models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, exceptions.ErrDocstoreQuery(err, query.PathString())
	}
	if err := validatePath(query.Path); err != nil {
		return nil, exceptions.ErrDocstoreInvalidPath(err, query.PathString())
	}
	if len(query.OrderBy) > 1 && !s.supportsCompoundOrder {
		return nil, exceptions.ErrDocstoreQuery(errCompoundOrderUnsupported, query.PathString())
	}

	s.mu.RLock()
	stored := s.collections[query.PathString()]
	matched := make([]models.Document, 0, len(stored))
	for _, doc := range stored {
		ok, err := matchesFilters(doc, query.Filters)
		if err != nil {
			s.mu.RUnlock()
			return nil, err
		}
		if ok && hasOrderFields(doc, query.OrderBy) {
			matched = append(matched, copyDocument(doc))
		}
	}
	s.mu.RUnlock()

	if len(query.OrderBy) > 0 {
		sort.SliceStable(matched, func(i, j int) bool {
			return lessByOrder(matched[i], matched[j], query.OrderBy)
		})
	}

	if query.Limit > 0 && len(matched) > query.Limit {
		matched = matched[:query.Limit]
	}
	return matched, nil
}

func validatePath(path []string) error {
	if len(path) == 0 || len(path)%2 == 0 {
		return errors.New("collection path must have an odd number of segments")
	}
	for _, segment := range path {
		if segment == "" {
			return errors.New("collection path contains an empty segment")
		}
	}
	return nil
}

func matchesFilters(doc models.Document, filters []contracts.Filter) (bool, error) {
	for _, filter := range filters {
		value := fieldValue(doc, filter.Field)

		switch filter.Op {
		case contracts.FilterOpEqual:
			if !valuesEqual(value, filter.Value) {
				return false, nil
			}
		case contracts.FilterOpGreaterOrEqual:
			result, ok := compareValues(value, filter.Value)
			if !ok || result < 0 {
				return false, nil
			}
		case contracts.FilterOpIn:
			candidates, ok := toSlice(filter.Value)
			if !ok {
				return false, exceptions.ErrDocstoreInvalidFilter(errors.New("'in' requires a list value"), string(filter.Op))
			}
			if !containsValue(candidates, value) {
				return false, nil
			}
		case contracts.FilterOpArrayContains:
			elements, ok := toSlice(value)
			if !ok || !containsValue(elements, filter.Value) {
				return false, nil
			}
		default:
			return false, exceptions.ErrDocstoreInvalidFilter(errors.New(constvars.ErrDevInvalidInput), string(filter.Op))
		}
	}
	return true, nil
}

func containsValue(values []interface{}, target interface{}) bool {
	for _, v := range values {
		if valuesEqual(v, target) {
			return true
		}
	}
	return false
}

func fieldValue(doc models.Document, field string) interface{} {
	if field == "id" {
		return doc.ID
	}
	if doc.Data == nil {
		return nil
	}
	return doc.Data[field]
}

func hasOrderFields(doc models.Document, orders []contracts.Order) bool {
	for _, order := range orders {
		if fieldValue(doc, order.Field) == nil {
			return false
		}
	}
	return true
}

func lessByOrder(a, b models.Document, orders []contracts.Order) bool {
	for _, order := range orders {
		result, ok := compareValues(fieldValue(a, order.Field), fieldValue(b, order.Field))
		if !ok || result == 0 {
			continue
		}
		if order.Descending {
			return result > 0
		}
		return result < 0
	}
	return false
}

func copyDocument(doc models.Document) models.Document {
	data := make(map[string]interface{}, len(doc.Data))
	for k, v := range doc.Data {
		data[k] = v
	}
	return models.Document{ID: doc.ID, Data: data}
}
