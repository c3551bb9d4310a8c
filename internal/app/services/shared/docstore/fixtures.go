package docstore

import (
	"errors"
	"fmt"
	"io"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"
	"os"
	"time"

	"github.com/goccy/go-json"
)

// Fixture documents carry their id under "id" and nested sub-collections
// under "_collections", keyed by sub-collection name.
const (
	fixtureIDField          = "id"
	fixtureCollectionsField = "_collections"
)

type fixtureDocument map[string]interface{}

// LoadFixtures reads a JSON object mapping collection names to document
// arrays into the store. RFC3339 strings are stored as timestamps.
func LoadFixtures(store *MemoryDocumentStore, r io.Reader) error {
	var collections map[string][]fixtureDocument
	if err := json.NewDecoder(r).Decode(&collections); err != nil {
		return exceptions.ErrFixtureLoad(err, "reader")
	}

	for name, docs := range collections {
		if err := putFixtureDocuments(store, []string{name}, docs); err != nil {
			return err
		}
	}
	return nil
}

func LoadFixtureFile(store *MemoryDocumentStore, filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return exceptions.ErrFixtureLoad(err, filename)
	}
	defer file.Close()

	return LoadFixtures(store, file)
}

func putFixtureDocuments(store *MemoryDocumentStore, path []string, docs []fixtureDocument) error {
	for index, raw := range docs {
		id, _ := raw[fixtureIDField].(string)
		if id == "" {
			return exceptions.ErrFixtureLoad(errors.New("document id is missing"), fmt.Sprintf("%v[%d]", path, index))
		}

		data := make(map[string]interface{}, len(raw))
		for field, value := range raw {
			if field == fixtureIDField || field == fixtureCollectionsField {
				continue
			}
			data[field] = fixtureValue(value)
		}

		if err := store.Put(path, models.Document{ID: id, Data: data}); err != nil {
			return err
		}

		subCollections, err := fixtureSubCollections(raw[fixtureCollectionsField])
		if err != nil {
			return exceptions.ErrFixtureLoad(err, fmt.Sprintf("%v/%s", path, id))
		}
		for name, children := range subCollections {
			childPath := append(append([]string{}, path...), id, name)
			if err := putFixtureDocuments(store, childPath, children); err != nil {
				return err
			}
		}
	}
	return nil
}

func fixtureSubCollections(raw interface{}) (map[string][]fixtureDocument, error) {
	if raw == nil {
		return nil, nil
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	var subCollections map[string][]fixtureDocument
	if err := json.Unmarshal(encoded, &subCollections); err != nil {
		return nil, fmt.Errorf(constvars.ErrDevFixtureUnsupportedPath, fixtureCollectionsField)
	}
	return subCollections, nil
}

func fixtureValue(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, v); err == nil {
			return parsed
		}
		return v
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = fixtureValue(item)
		}
		return result
	default:
		return v
	}
}
