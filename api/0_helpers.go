package api

import (
	"context"
	"fmt"

	"github.com/fulldump/box"
	"github.com/google/uuid"

	"github.com/fulldump/annodb/service"
	"github.com/fulldump/annodb/store"
)

const ContextServicerKey = "a3a542e6-41a3-11f0-bd16-1b2f0f63a21c"

func SetServicer(ctx context.Context, s service.Servicer) context.Context {
	return context.WithValue(ctx, ContextServicerKey, s)
}

func GetServicer(ctx context.Context) service.Servicer {
	return ctx.Value(ContextServicerKey).(service.Servicer) // TODO: can raise panic :D
}

// getStoreFromContext resolves the store named in the URL.
func getStoreFromContext(ctx context.Context) (*store.Store, error) {
	s := GetServicer(ctx)
	storeName := box.GetUrlParameter(ctx, "storeName")
	return s.GetStore(storeName)
}

func parseID(value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid id '%s': %s", value, err.Error())
	}
	return id, nil
}

// flattenDocument merges the attributes into the top level fields, the shape
// filters match against.
func flattenDocument(doc map[string]any) map[string]any {
	flat := map[string]any{}
	for k, v := range doc {
		if k != "attributes" {
			flat[k] = v
		}
	}
	if attributes, ok := doc["attributes"].(map[string]any); ok {
		for k, v := range attributes {
			flat[k] = v
		}
	}
	return flat
}

type entryCreated struct {
	ID       string `json:"id"`
	Position *int   `json:"position,omitempty"`
}

type storeInfo struct {
	Name    string   `json:"name"`
	Total   int      `json:"total"`
	Types   []string `json:"types"`
	Indexes []string `json:"indexes"`
}

func newStoreInfo(name string, st *store.Store) *storeInfo {
	return &storeInfo{
		Name:    name,
		Total:   st.Len(),
		Types:   st.Types(),
		Indexes: st.ListIndexes(),
	}
}
