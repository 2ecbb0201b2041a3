package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/annodb/store"
)

func createIndex(ctx context.Context) (*listIndexesItem, error) {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return nil, err
	}

	input := &struct {
		Name       string   `json:"name"`
		Kind       string   `json:"kind"`
		Type       string   `json:"type"`
		Attribute  string   `json:"attribute"`
		Attributes []string `json:"attributes"`
	}{}
	err = json.NewDecoder(box.GetRequest(ctx).Body).Decode(input)
	if err != nil {
		return nil, err
	}

	var options any
	switch input.Kind {
	case "map":
		options = &store.IndexMapOptions{
			Type:      input.Type,
			Attribute: input.Attribute,
		}
	case "btree":
		options = &store.IndexBTreeOptions{
			Type:       input.Type,
			Attributes: input.Attributes,
		}
	default:
		return nil, fmt.Errorf("bad index kind '%s', must be [btree|map]", input.Kind)
	}

	err = st.CreateIndex(input.Name, options)
	if err != nil {
		return nil, err
	}

	box.GetResponse(ctx).WriteHeader(http.StatusCreated)

	return &listIndexesItem{
		Name: input.Name,
		Kind: input.Kind,
	}, nil
}

func dropIndex(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return err
	}

	input := &struct {
		Name string `json:"name"`
	}{}
	err = json.NewDecoder(r.Body).Decode(input)
	if err != nil {
		return err
	}

	err = st.DropIndex(input.Name)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}

	w.WriteHeader(http.StatusNoContent)

	return nil
}

type listIndexesItem struct {
	Name string `json:"name"`
	Kind string `json:"kind,omitempty"`
}

func listIndexes(ctx context.Context) ([]*listIndexesItem, error) {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return nil, err
	}

	result := []*listIndexesItem{}
	for _, name := range st.ListIndexes() {
		result = append(result, &listIndexesItem{
			Name: name,
		})
	}

	return result, nil
}
