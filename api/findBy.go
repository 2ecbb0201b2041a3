package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/annodb/store"
)

// findBy resolves exactly one document through a unique index.
func findBy(ctx context.Context) (map[string]any, error) {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return nil, err
	}

	input := &struct {
		Index string `json:"index"`
		Value string `json:"value"`
	}{}
	err = json.NewDecoder(box.GetRequest(ctx).Body).Decode(input)
	if err != nil {
		return nil, err
	}

	record, err := st.FindBy(input.Index, input.Value)
	if err != nil {
		return nil, err
	}

	return st.Document(record), nil
}

// traverseIndex streams the documents of an index in index order. The request
// body is handed to the index untouched so each kind keeps its own options.
func traverseIndex(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return err
	}

	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}

	params := &struct {
		Index string `json:"index"`
	}{}
	err = json.Unmarshal(requestBody, params)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)

	return st.TraverseIndex(params.Index, requestBody, func(record *store.Record) bool {
		encoder.Encode(st.Document(record)) // todo: handle error here?
		return true
	})
}
