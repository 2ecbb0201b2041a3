package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fulldump/annodb/store"
)

// coIterate streams the entries of several interval types merged by text
// position, one JSON object per line.
func coIterate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return err
	}

	params := &struct {
		Types []string `json:"types"`
	}{}
	err = json.NewDecoder(r.Body).Decode(params)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)

	return st.CoIterate(params.Types, func(record *store.Record) bool {
		encoder.Encode(st.Document(record)) // todo: handle error here?
		return true
	})
}
