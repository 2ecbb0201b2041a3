package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SierraSoftworks/connor"

	"github.com/fulldump/annodb/store"
)

// find streams the matching documents of a type as one JSON object per line.
func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return err
	}

	params := &struct {
		Type            string         `json:"type"`
		IncludeSubtypes bool           `json:"includeSubtypes"`
		Filter          map[string]any `json:"filter"`
		Skip            int64          `json:"skip"`
		Limit           int64          `json:"limit"`
	}{
		Filter: map[string]any{},
		Skip:   0,
		Limit:  1,
	}
	err = json.NewDecoder(r.Body).Decode(params)
	if err != nil {
		return err
	}

	hasFilter := len(params.Filter) > 0

	encoder := json.NewEncoder(w)

	skip := params.Skip
	limit := params.Limit
	var matchErr error
	err = st.GetAll(params.Type, params.IncludeSubtypes, func(record *store.Record) bool {

		if limit == 0 {
			return false
		}

		doc := st.Document(record)

		if hasFilter {
			match, err := connor.Match(params.Filter, flattenDocument(doc))
			if err != nil {
				matchErr = fmt.Errorf("match: %w", err)
				return false
			}
			if !match {
				return true
			}
		}

		if skip > 0 {
			skip--
			return true
		}

		limit--
		encoder.Encode(doc) // todo: handle error here?
		return true
	})
	if err != nil {
		return err
	}

	return matchErr
}
