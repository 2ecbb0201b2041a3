package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fulldump/box"
)

func addAnnotation(ctx context.Context) (*entryCreated, error) {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return nil, err
	}

	input := &struct {
		Type  string `json:"type"`
		Begin int    `json:"begin"`
		End   int    `json:"end"`
	}{}
	err = json.NewDecoder(box.GetRequest(ctx).Body).Decode(input)
	if err != nil {
		return nil, err
	}

	id, err := st.AddAnnotation(input.Type, input.Begin, input.End)
	if err != nil {
		return nil, err
	}

	box.GetResponse(ctx).WriteHeader(http.StatusCreated)

	return &entryCreated{ID: id.String()}, nil
}
