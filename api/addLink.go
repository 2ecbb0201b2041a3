package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fulldump/box"
)

func addLink(ctx context.Context) (*entryCreated, error) {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return nil, err
	}

	input := &struct {
		Type   string `json:"type"`
		Parent string `json:"parent"`
		Child  string `json:"child"`
	}{}
	err = json.NewDecoder(box.GetRequest(ctx).Body).Decode(input)
	if err != nil {
		return nil, err
	}

	parent, err := parseID(input.Parent)
	if err != nil {
		return nil, err
	}
	child, err := parseID(input.Child)
	if err != nil {
		return nil, err
	}

	id, position, err := st.AddLink(input.Type, parent, child)
	if err != nil {
		return nil, err
	}

	box.GetResponse(ctx).WriteHeader(http.StatusCreated)

	return &entryCreated{ID: id.String(), Position: &position}, nil
}
