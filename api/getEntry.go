package api

import (
	"context"
	"encoding/json"

	"github.com/fulldump/box"
)

func getEntry(ctx context.Context) (map[string]any, error) {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return nil, err
	}

	input := &struct {
		ID string `json:"id"`
	}{}
	err = json.NewDecoder(box.GetRequest(ctx).Body).Decode(input)
	if err != nil {
		return nil, err
	}

	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	record, _, err := st.GetEntry(id)
	if err != nil {
		return nil, err
	}

	doc := st.Document(record)
	index, err := st.EntryIndex(id)
	if err == nil {
		doc["index"] = index
	}

	return doc, nil
}

func deleteEntry(ctx context.Context) (any, error) {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return nil, err
	}

	input := &struct {
		ID string `json:"id"`
	}{}
	err = json.NewDecoder(box.GetRequest(ctx).Body).Decode(input)
	if err != nil {
		return nil, err
	}

	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	err = st.Delete(id)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"id": input.ID,
	}, nil
}
