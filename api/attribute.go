package api

import (
	"context"
	"encoding/json"

	"github.com/fulldump/box"
)

func setAttribute(ctx context.Context) (any, error) {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return nil, err
	}

	input := &struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Value any    `json:"value"`
	}{}
	err = json.NewDecoder(box.GetRequest(ctx).Body).Decode(input)
	if err != nil {
		return nil, err
	}

	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	err = st.SetAttribute(id, input.Name, input.Value)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"id":   input.ID,
		"name": input.Name,
	}, nil
}

func getAttribute(ctx context.Context) (any, error) {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return nil, err
	}

	input := &struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}{}
	err = json.NewDecoder(box.GetRequest(ctx).Body).Decode(input)
	if err != nil {
		return nil, err
	}

	id, err := parseID(input.ID)
	if err != nil {
		return nil, err
	}

	value, err := st.GetAttribute(id, input.Name)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"id":    input.ID,
		"name":  input.Name,
		"value": value,
	}, nil
}
