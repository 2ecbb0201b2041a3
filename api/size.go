package api

import (
	"context"
	"encoding/json"

	"github.com/fulldump/box"
)

// size counts the entries of one type, or every entry when no type is given.
func size(ctx context.Context) (map[string]any, error) {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return nil, err
	}

	input := &struct {
		Type string `json:"type"`
	}{}
	err = json.NewDecoder(box.GetRequest(ctx).Body).Decode(input)
	if err != nil {
		return nil, err
	}

	if input.Type == "" {
		return map[string]any{"total": st.Len()}, nil
	}

	total, err := st.Size(input.Type)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"type":  input.Type,
		"total": total,
	}, nil
}
