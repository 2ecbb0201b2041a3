package api

import (
	"context"
	"encoding/json"

	"github.com/fulldump/box"
	"github.com/google/uuid"

	"github.com/fulldump/annodb/store"
)

func next(ctx context.Context) (map[string]any, error) {
	return navigate(ctx, func(st *store.Store, id uuid.UUID) (*store.Record, error) {
		return st.Next(id)
	})
}

func prev(ctx context.Context) (map[string]any, error) {
	return navigate(ctx, func(st *store.Store, id uuid.UUID) (*store.Record, error) {
		return st.Prev(id)
	})
}

// navigate answers with the neighbour document or an explicit null when the
// entry sits on the list boundary.
func navigate(ctx context.Context, step func(st *store.Store, id uuid.UUID) (*store.Record, error)) (map[string]any, error) {

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

	record, err := step(st, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return map[string]any{"entry": nil}, nil
	}

	return map[string]any{"entry": st.Document(record)}, nil
}
