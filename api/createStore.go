package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fulldump/box"
)

func createStore(ctx context.Context) (*storeInfo, error) {

	s := GetServicer(ctx)

	input := &struct {
		Name string `json:"name"`
	}{}
	err := json.NewDecoder(box.GetRequest(ctx).Body).Decode(input)
	if err != nil {
		return nil, err
	}

	st, err := s.CreateStore(input.Name)
	if err != nil {
		return nil, err
	}

	box.GetResponse(ctx).WriteHeader(http.StatusCreated)

	return newStoreInfo(input.Name, st), nil
}
