package api

import (
	"context"
)

func listStores(ctx context.Context) ([]*storeInfo, error) {

	s := GetServicer(ctx)

	result := []*storeInfo{}
	for _, name := range s.ListStores() {
		st, err := s.GetStore(name)
		if err != nil {
			continue
		}
		result = append(result, newStoreInfo(name, st))
	}

	return result, nil
}
