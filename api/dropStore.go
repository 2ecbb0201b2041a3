package api

import (
	"context"

	"github.com/fulldump/box"
)

func dropStore(ctx context.Context) (any, error) {

	s := GetServicer(ctx)
	storeName := box.GetUrlParameter(ctx, "storeName")

	err := s.DropStore(storeName)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"name": storeName,
	}, nil
}
