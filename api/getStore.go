package api

import (
	"context"

	"github.com/fulldump/box"
)

func getStore(ctx context.Context) (*storeInfo, error) {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return nil, err
	}

	return newStoreInfo(box.GetUrlParameter(ctx, "storeName"), st), nil
}
