package api

import (
	"github.com/fulldump/box"

	"github.com/fulldump/annodb/service"
)

func Build(s service.Servicer, version string) *box.B {

	b := box.NewBox()

	v1 := b.Resource("/v1")
	v1.WithInterceptors(
		injectServicer(s),
	)

	v1.Resource("/stores").
		WithActions(
			box.Get(listStores),
			box.Post(createStore),
		)

	v1.Resource("/stores/{storeName}").
		WithActions(
			box.Get(getStore),
			box.ActionPost(dropStore),
			box.ActionPost(addAnnotation),
			box.ActionPost(addLink),
			box.ActionPost(addGroup),
			box.ActionPost(addGroupMember),
			box.ActionPost(setAttribute),
			box.ActionPost(getAttribute),
			box.ActionPost(getEntry),
			box.ActionPost(deleteEntry),
			box.ActionPost(next),
			box.ActionPost(prev),
			box.ActionPost(find),
			box.ActionPost(coIterate),
			box.ActionPost(size),
			box.ActionPost(createIndex),
			box.ActionPost(dropIndex),
			box.ActionPost(listIndexes),
			box.ActionPost(findBy),
			box.ActionPost(traverseIndex),
		)

	b.Resource("/release").
		WithActions(box.Get(func() string {
			return version
		}))

	return b
}
