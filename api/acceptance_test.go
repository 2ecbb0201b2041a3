package api

import (
	"os"
	"path"
	"testing"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
	"github.com/fulldump/box"

	"github.com/fulldump/annodb/database"
	"github.com/fulldump/annodb/service"
)

var testOntology = `{
	"name": "acceptance",
	"definitions": [
		{"entry_name": "Token", "kind": "annotation", "attributes": [
			{"name": "pos"},
			{"name": "lemma"}
		]},
		{"entry_name": "Sentence", "kind": "annotation"},
		{"entry_name": "Dependency", "kind": "link"},
		{"entry_name": "CoreferenceGroup", "kind": "group"}
	]
}`

func TestAcceptance(t *testing.T) {

	biff.Alternative("Setup", func(a *biff.A) {

		filename := path.Join(t.TempDir(), "ontology.json")
		os.WriteFile(filename, []byte(testOntology), 0666)

		db := database.NewDatabase(&database.Config{
			Ontology: filename,
		})

		biff.AssertNil(db.Load())
		biff.AssertEqual(db.GetStatus(), database.StatusOperating)

		s := service.NewService(db)

		b := Build(s, "test")
		b.WithInterceptors(
			InterceptorUnavailable(db),
			RecoverFromPanic,
			PrettyErrorInterceptor,
		)

		api := apitest.NewWithHandler(box.Box2Http(b))

		service.Acceptance(a, func(method, path string) *apitest.Request {
			return api.Request(method, "/v1"+path)
		})

	})
}
