package service

import (
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// Acceptance traverses the public API of one store: every alternative starts
// from the state of its parent and mutates its own copy of the world.
func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Create store", func(a *biff.A) {
		resp := apiRequest("POST", "/stores").
			WithBodyJson(JSON{
				"name": "my-docs",
			}).Do()
		Save(resp, "Create store", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		biff.AssertEqualJson(resp.BodyJson(), JSON{
			"name":    "my-docs",
			"total":   0,
			"types":   []interface{}{},
			"indexes": []interface{}{},
		})

		a.Alternative("Retrieve store", func(a *biff.A) {
			resp := apiRequest("GET", "/stores/my-docs").Do()
			Save(resp, "Retrieve store", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"name":    "my-docs",
				"total":   0,
				"types":   []interface{}{},
				"indexes": []interface{}{},
			})
		})

		a.Alternative("List stores", func(a *biff.A) {
			resp := apiRequest("GET", "/stores").Do()
			Save(resp, "List stores", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{
				{
					"name":    "my-docs",
					"total":   0,
					"types":   []interface{}{},
					"indexes": []interface{}{},
				},
			})
		})

		a.Alternative("Create store again - conflict", func(a *biff.A) {
			resp := apiRequest("POST", "/stores").
				WithBodyJson(JSON{
					"name": "my-docs",
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusConflict)
		})

		a.Alternative("Drop store", func(a *biff.A) {
			resp := apiRequest("POST", "/stores/my-docs:dropStore").Do()
			Save(resp, "Drop store", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			a.Alternative("Get dropped store", func(a *biff.A) {
				resp := apiRequest("GET", "/stores/my-docs").Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})
		})

		a.Alternative("Add annotations", func(a *biff.A) {

			resp := apiRequest("POST", "/stores/my-docs:addAnnotation").
				WithBodyJson(JSON{
					"type":  "Token",
					"begin": 6,
					"end":   9,
				}).Do()
			Save(resp, "Add annotation", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			second := resp.BodyJsonMap()["id"].(string)

			resp = apiRequest("POST", "/stores/my-docs:addAnnotation").
				WithBodyJson(JSON{
					"type":  "Token",
					"begin": 0,
					"end":   5,
				}).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusCreated)
			first := resp.BodyJsonMap()["id"].(string)

			a.Alternative("Get entry", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-docs:getEntry").
					WithBodyJson(JSON{
						"id": second,
					}).Do()
				Save(resp, "Get entry", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"id":    second,
					"type":  "Token",
					"begin": 6,
					"end":   9,
					"index": 1, // (0,5) sorts before (6,9)
					"attributes": JSON{
						"pos":   nil,
						"lemma": nil,
					},
				})
			})

			a.Alternative("Get entry - unknown id", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-docs:getEntry").
					WithBodyJson(JSON{
						"id": "b6c0e4d6-2674-4d5e-b4e5-b05c8ae466c8",
					}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Set and get attribute", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-docs:setAttribute").
					WithBodyJson(JSON{
						"id":    first,
						"name":  "pos",
						"value": "NOUN",
					}).Do()
				Save(resp, "Set attribute", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)

				resp = apiRequest("POST", "/stores/my-docs:getAttribute").
					WithBodyJson(JSON{
						"id":   first,
						"name": "pos",
					}).Do()
				Save(resp, "Get attribute", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"id":    first,
					"name":  "pos",
					"value": "NOUN",
				})

				a.Alternative("Find with filter", func(a *biff.A) {
					resp := apiRequest("POST", "/stores/my-docs:find").
						WithBodyJson(JSON{
							"type": "Token",
							"filter": JSON{
								"pos": "NOUN",
							},
							"limit": 10,
						}).Do()
					Save(resp, "Find", ``)

					biff.AssertEqual(resp.StatusCode, http.StatusOK)
					biff.AssertEqualJson(resp.BodyJson(), JSON{
						"id":    first,
						"type":  "Token",
						"begin": 0,
						"end":   5,
						"attributes": JSON{
							"pos":   "NOUN",
							"lemma": nil,
						},
					})
				})
			})

			a.Alternative("Set unknown attribute", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-docs:setAttribute").
					WithBodyJson(JSON{
						"id":    first,
						"name":  "color",
						"value": "blue",
					}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})

			a.Alternative("Next and prev", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-docs:next").
					WithBodyJson(JSON{
						"id": first,
					}).Do()
				Save(resp, "Next entry", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				entry := resp.BodyJsonMap()["entry"].(map[string]interface{})
				biff.AssertEqual(entry["id"], second)

				resp = apiRequest("POST", "/stores/my-docs:prev").
					WithBodyJson(JSON{
						"id": first,
					}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"entry": nil,
				})
			})

			a.Alternative("Size", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-docs:size").
					WithBodyJson(JSON{
						"type": "Token",
					}).Do()
				Save(resp, "Size", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"type":  "Token",
					"total": 2,
				})

				resp = apiRequest("POST", "/stores/my-docs:size").
					WithBodyJson(JSON{}).Do()

				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"total": 2,
				})
			})

			a.Alternative("Size - unknown type", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-docs:size").
					WithBodyJson(JSON{
						"type": "Paragraph",
					}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Delete entry", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-docs:deleteEntry").
					WithBodyJson(JSON{
						"id": first,
					}).Do()
				Save(resp, "Delete entry", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)

				a.Alternative("Get deleted entry", func(a *biff.A) {
					resp := apiRequest("POST", "/stores/my-docs:getEntry").
						WithBodyJson(JSON{
							"id": first,
						}).Do()

					biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
				})
			})

			a.Alternative("CoIterate", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-docs:coIterate").
					WithBodyJson(JSON{
						"types": []string{"Token"},
					}).Do()
				Save(resp, "CoIterate", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
				biff.AssertEqual(len(lines), 2)
				biff.AssertTrue(strings.Contains(lines[0], `"begin":0`))
				biff.AssertTrue(strings.Contains(lines[1], `"begin":6`))
			})

			a.Alternative("Add link", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-docs:addLink").
					WithBodyJson(JSON{
						"type":   "Dependency",
						"parent": first,
						"child":  second,
					}).Do()
				Save(resp, "Add link", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusCreated)
				body := resp.BodyJsonMap()
				biff.AssertEqual(body["position"], 0.0)

				a.Alternative("Get link", func(a *biff.A) {
					resp := apiRequest("POST", "/stores/my-docs:getEntry").
						WithBodyJson(JSON{
							"id": body["id"],
						}).Do()

					biff.AssertEqual(resp.StatusCode, http.StatusOK)
					link := resp.BodyJsonMap()
					biff.AssertEqual(link["parent"], first)
					biff.AssertEqual(link["child"], second)
				})
			})

			a.Alternative("Add link - dangling reference", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-docs:addLink").
					WithBodyJson(JSON{
						"type":   "Dependency",
						"parent": first,
						"child":  "b6c0e4d6-2674-4d5e-b4e5-b05c8ae466c8",
					}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})

			a.Alternative("Add group with members", func(a *biff.A) {
				resp := apiRequest("POST", "/stores/my-docs:addGroup").
					WithBodyJson(JSON{
						"type":       "CoreferenceGroup",
						"memberType": "Token",
					}).Do()
				Save(resp, "Add group", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusCreated)
				group := resp.BodyJsonMap()["id"].(string)

				resp = apiRequest("POST", "/stores/my-docs:addGroupMember").
					WithBodyJson(JSON{
						"group":  group,
						"member": first,
					}).Do()
				Save(resp, "Add group member", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)

				resp = apiRequest("POST", "/stores/my-docs:getEntry").
					WithBodyJson(JSON{
						"id": group,
					}).Do()

				biff.AssertEqualJson(resp.BodyJsonMap()["members"], []string{first})
			})

			a.Alternative("Unique index", func(a *biff.A) {

				apiRequest("POST", "/stores/my-docs:setAttribute").
					WithBodyJson(JSON{"id": first, "name": "lemma", "value": "run"}).Do()
				apiRequest("POST", "/stores/my-docs:setAttribute").
					WithBodyJson(JSON{"id": second, "name": "lemma", "value": "walk"}).Do()

				resp := apiRequest("POST", "/stores/my-docs:createIndex").
					WithBodyJson(JSON{
						"name":      "by-lemma",
						"kind":      "map",
						"type":      "Token",
						"attribute": "lemma",
					}).Do()
				Save(resp, "Create index", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusCreated)

				a.Alternative("Find by indexed value", func(a *biff.A) {
					resp := apiRequest("POST", "/stores/my-docs:findBy").
						WithBodyJson(JSON{
							"index": "by-lemma",
							"value": "walk",
						}).Do()
					Save(resp, "Find by", ``)

					biff.AssertEqual(resp.StatusCode, http.StatusOK)
					biff.AssertEqual(resp.BodyJsonMap()["id"], second)
				})

				a.Alternative("List indexes", func(a *biff.A) {
					resp := apiRequest("POST", "/stores/my-docs:listIndexes").
						WithBodyJson(JSON{}).Do()
					Save(resp, "List indexes", ``)

					biff.AssertEqual(resp.StatusCode, http.StatusOK)
					biff.AssertEqualJson(resp.BodyJson(), []JSON{
						{"name": "by-lemma"},
					})
				})

				a.Alternative("Drop index", func(a *biff.A) {
					resp := apiRequest("POST", "/stores/my-docs:dropIndex").
						WithBodyJson(JSON{
							"name": "by-lemma",
						}).Do()

					biff.AssertEqual(resp.StatusCode, http.StatusNoContent)
				})
			})

			a.Alternative("Ordered index", func(a *biff.A) {

				apiRequest("POST", "/stores/my-docs:setAttribute").
					WithBodyJson(JSON{"id": first, "name": "lemma", "value": "run"}).Do()
				apiRequest("POST", "/stores/my-docs:setAttribute").
					WithBodyJson(JSON{"id": second, "name": "lemma", "value": "walk"}).Do()

				resp := apiRequest("POST", "/stores/my-docs:createIndex").
					WithBodyJson(JSON{
						"name":       "lemmas",
						"kind":       "btree",
						"type":       "Token",
						"attributes": []string{"lemma"},
					}).Do()

				biff.AssertEqual(resp.StatusCode, http.StatusCreated)

				resp = apiRequest("POST", "/stores/my-docs:traverseIndex").
					WithBodyJson(JSON{
						"index":   "lemmas",
						"reverse": true,
					}).Do()
				Save(resp, "Traverse index", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				lines := strings.Split(strings.TrimSpace(resp.BodyString()), "\n")
				biff.AssertEqual(len(lines), 2)
				biff.AssertTrue(strings.Contains(lines[0], second))
				biff.AssertTrue(strings.Contains(lines[1], first))
			})
		})

		a.Alternative("Add annotation - unknown type", func(a *biff.A) {
			resp := apiRequest("POST", "/stores/my-docs:addAnnotation").
				WithBodyJson(JSON{
					"type":  "Paragraph",
					"begin": 0,
					"end":   10,
				}).Do()

			biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
		})
	})
}
