package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/fulldump/apitest"
)

// Save generates the MD of the tests.
func Save(response *apitest.Response, title, description string) {

	request := response.Request

	s := "# " + title + "\n"
	s += description + "\n\n"

	s += "```sh\n"
	method := "-X " + request.Method + " "
	if request.Method == "GET" {
		method = ""
	}
	s += "curl " + method + "\"https://example.com" + request.URL.Path + "\""
	requestBody := formatJSON(response.BodyRequestString())
	if requestBody != "" {
		s += " \\\n-d '" + requestBody + "'"
	}
	s += "\n```\n\n"

	s += "Response `" + response.Status + "`:\n\n"
	s += "```json\n"
	s += formatJSON(response.BodyString()) + "\n"
	s += "```\n"

	writeFile(strings.ToLower(title)+".md", s)
}

func formatJSON(body string) string {

	var i interface{}

	err := json.Unmarshal([]byte(body), &i)
	if nil != err {
		return body
	}

	bytes, err := json.MarshalIndent(i, "", "    ")
	if nil != err {
		return body
	}

	return string(bytes)
}

func writeFile(filename, text string) {
	if text == "" {
		return
	}
	filename = strings.Replace(filename, " ", "_", -1)
	examplesPath := os.Getenv("API_EXAMPLES_PATH")
	if examplesPath != "" {
		p := path.Join(examplesPath, path.Clean(filename))
		fmt.Println("Saving", p)
		err := os.WriteFile(p, []byte(text), 0666)
		if nil != err {
			fmt.Println("Saving err:", err)
		}
	}
}
