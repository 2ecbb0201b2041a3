package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/fulldump/box"
)

func addGroup(ctx context.Context) (*entryCreated, error) {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return nil, err
	}

	input := &struct {
		Type       string `json:"type"`
		MemberType string `json:"memberType"`
	}{}
	err = json.NewDecoder(box.GetRequest(ctx).Body).Decode(input)
	if err != nil {
		return nil, err
	}

	id, position, err := st.AddGroup(input.Type, input.MemberType)
	if err != nil {
		return nil, err
	}

	box.GetResponse(ctx).WriteHeader(http.StatusCreated)

	return &entryCreated{ID: id.String(), Position: &position}, nil
}

func addGroupMember(ctx context.Context) (any, error) {

	st, err := getStoreFromContext(ctx)
	if err != nil {
		return nil, err
	}

	input := &struct {
		Group  string `json:"group"`
		Member string `json:"member"`
	}{}
	err = json.NewDecoder(box.GetRequest(ctx).Body).Decode(input)
	if err != nil {
		return nil, err
	}

	group, err := parseID(input.Group)
	if err != nil {
		return nil, err
	}
	member, err := parseID(input.Member)
	if err != nil {
		return nil, err
	}

	err = st.AddGroupMember(group, member)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"group":  input.Group,
		"member": input.Member,
	}, nil
}
