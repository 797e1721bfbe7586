package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/rtb-client/internal/constants"
	"github.com/fivetwenty-io/rtb-client/internal/http"
	"github.com/fivetwenty-io/rtb-client/pkg/rtb"
)

// resourcePath returns the API path of a resource name.
func resourcePath(name, suffix string) string {
	return constants.APIVersionPath + "/" + name + suffix
}

// listPage fetches one page of a list operation. The collection field of the
// response is named after the resource, e.g. "endpoints"; when the server
// leaves it out the page simply carries no items.
func listPage[T any](ctx context.Context, httpClient *http.Client, path, collection string, params *rtb.ListParams) (*rtb.ListResponse[T], error) {
	err := params.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Get(ctx, path, params.ToValues())
	if err != nil {
		return nil, err
	}

	return decodePage[T](resp.Body, collection)
}

func decodePage[T any](body []byte, collection string) (*rtb.ListResponse[T], error) {
	page := &rtb.ListResponse[T]{}

	if len(bytes.TrimSpace(body)) == 0 {
		return page, nil
	}

	var fields map[string]json.RawMessage

	err := json.Unmarshal(body, &fields)
	if err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	if raw, ok := fields[collection]; ok {
		err = json.Unmarshal(raw, &page.Resources)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", collection, err)
		}
	}

	if raw, ok := fields["nextPageToken"]; ok {
		err = json.Unmarshal(raw, &page.NextPageToken)
		if err != nil {
			return nil, fmt.Errorf("parsing next page token: %w", err)
		}
	}

	return page, nil
}

// getResource fetches and decodes a single resource.
func getResource[T any](ctx context.Context, httpClient *http.Client, name string) (*T, error) {
	if name == "" {
		return nil, rtb.ErrNameRequired
	}

	resp, err := httpClient.Get(ctx, resourcePath(name, ""), nil)
	if err != nil {
		return nil, err
	}

	var resource T

	err = json.Unmarshal(resp.Body, &resource)
	if err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return &resource, nil
}
