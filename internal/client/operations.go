package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	internalhttp "github.com/fivetwenty-io/nylas/internal/http"
	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

// sessionFor selects the signing session for a resource kind's namespace.
func (c *Client) sessionFor(desc Descriptor) *internalhttp.Client {
	if desc.Namespace == NamespaceAdmin {
		return c.adminSession
	}

	return c.session
}

// collectionPath builds the collection URL path for a descriptor.
func (c *Client) collectionPath(desc Descriptor) string {
	if desc.Namespace == NamespaceAdmin {
		return "/a/" + c.appID + "/" + desc.Collection
	}

	return "/" + desc.Collection
}

// resourcePath builds the single-resource URL path, optionally with a
// trailing sub-action segment.
func (c *Client) resourcePath(desc Descriptor, id, action string) string {
	path := c.collectionPath(desc) + "/" + id
	if action != "" {
		path += "/" + action
	}

	return path
}

// listResources fetches a collection page. The response body must be a JSON
// array; null elements are silently skipped.
func listResources[T any](ctx context.Context, c *Client, desc Descriptor, params *nylas.QueryParams) ([]T, error) {
	resp, err := c.sessionFor(desc).Get(ctx, c.collectionPath(desc), params.ToValues())
	if err != nil {
		return nil, err
	}

	return decodeList[T](resp.Body)
}

func decodeList[T any](body []byte) ([]T, error) {
	var elements []json.RawMessage

	err := json.Unmarshal(body, &elements)
	if err != nil {
		return nil, fmt.Errorf("parsing list response: %w", err)
	}

	results := make([]T, 0, len(elements))

	for _, element := range elements {
		if string(bytes.TrimSpace(element)) == "null" {
			continue
		}

		var item T

		err = json.Unmarshal(element, &item)
		if err != nil {
			return nil, fmt.Errorf("parsing list element: %w", err)
		}

		results = append(results, item)
	}

	return results, nil
}

// getResource fetches a single resource. Some legacy endpoints answer with
// a one-element array; the first element is used in that case.
func getResource[T any](ctx context.Context, c *Client, desc Descriptor, id string, params *nylas.QueryParams) (*T, error) {
	resp, err := c.sessionFor(desc).Get(ctx, c.resourcePath(desc, id, ""), params.ToValues())
	if err != nil {
		return nil, err
	}

	return decodeOne[T](resp.Body)
}

func decodeOne[T any](body []byte) (*T, error) {
	trimmed := bytes.TrimSpace(body)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var elements []json.RawMessage

		err := json.Unmarshal(trimmed, &elements)
		if err != nil {
			return nil, fmt.Errorf("parsing resource response: %w", err)
		}

		if len(elements) == 0 {
			return nil, nylas.ErrEmptyResponse
		}

		trimmed = elements[0]
	}

	var result T

	err := json.Unmarshal(trimmed, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing resource response: %w", err)
	}

	return &result, nil
}

// getResourceRaw fetches a single resource (optionally a sub-action of it)
// and returns the raw response bytes unparsed.
func getResourceRaw(ctx context.Context, c *Client, desc Descriptor, id, action string, params *nylas.QueryParams, headers map[string]string) ([]byte, error) {
	path := c.resourcePath(desc, id, action)

	resp, err := c.sessionFor(desc).GetWithHeaders(ctx, path, params.ToValues(), headers)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// createResource POSTs a JSON payload to the collection and decodes one
// resource from the response.
func createResource[T any](ctx context.Context, c *Client, desc Descriptor, body interface{}) (*T, error) {
	resp, err := c.sessionFor(desc).Post(ctx, c.collectionPath(desc), body)
	if err != nil {
		return nil, err
	}

	return decodeOne[T](resp.Body)
}

// createResources POSTs a JSON payload and decodes a JSON array response.
func createResources[T any](ctx context.Context, c *Client, desc Descriptor, body interface{}) ([]T, error) {
	resp, err := c.sessionFor(desc).Post(ctx, c.collectionPath(desc), body)
	if err != nil {
		return nil, err
	}

	return decodeList[T](resp.Body)
}

// updateResource PUTs a JSON payload to a single resource.
func updateResource[T any](ctx context.Context, c *Client, desc Descriptor, id string, body interface{}) (*T, error) {
	resp, err := c.sessionFor(desc).Put(ctx, c.resourcePath(desc, id, ""), body)
	if err != nil {
		return nil, err
	}

	return decodeOne[T](resp.Body)
}

// deleteResource DELETEs a single resource. body may be nil; the response
// still passes through validation, so a 404 surfaces as a not-found error.
func deleteResource(ctx context.Context, c *Client, desc Descriptor, id string, body interface{}) error {
	_, err := c.sessionFor(desc).Delete(ctx, c.resourcePath(desc, id, ""), body)

	return err
}

// invokeAction POSTs a JSON payload to {collection}/{id}/{action}.
func invokeAction[T any](ctx context.Context, c *Client, desc Descriptor, id, action string, body interface{}) (*T, error) {
	resp, err := c.sessionFor(desc).Post(ctx, c.resourcePath(desc, id, action), body)
	if err != nil {
		return nil, err
	}

	return decodeOne[T](resp.Body)
}

// uploadMultipart POSTs file content as multipart form data under the
// "file" field and decodes one resource from the response.
func uploadMultipart[T any](ctx context.Context, c *Client, desc Descriptor, filename, contentType string, content []byte) (*T, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, escapeQuotes(filename)))

	if contentType != "" {
		header.Set("Content-Type", contentType)
	}

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}

	_, err = part.Write(content)
	if err != nil {
		return nil, fmt.Errorf("writing file to form: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	resp, err := c.sessionFor(desc).PostRaw(ctx, c.collectionPath(desc), buf.Bytes(), writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	return decodeOne[T](resp.Body)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
