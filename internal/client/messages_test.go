package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/nylas/pkg/nylas"
)

func TestMessagesClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/messages", request.URL.Path)
		assert.Equal(t, "GET", request.Method)
		assert.Equal(t, "Bearer access-token", request.Header.Get("Authorization"))
		assert.Equal(t, "alice@example.com", request.URL.Query().Get("from"))
		assert.Equal(t, "10", request.URL.Query().Get("limit"))
		assert.Equal(t, "0", request.URL.Query().Get("offset"))

		_, _ = writer.Write([]byte(`[
			{"id": "msg-1", "subject": "first", "unread": true},
			{"id": "msg-2", "subject": "second", "unread": false}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	params := nylas.NewQueryParams().
		WithLimit(10).
		WithOffset(0).
		WithFilter("from", "alice@example.com")

	messages, err := client.Messages().List(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "msg-1", messages[0].ID)
	assert.Equal(t, "second", messages[1].Subject)
	assert.True(t, messages[0].Unread)
}

func TestMessagesClient_List_SkipsNullElements(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, _ = writer.Write([]byte(`[{"id": "msg-1"}, null, {"id": "msg-2"}]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	messages, err := client.Messages().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "msg-1", messages[0].ID)
	assert.Equal(t, "msg-2", messages[1].ID)
}

func TestMessagesClient_Get(t *testing.T) {
	t.Parallel()

	t.Run("object response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/messages/msg-1", request.URL.Path)

			_, _ = writer.Write([]byte(`{"id": "msg-1", "subject": "hello", "thread_id": "thread-1"}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		message, err := client.Messages().Get(context.Background(), "msg-1", nil)
		require.NoError(t, err)
		assert.Equal(t, "msg-1", message.ID)
		assert.Equal(t, "thread-1", message.ThreadID)
	})

	t.Run("array-wrapped response uses the first element", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`[{"id": "msg-1", "subject": "hello"}]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		message, err := client.Messages().Get(context.Background(), "msg-1", nil)
		require.NoError(t, err)
		assert.Equal(t, "msg-1", message.ID)
	})

	t.Run("empty array response fails", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.Messages().Get(context.Background(), "msg-1", nil)
		require.ErrorIs(t, err, nylas.ErrEmptyResponse)
	})

	t.Run("not found surfaces the error kind", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"message": "Couldn't find message"}`))
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.Messages().Get(context.Background(), "missing", nil)
		require.Error(t, err)
		assert.True(t, nylas.IsNotFound(err))
	})
}

func TestMessagesClient_GetRaw(t *testing.T) {
	t.Parallel()

	raw := "MIME-Version: 1.0\r\nSubject: hello\r\n\r\nbody"

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/messages/msg-1", request.URL.Path)
		assert.Equal(t, "message/rfc822", request.Header.Get("Accept"))

		_, _ = writer.Write([]byte(raw))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	body, err := client.Messages().GetRaw(context.Background(), "msg-1")
	require.NoError(t, err)
	assert.Equal(t, raw, string(body))
}

func TestMessagesClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/messages/msg-1", request.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, false, body["unread"])

		_, _ = writer.Write([]byte(`{"id": "msg-1", "unread": false}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	message, err := client.Messages().Update(context.Background(), "msg-1", map[string]interface{}{"unread": false})
	require.NoError(t, err)
	assert.False(t, message.Unread)
}

func TestMessagesClient_Iterate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		offset := request.URL.Query().Get("offset")
		assert.Equal(t, "50", request.URL.Query().Get("limit"))

		switch offset {
		case "0":
			page := make([]map[string]string, 50)
			for i := range page {
				page[i] = map[string]string{"id": "msg"}
			}

			_ = json.NewEncoder(writer).Encode(page)
		case "50":
			_, _ = writer.Write([]byte(`[{"id": "msg-last"}]`))
		default:
			t.Errorf("unexpected offset %q", offset)
		}
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	it := client.Messages().Iterate(context.Background(), nil)

	messages, err := it.All()
	require.NoError(t, err)
	assert.Len(t, messages, 51)
	assert.Equal(t, "msg-last", messages[50].ID)
}
