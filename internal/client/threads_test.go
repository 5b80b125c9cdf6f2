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

func TestThreadsClient_List(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/threads", request.URL.Path)
		assert.Equal(t, "expanded", request.URL.Query().Get("view"))

		_, _ = writer.Write([]byte(`[
			{"id": "thread-1", "subject": "first", "message_ids": ["msg-1", "msg-2"]}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	threads, err := client.Threads().List(context.Background(), nylas.NewQueryParams().WithView("expanded"))
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, "thread-1", threads[0].ID)
	assert.Equal(t, []string{"msg-1", "msg-2"}, threads[0].MessageIDs)
}

func TestThreadsClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/threads/thread-1", request.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, true, body["starred"])

		_, _ = writer.Write([]byte(`{"id": "thread-1", "starred": true}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	thread, err := client.Threads().Update(context.Background(), "thread-1", map[string]interface{}{"starred": true})
	require.NoError(t, err)
	assert.True(t, thread.Starred)
}
