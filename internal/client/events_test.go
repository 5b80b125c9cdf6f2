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

func TestEventsClient_Create(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/events", request.URL.Path)

		var body nylas.Event
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "Standup", body.Title)
		require.NotNil(t, body.When)
		assert.Equal(t, int64(1700000000), body.When.StartTime)

		body.ID = "event-1"
		_ = json.NewEncoder(writer).Encode(body)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	created, err := client.Events().Create(context.Background(), &nylas.Event{
		CalendarID: "cal-1",
		Title:      "Standup",
		When:       &nylas.EventTime{StartTime: 1700000000, EndTime: 1700001800},
	})
	require.NoError(t, err)
	assert.Equal(t, "event-1", created.ID)
	assert.Equal(t, "Standup", created.Title)
}

func TestEventsClient_Update(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "PUT", request.Method)
		assert.Equal(t, "/events/event-1", request.URL.Path)

		_, _ = writer.Write([]byte(`{"id": "event-1", "title": "Standup (moved)"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	updated, err := client.Events().Update(context.Background(), "event-1", &nylas.Event{Title: "Standup (moved)"})
	require.NoError(t, err)
	assert.Equal(t, "Standup (moved)", updated.Title)
}

func TestEventsClient_RSVP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "POST", request.Method)
		assert.Equal(t, "/send-rsvp", request.URL.Path)

		var body nylas.RSVPRequest
		require.NoError(t, json.NewDecoder(request.Body).Decode(&body))
		assert.Equal(t, "event-1", body.EventID)
		assert.Equal(t, "yes", body.Status)
		assert.Equal(t, "see you there", body.Comment)

		_, _ = writer.Write([]byte(`{"id": "event-1", "title": "Dinner", "status": "confirmed"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	event, err := client.Events().RSVP(context.Background(), &nylas.RSVPRequest{
		EventID: "event-1",
		Status:  "yes",
		Comment: "see you there",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dinner", event.Title)
	assert.Equal(t, "confirmed", event.Status)
}

func TestEventsClient_Delete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "DELETE", request.Method)
		assert.Equal(t, "/events/event-1", request.URL.Path)

		_, _ = writer.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	require.NoError(t, client.Events().Delete(context.Background(), "event-1"))
}
