package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

func envelopeJSON(status int, message string, data interface{}) []byte {
	raw, _ := json.Marshal(map[string]interface{}{
		"status":  status,
		"message": message,
		"data":    data,
	})
	return raw
}

func TestFormValidation(t *testing.T) {
	form := NewMeetingForm(New("http://unused"), &recordingNotifier{}, nil)

	assert.False(t, form.Validate())
	assert.Equal(t, "Agenda is required", form.Errors["agenda"])
	assert.Equal(t, "Location is required", form.Errors["location"])
	assert.Equal(t, "Date and time are required", form.Errors["dateTime"])

	form.Agenda = "Kickoff"
	form.Location = "Room 4"
	form.DateTime = "2026-09-15T10:00:00Z"
	assert.True(t, form.Validate())
	assert.Empty(t, form.Errors)
}

func TestSubmitBlocksInvalidForm(t *testing.T) {
	notifier := &recordingNotifier{}
	form := NewMeetingForm(New("http://unused"), notifier, nil)

	meeting, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Nil(t, meeting)
	require.Len(t, notifier.errors, 1)
	assert.NotEmpty(t, form.Errors)
}

func TestSubmitCreateNotifiesAndNavigates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/meeting/add", r.URL.Path)

		var input MeetingInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "Kickoff", input.Agenda)

		w.WriteHeader(http.StatusCreated)
		w.Write(envelopeJSON(201, "Meeting added successfully", Meeting{
			Id:       "m-1",
			Agenda:   input.Agenda,
			Location: input.Location,
			DateTime: input.DateTime,
		}))
	}))
	defer srv.Close()

	notifier := &recordingNotifier{}
	var navigatedTo string
	form := NewMeetingForm(New(srv.URL), notifier, func(path string) { navigatedTo = path })
	form.Agenda = "Kickoff"
	form.Location = "Room 4"
	form.DateTime = "2026-09-15T10:00:00Z"

	meeting, err := form.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, meeting)
	assert.Equal(t, "m-1", meeting.Id)
	assert.Equal(t, []string{"Meeting added successfully"}, notifier.successes)
	assert.Equal(t, "/meetings", navigatedTo)
}

func TestSubmitUpdateUsesUpdateRoute(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/meeting/update/m-7", r.URL.Path)
		w.Write(envelopeJSON(200, "Meeting updated successfully", Meeting{Id: "m-7"}))
	}))
	defer srv.Close()

	notifier := &recordingNotifier{}
	form := NewMeetingForm(New(srv.URL), notifier, nil)
	form.MeetingId = "m-7"
	form.Agenda = "Renewal call"
	form.Location = "Zoom"
	form.DateTime = "2026-10-01T14:00:00Z"

	meeting, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "m-7", meeting.Id)
	assert.Equal(t, []string{"Meeting updated successfully"}, notifier.successes)
}

func TestSubmitFailureNotifiesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write(envelopeJSON(500, "boom", nil))
	}))
	defer srv.Close()

	notifier := &recordingNotifier{}
	form := NewMeetingForm(New(srv.URL), notifier, nil)
	form.Agenda = "Kickoff"
	form.Location = "Room 4"
	form.DateTime = "2026-09-15T10:00:00Z"

	_, err := form.Submit(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)
	require.Len(t, notifier.errors, 1)
}

func TestLoadPrefillsForm(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/meeting/view/m-3", r.URL.Path)
		w.Write(envelopeJSON(200, "Success get meeting", Meeting{
			Id:       "m-3",
			Agenda:   "Demo",
			Location: "HQ",
			DateTime: "2026-11-11T11:00:00Z",
			Attendes: []Attendee{{Id: "c-1"}, {Id: "c-2"}},
		}))
	}))
	defer srv.Close()

	form := NewMeetingForm(New(srv.URL), &recordingNotifier{}, nil)
	require.NoError(t, form.Load(context.Background(), "m-3"))

	assert.Equal(t, "m-3", form.MeetingId)
	assert.Equal(t, "Demo", form.Agenda)
	assert.Equal(t, []string{"c-1", "c-2"}, form.Attendes)
}

func TestContactsCached(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write(envelopeJSON(200, "ok", []Contact{{Id: "c-1", FirstName: "Alice"}}))
	}))
	defer srv.Close()

	c := New(srv.URL)
	first, err := c.Contacts(context.Background())
	require.NoError(t, err)
	second, err := c.Contacts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}
