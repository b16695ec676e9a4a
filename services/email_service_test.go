package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEmail struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
	Text    string `json:"text"`
}

func newCapturingServer(t *testing.T, status int, captured *capturedEmail, auth *string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/emails", r.URL.Path)
		if auth != nil {
			*auth = r.Header.Get("Authorization")
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		w.WriteHeader(status)
		w.Write([]byte(`{"id":"test"}`))
	}))
}

func TestSendNotification_QuestionEscapesHTML(t *testing.T) {
	var captured capturedEmail
	var auth string
	srv := newCapturingServer(t, http.StatusOK, &captured, &auth)
	defer srv.Close()

	svc := NewEmailService("re_test_key", srv.URL, "noreply@reweight.app", "ops@reweight.app")
	err := svc.SendNotification(Notification{
		Kind:     NotificationQuestion,
		Email:    "x@y.com",
		Question: "<script>alert(1)</script>",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer re_test_key", auth)
	assert.Equal(t, "noreply@reweight.app", captured.From)
	assert.Equal(t, "ops@reweight.app", captured.To)
	assert.Equal(t, "New Question from x@y.com", captured.Subject)
	assert.Contains(t, captured.HTML, "&lt;script&gt;")
	assert.NotContains(t, captured.HTML, "<script>")
}

func TestSendNotification_QuestionKeepsLineBreaks(t *testing.T) {
	var captured capturedEmail
	srv := newCapturingServer(t, http.StatusOK, &captured, nil)
	defer srv.Close()

	svc := NewEmailService("re_test_key", srv.URL, "noreply@reweight.app", "ops@reweight.app")
	err := svc.SendNotification(Notification{
		Kind:     NotificationQuestion,
		Email:    "x@y.com",
		Question: "line one\nline two",
	})

	require.NoError(t, err)
	assert.Contains(t, captured.HTML, "line one<br>line two")
	assert.Contains(t, captured.Text, "line one\nline two")
}

func TestSendNotification_Subscription(t *testing.T) {
	var captured capturedEmail
	srv := newCapturingServer(t, http.StatusOK, &captured, nil)
	defer srv.Close()

	svc := NewEmailService("re_test_key", srv.URL, "noreply@reweight.app", "ops@reweight.app")
	err := svc.SendNotification(Notification{Kind: NotificationSubscription, Email: "a@b.com"})

	require.NoError(t, err)
	assert.Equal(t, "New Subscription - re:weight.", captured.Subject)
	assert.Contains(t, captured.HTML, "a@b.com")
	assert.Contains(t, captured.Text, "a@b.com")
}

func TestSendNotification_MissingAPIKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	svc := NewEmailService("", srv.URL, "noreply@reweight.app", "ops@reweight.app")
	err := svc.SendNotification(Notification{Kind: NotificationSubscription, Email: "a@b.com"})

	assert.Error(t, err)
	assert.False(t, called, "must not hit the provider without an API key")
}

func TestSendNotification_ProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"domain not verified"}`))
	}))
	defer srv.Close()

	svc := NewEmailService("re_test_key", srv.URL, "noreply@reweight.app", "ops@reweight.app")
	err := svc.SendNotification(Notification{Kind: NotificationSubscription, Email: "a@b.com"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "422")
	assert.Contains(t, err.Error(), "domain not verified")
}

func TestBuildNotification_UnknownKind(t *testing.T) {
	_, _, _, err := buildNotification(Notification{Kind: "welcome"})
	assert.Error(t, err)
}
