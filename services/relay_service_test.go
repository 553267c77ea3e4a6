package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendSucceedsOnAny2xx(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusNoContent} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		relay := NewRelayService(ts.URL)
		if err := relay.Send(map[string]interface{}{"name": "x"}); err != nil {
			t.Errorf("status %d: unexpected error %v", status, err)
		}
		ts.Close()
	}
}

func TestSendFailsOnNon2xx(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer ts.Close()

	relay := NewRelayService(ts.URL)
	if err := relay.Send(map[string]interface{}{"name": "x"}); err == nil {
		t.Error("expected an error for a 403 response")
	}
}

func TestSendFailsOnTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close() // nothing listening any more

	relay := NewRelayService(ts.URL)
	if err := relay.Send(map[string]interface{}{"name": "x"}); err == nil {
		t.Error("expected an error when the relay is unreachable")
	}
}

func TestSendPostsJSONVerbatim(t *testing.T) {
	var (
		gotContentType string
		gotAccept      string
		gotBody        map[string]interface{}
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	relay := NewRelayService(ts.URL)
	payload := map[string]interface{}{
		"name":     "Jane",
		"_subject": "New Enquiry: Jane - Manual",
	}
	if err := relay.Send(payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotContentType != "application/json" || gotAccept != "application/json" {
		t.Errorf("headers = %q / %q", gotContentType, gotAccept)
	}
	if gotBody["name"] != "Jane" || gotBody["_subject"] != "New Enquiry: Jane - Manual" {
		t.Errorf("payload not forwarded verbatim: %v", gotBody)
	}
}
