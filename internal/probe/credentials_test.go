package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCredentialChecker_Accepted(t *testing.T) {
	var gotToken, gotUser string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		gotToken = r.PostFormValue("token")
		gotUser = r.PostFormValue("user")
		w.WriteHeader(200)
	}))
	defer ts.Close()

	c := NewCredentialChecker("uk", "tok")
	c.Endpoint = ts.URL

	res := c.Check(context.Background())
	if !res.Success {
		t.Fatalf("expected success: %+v", res)
	}
	if gotToken != "tok" || gotUser != "uk" {
		t.Fatalf("credentials not posted: token=%q user=%q", gotToken, gotUser)
	}
}

func TestCredentialChecker_Rejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(400)
		_, _ = w.Write([]byte(`{"user":"invalid","status":0}`))
	}))
	defer ts.Close()

	c := NewCredentialChecker("uk", "tok")
	c.Endpoint = ts.URL

	res := c.Check(context.Background())
	if res.Success {
		t.Fatalf("expected rejection: %+v", res)
	}
	if res.StatusCode != 400 {
		t.Fatalf("want status 400, got %d", res.StatusCode)
	}
}

func TestCredentialChecker_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	c := NewCredentialChecker("uk", "tok")
	c.Endpoint = ts.URL

	res := c.Check(context.Background())
	if res.Success {
		t.Fatalf("expected transport failure: %+v", res)
	}
}

func TestMultiChecker_RunsAll(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer ts.Close()

	a := NewCredentialChecker("u1", "t1")
	a.Endpoint = ts.URL
	b := NewCredentialChecker("u2", "t2")
	b.Endpoint = ts.URL

	results := NewMultiChecker(a, b).Run(context.Background())
	if len(results) != 2 {
		t.Fatalf("want 2 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Success {
			t.Fatalf("unexpected failure: %+v", r)
		}
	}
}

func TestClassifyDNS_InvalidName(t *testing.T) {
	if got := classifyDNS(context.Background(), "https://not-a-host"); got != "INVALID_NAME" {
		t.Fatalf("want INVALID_NAME, got %s", got)
	}
	if got := classifyDNS(context.Background(), " "); got != "INVALID_NAME" {
		t.Fatalf("want INVALID_NAME for blank, got %s", got)
	}
}
